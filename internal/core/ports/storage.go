package ports

import (
	"context"

	"github.com/GoArmGo/PotionApp/internal/analytics"
	"github.com/GoArmGo/PotionApp/internal/domain"
	"github.com/google/uuid"
)

// PotionStorage определяет методы для взаимодействия с хранилищем зелий
type PotionStorage interface {
	// ListPotions возвращает все зелья без фильтра и без пагинации
	ListPotions(ctx context.Context) ([]domain.Potion, error)

	// ListPotionNames возвращает только имена всех зелий
	ListPotionNames(ctx context.Context) ([]string, error)

	// FindPotionsByVendor возвращает зелья с точным совпадением vendor_id
	FindPotionsByVendor(ctx context.Context, vendorID string) ([]domain.Potion, error)

	// FindPotionsByPriceRange возвращает зелья в инклюзивном диапазоне цен;
	// nil-граница оставляет свою сторону диапазона открытой
	FindPotionsByPriceRange(ctx context.Context, min, max *float64) ([]domain.Potion, error)

	// FindPotionByID возвращает зелье по ID или domain.ErrNotFound
	FindPotionByID(ctx context.Context, id uuid.UUID) (*domain.Potion, error)

	// SavePotion сохраняет новое зелье целиком
	SavePotion(ctx context.Context, potion *domain.Potion) error

	// UpdatePotion частично обновляет переданные поля;
	// domain.ErrNotFound, если ни одна строка не совпала
	UpdatePotion(ctx context.Context, id uuid.UUID, input domain.PotionInput) error

	// DeletePotion удаляет зелье или возвращает domain.ErrNotFound
	DeletePotion(ctx context.Context, id uuid.UUID) error
}

// UserStorage определяет методы для взаимодействия с хранилищем пользователей
type UserStorage interface {
	// CreateUser сохраняет пользователя с уже захешированным паролем;
	// domain.ErrUsernameTaken при нарушении уникальности имени
	CreateUser(ctx context.Context, user *domain.User) error

	// GetUserByUsername возвращает пользователя или domain.ErrNotFound
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// AnalyticsStorage определяет агрегатные выборки над зельями
type AnalyticsStorage interface {
	// DistinctCategoryCount считает различные значения категорий
	// по объединению всех массивов categories
	DistinctCategoryCount(ctx context.Context) (int64, error)

	// AverageScoreByVendor — средний score на продавца
	AverageScoreByVendor(ctx context.Context) ([]domain.VendorScore, error)

	// AverageScoreByCategory — средний score на категорию
	// после разворота массивов categories
	AverageScoreByCategory(ctx context.Context) ([]domain.CategoryScore, error)

	// StrengthFlavorRatio — отношение strength/flavor по каждому зелью
	StrengthFlavorRatio(ctx context.Context) ([]domain.RatioRow, error)

	// Search выполняет уже проверенную спецификацию агрегации
	Search(ctx context.Context, query analytics.SearchQuery) ([]domain.SearchRow, error)
}
