package usecase

import (
	"context"

	"github.com/GoArmGo/PotionApp/internal/domain"
	"github.com/google/uuid"
)

// PotionUseCase определяет операции над коллекцией зелий
type PotionUseCase interface {
	// List возвращает все зелья
	List(ctx context.Context) ([]domain.Potion, error)

	// ListNames возвращает только имена всех зелий
	ListNames(ctx context.Context) ([]string, error)

	// FindByVendor возвращает зелья указанного продавца
	FindByVendor(ctx context.Context, vendorID string) ([]domain.Potion, error)

	// FindByPriceRange возвращает зелья в инклюзивном диапазоне цен;
	// nil-граница оставляет свою сторону открытой
	FindByPriceRange(ctx context.Context, min, max *float64) ([]domain.Potion, error)

	// FindByID возвращает зелье или domain.ErrNotFound
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Potion, error)

	// Create создает зелье из частичного ввода; непереданные поля
	// получают значения по умолчанию. Возвращает сохраненную запись.
	Create(ctx context.Context, input domain.PotionInput) (*domain.Potion, error)

	// Update частично обновляет переданные поля;
	// domain.ErrNotFound для несуществующего ID
	Update(ctx context.Context, id uuid.UUID, input domain.PotionInput) error

	// Delete удаляет зелье; domain.ErrNotFound для несуществующего ID
	Delete(ctx context.Context, id uuid.UUID) error
}
