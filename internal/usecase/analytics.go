package usecase

import (
	"context"

	"github.com/GoArmGo/PotionApp/internal/analytics"
	"github.com/GoArmGo/PotionApp/internal/domain"
)

// AnalyticsUseCase определяет агрегатные операции над зельями
type AnalyticsUseCase interface {
	// DistinctCategoryCount — число различных категорий по всей коллекции
	DistinctCategoryCount(ctx context.Context) (int64, error)

	// AverageScoreByVendor — средний score на продавца
	AverageScoreByVendor(ctx context.Context) ([]domain.VendorScore, error)

	// AverageScoreByCategory — средний score на категорию
	AverageScoreByCategory(ctx context.Context) ([]domain.CategoryScore, error)

	// StrengthFlavorRatio — отношение strength/flavor по каждому зелью
	StrengthFlavorRatio(ctx context.Context) ([]domain.RatioRow, error)

	// Search выполняет обобщенную агрегацию по проверенной спецификации
	Search(ctx context.Context, query analytics.SearchQuery) ([]domain.SearchRow, error)
}
