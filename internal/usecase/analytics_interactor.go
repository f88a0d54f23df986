package usecase

import (
	"context"

	"github.com/GoArmGo/PotionApp/internal/analytics"
	"github.com/GoArmGo/PotionApp/internal/core/ports"
	"github.com/GoArmGo/PotionApp/internal/domain"
)

// analyticsUseCase implements AnalyticsUseCase
type analyticsUseCase struct {
	store ports.AnalyticsStorage
}

// NewAnalyticsUseCase создает новый экземпляр AnalyticsUseCase
func NewAnalyticsUseCase(store ports.AnalyticsStorage) AnalyticsUseCase {
	return &analyticsUseCase{store: store}
}

func (uc *analyticsUseCase) DistinctCategoryCount(ctx context.Context) (int64, error) {
	return uc.store.DistinctCategoryCount(ctx)
}

func (uc *analyticsUseCase) AverageScoreByVendor(ctx context.Context) ([]domain.VendorScore, error) {
	return uc.store.AverageScoreByVendor(ctx)
}

func (uc *analyticsUseCase) AverageScoreByCategory(ctx context.Context) ([]domain.CategoryScore, error) {
	return uc.store.AverageScoreByCategory(ctx)
}

func (uc *analyticsUseCase) StrengthFlavorRatio(ctx context.Context) ([]domain.RatioRow, error) {
	return uc.store.StrengthFlavorRatio(ctx)
}

func (uc *analyticsUseCase) Search(ctx context.Context, query analytics.SearchQuery) ([]domain.SearchRow, error) {
	return uc.store.Search(ctx, query)
}
