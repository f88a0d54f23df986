package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/PotionApp/internal/analytics"
	"github.com/GoArmGo/PotionApp/internal/domain"
	"github.com/jmoiron/sqlx"
)

// AnalyticsStorage выполняет агрегатные выборки над таблицей potions.
// unnest(categories) играет роль разворота массива: зелье с тремя
// категориями участвует в трех группах независимо.
type AnalyticsStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewAnalyticsStorage(db *sqlx.DB, logger *slog.Logger) *AnalyticsStorage {
	return &AnalyticsStorage{db: db, logger: logger}
}

// DistinctCategoryCount считает различные значения категорий
// по объединению всех массивов, а не по документам.
func (s *AnalyticsStorage) DistinctCategoryCount(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.GetContext(ctx, &count,
		`SELECT COUNT(DISTINCT category) FROM potions CROSS JOIN LATERAL unnest(categories) AS category`,
	)
	if err != nil {
		s.logger.Error("failed to count distinct categories", "error", err)
		return 0, fmt.Errorf("ошибка при подсчете категорий: %w", err)
	}
	return count, nil
}

// AverageScoreByVendor — средний score на продавца
func (s *AnalyticsStorage) AverageScoreByVendor(ctx context.Context) ([]domain.VendorScore, error) {
	rows := []domain.VendorScore{}
	err := s.db.SelectContext(ctx, &rows,
		`SELECT vendor_id, AVG(score) AS average_score FROM potions GROUP BY vendor_id`,
	)
	if err != nil {
		s.logger.Error("failed to average score by vendor", "error", err)
		return nil, fmt.Errorf("ошибка при расчете среднего балла по продавцам: %w", err)
	}
	return rows, nil
}

// AverageScoreByCategory — средний score на категорию после разворота массивов
func (s *AnalyticsStorage) AverageScoreByCategory(ctx context.Context) ([]domain.CategoryScore, error) {
	rows := []domain.CategoryScore{}
	err := s.db.SelectContext(ctx, &rows, `
		SELECT category, AVG(score) AS average_score
		FROM potions CROSS JOIN LATERAL unnest(categories) AS category
		GROUP BY category
	`)
	if err != nil {
		s.logger.Error("failed to average score by category", "error", err)
		return nil, fmt.Errorf("ошибка при расчете среднего балла по категориям: %w", err)
	}
	return rows, nil
}

// StrengthFlavorRatio — отношение strength/flavor по каждому зелью.
// NULLIF гасит деление на ноль: такие строки получают ratio = null.
func (s *AnalyticsStorage) StrengthFlavorRatio(ctx context.Context) ([]domain.RatioRow, error) {
	rows := []domain.RatioRow{}
	err := s.db.SelectContext(ctx, &rows,
		`SELECT id, rating_strength / NULLIF(rating_flavor, 0) AS ratio FROM potions`,
	)
	if err != nil {
		s.logger.Error("failed to compute strength/flavor ratio", "error", err)
		return nil, fmt.Errorf("ошибка при расчете отношения strength/flavor: %w", err)
	}
	return rows, nil
}

// Search выполняет обобщенную агрегацию по уже проверенной спецификации.
// SQL собирается транслятором из белых списков, пользовательский ввод
// в текст запроса не попадает.
func (s *AnalyticsStorage) Search(ctx context.Context, query analytics.SearchQuery) ([]domain.SearchRow, error) {
	start := time.Now()

	rows := []domain.SearchRow{}
	if err := s.db.SelectContext(ctx, &rows, query.SQL()); err != nil {
		s.logger.Error("failed to run analytics search",
			"group_by", query.GroupBy,
			"metric", query.Metric,
			"error", err,
		)
		return nil, fmt.Errorf("ошибка при выполнении агрегации: %w", err)
	}

	s.logger.Info("analytics search completed",
		"group_by", query.GroupBy,
		"metric", query.Metric,
		"groups", len(rows),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return rows, nil
}
