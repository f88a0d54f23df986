package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/GoArmGo/PotionApp/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// potionColumns — список колонок для выборок зелий.
// Плоские rating_strength / rating_flavor маппятся во вложенную
// структуру Ratings через алиасы с точкой (поддерживается sqlx).
const potionColumns = `id, name, price, score, ingredients,
	rating_strength AS "ratings.strength", rating_flavor AS "ratings.flavor",
	try_date, categories, vendor_id, created_at, updated_at`

type PotionStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewPotionStorage(db *sqlx.DB, logger *slog.Logger) *PotionStorage {
	return &PotionStorage{db: db, logger: logger}
}

// ListPotions возвращает все зелья без пагинации.
// Неограниченный результат — осознанное упрощение исходного API.
func (s *PotionStorage) ListPotions(ctx context.Context) ([]domain.Potion, error) {
	start := time.Now()

	query := fmt.Sprintf(`SELECT %s FROM potions ORDER BY created_at`, potionColumns)

	potions := []domain.Potion{}
	if err := s.db.SelectContext(ctx, &potions, query); err != nil {
		s.logger.Error("failed to list potions", "error", err)
		return nil, fmt.Errorf("ошибка при получении всех зелий: %w", err)
	}

	s.logger.Info("listed potions",
		"count", len(potions),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return potions, nil
}

// ListPotionNames возвращает только имена зелий (проекция по одной колонке)
func (s *PotionStorage) ListPotionNames(ctx context.Context) ([]string, error) {
	names := []string{}
	if err := s.db.SelectContext(ctx, &names, `SELECT name FROM potions ORDER BY created_at`); err != nil {
		s.logger.Error("failed to list potion names", "error", err)
		return nil, fmt.Errorf("ошибка при получении имен зелий: %w", err)
	}
	return names, nil
}

// FindPotionsByVendor возвращает зелья с точным совпадением vendor_id
func (s *PotionStorage) FindPotionsByVendor(ctx context.Context, vendorID string) ([]domain.Potion, error) {
	query := fmt.Sprintf(`SELECT %s FROM potions WHERE vendor_id = $1 ORDER BY created_at`, potionColumns)

	potions := []domain.Potion{}
	if err := s.db.SelectContext(ctx, &potions, query, vendorID); err != nil {
		s.logger.Error("failed to find potions by vendor", "vendor_id", vendorID, "error", err)
		return nil, fmt.Errorf("ошибка при поиске зелий по продавцу: %w", err)
	}
	return potions, nil
}

// FindPotionsByPriceRange возвращает зелья в инклюзивном диапазоне цен.
// nil-граница оставляет соответствующую сторону диапазона открытой.
func (s *PotionStorage) FindPotionsByPriceRange(ctx context.Context, min, max *float64) ([]domain.Potion, error) {
	conds := []string{}
	args := []any{}

	if min != nil {
		args = append(args, *min)
		conds = append(conds, fmt.Sprintf("price >= $%d", len(args)))
	}
	if max != nil {
		args = append(args, *max)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM potions`, potionColumns)
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at"

	potions := []domain.Potion{}
	if err := s.db.SelectContext(ctx, &potions, query, args...); err != nil {
		s.logger.Error("failed to find potions by price range", "error", err)
		return nil, fmt.Errorf("ошибка при поиске зелий по диапазону цен: %w", err)
	}
	return potions, nil
}

// FindPotionByID возвращает зелье по ID или domain.ErrNotFound
func (s *PotionStorage) FindPotionByID(ctx context.Context, id uuid.UUID) (*domain.Potion, error) {
	query := fmt.Sprintf(`SELECT %s FROM potions WHERE id = $1 LIMIT 1`, potionColumns)

	var potion domain.Potion
	if err := s.db.GetContext(ctx, &potion, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("potion not found by id", "id", id)
			return nil, domain.ErrNotFound
		}
		s.logger.Error("failed to get potion by id", "id", id, "error", err)
		return nil, fmt.Errorf("ошибка при получении зелья по ID: %w", err)
	}
	return &potion, nil
}

// SavePotion сохраняет новое зелье целиком
func (s *PotionStorage) SavePotion(ctx context.Context, potion *domain.Potion) error {
	start := time.Now()

	query := `
	INSERT INTO potions (id, name, price, score, ingredients, rating_strength, rating_flavor,
		try_date, categories, vendor_id, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := s.db.ExecContext(ctx, query,
		potion.ID, potion.Name, potion.Price, potion.Score, potion.Ingredients,
		potion.Ratings.Strength, potion.Ratings.Flavor,
		potion.TryDate, potion.Categories, potion.VendorID,
		potion.CreatedAt, potion.UpdatedAt,
	)
	if err != nil {
		s.logger.Error("failed to save potion", "id", potion.ID, "error", err)
		return fmt.Errorf("ошибка при сохранении зелья: %w", err)
	}

	s.logger.Info("potion saved successfully",
		"id", potion.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// UpdatePotion частично обновляет переданные поля зелья.
// Пустой ввод все равно проверяет существование строки через updated_at.
// Если ни одна строка не совпала — domain.ErrNotFound.
func (s *PotionStorage) UpdatePotion(ctx context.Context, id uuid.UUID, input domain.PotionInput) error {
	set := []string{}
	args := []any{}

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if input.Name != nil {
		add("name", *input.Name)
	}
	if input.Price != nil {
		add("price", *input.Price)
	}
	if input.Score != nil {
		add("score", *input.Score)
	}
	if input.Ingredients != nil {
		add("ingredients", *input.Ingredients)
	}
	if input.Ratings != nil {
		if input.Ratings.Strength != nil {
			add("rating_strength", *input.Ratings.Strength)
		}
		if input.Ratings.Flavor != nil {
			add("rating_flavor", *input.Ratings.Flavor)
		}
	}
	if input.TryDate != nil {
		add("try_date", *input.TryDate)
	}
	if input.Categories != nil {
		add("categories", pq.StringArray(*input.Categories))
	}
	if input.VendorID != nil {
		add("vendor_id", *input.VendorID)
	}

	set = append(set, "updated_at = now()")
	args = append(args, id)
	query := fmt.Sprintf("UPDATE potions SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		s.logger.Error("failed to update potion", "id", id, "error", err)
		return fmt.Errorf("ошибка при обновлении зелья: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при чтении результата обновления: %w", err)
	}
	if affected == 0 {
		s.logger.Warn("potion not found for update", "id", id)
		return domain.ErrNotFound
	}

	s.logger.Info("potion updated successfully", "id", id)
	return nil
}

// DeletePotion удаляет зелье или возвращает domain.ErrNotFound
func (s *PotionStorage) DeletePotion(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM potions WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete potion", "id", id, "error", err)
		return fmt.Errorf("ошибка при удалении зелья: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при чтении результата удаления: %w", err)
	}
	if affected == 0 {
		s.logger.Warn("potion not found for delete", "id", id)
		return domain.ErrNotFound
	}

	s.logger.Info("potion deleted successfully", "id", id)
	return nil
}
