package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/GoArmGo/PotionApp/internal/core/ports"
	"github.com/GoArmGo/PotionApp/internal/domain"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// potionUseCase implements PotionUseCase
type potionUseCase struct {
	potions ports.PotionStorage
}

// NewPotionUseCase создает новый экземпляр PotionUseCase
func NewPotionUseCase(potions ports.PotionStorage) PotionUseCase {
	return &potionUseCase{potions: potions}
}

func (uc *potionUseCase) List(ctx context.Context) ([]domain.Potion, error) {
	return uc.potions.ListPotions(ctx)
}

func (uc *potionUseCase) ListNames(ctx context.Context) ([]string, error) {
	return uc.potions.ListPotionNames(ctx)
}

func (uc *potionUseCase) FindByVendor(ctx context.Context, vendorID string) ([]domain.Potion, error) {
	return uc.potions.FindPotionsByVendor(ctx, vendorID)
}

func (uc *potionUseCase) FindByPriceRange(ctx context.Context, min, max *float64) ([]domain.Potion, error) {
	return uc.potions.FindPotionsByPriceRange(ctx, min, max)
}

func (uc *potionUseCase) FindByID(ctx context.Context, id uuid.UUID) (*domain.Potion, error) {
	return uc.potions.FindPotionByID(ctx, id)
}

// Create собирает зелье из частичного ввода.
// Обязательных полей нет: чего не передали, то остается по умолчанию.
// ID и отметки времени назначаются здесь, а не клиентом.
func (uc *potionUseCase) Create(ctx context.Context, input domain.PotionInput) (*domain.Potion, error) {
	now := time.Now()
	potion := &domain.Potion{
		ID:          uuid.New(),
		Ingredients: domain.Ingredients{},
		Categories:  pq.StringArray{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	input.Apply(potion)

	if err := uc.potions.SavePotion(ctx, potion); err != nil {
		return nil, fmt.Errorf("usecase: ошибка при создании зелья: %w", err)
	}
	return potion, nil
}

func (uc *potionUseCase) Update(ctx context.Context, id uuid.UUID, input domain.PotionInput) error {
	return uc.potions.UpdatePotion(ctx, id, input)
}

func (uc *potionUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.potions.DeletePotion(ctx, id)
}
