package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Potion представляет модель зелья в системе,
// соответствует таблице potions в бд.
// Имена JSON-полей повторяют публичный контракт API (tryDate, vendor_id).
type Potion struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Price       float64        `json:"price" db:"price"`
	Score       float64        `json:"score" db:"score"`
	Ingredients Ingredients    `json:"ingredients" db:"ingredients"`
	Ratings     Ratings        `json:"ratings" db:"ratings"`
	TryDate     *time.Time     `json:"tryDate" db:"try_date"`
	Categories  pq.StringArray `json:"categories" db:"categories"`
	VendorID    string         `json:"vendor_id" db:"vendor_id"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}

// Ratings — вложенные оценки зелья.
// В бд хранятся плоскими колонками rating_strength / rating_flavor.
type Ratings struct {
	Strength float64 `json:"strength" db:"strength"`
	Flavor   float64 `json:"flavor" db:"flavor"`
}

// Ingredients — список ингредиентов произвольной формы.
// Хранится в колонке jsonb как есть, без типизации элементов.
type Ingredients []any

// Value сериализует ингредиенты в jsonb для записи в бд.
func (i Ingredients) Value() (driver.Value, error) {
	if i == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(i)
}

// Scan читает jsonb-колонку обратно в список.
func (i *Ingredients) Scan(src any) error {
	if src == nil {
		*i = Ingredients{}
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("ingredients: неожиданный тип колонки %T", src)
	}
	return json.Unmarshal(b, i)
}

// PotionInput — частичный ввод для создания и обновления зелья.
// Указатели отличают «поле не передано» от нулевого значения:
// при create непереданные поля получают значения по умолчанию,
// при update затрагиваются только переданные.
type PotionInput struct {
	Name        *string       `json:"name"`
	Price       *float64      `json:"price"`
	Score       *float64      `json:"score"`
	Ingredients *Ingredients  `json:"ingredients"`
	Ratings     *RatingsInput `json:"ratings"`
	TryDate     *time.Time    `json:"tryDate"`
	Categories  *[]string     `json:"categories"`
	VendorID    *string       `json:"vendor_id"`
}

// RatingsInput — частичный ввод вложенных оценок.
type RatingsInput struct {
	Strength *float64 `json:"strength"`
	Flavor   *float64 `json:"flavor"`
}

// IsEmpty сообщает, передано ли хоть одно поле.
func (in PotionInput) IsEmpty() bool {
	return in.Name == nil && in.Price == nil && in.Score == nil &&
		in.Ingredients == nil && in.Ratings == nil && in.TryDate == nil &&
		in.Categories == nil && in.VendorID == nil
}

// Apply накладывает переданные поля ввода на зелье.
func (in PotionInput) Apply(p *Potion) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Score != nil {
		p.Score = *in.Score
	}
	if in.Ingredients != nil {
		p.Ingredients = *in.Ingredients
	}
	if in.Ratings != nil {
		if in.Ratings.Strength != nil {
			p.Ratings.Strength = *in.Ratings.Strength
		}
		if in.Ratings.Flavor != nil {
			p.Ratings.Flavor = *in.Ratings.Flavor
		}
	}
	if in.TryDate != nil {
		p.TryDate = in.TryDate
	}
	if in.Categories != nil {
		p.Categories = pq.StringArray(*in.Categories)
	}
	if in.VendorID != nil {
		p.VendorID = *in.VendorID
	}
}
