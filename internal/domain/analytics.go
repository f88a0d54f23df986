package domain

import "github.com/google/uuid"

// Строки аналитических выборок. Ключ "_id" сохранен из публичного
// контракта API: клиенты получают группу под этим именем.

// VendorScore — средний балл по одному продавцу.
type VendorScore struct {
	VendorID     string  `json:"_id" db:"vendor_id"`
	AverageScore float64 `json:"averageScore" db:"average_score"`
}

// CategoryScore — средний балл по одной категории.
// Зелье с тремя категориями участвует в трех группах независимо.
type CategoryScore struct {
	Category     string  `json:"_id" db:"category"`
	AverageScore float64 `json:"averageScore" db:"average_score"`
}

// RatioRow — отношение strength/flavor для одного зелья.
// Ratio равен null, когда flavor нулевой: деление гасится на уровне SQL.
type RatioRow struct {
	ID    uuid.UUID `json:"_id" db:"id"`
	Ratio *float64  `json:"strengthFlavorRatio" db:"ratio"`
}

// SearchRow — одна группа результата обобщенной агрегации.
// Заполнено ровно одно из полей метрики, по имени выбранной метрики.
type SearchRow struct {
	Group string   `json:"_id" db:"group_value"`
	Count *int64   `json:"count,omitempty" db:"count"`
	Avg   *float64 `json:"avg,omitempty" db:"avg"`
	Sum   *float64 `json:"sum,omitempty" db:"sum"`
}
