// Package analytics переводит декларативные параметры запроса
// (группировка, метрика, поле) в SQL-агрегацию над таблицей potions.
// Все значения проверяются по фиксированным белым спискам до построения
// запроса: ничего из пользовательского ввода не попадает в SQL напрямую.
package analytics

import (
	"fmt"

	"github.com/GoArmGo/PotionApp/internal/domain"
)

// GroupBy — допустимые поля группировки.
type GroupBy string

// Metric — допустимые метрики.
type Metric string

// Field — допустимые поля для avg/sum.
type Field string

const (
	GroupByVendor     GroupBy = "vendor_id"
	GroupByCategories GroupBy = "categories"

	MetricAvg   Metric = "avg"
	MetricSum   Metric = "sum"
	MetricCount Metric = "count"

	FieldScore          Field = "score"
	FieldPrice          Field = "price"
	FieldRatingStrength Field = "ratings.strength"
	FieldRatingFlavor   Field = "ratings.flavor"
)

// fieldColumns отображает имена полей публичного API на колонки таблицы.
// Ввод сверяется с ключами этой карты и никогда не подставляется сам.
var fieldColumns = map[Field]string{
	FieldScore:          "score",
	FieldPrice:          "price",
	FieldRatingStrength: "rating_strength",
	FieldRatingFlavor:   "rating_flavor",
}

// SearchQuery — уже проверенная спецификация агрегации.
// Получить ее можно только через ParseSearchQuery.
type SearchQuery struct {
	GroupBy GroupBy
	Metric  Metric
	Field   Field
}

// ParseSearchQuery проверяет сырые параметры запроса по белым спискам.
// Любое значение вне списка — ошибка валидации до обращения к бд.
// Поле метрики обязательно для avg/sum и игнорировалось бы для count,
// поэтому для count оно должно отсутствовать.
func ParseSearchQuery(groupBy, metric, field string) (SearchQuery, error) {
	var messages []string

	gb := GroupBy(groupBy)
	switch gb {
	case GroupByVendor, GroupByCategories:
	default:
		messages = append(messages, fmt.Sprintf("groupBy должен быть одним из [vendor_id, categories], получено %q", groupBy))
	}

	m := Metric(metric)
	switch m {
	case MetricAvg, MetricSum, MetricCount:
	default:
		messages = append(messages, fmt.Sprintf("metric должен быть одним из [avg, sum, count], получено %q", metric))
	}

	f := Field(field)
	if m == MetricCount {
		if field != "" {
			messages = append(messages, "field не используется с metric=count")
		}
	} else if m == MetricAvg || m == MetricSum {
		if _, ok := fieldColumns[f]; !ok {
			messages = append(messages, fmt.Sprintf("field должен быть одним из [score, price, ratings.strength, ratings.flavor], получено %q", field))
		}
	}

	if len(messages) > 0 {
		return SearchQuery{}, domain.NewValidationError(messages...)
	}
	return SearchQuery{GroupBy: gb, Metric: m, Field: f}, nil
}

// SQL строит итоговый запрос агрегации.
// Группировка по категориям сначала разворачивает массив:
// зелье с тремя категориями дает по строке в каждой из трех групп.
func (q SearchQuery) SQL() string {
	var from, groupCol string
	switch q.GroupBy {
	case GroupByCategories:
		from = "potions CROSS JOIN LATERAL unnest(categories) AS category"
		groupCol = "category"
	default:
		from = "potions"
		groupCol = "vendor_id"
	}

	var metricExpr string
	switch q.Metric {
	case MetricCount:
		metricExpr = `COUNT(*) AS "count"`
	case MetricSum:
		metricExpr = fmt.Sprintf(`SUM(%s) AS "sum"`, fieldColumns[q.Field])
	default:
		metricExpr = fmt.Sprintf(`AVG(%s) AS "avg"`, fieldColumns[q.Field])
	}

	return fmt.Sprintf(
		"SELECT %s AS group_value, %s FROM %s GROUP BY %s",
		groupCol, metricExpr, from, groupCol,
	)
}
