package analytics

import (
	"testing"

	"github.com/GoArmGo/PotionApp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchQuery(t *testing.T) {
	tests := []struct {
		name    string
		groupBy string
		metric  string
		field   string
		wantErr bool
	}{
		{name: "vendor count", groupBy: "vendor_id", metric: "count", wantErr: false},
		{name: "vendor avg score", groupBy: "vendor_id", metric: "avg", field: "score", wantErr: false},
		{name: "categories sum price", groupBy: "categories", metric: "sum", field: "price", wantErr: false},
		{name: "categories avg nested field", groupBy: "categories", metric: "avg", field: "ratings.strength", wantErr: false},
		{name: "unknown groupBy", groupBy: "name", metric: "count", wantErr: true},
		{name: "unknown metric", groupBy: "vendor_id", metric: "median", field: "score", wantErr: true},
		{name: "unknown field", groupBy: "vendor_id", metric: "avg", field: "password_hash", wantErr: true},
		{name: "injection attempt in field", groupBy: "vendor_id", metric: "avg", field: "score); DROP TABLE potions;--", wantErr: true},
		{name: "field missing for avg", groupBy: "vendor_id", metric: "avg", wantErr: true},
		{name: "field present for count", groupBy: "vendor_id", metric: "count", field: "score", wantErr: true},
		{name: "everything empty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := ParseSearchQuery(tt.groupBy, tt.metric, tt.field)
			if tt.wantErr {
				require.Error(t, err)
				_, ok := domain.AsValidationError(err)
				assert.True(t, ok, "ожидалась ошибка валидации, получено %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, GroupBy(tt.groupBy), q.GroupBy)
			assert.Equal(t, Metric(tt.metric), q.Metric)
		})
	}
}

func TestParseSearchQueryCollectsAllViolations(t *testing.T) {
	_, err := ParseSearchQuery("bogus", "bogus", "bogus")
	require.Error(t, err)

	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Len(t, ve.Messages, 3)
}

func TestSearchQuerySQL(t *testing.T) {
	tests := []struct {
		name string
		q    SearchQuery
		want string
	}{
		{
			name: "vendor count",
			q:    SearchQuery{GroupBy: GroupByVendor, Metric: MetricCount},
			want: `SELECT vendor_id AS group_value, COUNT(*) AS "count" FROM potions GROUP BY vendor_id`,
		},
		{
			name: "vendor avg score",
			q:    SearchQuery{GroupBy: GroupByVendor, Metric: MetricAvg, Field: FieldScore},
			want: `SELECT vendor_id AS group_value, AVG(score) AS "avg" FROM potions GROUP BY vendor_id`,
		},
		{
			name: "categories sum price",
			q:    SearchQuery{GroupBy: GroupByCategories, Metric: MetricSum, Field: FieldPrice},
			want: `SELECT category AS group_value, SUM(price) AS "sum" FROM potions CROSS JOIN LATERAL unnest(categories) AS category GROUP BY category`,
		},
		{
			name: "nested field maps to flat column",
			q:    SearchQuery{GroupBy: GroupByVendor, Metric: MetricAvg, Field: FieldRatingFlavor},
			want: `SELECT vendor_id AS group_value, AVG(rating_flavor) AS "avg" FROM potions GROUP BY vendor_id`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.SQL())
		})
	}
}
