package storage

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/GoArmGo/PotionApp/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// имя драйвера postgres, чтобы sqlx использовал $-плейсхолдеры
	return sqlx.NewDb(db, "postgres"), mock
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func potionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "price", "score", "ingredients",
		"ratings.strength", "ratings.flavor",
		"try_date", "categories", "vendor_id", "created_at", "updated_at",
	})
}

func addPotionRow(rows *sqlmock.Rows, id uuid.UUID, name string, price float64) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, name, price, 7.5, []byte(`["трава"]`), 8.0, 4.0, nil, []byte(`{лечение}`), "v1", now, now)
}

func TestListPotions(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPotionStorage(db, testLogger())

	id := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM potions ORDER BY created_at`).
		WillReturnRows(addPotionRow(potionRows(), id, "Лечение", 10))

	potions, err := s.ListPotions(context.Background())
	require.NoError(t, err)
	require.Len(t, potions, 1)
	assert.Equal(t, id, potions[0].ID)
	assert.Equal(t, "Лечение", potions[0].Name)
	assert.Equal(t, 8.0, potions[0].Ratings.Strength)
	assert.Equal(t, []string{"лечение"}, []string(potions[0].Categories))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindPotionByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPotionStorage(db, testLogger())

	id := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM potions WHERE id = \$1 LIMIT 1`).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := s.FindPotionByID(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindPotionsByPriceRangeBounds(t *testing.T) {
	min, max := 5.0, 20.0

	tests := []struct {
		name    string
		min     *float64
		max     *float64
		pattern string
		args    []driver.Value
	}{
		{name: "both bounds", min: &min, max: &max, pattern: `WHERE price >= \$1 AND price <= \$2`, args: []driver.Value{min, max}},
		{name: "only min", min: &min, pattern: `WHERE price >= \$1 ORDER BY`, args: []driver.Value{min}},
		{name: "only max", max: &max, pattern: `WHERE price <= \$1 ORDER BY`, args: []driver.Value{max}},
		{name: "no bounds", pattern: `FROM potions ORDER BY created_at`, args: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			s := NewPotionStorage(db, testLogger())

			expect := mock.ExpectQuery(tt.pattern)
			if len(tt.args) > 0 {
				expect.WithArgs(tt.args...)
			}
			expect.WillReturnRows(potionRows())

			_, err := s.FindPotionsByPriceRange(context.Background(), tt.min, tt.max)
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdatePotionBuildsPartialSet(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPotionStorage(db, testLogger())

	id := uuid.New()
	name := "Новое имя"
	price := 15.0

	mock.ExpectExec(`UPDATE potions SET name = \$1, price = \$2, updated_at = now\(\) WHERE id = \$3`).
		WithArgs(name, price, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.UpdatePotion(context.Background(), id, domain.PotionInput{Name: &name, Price: &price})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePotionNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPotionStorage(db, testLogger())

	id := uuid.New()
	mock.ExpectExec(`UPDATE potions SET updated_at = now\(\) WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.UpdatePotion(context.Background(), id, domain.PotionInput{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePotion(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPotionStorage(db, testLogger())

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM potions WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.DeletePotion(context.Background(), id))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePotionNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPotionStorage(db, testLogger())

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM potions WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, s.DeletePotion(context.Background(), id), domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListPotionNames(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPotionStorage(db, testLogger())

	mock.ExpectQuery(`SELECT name FROM potions ORDER BY created_at`).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Лечение").AddRow("Сон"))

	names, err := s.ListPotionNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Лечение", "Сон"}, names)
	require.NoError(t, mock.ExpectationsWereMet())
}
