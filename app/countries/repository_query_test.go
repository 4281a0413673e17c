package countries

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockRepository(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	assert.NoError(t, err)

	return NewRepository(gormDB), mock
}

func TestRepository_ListQueryShape(t *testing.T) {
	t.Run("No Filter", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		rows := sqlmock.NewRows([]string{"name"}).AddRow("Nigeria").AddRow("Ghana")
		mock.ExpectQuery(`SELECT \* FROM "countries"`).WillReturnRows(rows)

		countries, err := repo.List(context.Background(), CountryFilter{})
		assert.NoError(t, err)
		assert.Len(t, countries, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Region Filter Folds Case", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		rows := sqlmock.NewRows([]string{"name"}).AddRow("Nigeria")
		mock.ExpectQuery(`SELECT \* FROM "countries" WHERE LOWER\(region\) = LOWER\(\$1\)`).
			WithArgs("aFrIcA").
			WillReturnRows(rows)

		countries, err := repo.List(context.Background(), CountryFilter{Region: "aFrIcA"})
		assert.NoError(t, err)
		assert.Len(t, countries, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Currency Filter Folds Case", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		rows := sqlmock.NewRows([]string{"name"})
		mock.ExpectQuery(`SELECT \* FROM "countries" WHERE LOWER\(currency_code\) = LOWER\(\$1\)`).
			WithArgs("ngn").
			WillReturnRows(rows)

		countries, err := repo.List(context.Background(), CountryFilter{Currency: "ngn"})
		assert.NoError(t, err)
		assert.Empty(t, countries)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GDP Sort Orders Descending", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		rows := sqlmock.NewRows([]string{"name"}).AddRow("Nigeria")
		mock.ExpectQuery(`SELECT \* FROM "countries" ORDER BY estimated_gdp DESC`).
			WillReturnRows(rows)

		countries, err := repo.List(context.Background(), CountryFilter{SortByGDP: true})
		assert.NoError(t, err)
		assert.Len(t, countries, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_CountQueryShape(t *testing.T) {
	repo, mock := newMockRepository(t)

	rows := sqlmock.NewRows([]string{"count"}).AddRow(250)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "countries"`).WillReturnRows(rows)

	count, err := repo.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(250), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteByNameQueryShape(t *testing.T) {
	t.Run("Deleted", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "countries" WHERE name = \$1`).
			WithArgs("Nigeria").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.DeleteByName(context.Background(), "Nigeria")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No Rows Affected", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "countries" WHERE name = \$1`).
			WithArgs("Atlantis").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.DeleteByName(context.Background(), "Atlantis")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_TopByGDPQueryShape(t *testing.T) {
	repo, mock := newMockRepository(t)

	rows := sqlmock.NewRows([]string{"name", "estimated_gdp"}).
		AddRow("Nigeria", 3e11).
		AddRow("Japan", 1e11)
	mock.ExpectQuery(`SELECT \* FROM "countries" ORDER BY estimated_gdp DESC LIMIT \$1`).
		WithArgs(2).
		WillReturnRows(rows)

	top, err := repo.TopByGDP(context.Background(), 2)
	assert.NoError(t, err)
	assert.Len(t, top, 2)
	assert.Equal(t, "Nigeria", top[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
