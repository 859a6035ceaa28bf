package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockSequenceRepository creates a GormSequenceRepository with a mocked SQL connection
func newMockSequenceRepository(t *testing.T) (*GormSequenceRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormSequenceRepository(gormDB), mock, mockDB
}

func TestGormSequenceRepository_Next(t *testing.T) {
	t.Run("first call for a scope starts at one", func(t *testing.T) {
		repo, mock, mockDB := newMockSequenceRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`INSERT INTO sequences \(scope, value\) VALUES \(\$1, 1\)`).
			WithArgs("batch:20260115").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(1))

		value, err := repo.Next(context.Background(), "batch:20260115")

		assert.NoError(t, err)
		assert.Equal(t, int64(1), value)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("existing scope increments", func(t *testing.T) {
		repo, mock, mockDB := newMockSequenceRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`INSERT INTO sequences \(scope, value\) VALUES \(\$1, 1\)`).
			WithArgs("batch:20260115").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(42))

		value, err := repo.Next(context.Background(), "batch:20260115")

		assert.NoError(t, err)
		assert.Equal(t, int64(42), value)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates database errors", func(t *testing.T) {
		repo, mock, mockDB := newMockSequenceRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`INSERT INTO sequences`).
			WithArgs("batch:20260115").
			WillReturnError(errors.New("connection reset"))

		value, err := repo.Next(context.Background(), "batch:20260115")

		assert.Error(t, err)
		assert.Zero(t, value)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
