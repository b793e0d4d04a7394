package postgres_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"carrental-backend/internal/repository/postgres"
)

func TestAnalyticsRepository_FleetOverview(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty fleet reports zeros", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewAnalyticsRepository(db)

		rows := sqlmock.NewRows([]string{
			"count", "available", "rented", "maintenance", "avg_daily_rate",
		}).AddRow(0, 0, 0, 0, nil)
		mock.ExpectQuery(`COALESCE\(SUM\(CASE WHEN status = 'Available'`).
			WillReturnRows(rows)

		overview, err := repo.FleetOverview(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int32(0), overview.TotalVehicles)
		assert.Equal(t, int32(0), overview.Available)
		assert.Equal(t, int32(0), overview.Rented)
		assert.Equal(t, int32(0), overview.InMaintenance)
		assert.Nil(t, overview.AvgDailyRate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Mixed fleet", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewAnalyticsRepository(db)

		rows := sqlmock.NewRows([]string{
			"count", "available", "rented", "maintenance", "avg_daily_rate",
		}).AddRow(10, 6, 3, 1, 47.5)
		mock.ExpectQuery(`COALESCE\(SUM\(CASE WHEN status = 'Available'`).
			WillReturnRows(rows)

		overview, err := repo.FleetOverview(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int32(10), overview.TotalVehicles)
		assert.Equal(t, int32(3), overview.Rented)
		assert.Equal(t, 47.5, *overview.AvgDailyRate)
	})
}
