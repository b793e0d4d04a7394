package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository/postgres"
)

func TestRentalRepository_CreateAndReserve(t *testing.T) {
	ctx := context.Background()
	pickup := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	cost := 120.0

	newRental := func() *domain.Rental {
		return &domain.Rental{
			CustomerID:       1,
			VehicleID:        2,
			PickupBranchID:   1,
			ReturnBranchID:   1,
			PickupAt:         pickup,
			ExpectedReturnAt: pickup.AddDate(0, 0, 3),
			TotalCost:        &cost,
			Status:           domain.RentalStatusActive,
		}
	}

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewRentalRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE vehicles SET status").
			WithArgs(string(domain.VehicleStatusRented), int32(2), string(domain.VehicleStatusAvailable)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO rentals").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectCommit()

		rental := newRental()
		err = repo.CreateAndReserve(ctx, rental)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), rental.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Vehicle already rented rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewRentalRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE vehicles SET status").
			WithArgs(string(domain.VehicleStatusRented), int32(2), string(domain.VehicleStatusAvailable)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err = repo.CreateAndReserve(ctx, newRental())
		assert.True(t, domain.IsConflict(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRentalRepository_CompleteReturn(t *testing.T) {
	ctx := context.Background()
	actualReturn := time.Date(2025, 1, 3, 9, 0, 0, 0, time.UTC)

	t.Run("Success frees the vehicle", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewRentalRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE rentals").
			WillReturnRows(sqlmock.NewRows([]string{"vehicle_id"}).AddRow(2))
		mock.ExpectExec("UPDATE vehicles SET status").
			WithArgs(string(domain.VehicleStatusAvailable), int32(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = repo.CompleteReturn(ctx, 5, actualReturn, 95, "scratch on door")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Second return conflicts without touching the vehicle", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewRentalRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE rentals").
			WillReturnRows(sqlmock.NewRows([]string{"vehicle_id"}))
		mock.ExpectRollback()

		err = repo.CompleteReturn(ctx, 5, actualReturn, 95, "")
		assert.True(t, domain.IsConflict(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRentalRepository_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("Closed rental conflicts", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewRentalRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE rentals SET status").
			WillReturnRows(sqlmock.NewRows([]string{"vehicle_id"}))
		mock.ExpectRollback()

		err = repo.Cancel(ctx, 5)
		assert.True(t, domain.IsConflict(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
