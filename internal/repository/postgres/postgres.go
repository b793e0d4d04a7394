package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.VehicleRepository
	repository.CustomerRepository
	repository.RentalRepository
	repository.LoyaltyRepository
	repository.PromoRepository
	repository.MaintenanceRepository
	repository.ReviewRepository
	repository.BranchRepository
	repository.AnalyticsRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		VehicleRepository:     NewVehicleRepository(db),
		CustomerRepository:    NewCustomerRepository(db),
		RentalRepository:      NewRentalRepository(db),
		LoyaltyRepository:     NewLoyaltyRepository(db),
		PromoRepository:       NewPromoRepository(db),
		MaintenanceRepository: NewMaintenanceRepository(db),
		ReviewRepository:      NewReviewRepository(db),
		BranchRepository:      NewBranchRepository(db),
		AnalyticsRepository:   NewAnalyticsRepository(db),
		UserRepository:        NewUserRepository(db),
	}
}

// inTx runs fn inside a single transaction. Any error from fn rolls back
// every statement issued since BeginTx; no partial writes stay visible.
func inTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Infrastructure(err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return domain.Infrastructure(err)
	}
	return nil
}

func itoa(n int) string { return strconv.Itoa(n) }

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// wrapErr converts driver-level failures into the infrastructure kind.
// Errors already carrying a kind pass through unchanged.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	return domain.Infrastructure(err)
}
