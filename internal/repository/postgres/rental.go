package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalSelect = `
	SELECT r.id, r.customer_id, c.first_name || ' ' || c.last_name,
	       r.vehicle_id, v.brand || ' ' || v.model, v.daily_rate,
	       r.pickup_branch_id, r.return_branch_id,
	       r.pickup_datetime, r.return_datetime, r.actual_return_datetime,
	       r.total_cost, r.status, COALESCE(r.notes, '')
	FROM rentals r
	JOIN customers c ON r.customer_id = c.id
	JOIN vehicles v ON r.vehicle_id = v.id`

func scanRental(row interface{ Scan(...any) error }) (*domain.Rental, error) {
	rt := &domain.Rental{}
	err := row.Scan(&rt.ID, &rt.CustomerID, &rt.CustomerName, &rt.VehicleID, &rt.VehicleInfo,
		&rt.DailyRate, &rt.PickupBranchID, &rt.ReturnBranchID, &rt.PickupAt,
		&rt.ExpectedReturnAt, &rt.ActualReturnAt, &rt.TotalCost, &rt.Status, &rt.Notes)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) CreateAndReserve(ctx context.Context, rt *domain.Rental) error {
	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		// Conditional update serializes concurrent bookings: only one
		// transaction can move the row off Available.
		res, err := tx.ExecContext(ctx,
			`UPDATE vehicles SET status = $1 WHERE id = $2 AND status = $3`,
			domain.VehicleStatusRented, rt.VehicleID, domain.VehicleStatusAvailable)
		if err != nil {
			return wrapErr(err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return wrapErr(err)
		}
		if n == 0 {
			return domain.Conflictf("vehicle %d is not available", rt.VehicleID)
		}

		err = tx.QueryRowContext(ctx,
			`INSERT INTO rentals (customer_id, vehicle_id, pickup_branch_id, return_branch_id, pickup_datetime, return_datetime, total_cost, status, notes)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
			rt.CustomerID, rt.VehicleID, rt.PickupBranchID, rt.ReturnBranchID,
			rt.PickupAt, rt.ExpectedReturnAt, rt.TotalCost, rt.Status, rt.Notes).Scan(&rt.ID)
		return wrapErr(err)
	})
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt, err := scanRental(r.db.QueryRowContext(ctx, rentalSelect+` WHERE r.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("rental %d not found", id)
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return rt, nil
}

func (r *rentalRepository) GetOpenByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt, err := scanRental(r.db.QueryRowContext(ctx,
		rentalSelect+` WHERE r.id = $1 AND r.actual_return_datetime IS NULL AND r.status = $2`,
		id, domain.RentalStatusActive))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("rental %d not found or already completed", id)
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return rt, nil
}

func (r *rentalRepository) CompleteReturn(ctx context.Context, id int32, actualReturn time.Time, totalCost float64, notes string) error {
	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		var vehicleID int32
		// Guarded on the rental still being open: a replayed return affects
		// zero rows and never touches the stored cost.
		err := tx.QueryRowContext(ctx,
			`UPDATE rentals
			 SET actual_return_datetime = $2, total_cost = $3, status = $4,
			     notes = CASE WHEN $5 <> '' THEN $5 ELSE notes END
			 WHERE id = $1 AND actual_return_datetime IS NULL AND status = $6
			 RETURNING vehicle_id`,
			id, actualReturn, totalCost, domain.RentalStatusCompleted, notes,
			domain.RentalStatusActive).Scan(&vehicleID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Conflictf("rental %d is not open", id)
		}
		if err != nil {
			return wrapErr(err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE vehicles SET status = $1 WHERE id = $2`,
			domain.VehicleStatusAvailable, vehicleID)
		return wrapErr(err)
	})
}

func (r *rentalRepository) Cancel(ctx context.Context, id int32) error {
	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		var vehicleID int32
		err := tx.QueryRowContext(ctx,
			`UPDATE rentals SET status = $2
			 WHERE id = $1 AND actual_return_datetime IS NULL AND status = $3
			 RETURNING vehicle_id`,
			id, domain.RentalStatusCancelled, domain.RentalStatusActive).Scan(&vehicleID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Conflictf("rental %d is not open", id)
		}
		if err != nil {
			return wrapErr(err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE vehicles SET status = $1 WHERE id = $2`,
			domain.VehicleStatusAvailable, vehicleID)
		return wrapErr(err)
	})
}

func (r *rentalRepository) List(ctx context.Context, filter *domain.RentalListFilter) ([]domain.Rental, error) {
	query := rentalSelect + ` WHERE 1=1`
	args := []any{}

	switch filter.Status {
	case "ongoing":
		query += ` AND r.actual_return_datetime IS NULL AND r.status = 'Active'`
	case "completed":
		query += ` AND r.actual_return_datetime IS NOT NULL`
	case "cancelled":
		query += ` AND r.status = 'Cancelled'`
	}
	if filter.CustomerID != nil {
		args = append(args, *filter.CustomerID)
		query += ` AND r.customer_id = $` + itoa(len(args))
	}
	if filter.VehicleID != nil {
		args = append(args, *filter.VehicleID)
		query += ` AND r.vehicle_id = $` + itoa(len(args))
	}
	query += ` ORDER BY r.pickup_datetime DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, wrapErr(err)
		}
		rentals = append(rentals, *rt)
	}
	return rentals, wrapErr(rows.Err())
}

func (r *rentalRepository) CustomerHistory(ctx context.Context, customerID int32) ([]domain.HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT r.id, v.brand, v.model, r.pickup_datetime, r.total_cost,
		        rr.rating_score, rr.review_text, r.actual_return_datetime
		 FROM rentals r
		 JOIN vehicles v ON r.vehicle_id = v.id
		 LEFT JOIN review_ratings rr ON r.id = rr.rental_id
		 WHERE r.customer_id = $1
		 ORDER BY r.pickup_datetime DESC`, customerID)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	var history []domain.HistoryEntry
	for rows.Next() {
		var h domain.HistoryEntry
		if err := rows.Scan(&h.RentalID, &h.Brand, &h.Model, &h.PickupAt, &h.TotalCost,
			&h.Rating, &h.ReviewText, &h.ReturnedAt); err != nil {
			return nil, wrapErr(err)
		}
		history = append(history, h)
	}
	return history, wrapErr(rows.Err())
}

func (r *rentalRepository) HasOpenRentalForVehicle(ctx context.Context, vehicleID int32) (bool, error) {
	return r.hasOpenRental(ctx, `vehicle_id`, vehicleID)
}

func (r *rentalRepository) HasOpenRentalForCustomer(ctx context.Context, customerID int32) (bool, error) {
	return r.hasOpenRental(ctx, `customer_id`, customerID)
}

func (r *rentalRepository) hasOpenRental(ctx context.Context, column string, id int32) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM rentals WHERE `+column+` = $1 AND actual_return_datetime IS NULL AND status = 'Active')`,
		id).Scan(&exists)
	return exists, wrapErr(err)
}
