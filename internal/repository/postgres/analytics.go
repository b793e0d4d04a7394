package postgres

import (
	"context"
	"database/sql"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type analyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) repository.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) FleetUtilization(ctx context.Context) ([]domain.FleetUtilization, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT COALESCE(NULLIF(type, ''), 'Unknown') AS vehicle_type,
		        COUNT(*),
		        SUM(CASE WHEN status = 'Rented' THEN 1 ELSE 0 END),
		        ROUND(SUM(CASE WHEN status = 'Rented' THEN 1 ELSE 0 END)::numeric / COUNT(*) * 100, 1)
		 FROM vehicles
		 GROUP BY vehicle_type
		 ORDER BY vehicle_type`)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	var out []domain.FleetUtilization
	for rows.Next() {
		var u domain.FleetUtilization
		if err := rows.Scan(&u.VehicleType, &u.TotalVehicles, &u.RentedCount, &u.UtilizationRate); err != nil {
			return nil, wrapErr(err)
		}
		out = append(out, u)
	}
	return out, wrapErr(rows.Err())
}

func (r *analyticsRepository) PopularVehicles(ctx context.Context, limit int32) ([]domain.PopularVehicle, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT v.brand, v.model, COALESCE(NULLIF(v.type, ''), 'Unknown'), COUNT(r.id)
		 FROM vehicles v
		 LEFT JOIN rentals r ON r.vehicle_id = v.id
		 GROUP BY v.id, v.brand, v.model, v.type
		 ORDER BY COUNT(r.id) DESC, v.brand
		 LIMIT $1`, limit)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	var out []domain.PopularVehicle
	for rows.Next() {
		var p domain.PopularVehicle
		if err := rows.Scan(&p.Brand, &p.Model, &p.VehicleType, &p.RentalCount); err != nil {
			return nil, wrapErr(err)
		}
		out = append(out, p)
	}
	return out, wrapErr(rows.Err())
}

func (r *analyticsRepository) Revenue(ctx context.Context, since time.Time) ([]domain.RevenuePoint, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DATE(pickup_datetime), COALESCE(SUM(total_cost), 0), COUNT(*)
		 FROM rentals
		 WHERE pickup_datetime >= $1
		 GROUP BY DATE(pickup_datetime)
		 ORDER BY DATE(pickup_datetime) DESC`, since)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	var out []domain.RevenuePoint
	for rows.Next() {
		var p domain.RevenuePoint
		if err := rows.Scan(&p.Date, &p.Revenue, &p.Rentals); err != nil {
			return nil, wrapErr(err)
		}
		out = append(out, p)
	}
	return out, wrapErr(rows.Err())
}

func (r *analyticsRepository) FleetOverview(ctx context.Context) (*domain.FleetOverview, error) {
	o := &domain.FleetOverview{}
	// COALESCE keeps an empty fleet reporting zeros instead of NULL sums.
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN status = 'Available' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN status = 'Rented' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN status = 'Maintenance' THEN 1 ELSE 0 END), 0),
		        AVG(daily_rate)
		 FROM vehicles`).
		Scan(&o.TotalVehicles, &o.Available, &o.Rented, &o.InMaintenance, &o.AvgDailyRate)
	if err != nil {
		return nil, wrapErr(err)
	}
	return o, nil
}
