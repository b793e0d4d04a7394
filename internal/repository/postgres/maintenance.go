package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type maintenanceRepository struct {
	db *sql.DB
}

func NewMaintenanceRepository(db *sql.DB) repository.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

const maintenanceSelect = `
	SELECT m.id, m.vehicle_id, m.description, m.maintenance_date, m.cost, m.performed_by,
	       v.brand || ' ' || v.model
	FROM vehicle_maintenance m
	JOIN vehicles v ON m.vehicle_id = v.id`

func scanMaintenance(row interface{ Scan(...any) error }) (*domain.Maintenance, error) {
	m := &domain.Maintenance{}
	err := row.Scan(&m.ID, &m.VehicleID, &m.Description, &m.Date, &m.Cost, &m.PerformedBy, &m.VehicleInfo)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *maintenanceRepository) Create(ctx context.Context, m *domain.Maintenance) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO vehicle_maintenance (vehicle_id, description, maintenance_date, cost, performed_by)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		m.VehicleID, m.Description, m.Date, m.Cost, m.PerformedBy).Scan(&m.ID)
	return wrapErr(err)
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id int32) (*domain.Maintenance, error) {
	m, err := scanMaintenance(r.db.QueryRowContext(ctx, maintenanceSelect+` WHERE m.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("maintenance record %d not found", id)
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return m, nil
}

func (r *maintenanceRepository) List(ctx context.Context, vehicleID *int32, from, to *time.Time) ([]domain.Maintenance, error) {
	query := maintenanceSelect + ` WHERE 1=1`
	args := []any{}
	if vehicleID != nil {
		args = append(args, *vehicleID)
		query += ` AND m.vehicle_id = $` + itoa(len(args))
	}
	if from != nil {
		args = append(args, *from)
		query += ` AND m.maintenance_date >= $` + itoa(len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += ` AND m.maintenance_date <= $` + itoa(len(args))
	}
	query += ` ORDER BY m.maintenance_date DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	var records []domain.Maintenance
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, wrapErr(err)
		}
		records = append(records, *m)
	}
	return records, wrapErr(rows.Err())
}

func (r *maintenanceRepository) Stats(ctx context.Context) ([]domain.MaintenanceStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT m.vehicle_id, v.brand || ' ' || v.model,
		        COUNT(*), COALESCE(SUM(m.cost), 0), AVG(m.cost)
		 FROM vehicle_maintenance m
		 JOIN vehicles v ON m.vehicle_id = v.id
		 GROUP BY m.vehicle_id, v.brand, v.model
		 ORDER BY SUM(m.cost) DESC NULLS LAST`)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	var stats []domain.MaintenanceStats
	for rows.Next() {
		var s domain.MaintenanceStats
		if err := rows.Scan(&s.VehicleID, &s.VehicleInfo, &s.RecordCount, &s.TotalCost, &s.AverageCost); err != nil {
			return nil, wrapErr(err)
		}
		stats = append(stats, s)
	}
	return stats, wrapErr(rows.Err())
}

func (r *maintenanceRepository) Update(ctx context.Context, id int32, upd *domain.MaintenanceUpdate) (*domain.Maintenance, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE vehicle_maintenance SET
		   description = COALESCE($2, description),
		   maintenance_date = COALESCE($3, maintenance_date),
		   cost = COALESCE($4, cost),
		   performed_by = COALESCE($5, performed_by)
		 WHERE id = $1`,
		id, upd.Description, upd.Date, upd.Cost, upd.PerformedBy)
	if err != nil {
		return nil, wrapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, wrapErr(err)
	}
	if n == 0 {
		return nil, domain.NotFoundf("maintenance record %d not found", id)
	}
	return r.GetByID(ctx, id)
}

func (r *maintenanceRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicle_maintenance WHERE id = $1`, id)
	if err != nil {
		return wrapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapErr(err)
	}
	if n == 0 {
		return domain.NotFoundf("maintenance record %d not found", id)
	}
	return nil
}
