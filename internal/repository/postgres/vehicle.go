package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, vehicle_code, brand, model, COALESCE(type, ''), COALESCE(fuel_type, ''), COALESCE(transmission, ''), status, daily_rate, seating_capacity`

func scanVehicle(row interface{ Scan(...any) error }) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	err := row.Scan(&v.ID, &v.Code, &v.Brand, &v.Model, &v.Type, &v.FuelType,
		&v.Transmission, &v.Status, &v.DailyRate, &v.SeatingCapacity)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (vehicle_code, brand, model, type, fuel_type, transmission, status, daily_rate, seating_capacity)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, v.Code, v.Brand, v.Model, v.Type, v.FuelType,
		v.Transmission, v.Status, v.DailyRate, v.SeatingCapacity).Scan(&v.ID)
	if isUniqueViolation(err) {
		return domain.Conflictf("vehicle code %s already exists", v.Code)
	}
	return wrapErr(err)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v, err := scanVehicle(r.db.QueryRowContext(ctx,
		`SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("vehicle %d not found", id)
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return v, nil
}

func (r *vehicleRepository) GetByCode(ctx context.Context, code string) (*domain.Vehicle, error) {
	v, err := scanVehicle(r.db.QueryRowContext(ctx,
		`SELECT `+vehicleColumns+` FROM vehicles WHERE vehicle_code = $1`, code))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("vehicle %s not found", code)
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return v, nil
}

func (r *vehicleRepository) List(ctx context.Context, status domain.VehicleStatus, search string) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE 1=1`
	args := []any{}
	if status != "" {
		args = append(args, status)
		query += ` AND status = $1`
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		n := len(args)
		query += ` AND (vehicle_code ILIKE $` + itoa(n) + ` OR brand ILIKE $` + itoa(n) + ` OR model ILIKE $` + itoa(n) + `)`
	}
	query += ` ORDER BY vehicle_code`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, wrapErr(err)
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, wrapErr(rows.Err())
}

func (r *vehicleRepository) Update(ctx context.Context, id int32, upd *domain.VehicleUpdate) (*domain.Vehicle, error) {
	// Fixed, reviewed set of assignments; each column keeps its current
	// value unless the corresponding update field was supplied.
	query := `UPDATE vehicles SET
	            brand = COALESCE($2, brand),
	            model = COALESCE($3, model),
	            type = COALESCE($4, type),
	            fuel_type = COALESCE($5, fuel_type),
	            transmission = COALESCE($6, transmission),
	            status = COALESCE($7, status),
	            daily_rate = COALESCE($8, daily_rate),
	            seating_capacity = COALESCE($9, seating_capacity)
	          WHERE id = $1
	          RETURNING ` + vehicleColumns
	v, err := scanVehicle(r.db.QueryRowContext(ctx, query, id, upd.Brand, upd.Model, upd.Type,
		upd.FuelType, upd.Transmission, upd.Status, upd.DailyRate, upd.SeatingCapacity))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("vehicle %d not found", id)
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return v, nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return wrapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapErr(err)
	}
	if n == 0 {
		return domain.NotFoundf("vehicle %d not found", id)
	}
	return nil
}
