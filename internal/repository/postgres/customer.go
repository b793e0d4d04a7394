package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, customer_code, first_name, last_name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(license_number, ''), date_of_birth, COALESCE(country_of_residence, ''), is_loyalty_member`

func scanCustomer(row interface{ Scan(...any) error }) (*domain.Customer, error) {
	c := &domain.Customer{}
	err := row.Scan(&c.ID, &c.Code, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
		&c.LicenseNumber, &c.DateOfBirth, &c.Country, &c.IsLoyaltyMember)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (customer_code, first_name, last_name, email, phone, license_number, date_of_birth, country_of_residence, is_loyalty_member)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, c.Code, c.FirstName, c.LastName, c.Email,
		c.Phone, c.LicenseNumber, c.DateOfBirth, c.Country).Scan(&c.ID)
	if isUniqueViolation(err) {
		return domain.Conflictf("customer code %s already exists", c.Code)
	}
	return wrapErr(err)
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	c, err := scanCustomer(r.db.QueryRowContext(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("customer %d not found", id)
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return c, nil
}

func (r *customerRepository) List(ctx context.Context, search string) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers`
	args := []any{}
	if search != "" {
		args = append(args, "%"+search+"%")
		query += ` WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1 OR phone LIKE $1 OR license_number LIKE $1`
	}
	query += ` ORDER BY last_name, first_name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, wrapErr(err)
		}
		customers = append(customers, *c)
	}
	return customers, wrapErr(rows.Err())
}

func (r *customerRepository) Update(ctx context.Context, id int32, upd *domain.CustomerUpdate) (*domain.Customer, error) {
	query := `UPDATE customers SET
	            first_name = COALESCE($2, first_name),
	            last_name = COALESCE($3, last_name),
	            email = COALESCE($4, email),
	            phone = COALESCE($5, phone),
	            license_number = COALESCE($6, license_number),
	            country_of_residence = COALESCE($7, country_of_residence)
	          WHERE id = $1
	          RETURNING ` + customerColumns
	c, err := scanCustomer(r.db.QueryRowContext(ctx, query, id, upd.FirstName, upd.LastName,
		upd.Email, upd.Phone, upd.LicenseNumber, upd.Country))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("customer %d not found", id)
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return c, nil
}

func (r *customerRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return wrapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapErr(err)
	}
	if n == 0 {
		return domain.NotFoundf("customer %d not found", id)
	}
	return nil
}
