package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type branchRepository struct {
	db *sql.DB
}

func NewBranchRepository(db *sql.DB) repository.BranchRepository {
	return &branchRepository{db: db}
}

func (r *branchRepository) GetByID(ctx context.Context, id int32) (*domain.Branch, error) {
	b := &domain.Branch{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, COALESCE(city, '') FROM branches WHERE id = $1`, id).
		Scan(&b.ID, &b.Name, &b.City)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("branch %d not found", id)
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return b, nil
}

func (r *branchRepository) List(ctx context.Context) ([]domain.Branch, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, COALESCE(city, '') FROM branches ORDER BY name`)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	var branches []domain.Branch
	for rows.Next() {
		var b domain.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.City); err != nil {
			return nil, wrapErr(err)
		}
		branches = append(branches, b)
	}
	return branches, wrapErr(rows.Err())
}

func (r *branchRepository) Stats(ctx context.Context) ([]domain.BranchStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT b.id, b.name, COUNT(r.id), COALESCE(SUM(r.total_cost), 0)
		 FROM branches b
		 LEFT JOIN rentals r ON r.pickup_branch_id = b.id
		 GROUP BY b.id, b.name
		 ORDER BY b.name`)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	var stats []domain.BranchStats
	for rows.Next() {
		var s domain.BranchStats
		if err := rows.Scan(&s.BranchID, &s.BranchName, &s.RentalCount, &s.TotalRevenue); err != nil {
			return nil, wrapErr(err)
		}
		stats = append(stats, s)
	}
	return stats, wrapErr(rows.Err())
}
