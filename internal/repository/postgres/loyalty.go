package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type loyaltyRepository struct {
	db *sql.DB
}

func NewLoyaltyRepository(db *sql.DB) repository.LoyaltyRepository {
	return &loyaltyRepository{db: db}
}

func (r *loyaltyRepository) Enroll(ctx context.Context, p *domain.LoyaltyProgram) error {
	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO loyalty_programs (customer_id, points_balance, membership_tier, date_joined)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			p.CustomerID, p.Points, p.Tier, p.DateJoined).Scan(&p.ID)
		if isUniqueViolation(err) {
			return domain.Conflictf("customer %d is already a loyalty member", p.CustomerID)
		}
		if err != nil {
			return wrapErr(err)
		}

		// The flag on the customer row must stay consistent with the
		// program row; both writes commit together.
		_, err = tx.ExecContext(ctx,
			`UPDATE customers SET is_loyalty_member = TRUE WHERE id = $1`, p.CustomerID)
		return wrapErr(err)
	})
}

func (r *loyaltyRepository) GetByCustomer(ctx context.Context, customerID int32) (*domain.LoyaltyProgram, error) {
	p := &domain.LoyaltyProgram{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, customer_id, points_balance, membership_tier, date_joined
		 FROM loyalty_programs WHERE customer_id = $1`, customerID).
		Scan(&p.ID, &p.CustomerID, &p.Points, &p.Tier, &p.DateJoined)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("no loyalty program for customer %d", customerID)
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return p, nil
}

func (r *loyaltyRepository) AdjustPoints(ctx context.Context, customerID int32, delta int32) (*domain.LoyaltyProgram, error) {
	p := &domain.LoyaltyProgram{}
	err := inTx(ctx, r.db, func(tx *sql.Tx) error {
		// Row lock held for the whole read-modify-write so concurrent
		// adjustments for the same customer serialize.
		err := tx.QueryRowContext(ctx,
			`SELECT id, customer_id, points_balance, membership_tier, date_joined
			 FROM loyalty_programs WHERE customer_id = $1 FOR UPDATE`, customerID).
			Scan(&p.ID, &p.CustomerID, &p.Points, &p.Tier, &p.DateJoined)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundf("no loyalty program for customer %d", customerID)
		}
		if err != nil {
			return wrapErr(err)
		}

		newBalance := p.Points + delta
		if newBalance < 0 {
			newBalance = 0
		}
		newTier := domain.TierForBalance(newBalance)

		_, err = tx.ExecContext(ctx,
			`UPDATE loyalty_programs SET points_balance = $2, membership_tier = $3 WHERE customer_id = $1`,
			customerID, newBalance, newTier)
		if err != nil {
			return wrapErr(err)
		}
		p.Points = newBalance
		p.Tier = newTier
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *loyaltyRepository) Unenroll(ctx context.Context, customerID int32) error {
	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`DELETE FROM loyalty_programs WHERE customer_id = $1`, customerID)
		if err != nil {
			return wrapErr(err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return wrapErr(err)
		}
		if n == 0 {
			return domain.NotFoundf("no loyalty program for customer %d", customerID)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE customers SET is_loyalty_member = FALSE WHERE id = $1`, customerID)
		return wrapErr(err)
	})
}
