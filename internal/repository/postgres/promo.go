package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type promoRepository struct {
	db *sql.DB
}

func NewPromoRepository(db *sql.DB) repository.PromoRepository {
	return &promoRepository{db: db}
}

const promoSelect = `
	SELECT p.id, p.code, p.description, p.discount_percentage, p.discount_amount,
	       p.min_rental_days, p.valid_from, p.valid_until, p.is_active,
	       p.requires_loyalty, p.min_loyalty_points, p.usage_limit,
	       COUNT(rp.rental_id) AS times_used
	FROM promo_offers p
	LEFT JOIN rental_promos rp ON p.id = rp.promo_id`

const promoGroupBy = ` GROUP BY p.id`

func scanPromo(row interface{ Scan(...any) error }) (*domain.PromoOffer, error) {
	p := &domain.PromoOffer{}
	err := row.Scan(&p.ID, &p.Code, &p.Description, &p.DiscountPercentage, &p.DiscountAmount,
		&p.MinRentalDays, &p.ValidFrom, &p.ValidUntil, &p.IsActive,
		&p.RequiresLoyalty, &p.MinLoyaltyPoints, &p.UsageLimit, &p.TimesUsed)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *promoRepository) Create(ctx context.Context, p *domain.PromoOffer) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO promo_offers (code, description, discount_percentage, discount_amount, min_rental_days, valid_from, valid_until, is_active, requires_loyalty, min_loyalty_points, usage_limit)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`,
		p.Code, p.Description, p.DiscountPercentage, p.DiscountAmount, p.MinRentalDays,
		p.ValidFrom, p.ValidUntil, p.IsActive, p.RequiresLoyalty, p.MinLoyaltyPoints,
		p.UsageLimit).Scan(&p.ID)
	if isUniqueViolation(err) {
		return domain.Conflictf("promo code %s already exists", p.Code)
	}
	return wrapErr(err)
}

func (r *promoRepository) GetByID(ctx context.Context, id int32) (*domain.PromoOffer, error) {
	p, err := scanPromo(r.db.QueryRowContext(ctx, promoSelect+` WHERE p.id = $1`+promoGroupBy, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("promo offer %d not found", id)
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return p, nil
}

func (r *promoRepository) GetByCode(ctx context.Context, code string) (*domain.PromoOffer, error) {
	p, err := scanPromo(r.db.QueryRowContext(ctx, promoSelect+` WHERE p.code = $1`+promoGroupBy, code))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("promo code %s not found", code)
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return p, nil
}

func (r *promoRepository) List(ctx context.Context, activeOnly, validNow bool, limit, offset int32) ([]domain.PromoOffer, error) {
	query := promoSelect + ` WHERE 1=1`
	if activeOnly {
		query += ` AND p.is_active = TRUE`
	}
	if validNow {
		query += ` AND CURRENT_DATE BETWEEN p.valid_from AND p.valid_until`
	}
	query += promoGroupBy + ` ORDER BY p.valid_from DESC, p.code LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	var promos []domain.PromoOffer
	for rows.Next() {
		p, err := scanPromo(rows)
		if err != nil {
			return nil, wrapErr(err)
		}
		promos = append(promos, *p)
	}
	return promos, wrapErr(rows.Err())
}

func (r *promoRepository) Update(ctx context.Context, id int32, upd *domain.PromoUpdate) (*domain.PromoOffer, error) {
	// Code is deliberately absent: promo codes are immutable after creation.
	// Supplying one discount form clears the other so the row never carries
	// both; the service rejects updates that set both at once.
	res, err := r.db.ExecContext(ctx,
		`UPDATE promo_offers SET
		   description = COALESCE($2, description),
		   discount_percentage = CASE WHEN $4::numeric IS NOT NULL THEN NULL
		                              ELSE COALESCE($3, discount_percentage) END,
		   discount_amount = CASE WHEN $3::numeric IS NOT NULL THEN NULL
		                          ELSE COALESCE($4, discount_amount) END,
		   min_rental_days = COALESCE($5, min_rental_days),
		   valid_until = COALESCE($6, valid_until),
		   is_active = COALESCE($7, is_active),
		   requires_loyalty = COALESCE($8, requires_loyalty),
		   min_loyalty_points = COALESCE($9, min_loyalty_points),
		   usage_limit = COALESCE($10, usage_limit)
		 WHERE id = $1`,
		id, upd.Description, upd.DiscountPct, upd.DiscountAmt, upd.MinRentalDays,
		upd.ValidUntil, upd.IsActive, upd.RequiresLoyalty, upd.MinLoyaltyPoints, upd.UsageLimit)
	if err != nil {
		return nil, wrapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, wrapErr(err)
	}
	if n == 0 {
		return nil, domain.NotFoundf("promo offer %d not found", id)
	}
	return r.GetByID(ctx, id)
}

func (r *promoRepository) Delete(ctx context.Context, id int32) (bool, error) {
	var hardDeleted bool
	err := inTx(ctx, r.db, func(tx *sql.Tx) error {
		var used bool
		err := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM rental_promos WHERE promo_id = $1)`, id).Scan(&used)
		if err != nil {
			return wrapErr(err)
		}

		var res sql.Result
		if used {
			// Referenced promos keep their row for rental history.
			res, err = tx.ExecContext(ctx,
				`UPDATE promo_offers SET is_active = FALSE WHERE id = $1`, id)
		} else {
			res, err = tx.ExecContext(ctx,
				`DELETE FROM promo_offers WHERE id = $1`, id)
			hardDeleted = true
		}
		if err != nil {
			return wrapErr(err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return wrapErr(err)
		}
		if n == 0 {
			return domain.NotFoundf("promo offer %d not found", id)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return hardDeleted, nil
}

func (r *promoRepository) Apply(ctx context.Context, rentalID, promoID int32) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO rental_promos (rental_id, promo_id) VALUES ($1, $2)`, rentalID, promoID)
	if isUniqueViolation(err) {
		return domain.Conflictf("promo %d already applied to rental %d", promoID, rentalID)
	}
	return wrapErr(err)
}

func (r *promoRepository) LoyaltyContext(ctx context.Context, customerID int32) (bool, int32, error) {
	var isMember bool
	var points int32
	err := r.db.QueryRowContext(ctx,
		`SELECT c.is_loyalty_member, COALESCE(l.points_balance, 0)
		 FROM customers c
		 LEFT JOIN loyalty_programs l ON l.customer_id = c.id
		 WHERE c.id = $1`, customerID).Scan(&isMember, &points)
	if errors.Is(err, sql.ErrNoRows) {
		return false, 0, domain.NotFoundf("customer %d not found", customerID)
	}
	if err != nil {
		return false, 0, wrapErr(err)
	}
	return isMember, points, nil
}
