package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type reviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

const reviewColumns = `id, rental_id, rating_score, COALESCE(review_text, ''), review_date`

func scanReview(row interface{ Scan(...any) error }) (*domain.Review, error) {
	rv := &domain.Review{}
	err := row.Scan(&rv.ID, &rv.RentalID, &rv.Rating, &rv.Text, &rv.Date)
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func (r *reviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO review_ratings (rental_id, rating_score, review_text, review_date)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		rv.RentalID, rv.Rating, rv.Text, rv.Date).Scan(&rv.ID)
	if isUniqueViolation(err) {
		return domain.Conflictf("rental %d already has a review", rv.RentalID)
	}
	return wrapErr(err)
}

func (r *reviewRepository) GetByID(ctx context.Context, id int32) (*domain.Review, error) {
	rv, err := scanReview(r.db.QueryRowContext(ctx,
		`SELECT `+reviewColumns+` FROM review_ratings WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("review %d not found", id)
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return rv, nil
}

func (r *reviewRepository) GetByRental(ctx context.Context, rentalID int32) (*domain.Review, error) {
	rv, err := scanReview(r.db.QueryRowContext(ctx,
		`SELECT `+reviewColumns+` FROM review_ratings WHERE rental_id = $1`, rentalID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("no review for rental %d", rentalID)
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return rv, nil
}

func (r *reviewRepository) ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.Review, error) {
	return r.list(ctx,
		`SELECT rr.id, rr.rental_id, rr.rating_score, COALESCE(rr.review_text, ''), rr.review_date
		 FROM review_ratings rr
		 JOIN rentals r ON rr.rental_id = r.id
		 WHERE r.vehicle_id = $1
		 ORDER BY rr.review_date DESC`, vehicleID)
}

func (r *reviewRepository) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Review, error) {
	return r.list(ctx,
		`SELECT rr.id, rr.rental_id, rr.rating_score, COALESCE(rr.review_text, ''), rr.review_date
		 FROM review_ratings rr
		 JOIN rentals r ON rr.rental_id = r.id
		 WHERE r.customer_id = $1
		 ORDER BY rr.review_date DESC`, customerID)
}

func (r *reviewRepository) list(ctx context.Context, query string, arg any) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, wrapErr(err)
		}
		reviews = append(reviews, *rv)
	}
	return reviews, wrapErr(rows.Err())
}

func (r *reviewRepository) Update(ctx context.Context, id int32, upd *domain.ReviewUpdate) (*domain.Review, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE review_ratings SET
		   rating_score = COALESCE($2, rating_score),
		   review_text = COALESCE($3, review_text)
		 WHERE id = $1`,
		id, upd.Rating, upd.Text)
	if err != nil {
		return nil, wrapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, wrapErr(err)
	}
	if n == 0 {
		return nil, domain.NotFoundf("review %d not found", id)
	}
	return r.GetByID(ctx, id)
}

func (r *reviewRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM review_ratings WHERE id = $1`, id)
	if err != nil {
		return wrapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapErr(err)
	}
	if n == 0 {
		return domain.NotFoundf("review %d not found", id)
	}
	return nil
}
