package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository/postgres"
)

func TestPromoRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Referenced promo is soft-deleted", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewPromoRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int32(3)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectExec("UPDATE promo_offers SET is_active = FALSE").
			WithArgs(int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		hardDeleted, err := repo.Delete(ctx, 3)
		assert.NoError(t, err)
		assert.False(t, hardDeleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unreferenced promo is hard-deleted", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewPromoRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int32(3)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("DELETE FROM promo_offers").
			WithArgs(int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		hardDeleted, err := repo.Delete(ctx, 3)
		assert.NoError(t, err)
		assert.True(t, hardDeleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing promo not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewPromoRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int32(3)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("DELETE FROM promo_offers").
			WithArgs(int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err = repo.Delete(ctx, 3)
		assert.True(t, domain.IsNotFound(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPromoRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Duplicate code conflicts", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewPromoRepository(db)

		mock.ExpectQuery("INSERT INTO promo_offers").
			WillReturnError(&pq.Error{Code: "23505"})

		err = repo.Create(ctx, &domain.PromoOffer{
			Code:      "SUMMER25",
			ValidFrom: time.Now(),
		})
		assert.True(t, domain.IsConflict(err))
	})
}

func TestPromoRepository_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("Double application conflicts", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewPromoRepository(db)

		mock.ExpectExec("INSERT INTO rental_promos").
			WithArgs(int32(4), int32(3)).
			WillReturnError(&pq.Error{Code: "23505"})

		err = repo.Apply(ctx, 4, 3)
		assert.True(t, domain.IsConflict(err))
	})
}

func TestPromoRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Switching discount form clears the old one", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewPromoRepository(db)

		mock.ExpectExec(`discount_amount = CASE WHEN (.+) THEN NULL`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		rows := sqlmock.NewRows([]string{
			"id", "code", "description", "discount_percentage", "discount_amount",
			"min_rental_days", "valid_from", "valid_until", "is_active",
			"requires_loyalty", "min_loyalty_points", "usage_limit", "times_used",
		}).AddRow(3, "SUMMER25", "Summer sale", 25.0, nil, nil,
			time.Now().AddDate(0, 0, -7), time.Now().AddDate(0, 0, 7), true,
			false, nil, nil, 0)
		mock.ExpectQuery("SELECT (.+) FROM promo_offers").
			WithArgs(int32(3)).
			WillReturnRows(rows)

		pct := 25.0
		promo, err := repo.Update(ctx, 3, &domain.PromoUpdate{DiscountPct: &pct})
		assert.NoError(t, err)
		assert.Equal(t, 25.0, *promo.DiscountPercentage)
		assert.Nil(t, promo.DiscountAmount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPromoRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Times used comes from the join", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewPromoRepository(db)

		rows := sqlmock.NewRows([]string{
			"id", "code", "description", "discount_percentage", "discount_amount",
			"min_rental_days", "valid_from", "valid_until", "is_active",
			"requires_loyalty", "min_loyalty_points", "usage_limit", "times_used",
		}).AddRow(3, "SUMMER25", "Summer sale", 25.0, nil, nil,
			time.Now().AddDate(0, 0, -7), time.Now().AddDate(0, 0, 7), true,
			false, nil, 100, 42)

		mock.ExpectQuery("SELECT (.+) FROM promo_offers").
			WithArgs(int32(3)).
			WillReturnRows(rows)

		promo, err := repo.GetByID(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), promo.TimesUsed)
		assert.Equal(t, 25.0, *promo.DiscountPercentage)
	})
}
