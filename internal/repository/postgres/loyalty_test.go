package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository/postgres"
)

func TestLoyaltyRepository_AdjustPoints(t *testing.T) {
	ctx := context.Background()
	joined := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	programRow := func(points int32, tier domain.LoyaltyTier) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "customer_id", "points_balance", "membership_tier", "date_joined"}).
			AddRow(1, 9, points, string(tier), joined)
	}

	t.Run("Deduction clamps at zero and demotes the tier", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewLoyaltyRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM loyalty_programs WHERE customer_id = \\$1 FOR UPDATE").
			WithArgs(int32(9)).
			WillReturnRows(programRow(1200, domain.TierSilver))
		mock.ExpectExec("UPDATE loyalty_programs SET points_balance").
			WithArgs(int32(9), int32(0), string(domain.TierBronze)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		program, err := repo.AdjustPoints(ctx, 9, -5000)
		assert.NoError(t, err)
		assert.Equal(t, int32(0), program.Points)
		assert.Equal(t, domain.TierBronze, program.Tier)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Earning promotes the tier", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewLoyaltyRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM loyalty_programs WHERE customer_id = \\$1 FOR UPDATE").
			WithArgs(int32(9)).
			WillReturnRows(programRow(4800, domain.TierSilver))
		mock.ExpectExec("UPDATE loyalty_programs SET points_balance").
			WithArgs(int32(9), int32(5300), string(domain.TierGold)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		program, err := repo.AdjustPoints(ctx, 9, 500)
		assert.NoError(t, err)
		assert.Equal(t, int32(5300), program.Points)
		assert.Equal(t, domain.TierGold, program.Tier)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No program rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewLoyaltyRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM loyalty_programs WHERE customer_id = \\$1 FOR UPDATE").
			WithArgs(int32(9)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "points_balance", "membership_tier", "date_joined"}))
		mock.ExpectRollback()

		program, err := repo.AdjustPoints(ctx, 9, 100)
		assert.Nil(t, program)
		assert.True(t, domain.IsNotFound(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLoyaltyRepository_Enroll(t *testing.T) {
	ctx := context.Background()

	t.Run("Program row and customer flag commit together", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewLoyaltyRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO loyalty_programs").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
		mock.ExpectExec("UPDATE customers SET is_loyalty_member = TRUE").
			WithArgs(int32(9)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		program := &domain.LoyaltyProgram{CustomerID: 9, Points: 100, Tier: domain.TierBronze, DateJoined: time.Now()}
		err = repo.Enroll(ctx, program)
		assert.NoError(t, err)
		assert.Equal(t, int32(3), program.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
