package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/security"
	"carrental-backend/internal/service"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	assert.NoError(t, err)
	user := &domain.User{ID: 1, Username: "admin", PasswordHash: string(hash)}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)
		userRepo.On("GetByUsername", ctx, "admin").Return(user, nil)

		token, got, err := svc.Login(ctx, "admin", "correct-horse")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, user.ID, got.ID)

		claims, err := tokens.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), claims.UserID)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("Wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)
		userRepo.On("GetByUsername", ctx, "admin").Return(user, nil)

		_, _, err := svc.Login(ctx, "admin", "wrong")
		assert.True(t, domain.IsUnauthorized(err))
	})

	t.Run("Unknown user reads the same as bad password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)
		userRepo.On("GetByUsername", ctx, "nobody").Return(nil, domain.NotFoundf("user nobody not found"))

		_, _, err := svc.Login(ctx, "nobody", "whatever")
		assert.True(t, domain.IsUnauthorized(err))
		assert.Equal(t, "invalid username or password", domain.MessageOf(err))
	})

	t.Run("Disabled user rejected", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)
		disabled := *user
		disabled.Disabled = true
		userRepo.On("GetByUsername", ctx, "admin").Return(&disabled, nil)

		_, _, err := svc.Login(ctx, "admin", "correct-horse")
		assert.True(t, domain.IsUnauthorized(err))
	})
}

func TestAuthService_CreateUser(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour)

	t.Run("Hashes the password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := svc.CreateUser(ctx, "staff1", "longenough", "Staff One", "s1@example.com")
		assert.NoError(t, err)
		assert.NotEqual(t, "longenough", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("longenough")))
	})

	t.Run("Short password rejected", func(t *testing.T) {
		svc := service.NewAuthService(new(MockUserRepo), tokens)
		_, err := svc.CreateUser(ctx, "staff1", "short", "", "")
		assert.True(t, domain.IsValidation(err))
	})
}
