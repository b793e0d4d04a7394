package service

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

type loyaltyService struct {
	loyaltyRepo  repository.LoyaltyRepository
	customerRepo repository.CustomerRepository
}

func NewLoyaltyService(loyaltyRepo repository.LoyaltyRepository, customerRepo repository.CustomerRepository) LoyaltyService {
	return &loyaltyService{loyaltyRepo: loyaltyRepo, customerRepo: customerRepo}
}

func (s *loyaltyService) Enroll(ctx context.Context, customerID int32, initialPoints int32, dateJoined time.Time) (*domain.LoyaltyProgram, error) {
	if initialPoints < 0 {
		return nil, domain.Validationf("initial points must not be negative")
	}
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	if dateJoined.IsZero() {
		dateJoined = time.Now()
	}

	program := &domain.LoyaltyProgram{
		CustomerID: customerID,
		Points:     initialPoints,
		Tier:       domain.TierForBalance(initialPoints),
		DateJoined: dateJoined,
	}
	if err := s.loyaltyRepo.Enroll(ctx, program); err != nil {
		return nil, err
	}

	logger.Info("customer enrolled in loyalty program",
		"customer_id", customerID, "points", initialPoints, "tier", program.Tier)
	return program, nil
}

func (s *loyaltyService) Get(ctx context.Context, customerID int32) (*domain.LoyaltyProgram, error) {
	return s.loyaltyRepo.GetByCustomer(ctx, customerID)
}

func (s *loyaltyService) AdjustPoints(ctx context.Context, customerID int32, delta int32) (*domain.LoyaltyProgram, error) {
	if delta == 0 {
		return nil, domain.Validationf("points delta must not be zero")
	}
	program, err := s.loyaltyRepo.AdjustPoints(ctx, customerID, delta)
	if err != nil {
		return nil, err
	}
	logger.Info("loyalty points adjusted",
		"customer_id", customerID, "delta", delta, "balance", program.Points, "tier", program.Tier)
	return program, nil
}

func (s *loyaltyService) Unenroll(ctx context.Context, customerID int32) error {
	if err := s.loyaltyRepo.Unenroll(ctx, customerID); err != nil {
		return err
	}
	logger.Info("customer unenrolled from loyalty program", "customer_id", customerID)
	return nil
}
