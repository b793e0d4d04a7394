package service

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
	rentalRepo repository.RentalRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, rentalRepo repository.RentalRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, rentalRepo: rentalRepo}
}

func (s *reviewService) Create(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	if err := domain.ValidateRating(rv.Rating); err != nil {
		return nil, err
	}

	rental, err := s.rentalRepo.GetByID(ctx, rv.RentalID)
	if err != nil {
		return nil, err
	}
	// Only finished trips can be reviewed.
	if rental.Status != domain.RentalStatusCompleted {
		return nil, domain.Conflictf("rental %d is not completed", rv.RentalID)
	}

	if rv.Date.IsZero() {
		rv.Date = time.Now()
	}
	if err := s.reviewRepo.Create(ctx, rv); err != nil {
		return nil, err
	}
	logger.Info("review created", "review_id", rv.ID, "rental_id", rv.RentalID, "rating", rv.Rating)
	return rv, nil
}

func (s *reviewService) Get(ctx context.Context, id int32) (*domain.Review, error) {
	return s.reviewRepo.GetByID(ctx, id)
}

func (s *reviewService) GetByRental(ctx context.Context, rentalID int32) (*domain.Review, error) {
	return s.reviewRepo.GetByRental(ctx, rentalID)
}

func (s *reviewService) ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.Review, error) {
	return s.reviewRepo.ListByVehicle(ctx, vehicleID)
}

func (s *reviewService) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Review, error) {
	return s.reviewRepo.ListByCustomer(ctx, customerID)
}

func (s *reviewService) Update(ctx context.Context, id int32, upd *domain.ReviewUpdate) (*domain.Review, error) {
	if upd == nil || upd.IsEmpty() {
		return nil, domain.Validationf("no fields to update")
	}
	if upd.Rating != nil {
		if err := domain.ValidateRating(*upd.Rating); err != nil {
			return nil, err
		}
	}
	return s.reviewRepo.Update(ctx, id, upd)
}

func (s *reviewService) Delete(ctx context.Context, id int32) error {
	return s.reviewRepo.Delete(ctx, id)
}
