package service

import (
	"context"
	"fmt"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/utils"
)

type promoService struct {
	promoRepo  repository.PromoRepository
	rentalRepo repository.RentalRepository
	now        func() time.Time
}

func NewPromoService(promoRepo repository.PromoRepository, rentalRepo repository.RentalRepository) PromoService {
	return &promoService{
		promoRepo:  promoRepo,
		rentalRepo: rentalRepo,
		now:        time.Now,
	}
}

func (s *promoService) Create(ctx context.Context, in *CreatePromoInput) (*domain.PromoOffer, error) {
	code, err := domain.NormalizeCode(in.Code)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateDiscount(in.DiscountPercentage, in.DiscountAmount); err != nil {
		return nil, err
	}
	if in.ValidUntil.Before(in.ValidFrom) {
		return nil, domain.Validationf("valid_until must not be before valid_from")
	}
	if in.MinRentalDays != nil && *in.MinRentalDays < 1 {
		return nil, domain.Validationf("min_rental_days must be at least 1")
	}
	if in.UsageLimit != nil && *in.UsageLimit < 1 {
		return nil, domain.Validationf("usage_limit must be at least 1")
	}
	if in.MinLoyaltyPoints != nil && *in.MinLoyaltyPoints < 0 {
		return nil, domain.Validationf("min_loyalty_points must not be negative")
	}

	promo := &domain.PromoOffer{
		Code:               code,
		Description:        in.Description,
		DiscountPercentage: in.DiscountPercentage,
		DiscountAmount:     in.DiscountAmount,
		MinRentalDays:      in.MinRentalDays,
		ValidFrom:          in.ValidFrom,
		ValidUntil:         in.ValidUntil,
		IsActive:           in.IsActive,
		RequiresLoyalty:    in.RequiresLoyalty,
		MinLoyaltyPoints:   in.MinLoyaltyPoints,
		UsageLimit:         in.UsageLimit,
	}
	if err := s.promoRepo.Create(ctx, promo); err != nil {
		return nil, err
	}

	logger.Info("promo created", "promo_id", promo.ID, "code", promo.Code)
	return promo, nil
}

func (s *promoService) Get(ctx context.Context, promoID int32) (*domain.PromoOffer, error) {
	return s.promoRepo.GetByID(ctx, promoID)
}

func (s *promoService) GetByCode(ctx context.Context, code string) (*domain.PromoOffer, error) {
	normalized, err := domain.NormalizeCode(code)
	if err != nil {
		return nil, err
	}
	return s.promoRepo.GetByCode(ctx, normalized)
}

func (s *promoService) List(ctx context.Context, activeOnly, validNow bool, limit, offset int32) ([]domain.PromoOffer, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.promoRepo.List(ctx, activeOnly, validNow, limit, offset)
}

func (s *promoService) Update(ctx context.Context, promoID int32, upd *domain.PromoUpdate) (*domain.PromoOffer, error) {
	if upd == nil || upd.IsEmpty() {
		return nil, domain.Validationf("no fields to update")
	}
	if upd.DiscountPct != nil || upd.DiscountAmt != nil {
		// When either discount form is touched the pair must still end up
		// mutually exclusive; the repository clears the other form.
		if upd.DiscountPct != nil && upd.DiscountAmt != nil {
			return nil, domain.Validationf("cannot specify both discount_percentage and discount_amount")
		}
		if upd.DiscountPct != nil {
			if *upd.DiscountPct <= 0 || *upd.DiscountPct > 100 {
				return nil, domain.Validationf("discount_percentage must be in (0, 100]")
			}
		}
		if upd.DiscountAmt != nil && *upd.DiscountAmt <= 0 {
			return nil, domain.Validationf("discount_amount must be greater than 0")
		}
	}
	if upd.MinRentalDays != nil && *upd.MinRentalDays < 1 {
		return nil, domain.Validationf("min_rental_days must be at least 1")
	}
	if upd.UsageLimit != nil && *upd.UsageLimit < 1 {
		return nil, domain.Validationf("usage_limit must be at least 1")
	}
	return s.promoRepo.Update(ctx, promoID, upd)
}

func (s *promoService) Delete(ctx context.Context, promoID int32) (bool, error) {
	hardDeleted, err := s.promoRepo.Delete(ctx, promoID)
	if err != nil {
		return false, err
	}
	logger.Info("promo deleted", "promo_id", promoID, "hard", hardDeleted)
	return hardDeleted, nil
}

// Validate evaluates every eligibility rule and collects all failures rather
// than stopping at the first one. Loyalty checks are skipped when no customer
// is supplied.
func (s *promoService) Validate(ctx context.Context, promoID int32, rentalDays int32, customerID *int32) (*domain.PromoValidation, error) {
	promo, err := s.promoRepo.GetByID(ctx, promoID)
	if err != nil {
		return nil, err
	}
	return s.evaluate(ctx, promo, rentalDays, customerID)
}

func (s *promoService) evaluate(ctx context.Context, promo *domain.PromoOffer, rentalDays int32, customerID *int32) (*domain.PromoValidation, error) {
	var errs []string

	if !promo.IsActive {
		errs = append(errs, "Promo code is not active")
	}

	today := dateOnly(s.now())
	if today.Before(dateOnly(promo.ValidFrom)) {
		errs = append(errs, "Promo code is not yet valid")
	}
	if today.After(dateOnly(promo.ValidUntil)) {
		errs = append(errs, "Promo code has expired")
	}

	if promo.UsageLimit != nil && promo.TimesUsed >= *promo.UsageLimit {
		errs = append(errs, "Promo code has reached its usage limit")
	}

	if promo.MinRentalDays != nil && rentalDays < *promo.MinRentalDays {
		errs = append(errs, fmt.Sprintf("This promo code requires a rental of at least %d days", *promo.MinRentalDays))
	}

	if customerID != nil {
		isMember, points, err := s.promoRepo.LoyaltyContext(ctx, *customerID)
		if err != nil {
			return nil, err
		}
		if promo.RequiresLoyalty && !isMember {
			errs = append(errs, "This promo code requires loyalty membership")
		}
		if promo.MinLoyaltyPoints != nil && points < *promo.MinLoyaltyPoints {
			errs = append(errs, fmt.Sprintf("This promo code requires %d loyalty points", *promo.MinLoyaltyPoints))
		}
	}

	return &domain.PromoValidation{IsValid: len(errs) == 0, Errors: errs}, nil
}

// Apply validates the promo against the rental's customer and duration,
// records the link and returns the discounted estimate. The repository
// rejects a second application of the same promo to the same rental.
func (s *promoService) Apply(ctx context.Context, rentalID, promoID int32) (float64, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return 0, err
	}
	promo, err := s.promoRepo.GetByID(ctx, promoID)
	if err != nil {
		return 0, err
	}

	days := utils.RentalDays(rental.PickupAt, rental.ExpectedReturnAt)
	validation, err := s.evaluate(ctx, promo, days, &rental.CustomerID)
	if err != nil {
		return 0, err
	}
	if !validation.IsValid {
		return 0, domain.Validationf("promo is not applicable: %s", validation.Errors[0])
	}

	if err := s.promoRepo.Apply(ctx, rentalID, promoID); err != nil {
		return 0, err
	}

	var total float64
	if rental.TotalCost != nil {
		total = *rental.TotalCost
	}
	discounted := utils.DiscountedCost(total, promo.DiscountPercentage, promo.DiscountAmount)
	logger.Info("promo applied", "promo_id", promoID, "rental_id", rentalID, "discounted_total", discounted)
	return discounted, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
