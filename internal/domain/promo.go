package domain

import (
	"regexp"
	"strings"
	"time"
)

var promoCodePattern = regexp.MustCompile(`^[A-Z0-9_-]{3,20}$`)

type PromoOffer struct {
	ID                 int32     `json:"promo_id"`
	Code               string    `json:"code"`
	Description        string    `json:"description"`
	DiscountPercentage *float64  `json:"discount_percentage,omitempty"`
	DiscountAmount     *float64  `json:"discount_amount,omitempty"`
	MinRentalDays      *int32    `json:"min_rental_days,omitempty"`
	ValidFrom          time.Time `json:"valid_from"`
	ValidUntil         time.Time `json:"valid_until"`
	IsActive           bool      `json:"is_active"`
	RequiresLoyalty    bool      `json:"requires_loyalty"`
	MinLoyaltyPoints   *int32    `json:"min_loyalty_points,omitempty"`
	UsageLimit         *int32    `json:"usage_limit,omitempty"`
	TimesUsed          int32     `json:"times_used"`
}

// NormalizeCode uppercases and validates a promo code. Codes are immutable
// after creation.
func NormalizeCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !promoCodePattern.MatchString(code) {
		return "", Validationf("promo code must be 3-20 characters of A-Z, 0-9, _ or -")
	}
	return code, nil
}

// ValidateDiscount enforces that exactly one discount form is set and that it
// is strictly positive; percentages are capped at 100.
func ValidateDiscount(percentage, amount *float64) error {
	if percentage != nil && amount != nil {
		return Validationf("cannot specify both discount_percentage and discount_amount")
	}
	if percentage == nil && amount == nil {
		return Validationf("one of discount_percentage or discount_amount is required")
	}
	if percentage != nil {
		if *percentage <= 0 {
			return Validationf("discount_percentage must be greater than 0")
		}
		if *percentage > 100 {
			return Validationf("discount_percentage cannot exceed 100")
		}
	}
	if amount != nil && *amount <= 0 {
		return Validationf("discount_amount must be greater than 0")
	}
	return nil
}

type PromoUpdate struct {
	Description      *string
	DiscountPct      *float64
	DiscountAmt      *float64
	MinRentalDays    *int32
	ValidUntil       *time.Time
	IsActive         *bool
	RequiresLoyalty  *bool
	MinLoyaltyPoints *int32
	UsageLimit       *int32
}

func (u *PromoUpdate) IsEmpty() bool {
	return u.Description == nil && u.DiscountPct == nil && u.DiscountAmt == nil &&
		u.MinRentalDays == nil && u.ValidUntil == nil && u.IsActive == nil &&
		u.RequiresLoyalty == nil && u.MinLoyaltyPoints == nil && u.UsageLimit == nil
}

// PromoValidation is the outcome of evaluating a promo against a rental
// context. Every failed check contributes one error; the promo is valid only
// when no errors accumulated.
type PromoValidation struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors,omitempty"`
}
