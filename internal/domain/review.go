package domain

import (
	"math"
	"time"
)

type Review struct {
	ID       int32     `json:"review_id"`
	RentalID int32     `json:"rental_id"`
	Rating   float64   `json:"rating_score"`
	Text     string    `json:"review_text,omitempty"`
	Date     time.Time `json:"review_date"`
}

// ValidateRating enforces the 1.0-5.0 range at one decimal place of
// precision.
func ValidateRating(rating float64) error {
	if rating < 1.0 || rating > 5.0 {
		return Validationf("rating_score must be between 1.0 and 5.0")
	}
	if math.Abs(rating*10-math.Round(rating*10)) > 1e-9 {
		return Validationf("rating_score must have at most one decimal place")
	}
	return nil
}

type ReviewUpdate struct {
	Rating *float64
	Text   *string
}

func (u *ReviewUpdate) IsEmpty() bool {
	return u.Rating == nil && u.Text == nil
}
