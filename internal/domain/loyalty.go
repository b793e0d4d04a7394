package domain

import "time"

type LoyaltyTier string

const (
	TierBronze   LoyaltyTier = "Bronze"
	TierSilver   LoyaltyTier = "Silver"
	TierGold     LoyaltyTier = "Gold"
	TierPlatinum LoyaltyTier = "Platinum"
)

// TierForBalance derives the membership tier from a points balance. This is
// the only place tier thresholds live; every balance write recomputes the
// tier through it.
func TierForBalance(points int32) LoyaltyTier {
	switch {
	case points >= 10000:
		return TierPlatinum
	case points >= 5000:
		return TierGold
	case points >= 1000:
		return TierSilver
	default:
		return TierBronze
	}
}

type LoyaltyProgram struct {
	ID         int32       `json:"program_id"`
	CustomerID int32       `json:"customer_id"`
	Points     int32       `json:"points_balance"`
	Tier       LoyaltyTier `json:"membership_tier"`
	DateJoined time.Time   `json:"date_joined"`
}
