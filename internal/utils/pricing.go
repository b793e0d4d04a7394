package utils

import "time"

// RentalDays counts whole days elapsed between the pickup date and the
// return date, floored to a minimum of 1. A same-day or sub-day return still
// bills one full day; that is a business rule, not rounding.
func RentalDays(pickup, ret time.Time) int32 {
	p := dateOnly(pickup)
	r := dateOnly(ret)
	days := int32(r.Sub(p).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

// EstimateCost is the non-authoritative cost quoted at booking time.
func EstimateCost(pickup, expectedReturn time.Time, dailyRate float64) float64 {
	return float64(RentalDays(pickup, expectedReturn)) * dailyRate
}

// ReturnCost is the authoritative total computed exactly once, when the
// vehicle comes back.
func ReturnCost(pickup, actualReturn time.Time, dailyRate, additionalCharges float64) float64 {
	return float64(RentalDays(pickup, actualReturn))*dailyRate + additionalCharges
}

// DiscountedCost applies a promo discount to a total, clamping at zero for
// flat-amount discounts larger than the total.
func DiscountedCost(total float64, percentage, amount *float64) float64 {
	switch {
	case percentage != nil:
		total = total * (1 - *percentage/100)
	case amount != nil:
		total = total - *amount
	}
	if total < 0 {
		return 0
	}
	return total
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
