package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRentalDays(t *testing.T) {
	tests := []struct {
		name   string
		pickup string
		ret    string
		want   int32
	}{
		{"same day floors to one", "2024-01-01", "2024-01-01", 1},
		{"three whole days", "2024-01-01", "2024-01-04", 3},
		{"single day", "2024-01-01", "2024-01-02", 1},
		{"across month boundary", "2024-01-30", "2024-02-02", 3},
		{"leap february", "2024-02-28", "2024-03-01", 2},
		{"return before pickup still bills one day", "2024-01-05", "2024-01-04", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RentalDays(day(tt.pickup), day(tt.ret)))
		})
	}
}

func TestRentalDaysIgnoresTimeOfDay(t *testing.T) {
	pickup := time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)
	ret := time.Date(2024, 1, 4, 0, 15, 0, 0, time.UTC)
	assert.Equal(t, int32(3), RentalDays(pickup, ret))
}

func TestReturnCost(t *testing.T) {
	// Fixtures from the rental billing rules.
	assert.Equal(t, 50.0, ReturnCost(day("2024-01-01"), day("2024-01-01"), 50, 0))
	assert.Equal(t, 120.0, ReturnCost(day("2024-01-01"), day("2024-01-04"), 40, 0))
	assert.Equal(t, 135.5, ReturnCost(day("2024-01-01"), day("2024-01-04"), 40, 15.5))
}

func TestEstimateCost(t *testing.T) {
	assert.Equal(t, 100.0, EstimateCost(day("2024-03-10"), day("2024-03-12"), 50))
	assert.Equal(t, 50.0, EstimateCost(day("2024-03-10"), day("2024-03-10"), 50))
}

func TestDiscountedCost(t *testing.T) {
	pct := 25.0
	amt := 30.0
	big := 500.0

	assert.Equal(t, 75.0, DiscountedCost(100, &pct, nil))
	assert.Equal(t, 70.0, DiscountedCost(100, nil, &amt))
	assert.Equal(t, 0.0, DiscountedCost(100, nil, &big))
	assert.Equal(t, 100.0, DiscountedCost(100, nil, nil))
}
