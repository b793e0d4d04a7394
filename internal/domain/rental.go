package domain

import "time"

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "Active"
	RentalStatusCompleted RentalStatus = "Completed"
	RentalStatusCancelled RentalStatus = "Cancelled"
)

type Rental struct {
	ID               int32        `json:"id"`
	CustomerID       int32        `json:"customer_id"`
	VehicleID        int32        `json:"vehicle_id"`
	PickupBranchID   int32        `json:"pickup_branch_id"`
	ReturnBranchID   int32        `json:"return_branch_id"`
	PickupAt         time.Time    `json:"pickup_datetime"`
	ExpectedReturnAt time.Time    `json:"expected_return_datetime"`
	ActualReturnAt   *time.Time   `json:"actual_return_datetime,omitempty"`
	TotalCost        *float64     `json:"total_cost,omitempty"`
	Status           RentalStatus `json:"status"`
	Notes            string       `json:"notes,omitempty"`

	// Joined read-only fields.
	CustomerName string  `json:"customer_name,omitempty"`
	VehicleInfo  string  `json:"vehicle_info,omitempty"`
	DailyRate    float64 `json:"daily_rate,omitempty"`
}

// Open reports whether the rental is still awaiting a return.
func (r *Rental) Open() bool {
	return r.ActualReturnAt == nil && r.Status == RentalStatusActive
}

// RentalListFilter narrows ListRentals. "ongoing" keys off the absence of an
// actual return timestamp, not the status column.
type RentalListFilter struct {
	Status     string // "", "ongoing", "completed", "cancelled"
	CustomerID *int32
	VehicleID  *int32
}

// HistoryEntry is one row of a customer's rental history, with the review
// left for that rental if any.
type HistoryEntry struct {
	RentalID   int32      `json:"rental_id"`
	Brand      string     `json:"brand"`
	Model      string     `json:"model"`
	PickupAt   time.Time  `json:"pickup_datetime"`
	TotalCost  *float64   `json:"total_cost,omitempty"`
	Rating     *float64   `json:"rating_score,omitempty"`
	ReviewText *string    `json:"review_text,omitempty"`
	ReturnedAt *time.Time `json:"actual_return_datetime,omitempty"`
}
