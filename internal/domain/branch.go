package domain

type Branch struct {
	ID   int32  `json:"branch_id"`
	Name string `json:"name"`
	City string `json:"city,omitempty"`
}

// BranchStats summarizes rental activity per branch (pickup side).
type BranchStats struct {
	BranchID     int32   `json:"branch_id"`
	BranchName   string  `json:"branch_name"`
	RentalCount  int32   `json:"rental_count"`
	TotalRevenue float64 `json:"total_revenue"`
}
