package domain

import "strings"

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "Available"
	VehicleStatusRented      VehicleStatus = "Rented"
	VehicleStatusMaintenance VehicleStatus = "Maintenance"
)

// ParseVehicleStatus normalizes user-supplied status strings. Comparisons in
// the rest of the codebase always go through the typed constants.
func ParseVehicleStatus(s string) (VehicleStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "available":
		return VehicleStatusAvailable, nil
	case "rented":
		return VehicleStatusRented, nil
	case "maintenance":
		return VehicleStatusMaintenance, nil
	}
	return "", Validationf("unknown vehicle status %q", s)
}

type Vehicle struct {
	ID              int32         `json:"id"`
	Code            string        `json:"vehicle_code"`
	Brand           string        `json:"brand"`
	Model           string        `json:"model"`
	Type            string        `json:"type,omitempty"`
	FuelType        string        `json:"fuel_type,omitempty"`
	Transmission    string        `json:"transmission,omitempty"`
	Status          VehicleStatus `json:"status"`
	DailyRate       float64       `json:"daily_rate"`
	SeatingCapacity *int32        `json:"seating_capacity,omitempty"`
}

// Info is the human-readable descriptor used in rental listings.
func (v *Vehicle) Info() string {
	return v.Brand + " " + v.Model
}

// VehicleUpdate is a sparse partial update. Nil fields are left untouched.
// The repository applies it through a fixed set of parameterized column
// assignments; field names never come from user input.
type VehicleUpdate struct {
	Brand           *string
	Model           *string
	Type            *string
	FuelType        *string
	Transmission    *string
	Status          *VehicleStatus
	DailyRate       *float64
	SeatingCapacity *int32
}

func (u *VehicleUpdate) IsEmpty() bool {
	return u.Brand == nil && u.Model == nil && u.Type == nil && u.FuelType == nil &&
		u.Transmission == nil && u.Status == nil && u.DailyRate == nil && u.SeatingCapacity == nil
}
