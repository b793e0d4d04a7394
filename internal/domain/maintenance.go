package domain

import "time"

type Maintenance struct {
	ID          int32     `json:"maintenance_id"`
	VehicleID   int32     `json:"vehicle_id"`
	Description string    `json:"description"`
	Date        time.Time `json:"maintenance_date"`
	Cost        *float64  `json:"cost,omitempty"`
	PerformedBy *string   `json:"performed_by,omitempty"`

	VehicleInfo string `json:"vehicle_info,omitempty"`
}

type MaintenanceUpdate struct {
	Description *string
	Date        *time.Time
	Cost        *float64
	PerformedBy *string
}

func (u *MaintenanceUpdate) IsEmpty() bool {
	return u.Description == nil && u.Date == nil && u.Cost == nil && u.PerformedBy == nil
}

// MaintenanceStats aggregates service records per vehicle.
type MaintenanceStats struct {
	VehicleID   int32    `json:"vehicle_id"`
	VehicleInfo string   `json:"vehicle_info"`
	RecordCount int32    `json:"record_count"`
	TotalCost   float64  `json:"total_cost"`
	AverageCost *float64 `json:"average_cost,omitempty"`
}
