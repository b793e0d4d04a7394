package domain

import "time"

// FleetUtilization groups the fleet by vehicle type with a rented ratio.
type FleetUtilization struct {
	VehicleType     string  `json:"vehicle_type"`
	TotalVehicles   int32   `json:"total_vehicles"`
	RentedCount     int32   `json:"rented_count"`
	UtilizationRate float64 `json:"utilization_rate"`
}

// PopularVehicle ranks vehicles by how often they have been rented.
type PopularVehicle struct {
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	VehicleType string `json:"vehicle_type"`
	RentalCount int32  `json:"rental_count"`
}

type RevenuePoint struct {
	Date    time.Time `json:"date"`
	Revenue float64   `json:"revenue"`
	Rentals int32     `json:"rentals"`
}

type FleetOverview struct {
	TotalVehicles int32    `json:"total_vehicles"`
	Available     int32    `json:"available"`
	Rented        int32    `json:"rented"`
	InMaintenance int32    `json:"in_maintenance"`
	AvgDailyRate  *float64 `json:"avg_daily_rate,omitempty"`
}
