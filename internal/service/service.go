package service

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

// CreateRentalInput carries the booking request. Branch ids default to the
// main branch when omitted.
type CreateRentalInput struct {
	CustomerID       int32
	VehicleID        int32
	PickupAt         time.Time
	ExpectedReturnAt time.Time
	PickupBranchID   int32
	ReturnBranchID   int32
}

type ReturnVehicleInput struct {
	ActualReturnAt    time.Time
	AdditionalCharges float64
	Notes             string
}

type RentalService interface {
	Create(ctx context.Context, in *CreateRentalInput) (*domain.Rental, error)
	Return(ctx context.Context, rentalID int32, in *ReturnVehicleInput) (*domain.Rental, error)
	Cancel(ctx context.Context, rentalID int32) (*domain.Rental, error)
	Get(ctx context.Context, rentalID int32) (*domain.Rental, error)
	List(ctx context.Context, filter *domain.RentalListFilter) ([]domain.Rental, error)
	CustomerHistory(ctx context.Context, customerID int32) ([]domain.HistoryEntry, error)
}

type CreatePromoInput struct {
	Code               string
	Description        string
	DiscountPercentage *float64
	DiscountAmount     *float64
	MinRentalDays      *int32
	ValidFrom          time.Time
	ValidUntil         time.Time
	IsActive           bool
	RequiresLoyalty    bool
	MinLoyaltyPoints   *int32
	UsageLimit         *int32
}

type PromoService interface {
	Create(ctx context.Context, in *CreatePromoInput) (*domain.PromoOffer, error)
	Get(ctx context.Context, promoID int32) (*domain.PromoOffer, error)
	GetByCode(ctx context.Context, code string) (*domain.PromoOffer, error)
	List(ctx context.Context, activeOnly, validNow bool, limit, offset int32) ([]domain.PromoOffer, error)
	Update(ctx context.Context, promoID int32, upd *domain.PromoUpdate) (*domain.PromoOffer, error)
	// Delete reports whether the promo row was removed (true) or only
	// deactivated because rentals reference it (false).
	Delete(ctx context.Context, promoID int32) (hardDeleted bool, err error)
	Validate(ctx context.Context, promoID int32, rentalDays int32, customerID *int32) (*domain.PromoValidation, error)
	// Apply links the promo to the rental and returns the rental's estimated
	// total with the discount applied.
	Apply(ctx context.Context, rentalID, promoID int32) (float64, error)
}

type LoyaltyService interface {
	Enroll(ctx context.Context, customerID int32, initialPoints int32, dateJoined time.Time) (*domain.LoyaltyProgram, error)
	Get(ctx context.Context, customerID int32) (*domain.LoyaltyProgram, error)
	AdjustPoints(ctx context.Context, customerID int32, delta int32) (*domain.LoyaltyProgram, error)
	Unenroll(ctx context.Context, customerID int32) error
}

type VehicleService interface {
	Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
	Get(ctx context.Context, id int32) (*domain.Vehicle, error)
	GetByCode(ctx context.Context, code string) (*domain.Vehicle, error)
	List(ctx context.Context, status, search string) ([]domain.Vehicle, error)
	Update(ctx context.Context, id int32, upd *domain.VehicleUpdate) (*domain.Vehicle, error)
	Delete(ctx context.Context, id int32) error
}

type CustomerService interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Get(ctx context.Context, id int32) (*domain.Customer, error)
	List(ctx context.Context, search string) ([]domain.Customer, error)
	Update(ctx context.Context, id int32, upd *domain.CustomerUpdate) (*domain.Customer, error)
	Delete(ctx context.Context, id int32) error
}

type MaintenanceService interface {
	Create(ctx context.Context, m *domain.Maintenance) (*domain.Maintenance, error)
	Get(ctx context.Context, id int32) (*domain.Maintenance, error)
	List(ctx context.Context, vehicleID *int32, from, to *time.Time) ([]domain.Maintenance, error)
	Stats(ctx context.Context) ([]domain.MaintenanceStats, error)
	Update(ctx context.Context, id int32, upd *domain.MaintenanceUpdate) (*domain.Maintenance, error)
	Delete(ctx context.Context, id int32) error
}

type ReviewService interface {
	Create(ctx context.Context, rv *domain.Review) (*domain.Review, error)
	Get(ctx context.Context, id int32) (*domain.Review, error)
	GetByRental(ctx context.Context, rentalID int32) (*domain.Review, error)
	ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.Review, error)
	ListByCustomer(ctx context.Context, customerID int32) ([]domain.Review, error)
	Update(ctx context.Context, id int32, upd *domain.ReviewUpdate) (*domain.Review, error)
	Delete(ctx context.Context, id int32) error
}

type BranchService interface {
	List(ctx context.Context) ([]domain.Branch, error)
	Get(ctx context.Context, id int32) (*domain.Branch, error)
	Stats(ctx context.Context) ([]domain.BranchStats, error)
}

// Dashboard bundles the analytics overview payloads.
type Dashboard struct {
	FleetUtilization []domain.FleetUtilization `json:"fleet_utilization"`
	PopularVehicles  []domain.PopularVehicle   `json:"popular_vehicles"`
	GeneratedAt      time.Time                 `json:"generated_at"`
}

type AnalyticsService interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	Revenue(ctx context.Context, days int32) ([]domain.RevenuePoint, error)
	FleetStatus(ctx context.Context) (*domain.FleetOverview, error)
}

type AuthService interface {
	// Login verifies credentials and returns a signed access token.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	CreateUser(ctx context.Context, username, password, fullName, email string) (*domain.User, error)
}
