package repository

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	GetByCode(ctx context.Context, code string) (*domain.Vehicle, error)
	List(ctx context.Context, status domain.VehicleStatus, search string) ([]domain.Vehicle, error)
	Update(ctx context.Context, id int32, upd *domain.VehicleUpdate) (*domain.Vehicle, error)
	Delete(ctx context.Context, id int32) error
}

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	List(ctx context.Context, search string) ([]domain.Customer, error)
	Update(ctx context.Context, id int32, upd *domain.CustomerUpdate) (*domain.Customer, error)
	Delete(ctx context.Context, id int32) error
}

type RentalRepository interface {
	// CreateAndReserve inserts the rental and flips the vehicle to Rented in
	// one transaction. The vehicle flip is a conditional update guarded on
	// status Available; a concurrent booking loses with domain.KindConflict
	// and no rental row is written.
	CreateAndReserve(ctx context.Context, r *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	// GetOpenByID returns the rental only while its actual return is unset.
	GetOpenByID(ctx context.Context, id int32) (*domain.Rental, error)
	// CompleteReturn stamps the return, writes the final cost and frees the
	// vehicle in one transaction. Guarded on the rental still being open so a
	// second return cannot recompute the cost.
	CompleteReturn(ctx context.Context, id int32, actualReturn time.Time, totalCost float64, notes string) error
	// Cancel closes an open rental without billing and frees the vehicle.
	Cancel(ctx context.Context, id int32) error
	List(ctx context.Context, filter *domain.RentalListFilter) ([]domain.Rental, error)
	CustomerHistory(ctx context.Context, customerID int32) ([]domain.HistoryEntry, error)
	HasOpenRentalForVehicle(ctx context.Context, vehicleID int32) (bool, error)
	HasOpenRentalForCustomer(ctx context.Context, customerID int32) (bool, error)
}

type LoyaltyRepository interface {
	// Enroll inserts the program row and sets the customer's loyalty flag in
	// one transaction.
	Enroll(ctx context.Context, p *domain.LoyaltyProgram) error
	GetByCustomer(ctx context.Context, customerID int32) (*domain.LoyaltyProgram, error)
	// AdjustPoints performs the locked read-modify-write: balance is read
	// FOR UPDATE, clamped at zero, and the tier recomputed in the same
	// statement sequence.
	AdjustPoints(ctx context.Context, customerID int32, delta int32) (*domain.LoyaltyProgram, error)
	// Unenroll removes the program row and resets the customer flag in one
	// transaction.
	Unenroll(ctx context.Context, customerID int32) error
}

type PromoRepository interface {
	Create(ctx context.Context, p *domain.PromoOffer) error
	GetByID(ctx context.Context, id int32) (*domain.PromoOffer, error)
	GetByCode(ctx context.Context, code string) (*domain.PromoOffer, error)
	List(ctx context.Context, activeOnly, validNow bool, limit, offset int32) ([]domain.PromoOffer, error)
	Update(ctx context.Context, id int32, upd *domain.PromoUpdate) (*domain.PromoOffer, error)
	// Delete soft-deletes (is_active=false) when the promo has ever been
	// applied to a rental, hard-deletes otherwise. Returns true when the row
	// was removed.
	Delete(ctx context.Context, id int32) (hardDeleted bool, err error)
	// Apply links a promo to a rental. Double application conflicts.
	Apply(ctx context.Context, rentalID, promoID int32) error
	// LoyaltyContext fetches the membership flag and points balance used by
	// promo checks 4-5, or (false, 0) when the customer has no program.
	LoyaltyContext(ctx context.Context, customerID int32) (isMember bool, points int32, err error)
}

type MaintenanceRepository interface {
	Create(ctx context.Context, m *domain.Maintenance) error
	GetByID(ctx context.Context, id int32) (*domain.Maintenance, error)
	List(ctx context.Context, vehicleID *int32, from, to *time.Time) ([]domain.Maintenance, error)
	Stats(ctx context.Context) ([]domain.MaintenanceStats, error)
	Update(ctx context.Context, id int32, upd *domain.MaintenanceUpdate) (*domain.Maintenance, error)
	Delete(ctx context.Context, id int32) error
}

type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) error
	GetByID(ctx context.Context, id int32) (*domain.Review, error)
	GetByRental(ctx context.Context, rentalID int32) (*domain.Review, error)
	ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.Review, error)
	ListByCustomer(ctx context.Context, customerID int32) ([]domain.Review, error)
	Update(ctx context.Context, id int32, upd *domain.ReviewUpdate) (*domain.Review, error)
	Delete(ctx context.Context, id int32) error
}

type BranchRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Branch, error)
	List(ctx context.Context) ([]domain.Branch, error)
	Stats(ctx context.Context) ([]domain.BranchStats, error)
}

type AnalyticsRepository interface {
	FleetUtilization(ctx context.Context) ([]domain.FleetUtilization, error)
	PopularVehicles(ctx context.Context, limit int32) ([]domain.PopularVehicle, error)
	Revenue(ctx context.Context, since time.Time) ([]domain.RevenuePoint, error)
	FleetOverview(ctx context.Context) (*domain.FleetOverview, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
