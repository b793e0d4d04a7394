package service

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/utils"
)

// defaultBranchID is the main branch used when the caller does not pick one.
const defaultBranchID = 1

type rentalService struct {
	rentalRepo   repository.RentalRepository
	vehicleRepo  repository.VehicleRepository
	customerRepo repository.CustomerRepository
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	vehicleRepo repository.VehicleRepository,
	customerRepo repository.CustomerRepository,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
	}
}

func (s *rentalService) Create(ctx context.Context, in *CreateRentalInput) (*domain.Rental, error) {
	if in.ExpectedReturnAt.Before(in.PickupAt) {
		return nil, domain.Validationf("expected return must not be before pickup")
	}

	customer, err := s.customerRepo.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, in.VehicleID)
	if err != nil {
		return nil, err
	}
	// Fast-fail on an obviously unavailable vehicle. The authoritative check
	// is the conditional update inside CreateAndReserve.
	if vehicle.Status != domain.VehicleStatusAvailable {
		return nil, domain.Conflictf("vehicle %s is not available", vehicle.Code)
	}

	pickupBranch := in.PickupBranchID
	if pickupBranch == 0 {
		pickupBranch = defaultBranchID
	}
	returnBranch := in.ReturnBranchID
	if returnBranch == 0 {
		returnBranch = pickupBranch
	}

	// Booking-time estimate; the authoritative cost is computed at return.
	estimate := utils.EstimateCost(in.PickupAt, in.ExpectedReturnAt, vehicle.DailyRate)

	rental := &domain.Rental{
		CustomerID:       customer.ID,
		VehicleID:        vehicle.ID,
		PickupBranchID:   pickupBranch,
		ReturnBranchID:   returnBranch,
		PickupAt:         in.PickupAt,
		ExpectedReturnAt: in.ExpectedReturnAt,
		TotalCost:        &estimate,
		Status:           domain.RentalStatusActive,
	}
	if err := s.rentalRepo.CreateAndReserve(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("rental created", "rental_id", rental.ID,
		"customer_id", customer.ID, "vehicle_id", vehicle.ID, "estimated_cost", estimate)

	return s.rentalRepo.GetByID(ctx, rental.ID)
}

func (s *rentalService) Return(ctx context.Context, rentalID int32, in *ReturnVehicleInput) (*domain.Rental, error) {
	if in.AdditionalCharges < 0 {
		return nil, domain.Validationf("additional_charges must not be negative")
	}

	rental, err := s.rentalRepo.GetOpenByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	total := utils.ReturnCost(rental.PickupAt, in.ActualReturnAt, rental.DailyRate, in.AdditionalCharges)

	if err := s.rentalRepo.CompleteReturn(ctx, rentalID, in.ActualReturnAt, total, in.Notes); err != nil {
		return nil, err
	}

	logger.Info("vehicle returned", "rental_id", rentalID,
		"vehicle_id", rental.VehicleID, "total_cost", total)

	return s.rentalRepo.GetByID(ctx, rentalID)
}

func (s *rentalService) Cancel(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	if err := s.rentalRepo.Cancel(ctx, rentalID); err != nil {
		return nil, err
	}
	logger.Info("rental cancelled", "rental_id", rentalID)
	return s.rentalRepo.GetByID(ctx, rentalID)
}

func (s *rentalService) Get(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, rentalID)
}

func (s *rentalService) List(ctx context.Context, filter *domain.RentalListFilter) ([]domain.Rental, error) {
	if filter == nil {
		filter = &domain.RentalListFilter{}
	}
	switch filter.Status {
	case "", "ongoing", "completed", "cancelled":
	default:
		return nil, domain.Validationf("status must be one of ongoing, completed, cancelled")
	}
	return s.rentalRepo.List(ctx, filter)
}

func (s *rentalService) CustomerHistory(ctx context.Context, customerID int32) ([]domain.HistoryEntry, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.rentalRepo.CustomerHistory(ctx, customerID)
}
