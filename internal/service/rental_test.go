package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

func TestRentalService_Create(t *testing.T) {
	ctx := context.Background()
	pickup := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	expectedReturn := time.Date(2025, 1, 4, 10, 0, 0, 0, time.UTC)

	customer := &domain.Customer{ID: 1, FirstName: "Anna", LastName: "Reyes"}
	vehicle := &domain.Vehicle{ID: 2, Code: "VH-001", Brand: "Toyota", Model: "Corolla",
		Status: domain.VehicleStatusAvailable, DailyRate: 40}

	t.Run("Success", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		vehicleRepo := new(MockVehicleRepo)
		customerRepo := new(MockCustomerRepo)
		svc := service.NewRentalService(rentalRepo, vehicleRepo, customerRepo)

		customerRepo.On("GetByID", ctx, int32(1)).Return(customer, nil)
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(vehicle, nil)
		rentalRepo.On("CreateAndReserve", ctx, mock.AnythingOfType("*domain.Rental")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Rental).ID = 7
			}).Return(nil)
		rentalRepo.On("GetByID", ctx, int32(7)).Return(&domain.Rental{ID: 7, Status: domain.RentalStatusActive}, nil)

		res, err := svc.Create(ctx, &service.CreateRentalInput{
			CustomerID:       1,
			VehicleID:        2,
			PickupAt:         pickup,
			ExpectedReturnAt: expectedReturn,
		})
		assert.NoError(t, err)
		assert.NotNil(t, res)

		created := rentalRepo.Calls[0].Arguments.Get(1).(*domain.Rental)
		// 3 whole days at 40/day.
		assert.Equal(t, 120.0, *created.TotalCost)
		assert.Equal(t, domain.RentalStatusActive, created.Status)
		// Branch ids default to the main branch.
		assert.Equal(t, int32(1), created.PickupBranchID)
		assert.Equal(t, int32(1), created.ReturnBranchID)
	})

	t.Run("Vehicle not available", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		vehicleRepo := new(MockVehicleRepo)
		customerRepo := new(MockCustomerRepo)
		svc := service.NewRentalService(rentalRepo, vehicleRepo, customerRepo)

		customerRepo.On("GetByID", ctx, int32(1)).Return(customer, nil)
		rented := *vehicle
		rented.Status = domain.VehicleStatusRented
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(&rented, nil)

		res, err := svc.Create(ctx, &service.CreateRentalInput{
			CustomerID:       1,
			VehicleID:        2,
			PickupAt:         pickup,
			ExpectedReturnAt: expectedReturn,
		})
		assert.Nil(t, res)
		assert.True(t, domain.IsConflict(err))
		rentalRepo.AssertNotCalled(t, "CreateAndReserve")
	})

	t.Run("Concurrent booking loses at reserve", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		vehicleRepo := new(MockVehicleRepo)
		customerRepo := new(MockCustomerRepo)
		svc := service.NewRentalService(rentalRepo, vehicleRepo, customerRepo)

		customerRepo.On("GetByID", ctx, int32(1)).Return(customer, nil)
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(vehicle, nil)
		rentalRepo.On("CreateAndReserve", ctx, mock.AnythingOfType("*domain.Rental")).
			Return(domain.Conflictf("vehicle 2 is not available"))

		res, err := svc.Create(ctx, &service.CreateRentalInput{
			CustomerID:       1,
			VehicleID:        2,
			PickupAt:         pickup,
			ExpectedReturnAt: expectedReturn,
		})
		assert.Nil(t, res)
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("Return before pickup", func(t *testing.T) {
		svc := service.NewRentalService(new(MockRentalRepo), new(MockVehicleRepo), new(MockCustomerRepo))
		res, err := svc.Create(ctx, &service.CreateRentalInput{
			CustomerID:       1,
			VehicleID:        2,
			PickupAt:         expectedReturn,
			ExpectedReturnAt: pickup,
		})
		assert.Nil(t, res)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Unknown customer", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		vehicleRepo := new(MockVehicleRepo)
		customerRepo := new(MockCustomerRepo)
		svc := service.NewRentalService(rentalRepo, vehicleRepo, customerRepo)

		customerRepo.On("GetByID", ctx, int32(1)).Return(nil, domain.NotFoundf("customer 1 not found"))

		res, err := svc.Create(ctx, &service.CreateRentalInput{
			CustomerID:       1,
			VehicleID:        2,
			PickupAt:         pickup,
			ExpectedReturnAt: expectedReturn,
		})
		assert.Nil(t, res)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestRentalService_Return(t *testing.T) {
	ctx := context.Background()
	pickup := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Computes cost with additional charges", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		svc := service.NewRentalService(rentalRepo, new(MockVehicleRepo), new(MockCustomerRepo))

		open := &domain.Rental{ID: 5, VehicleID: 2, PickupAt: pickup, DailyRate: 40,
			Status: domain.RentalStatusActive}
		actualReturn := pickup.AddDate(0, 0, 2)

		rentalRepo.On("GetOpenByID", ctx, int32(5)).Return(open, nil)
		rentalRepo.On("CompleteReturn", ctx, int32(5), actualReturn, 95.0, "scratch on door").Return(nil)
		rentalRepo.On("GetByID", ctx, int32(5)).Return(&domain.Rental{ID: 5, Status: domain.RentalStatusCompleted}, nil)

		// 2 days * 40 + 15 additional.
		res, err := svc.Return(ctx, 5, &service.ReturnVehicleInput{
			ActualReturnAt:    actualReturn,
			AdditionalCharges: 15,
			Notes:             "scratch on door",
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusCompleted, res.Status)
		rentalRepo.AssertExpectations(t)
	})

	t.Run("Same-day return bills one day", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		svc := service.NewRentalService(rentalRepo, new(MockVehicleRepo), new(MockCustomerRepo))

		open := &domain.Rental{ID: 6, VehicleID: 2, PickupAt: pickup, DailyRate: 50,
			Status: domain.RentalStatusActive}
		actualReturn := pickup.Add(3 * time.Hour)

		rentalRepo.On("GetOpenByID", ctx, int32(6)).Return(open, nil)
		rentalRepo.On("CompleteReturn", ctx, int32(6), actualReturn, 50.0, "").Return(nil)
		rentalRepo.On("GetByID", ctx, int32(6)).Return(&domain.Rental{ID: 6}, nil)

		_, err := svc.Return(ctx, 6, &service.ReturnVehicleInput{ActualReturnAt: actualReturn})
		assert.NoError(t, err)
		rentalRepo.AssertExpectations(t)
	})

	t.Run("Already returned", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		svc := service.NewRentalService(rentalRepo, new(MockVehicleRepo), new(MockCustomerRepo))

		rentalRepo.On("GetOpenByID", ctx, int32(5)).
			Return(nil, domain.NotFoundf("rental 5 not found or already completed"))

		res, err := svc.Return(ctx, 5, &service.ReturnVehicleInput{ActualReturnAt: time.Now()})
		assert.Nil(t, res)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("Negative charges rejected", func(t *testing.T) {
		svc := service.NewRentalService(new(MockRentalRepo), new(MockVehicleRepo), new(MockCustomerRepo))
		res, err := svc.Return(ctx, 5, &service.ReturnVehicleInput{
			ActualReturnAt:    time.Now(),
			AdditionalCharges: -1,
		})
		assert.Nil(t, res)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestRentalService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid status filter", func(t *testing.T) {
		svc := service.NewRentalService(new(MockRentalRepo), new(MockVehicleRepo), new(MockCustomerRepo))
		res, err := svc.List(ctx, &domain.RentalListFilter{Status: "overdue"})
		assert.Nil(t, res)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Passes filter through", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		svc := service.NewRentalService(rentalRepo, new(MockVehicleRepo), new(MockCustomerRepo))
		filter := &domain.RentalListFilter{Status: "ongoing"}
		rentalRepo.On("List", ctx, filter).Return([]domain.Rental{{ID: 1}}, nil)

		res, err := svc.List(ctx, filter)
		assert.NoError(t, err)
		assert.Len(t, res, 1)
	})
}
