package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"carrental-backend/internal/domain"
)

type MockRentalRepo struct{ mock.Mock }

func (m *MockRentalRepo) CreateAndReserve(ctx context.Context, r *domain.Rental) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*domain.Rental), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRentalRepo) GetOpenByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*domain.Rental), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRentalRepo) CompleteReturn(ctx context.Context, id int32, actualReturn time.Time, totalCost float64, notes string) error {
	args := m.Called(ctx, id, actualReturn, totalCost, notes)
	return args.Error(0)
}

func (m *MockRentalRepo) Cancel(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRentalRepo) List(ctx context.Context, filter *domain.RentalListFilter) ([]domain.Rental, error) {
	args := m.Called(ctx, filter)
	if r := args.Get(0); r != nil {
		return r.([]domain.Rental), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRentalRepo) CustomerHistory(ctx context.Context, customerID int32) ([]domain.HistoryEntry, error) {
	args := m.Called(ctx, customerID)
	if r := args.Get(0); r != nil {
		return r.([]domain.HistoryEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRentalRepo) HasOpenRentalForVehicle(ctx context.Context, vehicleID int32) (bool, error) {
	args := m.Called(ctx, vehicleID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRentalRepo) HasOpenRentalForCustomer(ctx context.Context, customerID int32) (bool, error) {
	args := m.Called(ctx, customerID)
	return args.Bool(0), args.Error(1)
}

type MockVehicleRepo struct{ mock.Mock }

func (m *MockVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*domain.Vehicle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehicleRepo) GetByCode(ctx context.Context, code string) (*domain.Vehicle, error) {
	args := m.Called(ctx, code)
	if r := args.Get(0); r != nil {
		return r.(*domain.Vehicle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehicleRepo) List(ctx context.Context, status domain.VehicleStatus, search string) ([]domain.Vehicle, error) {
	args := m.Called(ctx, status, search)
	if r := args.Get(0); r != nil {
		return r.([]domain.Vehicle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehicleRepo) Update(ctx context.Context, id int32, upd *domain.VehicleUpdate) (*domain.Vehicle, error) {
	args := m.Called(ctx, id, upd)
	if r := args.Get(0); r != nil {
		return r.(*domain.Vehicle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehicleRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCustomerRepo struct{ mock.Mock }

func (m *MockCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*domain.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerRepo) List(ctx context.Context, search string) ([]domain.Customer, error) {
	args := m.Called(ctx, search)
	if r := args.Get(0); r != nil {
		return r.([]domain.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerRepo) Update(ctx context.Context, id int32, upd *domain.CustomerUpdate) (*domain.Customer, error) {
	args := m.Called(ctx, id, upd)
	if r := args.Get(0); r != nil {
		return r.(*domain.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPromoRepo struct{ mock.Mock }

func (m *MockPromoRepo) Create(ctx context.Context, p *domain.PromoOffer) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPromoRepo) GetByID(ctx context.Context, id int32) (*domain.PromoOffer, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*domain.PromoOffer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPromoRepo) GetByCode(ctx context.Context, code string) (*domain.PromoOffer, error) {
	args := m.Called(ctx, code)
	if r := args.Get(0); r != nil {
		return r.(*domain.PromoOffer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPromoRepo) List(ctx context.Context, activeOnly, validNow bool, limit, offset int32) ([]domain.PromoOffer, error) {
	args := m.Called(ctx, activeOnly, validNow, limit, offset)
	if r := args.Get(0); r != nil {
		return r.([]domain.PromoOffer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPromoRepo) Update(ctx context.Context, id int32, upd *domain.PromoUpdate) (*domain.PromoOffer, error) {
	args := m.Called(ctx, id, upd)
	if r := args.Get(0); r != nil {
		return r.(*domain.PromoOffer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPromoRepo) Delete(ctx context.Context, id int32) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPromoRepo) Apply(ctx context.Context, rentalID, promoID int32) error {
	args := m.Called(ctx, rentalID, promoID)
	return args.Error(0)
}

func (m *MockPromoRepo) LoyaltyContext(ctx context.Context, customerID int32) (bool, int32, error) {
	args := m.Called(ctx, customerID)
	return args.Bool(0), args.Get(1).(int32), args.Error(2)
}

type MockLoyaltyRepo struct{ mock.Mock }

func (m *MockLoyaltyRepo) Enroll(ctx context.Context, p *domain.LoyaltyProgram) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockLoyaltyRepo) GetByCustomer(ctx context.Context, customerID int32) (*domain.LoyaltyProgram, error) {
	args := m.Called(ctx, customerID)
	if r := args.Get(0); r != nil {
		return r.(*domain.LoyaltyProgram), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoyaltyRepo) AdjustPoints(ctx context.Context, customerID int32, delta int32) (*domain.LoyaltyProgram, error) {
	args := m.Called(ctx, customerID, delta)
	if r := args.Get(0); r != nil {
		return r.(*domain.LoyaltyProgram), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoyaltyRepo) Unenroll(ctx context.Context, customerID int32) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

type MockReviewRepo struct{ mock.Mock }

func (m *MockReviewRepo) Create(ctx context.Context, r *domain.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReviewRepo) GetByID(ctx context.Context, id int32) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*domain.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReviewRepo) GetByRental(ctx context.Context, rentalID int32) (*domain.Review, error) {
	args := m.Called(ctx, rentalID)
	if r := args.Get(0); r != nil {
		return r.(*domain.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReviewRepo) ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.Review, error) {
	args := m.Called(ctx, vehicleID)
	if r := args.Get(0); r != nil {
		return r.([]domain.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReviewRepo) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Review, error) {
	args := m.Called(ctx, customerID)
	if r := args.Get(0); r != nil {
		return r.([]domain.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReviewRepo) Update(ctx context.Context, id int32, upd *domain.ReviewUpdate) (*domain.Review, error) {
	args := m.Called(ctx, id, upd)
	if r := args.Get(0); r != nil {
		return r.(*domain.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReviewRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if r := args.Get(0); r != nil {
		return r.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}
