package service

import (
	"context"
	"strings"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	rentalRepo  repository.RentalRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository, rentalRepo repository.RentalRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo, rentalRepo: rentalRepo}
}

func (s *vehicleService) Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	v.Code = strings.ToUpper(strings.TrimSpace(v.Code))
	if v.Code == "" {
		return nil, domain.Validationf("vehicle code is required")
	}
	if v.Brand == "" || v.Model == "" {
		return nil, domain.Validationf("brand and model are required")
	}
	if v.DailyRate <= 0 {
		return nil, domain.Validationf("daily_rate must be greater than 0")
	}
	if v.Status == "" {
		v.Status = domain.VehicleStatusAvailable
	} else if _, err := domain.ParseVehicleStatus(string(v.Status)); err != nil {
		return nil, err
	}
	if err := s.vehicleRepo.Create(ctx, v); err != nil {
		return nil, err
	}
	logger.Info("vehicle created", "vehicle_id", v.ID, "code", v.Code)
	return v, nil
}

func (s *vehicleService) Get(ctx context.Context, id int32) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *vehicleService) GetByCode(ctx context.Context, code string) (*domain.Vehicle, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, domain.Validationf("vehicle code is required")
	}
	return s.vehicleRepo.GetByCode(ctx, code)
}

func (s *vehicleService) List(ctx context.Context, status, search string) ([]domain.Vehicle, error) {
	var parsed domain.VehicleStatus
	if status != "" {
		var err error
		parsed, err = domain.ParseVehicleStatus(status)
		if err != nil {
			return nil, err
		}
	}
	return s.vehicleRepo.List(ctx, parsed, search)
}

func (s *vehicleService) Update(ctx context.Context, id int32, upd *domain.VehicleUpdate) (*domain.Vehicle, error) {
	if upd == nil || upd.IsEmpty() {
		return nil, domain.Validationf("no fields to update")
	}
	if upd.DailyRate != nil && *upd.DailyRate <= 0 {
		return nil, domain.Validationf("daily_rate must be greater than 0")
	}
	if upd.Status != nil {
		parsed, err := domain.ParseVehicleStatus(string(*upd.Status))
		if err != nil {
			return nil, err
		}
		// A vehicle with an open rental stays Rented until the rental closes.
		if parsed != domain.VehicleStatusRented {
			open, err := s.rentalRepo.HasOpenRentalForVehicle(ctx, id)
			if err != nil {
				return nil, err
			}
			if open {
				return nil, domain.Conflictf("vehicle %d has an open rental", id)
			}
		}
		upd.Status = &parsed
	}
	return s.vehicleRepo.Update(ctx, id, upd)
}

func (s *vehicleService) Delete(ctx context.Context, id int32) error {
	open, err := s.rentalRepo.HasOpenRentalForVehicle(ctx, id)
	if err != nil {
		return err
	}
	if open {
		return domain.Conflictf("vehicle %d has an open rental", id)
	}
	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("vehicle deleted", "vehicle_id", id)
	return nil
}
