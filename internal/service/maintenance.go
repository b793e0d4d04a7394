package service

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

type maintenanceService struct {
	maintenanceRepo repository.MaintenanceRepository
	vehicleRepo     repository.VehicleRepository
}

func NewMaintenanceService(maintenanceRepo repository.MaintenanceRepository, vehicleRepo repository.VehicleRepository) MaintenanceService {
	return &maintenanceService{maintenanceRepo: maintenanceRepo, vehicleRepo: vehicleRepo}
}

func (s *maintenanceService) Create(ctx context.Context, m *domain.Maintenance) (*domain.Maintenance, error) {
	if m.Description == "" {
		return nil, domain.Validationf("description is required")
	}
	if m.Cost != nil && *m.Cost < 0 {
		return nil, domain.Validationf("cost must not be negative")
	}
	if _, err := s.vehicleRepo.GetByID(ctx, m.VehicleID); err != nil {
		return nil, err
	}
	if m.Date.IsZero() {
		m.Date = time.Now()
	}
	if err := s.maintenanceRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	logger.Info("maintenance record created", "maintenance_id", m.ID, "vehicle_id", m.VehicleID)
	return s.maintenanceRepo.GetByID(ctx, m.ID)
}

func (s *maintenanceService) Get(ctx context.Context, id int32) (*domain.Maintenance, error) {
	return s.maintenanceRepo.GetByID(ctx, id)
}

func (s *maintenanceService) List(ctx context.Context, vehicleID *int32, from, to *time.Time) ([]domain.Maintenance, error) {
	if from != nil && to != nil && to.Before(*from) {
		return nil, domain.Validationf("to must not be before from")
	}
	return s.maintenanceRepo.List(ctx, vehicleID, from, to)
}

func (s *maintenanceService) Stats(ctx context.Context) ([]domain.MaintenanceStats, error) {
	return s.maintenanceRepo.Stats(ctx)
}

func (s *maintenanceService) Update(ctx context.Context, id int32, upd *domain.MaintenanceUpdate) (*domain.Maintenance, error) {
	if upd == nil || upd.IsEmpty() {
		return nil, domain.Validationf("no fields to update")
	}
	if upd.Cost != nil && *upd.Cost < 0 {
		return nil, domain.Validationf("cost must not be negative")
	}
	return s.maintenanceRepo.Update(ctx, id, upd)
}

func (s *maintenanceService) Delete(ctx context.Context, id int32) error {
	return s.maintenanceRepo.Delete(ctx, id)
}
