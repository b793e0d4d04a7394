package service

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

const popularVehiclesLimit = 5

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository) AnalyticsService {
	return &analyticsService{analyticsRepo: analyticsRepo, now: time.Now}
}

func (s *analyticsService) Dashboard(ctx context.Context) (*Dashboard, error) {
	utilization, err := s.analyticsRepo.FleetUtilization(ctx)
	if err != nil {
		return nil, err
	}
	popular, err := s.analyticsRepo.PopularVehicles(ctx, popularVehiclesLimit)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		FleetUtilization: utilization,
		PopularVehicles:  popular,
		GeneratedAt:      s.now(),
	}, nil
}

func (s *analyticsService) Revenue(ctx context.Context, days int32) ([]domain.RevenuePoint, error) {
	if days <= 0 {
		days = 30
	}
	if days > 365 {
		return nil, domain.Validationf("days must not exceed 365")
	}
	since := s.now().AddDate(0, 0, -int(days))
	return s.analyticsRepo.Revenue(ctx, since)
}

func (s *analyticsService) FleetStatus(ctx context.Context) (*domain.FleetOverview, error) {
	return s.analyticsRepo.FleetOverview(ctx)
}
