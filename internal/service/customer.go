package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
	rentalRepo   repository.RentalRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository, rentalRepo repository.RentalRepository) CustomerService {
	return &customerService{customerRepo: customerRepo, rentalRepo: rentalRepo}
}

func (s *customerService) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.TrimSpace(strings.ToLower(c.Email))
	if c.FirstName == "" || c.LastName == "" {
		return nil, domain.Validationf("first_name and last_name are required")
	}
	if c.Email == "" || !strings.Contains(c.Email, "@") {
		return nil, domain.Validationf("a valid email is required")
	}
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	if c.Code == "" {
		// Customer codes are user-facing; a short random slug is enough.
		c.Code = "CUS-" + strings.ToUpper(uuid.NewString()[:8])
	}
	if err := s.customerRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	logger.Info("customer registered", "customer_id", c.ID, "email", c.Email)
	return c, nil
}

func (s *customerService) Get(ctx context.Context, id int32) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) List(ctx context.Context, search string) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx, search)
}

func (s *customerService) Update(ctx context.Context, id int32, upd *domain.CustomerUpdate) (*domain.Customer, error) {
	if upd == nil || upd.IsEmpty() {
		return nil, domain.Validationf("no fields to update")
	}
	if upd.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*upd.Email))
		if !strings.Contains(email, "@") {
			return nil, domain.Validationf("a valid email is required")
		}
		upd.Email = &email
	}
	return s.customerRepo.Update(ctx, id, upd)
}

func (s *customerService) Delete(ctx context.Context, id int32) error {
	open, err := s.rentalRepo.HasOpenRentalForCustomer(ctx, id)
	if err != nil {
		return err
	}
	if open {
		return domain.Conflictf("customer %d has an open rental", id)
	}
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("customer deleted", "customer_id", id)
	return nil
}
