package service

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type branchService struct {
	branchRepo repository.BranchRepository
}

func NewBranchService(branchRepo repository.BranchRepository) BranchService {
	return &branchService{branchRepo: branchRepo}
}

func (s *branchService) List(ctx context.Context) ([]domain.Branch, error) {
	return s.branchRepo.List(ctx)
}

func (s *branchService) Get(ctx context.Context, id int32) (*domain.Branch, error) {
	return s.branchRepo.GetByID(ctx, id)
}

func (s *branchService) Stats(ctx context.Context) ([]domain.BranchStats, error) {
	return s.branchRepo.Stats(ctx)
}
