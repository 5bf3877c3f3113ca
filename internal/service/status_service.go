package service

import (
	"context"

	"blogapi/internal/repository"
)

// StoreStatus is what the health endpoint reports about the backing store.
type StoreStatus struct {
	Tables int
}

type StatusService interface {
	Check(ctx context.Context) (*StoreStatus, error)
}

type statusService struct {
	statusRepo repository.StatusRepository
}

func NewStatusService(statusRepo repository.StatusRepository) StatusService {
	return &statusService{statusRepo: statusRepo}
}

func (s *statusService) Check(ctx context.Context) (*StoreStatus, error) {
	if err := s.statusRepo.Ping(ctx); err != nil {
		return nil, err
	}

	count, err := s.statusRepo.CountTables(ctx)
	if err != nil {
		return nil, err
	}

	return &StoreStatus{Tables: count}, nil
}
