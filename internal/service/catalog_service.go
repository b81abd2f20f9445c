package service

import (
	"context"
	"errors"

	"github.com/rezapahlevi/kaludra/internal/domain"
	"github.com/rezapahlevi/kaludra/internal/repository"
)

var ErrServiceNotFound = errors.New("service not found")

// CatalogService manages the billable service catalog
type CatalogService interface {
	List(ctx context.Context) ([]domain.Service, error)
	Get(ctx context.Context, id string) (*domain.Service, error)
	Create(ctx context.Context, svc domain.Service) (*domain.Service, error)
	Update(ctx context.Context, svc domain.Service) error
	Delete(ctx context.Context, id string) error
}

type catalogService struct {
	serviceRepo repository.ServiceRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(serviceRepo repository.ServiceRepository) CatalogService {
	return &catalogService{serviceRepo: serviceRepo}
}

func (s *catalogService) List(ctx context.Context) ([]domain.Service, error) {
	return s.serviceRepo.Load(ctx)
}

func (s *catalogService) Get(ctx context.Context, id string) (*domain.Service, error) {
	services, err := s.serviceRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range services {
		if services[i].ID == id {
			svc := services[i]
			return &svc, nil
		}
	}
	return nil, ErrServiceNotFound
}

func (s *catalogService) Create(ctx context.Context, svc domain.Service) (*domain.Service, error) {
	if err := svc.Validate(); err != nil {
		return nil, err
	}
	if svc.ID == "" {
		svc.ID = domain.NewID()
	}

	services, err := s.serviceRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	services = append(services, svc)

	if err := s.serviceRepo.Replace(ctx, services); err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *catalogService) Update(ctx context.Context, svc domain.Service) error {
	if err := svc.Validate(); err != nil {
		return err
	}

	services, err := s.serviceRepo.Load(ctx)
	if err != nil {
		return err
	}
	for i := range services {
		if services[i].ID == svc.ID {
			services[i] = svc
			return s.serviceRepo.Replace(ctx, services)
		}
	}
	return ErrServiceNotFound
}

// Delete removes a catalog entry. Line items that referenced it keep their
// copied description and rate.
func (s *catalogService) Delete(ctx context.Context, id string) error {
	services, err := s.serviceRepo.Load(ctx)
	if err != nil {
		return err
	}

	kept := services[:0]
	for _, svc := range services {
		if svc.ID != id {
			kept = append(kept, svc)
		}
	}
	if len(kept) == len(services) {
		return nil
	}

	return s.serviceRepo.Replace(ctx, kept)
}
