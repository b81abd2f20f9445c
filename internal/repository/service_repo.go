package repository

import (
	"context"

	"github.com/rezapahlevi/kaludra/internal/domain"
)

// ServiceRepo is a KV-backed implementation of ServiceRepository
type ServiceRepo struct {
	kv KV
}

// NewServiceRepo creates a new ServiceRepo
func NewServiceRepo(kv KV) *ServiceRepo {
	return &ServiceRepo{kv: kv}
}

// Load reads the full service catalog
func (r *ServiceRepo) Load(ctx context.Context) ([]domain.Service, error) {
	return loadCollection[domain.Service](ctx, r.kv, KeyServices)
}

// Replace stores the full service catalog
func (r *ServiceRepo) Replace(ctx context.Context, services []domain.Service) error {
	return replaceCollection(ctx, r.kv, KeyServices, services)
}
