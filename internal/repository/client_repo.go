package repository

import (
	"context"

	"github.com/rezapahlevi/kaludra/internal/domain"
)

// ClientRepo is a KV-backed implementation of ClientRepository
type ClientRepo struct {
	kv KV
}

// NewClientRepo creates a new ClientRepo
func NewClientRepo(kv KV) *ClientRepo {
	return &ClientRepo{kv: kv}
}

// Load reads the full client collection
func (r *ClientRepo) Load(ctx context.Context) ([]domain.Client, error) {
	return loadCollection[domain.Client](ctx, r.kv, KeyClients)
}

// Replace stores the full client collection
func (r *ClientRepo) Replace(ctx context.Context, clients []domain.Client) error {
	return replaceCollection(ctx, r.kv, KeyClients, clients)
}
