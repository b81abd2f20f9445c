package repository

import (
	"context"
	"fmt"

	"github.com/rezapahlevi/kaludra/internal/domain"
)

var seedClients = []domain.Client{
	{
		ID:      "c1",
		Name:    "Naya Studio",
		Email:   "contact@nayastudio.com",
		Phone:   "08123456789",
		Address: "Jl. Pemuda No. 123, Semarang, Indonesia",
	},
}

var seedServices = []domain.Service{
	{ID: "s1", Name: "TS - Signature Menu Nov", Rate: 50000},
	{ID: "s2", Name: "TS - Live Music November", Rate: 50000},
	{ID: "s3", Name: "Creative Direction", Rate: 1500000},
}

// Seed writes starter clients and services into a fresh store. A collection
// key that already exists is left alone, even when it holds an empty list,
// so user deletions survive restarts. Invoices are never seeded.
func Seed(ctx context.Context, kv KV) error {
	if err := seedCollection(ctx, kv, KeyClients, seedClients); err != nil {
		return err
	}
	if err := seedCollection(ctx, kv, KeyServices, seedServices); err != nil {
		return err
	}
	return nil
}

func seedCollection[T any](ctx context.Context, kv KV, key string, items []T) error {
	_, ok, err := kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", key, err)
	}
	if ok {
		return nil
	}
	return replaceCollection(ctx, kv, key, items)
}
