package repository

import (
	"context"

	"github.com/rezapahlevi/kaludra/internal/domain"
)

// Store keys. Each collection is a single value holding the full
// JSON-encoded slice; the session flag is its own value.
const (
	KeyClients  = "clients"
	KeyServices = "services"
	KeyInvoices = "invoices"
	KeySession  = "session"
)

// KV is the opaque key-value store the repositories persist into
type KV interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// ClientRepository manages the client collection
type ClientRepository interface {
	Load(ctx context.Context) ([]domain.Client, error)
	Replace(ctx context.Context, clients []domain.Client) error
}

// ServiceRepository manages the billable service catalog
type ServiceRepository interface {
	Load(ctx context.Context) ([]domain.Service, error)
	Replace(ctx context.Context, services []domain.Service) error
}

// InvoiceRepository manages the invoice collection
type InvoiceRepository interface {
	Load(ctx context.Context) ([]domain.Invoice, error)
	Replace(ctx context.Context, invoices []domain.Invoice) error
}

// SessionRepository manages the logged-in flag
type SessionRepository interface {
	Get(ctx context.Context) (bool, error)
	Set(ctx context.Context, loggedIn bool) error
	Clear(ctx context.Context) error
}
