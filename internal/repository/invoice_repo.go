package repository

import (
	"context"

	"github.com/rezapahlevi/kaludra/internal/domain"
)

// InvoiceRepo is a KV-backed implementation of InvoiceRepository
type InvoiceRepo struct {
	kv KV
}

// NewInvoiceRepo creates a new InvoiceRepo
func NewInvoiceRepo(kv KV) *InvoiceRepo {
	return &InvoiceRepo{kv: kv}
}

// Load reads the full invoice collection in insertion order
func (r *InvoiceRepo) Load(ctx context.Context) ([]domain.Invoice, error) {
	return loadCollection[domain.Invoice](ctx, r.kv, KeyInvoices)
}

// Replace stores the full invoice collection
func (r *InvoiceRepo) Replace(ctx context.Context, invoices []domain.Invoice) error {
	return replaceCollection(ctx, r.kv, KeyInvoices, invoices)
}
