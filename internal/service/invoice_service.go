package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/rezapahlevi/kaludra/internal/domain"
	"github.com/rezapahlevi/kaludra/internal/repository"
)

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrItemNotFound    = errors.New("line item not found")
	ErrMissingClient   = errors.New("invoice must have a client")
	ErrEmptyItems      = errors.New("invoice must have at least one line item")
)

// ItemField identifies which line item field an edit targets
type ItemField int

const (
	ItemFieldService ItemField = iota
	ItemFieldDescription
	ItemFieldQty
	ItemFieldRate
)

// DashboardStats summarizes the invoice collection for the dashboard
type DashboardStats struct {
	Revenue   float64 // Sum of PAID subtotals
	Pending   float64 // Sum of UNPAID subtotals
	SentCount int     // Invoices past DRAFT
}

// InvoiceService manages the invoice lifecycle. Drafts returned by
// CreateDraft live only in the caller's editing session until Save.
type InvoiceService interface {
	// CreateDraft builds a new unsaved draft with the next invoice number
	CreateDraft(ctx context.Context) (*domain.Invoice, error)

	// AddItem appends a blank line item to an editing-session invoice
	AddItem(invoice *domain.Invoice) *domain.InvoiceItem

	// RemoveItem drops a line item from an editing-session invoice
	RemoveItem(invoice *domain.Invoice, itemID string)

	// ApplyItemEdit applies one field edit to a line item, recomputing the
	// item total where the field feeds into it
	ApplyItemEdit(ctx context.Context, invoice *domain.Invoice, itemID string, field ItemField, value string) error

	// ValidateForSave reports why an invoice cannot be saved yet
	ValidateForSave(invoice *domain.Invoice) error

	// Save validates, snapshots client details, recomputes the subtotal and
	// upserts the invoice
	Save(ctx context.Context, invoice *domain.Invoice) error

	// Delete removes an invoice; deleting an absent ID is a no-op
	Delete(ctx context.Context, id string) error

	// ToggleStatus advances the invoice status one step
	ToggleStatus(ctx context.Context, id string) (*domain.Invoice, error)

	// Get retrieves an invoice by ID
	Get(ctx context.Context, id string) (*domain.Invoice, error)

	// List returns all invoices, newest first
	List(ctx context.Context) ([]domain.Invoice, error)

	// Stats computes dashboard totals
	Stats(ctx context.Context) (DashboardStats, error)
}

type invoiceService struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	serviceRepo repository.ServiceRepository
	orgPrefix   string
	dueDays     int
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	serviceRepo repository.ServiceRepository,
	orgPrefix string,
	dueDays int,
) InvoiceService {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		serviceRepo: serviceRepo,
		orgPrefix:   orgPrefix,
		dueDays:     dueDays,
	}
}

func (s *invoiceService) CreateDraft(ctx context.Context) (*domain.Invoice, error) {
	// Numbering reads the stored collection, so two editors drafting at the
	// same moment can be handed the same number
	invoices, err := s.invoiceRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &domain.Invoice{
		ID:            domain.NewID(),
		InvoiceNumber: domain.NextInvoiceNumber(invoices, s.orgPrefix, now),
		Date:          now,
		DueDate:       now.AddDate(0, 0, s.dueDays),
		Items:         []domain.InvoiceItem{},
		Status:        domain.InvoiceStatusDraft,
	}, nil
}

func (s *invoiceService) AddItem(invoice *domain.Invoice) *domain.InvoiceItem {
	invoice.Items = append(invoice.Items, domain.InvoiceItem{
		ID:  domain.NewID(),
		Qty: 1,
	})
	return &invoice.Items[len(invoice.Items)-1]
}

func (s *invoiceService) RemoveItem(invoice *domain.Invoice, itemID string) {
	invoice.RemoveItem(itemID)
}

func (s *invoiceService) ApplyItemEdit(
	ctx context.Context,
	invoice *domain.Invoice,
	itemID string,
	field ItemField,
	value string,
) error {
	item := invoice.FindItem(itemID)
	if item == nil {
		return ErrItemNotFound
	}

	switch field {
	case ItemFieldService:
		services, err := s.serviceRepo.Load(ctx)
		if err != nil {
			return err
		}
		item.ServiceID = value
		// Picking a catalog service quick-fills description and rate,
		// overwriting whatever was typed
		for _, svc := range services {
			if svc.ID == value {
				item.Description = svc.Name
				item.Rate = svc.Rate
				break
			}
		}
		item.Recalculate()

	case ItemFieldDescription:
		// Description edits never touch the total
		item.Description = value

	case ItemFieldQty:
		item.Qty = parseAmount(value)
		item.Recalculate()

	case ItemFieldRate:
		item.Rate = parseAmount(value)
		item.Recalculate()
	}

	return nil
}

// parseAmount coerces user-typed numeric text; unparsable input becomes 0
func parseAmount(value string) float64 {
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return n
}

func (s *invoiceService) ValidateForSave(invoice *domain.Invoice) error {
	if invoice.ClientID == "" {
		return ErrMissingClient
	}
	if len(invoice.Items) == 0 {
		return ErrEmptyItems
	}
	return nil
}

func (s *invoiceService) Save(ctx context.Context, invoice *domain.Invoice) error {
	if err := s.ValidateForSave(invoice); err != nil {
		return err
	}

	// Snapshot client details so later client edits don't rewrite history
	clients, err := s.clientRepo.Load(ctx)
	if err != nil {
		return err
	}
	invoice.ClientName = "Unknown"
	invoice.ClientAddress = ""
	for _, c := range clients {
		if c.ID == invoice.ClientID {
			invoice.ClientName = c.Name
			invoice.ClientAddress = c.Address
			break
		}
	}

	invoice.RecalculateSubtotal()

	invoices, err := s.invoiceRepo.Load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range invoices {
		if invoices[i].ID == invoice.ID {
			invoices[i] = *invoice
			replaced = true
			break
		}
	}
	if !replaced {
		invoices = append(invoices, *invoice)
	}

	return s.invoiceRepo.Replace(ctx, invoices)
}

func (s *invoiceService) Delete(ctx context.Context, id string) error {
	invoices, err := s.invoiceRepo.Load(ctx)
	if err != nil {
		return err
	}

	kept := invoices[:0]
	for _, inv := range invoices {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}
	if len(kept) == len(invoices) {
		return nil
	}

	return s.invoiceRepo.Replace(ctx, kept)
}

func (s *invoiceService) ToggleStatus(ctx context.Context, id string) (*domain.Invoice, error) {
	invoices, err := s.invoiceRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range invoices {
		if invoices[i].ID == id {
			invoices[i].Status = invoices[i].NextStatus()
			if err := s.invoiceRepo.Replace(ctx, invoices); err != nil {
				return nil, err
			}
			inv := invoices[i]
			return &inv, nil
		}
	}

	return nil, ErrInvoiceNotFound
}

func (s *invoiceService) Get(ctx context.Context, id string) (*domain.Invoice, error) {
	invoices, err := s.invoiceRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range invoices {
		if invoices[i].ID == id {
			inv := invoices[i]
			return &inv, nil
		}
	}

	return nil, ErrInvoiceNotFound
}

func (s *invoiceService) List(ctx context.Context) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	// Stored order is insertion order; listing shows newest first
	reversed := make([]domain.Invoice, len(invoices))
	for i, inv := range invoices {
		reversed[len(invoices)-1-i] = inv
	}
	return reversed, nil
}

func (s *invoiceService) Stats(ctx context.Context) (DashboardStats, error) {
	invoices, err := s.invoiceRepo.Load(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	var stats DashboardStats
	for _, inv := range invoices {
		switch inv.Status {
		case domain.InvoiceStatusPaid:
			stats.Revenue += inv.Subtotal
		case domain.InvoiceStatusUnpaid:
			stats.Pending += inv.Subtotal
		}
		if !inv.IsDraft() {
			stats.SentCount++
		}
	}
	return stats, nil
}
