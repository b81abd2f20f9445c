package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rezapahlevi/kaludra/internal/domain"
)

// mock implementations
type mockInvoiceRepo struct {
	invoices []domain.Invoice
}

func (m *mockInvoiceRepo) Load(_ context.Context) ([]domain.Invoice, error) {
	out := make([]domain.Invoice, len(m.invoices))
	copy(out, m.invoices)
	return out, nil
}
func (m *mockInvoiceRepo) Replace(_ context.Context, invoices []domain.Invoice) error {
	m.invoices = invoices
	return nil
}

type mockClientRepo struct {
	clients []domain.Client
}

func (m *mockClientRepo) Load(_ context.Context) ([]domain.Client, error) { return m.clients, nil }
func (m *mockClientRepo) Replace(_ context.Context, clients []domain.Client) error {
	m.clients = clients
	return nil
}

type mockServiceRepo struct {
	services []domain.Service
}

func (m *mockServiceRepo) Load(_ context.Context) ([]domain.Service, error) { return m.services, nil }
func (m *mockServiceRepo) Replace(_ context.Context, services []domain.Service) error {
	m.services = services
	return nil
}

func newTestService(invoiceRepo *mockInvoiceRepo, clientRepo *mockClientRepo, serviceRepo *mockServiceRepo) InvoiceService {
	if invoiceRepo == nil {
		invoiceRepo = &mockInvoiceRepo{}
	}
	if clientRepo == nil {
		clientRepo = &mockClientRepo{}
	}
	if serviceRepo == nil {
		serviceRepo = &mockServiceRepo{}
	}
	return NewInvoiceService(invoiceRepo, clientRepo, serviceRepo, "KLD", 7)
}

func TestCreateDraftDefaults(t *testing.T) {
	ctx := context.Background()
	repo := &mockInvoiceRepo{}
	svc := newTestService(repo, nil, nil)

	draft, err := svc.CreateDraft(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now := time.Now()
	wantPrefix := fmt.Sprintf("KLD/%02d/%02d/", now.Year()%100, int(now.Month()))
	if !strings.HasPrefix(draft.InvoiceNumber, wantPrefix) {
		t.Errorf("number %q missing period prefix %q", draft.InvoiceNumber, wantPrefix)
	}
	if draft.Status != domain.InvoiceStatusDraft {
		t.Errorf("expected DRAFT status, got %s", draft.Status)
	}
	if len(draft.Items) != 0 {
		t.Errorf("expected no items, got %d", len(draft.Items))
	}
	if draft.Subtotal != 0 {
		t.Errorf("expected zero subtotal, got %v", draft.Subtotal)
	}
	if got := draft.DueDate.Sub(draft.Date); got < 7*24*time.Hour-time.Second || got > 7*24*time.Hour+time.Second {
		t.Errorf("expected due date 7 days after date, got %v", got)
	}
	if len(repo.invoices) != 0 {
		t.Error("draft must not be persisted before save")
	}
}

func TestCreateDraftNumbersFromStoredInvoices(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	prefix := fmt.Sprintf("KLD/%02d/%02d/", now.Year()%100, int(now.Month()))
	repo := &mockInvoiceRepo{invoices: []domain.Invoice{
		{ID: "i1", InvoiceNumber: prefix + "002"},
	}}
	svc := newTestService(repo, nil, nil)

	draft, err := svc.CreateDraft(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.InvoiceNumber != prefix+"003" {
		t.Errorf("expected %s003, got %s", prefix, draft.InvoiceNumber)
	}
}

func TestSaveValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(nil, nil, nil)

	inv := &domain.Invoice{ID: "i1", Items: []domain.InvoiceItem{{ID: "a"}}}
	if err := svc.Save(ctx, inv); !errors.Is(err, ErrMissingClient) {
		t.Errorf("expected ErrMissingClient, got %v", err)
	}

	inv = &domain.Invoice{ID: "i1", ClientID: "c1"}
	if err := svc.Save(ctx, inv); !errors.Is(err, ErrEmptyItems) {
		t.Errorf("expected ErrEmptyItems, got %v", err)
	}
}

func TestSaveSnapshotsClientAndSubtotal(t *testing.T) {
	ctx := context.Background()
	invoiceRepo := &mockInvoiceRepo{}
	clientRepo := &mockClientRepo{clients: []domain.Client{
		{ID: "c1", Name: "Naya Studio", Address: "Jl. Pemuda No. 123"},
	}}
	svc := newTestService(invoiceRepo, clientRepo, nil)

	inv := &domain.Invoice{
		ID:       "i1",
		ClientID: "c1",
		Items: []domain.InvoiceItem{
			{ID: "a", Total: 50000},
			{ID: "b", Total: 100000},
		},
	}
	if err := svc.Save(ctx, inv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(invoiceRepo.invoices) != 1 {
		t.Fatalf("expected 1 stored invoice, got %d", len(invoiceRepo.invoices))
	}
	saved := invoiceRepo.invoices[0]
	if saved.ClientName != "Naya Studio" || saved.ClientAddress != "Jl. Pemuda No. 123" {
		t.Errorf("client snapshot missing: %+v", saved)
	}
	if saved.Subtotal != 150000 {
		t.Errorf("expected subtotal 150000, got %v", saved.Subtotal)
	}
}

func TestSaveUnknownClientFallback(t *testing.T) {
	ctx := context.Background()
	invoiceRepo := &mockInvoiceRepo{}
	svc := newTestService(invoiceRepo, &mockClientRepo{}, nil)

	inv := &domain.Invoice{ID: "i1", ClientID: "gone", Items: []domain.InvoiceItem{{ID: "a"}}}
	if err := svc.Save(ctx, inv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if invoiceRepo.invoices[0].ClientName != "Unknown" {
		t.Errorf("expected Unknown fallback, got %q", invoiceRepo.invoices[0].ClientName)
	}
	if invoiceRepo.invoices[0].ClientAddress != "" {
		t.Errorf("expected empty address fallback, got %q", invoiceRepo.invoices[0].ClientAddress)
	}
}

func TestSaveUpsertsByID(t *testing.T) {
	ctx := context.Background()
	invoiceRepo := &mockInvoiceRepo{invoices: []domain.Invoice{
		{ID: "i1", InvoiceNumber: "KLD/24/11/001"},
		{ID: "i2", InvoiceNumber: "KLD/24/11/002"},
	}}
	svc := newTestService(invoiceRepo, &mockClientRepo{}, nil)

	inv := &domain.Invoice{ID: "i1", ClientID: "c1", InvoiceNumber: "KLD/24/11/001",
		Items: []domain.InvoiceItem{{ID: "a", Total: 5}}}
	if err := svc.Save(ctx, inv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(invoiceRepo.invoices) != 2 {
		t.Fatalf("expected in-place replace, got %d invoices", len(invoiceRepo.invoices))
	}
	if invoiceRepo.invoices[0].Subtotal != 5 {
		t.Errorf("expected i1 replaced in place, got %+v", invoiceRepo.invoices[0])
	}
	if invoiceRepo.invoices[1].ID != "i2" {
		t.Errorf("expected i2 untouched at its position, got %+v", invoiceRepo.invoices[1])
	}
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	invoiceRepo := &mockInvoiceRepo{invoices: []domain.Invoice{
		{ID: "i1"}, {ID: "i2"}, {ID: "i3"},
	}}
	svc := newTestService(invoiceRepo, nil, nil)

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list[0].ID != "i3" || list[2].ID != "i1" {
		t.Errorf("expected reverse insertion order, got %+v", list)
	}
}

func TestToggleStatusPersists(t *testing.T) {
	ctx := context.Background()
	invoiceRepo := &mockInvoiceRepo{invoices: []domain.Invoice{
		{ID: "i1", Status: domain.InvoiceStatusDraft},
	}}
	svc := newTestService(invoiceRepo, nil, nil)

	inv, err := svc.ToggleStatus(ctx, "i1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Status != domain.InvoiceStatusUnpaid {
		t.Errorf("expected UNPAID, got %s", inv.Status)
	}
	if invoiceRepo.invoices[0].Status != domain.InvoiceStatusUnpaid {
		t.Errorf("toggle not persisted: %+v", invoiceRepo.invoices[0])
	}

	if _, err := svc.ToggleStatus(ctx, "missing"); !errors.Is(err, ErrInvoiceNotFound) {
		t.Errorf("expected ErrInvoiceNotFound, got %v", err)
	}
}

func TestDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	invoiceRepo := &mockInvoiceRepo{invoices: []domain.Invoice{{ID: "i1"}, {ID: "i2"}}}
	svc := newTestService(invoiceRepo, nil, nil)

	if err := svc.Delete(ctx, "i1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(invoiceRepo.invoices) != 1 || invoiceRepo.invoices[0].ID != "i2" {
		t.Fatalf("expected only i2 to remain, got %+v", invoiceRepo.invoices)
	}

	if err := svc.Delete(ctx, "i1"); err != nil {
		t.Fatalf("second delete must be a no-op, got %v", err)
	}
	if len(invoiceRepo.invoices) != 1 {
		t.Fatalf("second delete changed the collection: %+v", invoiceRepo.invoices)
	}
}

func TestApplyItemEditQuickFill(t *testing.T) {
	ctx := context.Background()
	serviceRepo := &mockServiceRepo{services: []domain.Service{
		{ID: "s1", Name: "Creative Direction", Rate: 1500000},
	}}
	svc := newTestService(nil, nil, serviceRepo)

	inv := &domain.Invoice{}
	item := svc.AddItem(inv)
	item.Description = "hand-typed"
	item.Rate = 42

	if err := svc.ApplyItemEdit(ctx, inv, item.ID, ItemFieldService, "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := inv.Items[0]
	if got.Description != "Creative Direction" || got.Rate != 1500000 {
		t.Errorf("quick-fill did not overwrite fields: %+v", got)
	}
	if got.Total != 1500000 {
		t.Errorf("expected total recomputed to 1500000, got %v", got.Total)
	}

	// Picking an unknown service keeps typed fields but records the ID
	if err := svc.ApplyItemEdit(ctx, inv, item.ID, ItemFieldService, "nope"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Items[0].ServiceID != "nope" || inv.Items[0].Rate != 1500000 {
		t.Errorf("unexpected state after unknown service: %+v", inv.Items[0])
	}
}

func TestApplyItemEditNumericCoercion(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(nil, nil, nil)

	inv := &domain.Invoice{}
	item := svc.AddItem(inv)

	if err := svc.ApplyItemEdit(ctx, inv, item.ID, ItemFieldRate, "50000"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.ApplyItemEdit(ctx, inv, item.ID, ItemFieldQty, "3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Items[0].Total != 150000 {
		t.Errorf("expected total 150000, got %v", inv.Items[0].Total)
	}

	// Unparsable input coerces to zero
	if err := svc.ApplyItemEdit(ctx, inv, item.ID, ItemFieldQty, "abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Items[0].Qty != 0 || inv.Items[0].Total != 0 {
		t.Errorf("expected qty and total zeroed, got %+v", inv.Items[0])
	}

	// Description edits leave the total alone
	inv.Items[0].Total = 99
	if err := svc.ApplyItemEdit(ctx, inv, item.ID, ItemFieldDescription, "new text"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Items[0].Total != 99 {
		t.Errorf("description edit changed the total: %v", inv.Items[0].Total)
	}

	if err := svc.ApplyItemEdit(ctx, inv, "missing", ItemFieldQty, "1"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	invoiceRepo := &mockInvoiceRepo{invoices: []domain.Invoice{
		{ID: "i1", Status: domain.InvoiceStatusPaid, Subtotal: 1500000},
		{ID: "i2", Status: domain.InvoiceStatusUnpaid, Subtotal: 50000},
		{ID: "i3", Status: domain.InvoiceStatusUnpaid, Subtotal: 100000},
		{ID: "i4", Status: domain.InvoiceStatusDraft, Subtotal: 999999},
	}}
	svc := newTestService(invoiceRepo, nil, nil)

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Revenue != 1500000 {
		t.Errorf("expected revenue 1500000, got %v", stats.Revenue)
	}
	if stats.Pending != 150000 {
		t.Errorf("expected pending 150000, got %v", stats.Pending)
	}
	if stats.SentCount != 3 {
		t.Errorf("expected 3 sent, got %d", stats.SentCount)
	}
}
