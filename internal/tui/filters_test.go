package tui

import (
	"testing"
	"time"

	"github.com/rezapahlevi/kaludra/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCycleStatusFilter(t *testing.T) {
	order := []domain.InvoiceStatus{
		statusFilterAll,
		domain.InvoiceStatusDraft,
		domain.InvoiceStatusUnpaid,
		domain.InvoiceStatusPaid,
		statusFilterAll,
	}
	s := statusFilterAll
	for i := 1; i < len(order); i++ {
		s = cycleStatusFilter(s)
		if s != order[i] {
			t.Fatalf("step %d: got %q, want %q", i, s, order[i])
		}
	}
}

func TestFilterInvoicesByStatus(t *testing.T) {
	invoices := []domain.Invoice{
		{ID: "i1", Status: domain.InvoiceStatusDraft},
		{ID: "i2", Status: domain.InvoiceStatusUnpaid},
		{ID: "i3", Status: domain.InvoiceStatusPaid},
	}

	got := filterInvoices(invoices, "", domain.InvoiceStatusUnpaid, time.Time{}, time.Time{})
	if len(got) != 1 || got[0].ID != "i2" {
		t.Fatalf("expected only i2, got %v", got)
	}

	got = filterInvoices(invoices, "", statusFilterAll, time.Time{}, time.Time{})
	if len(got) != 3 {
		t.Fatalf("expected all 3 with no status filter, got %d", len(got))
	}
}

func TestFilterInvoicesByQuery(t *testing.T) {
	invoices := []domain.Invoice{
		{ID: "i1", InvoiceNumber: "KLD/24/11/001", ClientName: "Naya Studio"},
		{ID: "i2", InvoiceNumber: "KLD/24/11/002", ClientName: "Beta Corp"},
	}

	got := filterInvoices(invoices, "naya", statusFilterAll, time.Time{}, time.Time{})
	if len(got) != 1 || got[0].ID != "i1" {
		t.Fatalf("client name match failed: %v", got)
	}

	got = filterInvoices(invoices, "11/002", statusFilterAll, time.Time{}, time.Time{})
	if len(got) != 1 || got[0].ID != "i2" {
		t.Fatalf("invoice number match failed: %v", got)
	}
}

func TestFilterInvoicesByDateRange(t *testing.T) {
	invoices := []domain.Invoice{
		{ID: "i1", Date: day(2024, 11, 1)},
		{ID: "i2", Date: day(2024, 11, 15)},
		{ID: "i3", Date: day(2024, 12, 1)},
	}

	got := filterInvoices(invoices, "", statusFilterAll, day(2024, 11, 5), day(2024, 11, 30))
	if len(got) != 1 || got[0].ID != "i2" {
		t.Fatalf("expected only i2 inside range, got %v", got)
	}

	// Bounds are inclusive, whole days
	got = filterInvoices(invoices, "", statusFilterAll, day(2024, 11, 1), day(2024, 11, 15))
	if len(got) != 2 {
		t.Fatalf("expected boundary dates included, got %d", len(got))
	}

	// Time of day on the invoice must not push it out of the range
	late := []domain.Invoice{{ID: "i4", Date: time.Date(2024, 11, 15, 23, 30, 0, 0, time.UTC)}}
	got = filterInvoices(late, "", statusFilterAll, time.Time{}, day(2024, 11, 15))
	if len(got) != 1 {
		t.Fatal("expected same-day invoice with later time to match the end bound")
	}

	// Open-ended start
	got = filterInvoices(invoices, "", statusFilterAll, time.Time{}, day(2024, 11, 15))
	if len(got) != 2 {
		t.Fatalf("expected open start bound to keep 2, got %d", len(got))
	}
}

func TestFilterInvoicesCombined(t *testing.T) {
	invoices := []domain.Invoice{
		{ID: "i1", ClientName: "Naya Studio", Status: domain.InvoiceStatusPaid, Date: day(2024, 11, 1)},
		{ID: "i2", ClientName: "Naya Studio", Status: domain.InvoiceStatusUnpaid, Date: day(2024, 11, 2)},
		{ID: "i3", ClientName: "Beta Corp", Status: domain.InvoiceStatusUnpaid, Date: day(2024, 11, 3)},
	}

	got := filterInvoices(invoices, "naya", domain.InvoiceStatusUnpaid, day(2024, 11, 1), day(2024, 11, 30))
	if len(got) != 1 || got[0].ID != "i2" {
		t.Fatalf("expected filters to combine, got %v", got)
	}
}

func TestFilterClients(t *testing.T) {
	clients := []domain.Client{
		{ID: "c1", Name: "Naya Studio", Email: "contact@nayastudio.com", Address: "Jl. Pemuda No. 123, Semarang"},
		{ID: "c2", Name: "Beta Corp", Email: "billing@beta.example", Address: "Jakarta"},
	}

	if got := filterClients(clients, "naya"); len(got) != 1 || got[0].ID != "c1" {
		t.Fatalf("name match failed: %v", got)
	}
	if got := filterClients(clients, "billing@"); len(got) != 1 || got[0].ID != "c2" {
		t.Fatalf("email match failed: %v", got)
	}
	if got := filterClients(clients, "semarang"); len(got) != 1 || got[0].ID != "c1" {
		t.Fatalf("address match failed: %v", got)
	}
	if got := filterClients(clients, ""); len(got) != 2 {
		t.Fatalf("empty query should keep all, got %d", len(got))
	}
	if got := filterClients(clients, "zzz"); len(got) != 0 {
		t.Fatalf("expected no match, got %v", got)
	}
}

func TestFilterServices(t *testing.T) {
	services := []domain.Service{
		{ID: "s1", Name: "Creative Direction", Rate: 1500000},
		{ID: "s2", Name: "Live Music", Rate: 50000},
	}

	if got := filterServices(services, "creative"); len(got) != 1 || got[0].ID != "s1" {
		t.Fatalf("name match failed: %v", got)
	}
	// Rate digits are searchable, matching both here
	if got := filterServices(services, "50000"); len(got) != 2 {
		t.Fatalf("rate match failed: %v", got)
	}
	if got := filterServices(services, "150"); len(got) != 1 || got[0].ID != "s1" {
		t.Fatalf("partial rate match failed: %v", got)
	}
}
