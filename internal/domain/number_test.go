package domain

import (
	"testing"
	"time"
)

func TestNextInvoiceNumber_FirstOfPeriod(t *testing.T) {
	now := time.Date(2024, time.November, 15, 0, 0, 0, 0, time.UTC)

	got := NextInvoiceNumber(nil, "KLD", now)
	if got != "KLD/24/11/001" {
		t.Fatalf("expected KLD/24/11/001, got %s", got)
	}
}

func TestNextInvoiceNumber_MaxPlusOneWithGaps(t *testing.T) {
	now := time.Date(2024, time.November, 20, 0, 0, 0, 0, time.UTC)
	existing := []Invoice{
		{InvoiceNumber: "KLD/24/11/001"},
		{InvoiceNumber: "KLD/24/11/003"},
	}

	got := NextInvoiceNumber(existing, "KLD", now)
	if got != "KLD/24/11/004" {
		t.Fatalf("expected KLD/24/11/004, got %s", got)
	}
}

func TestNextInvoiceNumber_OtherPeriodsIgnored(t *testing.T) {
	now := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)
	existing := []Invoice{
		{InvoiceNumber: "KLD/24/11/007"},
		{InvoiceNumber: "KLD/23/12/005"},
	}

	got := NextInvoiceNumber(existing, "KLD", now)
	if got != "KLD/24/12/001" {
		t.Fatalf("expected KLD/24/12/001, got %s", got)
	}
}

func TestNextInvoiceNumber_UnparsableSegmentCountsAsZero(t *testing.T) {
	now := time.Date(2024, time.November, 5, 0, 0, 0, 0, time.UTC)
	existing := []Invoice{
		{InvoiceNumber: "KLD/24/11/abc"},
	}

	got := NextInvoiceNumber(existing, "KLD", now)
	if got != "KLD/24/11/001" {
		t.Fatalf("expected KLD/24/11/001, got %s", got)
	}
}
