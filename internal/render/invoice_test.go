package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rezapahlevi/kaludra/internal/config"
	"github.com/rezapahlevi/kaludra/internal/domain"
)

func sampleInvoice() *domain.Invoice {
	date := time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC)
	return &domain.Invoice{
		ID:            "i1",
		InvoiceNumber: "KLD/24/11/001",
		ClientName:    "Naya Studio",
		ClientAddress: "Jl. Pemuda No. 123, Semarang, Indonesia",
		Date:          date,
		DueDate:       date.AddDate(0, 0, 7),
		Status:        domain.InvoiceStatusUnpaid,
		Items: []domain.InvoiceItem{
			{ID: "a", Description: "Creative Direction", Qty: 1, Rate: 1500000, Total: 1500000},
			{ID: "b", Description: "TS - Signature Menu Nov", Qty: 2, Rate: 50000, Total: 100000},
		},
		Subtotal: 1600000,
	}
}

func TestInvoiceText(t *testing.T) {
	company := config.CompanyConfig{Name: "Reza Pahlevi Creative", Address: "Semarang, Indonesia"}
	payment := config.PaymentConfig{Bank: "Bank Permata", Account: "4206671993", Holder: "Muhammad Reza Pahlevi"}

	out := InvoiceText(sampleInvoice(), company, payment)

	for _, want := range []string{
		"KLD/24/11/001",
		"2 Nov 2024",
		"9 Nov 2024",
		"Naya Studio",
		"Jl. Pemuda No. 123, Semarang, Indonesia",
		"Reza Pahlevi Creative",
		"Creative Direction",
		"Rp 1.500.000",
		"Rp 1.600.000",
		"Bank Permata",
		"4206671993",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered invoice missing %q\n%s", want, out)
		}
	}
}

func TestWriteInvoiceFile(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteInvoiceFile(sampleInvoice(), config.CompanyConfig{}, config.PaymentConfig{}, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Path separators in the number must not create subdirectories
	if got := filepath.Base(path); got != "KLD-24-11-001.txt" {
		t.Errorf("unexpected file name %q", got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(data), "INVOICE") {
		t.Error("written file missing header")
	}
}
