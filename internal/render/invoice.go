// Package render produces the printable text form of an invoice.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rezapahlevi/kaludra/internal/config"
	"github.com/rezapahlevi/kaludra/internal/domain"
	"github.com/rezapahlevi/kaludra/internal/format"
)

// InvoiceText renders an invoice as a plain text document
func InvoiceText(inv *domain.Invoice, company config.CompanyConfig, payment config.PaymentConfig) string {
	var b strings.Builder

	sep := strings.Repeat("=", 64)
	line := strings.Repeat("-", 64)

	b.WriteString("INVOICE\n")
	b.WriteString(sep + "\n")
	b.WriteString(fmt.Sprintf("Invoice #:  %s\n", inv.InvoiceNumber))
	b.WriteString(fmt.Sprintf("Date:       %s\n", format.Date(inv.Date)))
	b.WriteString(fmt.Sprintf("Due:        %s\n", format.Date(inv.DueDate)))
	b.WriteString(fmt.Sprintf("Status:     %s\n", inv.Status))

	// From section
	b.WriteString("\nFrom:\n")
	if company.Name != "" {
		b.WriteString(fmt.Sprintf("  %s\n", company.Name))
	}
	if company.Address != "" {
		b.WriteString(fmt.Sprintf("  %s\n", company.Address))
	}
	if company.Email != "" {
		b.WriteString(fmt.Sprintf("  %s\n", company.Email))
	}

	// Bill To section uses the details copied at save time
	b.WriteString("\nBill To:\n")
	b.WriteString(fmt.Sprintf("  %s\n", inv.ClientName))
	if inv.ClientAddress != "" {
		b.WriteString(fmt.Sprintf("  %s\n", inv.ClientAddress))
	}

	b.WriteString("\n" + line + "\n")
	b.WriteString(fmt.Sprintf("%-28s %5s %13s %14s\n", "Description", "Qty", "Rate", "Total"))
	b.WriteString(line + "\n")

	for _, item := range inv.Items {
		desc := item.Description
		if len(desc) > 28 {
			desc = desc[:25] + "..."
		}
		b.WriteString(fmt.Sprintf("%-28s %5s %13s %14s\n",
			desc,
			format.Qty(item.Qty),
			format.Money(item.Rate),
			format.Money(item.Total),
		))
	}

	b.WriteString(line + "\n")
	b.WriteString(fmt.Sprintf("%48s %14s\n", "TOTAL", format.Money(inv.Total())))
	b.WriteString(sep + "\n")

	// Payment details
	if payment.Bank != "" || payment.Account != "" {
		b.WriteString("\nPayment:\n")
		if payment.Bank != "" {
			b.WriteString(fmt.Sprintf("  Bank:    %s\n", payment.Bank))
		}
		if payment.Account != "" {
			b.WriteString(fmt.Sprintf("  Account: %s\n", payment.Account))
		}
		if payment.Holder != "" {
			b.WriteString(fmt.Sprintf("  Holder:  %s\n", payment.Holder))
		}
	}

	return b.String()
}

// WriteInvoiceFile renders an invoice and writes it under dir, named after
// the invoice number with path separators flattened
func WriteInvoiceFile(inv *domain.Invoice, company config.CompanyConfig, payment config.PaymentConfig, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	name := strings.ReplaceAll(inv.InvoiceNumber, "/", "-") + ".txt"
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(InvoiceText(inv, company, payment)), 0644); err != nil {
		return "", err
	}
	return path, nil
}
