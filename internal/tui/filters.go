package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/rezapahlevi/kaludra/internal/domain"
)

// statusFilterAll means no status restriction on the dashboard list
const statusFilterAll = domain.InvoiceStatus("")

// cycleStatusFilter advances the dashboard status filter:
// all -> DRAFT -> UNPAID -> PAID -> all
func cycleStatusFilter(s domain.InvoiceStatus) domain.InvoiceStatus {
	switch s {
	case statusFilterAll:
		return domain.InvoiceStatusDraft
	case domain.InvoiceStatusDraft:
		return domain.InvoiceStatusUnpaid
	case domain.InvoiceStatusUnpaid:
		return domain.InvoiceStatusPaid
	default:
		return statusFilterAll
	}
}

// dateOnly drops the time-of-day so range bounds compare whole days
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// filterInvoices applies the dashboard filters: text query against client
// name and invoice number, a status restriction, and an inclusive issue-date
// range. Zero from/to bounds leave that side open.
func filterInvoices(invoices []domain.Invoice, query string, status domain.InvoiceStatus, from, to time.Time) []domain.Invoice {
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := make([]domain.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if status != statusFilterAll && inv.Status != status {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(inv.ClientName), query) &&
			!strings.Contains(strings.ToLower(inv.InvoiceNumber), query) {
			continue
		}
		d := dateOnly(inv.Date)
		if !from.IsZero() && d.Before(dateOnly(from)) {
			continue
		}
		if !to.IsZero() && d.After(dateOnly(to)) {
			continue
		}
		filtered = append(filtered, inv)
	}
	return filtered
}

// filterClients matches the query against name, email, and address
func filterClients(clients []domain.Client, query string) []domain.Client {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return clients
	}

	filtered := make([]domain.Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), query) ||
			strings.Contains(strings.ToLower(c.Email), query) ||
			strings.Contains(strings.ToLower(c.Address), query) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// filterServices matches the query against the name and the rate digits
func filterServices(services []domain.Service, query string) []domain.Service {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return services
	}
	lower := strings.ToLower(trimmed)

	filtered := make([]domain.Service, 0, len(services))
	for _, s := range services {
		if strings.Contains(strings.ToLower(s.Name), lower) ||
			strings.Contains(strconv.FormatFloat(s.Rate, 'f', -1, 64), trimmed) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
