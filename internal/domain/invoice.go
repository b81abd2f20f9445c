package domain

import (
	"time"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft  InvoiceStatus = "DRAFT"
	InvoiceStatusUnpaid InvoiceStatus = "UNPAID"
	InvoiceStatusPaid   InvoiceStatus = "PAID"
)

// InvoiceItem is a single line on an invoice. ServiceID is a soft reference:
// it records which service was used for quick-fill, but later edits to that
// service never propagate back to the item.
type InvoiceItem struct {
	ID          string  `json:"id"`
	ServiceID   string  `json:"serviceId"`
	Description string  `json:"description"`
	Qty         float64 `json:"qty"`
	Rate        float64 `json:"rate"`
	Total       float64 `json:"total"`
}

// Recalculate restores the line invariant Total = Qty * Rate.
// Must be called after any edit to Qty or Rate.
func (it *InvoiceItem) Recalculate() {
	it.Total = it.Qty * it.Rate
}

// ApplyService quick-fills the item from a price-list service. This
// deliberately overwrites any manual edits to Description and Rate.
func (it *InvoiceItem) ApplyService(svc Service) {
	it.ServiceID = svc.ID
	it.Description = svc.Name
	it.Rate = svc.Rate
	it.Recalculate()
}

// Invoice holds its items exclusively and a weak, denormalized reference to
// its client: ClientID for lookup plus a snapshot of the display fields taken
// at save time, so the invoice stays readable after the client is deleted.
type Invoice struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoiceNumber"`
	ClientID      string        `json:"clientId"`
	ClientName    string        `json:"clientName"`
	ClientAddress string        `json:"clientAddress"`
	Date          time.Time     `json:"date"`
	DueDate       time.Time     `json:"dueDate"`
	Items         []InvoiceItem `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Status        InvoiceStatus `json:"status"`
}

// ItemsTotal sums the line totals of an item sequence. Zero for an empty one.
func ItemsTotal(items []InvoiceItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Total
	}
	return total
}

// Total returns the aggregate of the invoice's line totals
func (i *Invoice) Total() float64 {
	return ItemsTotal(i.Items)
}

// RecalculateSubtotal restores Subtotal = sum of line totals
func (i *Invoice) RecalculateSubtotal() {
	i.Subtotal = ItemsTotal(i.Items)
}

// IsDraft returns true if the invoice has never been marked unpaid or paid
func (i *Invoice) IsDraft() bool {
	return i.Status == InvoiceStatusDraft
}

// NextStatus advances the payment toggle: DRAFT -> UNPAID -> PAID -> UNPAID.
// DRAFT is only ever entered at creation; the toggle never returns to it.
func (i *Invoice) NextStatus() InvoiceStatus {
	switch i.Status {
	case InvoiceStatusDraft:
		return InvoiceStatusUnpaid
	case InvoiceStatusUnpaid:
		return InvoiceStatusPaid
	case InvoiceStatusPaid:
		return InvoiceStatusUnpaid
	default:
		return InvoiceStatusUnpaid
	}
}

// FindItem returns a pointer to the item with the given id, or nil
func (i *Invoice) FindItem(itemID string) *InvoiceItem {
	for idx := range i.Items {
		if i.Items[idx].ID == itemID {
			return &i.Items[idx]
		}
	}
	return nil
}

// RemoveItem deletes the item with the given id. Removing an absent id is a
// no-op.
func (i *Invoice) RemoveItem(itemID string) {
	for idx := range i.Items {
		if i.Items[idx].ID == itemID {
			i.Items = append(i.Items[:idx], i.Items[idx+1:]...)
			return
		}
	}
}
