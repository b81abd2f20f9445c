package tui

import "github.com/rezapahlevi/kaludra/internal/domain"

// statusBadge renders a colored invoice status label
func statusBadge(status domain.InvoiceStatus) string {
	switch status {
	case domain.InvoiceStatusPaid:
		return badgePaidStyle.Render("PAID")
	case domain.InvoiceStatusUnpaid:
		return badgeUnpaidStyle.Render("UNPAID")
	default:
		return badgeDraftStyle.Render("DRAFT")
	}
}

// truncateStr truncates a string to the specified length with ellipsis
func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
