package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NextInvoiceNumber derives the next invoice number in the format
// "ORG/YY/MM/NNN", where the three-digit sequence counter is scoped to the
// current year-month prefix. The sequence is max-plus-one over the existing
// numbers in the period, so gaps left by deleted invoices are never reused
// downward.
//
// The counter is recomputed from the snapshot passed in; callers must
// serialize invoice creation, as two concurrent creations can derive the
// same number.
func NextInvoiceNumber(existing []Invoice, org string, now time.Time) string {
	prefix := fmt.Sprintf("%s/%02d/%02d/", org, now.Year()%100, int(now.Month()))

	sequence := 1
	for _, inv := range existing {
		if !strings.HasPrefix(inv.InvoiceNumber, prefix) {
			continue
		}
		parts := strings.Split(inv.InvoiceNumber, "/")
		seq := 0
		if len(parts) > 3 {
			// Unparsable trailing segments count as 0
			seq, _ = strconv.Atoi(parts[3])
		}
		if seq+1 > sequence {
			sequence = seq + 1
		}
	}

	return fmt.Sprintf("%s%03d", prefix, sequence)
}
