// Package format renders money and dates the way the invoice paper shows
// them: Indonesian rupiah with thousand grouping and no fractional digits,
// and short day-month-year dates.
package format

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const dateInputLayout = "2006-01-02"

var printer = message.NewPrinter(language.Indonesian)

// Money formats an amount as IDR, e.g. "Rp 1.500.000". The rupiah has no
// fractional subunit, so amounts are rendered whole.
func Money(amount float64) string {
	return printer.Sprintf("Rp %v", number.Decimal(amount, number.MaxFractionDigits(0)))
}

// Qty renders a quantity without trailing zeros
func Qty(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// Date renders a date for display, e.g. "2 Nov 2024"
func Date(t time.Time) string {
	return t.Format("2 Jan 2006")
}

// ParseDate parses a date entered as YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateInputLayout, s)
}

// DateInput renders a date in the editable YYYY-MM-DD form
func DateInput(t time.Time) string {
	return t.Format(dateInputLayout)
}
