package format

import (
	"testing"
)

func TestMoney(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "Rp 0"},
		{50000, "Rp 50.000"},
		{1500000, "Rp 1.500.000"},
	}

	for _, c := range cases {
		if got := Money(c.amount); got != c.want {
			t.Errorf("Money(%v) = %q, want %q", c.amount, got, c.want)
		}
	}
}

func TestDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2024-11-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Date(parsed); got != "2 Nov 2024" {
		t.Fatalf("Date() = %q, want %q", got, "2 Nov 2024")
	}
	if got := DateInput(parsed); got != "2024-11-02" {
		t.Fatalf("DateInput() = %q, want %q", got, "2024-11-02")
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("not-a-date"); err == nil {
		t.Fatal("expected error for invalid input")
	}
}
