package domain

import "testing"

func TestRecalculate(t *testing.T) {
	it := InvoiceItem{Qty: 3, Rate: 50000}
	it.Recalculate()
	if it.Total != 150000 {
		t.Fatalf("expected total 150000, got %v", it.Total)
	}

	it.Qty = 0
	it.Recalculate()
	if it.Total != 0 {
		t.Fatalf("expected total 0, got %v", it.Total)
	}
}

func TestApplyServiceOverwrites(t *testing.T) {
	it := InvoiceItem{Qty: 2, Rate: 99, Description: "hand-typed"}
	svc := Service{ID: "s1", Name: "X", Rate: 50000}

	it.ApplyService(svc)

	if it.Description != "X" {
		t.Fatalf("expected description overwritten to X, got %q", it.Description)
	}
	if it.Rate != 50000 {
		t.Fatalf("expected rate 50000, got %v", it.Rate)
	}
	if it.ServiceID != "s1" {
		t.Fatalf("expected serviceId s1, got %q", it.ServiceID)
	}
	if it.Total != 100000 {
		t.Fatalf("expected total recomputed to 100000, got %v", it.Total)
	}
}

func TestItemsTotal(t *testing.T) {
	if got := ItemsTotal(nil); got != 0 {
		t.Fatalf("expected 0 for empty sequence, got %v", got)
	}

	items := []InvoiceItem{
		{Total: 50000},
		{Total: 1500000},
		{Total: 100000},
	}
	if got := ItemsTotal(items); got != 1650000 {
		t.Fatalf("expected 1650000, got %v", got)
	}
}

func TestNextStatusCycle(t *testing.T) {
	inv := Invoice{Status: InvoiceStatusDraft}

	inv.Status = inv.NextStatus()
	if inv.Status != InvoiceStatusUnpaid {
		t.Fatalf("expected UNPAID after DRAFT, got %s", inv.Status)
	}

	// The toggle cycles between UNPAID and PAID and never re-enters DRAFT
	for i := 0; i < 6; i++ {
		prev := inv.Status
		inv.Status = inv.NextStatus()
		if inv.Status == InvoiceStatusDraft {
			t.Fatalf("toggle re-entered DRAFT after %s", prev)
		}
		if prev == InvoiceStatusUnpaid && inv.Status != InvoiceStatusPaid {
			t.Fatalf("expected PAID after UNPAID, got %s", inv.Status)
		}
		if prev == InvoiceStatusPaid && inv.Status != InvoiceStatusUnpaid {
			t.Fatalf("expected UNPAID after PAID, got %s", inv.Status)
		}
	}
}

func TestRemoveItemIdempotent(t *testing.T) {
	inv := Invoice{Items: []InvoiceItem{{ID: "a"}, {ID: "b"}}}

	inv.RemoveItem("a")
	if len(inv.Items) != 1 || inv.Items[0].ID != "b" {
		t.Fatalf("expected only item b to remain, got %+v", inv.Items)
	}

	inv.RemoveItem("a")
	if len(inv.Items) != 1 {
		t.Fatalf("second remove changed the items: %+v", inv.Items)
	}
}
