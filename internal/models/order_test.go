package models

import "testing"

func TestCanTransitionTo(t *testing.T) {
	allowed := []struct{ from, to OrderStatus }{
		{OrderStatusDraft, OrderStatusPending},
		{OrderStatusDraft, OrderStatusCancelled},
		{OrderStatusPending, OrderStatusApproved},
		{OrderStatusPending, OrderStatusCancelled},
		{OrderStatusApproved, OrderStatusProcessing},
		{OrderStatusApproved, OrderStatusCancelled},
		{OrderStatusProcessing, OrderStatusShipped},
		{OrderStatusProcessing, OrderStatusCancelled},
		{OrderStatusShipped, OrderStatusDelivered},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Errorf("%s -> %s should be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to OrderStatus }{
		{OrderStatusDraft, OrderStatusApproved},
		{OrderStatusDraft, OrderStatusDelivered},
		{OrderStatusPending, OrderStatusShipped},
		{OrderStatusApproved, OrderStatusPending},
		{OrderStatusShipped, OrderStatusCancelled},
		{OrderStatusDelivered, OrderStatusPending},
		{OrderStatusCancelled, OrderStatusDraft},
		{OrderStatusCancelled, OrderStatusCancelled},
	}
	for _, tc := range denied {
		if tc.from.CanTransitionTo(tc.to) {
			t.Errorf("%s -> %s should be denied", tc.from, tc.to)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusDelivered, OrderStatusCancelled} {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []OrderStatus{OrderStatusDraft, OrderStatusPending, OrderStatusApproved, OrderStatusProcessing, OrderStatusShipped} {
		if s.Terminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}

func TestBadge_KnownStatuses(t *testing.T) {
	cases := []struct {
		status OrderStatus
		label  string
	}{
		{OrderStatusPending, "Pending"},
		{OrderStatusApproved, "Approved"},
		{OrderStatusShipped, "Shipped"},
		{OrderStatusDelivered, "Delivered"},
	}
	for _, tc := range cases {
		b := tc.status.Badge()
		if b.Label != tc.label {
			t.Errorf("%s: got label %q, want %q", tc.status, b.Label, tc.label)
		}
		if b.Color == "" {
			t.Errorf("%s: empty color", tc.status)
		}
	}
}

func TestBadge_UnknownStatusFallsBack(t *testing.T) {
	b := OrderStatus("bogus").Badge()
	if b.Label != "Unknown" {
		t.Fatalf("got label %q, want Unknown", b.Label)
	}
	if b.Color != "text-gray-600 bg-gray-100" {
		t.Fatalf("unexpected fallback color %q", b.Color)
	}
}

func TestComputeTotal(t *testing.T) {
	items := []OrderItem{
		{Quantity: 3, Price: 2.5},
		{Quantity: 1, Price: 10},
		{Quantity: 2, Price: 0.75},
	}
	if got := ComputeTotal(items); got != 19 {
		t.Fatalf("got %v, want 19", got)
	}

	if got := ComputeTotal(nil); got != 0 {
		t.Fatalf("empty order total: got %v, want 0", got)
	}
}
