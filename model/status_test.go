package model

import "testing"

func TestBookingTransitions(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		want     bool
	}{
		{BookingPending, BookingConfirmed, true},
		{BookingPending, BookingCancelled, true},
		{BookingPending, BookingCompleted, false},
		{BookingConfirmed, BookingCompleted, true},
		{BookingConfirmed, BookingCancelled, true},
		{BookingCancelled, BookingConfirmed, false},
		{BookingCompleted, BookingCancelled, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}

	if !BookingPending.Blocking() || !BookingConfirmed.Blocking() {
		t.Error("pending and confirmed bookings must block their slot")
	}
	if BookingCancelled.Blocking() || BookingCompleted.Blocking() {
		t.Error("cancelled and completed bookings must release their slot")
	}
}

func TestRentalTransitions(t *testing.T) {
	tests := []struct {
		from, to RentalStatus
		want     bool
	}{
		{RentalPending, RentalActive, true},
		{RentalPending, RentalCancelled, true},
		{RentalPending, RentalCompleted, false},
		{RentalActive, RentalCompleted, true},
		{RentalActive, RentalCancelled, true},
		{RentalCompleted, RentalActive, false},
		{RentalCancelled, RentalPending, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}

	if !RentalPending.HoldsStock() || !RentalActive.HoldsStock() {
		t.Error("pending and active rentals hold rental copies")
	}
	if RentalCompleted.HoldsStock() || RentalCancelled.HoldsStock() {
		t.Error("completed and cancelled rentals must not hold rental copies")
	}
}

func TestOrderTransitions(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderNew, OrderConfirmed, true},
		{OrderNew, OrderCancelled, true},
		{OrderNew, OrderShipped, false},
		{OrderConfirmed, OrderShipped, true},
		{OrderConfirmed, OrderCancelled, false},
		{OrderShipped, OrderDelivered, true},
		{OrderShipped, OrderCancelled, false},
		{OrderDelivered, OrderCancelled, false},
		{OrderCancelled, OrderNew, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
