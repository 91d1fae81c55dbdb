package helper

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tablegames_manager/model"
)

func amount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad amount %q: %v", s, err)
	}
	return d
}

func TestBookingPrice(t *testing.T) {
	tests := []struct {
		name       string
		rate       string
		start, end string
		people     int
		want       string
	}{
		{"two hours four people", "60.00", "10:00", "12:00", 4, "480.00"},
		{"fractional hour", "60.00", "10:00", "11:30", 2, "180.00"},
		{"ninety minutes one person", "40.00", "18:15", "19:45", 1, "60.00"},
		{"half hour", "50.00", "12:00", "12:30", 3, "75.00"},
	}
	for _, tt := range tests {
		got, err := BookingPrice(amount(t, tt.rate), tt.start, tt.end, tt.people)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
			continue
		}
		if got.StringFixed(2) != tt.want {
			t.Errorf("%s: BookingPrice = %s, want %s", tt.name, got.StringFixed(2), tt.want)
		}
	}
}

func TestBookingPriceInvalidInterval(t *testing.T) {
	if _, err := BookingPrice(amount(t, "60.00"), "12:00", "10:00", 2); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("expected ErrInvalidInterval, got %v", err)
	}
}

func TestRentalPrice(t *testing.T) {
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	got := RentalPrice(amount(t, "10.00"), start, start.AddDate(0, 0, 5), 2)
	if got.StringFixed(2) != "100.00" {
		t.Errorf("RentalPrice = %s, want 100.00", got.StringFixed(2))
	}

	got = RentalPrice(amount(t, "3.50"), start, start.AddDate(0, 0, 3), 1)
	if got.StringFixed(2) != "10.50" {
		t.Errorf("RentalPrice = %s, want 10.50", got.StringFixed(2))
	}
}

func TestOrderTotal(t *testing.T) {
	items := []model.OrderItem{
		{Quantity: 2, Price: amount(t, "45.00")},
		{Quantity: 1, Price: amount(t, "19.99")},
	}
	got := OrderTotal(items)
	if got.StringFixed(2) != "109.99" {
		t.Errorf("OrderTotal = %s, want 109.99", got.StringFixed(2))
	}

	if !OrderTotal(nil).IsZero() {
		t.Error("empty order should total zero")
	}
}
