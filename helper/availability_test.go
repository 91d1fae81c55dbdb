package helper

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tablegames_manager/model"
)

// futureDate returns a date-granular value n calendar days from now, the
// way booking and rental dates are stored. Repeated calls with the same
// offset are equal.
func futureDate(days int) time.Time {
	y, m, d := time.Now().AddDate(0, 0, days).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"identical", "10:00", "12:00", "10:00", "12:00", true},
		{"contained", "10:00", "12:00", "10:30", "11:30", true},
		{"partial front", "10:00", "12:00", "09:00", "11:00", true},
		{"partial back", "10:00", "12:00", "11:00", "13:00", true},
		{"touching end", "10:00", "12:00", "12:00", "14:00", false},
		{"touching start", "10:00", "12:00", "08:00", "10:00", false},
		{"disjoint", "10:00", "12:00", "14:00", "16:00", false},
	}
	for _, tt := range tests {
		if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
			t.Errorf("%s: Overlaps(%s-%s, %s-%s) = %v, want %v",
				tt.name, tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
		}
	}
}

func TestMinutesOfDay(t *testing.T) {
	if m, err := MinutesOfDay("01:30"); err != nil || m != 90 {
		t.Errorf("MinutesOfDay(01:30) = %d, %v, want 90, nil", m, err)
	}
	if _, err := MinutesOfDay("25:00"); err == nil {
		t.Error("expected error for 25:00")
	}
	if _, err := MinutesOfDay("noon"); err == nil {
		t.Error("expected error for non-clock input")
	}
}

func TestCanBook(t *testing.T) {
	table := model.GameTable{Capacity: 6, PricePerHourPerPerson: decimal.NewFromInt(50)}
	existing := []model.TableBooking{
		{StartTime: "10:00", EndTime: "12:00", Status: model.BookingConfirmed},
		{StartTime: "14:00", EndTime: "16:00", Status: model.BookingCancelled},
	}

	tests := []struct {
		name       string
		date       time.Time
		start, end string
		people     int
		want       error
	}{
		{"past date", futureDate(-1), "10:00", "11:00", 2, ErrPastDate},
		{"start equals end", futureDate(1), "10:00", "10:00", 2, ErrInvalidInterval},
		{"start after end", futureDate(1), "12:00", "10:00", 2, ErrInvalidInterval},
		{"overlap with confirmed", futureDate(1), "11:00", "13:00", 2, ErrConflict},
		{"overlap with cancelled ignored", futureDate(1), "14:30", "15:30", 2, nil},
		{"over capacity", futureDate(1), "12:00", "13:00", 7, ErrCapacityExceeded},
		{"free slot", futureDate(1), "12:00", "14:00", 4, nil},
		{"today is bookable", time.Now(), "23:00", "23:30", 2, nil},
	}
	for _, tt := range tests {
		err := CanBook(table, tt.date, tt.start, tt.end, tt.people, existing)
		if !errors.Is(err, tt.want) && !(err == nil && tt.want == nil) {
			t.Errorf("%s: CanBook = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestCanBookChecksPendingToo(t *testing.T) {
	table := model.GameTable{Capacity: 4}
	existing := []model.TableBooking{
		{StartTime: "18:00", EndTime: "20:00", Status: model.BookingPending},
	}
	err := CanBook(table, futureDate(2), "19:00", "21:00", 2, existing)
	if !errors.Is(err, ErrConflict) {
		t.Errorf("pending booking must block the slot, got %v", err)
	}
}

func TestCanRent(t *testing.T) {
	game := model.Game{AvailableForRental: 3}

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		quantity int
		want     error
	}{
		{"past start", futureDate(-2), futureDate(3), 1, ErrPastDate},
		{"end before start", futureDate(5), futureDate(3), 1, ErrInvalidInterval},
		{"end equals start", futureDate(3), futureDate(3), 1, ErrInvalidInterval},
		{"31 days rejected", futureDate(1), futureDate(32), 1, ErrDurationExceeded},
		{"30 days allowed", futureDate(1), futureDate(31), 1, nil},
		{"too many copies", futureDate(1), futureDate(5), 4, ErrInsufficientStock},
		{"ok", futureDate(1), futureDate(6), 2, nil},
	}
	for _, tt := range tests {
		err := CanRent(game, tt.start, tt.end, tt.quantity)
		if !errors.Is(err, tt.want) && !(err == nil && tt.want == nil) {
			t.Errorf("%s: CanRent = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestRentalDays(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	if days := RentalDays(start, start.AddDate(0, 0, 5)); days != 5 {
		t.Errorf("RentalDays = %d, want 5", days)
	}
}

func TestCanAddToCart(t *testing.T) {
	game := model.Game{InStock: 4}

	if err := CanAddToCart(game, 4); err != nil {
		t.Errorf("4 of 4 should fit, got %v", err)
	}
	// a 5th unit on top of 4 already in the cart
	if err := CanAddToCart(game, 5); !errors.Is(err, ErrInsufficientStock) {
		t.Errorf("expected ErrInsufficientStock for 5 of 4, got %v", err)
	}
}
