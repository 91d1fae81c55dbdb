package helper

import (
	"time"

	"tablegames_manager/model"
)

// MinutesOfDay converts a zero-padded "HH:MM" clock string to minutes
// since midnight.
func MinutesOfDay(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, ErrValidation
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Overlaps reports whether the half-open intervals [aStart,aEnd) and
// [bStart,bEnd) share an instant. Zero-padded "HH:MM" strings compare
// correctly as plain strings.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}

// BeforeToday compares calendar days, ignoring clock time.
func BeforeToday(d time.Time, now time.Time) bool {
	y1, m1, d1 := d.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}

// CanBook validates a requested table slot against the table and the
// bookings already stored for the same table/date. The caller fetches
// existing inside the same transaction that will create the booking.
func CanBook(table model.GameTable, date time.Time, start, end string, people int, existing []model.TableBooking) error {
	if BeforeToday(date, time.Now()) {
		return ErrPastDate
	}
	if start >= end {
		return ErrInvalidInterval
	}
	for _, b := range existing {
		if !b.Status.Blocking() {
			continue
		}
		if Overlaps(start, end, b.StartTime, b.EndTime) {
			return ErrConflict
		}
	}
	if people > table.Capacity {
		return ErrCapacityExceeded
	}
	return nil
}

// RentalDays counts whole days between two calendar dates.
func RentalDays(start, end time.Time) int {
	return int(end.Sub(start) / (24 * time.Hour))
}

// CanRent validates a rental request against the game's rental stock.
func CanRent(game model.Game, startDate, endDate time.Time, quantity int) error {
	if BeforeToday(startDate, time.Now()) {
		return ErrPastDate
	}
	if !endDate.After(startDate) {
		return ErrInvalidInterval
	}
	if RentalDays(startDate, endDate) > model.MaxRentalDays {
		return ErrDurationExceeded
	}
	if quantity > game.AvailableForRental {
		return ErrInsufficientStock
	}
	return nil
}

// CanAddToCart checks that the target quantity fits the purchase stock.
func CanAddToCart(game model.Game, requestedQuantity int) error {
	if requestedQuantity > game.InStock {
		return ErrInsufficientStock
	}
	return nil
}
