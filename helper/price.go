package helper

import (
	"time"

	"github.com/shopspring/decimal"

	"tablegames_manager/model"
)

// BookingPrice computes duration × price-per-hour-per-person × headcount.
// Minutes are multiplied in before dividing by 60 so fractional hours
// (90 minutes = 1.5h) stay exact.
func BookingPrice(pricePerHourPerPerson decimal.Decimal, start, end string, people int) (decimal.Decimal, error) {
	s, err := MinutesOfDay(start)
	if err != nil {
		return decimal.Zero, err
	}
	e, err := MinutesOfDay(end)
	if err != nil {
		return decimal.Zero, err
	}
	if e <= s {
		return decimal.Zero, ErrInvalidInterval
	}
	minutes := decimal.NewFromInt(int64(e - s))
	total := pricePerHourPerPerson.
		Mul(minutes).
		Mul(decimal.NewFromInt(int64(people))).
		Div(decimal.NewFromInt(60))
	return total.Round(2), nil
}

// RentalPrice computes price-per-day × whole days × quantity.
func RentalPrice(pricePerDay decimal.Decimal, startDate, endDate time.Time, quantity int) decimal.Decimal {
	days := RentalDays(startDate, endDate)
	return pricePerDay.
		Mul(decimal.NewFromInt(int64(days))).
		Mul(decimal.NewFromInt(int64(quantity))).
		Round(2)
}

// OrderTotal sums frozen order-item prices.
func OrderTotal(items []model.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
