package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// bookingTransitions is the closed set of legal status moves.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Blocking reports whether a booking in this status still occupies its slot.
func (s BookingStatus) Blocking() bool {
	return s == BookingPending || s == BookingConfirmed
}

type TableBooking struct {
	DTO
	CustomerId     uint            `gorm:"not null;index" json:"customerId"`
	TableId        uint            `gorm:"not null;index:idx_table_date" json:"tableId"`
	BookingDate    time.Time       `gorm:"type:date;not null;index:idx_table_date" json:"bookingDate"`
	StartTime      string          `gorm:"size:5;not null" json:"startTime"` // "HH:MM", lexicographically ordered
	EndTime        string          `gorm:"size:5;not null" json:"endTime"`
	NumberOfPeople int             `gorm:"not null" json:"numberOfPeople"`
	TotalPrice     decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"totalPrice"`
	Status         BookingStatus   `gorm:"size:20;not null;default:'pending'" json:"status"`

	Customer Customer  `gorm:"foreignKey:CustomerId" json:"-"`
	Table    GameTable `gorm:"foreignKey:TableId" json:"table"`
}

type CreateBookingInput struct {
	TableId        uint   `json:"tableId" validate:"required,gt=0"`
	BookingDate    string `json:"bookingDate" validate:"required,datetime=2006-01-02"`
	StartTime      string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime        string `json:"endTime" validate:"required,datetime=15:04"`
	NumberOfPeople int    `json:"numberOfPeople" validate:"required,min=1"`
}

type BookingStatusInput struct {
	Status BookingStatus `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

type FilterBookingInput struct {
	Pagination
	TableId uint          `query:"tableId" json:"tableId" validate:"omitempty,gt=0"`
	Date    string        `query:"date" json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status  BookingStatus `query:"status" json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
}
