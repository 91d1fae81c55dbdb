package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type RentalStatus string

const (
	RentalPending   RentalStatus = "pending"
	RentalActive    RentalStatus = "active"
	RentalCompleted RentalStatus = "completed"
	RentalCancelled RentalStatus = "cancelled"
)

// MaxRentalDays caps a single rental span.
const MaxRentalDays = 30

var rentalTransitions = map[RentalStatus][]RentalStatus{
	RentalPending: {RentalActive, RentalCancelled},
	RentalActive:  {RentalCompleted, RentalCancelled},
}

func (s RentalStatus) CanTransitionTo(next RentalStatus) bool {
	for _, allowed := range rentalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// HoldsStock reports whether a rental in this status still holds rental copies.
func (s RentalStatus) HoldsStock() bool {
	return s == RentalPending || s == RentalActive
}

type GameRental struct {
	DTO
	CustomerId uint            `gorm:"not null;index" json:"customerId"`
	GameId     uint            `gorm:"not null;index" json:"gameId"`
	StartDate  time.Time       `gorm:"type:date;not null" json:"startDate"`
	EndDate    time.Time       `gorm:"type:date;not null" json:"endDate"`
	Quantity   int             `gorm:"not null;default:1" json:"quantity"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"totalPrice"`
	Status     RentalStatus    `gorm:"size:20;not null;default:'pending'" json:"status"`

	Customer Customer `gorm:"foreignKey:CustomerId" json:"-"`
	Game     Game     `gorm:"foreignKey:GameId" json:"game"`
}

type CreateRentalInput struct {
	GameId    uint   `json:"gameId" validate:"required,gt=0"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type RentalStatusInput struct {
	Status RentalStatus `json:"status" validate:"required,oneof=pending active completed cancelled"`
}

type FilterRentalInput struct {
	Pagination
	GameId uint         `query:"gameId" json:"gameId" validate:"omitempty,gt=0"`
	Status RentalStatus `query:"status" json:"status" validate:"omitempty,oneof=pending active completed cancelled"`
}
