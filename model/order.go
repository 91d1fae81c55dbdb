package model

import "github.com/shopspring/decimal"

type OrderStatus string

const (
	OrderNew       OrderStatus = "new"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderNew:       {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderShipped},
	OrderShipped:   {OrderDelivered},
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PurchaseOrder struct {
	DTO
	PublicCode      string          `gorm:"unique;size:20" json:"publicCode"` // ORD-XXXXXXXX
	CustomerId      uint            `gorm:"not null;index" json:"customerId"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"totalAmount"`
	ShippingAddress string          `json:"shippingAddress"`
	Status          OrderStatus     `gorm:"size:20;not null;default:'new'" json:"status"`

	Customer Customer    `gorm:"foreignKey:CustomerId" json:"-"`
	Items    []OrderItem `gorm:"foreignKey:OrderId" json:"items"`
}

// OrderItem freezes the unit price at checkout; it is never recomputed
// from the catalog afterwards.
type OrderItem struct {
	DTO
	OrderId  uint            `gorm:"not null;index" json:"orderId"`
	GameId   uint            `gorm:"not null" json:"gameId"`
	Quantity int             `gorm:"not null" json:"quantity"`
	Price    decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"price"`

	Game Game `gorm:"foreignKey:GameId" json:"game"`
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type OrderStatusInput struct {
	Status OrderStatus `json:"status" validate:"required,oneof=new confirmed shipped delivered cancelled"`
}

type FilterOrderInput struct {
	Pagination
	Status OrderStatus `query:"status" json:"status" validate:"omitempty,oneof=new confirmed shipped delivered cancelled"`
}
