package model

import "github.com/shopspring/decimal"

type Cart struct {
	DTO
	CustomerId uint       `gorm:"not null;uniqueIndex" json:"customerId"`
	Items      []CartItem `gorm:"foreignKey:CartId" json:"items"`
}

type CartItem struct {
	DTO
	CartId   uint `gorm:"not null;uniqueIndex:idx_cart_game" json:"cartId"`
	GameId   uint `gorm:"not null;uniqueIndex:idx_cart_game" json:"gameId"`
	Quantity int  `gorm:"not null;default:1;check:quantity > 0" json:"quantity"`

	Game Game `gorm:"foreignKey:GameId" json:"game"`
}

// TotalPrice is the item's current line total (catalog price, not a snapshot).
func (i CartItem) TotalPrice() decimal.Decimal {
	return i.Game.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (c Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

func (c Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

const (
	CartActionIncrease = "increase"
	CartActionDecrease = "decrease"
	CartActionRemove   = "remove"
)

type UpdateCartItemInput struct {
	Action string `json:"action" validate:"required,oneof=increase decrease remove"`
}
