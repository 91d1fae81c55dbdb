package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCartAggregates(t *testing.T) {
	catan := Game{Price: decimal.RequireFromString("45.00")}
	codenames := Game{Price: decimal.RequireFromString("19.99")}

	cart := Cart{Items: []CartItem{
		{Quantity: 2, Game: catan},
		{Quantity: 3, Game: codenames},
	}}

	if got := cart.TotalItems(); got != 5 {
		t.Errorf("TotalItems = %d, want 5", got)
	}
	if got := cart.TotalPrice(); got.StringFixed(2) != "149.97" {
		t.Errorf("TotalPrice = %s, want 149.97", got.StringFixed(2))
	}
}

func TestEmptyCartAggregates(t *testing.T) {
	var cart Cart
	if cart.TotalItems() != 0 {
		t.Error("empty cart should count zero items")
	}
	if !cart.TotalPrice().IsZero() {
		t.Error("empty cart should total zero")
	}
}

func TestOrderItemSubtotal(t *testing.T) {
	item := OrderItem{Quantity: 4, Price: decimal.RequireFromString("12.25")}
	if got := item.Subtotal(); got.StringFixed(2) != "49.00" {
		t.Errorf("Subtotal = %s, want 49.00", got.StringFixed(2))
	}
}
