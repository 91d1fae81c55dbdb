package model

import "github.com/shopspring/decimal"

const (
	CategoryStrategy    = "strategy"
	CategoryFamily      = "family"
	CategoryParty       = "party"
	CategoryCooperative = "cooperative"
	CategoryCard        = "card"
	CategoryRPG         = "rpg"
)

type Game struct {
	DTO
	Name               string          `gorm:"size:200;not null" json:"name"`
	Description        string          `json:"description"`
	Category           string          `gorm:"size:20;not null" json:"category"`
	Price              decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	RentalPricePerDay  decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"rentalPricePerDay"`
	MinPlayers         int             `gorm:"not null" json:"minPlayers"`
	MaxPlayers         int             `gorm:"not null" json:"maxPlayers"`
	PlayTimeMinutes    int             `json:"playTimeMinutes"`
	Difficulty         int             `json:"difficulty"` // 1 (light) .. 5 (heavy)
	InStock            int             `gorm:"not null;default:0;check:in_stock >= 0" json:"inStock"`
	AvailableForRental int             `gorm:"not null;default:0;check:available_for_rental >= 0" json:"availableForRental"`
	ImageUrl           *string         `json:"imageUrl,omitempty"`
}

type Games []Game

type CreateGameInput struct {
	Name               string  `json:"name" validate:"required,max=200"`
	Description        string  `json:"description"`
	Category           string  `json:"category" validate:"required,oneof=strategy family party cooperative card rpg"`
	Price              string  `json:"price" validate:"required"`
	RentalPricePerDay  string  `json:"rentalPricePerDay" validate:"required"`
	MinPlayers         int     `json:"minPlayers" validate:"required,min=1"`
	MaxPlayers         int     `json:"maxPlayers" validate:"required,gtefield=MinPlayers"`
	PlayTimeMinutes    int     `json:"playTimeMinutes" validate:"omitempty,min=1"`
	Difficulty         int     `json:"difficulty" validate:"required,min=1,max=5"`
	InStock            int     `json:"inStock" validate:"omitempty,min=0"`
	AvailableForRental int     `json:"availableForRental" validate:"omitempty,min=0"`
	ImageUrl           *string `json:"imageUrl"`
}

type EditGameInput struct {
	Name               *string `json:"name" validate:"omitempty,max=200"`
	Description        *string `json:"description"`
	Category           *string `json:"category" validate:"omitempty,oneof=strategy family party cooperative card rpg"`
	Price              *string `json:"price"`
	RentalPricePerDay  *string `json:"rentalPricePerDay"`
	MinPlayers         *int    `json:"minPlayers" validate:"omitempty,min=1"`
	MaxPlayers         *int    `json:"maxPlayers" validate:"omitempty,min=1"`
	PlayTimeMinutes    *int    `json:"playTimeMinutes" validate:"omitempty,min=1"`
	Difficulty         *int    `json:"difficulty" validate:"omitempty,min=1,max=5"`
	InStock            *int    `json:"inStock" validate:"omitempty,min=0"`
	AvailableForRental *int    `json:"availableForRental" validate:"omitempty,min=0"`
	ImageUrl           *string `json:"imageUrl"`
}

type FilterGameInput struct {
	Pagination
	Category  string `query:"category" json:"category" validate:"omitempty,oneof=strategy family party cooperative card rpg"`
	SearchKey string `query:"searchKey" json:"searchKey"`
	InStock   *bool  `query:"inStock" json:"inStock"`
}
