package model

import "github.com/shopspring/decimal"

const (
	TableTypeSmall  = "small"  // 2-4 people
	TableTypeMedium = "medium" // 4-6 people
	TableTypeLarge  = "large"  // 6-8 people
	TableTypeVIP    = "vip"    // 8+ people
)

type GameTable struct {
	DTO
	Name                  string          `gorm:"size:100;not null" json:"name"`
	TableType             string          `gorm:"size:10;not null" json:"tableType"`
	Capacity              int             `gorm:"not null" json:"capacity"`
	PricePerHourPerPerson decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"pricePerHourPerPerson"`
	Description           string          `json:"description"`
	IsActive              bool            `gorm:"default:true" json:"isActive"`
}

type CreateTableInput struct {
	Name                  string `json:"name" validate:"required,max=100"`
	TableType             string `json:"tableType" validate:"required,oneof=small medium large vip"`
	Capacity              int    `json:"capacity" validate:"required,min=1"`
	PricePerHourPerPerson string `json:"pricePerHourPerPerson" validate:"required"`
	Description           string `json:"description"`
}

type EditTableInput struct {
	Name                  *string `json:"name" validate:"omitempty,max=100"`
	TableType             *string `json:"tableType" validate:"omitempty,oneof=small medium large vip"`
	Capacity              *int    `json:"capacity" validate:"omitempty,min=1"`
	PricePerHourPerPerson *string `json:"pricePerHourPerPerson"`
	Description           *string `json:"description"`
	IsActive              *bool   `json:"isActive"`
}
