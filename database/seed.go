package database

import (
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tablegames_manager/constants"
	"tablegames_manager/model"
)

func money(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		log.Println("bad seed amount:", s)
		return decimal.Zero
	}
	return d
}

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	admin := model.Customer{
		Email:    "admin@tablegames.local",
		Password: string(bytes),
		UserName: "admin",
		Role:     constants.ROLE_ADMIN,
		IsActive: true,
	}
	if err := db.Where(model.Customer{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		log.Println("failed to seed admin account:", err)
	}

	games := []model.Game{
		{
			Name: "Catan", Category: model.CategoryStrategy,
			Price: money("45.00"), RentalPricePerDay: money("5.00"),
			MinPlayers: 3, MaxPlayers: 4, PlayTimeMinutes: 90, Difficulty: 2,
			InStock: 10, AvailableForRental: 4,
		},
		{
			Name: "Ticket to Ride", Category: model.CategoryFamily,
			Price: money("50.00"), RentalPricePerDay: money("6.00"),
			MinPlayers: 2, MaxPlayers: 5, PlayTimeMinutes: 60, Difficulty: 1,
			InStock: 8, AvailableForRental: 3,
		},
		{
			Name: "Codenames", Category: model.CategoryParty,
			Price: money("20.00"), RentalPricePerDay: money("3.00"),
			MinPlayers: 4, MaxPlayers: 8, PlayTimeMinutes: 15, Difficulty: 1,
			InStock: 15, AvailableForRental: 6,
		},
		{
			Name: "Pandemic", Category: model.CategoryCooperative,
			Price: money("40.00"), RentalPricePerDay: money("5.00"),
			MinPlayers: 2, MaxPlayers: 4, PlayTimeMinutes: 45, Difficulty: 2,
			InStock: 6, AvailableForRental: 2,
		},
		{
			Name: "Gloomhaven", Category: model.CategoryRPG,
			Price: money("140.00"), RentalPricePerDay: money("10.00"),
			MinPlayers: 1, MaxPlayers: 4, PlayTimeMinutes: 120, Difficulty: 5,
			InStock: 3, AvailableForRental: 1,
		},
	}
	for _, game := range games {
		if err := db.Where(model.Game{Name: game.Name}).FirstOrCreate(&game).Error; err != nil {
			log.Println("failed to seed game:", game.Name, "error:", err)
		}
	}

	tables := []model.GameTable{
		{Name: "Window corner", TableType: model.TableTypeSmall, Capacity: 4, PricePerHourPerPerson: money("40.00"), IsActive: true},
		{Name: "Middle hall", TableType: model.TableTypeMedium, Capacity: 6, PricePerHourPerPerson: money("50.00"), IsActive: true},
		{Name: "Back room", TableType: model.TableTypeLarge, Capacity: 8, PricePerHourPerPerson: money("60.00"), IsActive: true},
		{Name: "VIP lounge", TableType: model.TableTypeVIP, Capacity: 12, PricePerHourPerPerson: money("80.00"), IsActive: true},
	}
	for _, table := range tables {
		if err := db.Where(model.GameTable{Name: table.Name}).FirstOrCreate(&table).Error; err != nil {
			log.Println("failed to seed table:", table.Name, "error:", err)
		}
	}
}
