package database

import (
	"fmt"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tablegames_manager/config"
	"tablegames_manager/model"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	Migrate(DB)

	SeedData(DB)
}

func Migrate(db *gorm.DB) {
	db.AutoMigrate(
		&model.Customer{},
		&model.Game{},
		&model.GameTable{},
		&model.TableBooking{},
		&model.GameRental{},
		&model.Cart{},
		&model.CartItem{},
		&model.PurchaseOrder{},
		&model.OrderItem{},
	)
	fmt.Println("Database Migrated")
}
