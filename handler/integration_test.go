package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tablegames_manager/constants"
	"tablegames_manager/database"
	"tablegames_manager/helper"
	"tablegames_manager/model"
	"tablegames_manager/router"
)

// setupTestApp wires the real routes against a throwaway database.
// Tests are skipped unless TEST_DATABASE_URL points at a Postgres
// instance we are allowed to truncate.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	os.Setenv("JWT_SECRET", "integration-test-secret")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("connect test database: %v", err)
	}
	database.DB = db
	database.Migrate(db)

	if err := db.Exec(`TRUNCATE order_items, purchase_orders, cart_items, carts,
		game_rentals, table_bookings, game_tables, games, customers RESTART IDENTITY CASCADE`).Error; err != nil {
		t.Fatalf("truncate: %v", err)
	}

	app := fiber.New()
	router.SetupRoutes(app)
	return app
}

func createTestCustomer(t *testing.T, email string) (model.Customer, string) {
	t.Helper()

	hash, err := helper.HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	customer := model.Customer{
		Email:    email,
		Password: hash,
		UserName: email,
		Address:  "12 Meeple Lane",
		Role:     constants.ROLE_CUSTOMER,
		IsActive: true,
	}
	if err := database.DB.Create(&customer).Error; err != nil {
		t.Fatalf("create customer: %v", err)
	}

	token, err := helper.GenerateAccessToken(model.TokenClaim{
		CustomerId: customer.ID,
		Email:      customer.Email,
		Role:       customer.Role,
	})
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return customer, token
}

func createTestGame(t *testing.T, name string, inStock, forRental int) model.Game {
	t.Helper()

	game := model.Game{
		Name:               name,
		Category:           model.CategoryStrategy,
		Price:              decimal.RequireFromString("45.00"),
		RentalPricePerDay:  decimal.RequireFromString("5.00"),
		MinPlayers:         2,
		MaxPlayers:         4,
		Difficulty:         2,
		InStock:            inStock,
		AvailableForRental: forRental,
	}
	if err := database.DB.Create(&game).Error; err != nil {
		t.Fatalf("create game: %v", err)
	}
	return game
}

func createTestTable(t *testing.T, name string, capacity int) model.GameTable {
	t.Helper()

	table := model.GameTable{
		Name:                  name,
		TableType:             model.TableTypeMedium,
		Capacity:              capacity,
		PricePerHourPerPerson: decimal.RequireFromString("60.00"),
		IsActive:              true,
	}
	if err := database.DB.Create(&table).Error; err != nil {
		t.Fatalf("create table: %v", err)
	}
	return table
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var parsed map[string]any
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &parsed); err != nil {
			t.Fatalf("%s %s: bad response %s", method, path, raw)
		}
	}
	return resp.StatusCode, parsed
}

func gameStock(t *testing.T, gameId uint) (int, int) {
	t.Helper()
	var game model.Game
	if err := database.DB.First(&game, gameId).Error; err != nil {
		t.Fatalf("reload game: %v", err)
	}
	return game.InStock, game.AvailableForRental
}

func futureDateString(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func TestBookingConflict(t *testing.T) {
	app := setupTestApp(t)
	_, token := createTestCustomer(t, "booker@example.com")
	table := createTestTable(t, "Middle hall", 6)

	booking := fiber.Map{
		"tableId":        table.ID,
		"bookingDate":    futureDateString(7),
		"startTime":      "10:00",
		"endTime":        "12:00",
		"numberOfPeople": 4,
	}
	status, resp := doJSON(t, app, http.MethodPost, "/api/v1/booking/", token, booking)
	if status != http.StatusCreated {
		t.Fatalf("first booking: status %d, resp %v", status, resp)
	}
	data := resp["data"].(map[string]any)
	if total := data["totalPrice"]; fmt.Sprint(total) != "480" {
		t.Errorf("totalPrice = %v, want 480 (2h x 60.00 x 4)", total)
	}

	booking["startTime"] = "11:00"
	booking["endTime"] = "13:00"
	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/booking/", token, booking)
	if status != http.StatusConflict {
		t.Errorf("overlapping booking: status %d, want %d", status, http.StatusConflict)
	}

	booking["startTime"] = "12:00"
	booking["endTime"] = "14:00"
	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/booking/", token, booking)
	if status != http.StatusCreated {
		t.Errorf("back-to-back booking: status %d, want %d", status, http.StatusCreated)
	}
}

func TestConcurrentCheckoutCannotOversell(t *testing.T) {
	app := setupTestApp(t)
	game := createTestGame(t, "Last Copy", 1, 0)

	tokens := make([]string, 2)
	for i := range tokens {
		_, token := createTestCustomer(t, fmt.Sprintf("buyer%d@example.com", i))
		tokens[i] = token
		status, resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/cart/add/%d", game.ID), token, nil)
		if status != http.StatusOK {
			t.Fatalf("add to cart: status %d, resp %v", status, resp)
		}
	}

	statuses := make([]int, 2)
	var wg sync.WaitGroup
	for i, token := range tokens {
		wg.Add(1)
		go func(i int, token string) {
			defer wg.Done()
			statuses[i], _ = doJSON(t, app, http.MethodPost, "/api/v1/order/checkout", token, nil)
		}(i, token)
	}
	wg.Wait()

	created, rejected := 0, 0
	for _, status := range statuses {
		switch status {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			rejected++
		}
	}
	if created != 1 || rejected != 1 {
		t.Fatalf("statuses = %v, want exactly one 201 and one 409", statuses)
	}

	if inStock, _ := gameStock(t, game.ID); inStock != 0 {
		t.Errorf("in_stock = %d, want 0", inStock)
	}
}

func TestCheckoutFreezesPriceAndClearsCart(t *testing.T) {
	app := setupTestApp(t)
	game := createTestGame(t, "Snapshot", 5, 0)
	_, token := createTestCustomer(t, "snapshot@example.com")

	for i := 0; i < 2; i++ {
		status, resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/cart/add/%d", game.ID), token, nil)
		if status != http.StatusOK {
			t.Fatalf("add to cart: status %d, resp %v", status, resp)
		}
	}

	status, resp := doJSON(t, app, http.MethodPost, "/api/v1/order/checkout", token, nil)
	if status != http.StatusCreated {
		t.Fatalf("checkout: status %d, resp %v", status, resp)
	}
	data := resp["data"].(map[string]any)
	if total := fmt.Sprint(data["totalAmount"]); total != "90" {
		t.Errorf("totalAmount = %s, want 90 (2 x 45.00)", total)
	}

	// a later catalog price change must not touch the order
	if err := database.DB.Model(&model.Game{}).Where("id = ?", game.ID).
		Update("price", decimal.RequireFromString("99.00")).Error; err != nil {
		t.Fatalf("reprice game: %v", err)
	}
	var items []model.OrderItem
	if err := database.DB.Find(&items).Error; err != nil {
		t.Fatalf("load order items: %v", err)
	}
	if len(items) != 1 || items[0].Price.StringFixed(2) != "45.00" {
		t.Errorf("order item price = %v, want frozen 45.00", items)
	}

	status, resp = doJSON(t, app, http.MethodGet, "/api/v1/cart/count", token, nil)
	if status != http.StatusOK || fmt.Sprint(resp["count"]) != "0" {
		t.Errorf("cart after checkout: status %d, count %v, want empty", status, resp["count"])
	}

	if inStock, _ := gameStock(t, game.ID); inStock != 3 {
		t.Errorf("in_stock = %d, want 3", inStock)
	}
}

func TestCancelOrderRestoresStock(t *testing.T) {
	app := setupTestApp(t)
	game := createTestGame(t, "Returnable", 4, 0)
	_, token := createTestCustomer(t, "cancel@example.com")

	for i := 0; i < 3; i++ {
		doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/cart/add/%d", game.ID), token, nil)
	}
	status, resp := doJSON(t, app, http.MethodPost, "/api/v1/order/checkout", token, nil)
	if status != http.StatusCreated {
		t.Fatalf("checkout: status %d, resp %v", status, resp)
	}
	data := resp["data"].(map[string]any)
	code := data["publicCode"].(string)

	if inStock, _ := gameStock(t, game.ID); inStock != 1 {
		t.Fatalf("in_stock after checkout = %d, want 1", inStock)
	}

	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/order/"+code+"/cancel", token, nil)
	if status != http.StatusOK {
		t.Fatalf("cancel: status %d", status)
	}
	if inStock, _ := gameStock(t, game.ID); inStock != 4 {
		t.Errorf("in_stock after cancel = %d, want 4", inStock)
	}

	// cancelling twice is an illegal transition
	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/order/"+code+"/cancel", token, nil)
	if status != http.StatusConflict {
		t.Errorf("second cancel: status %d, want %d", status, http.StatusConflict)
	}
}

func TestCancelShippedOrderRejected(t *testing.T) {
	app := setupTestApp(t)
	game := createTestGame(t, "Shipped", 2, 0)
	_, token := createTestCustomer(t, "shipped@example.com")

	doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/cart/add/%d", game.ID), token, nil)
	status, resp := doJSON(t, app, http.MethodPost, "/api/v1/order/checkout", token, nil)
	if status != http.StatusCreated {
		t.Fatalf("checkout: status %d, resp %v", status, resp)
	}
	code := resp["data"].(map[string]any)["publicCode"].(string)

	if err := database.DB.Model(&model.PurchaseOrder{}).
		Where("public_code = ?", code).
		Update("status", model.OrderShipped).Error; err != nil {
		t.Fatalf("ship order: %v", err)
	}

	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/order/"+code+"/cancel", token, nil)
	if status != http.StatusConflict {
		t.Errorf("cancel shipped order: status %d, want %d", status, http.StatusConflict)
	}
	if inStock, _ := gameStock(t, game.ID); inStock != 1 {
		t.Errorf("in_stock = %d, want 1 (no restock on rejected cancel)", inStock)
	}
}

func TestRentalLifecycleRestoresAvailability(t *testing.T) {
	app := setupTestApp(t)
	game := createTestGame(t, "Rentable", 0, 3)
	_, token := createTestCustomer(t, "renter@example.com")

	rental := fiber.Map{
		"gameId":    game.ID,
		"startDate": futureDateString(1),
		"endDate":   futureDateString(6),
		"quantity":  2,
	}
	status, resp := doJSON(t, app, http.MethodPost, "/api/v1/rental/", token, rental)
	if status != http.StatusCreated {
		t.Fatalf("create rental: status %d, resp %v", status, resp)
	}
	data := resp["data"].(map[string]any)
	if total := fmt.Sprint(data["totalPrice"]); total != "50" {
		t.Errorf("totalPrice = %s, want 50 (5 days x 5.00 x 2)", total)
	}
	rentalId := uint(data["id"].(float64))

	if _, forRental := gameStock(t, game.ID); forRental != 1 {
		t.Fatalf("available_for_rental = %d, want 1", forRental)
	}

	// a second rental for the remaining balance fails
	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/rental/", token, rental)
	if status != http.StatusConflict {
		t.Errorf("oversubscribed rental: status %d, want %d", status, http.StatusConflict)
	}

	status, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/rental/%d/cancel", rentalId), token, nil)
	if status != http.StatusOK {
		t.Fatalf("cancel rental: status %d", status)
	}
	if _, forRental := gameStock(t, game.ID); forRental != 3 {
		t.Errorf("available_for_rental after cancel = %d, want 3", forRental)
	}
}

func TestRentalDurationCap(t *testing.T) {
	app := setupTestApp(t)
	game := createTestGame(t, "LongRental", 0, 2)
	_, token := createTestCustomer(t, "duration@example.com")

	rental := fiber.Map{
		"gameId":    game.ID,
		"startDate": futureDateString(1),
		"endDate":   futureDateString(32), // 31-day span
		"quantity":  1,
	}
	status, _ := doJSON(t, app, http.MethodPost, "/api/v1/rental/", token, rental)
	if status != http.StatusBadRequest {
		t.Errorf("31-day rental: status %d, want %d", status, http.StatusBadRequest)
	}
}
