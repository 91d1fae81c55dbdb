package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"tablegames_manager/handler"
	"tablegames_manager/middleware"
	"tablegames_manager/validate"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.RegisterCustomer(), handler.RegisterCustomer)
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)

	customer := v1.Group("/customer", logger.New())
	customer.Get("/me", middleware.Protected(), handler.GetCurrentCustomer)
	customer.Put("/me", middleware.Protected(), validate.EditCustomer(), handler.EditCustomer)
	customer.Post("/change-password", middleware.Protected(), validate.ChangePasswordCustomer(), handler.ChangePasswordCustomer)
	customer.Get("/", middleware.Protected(), middleware.AdminOnly(), handler.GetCustomers)
	customer.Get("/:customerId", middleware.Protected(), middleware.AdminOnly(), validate.GetById("customerId"), handler.GetCustomerById)

	game := v1.Group("/game", logger.New())
	game.Get("/", handler.GetGames)
	game.Get("/:gameId", validate.GetById("gameId"), handler.GetGameById)
	game.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateGame(), handler.CreateGame)
	game.Put("/:gameId", middleware.Protected(), middleware.AdminOnly(), validate.GetById("gameId"), validate.EditGame(), handler.EditGame)

	table := v1.Group("/table", logger.New())
	table.Get("/", handler.GetTables)
	table.Get("/:tableId", validate.GetById("tableId"), handler.GetTableById)
	table.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateTable(), handler.CreateTable)
	table.Put("/:tableId", middleware.Protected(), middleware.AdminOnly(), validate.GetById("tableId"), validate.EditTable(), handler.EditTable)
	table.Delete("/", middleware.Protected(), middleware.AdminOnly(), validate.Delete(), handler.DeleteTables)

	booking := v1.Group("/booking", logger.New())
	booking.Post("/", middleware.Protected(), validate.CreateBooking(), handler.CreateBooking)
	booking.Get("/my", middleware.Protected(), handler.GetMyBookings)
	booking.Post("/:bookingId/cancel", middleware.Protected(), validate.GetById("bookingId"), handler.CancelBooking)
	booking.Get("/", middleware.Protected(), middleware.AdminOnly(), handler.GetBookings)
	booking.Patch("/:bookingId/status", middleware.Protected(), middleware.AdminOnly(), validate.GetById("bookingId"), validate.BookingStatus(), handler.UpdateBookingStatus)

	rental := v1.Group("/rental", logger.New())
	rental.Post("/", middleware.Protected(), validate.CreateRental(), handler.CreateRental)
	rental.Get("/my", middleware.Protected(), handler.GetMyRentals)
	rental.Post("/:rentalId/cancel", middleware.Protected(), validate.GetById("rentalId"), handler.CancelRental)
	rental.Get("/", middleware.Protected(), middleware.AdminOnly(), handler.GetRentals)
	rental.Patch("/:rentalId/status", middleware.Protected(), middleware.AdminOnly(), validate.GetById("rentalId"), validate.RentalStatus(), handler.UpdateRentalStatus)

	cart := v1.Group("/cart", logger.New())
	cart.Get("/", middleware.Protected(), handler.GetCart)
	cart.Get("/count", middleware.Protected(), handler.GetCartCount)
	cart.Post("/add/:gameId", middleware.Protected(), validate.GetById("gameId"), handler.AddToCart)
	cart.Post("/item/:itemId", middleware.Protected(), validate.GetById("itemId"), validate.UpdateCartItem(), handler.UpdateCartItem)

	order := v1.Group("/order", logger.New())
	order.Post("/checkout", middleware.Protected(), handler.Checkout)
	order.Get("/my", middleware.Protected(), handler.GetMyOrders)
	order.Get("/:orderCode", middleware.Protected(), handler.GetOrderByCode)
	order.Post("/:orderCode/cancel", middleware.Protected(), handler.CancelOrder)
	order.Get("/", middleware.Protected(), middleware.AdminOnly(), handler.GetOrders)
	order.Patch("/:orderId/status", middleware.Protected(), middleware.AdminOnly(), validate.GetById("orderId"), validate.OrderStatus(), handler.UpdateOrderStatus)
}
