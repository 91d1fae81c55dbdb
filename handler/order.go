package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tablegames_manager/constants"
	"tablegames_manager/database"
	"tablegames_manager/helper"
	"tablegames_manager/model"
	"tablegames_manager/utils"
)

var errCartEmpty = errors.New("cart is empty")

func newOrderCode() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}

// Checkout converts the customer's cart into an order. The whole
// read-check-write sequence runs in one transaction: every game row is
// locked, quantities are re-validated against current stock, prices are
// frozen into order items and stock is decremented. Any failure rolls
// the whole thing back.
func Checkout(c *fiber.Ctx) error {
	customer, err := helper.CurrentCustomer(c)
	if err != nil {
		return respondBusinessError(c, err)
	}

	var order model.PurchaseOrder
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var cart model.Cart
		if err := tx.Where("customer_id = ?", customer.ID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errCartEmpty
			}
			return err
		}

		var items []model.CartItem
		// fixed lock order across concurrent checkouts
		if err := tx.Where("cart_id = ?", cart.ID).Order("game_id asc").Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return errCartEmpty
		}

		var orderItems []model.OrderItem
		for _, item := range items {
			var game model.Game
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&game, item.GameId).Error; err != nil {
				return err
			}
			if err := helper.CanAddToCart(game, item.Quantity); err != nil {
				return err
			}
			orderItems = append(orderItems, model.OrderItem{
				GameId:   game.ID,
				Quantity: item.Quantity,
				Price:    game.Price, // frozen at checkout
			})
			if err := tx.Model(&game).
				Update("in_stock", gorm.Expr("in_stock - ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		order = model.PurchaseOrder{
			PublicCode:      newOrderCode(),
			CustomerId:      customer.ID,
			TotalAmount:     helper.OrderTotal(orderItems),
			ShippingAddress: customer.Address,
			Status:          model.OrderNew,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for i := range orderItems {
			orderItems[i].OrderId = order.ID
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return err
		}
		order.Items = orderItems

		return tx.Where("cart_id = ?", cart.ID).Delete(&model.CartItem{}).Error
	})

	if errors.Is(err, errCartEmpty) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CART_EMPTY, err)
	}
	if err != nil {
		return respondBusinessError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, order)
}

func GetMyOrders(c *fiber.Ctx) error {
	customer, err := helper.CurrentCustomer(c)
	if err != nil {
		return respondBusinessError(c, err)
	}

	var orders []model.PurchaseOrder
	if err := database.DB.Preload("Items.Game").
		Where("customer_id = ?", customer.ID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, orders)
}

func GetOrderByCode(c *fiber.Ctx) error {
	orderCode := c.Params("orderCode")

	customer, err := helper.CurrentCustomer(c)
	if err != nil {
		return respondBusinessError(c, err)
	}

	var order model.PurchaseOrder
	if err := database.DB.Preload("Items.Game").
		Where("public_code = ? AND customer_id = ?", orderCode, customer.ID).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// transitionOrder applies a status move; cancelling a new order puts the
// item quantities back in stock in the same transaction.
func transitionOrder(orderId uint, ownerId *uint, next model.OrderStatus) (model.PurchaseOrder, error) {
	var order model.PurchaseOrder
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		query := tx.Clauses(clause.Locking{Strength: "UPDATE"})
		if ownerId != nil {
			query = query.Where("customer_id = ?", *ownerId)
		}
		if err := query.First(&order, orderId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.ErrNotFound
			}
			return err
		}

		if !order.Status.CanTransitionTo(next) {
			return helper.ErrIllegalTransition
		}

		if next == model.OrderCancelled {
			var items []model.OrderItem
			if err := tx.Where("order_id = ?", order.ID).Order("game_id asc").Find(&items).Error; err != nil {
				return err
			}
			for _, item := range items {
				if err := tx.Model(&model.Game{}).
					Where("id = ?", item.GameId).
					Update("in_stock", gorm.Expr("in_stock + ?", item.Quantity)).Error; err != nil {
					return err
				}
			}
		}

		order.Status = next
		return tx.Model(&order).Update("status", next).Error
	})
	return order, err
}

// CancelOrder lets a customer cancel an order that is still new.
func CancelOrder(c *fiber.Ctx) error {
	orderCode := c.Params("orderCode")

	customer, err := helper.CurrentCustomer(c)
	if err != nil {
		return respondBusinessError(c, err)
	}

	var order model.PurchaseOrder
	if err := database.DB.
		Where("public_code = ? AND customer_id = ?", orderCode, customer.ID).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	order, err = transitionOrder(order.ID, &customer.ID, model.OrderCancelled)
	if err != nil {
		return respondBusinessError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":    "order cancelled",
		"publicCode": order.PublicCode,
		"status":     order.Status,
	})
}

// UpdateOrderStatus is the admin transition endpoint.
func UpdateOrderStatus(c *fiber.Ctx) error {
	orderId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.OrderStatusInput)

	order, err := transitionOrder(uint(orderId), nil, input.Status)
	if err != nil {
		return respondBusinessError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func GetOrders(c *fiber.Ctx) error {
	filterInput := new(model.FilterOrderInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.PurchaseOrder{}).Preload("Items.Game")

	if filterInput.Status != "" {
		condition = condition.Where("status = ?", filterInput.Status)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var orders []model.PurchaseOrder
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Order("created_at desc").Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       orders,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}
