package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tablegames_manager/constants"
	"tablegames_manager/database"
	"tablegames_manager/helper"
	"tablegames_manager/model"
	"tablegames_manager/utils"
)

// getOrCreateCart is the idempotent per-customer cart upsert; the unique
// index on customer_id keeps a racing duplicate from slipping in.
func getOrCreateCart(db *gorm.DB, customerId uint) (model.Cart, error) {
	var cart model.Cart
	err := db.Where(model.Cart{CustomerId: customerId}).FirstOrCreate(&cart).Error
	return cart, err
}

func loadCart(customerId uint) (model.Cart, error) {
	cart, err := getOrCreateCart(database.DB, customerId)
	if err != nil {
		return cart, err
	}
	err = database.DB.Preload("Items.Game").First(&cart, cart.ID).Error
	return cart, err
}

func cartResponse(cart model.Cart) fiber.Map {
	return fiber.Map{
		"cart":       cart,
		"totalItems": cart.TotalItems(),
		"totalPrice": cart.TotalPrice(),
	}
}

func GetCart(c *fiber.Ctx) error {
	customer, err := helper.CurrentCustomer(c)
	if err != nil {
		return respondBusinessError(c, err)
	}

	cart, err := loadCart(customer.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cartResponse(cart))
}

func GetCartCount(c *fiber.Ctx) error {
	customer, err := helper.CurrentCustomer(c)
	if err != nil {
		return respondBusinessError(c, err)
	}

	cart, err := loadCart(customer.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.JSON(fiber.Map{"count": cart.TotalItems()})
}

// AddToCart adds one unit of the game, merging into an existing line.
// Stock is only checked here; it is decremented at checkout.
func AddToCart(c *fiber.Ctx) error {
	gameId := c.Locals("inputId").(int)

	customer, err := helper.CurrentCustomer(c)
	if err != nil {
		return respondBusinessError(c, err)
	}

	var game model.Game
	if err := database.DB.First(&game, gameId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.GAME_NOT_FOUND, err)
	}

	cart, err := getOrCreateCart(database.DB, customer.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var item model.CartItem
	err = database.DB.Where("cart_id = ? AND game_id = ?", cart.ID, game.ID).First(&item).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := helper.CanAddToCart(game, 1); err != nil {
			return respondBusinessError(c, err)
		}
		item = model.CartItem{CartId: cart.ID, GameId: game.ID, Quantity: 1}
		if err := database.DB.Create(&item).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	case err != nil:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	default:
		if err := helper.CanAddToCart(game, item.Quantity+1); err != nil {
			return respondBusinessError(c, err)
		}
		if err := database.DB.Model(&item).Update("quantity", item.Quantity+1).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	cart, err = loadCart(customer.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":   "item added to cart",
		"cartTotal": cart.TotalItems(),
	})
}

func UpdateCartItem(c *fiber.Ctx) error {
	itemId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.UpdateCartItemInput)

	customer, err := helper.CurrentCustomer(c)
	if err != nil {
		return respondBusinessError(c, err)
	}

	var item model.CartItem
	if err := database.DB.Preload("Game").
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.customer_id = ?", itemId, customer.ID).
		First(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CART_ITEM_NOT_FOUND, err)
	}

	deleted := false
	switch input.Action {
	case model.CartActionIncrease:
		if err := helper.CanAddToCart(item.Game, item.Quantity+1); err != nil {
			return respondBusinessError(c, err)
		}
		item.Quantity++
		if err := database.DB.Model(&item).Update("quantity", item.Quantity).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	case model.CartActionDecrease:
		if item.Quantity > 1 {
			item.Quantity--
			if err := database.DB.Model(&item).Update("quantity", item.Quantity).Error; err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
		} else {
			if err := database.DB.Delete(&item).Error; err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
			deleted = true
		}
	case model.CartActionRemove:
		if err := database.DB.Delete(&item).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		deleted = true
	}

	cart, err := loadCart(customer.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if deleted {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"message":        "item removed from cart",
			"deleted":        true,
			"cartTotal":      cart.TotalPrice(),
			"cartItemsCount": cart.TotalItems(),
		})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"quantity":       item.Quantity,
		"itemTotal":      item.TotalPrice(),
		"cartTotal":      cart.TotalPrice(),
		"cartItemsCount": cart.TotalItems(),
	})
}
