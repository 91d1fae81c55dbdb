package validate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"tablegames_manager/constants"
	"tablegames_manager/model"
	"tablegames_manager/utils"
)

func validAmount(s string) bool {
	d, err := decimal.NewFromString(s)
	return err == nil && !d.IsNegative()
}

func CreateGame() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateGameInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		if !validAmount(input.Price) || !validAmount(input.RentalPricePerDay) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func EditGame() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditGameInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		if input.Price != nil && !validAmount(*input.Price) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
		}
		if input.RentalPricePerDay != nil && !validAmount(*input.RentalPricePerDay) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
		}

		c.Locals("input", input)
		return c.Next()
	}
}
