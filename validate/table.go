package validate

import (
	"github.com/gofiber/fiber/v2"

	"tablegames_manager/constants"
	"tablegames_manager/model"
	"tablegames_manager/utils"
)

func CreateTable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTableInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		if !validAmount(input.PricePerHourPerPerson) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func EditTable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditTableInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		if input.PricePerHourPerPerson != nil && !validAmount(*input.PricePerHourPerPerson) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
		}

		c.Locals("input", input)
		return c.Next()
	}
}
