package validate

import (
	"github.com/gofiber/fiber/v2"

	"tablegames_manager/constants"
	"tablegames_manager/model"
	"tablegames_manager/utils"
)

func UpdateCartItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateCartItemInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}
