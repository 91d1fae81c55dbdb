package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"tablegames_manager/constants"
	"tablegames_manager/helper"
	"tablegames_manager/utils"
)

// respondBusinessError maps a business-rule rejection to a 4xx response.
// Anything unrecognized is a storage-level failure and stays a 500.
func respondBusinessError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, helper.ErrPastDate):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.BOOKING_PAST_DATE, err)
	case errors.Is(err, helper.ErrInvalidInterval):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.BOOKING_INVALID_INTERVAL, err)
	case errors.Is(err, helper.ErrConflict):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.BOOKING_CONFLICT, err)
	case errors.Is(err, helper.ErrCapacityExceeded):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.BOOKING_CAPACITY_EXCEEDED, err)
	case errors.Is(err, helper.ErrDurationExceeded):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.RENTAL_DURATION_EXCEEDED, err)
	case errors.Is(err, helper.ErrInsufficientStock):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.INSUFFICIENT_STOCK, err)
	case errors.Is(err, helper.ErrIllegalTransition):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ILLEGAL_TRANSITION, err)
	case errors.Is(err, helper.ErrValidation):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	case errors.Is(err, helper.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
}
