package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"tablegames_manager/constants"
	"tablegames_manager/helper"
)

func TestRespondBusinessError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", helper.ErrNotFound, fiber.StatusNotFound, constants.NOT_FOUND},
		{"past date", helper.ErrPastDate, fiber.StatusBadRequest, constants.BOOKING_PAST_DATE},
		{"invalid interval", helper.ErrInvalidInterval, fiber.StatusBadRequest, constants.BOOKING_INVALID_INTERVAL},
		{"capacity", helper.ErrCapacityExceeded, fiber.StatusBadRequest, constants.BOOKING_CAPACITY_EXCEEDED},
		{"duration", helper.ErrDurationExceeded, fiber.StatusBadRequest, constants.RENTAL_DURATION_EXCEEDED},
		{"conflict", helper.ErrConflict, fiber.StatusConflict, constants.BOOKING_CONFLICT},
		{"insufficient stock", helper.ErrInsufficientStock, fiber.StatusConflict, constants.INSUFFICIENT_STOCK},
		{"illegal transition", helper.ErrIllegalTransition, fiber.StatusConflict, constants.ILLEGAL_TRANSITION},
		{"storage failure", errors.New("connection reset"), fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR},
	}
	for _, tt := range tests {
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error {
			return respondBusinessError(c, tt.err)
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if resp.StatusCode != tt.status {
			t.Errorf("%s: status = %d, want %d", tt.name, resp.StatusCode, tt.status)
		}

		var body struct {
			Message string `json:"message"`
		}
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Fatalf("%s: bad response %s", tt.name, raw)
		}
		if body.Message != tt.message {
			t.Errorf("%s: message = %q, want %q", tt.name, body.Message, tt.message)
		}
	}
}
