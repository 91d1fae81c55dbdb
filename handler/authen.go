package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"tablegames_manager/constants"
	"tablegames_manager/database"
	"tablegames_manager/helper"
	"tablegames_manager/model"
	"tablegames_manager/utils"
)

func setTokenCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})
}

func issueTokens(c *fiber.Ctx, customer *model.Customer) error {
	tokenClaim := model.TokenClaim{
		CustomerId: customer.ID,
		Email:      customer.Email,
		Role:       customer.Role,
	}
	accessToken, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setTokenCookies(c, accessToken, refreshToken)

	return c.JSON(fiber.Map{
		"message": "login success",
		"customer": fiber.Map{
			"id":       customer.ID,
			"email":    customer.Email,
			"username": customer.UserName,
			"role":     customer.Role,
		},
	})
}

func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	loginInput := new(LoginInput)

	if err := c.BodyParser(loginInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}

	if loginInput.Email == "" || loginInput.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("email and password are required"))
	}

	customer, err := helper.GetCustomerByEmail(loginInput.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_EMAIL, errors.New("email not registered"))
	}

	if !helper.CheckPasswordHash(loginInput.Password, customer.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("password does not match email"))
	}

	if !customer.IsActive {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("account disabled"))
	}

	return issueTokens(c, customer)
}

func RegisterCustomer(c *fiber.Ctx) error {
	input := c.Locals("input").(model.RegisterCustomerInput)

	existing, err := helper.GetCustomerByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.EMAIL_ALREADY_EXISTS, errors.New("email already registered"))
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	customer := model.Customer{
		Email:     input.Email,
		Password:  hash,
		UserName:  input.UserName,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Role:      constants.ROLE_CUSTOMER,
		IsActive:  true,
	}
	if err := database.DB.Create(&customer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// registration logs the customer straight in
	return issueTokens(c, &customer)
}

func RefreshToken(c *fiber.Ctx) error {
	token := c.Cookies("refresh_token")
	if token == "" {
		type RefreshRequest struct {
			RefreshToken string `json:"refreshToken"`
		}
		req := new(RefreshRequest)
		if err := c.BodyParser(req); err == nil {
			token = req.RefreshToken
		}
	}
	if token == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing refresh token"))
	}

	parsed, err := helper.ParseToken(token)
	if err != nil || !parsed.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", errors.New("bad claims"))
	}
	customerId, ok := claims["customerId"].(float64)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", errors.New("bad claims"))
	}

	var customer model.Customer
	if err := database.DB.First(&customer, "id = ? AND is_active = true", uint(customerId)).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ACCOUNT_NOT_ACTIVE, err)
	}

	return issueTokens(c, &customer)
}

func Logout(c *fiber.Ctx) error {
	c.ClearCookie("access_token", "refresh_token")
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "logged out"})
}
