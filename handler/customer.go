package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"tablegames_manager/constants"
	"tablegames_manager/database"
	"tablegames_manager/helper"
	"tablegames_manager/model"
	"tablegames_manager/utils"
)

func GetCurrentCustomer(c *fiber.Ctx) error {
	customer, err := helper.CurrentCustomer(c)
	if err != nil {
		return respondBusinessError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func EditCustomer(c *fiber.Ctx) error {
	input := c.Locals("input").(model.EditCustomerInput)

	customer, err := helper.CurrentCustomer(c)
	if err != nil {
		return respondBusinessError(c, err)
	}

	updates := map[string]interface{}{}
	if input.FirstName != nil {
		updates["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		updates["last_name"] = *input.LastName
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if len(updates) == 0 {
		return utils.SuccessResponse(c, fiber.StatusOK, customer)
	}

	if err := database.DB.Model(customer).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func ChangePasswordCustomer(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CustomerChangePassword)

	customer, err := helper.CurrentCustomer(c)
	if err != nil {
		return respondBusinessError(c, err)
	}

	if !helper.CheckPasswordHash(input.CurrentPassword, customer.Password) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PASSWORD, errors.New("current password does not match"))
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := database.DB.Model(customer).Update("password", hash).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "password changed"})
}

func GetCustomers(c *fiber.Ctx) error {
	var pagination model.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Customer{})

	var totalCount int64
	condition.Count(&totalCount)

	var customers model.Customers
	condition = utils.ApplyPagination(condition, pagination.Limit, pagination.Page)
	if err := condition.Order("created_at desc").Find(&customers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       customers,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetCustomerById(c *fiber.Ctx) error {
	customerId := c.Locals("inputId").(int)

	var customer model.Customer
	if err := database.DB.First(&customer, customerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}
