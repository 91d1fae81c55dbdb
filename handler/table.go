package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"tablegames_manager/constants"
	"tablegames_manager/database"
	"tablegames_manager/model"
	"tablegames_manager/utils"
)

func GetTables(c *fiber.Ctx) error {
	db := database.DB
	condition := db.Model(&model.GameTable{})

	// clients only see bookable tables
	if c.Query("all") != "true" {
		condition = condition.Where("is_active = true")
	}

	var tables []model.GameTable
	if err := condition.Order("capacity asc").Find(&tables).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, tables)
}

func GetTableById(c *fiber.Ctx) error {
	tableId := c.Locals("inputId").(int)

	var table model.GameTable
	if err := database.DB.First(&table, tableId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TABLE_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, table)
}

func CreateTable(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateTableInput)

	price, _ := decimal.NewFromString(input.PricePerHourPerPerson)

	table := model.GameTable{
		Name:                  input.Name,
		TableType:             input.TableType,
		Capacity:              input.Capacity,
		PricePerHourPerPerson: price,
		Description:           input.Description,
		IsActive:              true,
	}
	if err := database.DB.Create(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, table)
}

// DeleteTables deactivates tables in bulk; past bookings keep their history.
func DeleteTables(c *fiber.Ctx) error {
	arrayId := c.Locals("deleteIds").(model.ArrayId)

	if err := database.DB.Model(&model.GameTable{}).
		Where("id IN ?", arrayId.IDs).
		Update("is_active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, arrayId.IDs)
}

func EditTable(c *fiber.Ctx) error {
	tableId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.EditTableInput)

	var table model.GameTable
	if err := database.DB.First(&table, tableId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TABLE_NOT_FOUND, err)
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.TableType != nil {
		updates["table_type"] = *input.TableType
	}
	if input.Capacity != nil {
		updates["capacity"] = *input.Capacity
	}
	if input.PricePerHourPerPerson != nil {
		price, _ := decimal.NewFromString(*input.PricePerHourPerPerson)
		updates["price_per_hour_per_person"] = price
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&table).Updates(updates).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, table)
}
