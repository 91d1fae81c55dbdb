package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tablegames_manager/constants"
	"tablegames_manager/database"
	"tablegames_manager/helper"
	"tablegames_manager/model"
	"tablegames_manager/utils"
)

// CreateRental validates and prices the rental, then takes the copies out
// of available_for_rental in the same transaction. The game row is locked
// so two concurrent rentals cannot both pass the stock check.
func CreateRental(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateRentalInput)

	customer, err := helper.CurrentCustomer(c)
	if err != nil {
		return respondBusinessError(c, err)
	}

	startDate, err := time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	endDate, err := time.Parse("2006-01-02", input.EndDate)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	tx := database.DB.Begin()
	if tx.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, tx.Error)
	}

	var game model.Game
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&game, input.GameId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.GAME_NOT_FOUND, err)
	}

	if err := helper.CanRent(game, startDate, endDate, input.Quantity); err != nil {
		tx.Rollback()
		return respondBusinessError(c, err)
	}

	totalPrice := helper.RentalPrice(game.RentalPricePerDay, startDate, endDate, input.Quantity)

	rental := model.GameRental{
		CustomerId: customer.ID,
		GameId:     game.ID,
		StartDate:  startDate,
		EndDate:    endDate,
		Quantity:   input.Quantity,
		TotalPrice: totalPrice,
		Status:     model.RentalPending,
	}
	if err := tx.Create(&rental).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := tx.Model(&game).
		Update("available_for_rental", gorm.Expr("available_for_rental - ?", input.Quantity)).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	rental.Game = game
	return utils.SuccessResponse(c, fiber.StatusCreated, rental)
}

func GetMyRentals(c *fiber.Ctx) error {
	customer, err := helper.CurrentCustomer(c)
	if err != nil {
		return respondBusinessError(c, err)
	}

	var rentals []model.GameRental
	if err := database.DB.Preload("Game").
		Where("customer_id = ?", customer.ID).
		Order("created_at desc").
		Find(&rentals).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rentals)
}

func GetRentals(c *fiber.Ctx) error {
	filterInput := new(model.FilterRentalInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.GameRental{}).Preload("Game")

	if filterInput.GameId > 0 {
		condition = condition.Where("game_id = ?", filterInput.GameId)
	}
	if filterInput.Status != "" {
		condition = condition.Where("status = ?", filterInput.Status)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var rentals []model.GameRental
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Order("created_at desc").Find(&rentals).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       rentals,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func updateRentalStatus(c *fiber.Ctx, rentalId int, ownerId *uint, next model.RentalStatus) error {
	tx := database.DB.Begin()
	if tx.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, tx.Error)
	}

	var rental model.GameRental
	query := tx.Clauses(clause.Locking{Strength: "UPDATE"})
	if ownerId != nil {
		query = query.Where("customer_id = ?", *ownerId)
	}
	if err := query.First(&rental, rentalId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RENTAL_NOT_FOUND, err)
	}

	if !rental.Status.CanTransitionTo(next) {
		tx.Rollback()
		return respondBusinessError(c, helper.ErrIllegalTransition)
	}

	// Completion and cancellation put the copies back on the rental shelf.
	if rental.Status.HoldsStock() && !next.HoldsStock() {
		if err := tx.Model(&model.Game{}).
			Where("id = ?", rental.GameId).
			Update("available_for_rental", gorm.Expr("available_for_rental + ?", rental.Quantity)).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	if err := tx.Model(&rental).Update("status", next).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, rental)
}

// UpdateRentalStatus is the admin transition endpoint.
func UpdateRentalStatus(c *fiber.Ctx) error {
	rentalId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.RentalStatusInput)
	return updateRentalStatus(c, rentalId, nil, input.Status)
}

// CancelRental lets a customer cancel their own pending/active rental.
func CancelRental(c *fiber.Ctx) error {
	rentalId := c.Locals("inputId").(int)

	customer, err := helper.CurrentCustomer(c)
	if err != nil {
		return respondBusinessError(c, err)
	}
	return updateRentalStatus(c, rentalId, &customer.ID, model.RentalCancelled)
}
