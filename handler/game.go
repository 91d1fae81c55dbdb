package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"tablegames_manager/constants"
	"tablegames_manager/database"
	"tablegames_manager/model"
	"tablegames_manager/utils"
)

func GetGames(c *fiber.Ctx) error {
	filterInput := new(model.FilterGameInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Game{})

	if filterInput.Category != "" {
		condition = condition.Where("category = ?", filterInput.Category)
	}
	if filterInput.SearchKey != "" {
		condition = condition.Where("name ILIKE ?", "%"+filterInput.SearchKey+"%")
	}
	if filterInput.InStock != nil && *filterInput.InStock {
		condition = condition.Where("in_stock > 0")
	}

	var totalCount int64
	condition.Count(&totalCount)

	var games model.Games
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Order("name asc").Find(&games).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       games,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetGameById(c *fiber.Ctx) error {
	gameId := c.Locals("inputId").(int)

	var game model.Game
	if err := database.DB.First(&game, gameId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.GAME_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, game)
}

func CreateGame(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateGameInput)

	price, _ := decimal.NewFromString(input.Price)
	rentalPrice, _ := decimal.NewFromString(input.RentalPricePerDay)

	game := model.Game{
		Name:               input.Name,
		Description:        input.Description,
		Category:           input.Category,
		Price:              price,
		RentalPricePerDay:  rentalPrice,
		MinPlayers:         input.MinPlayers,
		MaxPlayers:         input.MaxPlayers,
		PlayTimeMinutes:    input.PlayTimeMinutes,
		Difficulty:         input.Difficulty,
		InStock:            input.InStock,
		AvailableForRental: input.AvailableForRental,
		ImageUrl:           input.ImageUrl,
	}
	if err := database.DB.Create(&game).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, game)
}

func EditGame(c *fiber.Ctx) error {
	gameId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.EditGameInput)

	var game model.Game
	if err := database.DB.First(&game, gameId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.GAME_NOT_FOUND, err)
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.Price != nil {
		price, _ := decimal.NewFromString(*input.Price)
		updates["price"] = price
	}
	if input.RentalPricePerDay != nil {
		rentalPrice, _ := decimal.NewFromString(*input.RentalPricePerDay)
		updates["rental_price_per_day"] = rentalPrice
	}
	if input.MinPlayers != nil {
		updates["min_players"] = *input.MinPlayers
	}
	if input.MaxPlayers != nil {
		updates["max_players"] = *input.MaxPlayers
	}
	if input.PlayTimeMinutes != nil {
		updates["play_time_minutes"] = *input.PlayTimeMinutes
	}
	if input.Difficulty != nil {
		updates["difficulty"] = *input.Difficulty
	}
	if input.InStock != nil {
		updates["in_stock"] = *input.InStock
	}
	if input.AvailableForRental != nil {
		updates["available_for_rental"] = *input.AvailableForRental
	}
	if input.ImageUrl != nil {
		updates["image_url"] = *input.ImageUrl
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&game).Updates(updates).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, game)
}
