package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"

	"tablegames_manager/constants"
	"tablegames_manager/database"
	"tablegames_manager/helper"
	"tablegames_manager/model"
	"tablegames_manager/utils"
)

// CreateBooking checks the slot and creates the booking inside one
// transaction. The table row is locked first so that two concurrent
// requests for the same table run the overlap check one after another.
func CreateBooking(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateBookingInput)

	customer, err := helper.CurrentCustomer(c)
	if err != nil {
		return respondBusinessError(c, err)
	}

	bookingDate, err := time.Parse("2006-01-02", input.BookingDate)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	tx := database.DB.Begin()
	if tx.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, tx.Error)
	}

	var table model.GameTable
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&table, "id = ? AND is_active = true", input.TableId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TABLE_NOT_FOUND, err)
	}

	var existing []model.TableBooking
	if err := tx.Where("table_id = ? AND booking_date = ? AND status IN ?",
		table.ID, bookingDate,
		[]model.BookingStatus{model.BookingPending, model.BookingConfirmed}).
		Find(&existing).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := helper.CanBook(table, bookingDate, input.StartTime, input.EndTime, input.NumberOfPeople, existing); err != nil {
		tx.Rollback()
		return respondBusinessError(c, err)
	}

	totalPrice, err := helper.BookingPrice(table.PricePerHourPerPerson, input.StartTime, input.EndTime, input.NumberOfPeople)
	if err != nil {
		tx.Rollback()
		return respondBusinessError(c, err)
	}

	booking := model.TableBooking{
		CustomerId:     customer.ID,
		TableId:        table.ID,
		BookingDate:    bookingDate,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		NumberOfPeople: input.NumberOfPeople,
		TotalPrice:     totalPrice,
		Status:         model.BookingPending,
	}
	if err := tx.Create(&booking).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	booking.Table = table
	return utils.SuccessResponse(c, fiber.StatusCreated, booking)
}

func GetMyBookings(c *fiber.Ctx) error {
	customer, err := helper.CurrentCustomer(c)
	if err != nil {
		return respondBusinessError(c, err)
	}

	var bookings []model.TableBooking
	if err := database.DB.Preload("Table").
		Where("customer_id = ?", customer.ID).
		Order("created_at desc").
		Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, bookings)
}

func GetBookings(c *fiber.Ctx) error {
	filterInput := new(model.FilterBookingInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.TableBooking{}).Preload("Table")

	if filterInput.TableId > 0 {
		condition = condition.Where("table_id = ?", filterInput.TableId)
	}
	if filterInput.Date != "" {
		condition = condition.Where("booking_date = ?", filterInput.Date)
	}
	if filterInput.Status != "" {
		condition = condition.Where("status = ?", filterInput.Status)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var bookings []model.TableBooking
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Order("booking_date desc, start_time asc").Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       bookings,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func updateBookingStatus(c *fiber.Ctx, bookingId int, ownerId *uint, next model.BookingStatus) error {
	tx := database.DB.Begin()
	if tx.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, tx.Error)
	}

	var booking model.TableBooking
	query := tx.Clauses(clause.Locking{Strength: "UPDATE"})
	if ownerId != nil {
		query = query.Where("customer_id = ?", *ownerId)
	}
	if err := query.First(&booking, bookingId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}

	if !booking.Status.CanTransitionTo(next) {
		tx.Rollback()
		return respondBusinessError(c, helper.ErrIllegalTransition)
	}

	if err := tx.Model(&booking).Update("status", next).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

// UpdateBookingStatus is the admin transition endpoint.
func UpdateBookingStatus(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.BookingStatusInput)
	return updateBookingStatus(c, bookingId, nil, input.Status)
}

// CancelBooking lets a customer cancel their own pending/confirmed booking.
func CancelBooking(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(int)

	customer, err := helper.CurrentCustomer(c)
	if err != nil {
		return respondBusinessError(c, err)
	}
	return updateBookingStatus(c, bookingId, &customer.ID, model.BookingCancelled)
}
