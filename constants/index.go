package constants

const (
	MISSING_LOGIN_INPUT  = "MISSING_LOGIN_INPUT"
	INVALID_EMAIL        = "INVALID_EMAIL"
	INVALID_PASSWORD     = "INVALID_PASSWORD"
	ACCOUNT_NOT_ACTIVE   = "ACCOUNT_NOT_ACTIVE"
	EMAIL_ALREADY_EXISTS = "EMAIL_ALREADY_EXISTS"

	ERROR_INPUT          = "ERROR_INPUT"
	ERROR_INTERNAL_ERROR = "ERROR_INTERNAL_ERROR"
	NOT_ADMIN            = "NOT_ADMIN"
	NOT_FOUND            = "NOT_FOUND"

	DATA_INPUT_IS_NOT_NUMBER = "DATA_INPUT_IS_NOT_NUMBER"

	GAME_NOT_FOUND      = "GAME_NOT_FOUND"
	TABLE_NOT_FOUND     = "TABLE_NOT_FOUND"
	BOOKING_NOT_FOUND   = "BOOKING_NOT_FOUND"
	RENTAL_NOT_FOUND    = "RENTAL_NOT_FOUND"
	ORDER_NOT_FOUND     = "ORDER_NOT_FOUND"
	CART_ITEM_NOT_FOUND = "CART_ITEM_NOT_FOUND"
	CART_EMPTY          = "CART_EMPTY"

	BOOKING_PAST_DATE         = "BOOKING_PAST_DATE"
	BOOKING_INVALID_INTERVAL  = "BOOKING_INVALID_INTERVAL"
	BOOKING_CONFLICT          = "BOOKING_CONFLICT"
	BOOKING_CAPACITY_EXCEEDED = "BOOKING_CAPACITY_EXCEEDED"
	RENTAL_DURATION_EXCEEDED  = "RENTAL_DURATION_EXCEEDED"
	INSUFFICIENT_STOCK        = "INSUFFICIENT_STOCK"
	ILLEGAL_TRANSITION        = "ILLEGAL_TRANSITION"

	ROLE_ADMIN    = "ADMIN"
	ROLE_CUSTOMER = "CUSTOMER"
)
