package helper

import "errors"

// Business-rule rejections. Handlers map these to 4xx responses with
// errors.Is; anything else coming out of the store is a 500.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrPastDate          = errors.New("date is in the past")
	ErrInvalidInterval   = errors.New("end must be after start")
	ErrConflict          = errors.New("table already booked for this slot")
	ErrCapacityExceeded  = errors.New("table capacity exceeded")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrDurationExceeded  = errors.New("rental duration exceeds the maximum")
	ErrIllegalTransition = errors.New("illegal status transition")
)
