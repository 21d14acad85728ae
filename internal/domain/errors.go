package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrInvalidBooking    = errors.New("invalid booking operation")
	ErrTicketUnavailable = errors.New("not enough tickets available")
	ErrNotPending        = errors.New("booking is not in pending status")
	ErrAlreadyCancelled  = errors.New("booking is already cancelled")
)

var (
	ErrEmailExists = errors.New("user with this email already exists")
)

var (
	ErrValidation = errors.New("validation error")
)
