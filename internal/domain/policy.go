package domain

import "github.com/shopspring/decimal"

// BookingPolicy holds the business limits the booking service enforces.
// Built once from configuration and injected, never read ambiently.
type BookingPolicy struct {
	MaxTicketsPerUser  int
	CancellationFee    decimal.Decimal
	AdvanceBookingDays int
}
