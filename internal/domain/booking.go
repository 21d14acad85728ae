package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusExpired   BookingStatus = "expired"
)

type Booking struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"user_id"`
	TicketID           string          `json:"ticket_id"`
	Quantity           int             `json:"quantity"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	Status             BookingStatus   `json:"status"`
	CreatedAt          time.Time       `json:"created_at"`
	ConfirmedAt        *time.Time      `json:"confirmed_at,omitempty"`
	CancelledAt        *time.Time      `json:"cancelled_at,omitempty"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
}

// Confirm moves a pending booking to confirmed.
func (b *Booking) Confirm() error {
	if b.Status != BookingStatusPending {
		return fmt.Errorf("%w: only pending bookings can be confirmed", ErrNotPending)
	}
	b.Status = BookingStatusConfirmed
	now := time.Now().UTC()
	b.ConfirmedAt = &now
	return nil
}

// Cancel rejects only an already cancelled booking. The booking service uses
// the stricter IsCancellable check before calling it.
func (b *Booking) Cancel(reason string) error {
	if b.Status == BookingStatusCancelled {
		return ErrAlreadyCancelled
	}
	b.Status = BookingStatusCancelled
	now := time.Now().UTC()
	b.CancelledAt = &now
	b.CancellationReason = reason
	return nil
}

func (b *Booking) IsCancellable() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// Refund returns the amount paid back after deducting the cancellation fee,
// never below zero. A booking that is no longer cancellable refunds nothing.
func (b *Booking) Refund(cancellationFee decimal.Decimal) decimal.Decimal {
	if !b.IsCancellable() {
		return decimal.Zero
	}
	refund := b.TotalAmount.Sub(cancellationFee)
	if refund.IsNegative() {
		return decimal.Zero
	}
	return refund
}
