package ports

import (
	"context"
	"time"

	"github.com/bookinglab/ticketbooking/internal/domain"
)

type BookingRepo interface {
	// CreateWithReservation locks the ticket row, re-checks availability,
	// decrements it and inserts the booking in one transaction.
	CreateWithReservation(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error)
	CountByUserAndStatus(ctx context.Context, userID string, status domain.BookingStatus) (int, error)
	// Confirm persists the confirmation only while the booking is still
	// pending. A booking cancelled or expired since it was read fails with
	// the matching sentinel instead of being overwritten.
	Confirm(ctx context.Context, b *domain.Booking) error
	// CancelWithRelease persists the cancellation and returns the reserved
	// quantity to the ticket in one transaction.
	CancelWithRelease(ctx context.Context, b *domain.Booking) error
	ListExpiredPending(ctx context.Context, olderThan time.Time) ([]*domain.Booking, error)
	// Expire flips a still-pending booking to expired and releases its
	// quantity in one transaction. Returns false when the booking was
	// already processed by another run.
	Expire(ctx context.Context, bookingID, ticketID string, quantity int) (bool, error)
}
