package ports

import (
	"context"

	"github.com/bookinglab/ticketbooking/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, user *domain.User, ticket *domain.Ticket, booking *domain.Booking)
	NotifyBookingConfirmed(ctx context.Context, user *domain.User, ticket *domain.Ticket, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, user *domain.User, ticket *domain.Ticket, booking *domain.Booking)
	NotifyBookingExpired(ctx context.Context, user *domain.User, ticket *domain.Ticket, booking *domain.Booking)
}
