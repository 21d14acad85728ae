package ports

import (
	"context"

	"github.com/bookinglab/ticketbooking/internal/domain"
)

type TicketRepo interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	List(ctx context.Context, filter domain.TicketFilter) ([]*domain.Ticket, error)
	Update(ctx context.Context, ticket *domain.Ticket) error
	Delete(ctx context.Context, id string) error
	// Reserve decrements availability only when the ticket is active and has
	// enough quantity, as a single conditional update.
	Reserve(ctx context.Context, id string, quantity int) error
	// Release puts quantity back without an upper bound.
	Release(ctx context.Context, id string, quantity int) error
}
