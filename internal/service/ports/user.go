package ports

import (
	"context"

	"github.com/bookinglab/ticketbooking/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}
