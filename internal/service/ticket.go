package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bookinglab/ticketbooking/internal/domain"
	"github.com/bookinglab/ticketbooking/internal/service/ports"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TicketService struct {
	repo ports.TicketRepo
}

func NewTicketService(repo ports.TicketRepo) *TicketService {
	return &TicketService{repo: repo}
}

func (s *TicketService) Create(ctx context.Context, input domain.CreateTicketInput) (*domain.Ticket, error) {
	if input.EventName == "" {
		return nil, fmt.Errorf("%w: event name is required", domain.ErrValidation)
	}
	if input.Venue == "" {
		return nil, fmt.Errorf("%w: venue is required", domain.ErrValidation)
	}
	if input.EventDate.Before(time.Now()) {
		return nil, fmt.Errorf("%w: event date cannot be in the past", domain.ErrValidation)
	}
	if _, err := domain.ParseTicketCategory(string(input.Category)); err != nil {
		return nil, err
	}
	if input.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must be non-negative", domain.ErrValidation)
	}
	if input.AvailableQuantity < 0 {
		return nil, fmt.Errorf("%w: available quantity must be non-negative", domain.ErrValidation)
	}

	ticket := &domain.Ticket{
		ID:                uuid.New().String(),
		EventName:         input.EventName,
		Venue:             input.Venue,
		EventDate:         input.EventDate,
		Category:          input.Category,
		Price:             input.Price,
		AvailableQuantity: input.AvailableQuantity,
		Active:            true,
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	return ticket, nil
}

func (s *TicketService) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TicketService) List(ctx context.Context, filter domain.TicketFilter) ([]*domain.Ticket, error) {
	return s.repo.List(ctx, filter)
}

func (s *TicketService) Update(ctx context.Context, id string, input domain.UpdateTicketInput) (*domain.Ticket, error) {
	if input.EventName == "" {
		return nil, fmt.Errorf("%w: event name is required", domain.ErrValidation)
	}
	if input.Venue == "" {
		return nil, fmt.Errorf("%w: venue is required", domain.ErrValidation)
	}
	if input.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must be non-negative", domain.ErrValidation)
	}
	if input.AvailableQuantity < 0 {
		return nil, fmt.Errorf("%w: available quantity must be non-negative", domain.ErrValidation)
	}

	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	ticket.EventName = input.EventName
	ticket.Venue = input.Venue
	ticket.EventDate = input.EventDate
	ticket.Price = input.Price
	ticket.AvailableQuantity = input.AvailableQuantity

	if err := s.repo.Update(ctx, ticket); err != nil {
		return nil, fmt.Errorf("update ticket: %w", err)
	}

	return ticket, nil
}

func (s *TicketService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	return nil
}

// IsAvailable reports availability without reserving anything.
func (s *TicketService) IsAvailable(ctx context.Context, id string, quantity int) (bool, error) {
	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("get ticket: %w", err)
	}
	return ticket.HasAvailable(quantity), nil
}

func (s *TicketService) TotalPrice(ctx context.Context, id string, quantity int) (decimal.Decimal, error) {
	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get ticket: %w", err)
	}
	return ticket.TotalPrice(quantity), nil
}

func (s *TicketService) Reserve(ctx context.Context, id string, quantity int) error {
	if err := s.repo.Reserve(ctx, id, quantity); err != nil {
		return fmt.Errorf("reserve %d tickets: %w", quantity, err)
	}
	return nil
}

func (s *TicketService) Release(ctx context.Context, id string, quantity int) error {
	if err := s.repo.Release(ctx, id, quantity); err != nil {
		return fmt.Errorf("release %d tickets: %w", quantity, err)
	}
	return nil
}
