package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bookinglab/ticketbooking/internal/domain"
	"github.com/bookinglab/ticketbooking/internal/service/ports/mocks"
)

func validTicketInput() domain.CreateTicketInput {
	return domain.CreateTicketInput{
		EventName:         "Concert",
		Venue:             "Arena",
		EventDate:         time.Now().Add(72 * time.Hour),
		Category:          domain.TicketCategoryBusiness,
		Price:             money("150.00"),
		AvailableQuantity: 50,
	}
}

func TestTicketService_Create_Success(t *testing.T) {
	repo := mocks.NewMockTicketRepo(t)
	svc := NewTicketService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	ticket, err := svc.Create(context.Background(), validTicketInput())

	require.NoError(t, err)
	assert.NotEmpty(t, ticket.ID)
	assert.Equal(t, "Concert", ticket.EventName)
	assert.True(t, ticket.Active)
	assert.Equal(t, 50, ticket.AvailableQuantity)
}

func TestTicketService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CreateTicketInput)
	}{
		{"missing event name", func(in *domain.CreateTicketInput) { in.EventName = "" }},
		{"missing venue", func(in *domain.CreateTicketInput) { in.Venue = "" }},
		{"past event date", func(in *domain.CreateTicketInput) { in.EventDate = time.Now().Add(-time.Hour) }},
		{"unknown category", func(in *domain.CreateTicketInput) { in.Category = "premium" }},
		{"negative price", func(in *domain.CreateTicketInput) { in.Price = money("-1.00") }},
		{"negative quantity", func(in *domain.CreateTicketInput) { in.AvailableQuantity = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockTicketRepo(t)
			svc := NewTicketService(repo)

			input := validTicketInput()
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestTicketService_Update_Success(t *testing.T) {
	repo := mocks.NewMockTicketRepo(t)
	svc := NewTicketService(repo)

	existing := &domain.Ticket{
		ID:                "t1",
		EventName:         "Concert",
		Venue:             "Arena",
		Price:             money("100.00"),
		AvailableQuantity: 10,
		Active:            true,
	}

	repo.EXPECT().GetByID(mock.Anything, "t1").Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, existing).Return(nil)

	ticket, err := svc.Update(context.Background(), "t1", domain.UpdateTicketInput{
		EventName:         "Concert (rescheduled)",
		Venue:             "Stadium",
		EventDate:         time.Now().Add(96 * time.Hour),
		Price:             money("120.00"),
		AvailableQuantity: 8,
	})

	require.NoError(t, err)
	assert.Equal(t, "Concert (rescheduled)", ticket.EventName)
	assert.Equal(t, "Stadium", ticket.Venue)
	assert.True(t, ticket.Price.Equal(money("120.00")))
}

func TestTicketService_IsAvailable(t *testing.T) {
	repo := mocks.NewMockTicketRepo(t)
	svc := NewTicketService(repo)

	ticket := &domain.Ticket{ID: "t1", Active: true, AvailableQuantity: 3}
	repo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)

	ok, err := svc.IsAvailable(context.Background(), "t1", 3)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTicketService_TotalPrice(t *testing.T) {
	repo := mocks.NewMockTicketRepo(t)
	svc := NewTicketService(repo)

	ticket := &domain.Ticket{ID: "t1", Price: money("99.99")}
	repo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)

	total, err := svc.TotalPrice(context.Background(), "t1", 2)

	require.NoError(t, err)
	assert.True(t, total.Equal(money("199.98")), "got %s", total)
}

func TestTicketService_Reserve_Unavailable(t *testing.T) {
	repo := mocks.NewMockTicketRepo(t)
	svc := NewTicketService(repo)

	repo.EXPECT().Reserve(mock.Anything, "t1", 5).Return(domain.ErrTicketUnavailable)

	err := svc.Reserve(context.Background(), "t1", 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTicketUnavailable)
}

func TestTicketService_Release(t *testing.T) {
	repo := mocks.NewMockTicketRepo(t)
	svc := NewTicketService(repo)

	repo.EXPECT().Release(mock.Anything, "t1", 5).Return(nil)

	require.NoError(t, svc.Release(context.Background(), "t1", 5))
}

func TestTicketService_List(t *testing.T) {
	repo := mocks.NewMockTicketRepo(t)
	svc := NewTicketService(repo)

	filter := domain.TicketFilter{Venue: "Arena"}
	tickets := []*domain.Ticket{{ID: "t1", Venue: "Arena"}}
	repo.EXPECT().List(mock.Anything, filter).Return(tickets, nil)

	result, err := svc.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
