package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/bookinglab/ticketbooking/internal/domain"
	"github.com/bookinglab/ticketbooking/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func money(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testPolicy() domain.BookingPolicy {
	return domain.BookingPolicy{
		MaxTicketsPerUser:  10,
		CancellationFee:    money("50.00"),
		AdvanceBookingDays: 30,
	}
}

type bookingMocks struct {
	bookingRepo *mocks.MockBookingRepo
	ticketRepo  *mocks.MockTicketRepo
	userRepo    *mocks.MockUserRepo
	notifier    *mocks.MockBookingNotifier
}

func newBookingService(t *testing.T) (*BookingService, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		bookingRepo: mocks.NewMockBookingRepo(t),
		ticketRepo:  mocks.NewMockTicketRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		notifier:    mocks.NewMockBookingNotifier(t),
	}
	svc := NewBookingService(m.bookingRepo, m.ticketRepo, m.userRepo, m.notifier, testPolicy(), newTestLogger(t))
	return svc, m
}

func activeUser() *domain.User {
	return &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Active: true}
}

func activeTicket() *domain.Ticket {
	return &domain.Ticket{
		ID:                "t1",
		EventName:         "Concert",
		Venue:             "Arena",
		EventDate:         time.Now().Add(48 * time.Hour),
		Category:          domain.TicketCategoryEconomy,
		Price:             money("100.00"),
		AvailableQuantity: 20,
		Active:            true,
	}
}

// notifySignal wires a notifier expectation to a channel so tests can wait
// for the notification goroutine instead of sleeping.
func notifySignal(n int) (chan struct{}, func(context.Context, *domain.User, *domain.Ticket, *domain.Booking)) {
	done := make(chan struct{}, n)
	return done, func(context.Context, *domain.User, *domain.Ticket, *domain.Booking) {
		done <- struct{}{}
	}
}

func waitNotified(t *testing.T, done <-chan struct{}, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("notification was not sent")
		}
	}
}

func TestBookingService_CreateBooking_Success(t *testing.T) {
	svc, m := newBookingService(t)

	user := activeUser()
	ticket := activeTicket()

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)
	m.bookingRepo.EXPECT().CountByUserAndStatus(mock.Anything, "u1", domain.BookingStatusConfirmed).Return(2, nil)
	m.bookingRepo.EXPECT().CreateWithReservation(mock.Anything, mock.Anything).Return(nil)

	done, signal := notifySignal(1)
	m.notifier.EXPECT().NotifyBookingCreated(mock.Anything, user, ticket, mock.Anything).Run(signal).Return()

	booking, err := svc.CreateBooking(context.Background(), "u1", "t1", 5)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "u1", booking.UserID)
	assert.Equal(t, "t1", booking.TicketID)
	assert.Equal(t, 5, booking.Quantity)
	assert.True(t, booking.TotalAmount.Equal(money("500.00")), "got %s", booking.TotalAmount)
	assert.NotEmpty(t, booking.ID)

	waitNotified(t, done, 1)
}

func TestBookingService_CreateBooking_InvalidQuantity(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.CreateBooking(context.Background(), "u1", "t1", 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_CreateBooking_UserNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.CreateBooking(context.Background(), "missing", "t1", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestBookingService_CreateBooking_InactiveUser(t *testing.T) {
	svc, m := newBookingService(t)

	user := activeUser()
	user.Active = false
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	_, err := svc.CreateBooking(context.Background(), "u1", "t1", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidBooking)
}

func TestBookingService_CreateBooking_TicketNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(activeUser(), nil)
	m.ticketRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrTicketNotFound)

	_, err := svc.CreateBooking(context.Background(), "u1", "missing", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}

func TestBookingService_CreateBooking_InactiveTicket(t *testing.T) {
	svc, m := newBookingService(t)

	ticket := activeTicket()
	ticket.Active = false

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(activeUser(), nil)
	m.ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)

	_, err := svc.CreateBooking(context.Background(), "u1", "t1", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidBooking)
}

func TestBookingService_CreateBooking_TooFarInAdvance(t *testing.T) {
	svc, m := newBookingService(t)

	ticket := activeTicket()
	ticket.EventDate = time.Now().AddDate(0, 0, 60)

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(activeUser(), nil)
	m.ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)

	_, err := svc.CreateBooking(context.Background(), "u1", "t1", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidBooking)
	assert.Contains(t, err.Error(), "30 days in advance")
}

func TestBookingService_CreateBooking_QuotaExceeded(t *testing.T) {
	svc, m := newBookingService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(activeUser(), nil)
	m.ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(activeTicket(), nil)
	m.bookingRepo.EXPECT().CountByUserAndStatus(mock.Anything, "u1", domain.BookingStatusConfirmed).Return(8, nil)

	_, err := svc.CreateBooking(context.Background(), "u1", "t1", 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidBooking)
	assert.Contains(t, err.Error(), "cannot book more than 10 tickets")
}

func TestBookingService_CreateBooking_QuotaCountsOnlyConfirmed(t *testing.T) {
	svc, m := newBookingService(t)

	user := activeUser()
	ticket := activeTicket()

	// 9 confirmed + 1 requested is exactly at the limit; pending bookings
	// held by the user never enter the count.
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)
	m.bookingRepo.EXPECT().CountByUserAndStatus(mock.Anything, "u1", domain.BookingStatusConfirmed).Return(9, nil)
	m.bookingRepo.EXPECT().CreateWithReservation(mock.Anything, mock.Anything).Return(nil)

	done, signal := notifySignal(1)
	m.notifier.EXPECT().NotifyBookingCreated(mock.Anything, user, ticket, mock.Anything).Run(signal).Return()

	booking, err := svc.CreateBooking(context.Background(), "u1", "t1", 1)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)

	waitNotified(t, done, 1)
}

func TestBookingService_CreateBooking_NotEnoughAvailable(t *testing.T) {
	svc, m := newBookingService(t)

	ticket := activeTicket()
	ticket.AvailableQuantity = 2

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(activeUser(), nil)
	m.ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)
	m.bookingRepo.EXPECT().CountByUserAndStatus(mock.Anything, "u1", domain.BookingStatusConfirmed).Return(0, nil)

	_, err := svc.CreateBooking(context.Background(), "u1", "t1", 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidBooking)
}

func TestBookingService_CreateBooking_LostRace(t *testing.T) {
	svc, m := newBookingService(t)

	// The pre-flight check passed but another booking drained the ticket
	// before the reservation transaction ran.
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(activeUser(), nil)
	m.ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(activeTicket(), nil)
	m.bookingRepo.EXPECT().CountByUserAndStatus(mock.Anything, "u1", domain.BookingStatusConfirmed).Return(0, nil)
	m.bookingRepo.EXPECT().CreateWithReservation(mock.Anything, mock.Anything).Return(domain.ErrTicketUnavailable)

	_, err := svc.CreateBooking(context.Background(), "u1", "t1", 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTicketUnavailable)
}

func TestBookingService_ConfirmBooking_Success(t *testing.T) {
	svc, m := newBookingService(t)

	user := activeUser()
	ticket := activeTicket()
	booking := &domain.Booking{
		ID:       "b1",
		UserID:   "u1",
		TicketID: "t1",
		Status:   domain.BookingStatusPending,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.bookingRepo.EXPECT().Confirm(mock.Anything, booking).Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)

	done, signal := notifySignal(1)
	m.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, user, ticket, booking).Run(signal).Return()

	result, err := svc.ConfirmBooking(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, result.Status)
	assert.NotNil(t, result.ConfirmedAt)

	waitNotified(t, done, 1)
}

func TestBookingService_ConfirmBooking_NotPending(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", Status: domain.BookingStatusExpired}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := svc.ConfirmBooking(context.Background(), "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotPending)
}

func TestBookingService_ConfirmBooking_CancelledMeanwhile(t *testing.T) {
	svc, m := newBookingService(t)

	// The booking was still pending when this caller read it, but a
	// concurrent cancel won the write and released the inventory. The
	// guarded confirm must lose instead of resurrecting the booking.
	stale := &domain.Booking{
		ID:       "b1",
		UserID:   "u1",
		TicketID: "t1",
		Quantity: 2,
		Status:   domain.BookingStatusPending,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(stale, nil)
	m.bookingRepo.EXPECT().Confirm(mock.Anything, stale).Return(domain.ErrAlreadyCancelled)

	_, err := svc.ConfirmBooking(context.Background(), "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
	m.notifier.AssertNotCalled(t, "NotifyBookingConfirmed", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_ConfirmBooking_NotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.ConfirmBooking(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_CancelBooking_Success(t *testing.T) {
	svc, m := newBookingService(t)

	user := activeUser()
	ticket := activeTicket()
	booking := &domain.Booking{
		ID:       "b1",
		UserID:   "u1",
		TicketID: "t1",
		Quantity: 2,
		Status:   domain.BookingStatusConfirmed,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.bookingRepo.EXPECT().CancelWithRelease(mock.Anything, booking).Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)

	done, signal := notifySignal(1)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, user, ticket, booking).Run(signal).Return()

	result, err := svc.CancelBooking(context.Background(), "b1", "schedule conflict")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, result.Status)
	assert.Equal(t, "schedule conflict", result.CancellationReason)
	assert.NotNil(t, result.CancelledAt)

	waitNotified(t, done, 1)
}

func TestBookingService_CancelBooking_Expired(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", Status: domain.BookingStatusExpired}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := svc.CancelBooking(context.Background(), "b1", "too late")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidBooking)
	assert.Equal(t, domain.BookingStatusExpired, booking.Status)
}

func TestBookingService_CancelBooking_NotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.CancelBooking(context.Background(), "missing", "reason")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_CalculateRefund_Confirmed(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{
		ID:          "b1",
		Status:      domain.BookingStatusConfirmed,
		TotalAmount: money("200.00"),
	}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	refund, err := svc.CalculateRefund(context.Background(), "b1")

	require.NoError(t, err)
	assert.True(t, refund.Equal(money("150.00")), "got %s", refund)
}

func TestBookingService_CalculateRefund_Cancelled(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{
		ID:          "b1",
		Status:      domain.BookingStatusCancelled,
		TotalAmount: money("200.00"),
	}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	refund, err := svc.CalculateRefund(context.Background(), "b1")

	require.NoError(t, err)
	assert.True(t, refund.IsZero(), "got %s", refund)
}

func TestBookingService_ExpirePending_Success(t *testing.T) {
	svc, m := newBookingService(t)

	user := activeUser()
	ticket := activeTicket()
	candidates := []*domain.Booking{
		{ID: "b1", UserID: "u1", TicketID: "t1", Quantity: 2, Status: domain.BookingStatusPending},
		{ID: "b2", UserID: "u1", TicketID: "t1", Quantity: 1, Status: domain.BookingStatusPending},
	}

	maxAge := 24 * time.Hour
	m.bookingRepo.EXPECT().ListExpiredPending(mock.Anything, mock.MatchedBy(func(cutoff time.Time) bool {
		return time.Since(cutoff) >= maxAge && time.Since(cutoff) < maxAge+time.Minute
	})).Return(candidates, nil)
	m.bookingRepo.EXPECT().Expire(mock.Anything, "b1", "t1", 2).Return(true, nil)
	m.bookingRepo.EXPECT().Expire(mock.Anything, "b2", "t1", 1).Return(true, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)

	done, signal := notifySignal(2)
	m.notifier.EXPECT().NotifyBookingExpired(mock.Anything, user, ticket, mock.Anything).Run(signal).Return()

	expired, err := svc.ExpirePending(context.Background(), maxAge)

	require.NoError(t, err)
	require.Len(t, expired, 2)
	assert.Equal(t, domain.BookingStatusExpired, expired[0].Status)
	assert.Equal(t, domain.BookingStatusExpired, expired[1].Status)

	waitNotified(t, done, 2)
}

func TestBookingService_ExpirePending_SkipsAlreadyProcessed(t *testing.T) {
	svc, m := newBookingService(t)

	candidates := []*domain.Booking{
		{ID: "b1", UserID: "u1", TicketID: "t1", Quantity: 2, Status: domain.BookingStatusPending},
	}

	m.bookingRepo.EXPECT().ListExpiredPending(mock.Anything, mock.Anything).Return(candidates, nil)
	m.bookingRepo.EXPECT().Expire(mock.Anything, "b1", "t1", 2).Return(false, nil)

	expired, err := svc.ExpirePending(context.Background(), time.Hour)

	require.NoError(t, err)
	assert.Empty(t, expired)
}

func TestBookingService_ExpirePending_ContinuesAfterError(t *testing.T) {
	svc, m := newBookingService(t)

	user := activeUser()
	ticket := activeTicket()
	candidates := []*domain.Booking{
		{ID: "b1", UserID: "u1", TicketID: "t1", Quantity: 2, Status: domain.BookingStatusPending},
		{ID: "b2", UserID: "u1", TicketID: "t1", Quantity: 1, Status: domain.BookingStatusPending},
	}

	m.bookingRepo.EXPECT().ListExpiredPending(mock.Anything, mock.Anything).Return(candidates, nil)
	m.bookingRepo.EXPECT().Expire(mock.Anything, "b1", "t1", 2).Return(false, errors.New("db error"))
	m.bookingRepo.EXPECT().Expire(mock.Anything, "b2", "t1", 1).Return(true, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)

	done, signal := notifySignal(1)
	m.notifier.EXPECT().NotifyBookingExpired(mock.Anything, user, ticket, mock.Anything).Run(signal).Return()

	expired, err := svc.ExpirePending(context.Background(), time.Hour)

	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, "b2", expired[0].ID)

	waitNotified(t, done, 1)
}

func TestBookingService_ExpirePending_ListError(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().ListExpiredPending(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.ExpirePending(context.Background(), time.Hour)

	require.Error(t, err)
}

// invalidatingTicketRepo records the invalidations a caching repository
// would receive from the booking flows.
type invalidatingTicketRepo struct {
	*mocks.MockTicketRepo
	invalidated []string
}

func (r *invalidatingTicketRepo) InvalidateTicket(_ context.Context, id string) {
	r.invalidated = append(r.invalidated, id)
}

func newCachedBookingService(t *testing.T) (*BookingService, *invalidatingTicketRepo, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		bookingRepo: mocks.NewMockBookingRepo(t),
		ticketRepo:  mocks.NewMockTicketRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		notifier:    mocks.NewMockBookingNotifier(t),
	}
	cached := &invalidatingTicketRepo{MockTicketRepo: m.ticketRepo}
	svc := NewBookingService(m.bookingRepo, cached, m.userRepo, m.notifier, testPolicy(), newTestLogger(t))
	return svc, cached, m
}

func TestBookingService_CreateBooking_DropsCachedTicket(t *testing.T) {
	svc, cached, m := newCachedBookingService(t)

	user := activeUser()
	ticket := activeTicket()

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)
	m.bookingRepo.EXPECT().CountByUserAndStatus(mock.Anything, "u1", domain.BookingStatusConfirmed).Return(0, nil)
	m.bookingRepo.EXPECT().CreateWithReservation(mock.Anything, mock.Anything).Return(nil)

	done, signal := notifySignal(1)
	m.notifier.EXPECT().NotifyBookingCreated(mock.Anything, user, ticket, mock.Anything).Run(signal).Return()

	_, err := svc.CreateBooking(context.Background(), "u1", "t1", 2)

	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, cached.invalidated)

	waitNotified(t, done, 1)
}

func TestBookingService_CancelBooking_DropsCachedTicket(t *testing.T) {
	svc, cached, m := newCachedBookingService(t)

	user := activeUser()
	ticket := activeTicket()
	booking := &domain.Booking{
		ID:       "b1",
		UserID:   "u1",
		TicketID: "t1",
		Quantity: 2,
		Status:   domain.BookingStatusPending,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.bookingRepo.EXPECT().CancelWithRelease(mock.Anything, booking).Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)

	done, signal := notifySignal(1)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, user, ticket, booking).Run(signal).Return()

	_, err := svc.CancelBooking(context.Background(), "b1", "changed plans")

	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, cached.invalidated)

	waitNotified(t, done, 1)
}

func TestBookingService_ExpirePending_DropsCachedTicket(t *testing.T) {
	svc, cached, m := newCachedBookingService(t)

	user := activeUser()
	ticket := activeTicket()
	candidates := []*domain.Booking{
		{ID: "b1", UserID: "u1", TicketID: "t1", Quantity: 2, Status: domain.BookingStatusPending},
	}

	m.bookingRepo.EXPECT().ListExpiredPending(mock.Anything, mock.Anything).Return(candidates, nil)
	m.bookingRepo.EXPECT().Expire(mock.Anything, "b1", "t1", 2).Return(true, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.ticketRepo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)

	done, signal := notifySignal(1)
	m.notifier.EXPECT().NotifyBookingExpired(mock.Anything, user, ticket, mock.Anything).Run(signal).Return()

	_, err := svc.ExpirePending(context.Background(), time.Hour)

	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, cached.invalidated)

	waitNotified(t, done, 1)
}
