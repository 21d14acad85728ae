package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bookinglab/ticketbooking/internal/domain"
	"github.com/bookinglab/ticketbooking/internal/service/ports"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

// BookingService is the only entry point allowed to create or mutate
// bookings. It sequences the cross-entity checks and delegates the
// check-and-decrement itself to the repository, which runs it under a
// ticket row lock.
type BookingService struct {
	bookingRepo ports.BookingRepo
	ticketRepo  ports.TicketRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	policy      domain.BookingPolicy
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	ticketRepo ports.TicketRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	policy domain.BookingPolicy,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		ticketRepo:  ticketRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		policy:      policy,
		logger:      logger,
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, userID, ticketID string, quantity int) (*domain.Booking, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !user.Active {
		return nil, fmt.Errorf("%w: user account is not active", domain.ErrInvalidBooking)
	}

	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("check ticket: %w", err)
	}
	if !ticket.Active {
		return nil, fmt.Errorf("%w: ticket is not active", domain.ErrInvalidBooking)
	}

	if s.policy.AdvanceBookingDays > 0 {
		window := time.Now().AddDate(0, 0, s.policy.AdvanceBookingDays)
		if ticket.EventDate.After(window) {
			return nil, fmt.Errorf("%w: tickets can be booked at most %d days in advance",
				domain.ErrInvalidBooking, s.policy.AdvanceBookingDays)
		}
	}

	confirmed, err := s.bookingRepo.CountByUserAndStatus(ctx, userID, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("count confirmed bookings: %w", err)
	}
	if !user.CanBook(confirmed, quantity, s.policy.MaxTicketsPerUser) {
		return nil, fmt.Errorf("%w: user cannot book more than %d tickets",
			domain.ErrInvalidBooking, s.policy.MaxTicketsPerUser)
	}

	if !ticket.HasAvailable(quantity) {
		return nil, fmt.Errorf("%w: requested tickets are not available", domain.ErrInvalidBooking)
	}

	booking := &domain.Booking{
		ID:          uuid.New().String(),
		UserID:      userID,
		TicketID:    ticketID,
		Quantity:    quantity,
		TotalAmount: ticket.TotalPrice(quantity),
		Status:      domain.BookingStatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	if err = s.bookingRepo.CreateWithReservation(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	s.invalidateTicket(ctx, ticketID)

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("user_id", userID),
		logger.String("ticket_id", ticketID),
		logger.Int("quantity", quantity),
		logger.String("total_amount", booking.TotalAmount.String()),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), user, ticket, booking)

	return booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) List(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookingRepo.List(ctx)
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

func (s *BookingService) ListByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByStatus(ctx, status)
}

func (s *BookingService) ConfirmBooking(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if err = booking.Confirm(); err != nil {
		return nil, err
	}

	if err = s.bookingRepo.Confirm(ctx, booking); err != nil {
		return nil, fmt.Errorf("confirm booking: %w", err)
	}

	s.logger.Info("booking confirmed",
		logger.String("booking_id", booking.ID),
		logger.String("user_id", booking.UserID),
	)

	go s.notifyAsync(context.WithoutCancel(ctx), booking, s.notifier.NotifyBookingConfirmed)

	return booking, nil
}

func (s *BookingService) CancelBooking(ctx context.Context, id, reason string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if !booking.IsCancellable() {
		return nil, fmt.Errorf("%w: booking cannot be cancelled", domain.ErrInvalidBooking)
	}

	if err = booking.Cancel(reason); err != nil {
		return nil, err
	}

	if err = s.bookingRepo.CancelWithRelease(ctx, booking); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	s.invalidateTicket(ctx, booking.TicketID)

	s.logger.Info("booking cancelled",
		logger.String("booking_id", booking.ID),
		logger.String("user_id", booking.UserID),
		logger.String("reason", reason),
	)

	go s.notifyAsync(context.WithoutCancel(ctx), booking, s.notifier.NotifyBookingCancelled)

	return booking, nil
}

// CalculateRefund quotes the refund for a booking using the configured
// cancellation fee. Pure read, no state change.
func (s *BookingService) CalculateRefund(ctx context.Context, id string) (decimal.Decimal, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get booking: %w", err)
	}
	return booking.Refund(s.policy.CancellationFee), nil
}

func (s *BookingService) CountByUserAndStatus(ctx context.Context, userID string, status domain.BookingStatus) (int, error) {
	return s.bookingRepo.CountByUserAndStatus(ctx, userID, status)
}

// ExpirePending flips pending bookings older than maxAge to expired and
// returns the inventory they held. Each booking is its own transaction so a
// failure partway through leaves earlier ones intact.
func (s *BookingService) ExpirePending(ctx context.Context, maxAge time.Duration) ([]*domain.Booking, error) {
	cutoff := time.Now().UTC().Add(-maxAge)

	candidates, err := s.bookingRepo.ListExpiredPending(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list expired pending: %w", err)
	}

	var expired []*domain.Booking
	for _, b := range candidates {
		done, err := s.bookingRepo.Expire(ctx, b.ID, b.TicketID, b.Quantity)
		if err != nil {
			s.logger.Error("failed to expire booking",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if !done {
			continue
		}
		s.invalidateTicket(ctx, b.TicketID)
		b.Status = domain.BookingStatusExpired
		expired = append(expired, b)
	}

	if len(expired) > 0 {
		s.logger.Info("pending bookings expired",
			logger.Int("count", len(expired)),
		)
		go s.notifyExpired(context.WithoutCancel(ctx), expired)
	}

	return expired, nil
}

// ticketInvalidator is implemented by the caching ticket repository. The
// booking transactions change inventory with raw SQL, so the service drops
// the cached ticket itself after they commit.
type ticketInvalidator interface {
	InvalidateTicket(ctx context.Context, id string)
}

func (s *BookingService) invalidateTicket(ctx context.Context, id string) {
	if inv, ok := s.ticketRepo.(ticketInvalidator); ok {
		inv.InvalidateTicket(ctx, id)
	}
}

func (s *BookingService) notifyAsync(
	ctx context.Context,
	booking *domain.Booking,
	notify func(context.Context, *domain.User, *domain.Ticket, *domain.Booking),
) {
	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", booking.UserID),
			logger.String("error", err.Error()),
		)
		return
	}

	ticket, err := s.ticketRepo.GetByID(ctx, booking.TicketID)
	if err != nil {
		s.logger.Error("failed to get ticket for notification",
			logger.String("ticket_id", booking.TicketID),
			logger.String("error", err.Error()),
		)
		return
	}

	notify(ctx, user, ticket, booking)
}

func (s *BookingService) notifyExpired(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		s.notifyAsync(ctx, b, s.notifier.NotifyBookingExpired)
	}
}
