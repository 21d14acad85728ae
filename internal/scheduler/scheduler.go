package scheduler

import (
	"context"
	"time"

	"github.com/bookinglab/ticketbooking/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingExpirer interface {
	ExpirePending(ctx context.Context, maxAge time.Duration) ([]*domain.Booking, error)
}

// Scheduler periodically expires pending bookings that were never confirmed.
type Scheduler struct {
	bookingService bookingExpirer
	interval       time.Duration
	maxPendingAge  time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingExpirer,
	interval time.Duration,
	maxPendingAge time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		maxPendingAge:  maxPendingAge,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("max_pending_age", s.maxPendingAge),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.bookingService.ExpirePending(ctx, s.maxPendingAge)
	if err != nil {
		s.logger.Error("failed to expire pending bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range expired {
		s.logger.Info("booking expired",
			logger.String("booking_id", b.ID),
			logger.String("user_id", b.UserID),
			logger.String("ticket_id", b.TicketID),
		)
	}
}
