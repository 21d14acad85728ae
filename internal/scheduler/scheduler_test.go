package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/bookinglab/ticketbooking/internal/domain"
	"github.com/bookinglab/ticketbooking/internal/scheduler/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_ExpiresPending(t *testing.T) {
	expirer := mocks.NewMockBookingExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, 50*time.Millisecond, 24*time.Hour, log)

	expired := []*domain.Booking{
		{ID: "b1", UserID: "u1", TicketID: "t1"},
	}
	expirer.EXPECT().ExpirePending(mock.Anything, 24*time.Hour).Return(expired, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	expirer := mocks.NewMockBookingExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, 50*time.Millisecond, 24*time.Hour, log)

	expirer.EXPECT().ExpirePending(mock.Anything, 24*time.Hour).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	expirer := mocks.NewMockBookingExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, time.Second, 24*time.Hour, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	expirer := mocks.NewMockBookingExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, 30*time.Millisecond, time.Hour, log)

	expirer.EXPECT().ExpirePending(mock.Anything, time.Hour).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	calls := len(expirer.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}
