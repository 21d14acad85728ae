package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
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

// unreachableRedis returns a client whose every command fails fast, which is
// exactly the degraded mode the cache must survive.
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 10 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestTicketCache_GetByID_FallsBackToRepo(t *testing.T) {
	repo := mocks.NewMockTicketRepo(t)
	c := NewTicketCache(repo, unreachableRedis(t), time.Minute, "test", newTestLogger(t))

	ticket := &domain.Ticket{ID: "t1", EventName: "Concert"}
	repo.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)

	got, err := c.GetByID(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, ticket, got)
}

func TestTicketCache_GetByID_RepoError(t *testing.T) {
	repo := mocks.NewMockTicketRepo(t)
	c := NewTicketCache(repo, unreachableRedis(t), time.Minute, "test", newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrTicketNotFound)

	_, err := c.GetByID(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}

func TestTicketCache_List_FilteredBypassesCache(t *testing.T) {
	repo := mocks.NewMockTicketRepo(t)
	c := NewTicketCache(repo, unreachableRedis(t), time.Minute, "test", newTestLogger(t))

	filter := domain.TicketFilter{Venue: "Arena"}
	tickets := []*domain.Ticket{{ID: "t1", Venue: "Arena"}}
	repo.EXPECT().List(mock.Anything, filter).Return(tickets, nil)

	got, err := c.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, tickets, got)
}

func TestTicketCache_List_Unfiltered(t *testing.T) {
	repo := mocks.NewMockTicketRepo(t)
	c := NewTicketCache(repo, unreachableRedis(t), time.Minute, "test", newTestLogger(t))

	tickets := []*domain.Ticket{{ID: "t1"}, {ID: "t2"}}
	repo.EXPECT().List(mock.Anything, domain.TicketFilter{}).Return(tickets, nil)

	got, err := c.List(context.Background(), domain.TicketFilter{})

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestTicketCache_Reserve_DelegatesAndInvalidates(t *testing.T) {
	repo := mocks.NewMockTicketRepo(t)
	c := NewTicketCache(repo, unreachableRedis(t), time.Minute, "test", newTestLogger(t))

	repo.EXPECT().Reserve(mock.Anything, "t1", 3).Return(nil)

	require.NoError(t, c.Reserve(context.Background(), "t1", 3))
}

func TestTicketCache_Reserve_PropagatesError(t *testing.T) {
	repo := mocks.NewMockTicketRepo(t)
	c := NewTicketCache(repo, unreachableRedis(t), time.Minute, "test", newTestLogger(t))

	repo.EXPECT().Reserve(mock.Anything, "t1", 3).Return(domain.ErrTicketUnavailable)

	err := c.Reserve(context.Background(), "t1", 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTicketUnavailable)
}

func TestTicketCache_Release_Delegates(t *testing.T) {
	repo := mocks.NewMockTicketRepo(t)
	c := NewTicketCache(repo, unreachableRedis(t), time.Minute, "test", newTestLogger(t))

	repo.EXPECT().Release(mock.Anything, "t1", 3).Return(nil)

	require.NoError(t, c.Release(context.Background(), "t1", 3))
}

func TestTicketCache_InvalidateTicket_SurvivesRedisDown(t *testing.T) {
	repo := mocks.NewMockTicketRepo(t)
	c := NewTicketCache(repo, unreachableRedis(t), time.Minute, "test", newTestLogger(t))

	// Invalidation is best effort: redis being down must not panic or touch
	// the wrapped repository.
	c.InvalidateTicket(context.Background(), "t1")
}
