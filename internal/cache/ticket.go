package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bookinglab/ticketbooking/internal/domain"
	"github.com/bookinglab/ticketbooking/internal/service/ports"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"
)

// TicketCache is a read-through cache over a TicketRepo. Only the by-id and
// unfiltered list reads are cached; every mutation invalidates both. Any
// redis failure falls back to the wrapped repository, so the cache can never
// make reads less correct, only faster.
type TicketCache struct {
	repo   ports.TicketRepo
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
	logger logger.Logger
}

func NewTicketCache(repo ports.TicketRepo, rdb *redis.Client, ttl time.Duration, prefix string, logger logger.Logger) *TicketCache {
	return &TicketCache{
		repo:   repo,
		rdb:    rdb,
		ttl:    ttl,
		prefix: prefix,
		logger: logger,
	}
}

func (c *TicketCache) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	key := c.ticketKey(id)

	if data, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var t domain.Ticket
		if err = json.Unmarshal(data, &t); err == nil {
			return &t, nil
		}
	}

	ticket, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, ticket)
	return ticket, nil
}

func (c *TicketCache) List(ctx context.Context, filter domain.TicketFilter) ([]*domain.Ticket, error) {
	if !filter.IsZero() {
		return c.repo.List(ctx, filter)
	}

	key := c.listKey()
	if data, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var tickets []*domain.Ticket
		if err = json.Unmarshal(data, &tickets); err == nil {
			return tickets, nil
		}
	}

	tickets, err := c.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, tickets)
	return tickets, nil
}

func (c *TicketCache) Create(ctx context.Context, t *domain.Ticket) error {
	if err := c.repo.Create(ctx, t); err != nil {
		return err
	}
	c.invalidate(ctx, t.ID)
	return nil
}

func (c *TicketCache) Update(ctx context.Context, t *domain.Ticket) error {
	if err := c.repo.Update(ctx, t); err != nil {
		return err
	}
	c.invalidate(ctx, t.ID)
	return nil
}

func (c *TicketCache) Delete(ctx context.Context, id string) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

func (c *TicketCache) Reserve(ctx context.Context, id string, quantity int) error {
	if err := c.repo.Reserve(ctx, id, quantity); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

func (c *TicketCache) Release(ctx context.Context, id string, quantity int) error {
	if err := c.repo.Release(ctx, id, quantity); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

// InvalidateTicket drops the cached entry for a ticket whose inventory was
// changed outside this repository, e.g. by the booking transactions.
func (c *TicketCache) InvalidateTicket(ctx context.Context, id string) {
	c.invalidate(ctx, id)
}

func (c *TicketCache) store(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Debug("ticket cache store failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}

func (c *TicketCache) invalidate(ctx context.Context, id string) {
	if err := c.rdb.Del(ctx, c.ticketKey(id), c.listKey()).Err(); err != nil {
		c.logger.Debug("ticket cache invalidation failed",
			logger.String("ticket_id", id),
			logger.String("error", err.Error()),
		)
	}
}

func (c *TicketCache) ticketKey(id string) string {
	return c.prefix + ":ticket:" + id
}

func (c *TicketCache) listKey() string {
	return c.prefix + ":tickets:all"
}
