package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bookinglab/ticketbooking/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const ticketColumns = `id, event_name, venue, event_date, category, price, available_quantity, active, created_at`

type TicketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketRepo(db *dbpg.DB) *TicketRepository {
	return &TicketRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	query := `INSERT INTO tickets (id, event_name, venue, event_date, category, price, available_quantity, active, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		t.ID, t.EventName, t.Venue, t.EventDate, t.Category,
		t.Price, t.AvailableQuantity, t.Active, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	var t domain.Ticket
	if err = scanTicket(row.Scan, &t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}

	return &t, nil
}

func (r *TicketRepository) List(ctx context.Context, filter domain.TicketFilter) ([]*domain.Ticket, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, strings.Replace(cond, "?", "$"+strconv.Itoa(len(args)), 1))
	}

	if filter.EventName != "" {
		add("event_name = ?", filter.EventName)
	}
	if filter.Venue != "" {
		add("venue = ?", filter.Venue)
	}
	if filter.Category != "" {
		add("category = ?", string(filter.Category))
	}
	if filter.MinPrice != nil {
		add("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		add("price <= ?", *filter.MaxPrice)
	}
	if filter.UpcomingOnly {
		conds = append(conds, "event_date > now() AND active")
	}
	if filter.AvailableOnly {
		conds = append(conds, "available_quantity > 0")
	}

	query := `SELECT ` + ticketColumns + ` FROM tickets`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY event_date"

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var res []*domain.Ticket
	for rows.Next() {
		var t domain.Ticket
		if err = scanTicket(rows.Scan, &t); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}

func (r *TicketRepository) Update(ctx context.Context, t *domain.Ticket) error {
	query := `UPDATE tickets
			  SET event_name = $2, venue = $3, event_date = $4, price = $5, available_quantity = $6
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		t.ID, t.EventName, t.Venue, t.EventDate, t.Price, t.AvailableQuantity,
	)
	if err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}

	return requireAffected(res, domain.ErrTicketNotFound)
}

func (r *TicketRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tickets WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}

	return requireAffected(res, domain.ErrTicketNotFound)
}

// Reserve is a single conditional decrement: it succeeds only when the
// ticket is active and has enough quantity, so availability can never go
// negative even under concurrent callers.
func (r *TicketRepository) Reserve(ctx context.Context, id string, quantity int) error {
	query := `UPDATE tickets
			  SET available_quantity = available_quantity - $2
			  WHERE id = $1 AND active AND available_quantity >= $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, quantity)
	if err != nil {
		return fmt.Errorf("reserve tickets: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrTicketUnavailable
	}

	return nil
}

// Release has no upper bound: quantity is added back as-is.
func (r *TicketRepository) Release(ctx context.Context, id string, quantity int) error {
	query := `UPDATE tickets
			  SET available_quantity = available_quantity + $2
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, quantity)
	if err != nil {
		return fmt.Errorf("release tickets: %w", err)
	}

	return requireAffected(res, domain.ErrTicketNotFound)
}

func scanTicket(scan func(dest ...any) error, t *domain.Ticket) error {
	return scan(
		&t.ID, &t.EventName, &t.Venue, &t.EventDate, &t.Category,
		&t.Price, &t.AvailableQuantity, &t.Active, &t.CreatedAt,
	)
}
