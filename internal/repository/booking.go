package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bookinglab/ticketbooking/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, user_id, ticket_id, quantity, total_amount, status, created_at, confirmed_at, cancelled_at, cancellation_reason`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// CreateWithReservation locks the ticket row, re-checks the availability
// guard under the lock, decrements the inventory and inserts the booking.
// Losing a reservation race surfaces as ErrTicketUnavailable.
func (r *BookingRepository) CreateWithReservation(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var (
		active    bool
		available int
	)
	lockQuery := `SELECT active, available_quantity FROM tickets WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, b.TicketID).Scan(&active, &available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrTicketNotFound
		}
		return fmt.Errorf("lock ticket: %w", err)
	}

	if !active || available < b.Quantity {
		return domain.ErrTicketUnavailable
	}

	reserveQuery := `UPDATE tickets SET available_quantity = available_quantity - $2 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, reserveQuery, b.TicketID, b.Quantity); err != nil {
		return fmt.Errorf("reserve tickets: %w", err)
	}

	insertQuery := `INSERT INTO bookings (id, user_id, ticket_id, quantity, total_amount, status, created_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = tx.ExecContext(
		ctx, insertQuery,
		b.ID, b.UserID, b.TicketID, b.Quantity, b.TotalAmount, b.Status, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = scanBooking(row.Scan, &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC`
	return r.queryBookings(ctx, query)
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryBookings(ctx, query, userID)
}

func (r *BookingRepository) ListByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE status = $1 ORDER BY created_at DESC`
	return r.queryBookings(ctx, query, status)
}

func (r *BookingRepository) CountByUserAndStatus(ctx context.Context, userID string, status domain.BookingStatus) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1 AND status = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID, status)
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}

	return count, nil
}

// Confirm is a compare-and-swap on the pending status. A caller holding a
// stale read loses to a concurrent cancel or expiry instead of overwriting
// it and resurrecting a booking whose inventory was already released.
func (r *BookingRepository) Confirm(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings
			  SET status = $2, confirmed_at = $3
			  WHERE id = $1 AND status = $4`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.Status, b.ConfirmedAt, domain.BookingStatusPending,
	)
	if err != nil {
		return fmt.Errorf("confirm booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return r.confirmConflict(ctx, b.ID)
	}

	return nil
}

// confirmConflict maps a failed confirm CAS to the sentinel matching the
// booking's current status.
func (r *BookingRepository) confirmConflict(ctx context.Context, id string) error {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT status FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("check booking: %w", err)
	}

	var status domain.BookingStatus
	if err = row.Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("scan status: %w", err)
	}

	if status == domain.BookingStatusCancelled {
		return domain.ErrAlreadyCancelled
	}
	return fmt.Errorf("%w: booking is %s", domain.ErrNotPending, status)
}

// CancelWithRelease persists the cancellation and returns the booking's
// quantity to the ticket in one transaction. The status guard makes a
// retried cancel a no-op failure instead of a double release.
func (r *BookingRepository) CancelWithRelease(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	cancelQuery := `UPDATE bookings
					SET status = $2, cancelled_at = $3, cancellation_reason = $4
					WHERE id = $1 AND status <> $5`
	res, err := tx.ExecContext(
		ctx, cancelQuery,
		b.ID, domain.BookingStatusCancelled, b.CancelledAt,
		nullString(b.CancellationReason), domain.BookingStatusCancelled,
	)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`
		if err = tx.QueryRowContext(ctx, checkQuery, b.ID).Scan(&exists); err != nil {
			return fmt.Errorf("check booking: %w", err)
		}
		if !exists {
			return domain.ErrBookingNotFound
		}
		return domain.ErrAlreadyCancelled
	}

	releaseQuery := `UPDATE tickets SET available_quantity = available_quantity + $2 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, releaseQuery, b.TicketID, b.Quantity); err != nil {
		return fmt.Errorf("release tickets: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) ListExpiredPending(ctx context.Context, olderThan time.Time) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE status = $1 AND created_at < $2
			  ORDER BY created_at`
	return r.queryBookings(ctx, query, domain.BookingStatusPending, olderThan)
}

// Expire processes a single booking in its own transaction. The pending
// guard is re-checked inside the transaction, so a booking confirmed or
// cancelled in the meantime is skipped rather than double-released.
func (r *BookingRepository) Expire(ctx context.Context, bookingID, ticketID string, quantity int) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	expireQuery := `UPDATE bookings SET status = $2 WHERE id = $1 AND status = $3`
	res, err := tx.ExecContext(ctx, expireQuery, bookingID, domain.BookingStatusExpired, domain.BookingStatusPending)
	if err != nil {
		return false, fmt.Errorf("expire booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return false, nil
	}

	releaseQuery := `UPDATE tickets SET available_quantity = available_quantity + $2 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, releaseQuery, ticketID, quantity); err != nil {
		return false, fmt.Errorf("release tickets: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, err
	}

	return true, nil
}

func (r *BookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = scanBooking(rows.Scan, &b); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func scanBooking(scan func(dest ...any) error, b *domain.Booking) error {
	var reason sql.NullString
	err := scan(
		&b.ID, &b.UserID, &b.TicketID, &b.Quantity, &b.TotalAmount,
		&b.Status, &b.CreatedAt, &b.ConfirmedAt, &b.CancelledAt, &reason,
	)
	if err != nil {
		return err
	}
	b.CancellationReason = reason.String
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
