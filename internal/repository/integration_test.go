//go:build integration

package repository

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/bookinglab/ticketbooking/internal/domain"
)

// These tests run against a real postgres, selected with
//
//	TEST_DATABASE_DSN=postgres://... go test -tags integration ./internal/repository/
//
// and verify the inventory arithmetic end to end: reserve then release
// restores the starting quantity, and availability never goes negative under
// concurrent reservations.

func openTestDB(t *testing.T) *dbpg.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN is not set")
	}

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 10, MaxIdleConns: 5})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Master.Close() })

	require.NoError(t, db.Master.PingContext(context.Background()))
	require.NoError(t, goose.Up(db.Master, "../../migrations"))

	return db
}

func insertTestTicket(t *testing.T, db *dbpg.DB, quantity int) string {
	t.Helper()

	ticket := &domain.Ticket{
		ID:                uuid.New().String(),
		EventName:         "Integration Concert",
		Venue:             "Test Arena",
		EventDate:         time.Now().Add(72 * time.Hour).UTC(),
		Category:          domain.TicketCategoryEconomy,
		Price:             decimal.RequireFromString("100.00"),
		AvailableQuantity: quantity,
		Active:            true,
		CreatedAt:         time.Now().UTC(),
	}
	require.NoError(t, NewTicketRepo(db).Create(context.Background(), ticket))
	t.Cleanup(func() {
		_, _ = db.Master.Exec(`DELETE FROM tickets WHERE id = $1`, ticket.ID)
	})

	return ticket.ID
}

func insertTestUser(t *testing.T, db *dbpg.DB) string {
	t.Helper()

	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         "Integration User",
		Email:        uuid.New().String() + "@example.com",
		Active:       true,
		RegisteredAt: time.Now().UTC(),
	}
	require.NoError(t, NewUserRepo(db).Create(context.Background(), user))
	t.Cleanup(func() {
		_, _ = db.Master.Exec(`DELETE FROM users WHERE id = $1`, user.ID)
	})

	return user.ID
}

func availableQuantity(t *testing.T, db *dbpg.DB, ticketID string) int {
	t.Helper()

	var n int
	require.NoError(t, db.Master.QueryRow(
		`SELECT available_quantity FROM tickets WHERE id = $1`, ticketID,
	).Scan(&n))
	return n
}

func TestTicketRepository_ReserveRelease_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewTicketRepo(db)
	ctx := context.Background()

	ticketID := insertTestTicket(t, db, 100)

	require.NoError(t, repo.Reserve(ctx, ticketID, 5))
	assert.Equal(t, 95, availableQuantity(t, db, ticketID))

	require.NoError(t, repo.Release(ctx, ticketID, 5))
	assert.Equal(t, 100, availableQuantity(t, db, ticketID))
}

func TestTicketRepository_Reserve_NeverGoesNegative(t *testing.T) {
	db := openTestDB(t)
	repo := NewTicketRepo(db)
	ctx := context.Background()

	ticketID := insertTestTicket(t, db, 3)

	const callers = 10
	results := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = repo.Reserve(ctx, ticketID, 1)
		}(i)
	}
	wg.Wait()

	var succeeded int
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrTicketUnavailable)
	}

	assert.Equal(t, 3, succeeded)
	assert.Equal(t, 0, availableQuantity(t, db, ticketID))
}

func TestBookingRepository_CancelRestoresInventory(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingRepo(db)
	ctx := context.Background()

	userID := insertTestUser(t, db)
	ticketID := insertTestTicket(t, db, 100)

	booking := &domain.Booking{
		ID:          uuid.New().String(),
		UserID:      userID,
		TicketID:    ticketID,
		Quantity:    5,
		TotalAmount: decimal.RequireFromString("500.00"),
		Status:      domain.BookingStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	t.Cleanup(func() {
		_, _ = db.Master.Exec(`DELETE FROM bookings WHERE id = $1`, booking.ID)
	})

	require.NoError(t, repo.CreateWithReservation(ctx, booking))
	assert.Equal(t, 95, availableQuantity(t, db, ticketID))

	require.NoError(t, booking.Cancel("changed plans"))
	require.NoError(t, repo.CancelWithRelease(ctx, booking))
	assert.Equal(t, 100, availableQuantity(t, db, ticketID))

	// A repeated cancel must not release the quantity twice.
	err := repo.CancelWithRelease(ctx, booking)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
	assert.Equal(t, 100, availableQuantity(t, db, ticketID))
}

func TestBookingRepository_ConfirmLosesToCancel(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingRepo(db)
	ctx := context.Background()

	userID := insertTestUser(t, db)
	ticketID := insertTestTicket(t, db, 10)

	booking := &domain.Booking{
		ID:          uuid.New().String(),
		UserID:      userID,
		TicketID:    ticketID,
		Quantity:    2,
		TotalAmount: decimal.RequireFromString("200.00"),
		Status:      domain.BookingStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	t.Cleanup(func() {
		_, _ = db.Master.Exec(`DELETE FROM bookings WHERE id = $1`, booking.ID)
	})

	require.NoError(t, repo.CreateWithReservation(ctx, booking))

	// A second caller read the booking while it was still pending.
	stale, err := repo.GetByID(ctx, booking.ID)
	require.NoError(t, err)

	require.NoError(t, booking.Cancel("changed plans"))
	require.NoError(t, repo.CancelWithRelease(ctx, booking))

	require.NoError(t, stale.Confirm())
	err = repo.Confirm(ctx, stale)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)

	current, err := repo.GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, current.Status)
	assert.NotNil(t, current.CancelledAt)
	assert.Equal(t, 10, availableQuantity(t, db, ticketID))
}
