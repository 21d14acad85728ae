package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBooking_Confirm_FromPending(t *testing.T) {
	b := &Booking{Status: BookingStatusPending}

	require.NoError(t, b.Confirm())
	assert.Equal(t, BookingStatusConfirmed, b.Status)
	assert.NotNil(t, b.ConfirmedAt)
}

func TestBooking_Confirm_Twice(t *testing.T) {
	b := &Booking{Status: BookingStatusPending}
	require.NoError(t, b.Confirm())

	firstConfirmedAt := b.ConfirmedAt

	err := b.Confirm()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotPending)
	assert.Equal(t, BookingStatusConfirmed, b.Status)
	assert.Equal(t, firstConfirmedAt, b.ConfirmedAt)
}

func TestBooking_Confirm_FromCancelled(t *testing.T) {
	b := &Booking{Status: BookingStatusCancelled}

	err := b.Confirm()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotPending)
	assert.Equal(t, BookingStatusCancelled, b.Status)
}

func TestBooking_Cancel_FromPending(t *testing.T) {
	b := &Booking{Status: BookingStatusPending}

	require.NoError(t, b.Cancel("changed my mind"))
	assert.Equal(t, BookingStatusCancelled, b.Status)
	assert.Equal(t, "changed my mind", b.CancellationReason)
	assert.NotNil(t, b.CancelledAt)
}

func TestBooking_Cancel_FromConfirmed(t *testing.T) {
	b := &Booking{Status: BookingStatusConfirmed}

	require.NoError(t, b.Cancel("event moved"))
	assert.Equal(t, BookingStatusCancelled, b.Status)
}

func TestBooking_Cancel_AlreadyCancelled(t *testing.T) {
	b := &Booking{Status: BookingStatusPending}
	require.NoError(t, b.Cancel("first"))

	err := b.Cancel("second")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Equal(t, "first", b.CancellationReason)
}

func TestBooking_IsCancellable(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{BookingStatusPending, true},
		{BookingStatusConfirmed, true},
		{BookingStatusCancelled, false},
		{BookingStatusExpired, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.want, b.IsCancellable())
		})
	}
}

func TestBooking_Refund_DeductsFee(t *testing.T) {
	b := &Booking{
		Status:      BookingStatusConfirmed,
		TotalAmount: money("200.00"),
	}

	refund := b.Refund(money("50.00"))
	assert.True(t, refund.Equal(money("150.00")), "got %s", refund)
}

func TestBooking_Refund_AfterCancellation(t *testing.T) {
	b := &Booking{
		Status:      BookingStatusConfirmed,
		TotalAmount: money("200.00"),
	}
	require.NoError(t, b.Cancel("no longer needed"))

	refund := b.Refund(money("50.00"))
	assert.True(t, refund.IsZero(), "got %s", refund)
}

func TestBooking_Refund_FeeExceedsTotal(t *testing.T) {
	b := &Booking{
		Status:      BookingStatusPending,
		TotalAmount: money("30.00"),
	}

	refund := b.Refund(money("50.00"))
	assert.True(t, refund.IsZero(), "got %s", refund)
}

func TestBooking_Refund_Expired(t *testing.T) {
	b := &Booking{
		Status:      BookingStatusExpired,
		TotalAmount: money("200.00"),
	}

	refund := b.Refund(money("50.00"))
	assert.True(t, refund.IsZero(), "got %s", refund)
}
