package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicket_HasAvailable(t *testing.T) {
	tk := &Ticket{Active: true, AvailableQuantity: 5}

	assert.True(t, tk.HasAvailable(5))
	assert.True(t, tk.HasAvailable(1))
	assert.False(t, tk.HasAvailable(6))
}

func TestTicket_HasAvailable_Inactive(t *testing.T) {
	tk := &Ticket{Active: false, AvailableQuantity: 5}

	assert.False(t, tk.HasAvailable(1))
}

func TestTicket_TotalPrice(t *testing.T) {
	tk := &Ticket{Price: money("99.99")}

	total := tk.TotalPrice(3)
	assert.True(t, total.Equal(money("299.97")), "got %s", total)
}

func TestParseTicketCategory(t *testing.T) {
	for _, valid := range []string{"economy", "business", "first_class", "vip"} {
		cat, err := ParseTicketCategory(valid)
		require.NoError(t, err)
		assert.Equal(t, TicketCategory(valid), cat)
	}

	_, err := ParseTicketCategory("premium")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTicketFilter_IsZero(t *testing.T) {
	assert.True(t, TicketFilter{}.IsZero())

	p := money("10.00")
	assert.False(t, TicketFilter{EventName: "Concert"}.IsZero())
	assert.False(t, TicketFilter{MinPrice: &p}.IsZero())
	assert.False(t, TicketFilter{UpcomingOnly: true}.IsZero())
}

func TestUser_CanBook(t *testing.T) {
	u := &User{Active: true}

	assert.True(t, u.CanBook(0, 10, 10))
	assert.True(t, u.CanBook(7, 3, 10))
	assert.False(t, u.CanBook(7, 4, 10))
	assert.False(t, u.CanBook(10, 1, 10))
}

func TestUser_CanBook_Inactive(t *testing.T) {
	u := &User{Active: false}

	assert.False(t, u.CanBook(0, 1, 10))
}
