package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type TicketCategory string

const (
	TicketCategoryEconomy    TicketCategory = "economy"
	TicketCategoryBusiness   TicketCategory = "business"
	TicketCategoryFirstClass TicketCategory = "first_class"
	TicketCategoryVIP        TicketCategory = "vip"
)

func ParseTicketCategory(s string) (TicketCategory, error) {
	switch TicketCategory(s) {
	case TicketCategoryEconomy, TicketCategoryBusiness, TicketCategoryFirstClass, TicketCategoryVIP:
		return TicketCategory(s), nil
	default:
		return "", fmt.Errorf("%w: unknown ticket category %q", ErrValidation, s)
	}
}

type Ticket struct {
	ID                string          `json:"id"`
	EventName         string          `json:"event_name"`
	Venue             string          `json:"venue"`
	EventDate         time.Time       `json:"event_date"`
	Category          TicketCategory  `json:"category"`
	Price             decimal.Decimal `json:"price"`
	AvailableQuantity int             `json:"available_quantity"`
	Active            bool            `json:"active"`
	CreatedAt         time.Time       `json:"created_at"`
}

// HasAvailable reports whether the ticket can cover the requested quantity.
func (t *Ticket) HasAvailable(quantity int) bool {
	return t.Active && t.AvailableQuantity >= quantity
}

func (t *Ticket) TotalPrice(quantity int) decimal.Decimal {
	return t.Price.Mul(decimal.NewFromInt(int64(quantity)))
}

type CreateTicketInput struct {
	EventName         string
	Venue             string
	EventDate         time.Time
	Category          TicketCategory
	Price             decimal.Decimal
	AvailableQuantity int
}

type UpdateTicketInput struct {
	EventName         string
	Venue             string
	EventDate         time.Time
	Price             decimal.Decimal
	AvailableQuantity int
}

// TicketFilter narrows ticket listings. Zero values mean "no constraint".
type TicketFilter struct {
	EventName     string
	Venue         string
	Category      TicketCategory
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	UpcomingOnly  bool
	AvailableOnly bool
}

func (f TicketFilter) IsZero() bool {
	return f.EventName == "" && f.Venue == "" && f.Category == "" &&
		f.MinPrice == nil && f.MaxPrice == nil && !f.UpcomingOnly && !f.AvailableOnly
}
