package dto

import (
	"time"

	"github.com/bookinglab/ticketbooking/internal/domain"
	"github.com/shopspring/decimal"
)

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Active         bool   `json:"active"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	RegisteredAt   string `json:"registered_at"`
}

type TicketResponse struct {
	ID                string `json:"id"`
	EventName         string `json:"event_name"`
	Venue             string `json:"venue"`
	EventDate         string `json:"event_date"`
	Category          string `json:"category"`
	Price             string `json:"price"`
	AvailableQuantity int    `json:"available_quantity"`
	Active            bool   `json:"active"`
	CreatedAt         string `json:"created_at"`
}

type BookingResponse struct {
	ID                 string `json:"id"`
	UserID             string `json:"user_id"`
	TicketID           string `json:"ticket_id"`
	Quantity           int    `json:"quantity"`
	TotalAmount        string `json:"total_amount"`
	Status             string `json:"status"`
	CreatedAt          string `json:"created_at"`
	ConfirmedAt        string `json:"confirmed_at,omitempty"`
	CancelledAt        string `json:"cancelled_at,omitempty"`
	CancellationReason string `json:"cancellation_reason,omitempty"`
}

type RefundResponse struct {
	BookingID    string `json:"booking_id"`
	RefundAmount string `json:"refund_amount"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Phone:          u.Phone,
		Active:         u.Active,
		TelegramChatID: u.TelegramChatID,
		RegisteredAt:   u.RegisteredAt.Format(time.RFC3339),
	}
}

func ToTicketResponse(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:                t.ID,
		EventName:         t.EventName,
		Venue:             t.Venue,
		EventDate:         t.EventDate.Format(time.RFC3339),
		Category:          string(t.Category),
		Price:             t.Price.StringFixed(2),
		AvailableQuantity: t.AvailableQuantity,
		Active:            t.Active,
		CreatedAt:         t.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		TicketID:           b.TicketID,
		Quantity:           b.Quantity,
		TotalAmount:        b.TotalAmount.StringFixed(2),
		Status:             string(b.Status),
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		CancellationReason: b.CancellationReason,
	}
	if b.ConfirmedAt != nil {
		resp.ConfirmedAt = b.ConfirmedAt.Format(time.RFC3339)
	}
	if b.CancelledAt != nil {
		resp.CancelledAt = b.CancelledAt.Format(time.RFC3339)
	}
	return resp
}

func ToRefundResponse(bookingID string, amount decimal.Decimal) RefundResponse {
	return RefundResponse{
		BookingID:    bookingID,
		RefundAmount: amount.StringFixed(2),
	}
}
