package dto

type CreateUserRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type UpdateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

type CreateTicketRequest struct {
	EventName         string `json:"event_name" binding:"required"`
	Venue             string `json:"venue" binding:"required"`
	EventDate         string `json:"event_date" binding:"required"`
	Category          string `json:"category" binding:"required"`
	Price             string `json:"price" binding:"required"`
	AvailableQuantity int    `json:"available_quantity" binding:"gte=0"`
}

type UpdateTicketRequest struct {
	EventName         string `json:"event_name" binding:"required"`
	Venue             string `json:"venue" binding:"required"`
	EventDate         string `json:"event_date" binding:"required"`
	Price             string `json:"price" binding:"required"`
	AvailableQuantity int    `json:"available_quantity" binding:"gte=0"`
}

type CreateBookingRequest struct {
	UserID   string `json:"user_id" binding:"required,uuid"`
	TicketID string `json:"ticket_id" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"required,gte=1"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}
