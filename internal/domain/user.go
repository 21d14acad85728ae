package domain

import "time"

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Active         bool      `json:"active"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	RegisteredAt   time.Time `json:"registered_at"`
}

// CanBook reports whether the user may book more tickets. Only confirmed
// bookings count toward the quota; pending ones do not.
func (u *User) CanBook(confirmedBookings, requested, maxAllowed int) bool {
	if !u.Active {
		return false
	}
	return confirmedBookings+requested <= maxAllowed
}

type CreateUserInput struct {
	Name           string
	Email          string
	Phone          string
	TelegramChatID *int64
}

type UpdateUserInput struct {
	Name  string
	Phone string
}
