package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/bookinglab/ticketbooking/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier sends booking lifecycle updates to users that linked a
// telegram chat. Without a token it degrades to logging only.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, user *domain.User, ticket *domain.Ticket, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking created*\n\nEvent: %s\nVenue: %s\nDate (UTC): %s\nQuantity: %d\nTotal: %s\n\nConfirm your booking before it expires.",
		ticket.EventName, ticket.Venue, ticket.EventDate.Format("02.01.2006 15:04"),
		booking.Quantity, booking.TotalAmount.StringFixed(2),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, user *domain.User, ticket *domain.Ticket, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking confirmed!*\n\nEvent: %s\nVenue: %s\nDate (UTC): %s\nQuantity: %d",
		ticket.EventName, ticket.Venue, ticket.EventDate.Format("02.01.2006 15:04"), booking.Quantity,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, user *domain.User, ticket *domain.Ticket, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\nEvent: %s\nReason: %s",
		ticket.EventName, booking.CancellationReason,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingExpired(ctx context.Context, user *domain.User, ticket *domain.Ticket, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking expired*\n\nEvent: %s\nYour reservation of %d ticket(s) was released because it was not confirmed in time.",
		ticket.EventName, booking.Quantity,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
