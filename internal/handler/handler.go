package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/bookinglab/ticketbooking/internal/domain"
	"github.com/bookinglab/ticketbooking/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/ginext"
)

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.User, error)
	Update(ctx context.Context, id string, input domain.UpdateUserInput) (*domain.User, error)
	Activate(ctx context.Context, id string) error
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type TicketSvc interface {
	Create(ctx context.Context, input domain.CreateTicketInput) (*domain.Ticket, error)
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	List(ctx context.Context, filter domain.TicketFilter) ([]*domain.Ticket, error)
	Update(ctx context.Context, id string, input domain.UpdateTicketInput) (*domain.Ticket, error)
	Delete(ctx context.Context, id string) error
}

type BookingSvc interface {
	CreateBooking(ctx context.Context, userID, ticketID string, quantity int) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error)
	ConfirmBooking(ctx context.Context, id string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id, reason string) (*domain.Booking, error)
	CalculateRefund(ctx context.Context, id string) (decimal.Decimal, error)
}

type Handler struct {
	userService    UserSvc
	ticketService  TicketSvc
	bookingService BookingSvc
}

func NewHandler(userService UserSvc, ticketService TicketSvc, bookingService BookingSvc) *Handler {
	return &Handler{
		userService:    userService,
		ticketService:  ticketService,
		bookingService: bookingService,
	}
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), req.UserID, req.TicketID, req.Quantity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	var (
		bookings []*domain.Booking
		err      error
	)

	if status := c.Query("status"); status != "" {
		bookings, err = h.bookingService.ListByStatus(c.Request.Context(), domain.BookingStatus(status))
	} else {
		bookings, err = h.bookingService.List(c.Request.Context())
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ConfirmBooking(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.ConfirmBooking(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.CancelBooking(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetRefund(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	amount, err := h.bookingService.CalculateRefund(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRefundResponse(id, amount))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTicketNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEmailExists),
		errors.Is(err, domain.ErrTicketUnavailable),
		errors.Is(err, domain.ErrNotPending),
		errors.Is(err, domain.ErrAlreadyCancelled):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidBooking),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func pathID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
		return "", false
	}
	return id, true
}
