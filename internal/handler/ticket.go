package handler

import (
	"net/http"
	"time"

	"github.com/bookinglab/ticketbooking/internal/domain"
	"github.com/bookinglab/ticketbooking/internal/handler/dto"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateTicket(c *ginext.Context) {
	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid event_date format, expected RFC3339",
		})
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid price"})
		return
	}

	input := domain.CreateTicketInput{
		EventName:         req.EventName,
		Venue:             req.Venue,
		EventDate:         eventDate,
		Category:          domain.TicketCategory(req.Category),
		Price:             price,
		AvailableQuantity: req.AvailableQuantity,
	}

	ticket, err := h.ticketService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTicketResponse(ticket))
}

func (h *Handler) GetTicket(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ticket, err := h.ticketService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

func (h *Handler) ListTickets(c *ginext.Context) {
	filter := domain.TicketFilter{
		EventName:     c.Query("event"),
		Venue:         c.Query("venue"),
		Category:      domain.TicketCategory(c.Query("category")),
		UpcomingOnly:  c.Query("upcoming") == "true",
		AvailableOnly: c.Query("available") == "true",
	}

	if raw := c.Query("min_price"); raw != "" {
		p, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid min_price"})
			return
		}
		filter.MinPrice = &p
	}
	if raw := c.Query("max_price"); raw != "" {
		p, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid max_price"})
			return
		}
		filter.MaxPrice = &p
	}

	tickets, err := h.ticketService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, dto.ToTicketResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateTicket(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid event_date format, expected RFC3339",
		})
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid price"})
		return
	}

	ticket, err := h.ticketService.Update(c.Request.Context(), id, domain.UpdateTicketInput{
		EventName:         req.EventName,
		Venue:             req.Venue,
		EventDate:         eventDate,
		Price:             price,
		AvailableQuantity: req.AvailableQuantity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

func (h *Handler) DeleteTicket(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.ticketService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
