package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	UpdateUser(c *ginext.Context)
	ActivateUser(c *ginext.Context)
	DeactivateUser(c *ginext.Context)
	DeleteUser(c *ginext.Context)
	GetUserBookings(c *ginext.Context)

	CreateTicket(c *ginext.Context)
	GetTicket(c *ginext.Context)
	ListTickets(c *ginext.Context)
	UpdateTicket(c *ginext.Context)
	DeleteTicket(c *ginext.Context)

	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	ConfirmBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	GetRefund(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.PUT("/users/:id", h.UpdateUser)
		api.DELETE("/users/:id", h.DeleteUser)
		api.POST("/users/:id/activate", h.ActivateUser)
		api.POST("/users/:id/deactivate", h.DeactivateUser)
		api.GET("/users/:id/bookings", h.GetUserBookings)

		// Tickets
		api.POST("/tickets", h.CreateTicket)
		api.GET("/tickets", h.ListTickets)
		api.GET("/tickets/:id", h.GetTicket)
		api.PUT("/tickets/:id", h.UpdateTicket)
		api.DELETE("/tickets/:id", h.DeleteTicket)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/confirm", h.ConfirmBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.GET("/bookings/:id/refund", h.GetRefund)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
