package gateway

import (
	"fmt"
	"time"

	model "gearshare/internal/models"
	"gearshare/internal/server"
	"gearshare/internal/sharingerrors"
	"gearshare/services/sharing/helpers"

	"github.com/gin-gonic/gin"
)

// Handler validates requests at the edge before they reach the backend.
// Everything that passes is forwarded unchanged.
type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

// SetupRouter configures all Gin routes for the gateway application
func SetupRouter(client *Client) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(server.RequestLoggerMiddleware)

	h := NewHandler(client)

	users := router.Group("/users")
	{
		users.POST("", h.CreateUser)
		users.GET("", h.forward)
		users.GET("/:user_id", h.forward)
		users.PATCH("/:user_id", h.UpdateUser)
		users.DELETE("/:user_id", h.forward)
	}

	items := router.Group("/items", server.RequireIdentity)
	{
		items.POST("", h.CreateItem)
		items.GET("", h.forwardPaged)
		items.GET("/search", h.forwardPaged)
		items.GET("/:item_id", h.forward)
		items.PATCH("/:item_id", h.UpdateItem)
		items.POST("/:item_id/comment", h.CreateComment)
	}

	bookings := router.Group("/bookings", server.RequireIdentity)
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/owner", h.ListBookings)
		bookings.GET("/:booking_id", h.forward)
		bookings.PATCH("/:booking_id", h.ApproveBooking)
	}

	requests := router.Group("/requests", server.RequireIdentity)
	{
		requests.POST("", h.CreateRequest)
		requests.GET("", h.forward)
		requests.GET("/all", h.forwardPaged)
		requests.GET("/:request_id", h.forward)
	}

	return router
}

// forward relays a request that needs no validation beyond the group
// middleware.
func (h *Handler) forward(c *gin.Context) {
	h.client.Proxy(c, c.Request.URL.Path, nil)
}

// forwardPaged relays a listing request after checking from/size.
func (h *Handler) forwardPaged(c *gin.Context) {
	if _, _, err := helpers.ParsePaging(c); err != nil {
		helpers.RespondError(c, "gateway", err)
		return
	}
	h.client.Proxy(c, c.Request.URL.Path, nil)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req helpers.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "gateway.CreateUser", err)
		return
	}
	h.client.Proxy(c, c.Request.URL.Path, req)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	var req helpers.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "gateway.UpdateUser", err)
		return
	}
	h.client.Proxy(c, c.Request.URL.Path, req)
}

func (h *Handler) CreateItem(c *gin.Context) {
	var req helpers.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "gateway.CreateItem", err)
		return
	}
	h.client.Proxy(c, c.Request.URL.Path, req)
}

func (h *Handler) UpdateItem(c *gin.Context) {
	var req helpers.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "gateway.UpdateItem", err)
		return
	}
	h.client.Proxy(c, c.Request.URL.Path, req)
}

// CreateBooking checks the booking time window at the edge: start strictly
// before end, start not in the past, end strictly future.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req helpers.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "gateway.CreateBooking", err)
		return
	}
	now := time.Now()
	switch {
	case !req.Start.Before(req.End):
		helpers.RespondError(c, "gateway.CreateBooking",
			fmt.Errorf("%w - start must be strictly before end", sharingerrors.ErrValidation))
		return
	case req.Start.Before(now):
		helpers.RespondError(c, "gateway.CreateBooking",
			fmt.Errorf("%w - start must not be in the past", sharingerrors.ErrValidation))
		return
	case !req.End.After(now):
		helpers.RespondError(c, "gateway.CreateBooking",
			fmt.Errorf("%w - end must be in the future", sharingerrors.ErrValidation))
		return
	}
	h.client.Proxy(c, c.Request.URL.Path, req)
}

func (h *Handler) ApproveBooking(c *gin.Context) {
	approved := c.Query("approved")
	if approved != "true" && approved != "false" {
		helpers.RespondError(c, "gateway.ApproveBooking",
			fmt.Errorf("%w - approved must be true or false", sharingerrors.ErrValidation))
		return
	}
	h.client.Proxy(c, c.Request.URL.Path, nil)
}

// ListBookings rejects unknown states and bad paging before forwarding.
func (h *Handler) ListBookings(c *gin.Context) {
	if _, err := model.ParseBookingState(c.DefaultQuery("state", "ALL")); err != nil {
		helpers.RespondError(c, "gateway.ListBookings", err)
		return
	}
	if _, _, err := helpers.ParsePaging(c); err != nil {
		helpers.RespondError(c, "gateway.ListBookings", err)
		return
	}
	h.client.Proxy(c, c.Request.URL.Path, nil)
}

func (h *Handler) CreateComment(c *gin.Context) {
	var req helpers.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "gateway.CreateComment", err)
		return
	}
	h.client.Proxy(c, c.Request.URL.Path, req)
}

func (h *Handler) CreateRequest(c *gin.Context) {
	var req helpers.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "gateway.CreateRequest", err)
		return
	}
	h.client.Proxy(c, c.Request.URL.Path, req)
}
