package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	model "gearshare/internal/models"
	"gearshare/internal/sharingerrors"
	"gearshare/services/sharing/helpers"

	"github.com/gin-gonic/gin"
)

type BookingServiceInterface interface {
	CreateBooking(itemID string, start, end time.Time, bookerID string) (model.Booking, error)
	ApproveBooking(userID, bookingID string, approved bool) (model.Booking, error)
	GetBookingByID(userID, bookingID string) (model.Booking, error)
	ListForRequester(userID, state string, from, size int) ([]model.Booking, error)
	ListForOwner(userID, state string, from, size int) ([]model.Booking, error)
}

type BookingHandler struct {
	service BookingServiceInterface
}

func NewBookingHandler(service BookingServiceInterface) *BookingHandler {
	return &BookingHandler{service: service}
}

// CreateBookingHandler handles POST /bookings
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req helpers.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateBookingHandler", err)
		return
	}
	userID := helpers.CallerID(c)

	booking, err := h.service.CreateBooking(req.ItemID, req.Start, req.End, userID)
	if err != nil {
		helpers.RespondError(c, "CreateBookingHandler", err)
		return
	}

	c.JSON(http.StatusOK, helpers.ToBookingResponse(booking))
	helpers.LogSuccess("CreateBookingHandler", "booking created", map[string]any{
		"booking_id": booking.ID,
		"item_id":    booking.ItemID,
		"booker_id":  booking.BookerID,
	})
}

// ApproveBookingHandler handles PATCH /bookings/:booking_id?approved=
func (h *BookingHandler) ApproveBookingHandler(c *gin.Context) {
	bookingID := c.Param("booking_id")
	userID := helpers.CallerID(c)
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		helpers.RespondError(c, "ApproveBookingHandler",
			fmt.Errorf("%w - approved must be true or false", sharingerrors.ErrValidation))
		return
	}

	booking, err := h.service.ApproveBooking(userID, bookingID, approved)
	if err != nil {
		helpers.RespondError(c, "ApproveBookingHandler", err)
		return
	}

	c.JSON(http.StatusOK, helpers.ToBookingResponse(booking))
	helpers.LogSuccess("ApproveBookingHandler", "booking decided", map[string]any{
		"booking_id": booking.ID,
		"status":     booking.Status,
	})
}

// GetBookingHandler handles GET /bookings/:booking_id
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	bookingID := c.Param("booking_id")
	userID := helpers.CallerID(c)

	booking, err := h.service.GetBookingByID(userID, bookingID)
	if err != nil {
		helpers.RespondError(c, "GetBookingHandler", err)
		return
	}

	c.JSON(http.StatusOK, helpers.ToBookingResponse(booking))
}

// ListBookingsHandler handles GET /bookings?state=&from=&size=
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	h.listBookings(c, "ListBookingsHandler", h.service.ListForRequester)
}

// ListOwnerBookingsHandler handles GET /bookings/owner?state=&from=&size=
func (h *BookingHandler) ListOwnerBookingsHandler(c *gin.Context) {
	h.listBookings(c, "ListOwnerBookingsHandler", h.service.ListForOwner)
}

func (h *BookingHandler) listBookings(c *gin.Context, handlerName string,
	list func(userID, state string, from, size int) ([]model.Booking, error)) {
	userID := helpers.CallerID(c)
	state := c.DefaultQuery("state", "ALL")
	from, size, err := helpers.ParsePaging(c)
	if err != nil {
		helpers.RespondError(c, handlerName, err)
		return
	}

	bookings, err := list(userID, state, from, size)
	if err != nil {
		helpers.RespondError(c, handlerName, err)
		return
	}

	resp := make([]helpers.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, helpers.ToBookingResponse(b))
	}
	c.JSON(http.StatusOK, resp)
	helpers.LogSuccess(handlerName, "bookings listed", map[string]any{
		"user_id": userID,
		"state":   state,
		"count":   len(resp),
	})
}
