package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Immortal-romantic/hotel-booking-api/models"
	"github.com/Immortal-romantic/hotel-booking-api/services/booking"
	"github.com/Immortal-romantic/hotel-booking-api/utils"
)

// BookingHandler serves the booking endpoints.
type BookingHandler struct {
	Engine booking.Engine
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(engine booking.Engine) *BookingHandler {
	return &BookingHandler{Engine: engine}
}

// CreateBookingHandler handles POST /bookings/create.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input struct {
		RoomID    int64  `json:"room_id"`
		DateStart string `json:"date_start"`
		DateEnd   string `json:"date_end"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.RoomID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "field 'room_id' is required")
		return
	}
	if input.DateStart == "" {
		utils.JSONError(c, http.StatusBadRequest, "field 'date_start' is required")
		return
	}
	if input.DateEnd == "" {
		utils.JSONError(c, http.StatusBadRequest, "field 'date_end' is required")
		return
	}

	dateStart, err := models.ParseDate(input.DateStart)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	dateEnd, err := models.ParseDate(input.DateEnd)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.Engine.CreateBooking(c.Request.Context(), input.RoomID, dateStart, dateEnd)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking_id": created.ID})
}

// ListBookingsHandler handles GET /bookings/list.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	rawRoomID := c.Query("room_id")
	if rawRoomID == "" {
		utils.JSONError(c, http.StatusBadRequest, "parameter 'room_id' is required")
		return
	}
	roomID, err := strconv.ParseInt(rawRoomID, 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "room_id must be an integer")
		return
	}

	bookings, err := h.Engine.ListBookings(c.Request.Context(), roomID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	items := make([]models.BookingListItem, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, models.BookingListItem{
			BookingID:    b.ID,
			DateStart:    b.DateStart.String(),
			DateEnd:      b.DateEnd.String(),
			DurationDays: b.DurationDays(),
		})
	}

	c.JSON(http.StatusOK, items)
}

// DeleteBookingHandler handles POST /bookings/delete.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	var input struct {
		BookingID int64 `json:"booking_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.BookingID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "field 'booking_id' is required")
		return
	}

	if err := h.Engine.DeleteBooking(c.Request.Context(), input.BookingID); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("booking %d deleted", input.BookingID)})
}

// respondDomainError maps engine errors onto HTTP status codes. Unknown
// errors become a generic 500 so internals never leak.
func respondDomainError(c *gin.Context, err error) {
	var vErr *booking.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.JSONError(c, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, booking.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, booking.ErrRoomNotFound.Error())
	case errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, booking.ErrBookingNotFound.Error())
	case errors.Is(err, booking.ErrDatesUnavailable):
		utils.JSONError(c, http.StatusConflict, booking.ErrDatesUnavailable.Error())
	default:
		utils.GetLogger().Error("request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}
