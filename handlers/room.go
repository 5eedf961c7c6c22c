package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Immortal-romantic/hotel-booking-api/models"
	"github.com/Immortal-romantic/hotel-booking-api/services/booking"
	"github.com/Immortal-romantic/hotel-booking-api/services/room"
	"github.com/Immortal-romantic/hotel-booking-api/utils"
)

// RoomHandler serves the room endpoints.
type RoomHandler struct {
	Service room.Service
	Engine  booking.Engine
}

// NewRoomHandler constructs a RoomHandler.
func NewRoomHandler(svc room.Service, engine booking.Engine) *RoomHandler {
	return &RoomHandler{Service: svc, Engine: engine}
}

// CreateRoomHandler handles POST /rooms/create.
func (h *RoomHandler) CreateRoomHandler(c *gin.Context) {
	var input struct {
		Description string `json:"description"`
		Price       string `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.Description == "" {
		utils.JSONError(c, http.StatusBadRequest, "field 'description' is required")
		return
	}
	if input.Price == "" {
		utils.JSONError(c, http.StatusBadRequest, "field 'price' is required")
		return
	}

	price, err := decimal.NewFromString(input.Price)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "price must be a decimal number")
		return
	}
	if !price.IsPositive() {
		utils.JSONError(c, http.StatusBadRequest, "price must be positive")
		return
	}

	created, err := h.Service.CreateRoom(c.Request.Context(), input.Description, price)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"room_id": created.ID})
}

// ListRoomsHandler handles GET /rooms/list.
func (h *RoomHandler) ListRoomsHandler(c *gin.Context) {
	sortBy := c.DefaultQuery("sort_by", models.SortByCreatedAt)
	order := c.DefaultQuery("order", models.OrderAsc)

	if sortBy != models.SortByPrice && sortBy != models.SortByCreatedAt {
		utils.JSONError(c, http.StatusBadRequest, "sort_by must be one of: price, created_at")
		return
	}
	if order != models.OrderAsc && order != models.OrderDesc {
		utils.JSONError(c, http.StatusBadRequest, "order must be 'asc' or 'desc'")
		return
	}

	items, err := h.Service.ListRooms(c.Request.Context(), sortBy, order)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// DeleteRoomHandler handles POST /rooms/delete.
func (h *RoomHandler) DeleteRoomHandler(c *gin.Context) {
	var input struct {
		RoomID int64 `json:"room_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.RoomID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "field 'room_id' is required")
		return
	}

	h.deleteRoom(c, input.RoomID)
}

// DeleteRoomByIDHandler handles DELETE /rooms/:room_id.
func (h *RoomHandler) DeleteRoomByIDHandler(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("room_id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "room_id must be an integer")
		return
	}

	h.deleteRoom(c, roomID)
}

func (h *RoomHandler) deleteRoom(c *gin.Context, roomID int64) {
	count, err := h.Engine.DeleteRoom(c.Request.Context(), roomID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("room %d and %d bookings deleted", roomID, count),
	})
}
