// File: handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Room endpoints
	CreateRoomHandler     gin.HandlerFunc
	ListRoomsHandler      gin.HandlerFunc
	DeleteRoomHandler     gin.HandlerFunc
	DeleteRoomByIDHandler gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler gin.HandlerFunc
	ListBookingsHandler  gin.HandlerFunc
	DeleteBookingHandler gin.HandlerFunc
}
