package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Room represents a hotel room available for booking.
type Room struct {
	ID          int64           `json:"room_id"`     // Numeric identifier assigned by the store
	Description string          `json:"description"` // Free-text description
	Price       decimal.Decimal `json:"price"`       // Nightly price, fixed two-decimal scale
	CreatedAt   time.Time       `json:"created_at"`  // Set once on insert
}

// RoomListItem is a rooms list entry with the booking count joined in.
type RoomListItem struct {
	RoomID        int64  `json:"room_id"`
	Description   string `json:"description"`
	Price         string `json:"price"`
	CreatedAt     string `json:"created_at"`
	BookingsCount int64  `json:"bookings_count"`
}

// Sort parameters accepted by the rooms list endpoint.
const (
	SortByPrice     = "price"
	SortByCreatedAt = "created_at"
	OrderAsc        = "asc"
	OrderDesc       = "desc"
)
