// File: database/repository/room/interface.go
package roomRepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Immortal-romantic/hotel-booking-api/models"
)

// RoomRepository provides access to stored room records. Lookups return
// (nil, nil) when the room does not exist; mapping that onto a domain
// error is the caller's concern.
type RoomRepository interface {
	// Create inserts a new room, assigning its id and creation timestamp.
	Create(ctx context.Context, description string, price decimal.Decimal) (*models.Room, error)
	// GetByID returns a room by its numeric id.
	GetByID(ctx context.Context, id int64) (*models.Room, error)
	// List returns all rooms ordered by the given field and direction.
	// sortBy is one of models.SortByPrice, models.SortByCreatedAt;
	// order is models.OrderAsc or models.OrderDesc.
	List(ctx context.Context, sortBy, order string) ([]models.Room, error)
	// Delete removes a room. It reports whether a record was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
