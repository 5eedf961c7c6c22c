// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"github.com/Immortal-romantic/hotel-booking-api/models"
)

// BookingRepository provides access to stored booking records. Lookups
// return (nil, nil) when the booking does not exist.
type BookingRepository interface {
	// Create inserts a new booking, assigning its id and creation timestamp.
	Create(ctx context.Context, roomID int64, dateStart, dateEnd models.Date) (*models.Booking, error)
	// GetByID returns a booking by its numeric id.
	GetByID(ctx context.Context, id int64) (*models.Booking, error)
	// ListByRoom returns all bookings for a room ordered by start date.
	ListByRoom(ctx context.Context, roomID int64) ([]models.Booking, error)
	// CountByRoom returns the number of bookings referencing a room.
	CountByRoom(ctx context.Context, roomID int64) (int64, error)
	// Delete removes a booking. It reports whether a record was removed.
	Delete(ctx context.Context, id int64) (bool, error)
	// DeleteByRoom removes all bookings for a room and returns how many
	// were removed. Used by the room cascade delete.
	DeleteByRoom(ctx context.Context, roomID int64) (int64, error)
}
