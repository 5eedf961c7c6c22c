package booking

import (
	"context"
	"fmt"

	bookingRepo "github.com/Immortal-romantic/hotel-booking-api/database/repository/booking"
	"github.com/Immortal-romantic/hotel-booking-api/models"
)

// AvailabilityEngine decides whether a room is free for a candidate range.
type AvailabilityEngine interface {
	// IsAvailable reports whether no existing booking for the room
	// overlaps [dateStart, dateEnd) under half-open semantics. A non-zero
	// excludeBookingID removes that booking from consideration, so an
	// existing booking can be re-validated against everything but itself.
	IsAvailable(ctx context.Context, roomID int64, dateStart, dateEnd models.Date, excludeBookingID int64) (bool, error)
}

// DefaultAvailabilityEngine reads the booking store; it has no side effects.
type DefaultAvailabilityEngine struct {
	Repo bookingRepo.BookingRepository
}

func (e *DefaultAvailabilityEngine) IsAvailable(ctx context.Context, roomID int64, dateStart, dateEnd models.Date, excludeBookingID int64) (bool, error) {
	existing, err := e.Repo.ListByRoom(ctx, roomID)
	if err != nil {
		return false, fmt.Errorf("failed to read bookings for room %d: %w", roomID, err)
	}

	for _, b := range existing {
		if excludeBookingID != 0 && b.ID == excludeBookingID {
			continue
		}
		if b.Overlaps(dateStart, dateEnd) {
			return false, nil
		}
	}
	return true, nil
}
