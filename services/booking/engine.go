package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	bookingRepo "github.com/Immortal-romantic/hotel-booking-api/database/repository/booking"
	roomRepo "github.com/Immortal-romantic/hotel-booking-api/database/repository/room"
	"github.com/Immortal-romantic/hotel-booking-api/models"
)

// Engine coordinates booking creation and deletion so the overlap check
// and the insert are atomic per room: two concurrent requests for the same
// room observe each other's effects serially.
type Engine interface {
	CreateBooking(ctx context.Context, roomID int64, dateStart, dateEnd models.Date) (*models.Booking, error)
	ListBookings(ctx context.Context, roomID int64) ([]models.Booking, error)
	DeleteBooking(ctx context.Context, id int64) error
	// DeleteRoom removes a room and all of its bookings as a unit,
	// returning the number of bookings removed.
	DeleteRoom(ctx context.Context, roomID int64) (int64, error)
}

// Invalidator drops derived data (the cached rooms list) after a write
// changes what it would contain.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// DefaultEngine is the Engine implementation over the room and booking
// stores, guarded by a per-room keyed mutex.
type DefaultEngine struct {
	RoomRepo     roomRepo.RoomRepository
	BookingRepo  bookingRepo.BookingRepository
	Availability AvailabilityEngine
	// Today supplies the calendar date used by the past-date rule.
	// Defaults to the current UTC date.
	Today func() models.Date
	// Cache may be nil.
	Cache  Invalidator
	Logger *zap.Logger

	locks *roomLocker
}

// NewDefaultEngine wires an engine over the given stores.
func NewDefaultEngine(rooms roomRepo.RoomRepository, bookings bookingRepo.BookingRepository, logger *zap.Logger) *DefaultEngine {
	return &DefaultEngine{
		RoomRepo:     rooms,
		BookingRepo:  bookings,
		Availability: &DefaultAvailabilityEngine{Repo: bookings},
		Today:        func() models.Date { return models.DateOf(time.Now()) },
		Logger:       logger,
		locks:        newRoomLocker(),
	}
}

// CreateBooking resolves the room, then runs validate / overlap-check /
// insert under that room's lock. If any step fails nothing is persisted.
func (e *DefaultEngine) CreateBooking(ctx context.Context, roomID int64, dateStart, dateEnd models.Date) (*models.Booking, error) {
	e.locks.Lock(roomID)
	defer e.locks.Unlock(roomID)

	// Resolved under the lock so a concurrent cascade delete of the room
	// cannot slip between the check and the insert.
	room, err := e.RoomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	if err := ValidateDates(dateStart, dateEnd, e.Today()); err != nil {
		return nil, err
	}

	available, err := e.Availability.IsAvailable(ctx, roomID, dateStart, dateEnd, 0)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrDatesUnavailable
	}

	created, err := e.BookingRepo.Create(ctx, roomID, dateStart, dateEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	e.invalidate(ctx)
	e.Logger.Info("booking created",
		zap.Int64("booking_id", created.ID),
		zap.Int64("room_id", roomID),
		zap.String("date_start", dateStart.String()),
		zap.String("date_end", dateEnd.String()),
	)
	return created, nil
}

// ListBookings returns the room's bookings ordered by start date.
func (e *DefaultEngine) ListBookings(ctx context.Context, roomID int64) ([]models.Booking, error) {
	room, err := e.RoomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return e.BookingRepo.ListByRoom(ctx, roomID)
}

// DeleteBooking removes a single booking. Deletion has no overlap
// implications but still serializes against creations on the same room.
func (e *DefaultEngine) DeleteBooking(ctx context.Context, id int64) error {
	b, err := e.BookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrBookingNotFound
	}

	e.locks.Lock(b.RoomID)
	defer e.locks.Unlock(b.RoomID)

	removed, err := e.BookingRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrBookingNotFound
	}

	e.invalidate(ctx)
	e.Logger.Info("booking deleted", zap.Int64("booking_id", id), zap.Int64("room_id", b.RoomID))
	return nil
}

// DeleteRoom removes the room and cascades to its bookings under the
// room's lock, so the cascade cannot interleave with a concurrent create.
func (e *DefaultEngine) DeleteRoom(ctx context.Context, roomID int64) (int64, error) {
	e.locks.Lock(roomID)
	defer e.locks.Unlock(roomID)

	removed, err := e.RoomRepo.Delete(ctx, roomID)
	if err != nil {
		return 0, err
	}
	if !removed {
		return 0, ErrRoomNotFound
	}

	count, err := e.BookingRepo.DeleteByRoom(ctx, roomID)
	if err != nil {
		return 0, fmt.Errorf("failed to cascade delete bookings for room %d: %w", roomID, err)
	}

	e.invalidate(ctx)
	e.Logger.Info("room deleted", zap.Int64("room_id", roomID), zap.Int64("bookings_removed", count))
	return count, nil
}

func (e *DefaultEngine) invalidate(ctx context.Context) {
	if e.Cache != nil {
		e.Cache.Invalidate(ctx)
	}
}
