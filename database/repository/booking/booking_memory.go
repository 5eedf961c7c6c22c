// File: database/repository/booking/booking_memory.go
package bookingRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Immortal-romantic/hotel-booking-api/models"
)

// memoryBookingRepo is an in-process BookingRepository used when no
// database is configured, and by the test suite.
type memoryBookingRepo struct {
	mu       sync.RWMutex
	bookings map[int64]models.Booking
	nextID   int64
}

// NewMemoryBookingRepo constructs an in-memory BookingRepository.
func NewMemoryBookingRepo() BookingRepository {
	return &memoryBookingRepo{bookings: make(map[int64]models.Booking)}
}

func (r *memoryBookingRepo) Create(ctx context.Context, roomID int64, dateStart, dateEnd models.Date) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	booking := models.Booking{
		ID:        r.nextID,
		RoomID:    roomID,
		DateStart: dateStart,
		DateEnd:   dateEnd,
		CreatedAt: time.Now().UTC(),
	}
	r.bookings[booking.ID] = booking
	return &booking, nil
}

func (r *memoryBookingRepo) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	return &booking, nil
}

func (r *memoryBookingRepo) ListByRoom(ctx context.Context, roomID int64) ([]models.Booking, error) {
	r.mu.RLock()
	bookings := make([]models.Booking, 0)
	for _, b := range r.bookings {
		if b.RoomID == roomID {
			bookings = append(bookings, b)
		}
	}
	r.mu.RUnlock()

	sort.Slice(bookings, func(i, j int) bool {
		if !bookings[i].DateStart.Equal(bookings[j].DateStart) {
			return bookings[i].DateStart.Before(bookings[j].DateStart)
		}
		return bookings[i].ID < bookings[j].ID
	})
	return bookings, nil
}

func (r *memoryBookingRepo) CountByRoom(ctx context.Context, roomID int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, b := range r.bookings {
		if b.RoomID == roomID {
			count++
		}
	}
	return count, nil
}

func (r *memoryBookingRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[id]; !ok {
		return false, nil
	}
	delete(r.bookings, id)
	return true, nil
}

func (r *memoryBookingRepo) DeleteByRoom(ctx context.Context, roomID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for id, b := range r.bookings {
		if b.RoomID == roomID {
			delete(r.bookings, id)
			removed++
		}
	}
	return removed, nil
}
