// File: database/repository/room/room_memory.go
package roomRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Immortal-romantic/hotel-booking-api/models"
)

// memoryRoomRepo is an in-process RoomRepository used when no database is
// configured, and by the test suite.
type memoryRoomRepo struct {
	mu     sync.RWMutex
	rooms  map[int64]models.Room
	nextID int64
}

// NewMemoryRoomRepo constructs an in-memory RoomRepository.
func NewMemoryRoomRepo() RoomRepository {
	return &memoryRoomRepo{rooms: make(map[int64]models.Room)}
}

func (r *memoryRoomRepo) Create(ctx context.Context, description string, price decimal.Decimal) (*models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	room := models.Room{
		ID:          r.nextID,
		Description: description,
		Price:       price,
		CreatedAt:   time.Now().UTC(),
	}
	r.rooms[room.ID] = room
	return &room, nil
}

func (r *memoryRoomRepo) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[id]
	if !ok {
		return nil, nil
	}
	return &room, nil
}

func (r *memoryRoomRepo) List(ctx context.Context, sortBy, order string) ([]models.Room, error) {
	r.mu.RLock()
	rooms := make([]models.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		rooms = append(rooms, room)
	}
	r.mu.RUnlock()

	less := func(a, b models.Room) bool {
		switch sortBy {
		case models.SortByPrice:
			if !a.Price.Equal(b.Price) {
				return a.Price.LessThan(b.Price)
			}
		default:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
		}
		return a.ID < b.ID
	}
	sort.Slice(rooms, func(i, j int) bool {
		a, b := rooms[i], rooms[j]
		if order == models.OrderDesc {
			a, b = b, a
		}
		return less(a, b)
	})
	return rooms, nil
}

func (r *memoryRoomRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[id]; !ok {
		return false, nil
	}
	delete(r.rooms, id)
	return true, nil
}
