package room

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	bookingRepo "github.com/Immortal-romantic/hotel-booking-api/database/repository/booking"
	roomRepo "github.com/Immortal-romantic/hotel-booking-api/database/repository/room"
	"github.com/Immortal-romantic/hotel-booking-api/models"
)

// Service covers room creation and listing. Room deletion lives on the
// booking engine because it cascades into the booking store.
type Service interface {
	CreateRoom(ctx context.Context, description string, price decimal.Decimal) (*models.Room, error)
	ListRooms(ctx context.Context, sortBy, order string) ([]models.RoomListItem, error)
}

// DefaultService is the Service implementation over the stores.
type DefaultService struct {
	RoomRepo    roomRepo.RoomRepository
	BookingRepo bookingRepo.BookingRepository
	// Cache may be nil.
	Cache  *ListCache
	Logger *zap.Logger
}

func (s *DefaultService) CreateRoom(ctx context.Context, description string, price decimal.Decimal) (*models.Room, error) {
	created, err := s.RoomRepo.Create(ctx, description, price)
	if err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	s.Cache.Invalidate(ctx)
	s.Logger.Info("room created",
		zap.Int64("room_id", created.ID),
		zap.String("price", created.Price.StringFixed(2)),
	)
	return created, nil
}

func (s *DefaultService) ListRooms(ctx context.Context, sortBy, order string) ([]models.RoomListItem, error) {
	if items, ok := s.Cache.Get(ctx, sortBy, order); ok {
		return items, nil
	}

	rooms, err := s.RoomRepo.List(ctx, sortBy, order)
	if err != nil {
		return nil, err
	}

	items := make([]models.RoomListItem, 0, len(rooms))
	for _, r := range rooms {
		count, err := s.BookingRepo.CountByRoom(ctx, r.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, models.RoomListItem{
			RoomID:        r.ID,
			Description:   r.Description,
			Price:         r.Price.StringFixed(2),
			CreatedAt:     r.CreatedAt.Format(time.RFC3339),
			BookingsCount: count,
		})
	}

	s.Cache.Set(ctx, sortBy, order, items)
	return items, nil
}
