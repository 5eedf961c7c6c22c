package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingRepo "github.com/Immortal-romantic/hotel-booking-api/database/repository/booking"
	"github.com/Immortal-romantic/hotel-booking-api/models"
)

func TestIsAvailable(t *testing.T) {
	ctx := context.Background()
	repo := bookingRepo.NewMemoryBookingRepo()
	engine := &DefaultAvailabilityEngine{Repo: repo}

	base := models.NewDate(2026, time.October, 1)
	existing, err := repo.Create(ctx, 1, base, base.AddDays(3)) // [1, 4)
	require.NoError(t, err)

	tests := []struct {
		name      string
		roomID    int64
		start     models.Date
		end       models.Date
		available bool
	}{
		{"overlapping range", 1, base.AddDays(1), base.AddDays(5), false},
		{"identical range", 1, base, base.AddDays(3), false},
		{"touching end", 1, base.AddDays(3), base.AddDays(6), true},
		{"touching start", 1, base.AddDays(-2), base, true},
		{"disjoint", 1, base.AddDays(10), base.AddDays(12), true},
		{"other room unaffected", 2, base, base.AddDays(3), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.IsAvailable(ctx, tt.roomID, tt.start, tt.end, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.available, got)
		})
	}

	t.Run("excluding a booking ignores it", func(t *testing.T) {
		got, err := engine.IsAvailable(ctx, 1, base, base.AddDays(3), existing.ID)
		require.NoError(t, err)
		assert.True(t, got)
	})
}
