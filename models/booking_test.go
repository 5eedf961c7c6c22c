package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingOverlaps(t *testing.T) {
	base := NewDate(2026, time.October, 10)
	booked := Booking{DateStart: base, DateEnd: base.AddDays(3)} // [10, 13)

	tests := []struct {
		name     string
		start    Date
		end      Date
		overlaps bool
	}{
		{"identical range", base, base.AddDays(3), true},
		{"contained", base.AddDays(1), base.AddDays(2), true},
		{"containing", base.AddDays(-1), base.AddDays(4), true},
		{"overlaps tail", base.AddDays(2), base.AddDays(5), true},
		{"overlaps head", base.AddDays(-2), base.AddDays(1), true},
		{"back-to-back after", base.AddDays(3), base.AddDays(5), false},
		{"back-to-back before", base.AddDays(-2), base, false},
		{"disjoint after", base.AddDays(4), base.AddDays(6), false},
		{"disjoint before", base.AddDays(-3), base.AddDays(-1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, booked.Overlaps(tt.start, tt.end))
		})
	}
}

func TestBookingDurationDays(t *testing.T) {
	base := NewDate(2026, time.October, 10)
	b := Booking{DateStart: base, DateEnd: base.AddDays(4)}
	assert.Equal(t, 4, b.DurationDays())
}
