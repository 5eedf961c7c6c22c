package models

import "time"

// Booking represents a confirmed reservation of one room for a half-open
// date range [DateStart, DateEnd). The room reference is immutable after
// creation; a booking cannot outlive its room.
type Booking struct {
	ID        int64     `json:"booking_id"` // Numeric identifier assigned by the store
	RoomID    int64     `json:"room_id"`    // Room being booked
	DateStart Date      `json:"date_start"` // Check-in date (inclusive)
	DateEnd   Date      `json:"date_end"`   // Check-out date (exclusive)
	CreatedAt time.Time `json:"created_at"` // Set once on insert
}

// Overlaps reports whether the booking's range shares at least one night
// with [start, end). Ranges that only touch (one ends exactly where the
// other starts) do not overlap.
func (b Booking) Overlaps(start, end Date) bool {
	return b.DateStart.Before(end) && start.Before(b.DateEnd)
}

// DurationDays returns the number of nights booked.
func (b Booking) DurationDays() int {
	return b.DateStart.DaysUntil(b.DateEnd)
}

// BookingListItem is a bookings list entry.
type BookingListItem struct {
	BookingID    int64  `json:"booking_id"`
	DateStart    string `json:"date_start"`
	DateEnd      string `json:"date_end"`
	DurationDays int    `json:"duration_days"`
}
