package booking

import (
	"errors"
	"strings"
)

// Domain errors surfaced by the booking engine. Handlers map them onto
// HTTP status codes.
var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrDatesUnavailable = errors.New("room not available for given dates")
)

// ValidationError carries every violated booking rule so a caller gets
// the complete problem list in one round trip.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Reasons, "; ")
}
