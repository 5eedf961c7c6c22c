package booking

import "github.com/Immortal-romantic/hotel-booking-api/models"

// ValidateDates checks a candidate booking range against the business
// rules: the range must be non-empty (start strictly before end) and must
// not begin before today. All violated rules are accumulated into a single
// ValidationError rather than failing on the first.
func ValidateDates(dateStart, dateEnd, today models.Date) error {
	var reasons []string

	if !dateStart.Before(dateEnd) {
		reasons = append(reasons, "date_end must be after date_start")
	}
	if dateStart.Before(today) {
		reasons = append(reasons, "cannot book dates in the past")
	}

	if len(reasons) > 0 {
		return &ValidationError{Reasons: reasons}
	}
	return nil
}
