package reservation

import (
	"time"

	"github.com/bistro-systems/table-reserve/internal/httperr"
)

// Reservation times are wall-clock local times with no timezone attached.
// TimeLayout is the wire format for every start/end field.
const TimeLayout = "2006-01-02T15:04:05"

const (
	MinDurationMinutes     = 30
	MaxDurationMinutes     = 300
	DefaultDurationMinutes = 120

	// ClosingHour: no reservation may end after 22:00 on its start date.
	ClosingHour = 22
)

// Overlaps is the single source of truth for interval overlap: [s1,e1) and
// [s2,e2) overlap iff s1 < e2 and s2 < e1. Touching endpoints do not count,
// so a reservation may begin exactly when another ends.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// ClampDuration forces a requested duration into the bookable range. Used by
// the availability query only; the booking transaction rejects out-of-range
// durations instead of silently adjusting them.
func ClampDuration(minutes int) int {
	if minutes < MinDurationMinutes {
		return MinDurationMinutes
	}
	if minutes > MaxDurationMinutes {
		return MaxDurationMinutes
	}
	return minutes
}

// ValidateWindow checks the requested window against the booking rules in a
// fixed order so callers always see the same code for the same input.
func ValidateWindow(start, end, now time.Time) error {
	if !end.After(start) {
		return httperr.ErrBusiness(httperr.CodeEndBeforeStart)
	}
	if start.Before(now) {
		return httperr.ErrBusiness(httperr.CodeStartInPast)
	}

	d := end.Sub(start)
	if d < MinDurationMinutes*time.Minute {
		return httperr.ErrBusiness(httperr.CodeDurationTooShort)
	}
	if d > MaxDurationMinutes*time.Minute {
		return httperr.ErrBusiness(httperr.CodeDurationTooLong)
	}

	closing := time.Date(
		start.Year(), start.Month(), start.Day(),
		ClosingHour, 0, 0, 0,
		start.Location(),
	)
	if end.After(closing) {
		return httperr.ErrBusiness(httperr.CodeEndsAfterClosing)
	}

	return nil
}
