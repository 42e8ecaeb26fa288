package availability

import (
	"fmt"
	"time"
)

// ValidateSlotFields checks the caller-supplied pieces of a slot declaration:
// day of week in 0–6 (Sunday=0), both times well-formed "HH:MM" with start
// strictly before end, and a resolvable IANA timezone. Kept separate from the
// computation core so route handlers can reject bad payloads before anything
// is stored.
func ValidateSlotFields(dayOfWeek int, startTime, endTime, timezone string) error {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return fmt.Errorf("%w: day of week %d is outside 0-6", ErrInvalidTimeFormat, dayOfWeek)
	}
	start, err := ParseClock(startTime)
	if err != nil {
		return err
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return err
	}
	if end <= start {
		return fmt.Errorf("%w: start %q is not before end %q", ErrInvalidTimeFormat, startTime, endTime)
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimezone, timezone)
	}
	return nil
}
