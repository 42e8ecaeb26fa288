package availability

import (
	"fmt"
	"time"

	"skillbridge/models"
)

// IsAvailableAt reports whether any active slot covers the given day of week
// and "HH:MM" time. With an empty timezone the time is read in each slot's
// own local clock. With a timezone it is converted onto the weekly UTC
// timeline first, so a query in one timezone lands correctly inside a slot
// declared in another, even when the conversion crosses a day boundary.
// Intervals are half-open: a slot ending at 11:00 does not cover 11:00.
func (e *OverlapEngine) IsAvailableAt(slots []models.AvailabilitySlot, dayOfWeek int, clock, timezone string) (bool, error) {
	queryMin, err := ParseClock(clock)
	if err != nil {
		return false, err
	}

	if timezone == "" {
		for _, slot := range slots {
			if !slot.IsActive || slot.DayOfWeek != dayOfWeek {
				continue
			}
			start, err := ParseClock(slot.StartTime)
			if err != nil {
				return false, err
			}
			end, err := ParseClock(slot.EndTime)
			if err != nil {
				return false, err
			}
			if queryMin >= start && queryMin < end {
				return true, nil
			}
		}
		return false, nil
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidTimezone, timezone)
	}

	anchor := e.anchor()
	local := time.Date(anchor.Year(), anchor.Month(), anchor.Day()+dayOfWeek,
		queryMin/60, queryMin%60, 0, 0, loc)
	utc := local.UTC()
	pos := int(utc.Weekday())*minutesPerDay + utc.Hour()*60 + utc.Minute()

	spans, err := userSpans(slots, anchor)
	if err != nil {
		return false, err
	}
	return spanContains(spans, pos), nil
}
