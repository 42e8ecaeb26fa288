package availability

import (
	"fmt"

	"skillbridge/models"
)

// PartitionDay cuts a user's availability windows for one day of the week
// into consecutive bookable slots of exactly slotDurationMinutes. Windows
// are merged first so overlapping declarations do not produce duplicate
// slots, and a trailing remainder shorter than the full duration is dropped:
// a 70-minute window with 30-minute slots yields two slots, not three.
// Times stay in the user's own local clock; no timezone conversion applies
// to a single-user view.
func (e *OverlapEngine) PartitionDay(slots []models.AvailabilitySlot, dayOfWeek, slotDurationMinutes int) ([]models.BookableSlot, error) {
	var windows []span
	for _, slot := range slots {
		if !slot.IsActive || slot.DayOfWeek != dayOfWeek {
			continue
		}
		start, err := ParseClock(slot.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := ParseClock(slot.EndTime)
		if err != nil {
			return nil, err
		}
		if end <= start {
			return nil, fmt.Errorf("%w: start %q is not before end %q", ErrInvalidTimeFormat, slot.StartTime, slot.EndTime)
		}
		windows = append(windows, span{start: start, end: end})
	}

	bookable := make([]models.BookableSlot, 0)
	for _, window := range mergeSpans(windows) {
		for at := window.start; at+slotDurationMinutes <= window.end; at += slotDurationMinutes {
			bookable = append(bookable, models.BookableSlot{
				DayOfWeek:       dayOfWeek,
				StartTime:       FormatClock(at),
				EndTime:         FormatClock(at + slotDurationMinutes),
				DurationMinutes: slotDurationMinutes,
			})
		}
	}
	return bookable, nil
}
