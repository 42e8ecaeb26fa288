package availability

import (
	"fmt"
	"sort"
	"time"

	"skillbridge/models"
)

// OverlapEngine holds the pure schedule computations. It keeps no state
// beyond an injectable clock, so a single instance serves all requests.
type OverlapEngine struct {
	Now func() time.Time
}

// NewOverlapEngine returns an engine running on the real clock.
func NewOverlapEngine() *OverlapEngine {
	return &OverlapEngine{Now: time.Now}
}

func (e *OverlapEngine) anchor() time.Time {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	return weekAnchor(now())
}

// ComputeOverlap intersects two users' weekly availability. Inactive slots
// are dropped here, each user's own overlapping declarations are merged
// first, and every slot is normalized to UTC before comparison so windows
// declared in different timezones (and shifting across day-of-week
// boundaries) intersect correctly. Resulting windows are expressed in the
// first user's local timezone, sorted by day of week then start time. No
// overlap yields an empty result, not an error.
func (e *OverlapEngine) ComputeOverlap(slotsA, slotsB []models.AvailabilitySlot) ([]models.OverlapWindow, error) {
	anchor := e.anchor()

	spansA, err := userSpans(slotsA, anchor)
	if err != nil {
		return nil, err
	}
	spansB, err := userSpans(slotsB, anchor)
	if err != nil {
		return nil, err
	}

	overlaps := intersectSpans(spansA, spansB)
	if len(overlaps) == 0 {
		return []models.OverlapWindow{}, nil
	}

	loc, err := displayLocation(slotsA)
	if err != nil {
		return nil, err
	}

	var windows []models.OverlapWindow
	for _, sp := range overlaps {
		windows = append(windows, spanWindows(sp, loc, anchor)...)
	}

	sort.Slice(windows, func(i, j int) bool {
		if windows[i].DayOfWeek != windows[j].DayOfWeek {
			return windows[i].DayOfWeek < windows[j].DayOfWeek
		}
		return windows[i].StartTime < windows[j].StartTime
	})
	return windows, nil
}

// displayLocation picks the timezone overlap windows are rendered in: the
// timezone of the first active slot in the first user's set. With no active
// slots there is nothing to intersect, so UTC is a harmless fallback.
func displayLocation(slots []models.AvailabilitySlot) (*time.Location, error) {
	for _, slot := range slots {
		if !slot.IsActive {
			continue
		}
		loc, err := time.LoadLocation(slot.Timezone)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, slot.Timezone)
		}
		return loc, nil
	}
	return time.UTC, nil
}

// spanWindows converts one weekly-UTC span back into local display windows,
// splitting at local midnight so each window stays inside one day-of-week
// bucket. A window closing exactly at midnight renders its end as "24:00".
func spanWindows(sp span, loc *time.Location, anchor time.Time) []models.OverlapWindow {
	local := anchor.Add(time.Duration(sp.start) * time.Minute).In(loc)
	day := int(local.Weekday())
	offset := local.Hour()*60 + local.Minute()
	remaining := sp.end - sp.start

	var windows []models.OverlapWindow
	for remaining > 0 {
		take := minutesPerDay - offset
		if take > remaining {
			take = remaining
		}
		windows = append(windows, models.OverlapWindow{
			DayOfWeek:       day,
			StartTime:       FormatClock(offset),
			EndTime:         FormatClock(offset + take),
			DurationMinutes: take,
		})
		remaining -= take
		day = (day + 1) % 7
		offset = 0
	}
	return windows
}
