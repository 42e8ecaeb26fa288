package availability

import (
	"fmt"
	"sort"
	"time"

	"skillbridge/models"
)

// span is a half-open interval [start, end) of minutes on the weekly UTC
// timeline, where 0 is Sunday 00:00 UTC and the week holds 10080 minutes.
type span struct {
	start int
	end   int
}

// weekAnchor returns the most recent Sunday at 00:00 UTC relative to ref.
// All timezone offsets are evaluated against this reference week, so a
// recurring slot is projected with the offsets (including DST) in force now.
func weekAnchor(ref time.Time) time.Time {
	utc := ref.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day()-int(utc.Weekday()), 0, 0, 0, 0, time.UTC)
}

// slotSpans projects one slot onto the weekly UTC timeline. The slot's local
// wall times are interpreted in its own timezone on the slot's day of the
// anchor week; the conversion shifts the window across day-of-week boundaries
// when the offset demands it. A window crossing the Saturday/Sunday seam is
// split into two spans.
func slotSpans(slot models.AvailabilitySlot, anchor time.Time) ([]span, error) {
	loc, err := time.LoadLocation(slot.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, slot.Timezone)
	}

	startMin, err := ParseClock(slot.StartTime)
	if err != nil {
		return nil, err
	}
	endMin, err := ParseClock(slot.EndTime)
	if err != nil {
		return nil, err
	}
	if endMin <= startMin {
		return nil, fmt.Errorf("%w: start %q is not before end %q", ErrInvalidTimeFormat, slot.StartTime, slot.EndTime)
	}

	local := time.Date(anchor.Year(), anchor.Month(), anchor.Day()+slot.DayOfWeek,
		startMin/60, startMin%60, 0, 0, loc)
	utc := local.UTC()

	start := int(utc.Weekday())*minutesPerDay + utc.Hour()*60 + utc.Minute()
	end := start + (endMin - startMin)
	if end <= minutesPerWeek {
		return []span{{start: start, end: end}}, nil
	}
	return []span{
		{start: start, end: minutesPerWeek},
		{start: 0, end: end - minutesPerWeek},
	}, nil
}

// userSpans projects every active slot of one user onto the weekly timeline
// and merges the result, so a user's own overlapping declarations never count
// twice against another user.
func userSpans(slots []models.AvailabilitySlot, anchor time.Time) ([]span, error) {
	var spans []span
	for _, slot := range slots {
		if !slot.IsActive {
			continue
		}
		projected, err := slotSpans(slot, anchor)
		if err != nil {
			return nil, err
		}
		spans = append(spans, projected...)
	}
	return mergeSpans(spans), nil
}

// mergeSpans unions overlapping or touching spans. Input order is arbitrary;
// output is sorted by start.
func mergeSpans(spans []span) []span {
	if len(spans) == 0 {
		return nil
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	merged := []span{spans[0]}
	for _, sp := range spans[1:] {
		last := &merged[len(merged)-1]
		if sp.start <= last.end {
			if sp.end > last.end {
				last.end = sp.end
			}
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

// intersectSpans computes the pairwise intersections of two merged span sets
// with a linear sweep. Both inputs must be sorted and non-overlapping.
func intersectSpans(a, b []span) []span {
	var out []span
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		start := a[i].start
		if b[j].start > start {
			start = b[j].start
		}
		end := a[i].end
		if b[j].end < end {
			end = b[j].end
		}
		if start < end {
			out = append(out, span{start: start, end: end})
		}
		if a[i].end < b[j].end {
			i++
		} else {
			j++
		}
	}
	return out
}

// spanContains reports whether the weekly-timeline position pos falls inside
// any of the given spans. Intervals are half-open, so a span's end minute is
// not covered.
func spanContains(spans []span, pos int) bool {
	for _, sp := range spans {
		if pos >= sp.start && pos < sp.end {
			return true
		}
	}
	return false
}
