package availability

import (
	"testing"
	"time"

	"skillbridge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEngine returns an engine pinned to a fixed instant (Wednesday,
// 2025-01-15 12:00 UTC) so timezone offsets are deterministic.
func testEngine() *OverlapEngine {
	return &OverlapEngine{
		Now: func() time.Time {
			return time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
		},
	}
}

func slot(userID string, day int, start, end, tz string) models.AvailabilitySlot {
	return models.AvailabilitySlot{
		ID:        userID + "-" + start,
		UserID:    userID,
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
		Timezone:  tz,
		IsActive:  true,
	}
}

func totalMinutes(windows []models.OverlapWindow) int {
	total := 0
	for _, w := range windows {
		total += w.DurationMinutes
	}
	return total
}

func TestComputeOverlapSameTimezone(t *testing.T) {
	e := testEngine()

	a := []models.AvailabilitySlot{slot("a", 1, "09:00", "12:00", "UTC")}
	b := []models.AvailabilitySlot{slot("b", 1, "10:00", "14:00", "UTC")}

	windows, err := e.ComputeOverlap(a, b)
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, 1, windows[0].DayOfWeek)
	assert.Equal(t, "10:00", windows[0].StartTime)
	assert.Equal(t, "12:00", windows[0].EndTime)
	assert.Equal(t, 120, windows[0].DurationMinutes)
}

func TestComputeOverlapAdjacentWindowsDoNotOverlap(t *testing.T) {
	e := testEngine()

	a := []models.AvailabilitySlot{slot("a", 3, "09:00", "10:00", "UTC")}
	b := []models.AvailabilitySlot{slot("b", 3, "10:00", "11:00", "UTC")}

	windows, err := e.ComputeOverlap(a, b)
	require.NoError(t, err)
	assert.Empty(t, windows)
}

func TestComputeOverlapCrossesDayOfWeekUnderConversion(t *testing.T) {
	e := testEngine()

	// Monday 23:00-23:59 at UTC-5 is Tuesday 04:00-04:59 UTC.
	a := []models.AvailabilitySlot{slot("a", 1, "23:00", "23:59", "Etc/GMT+5")}
	b := []models.AvailabilitySlot{slot("b", 2, "04:00", "04:30", "UTC")}

	windows, err := e.ComputeOverlap(a, b)
	require.NoError(t, err)
	require.Len(t, windows, 1)

	// Rendered in user A's timezone: Monday 23:00-23:30.
	assert.Equal(t, 1, windows[0].DayOfWeek)
	assert.Equal(t, "23:00", windows[0].StartTime)
	assert.Equal(t, "23:30", windows[0].EndTime)
	assert.Equal(t, 30, windows[0].DurationMinutes)
}

func TestComputeOverlapSymmetry(t *testing.T) {
	e := testEngine()

	a := []models.AvailabilitySlot{
		slot("a", 1, "09:00", "12:00", "UTC"),
		slot("a", 4, "18:00", "21:00", "UTC"),
	}
	b := []models.AvailabilitySlot{
		slot("b", 1, "11:00", "13:00", "UTC"),
		slot("b", 4, "17:30", "19:00", "UTC"),
	}

	ab, err := e.ComputeOverlap(a, b)
	require.NoError(t, err)
	ba, err := e.ComputeOverlap(b, a)
	require.NoError(t, err)

	// Same display timezone on both sides, so the windows match exactly.
	assert.Equal(t, ab, ba)
}

func TestComputeOverlapSymmetryAcrossTimezones(t *testing.T) {
	e := testEngine()

	a := []models.AvailabilitySlot{slot("a", 2, "08:00", "11:00", "Etc/GMT-2")}
	b := []models.AvailabilitySlot{slot("b", 2, "07:00", "09:30", "UTC")}

	ab, err := e.ComputeOverlap(a, b)
	require.NoError(t, err)
	ba, err := e.ComputeOverlap(b, a)
	require.NoError(t, err)

	// Display timezones differ, but the matched minutes must agree.
	assert.Equal(t, totalMinutes(ab), totalMinutes(ba))
	assert.Equal(t, len(ab), len(ba))
}

func TestComputeOverlapIdempotent(t *testing.T) {
	e := testEngine()

	a := []models.AvailabilitySlot{
		slot("a", 0, "06:00", "08:30", "Etc/GMT+5"),
		slot("a", 5, "20:00", "23:00", "Etc/GMT+5"),
	}
	b := []models.AvailabilitySlot{
		slot("b", 0, "07:00", "10:00", "UTC"),
		slot("b", 6, "01:00", "04:00", "UTC"),
	}

	first, err := e.ComputeOverlap(a, b)
	require.NoError(t, err)
	second, err := e.ComputeOverlap(a, b)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeOverlapMergesOwnOverlappingSlots(t *testing.T) {
	e := testEngine()

	// User a declares overlapping windows on the same day; they must be
	// unioned before comparison, so the shared hour is not counted twice.
	a := []models.AvailabilitySlot{
		slot("a", 2, "09:00", "11:00", "UTC"),
		slot("a", 2, "10:00", "12:00", "UTC"),
	}
	b := []models.AvailabilitySlot{slot("b", 2, "09:00", "12:00", "UTC")}

	windows, err := e.ComputeOverlap(a, b)
	require.NoError(t, err)
	assert.Equal(t, 180, totalMinutes(windows))
}

func TestComputeOverlapIgnoresInactiveSlots(t *testing.T) {
	e := testEngine()

	inactive := slot("a", 1, "09:00", "12:00", "UTC")
	inactive.IsActive = false

	windows, err := e.ComputeOverlap(
		[]models.AvailabilitySlot{inactive},
		[]models.AvailabilitySlot{slot("b", 1, "09:00", "12:00", "UTC")},
	)
	require.NoError(t, err)
	assert.Empty(t, windows)
}

func TestComputeOverlapSortsByDayThenStart(t *testing.T) {
	e := testEngine()

	a := []models.AvailabilitySlot{
		slot("a", 5, "09:00", "10:00", "UTC"),
		slot("a", 1, "09:00", "10:00", "UTC"),
		slot("a", 1, "14:00", "15:00", "UTC"),
	}
	b := []models.AvailabilitySlot{
		slot("b", 1, "00:00", "23:59", "UTC"),
		slot("b", 5, "00:00", "23:59", "UTC"),
	}

	windows, err := e.ComputeOverlap(a, b)
	require.NoError(t, err)
	require.Len(t, windows, 3)
	assert.Equal(t, []models.OverlapWindow{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00", DurationMinutes: 60},
		{DayOfWeek: 1, StartTime: "14:00", EndTime: "15:00", DurationMinutes: 60},
		{DayOfWeek: 5, StartTime: "09:00", EndTime: "10:00", DurationMinutes: 60},
	}, windows)
}

func TestComputeOverlapRejectsMalformedInput(t *testing.T) {
	e := testEngine()

	badTime := []models.AvailabilitySlot{slot("a", 1, "9am", "10:00", "UTC")}
	_, err := e.ComputeOverlap(badTime, []models.AvailabilitySlot{slot("b", 1, "09:00", "10:00", "UTC")})
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	badZone := []models.AvailabilitySlot{slot("a", 1, "09:00", "10:00", "Mars/Olympus")}
	_, err = e.ComputeOverlap(badZone, []models.AvailabilitySlot{slot("b", 1, "09:00", "10:00", "UTC")})
	assert.ErrorIs(t, err, ErrInvalidTimezone)

	inverted := []models.AvailabilitySlot{slot("a", 1, "12:00", "09:00", "UTC")}
	_, err = e.ComputeOverlap(inverted, []models.AvailabilitySlot{slot("b", 1, "09:00", "10:00", "UTC")})
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestComputeOverlapEmptyInputs(t *testing.T) {
	e := testEngine()

	windows, err := e.ComputeOverlap(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, windows)

	windows, err = e.ComputeOverlap(nil, []models.AvailabilitySlot{slot("b", 1, "09:00", "10:00", "UTC")})
	require.NoError(t, err)
	assert.Empty(t, windows)
}
