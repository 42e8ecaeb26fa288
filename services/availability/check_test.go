package availability

import (
	"testing"

	"skillbridge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAvailableAtHalfOpenInterval(t *testing.T) {
	e := testEngine()
	slots := []models.AvailabilitySlot{slot("u", 1, "09:00", "11:00", "UTC")}

	cases := []struct {
		name  string
		clock string
		want  bool
	}{
		{"start is covered", "09:00", true},
		{"inside", "10:30", true},
		{"end is not covered", "11:00", false},
		{"before", "08:59", false},
		{"after", "11:01", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := e.IsAvailableAt(slots, 1, tc.clock, "")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsAvailableAtWrongDay(t *testing.T) {
	e := testEngine()
	slots := []models.AvailabilitySlot{slot("u", 1, "09:00", "11:00", "UTC")}

	got, err := e.IsAvailableAt(slots, 2, "10:00", "")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestIsAvailableAtConvertsQueryTimezone(t *testing.T) {
	e := testEngine()

	// Slot: Monday 09:00-11:00 UTC. Queried at Monday 04:30 in UTC-5, which
	// is Monday 09:30 UTC.
	slots := []models.AvailabilitySlot{slot("u", 1, "09:00", "11:00", "UTC")}

	got, err := e.IsAvailableAt(slots, 1, "04:30", "Etc/GMT+5")
	require.NoError(t, err)
	assert.True(t, got)
}

func TestIsAvailableAtQueryCrossesDayBoundary(t *testing.T) {
	e := testEngine()

	// Slot: Tuesday 04:00-04:30 UTC. Queried at Monday 23:15 in UTC-5, which
	// is Tuesday 04:15 UTC.
	slots := []models.AvailabilitySlot{slot("u", 2, "04:00", "04:30", "UTC")}

	got, err := e.IsAvailableAt(slots, 1, "23:15", "Etc/GMT+5")
	require.NoError(t, err)
	assert.True(t, got)
}

func TestIsAvailableAtIgnoresInactive(t *testing.T) {
	e := testEngine()

	inactive := slot("u", 1, "09:00", "11:00", "UTC")
	inactive.IsActive = false

	got, err := e.IsAvailableAt([]models.AvailabilitySlot{inactive}, 1, "10:00", "")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestIsAvailableAtInvalidInput(t *testing.T) {
	e := testEngine()
	slots := []models.AvailabilitySlot{slot("u", 1, "09:00", "11:00", "UTC")}

	_, err := e.IsAvailableAt(slots, 1, "10:60", "")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = e.IsAvailableAt(slots, 1, "10:00", "Not/AZone")
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}
