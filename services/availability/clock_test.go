package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:05", 545, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"9:00", 0, true},
		{"12-30", 0, true},
		{"", 0, true},
		{"noon", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrInvalidTimeFormat, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "09:05", FormatClock(545))
	assert.Equal(t, "23:59", FormatClock(1439))
	// A window closing exactly at midnight renders as 24:00.
	assert.Equal(t, "24:00", FormatClock(1440))
}

func TestValidateSlotFields(t *testing.T) {
	require.NoError(t, ValidateSlotFields(1, "09:00", "10:00", "UTC"))

	assert.ErrorIs(t, ValidateSlotFields(7, "09:00", "10:00", "UTC"), ErrInvalidTimeFormat)
	assert.ErrorIs(t, ValidateSlotFields(-1, "09:00", "10:00", "UTC"), ErrInvalidTimeFormat)
	assert.ErrorIs(t, ValidateSlotFields(1, "09:00", "09:00", "UTC"), ErrInvalidTimeFormat)
	assert.ErrorIs(t, ValidateSlotFields(1, "10:00", "09:00", "UTC"), ErrInvalidTimeFormat)
	assert.ErrorIs(t, ValidateSlotFields(1, "09:00", "10:00", "Narnia/Lamp"), ErrInvalidTimezone)
}
