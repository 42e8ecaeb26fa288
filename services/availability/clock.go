package availability

import (
	"fmt"
	"regexp"
)

const (
	minutesPerDay  = 24 * 60
	minutesPerWeek = 7 * minutesPerDay
)

// clockPattern accepts 24-hour "HH:MM" between 00:00 and 23:59.
var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ParseClock converts an "HH:MM" string into minutes since midnight.
func ParseClock(value string) (int, error) {
	if !clockPattern.MatchString(value) {
		return 0, fmt.Errorf("%w: %q is not a valid HH:MM time", ErrInvalidTimeFormat, value)
	}
	hours := int(value[0]-'0')*10 + int(value[1]-'0')
	mins := int(value[3]-'0')*10 + int(value[4]-'0')
	return hours*60 + mins, nil
}

// FormatClock renders minutes since midnight as "HH:MM". A value of exactly
// 1440 renders as "24:00", marking a window that closes at midnight.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
