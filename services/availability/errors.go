package availability

import "errors"

// Sentinel errors surfaced by the availability engine. Callers match with
// errors.Is and decide the HTTP mapping themselves.
var (
	// ErrInvalidTimeFormat is returned when a time value does not parse as
	// "HH:MM" in the 00:00–23:59 range, or a slot's start is not before its end.
	ErrInvalidTimeFormat = errors.New("invalid time format")

	// ErrInvalidTimezone is returned for an unrecognized IANA timezone name.
	ErrInvalidTimezone = errors.New("invalid timezone")

	// ErrUserNotFound is returned when the target user has no slot data at all.
	// Candidates without data are treated as zero availability instead.
	ErrUserNotFound = errors.New("user not found")
)
