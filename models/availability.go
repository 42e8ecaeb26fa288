package models

import "time"

// AvailabilitySlot is a recurring weekly availability window declared by a
// user: one day of the week, a local start/end time and the IANA timezone the
// times are expressed in. Inactive slots are ignored by every computation.
type AvailabilitySlot struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	DayOfWeek int       `bson:"day_of_week" json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	StartTime string    `bson:"start_time" json:"startTime"`  // "HH:MM", 24-hour
	EndTime   string    `bson:"end_time" json:"endTime"`      // "HH:MM", exclusive
	Timezone  string    `bson:"timezone" json:"timezone"`     // IANA identifier, e.g. "Europe/Berlin"
	IsActive  bool      `bson:"is_active" json:"isActive"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserSlots bundles a candidate's identity with their declared slots.
type UserSlots struct {
	UserID string             `json:"userId"`
	Slots  []AvailabilitySlot `json:"slots"`
}

// OverlapWindow is one intersection of two users' availability on a matched
// day, expressed in the first user's local timezone. Derived, never stored.
type OverlapWindow struct {
	DayOfWeek       int    `json:"dayOfWeek"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// MatchCandidate is one ranked result of a match scan.
type MatchCandidate struct {
	UserID              string          `json:"userId"`
	TotalOverlapMinutes int             `json:"totalOverlapMinutes"`
	OverlapWindows      []OverlapWindow `json:"overlapWindows"`
}

// BookableSlot is a discrete slice of a user's availability window, cut to a
// fixed duration for booking display. Derived, never stored.
type BookableSlot struct {
	DayOfWeek       int    `json:"dayOfWeek"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// CreateSlotRequest is the payload for declaring a new availability slot.
type CreateSlotRequest struct {
	UserID    string `json:"userId" binding:"required"`
	DayOfWeek *int   `json:"dayOfWeek" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	Timezone  string `json:"timezone" binding:"required"`
	IsActive  *bool  `json:"isActive"`
}

// UpdateSlotRequest is the payload for editing an existing slot. Nil fields
// keep their stored values.
type UpdateSlotRequest struct {
	DayOfWeek *int    `json:"dayOfWeek"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Timezone  *string `json:"timezone"`
	IsActive  *bool   `json:"isActive"`
}
