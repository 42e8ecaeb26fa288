package availability

import (
	"fmt"
	"time"

	availabilityRepo "skillbridge/database/repository/availability"
	"skillbridge/models"

	"github.com/google/uuid"
)

// AvailabilityService exposes slot management and the schedule queries built
// on top of the overlap engine.
type AvailabilityService interface {
	CreateSlot(req *models.CreateSlotRequest) (*models.AvailabilitySlot, error)
	UpdateSlot(id string, req *models.UpdateSlotRequest) (*models.AvailabilitySlot, error)
	DeleteSlot(id string) error
	GetUserSlots(userID string) ([]models.AvailabilitySlot, error)
	GetOverlap(userID, otherUserID string) ([]models.OverlapWindow, error)
	GetBookableSlots(userID string, dayOfWeek, slotDurationMinutes int) ([]models.BookableSlot, error)
	CheckAvailability(userID string, dayOfWeek int, clock, timezone string) (bool, error)
}

// DefaultAvailabilityService is the concrete implementation over the slot
// repository.
type DefaultAvailabilityService struct {
	Repo   availabilityRepo.SlotRepository
	Engine *OverlapEngine
}

// CreateSlot validates and stores a new availability slot.
func (s *DefaultAvailabilityService) CreateSlot(req *models.CreateSlotRequest) (*models.AvailabilitySlot, error) {
	if err := ValidateSlotFields(*req.DayOfWeek, req.StartTime, req.EndTime, req.Timezone); err != nil {
		return nil, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	now := time.Now().UTC()
	slot := &models.AvailabilitySlot{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		DayOfWeek: *req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Timezone:  req.Timezone,
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(slot); err != nil {
		return nil, fmt.Errorf("failed to create slot: %w", err)
	}
	return slot, nil
}

// UpdateSlot applies a partial update to an existing slot, re-validating the
// resulting declaration.
func (s *DefaultAvailabilityService) UpdateSlot(id string, req *models.UpdateSlotRequest) (*models.AvailabilitySlot, error) {
	slot, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.DayOfWeek != nil {
		slot.DayOfWeek = *req.DayOfWeek
	}
	if req.StartTime != nil {
		slot.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		slot.EndTime = *req.EndTime
	}
	if req.Timezone != nil {
		slot.Timezone = *req.Timezone
	}
	if req.IsActive != nil {
		slot.IsActive = *req.IsActive
	}

	if err := ValidateSlotFields(slot.DayOfWeek, slot.StartTime, slot.EndTime, slot.Timezone); err != nil {
		return nil, err
	}
	slot.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(slot); err != nil {
		return nil, err
	}
	return slot, nil
}

// DeleteSlot removes a slot by id.
func (s *DefaultAvailabilityService) DeleteSlot(id string) error {
	return s.Repo.Delete(id)
}

// GetUserSlots lists every slot a user has declared. An empty list is a
// valid answer for a user who has not set up availability yet.
func (s *DefaultAvailabilityService) GetUserSlots(userID string) ([]models.AvailabilitySlot, error) {
	slots, err := s.Repo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load slots for user %s: %w", userID, err)
	}
	if slots == nil {
		slots = []models.AvailabilitySlot{}
	}
	return slots, nil
}

// GetOverlap computes the overlap windows between two users' schedules,
// rendered in the first user's timezone.
func (s *DefaultAvailabilityService) GetOverlap(userID, otherUserID string) ([]models.OverlapWindow, error) {
	slotsA, err := s.loadUserSlots(userID)
	if err != nil {
		return nil, err
	}
	slotsB, err := s.loadUserSlots(otherUserID)
	if err != nil {
		return nil, err
	}
	return s.Engine.ComputeOverlap(slotsA, slotsB)
}

// GetBookableSlots derives fixed-duration bookable slots from a user's
// availability on one day of the week.
func (s *DefaultAvailabilityService) GetBookableSlots(userID string, dayOfWeek, slotDurationMinutes int) ([]models.BookableSlot, error) {
	slots, err := s.loadUserSlots(userID)
	if err != nil {
		return nil, err
	}
	return s.Engine.PartitionDay(slots, dayOfWeek, slotDurationMinutes)
}

// CheckAvailability reports whether the user is available at the given day
// and time, optionally interpreted in a caller-supplied timezone.
func (s *DefaultAvailabilityService) CheckAvailability(userID string, dayOfWeek int, clock, timezone string) (bool, error) {
	slots, err := s.loadUserSlots(userID)
	if err != nil {
		return false, err
	}
	return s.Engine.IsAvailableAt(slots, dayOfWeek, clock, timezone)
}

// loadUserSlots fetches a user's slots, mapping an empty result to
// ErrUserNotFound for the computations that need a real schedule.
func (s *DefaultAvailabilityService) loadUserSlots(userID string) ([]models.AvailabilitySlot, error) {
	slots, err := s.Repo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load slots for user %s: %w", userID, err)
	}
	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: %s has no availability data", ErrUserNotFound, userID)
	}
	return slots, nil
}
