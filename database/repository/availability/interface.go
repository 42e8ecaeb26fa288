package availabilityRepo

import "skillbridge/models"

// SlotRepository abstracts persistence of availability slots. The engine only
// reads; writes happen through the owner-facing CRUD endpoints.
type SlotRepository interface {
	Create(slot *models.AvailabilitySlot) error
	Update(slot *models.AvailabilitySlot) error
	Delete(id string) error
	GetByID(id string) (*models.AvailabilitySlot, error)

	// GetByUser returns every slot a user has declared, active or not.
	GetByUser(userID string) ([]models.AvailabilitySlot, error)

	// GetByUsers fetches slots for a set of users in one query, keyed by user
	// ID. Users without any slots are absent from the map.
	GetByUsers(userIDs []string) (map[string][]models.AvailabilitySlot, error)

	// ListUserIDs returns up to limit distinct user IDs holding active slots,
	// excluding the given user. This bounds the match scan's candidate pool.
	ListUserIDs(excludeUserID string, limit int) ([]string, error)
}
