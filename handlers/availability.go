package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"skillbridge/config"
	"skillbridge/models"
	"skillbridge/services/availability"
	"skillbridge/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Bookable slot durations accepted by the slots endpoint, in minutes.
const (
	minSlotDuration = 15
	maxSlotDuration = 480
)

// Match threshold bounds, in minutes.
const (
	minOverlapFloor   = 15
	minOverlapCeiling = 1440
)

// AvailabilityHandler exposes the availability engine over HTTP. Request
// bodies and query parameters are validated here; the services receive only
// well-formed input.
type AvailabilityHandler struct {
	Service  availability.AvailabilityService
	Matching availability.MatchingService
}

// NewAvailabilityHandler wires the handler to its services.
func NewAvailabilityHandler(svc availability.AvailabilityService, matching availability.MatchingService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Matching: matching}
}

// CreateSlotHandler declares a new availability slot.
func (h *AvailabilityHandler) CreateSlotHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid slot creation request", zap.Error(err))
		utils.RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request: "+err.Error())
		return
	}

	slot, err := h.Service.CreateSlot(&req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusCreated, slot)
}

// GetUserSlotsHandler lists all slots declared by a user.
func (h *AvailabilityHandler) GetUserSlotsHandler(c *gin.Context) {
	slots, err := h.Service.GetUserSlots(c.Param("userId"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, slots)
}

// UpdateSlotHandler edits an existing slot.
func (h *AvailabilityHandler) UpdateSlotHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid slot update request", zap.Error(err))
		utils.RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request: "+err.Error())
		return
	}

	slot, err := h.Service.UpdateSlot(c.Param("id"), &req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, slot)
}

// DeleteSlotHandler removes a slot.
func (h *AvailabilityHandler) DeleteSlotHandler(c *gin.Context) {
	if err := h.Service.DeleteSlot(c.Param("id")); err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, gin.H{"deleted": true})
}

// GetOverlapHandler computes overlap windows between two users' schedules.
func (h *AvailabilityHandler) GetOverlapHandler(c *gin.Context) {
	windows, err := h.Service.GetOverlap(c.Param("userId"), c.Param("otherUserId"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, gin.H{"overlapWindows": windows})
}

// FindMatchesHandler scans the candidate pool for users whose schedules
// overlap the target's by at least minOverlapMinutes.
func (h *AvailabilityHandler) FindMatchesHandler(c *gin.Context) {
	minOverlap, ok := h.intQuery(c, "minOverlapMinutes",
		config.AppConfig.DefaultMinOverlapMinutes, minOverlapFloor, minOverlapCeiling)
	if !ok {
		return
	}
	limit, ok := h.intQuery(c, "limit",
		config.AppConfig.DefaultMatchLimit, 1, config.AppConfig.MaxMatchLimit)
	if !ok {
		return
	}

	matches, err := h.Matching.FindMatches(c.Param("userId"), minOverlap, limit)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, gin.H{"matches": matches})
}

// GetBookableSlotsHandler derives fixed-duration bookable slots for one day.
func (h *AvailabilityHandler) GetBookableSlotsHandler(c *gin.Context) {
	day, ok := h.dayQuery(c)
	if !ok {
		return
	}
	duration, ok := h.intQuery(c, "duration", 60, minSlotDuration, maxSlotDuration)
	if !ok {
		return
	}

	slots, err := h.Service.GetBookableSlots(c.Param("userId"), day, duration)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, gin.H{"slots": slots})
}

// CheckAvailabilityHandler answers whether a user is available at a given
// day and time, optionally interpreted in the caller's timezone.
func (h *AvailabilityHandler) CheckAvailabilityHandler(c *gin.Context) {
	day, ok := h.dayQuery(c)
	if !ok {
		return
	}
	clock := c.Query("time")
	if clock == "" {
		utils.RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "time query parameter is required")
		return
	}

	available, err := h.Service.CheckAvailability(c.Param("userId"), day, clock, c.Query("timezone"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	utils.RespondOK(c, http.StatusOK, gin.H{"available": available})
}

// dayQuery parses the mandatory dayOfWeek query parameter (0–6, Sunday=0).
func (h *AvailabilityHandler) dayQuery(c *gin.Context) (int, bool) {
	raw := c.Query("dayOfWeek")
	day, err := strconv.Atoi(raw)
	if err != nil || day < 0 || day > 6 {
		utils.RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"dayOfWeek must be an integer between 0 (Sunday) and 6 (Saturday)")
		return 0, false
	}
	return day, true
}

// intQuery parses an optional integer query parameter with a default and an
// inclusive range.
func (h *AvailabilityHandler) intQuery(c *gin.Context, name string, def, min, max int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < min || value > max {
		utils.RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR",
			name+" must be an integer between "+strconv.Itoa(min)+" and "+strconv.Itoa(max))
		return 0, false
	}
	return value, true
}

// respondServiceError maps engine sentinels onto envelope codes.
func (h *AvailabilityHandler) respondServiceError(c *gin.Context, err error) {
	logger := getLogger(c)
	switch {
	case errors.Is(err, availability.ErrInvalidTimeFormat):
		utils.RespondError(c, http.StatusBadRequest, "INVALID_TIME_FORMAT", err.Error())
	case errors.Is(err, availability.ErrInvalidTimezone):
		utils.RespondError(c, http.StatusBadRequest, "INVALID_TIMEZONE", err.Error())
	case errors.Is(err, availability.ErrUserNotFound):
		utils.RespondError(c, http.StatusNotFound, "USER_NOT_FOUND", err.Error())
	case errors.Is(err, mongo.ErrNoDocuments):
		utils.RespondError(c, http.StatusNotFound, "SLOT_NOT_FOUND", "No slot with that id")
	default:
		logger.Error("Availability request failed", zap.Error(err))
		utils.RespondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process request")
	}
}
