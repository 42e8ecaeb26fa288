package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	availabilityRepo "skillbridge/database/repository/availability"
	"skillbridge/models"

	"github.com/go-redis/redis/v8"
)

// matchCacheTTL bounds how stale a cached match scan may be.
const matchCacheTTL = 5 * time.Minute

// MatchingService defines the cross-user match scan.
type MatchingService interface {
	FindMatches(targetUserID string, minOverlapMinutes, limit int) ([]models.MatchCandidate, error)
}

// DefaultMatchingService runs the scan over the slot repository and caches
// results in Redis, since match lists change slowly relative to how often
// dashboards request them.
type DefaultMatchingService struct {
	Repo        availabilityRepo.SlotRepository
	Engine      *OverlapEngine
	CacheClient *redis.Client
}

// FindMatches returns candidates whose availability overlaps the target's by
// at least minOverlapMinutes, ranked by total overlap. The candidate pool is
// capped at limit users.
func (s *DefaultMatchingService) FindMatches(targetUserID string, minOverlapMinutes, limit int) ([]models.MatchCandidate, error) {
	ctx := context.Background()
	cacheKey := fmt.Sprintf("match:%s:%d:%d", targetUserID, minOverlapMinutes, limit)

	if s.CacheClient != nil {
		cached, err := s.CacheClient.Get(ctx, cacheKey).Result()
		if err == nil && cached != "" {
			var matches []models.MatchCandidate
			if err := json.Unmarshal([]byte(cached), &matches); err == nil {
				return matches, nil
			}
			// A corrupt entry falls through to recomputation.
		}
	}

	targetSlots, err := s.Repo.GetByUser(targetUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load slots for user %s: %w", targetUserID, err)
	}
	if len(targetSlots) == 0 {
		return nil, fmt.Errorf("%w: %s has no availability data", ErrUserNotFound, targetUserID)
	}
	target := models.UserSlots{UserID: targetUserID, Slots: targetSlots}

	candidateIDs, err := s.Repo.ListUserIDs(targetUserID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	slotsByUser, err := s.Repo.GetByUsers(candidateIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate slots: %w", err)
	}

	pool := make([]models.UserSlots, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		pool = append(pool, models.UserSlots{UserID: id, Slots: slotsByUser[id]})
	}

	matches, err := s.Engine.FindOverlapMatches(target, pool, minOverlapMinutes)
	if err != nil {
		return nil, err
	}

	if s.CacheClient != nil {
		if payload, err := json.Marshal(matches); err == nil {
			s.CacheClient.Set(ctx, cacheKey, payload, matchCacheTTL)
		}
	}
	return matches, nil
}
