package availability

import (
	"sort"

	"skillbridge/models"
)

// FindOverlapMatches scans a candidate pool for users whose weekly
// availability overlaps the target's by at least minOverlapMinutes in total
// (inclusive). The pool is assumed to be bounded by the caller. The target
// itself is skipped if present, and candidates whose stored slots fail
// validation are dropped rather than failing the whole scan. Results are
// ranked by total overlap descending, ties broken by user ID ascending.
func (e *OverlapEngine) FindOverlapMatches(target models.UserSlots, pool []models.UserSlots, minOverlapMinutes int) ([]models.MatchCandidate, error) {
	// Validate the target's own data up front so a broken target slot
	// surfaces as an error instead of silently emptying the result.
	if _, err := userSpans(target.Slots, e.anchor()); err != nil {
		return nil, err
	}

	matches := make([]models.MatchCandidate, 0, len(pool))
	for _, candidate := range pool {
		if candidate.UserID == target.UserID {
			continue
		}

		windows, err := e.ComputeOverlap(target.Slots, candidate.Slots)
		if err != nil {
			continue
		}

		total := 0
		for _, w := range windows {
			total += w.DurationMinutes
		}
		if total >= minOverlapMinutes {
			matches = append(matches, models.MatchCandidate{
				UserID:              candidate.UserID,
				TotalOverlapMinutes: total,
				OverlapWindows:      windows,
			})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].TotalOverlapMinutes != matches[j].TotalOverlapMinutes {
			return matches[i].TotalOverlapMinutes > matches[j].TotalOverlapMinutes
		}
		return matches[i].UserID < matches[j].UserID
	})
	return matches, nil
}
