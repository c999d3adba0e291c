package planner

import "github.com/acrispim/vidaplan/internal/models"

// MergeTracking copies per-activity tracking state from an existing
// schedule's activities onto a freshly generated list, matching by ID
// first and by (type, name) second. Each existing activity is consumed at
// most once, in newActivities iteration order. Unmatched new activities
// stay fresh; unmatched old activities are dropped. Regeneration is
// authoritative on the activity set, the merge only rescues state.
// The operation is idempotent.
func MergeTracking(newActivities, existing []models.Activity) []models.Activity {
	used := make([]bool, len(existing))

	for i := range newActivities {
		j := matchByID(newActivities[i], existing, used)
		if j < 0 {
			j = matchByTypeName(newActivities[i], existing, used)
		}
		if j < 0 {
			continue
		}
		used[j] = true
		if existing[j].HasTracking() {
			copyTracking(&newActivities[i], existing[j])
		}
	}

	return newActivities
}

func matchByID(a models.Activity, existing []models.Activity, used []bool) int {
	if a.ID == "" {
		return -1
	}
	for j := range existing {
		if !used[j] && existing[j].ID == a.ID {
			return j
		}
	}
	return -1
}

func matchByTypeName(a models.Activity, existing []models.Activity, used []bool) int {
	for j := range existing {
		if !used[j] && existing[j].Type == a.Type && existing[j].Name == a.Name {
			return j
		}
	}
	return -1
}

// copyTracking deep-copies tracking sub-state so later mutation of the
// merged schedule cannot reach back into the stored one.
func copyTracking(dst *models.Activity, src models.Activity) {
	if src.SimpleTracking != nil {
		tracking := *src.SimpleTracking
		dst.SimpleTracking = &tracking
	}
	if src.WaterTracking != nil {
		tracking := *src.WaterTracking
		dst.WaterTracking = &tracking
	}
	if src.OriginalTime != nil {
		window := *src.OriginalTime
		dst.OriginalTime = &window
		dst.TimeAdjusted = src.TimeAdjusted
	}
}
