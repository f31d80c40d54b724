package recommend

import (
	"sort"
	"sync"

	"trip-server/models"
)

// DEFAULT_LIMIT caps a recommendation when the caller passes no cutoff.
const DEFAULT_LIMIT = 20

// Engine scores the facility catalog against a user profile and returns
// a ranked candidate slice. Ranking is two-stage: a stable descending
// sort by total attribute score cuts the catalog to the limit, then the
// slice is re-sorted by NPS descending for final display order (the
// second stage can be disabled).
type Engine struct {
	mu         sync.RWMutex
	facilities []models.Facility
	npsReorder bool
}

// NewEngine constructs an Engine over the given catalog.
func NewEngine(facilities []models.Facility, npsReorder bool) *Engine {
	return &Engine{facilities: facilities, npsReorder: npsReorder}
}

// SetFacilities swaps in a freshly loaded catalog.
func (e *Engine) SetFacilities(facilities []models.Facility) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.facilities = facilities
}

// Facility looks up a catalog row by identity.
func (e *Engine) Facility(prefecture, name string) (models.Facility, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, f := range e.facilities {
		if f.Prefecture == prefecture && f.Name == name {
			return f, true
		}
	}
	return models.Facility{}, false
}

// Facilities returns the current catalog.
func (e *Engine) Facilities() []models.Facility {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]models.Facility, len(e.facilities))
	copy(out, e.facilities)
	return out
}

// Recommend ranks the catalog for the profile and returns at most limit
// entries. An empty catalog yields an empty slice. Ties on total score
// preserve catalog order.
func (e *Engine) Recommend(profile models.UserProfile, limit int) []models.ScoredFacility {
	e.mu.RLock()
	facilities := e.facilities
	npsReorder := e.npsReorder
	e.mu.RUnlock()

	if len(facilities) == 0 {
		return []models.ScoredFacility{}
	}
	if limit <= 0 {
		limit = DEFAULT_LIMIT
	}

	scored := make([]models.ScoredFacility, 0, len(facilities))
	for _, f := range facilities {
		if profile.Region != "" && !matchesRegion(profile.Region, f.Prefecture) {
			continue
		}
		scored = append(scored, models.ScoredFacility{
			Facility:   f,
			TotalScore: totalScore(f, profile),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].TotalScore > scored[j].TotalScore
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}

	if npsReorder {
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].NPS > scored[j].NPS
		})
	}
	return scored
}

// totalScore sums the category scores for every populated profile field.
// Unknown sub-attributes contribute 0.
func totalScore(f models.Facility, profile models.UserProfile) float64 {
	fields := []struct {
		category string
		value    string
	}{
		{models.CategoryAge, profile.Age},
		{models.CategoryGender, profile.Gender},
		{models.CategoryStayDays, profile.StayDays},
		{models.CategoryCompanion, profile.Companion},
		{models.CategoryPurpose, profile.Purpose},
	}

	total := 0.0
	for _, field := range fields {
		if field.value == "" {
			continue
		}
		for _, sub := range expandAttribute(field.category, field.value) {
			total += f.Score(field.category, sub)
		}
	}
	return total
}
