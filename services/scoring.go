// Package services provides the pure calculation logic for the event
// planner: vendor scoring, planning checklists, cost estimation and
// quote negotiation.
package services

import (
	"sort"
	"strings"
)

// Scoring weights for vendor ranking.
const (
	RatingWeight   = 2.0
	LocationWeight = 1.5
)

// Vendor is a single row of the vendor dataset.
type Vendor struct {
	ID         string
	Name       string
	City       string
	EventTypes []string
	Rating     float64
	MinBudget  int
	MaxBudget  int
	Contact    string
}

// SupportsEventType reports whether the vendor covers the given event type
// (case-insensitive).
func (v Vendor) SupportsEventType(eventType string) bool {
	for _, et := range v.EventTypes {
		if strings.EqualFold(strings.TrimSpace(et), strings.TrimSpace(eventType)) {
			return true
		}
	}
	return false
}

// ScoredVendor is a vendor with its derived ranking fields. It is
// recomputed per query and never stored.
type ScoredVendor struct {
	Vendor
	LocationBonus float64
	BudgetBonus   float64
	Score         float64
}

// ScoreVendors filters vendors by event type and budget window and ranks
// the survivors by a weighted heuristic: rating dominates, an exact city
// match adds a flat bonus, and closeness of the budget to the vendor's
// budget-window midpoint adds a fit bonus. The fit bonus is intentionally
// unclamped, so it can go negative when the budget sits far from the
// midpoint. An empty result is a valid outcome, not an error.
func ScoreVendors(vendors []Vendor, eventType string, budget int, city string) []ScoredVendor {
	var ranked []ScoredVendor

	for _, v := range vendors {
		if !v.SupportsEventType(eventType) {
			continue
		}
		if budget < v.MinBudget || budget > v.MaxBudget {
			continue
		}

		locBonus := 0.0
		if strings.EqualFold(strings.TrimSpace(v.City), strings.TrimSpace(city)) {
			locBonus = 1.0
		}

		mid := float64(v.MinBudget+v.MaxBudget) / 2
		budgetBonus := 1 - abs(mid-float64(budget))/mid

		ranked = append(ranked, ScoredVendor{
			Vendor:        v,
			LocationBonus: locBonus,
			BudgetBonus:   budgetBonus,
			Score:         v.Rating*RatingWeight + locBonus*LocationWeight + budgetBonus,
		})
	}

	// Stable sort keeps dataset order for equal scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
