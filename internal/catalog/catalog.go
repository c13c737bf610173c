// Package catalog defines the fixed content the engine is parameterized
// over: actions, the random event deck, shop items, wheel slices, goals, and
// achievements. The engine never hard-codes any of these; swapping a catalog
// entry never touches pipeline logic.
package catalog

import (
	"github.com/tfs2006/affiliate-simulator/internal/config"
	"github.com/tfs2006/affiliate-simulator/internal/sim"
)

// New builds the full shipped content set for a balance configuration.
func New(bal config.Balance) sim.Content {
	return sim.Content{
		Actions:      Actions(bal),
		Events:       Events(),
		Wheel:        WheelSlices(),
		Shop:         ShopItems(),
		Goals:        Goals(),
		Achievements: Achievements(),
	}
}

// Goals returns the live predicates behind the three fixed goals.
func Goals() []sim.GoalSpec {
	return []sim.GoalSpec{
		{ID: "g1", When: func(s sim.GameState) bool { return s.Cash >= 1000 }},
		{ID: "g2", When: func(s sim.GameState) bool { return s.Audience >= 1000 }},
		{ID: "g3", When: func(s sim.GameState) bool { return s.EmailList >= 500 }},
	}
}

// Achievements returns the full achievement list.
func Achievements() []sim.Achievement {
	return []sim.Achievement{
		{ID: "ach_cash_1k", Label: "Four Figures", When: func(s sim.GameState) bool { return s.Cash >= 1000 }},
		{ID: "ach_aud_1k", Label: "First 1,000 Fans", When: func(s sim.GameState) bool { return s.Audience >= 1000 }},
		{ID: "ach_email_500", Label: "Email Engine", When: func(s sim.GameState) bool { return s.EmailList >= 500 }},
		{ID: "ach_rep_50", Label: "Trusted Voice", When: func(s sim.GameState) bool { return s.Reputation >= 50 }},
		{ID: "ach_mrr_500", Label: "Sleep Money", When: func(s sim.GameState) bool { return s.MRR >= 500 }},
		{ID: "ach_debt_free", Label: "Debt Free", When: func(s sim.GameState) bool { return s.Debt == 0 && s.Day > 1 }},
	}
}

// AchievementLabel resolves an achievement id for display.
func AchievementLabel(id string) string {
	for _, a := range Achievements() {
		if a.ID == id {
			return a.Label
		}
	}
	return id
}
