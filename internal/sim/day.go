package sim

import (
	"math"

	"github.com/tfs2006/affiliate-simulator/internal/config"
)

// DayResult reports everything observable about one day advance.
type DayResult struct {
	State           GameState
	Event           *Event
	NewAchievements []string
	BillLog         []string
}

// AdvanceDay runs the end-of-day pipeline in fixed order: passive income,
// debt interest, energy reset, day/streak bookkeeping, random event, bill
// settlement, modifier decay, goal re-evaluation, achievement re-evaluation.
// No step can abort the pipeline; every sub-computation is total.
func AdvanceDay(s GameState, content Content, bal config.Balance, rng RNG) DayResult {
	next := s.Clone()

	// 1. Passive income from MRR.
	passive := float64(next.MRR/30) * next.Multipliers.Revenue
	next.Cash = Floor(float64(next.Cash) + passive)

	// 2. Daily interest on outstanding debt.
	if next.Debt > 0 {
		next.Debt += Floor(float64(next.Debt) * next.Finance.APR / 365)
	}

	// 3. Energy reset under the active cap.
	if next.Modifiers.EnergyCapPenaltyDays > 0 {
		next.Energy = bal.PenaltyEnergyCap
	} else {
		next.Energy = bal.EnergyCap
	}

	// 4. Day, streak, wheel cooldown, fatigue reset.
	next.Day++
	next.Streak++
	if next.WheelCooldown > 0 {
		next.WheelCooldown--
	}
	next.ActionCounts = map[string]int{}

	// 5. Weighted random event.
	var triggered *Event
	if Chance(rng, bal.EventChance) {
		if card := drawEvent(content.Events, rng); card != nil {
			patch := card.Effect(next, rng)
			if next.HasItem("legal_shield") && (card.ID == "refund_wave" || card.ID == "chargeback_storm") {
				patch = softenLoss(next, patch, bal.ShieldCushion)
			}
			next = next.Apply(patch)
			triggered = card
		}
	}

	// 6. Bills, payroll, quarterly taxes.
	settled := SettleBills(next, bal)
	next = settled.State

	// 7. Modifier decay.
	next.Modifiers.AdsPenaltyDays = maxInt(0, next.Modifiers.AdsPenaltyDays-1)
	next.Modifiers.EnergyCapPenaltyDays = maxInt(0, next.Modifiers.EnergyCapPenaltyDays-1)
	next.Modifiers.VendorDiscountDays = maxInt(0, next.Modifiers.VendorDiscountDays-1)

	// 8. Goals retested against the settled state.
	for i := range next.Goals {
		for _, spec := range content.Goals {
			if spec.ID == next.Goals[i].ID {
				next.Goals[i].Done = spec.When(next)
			}
		}
	}

	// 9. Achievements: append-only union of newly true predicates.
	var earned []string
	for _, a := range content.Achievements {
		if a.When(next) && !next.HasAchievement(a.ID) {
			next.Achievements = append(next.Achievements, a.ID)
			earned = append(earned, a.ID)
		}
	}

	return DayResult{State: next, Event: triggered, NewAchievements: earned, BillLog: settled.Log}
}

// drawEvent expands the deck into a discrete pool by repeating each card
// round(weight*10) times, then samples uniformly. The replication keeps the
// original rounding behavior rather than exact proportional weighting.
func drawEvent(deck []Event, rng RNG) *Event {
	var pool []int
	for i, e := range deck {
		n := int(math.Round(e.Weight * 10))
		for j := 0; j < n; j++ {
			pool = append(pool, i)
		}
	}
	if len(pool) == 0 {
		return nil
	}
	card := deck[pool[Intn(rng, len(pool))]]
	return &card
}

// softenLoss scales the negative cash/MRR movement of a patch toward zero by
// the shield cushion, relative to the pre-event state.
func softenLoss(s GameState, p Patch, cushion float64) Patch {
	if p.Cash != nil {
		softened := Floor(float64(s.Cash) + float64(*p.Cash-s.Cash)*cushion)
		p.Cash = IntPtr(softened)
	}
	if p.MRR != nil {
		softened := Floor(float64(s.MRR) + float64(*p.MRR-s.MRR)*cushion)
		p.MRR = IntPtr(softened)
	}
	return p
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
