package sim

import "math"

// Action is one energy-costing move. Effect is a pure function of the state
// and an RNG, returning a patch of absolute values. Negotiation-style actions
// may return a zero patch when their preconditions fail or a success roll
// misses.
type Action struct {
	ID     string
	Label  string
	Help   string
	Cost   float64
	Effect func(s GameState, rng RNG) Patch
}

// ApplyAction runs an action against the state: effect, merge, energy
// deduction scaled by the energy multiplier, same-day repetition count.
// Checking that the action is affordable is the caller's responsibility; the
// engine does not re-check.
func ApplyAction(s GameState, a Action, rng RNG) GameState {
	patch := a.Effect(s, rng)
	next := s.Apply(patch)

	div := next.Multipliers.Energy
	if div == 0 {
		div = 1
	}
	next.Energy = math.Max(0, next.Energy-a.Cost/div)
	next.ActionCounts[a.ID]++
	return next
}
