package sim

import "github.com/tfs2006/affiliate-simulator/internal/config"

// SpinWheel draws one reward uniformly from the wheel and applies it, then
// arms the cooldown. The cooldown precondition is checked by the caller, not
// here.
func SpinWheel(s GameState, wheel []WheelSlice, bal config.Balance, rng RNG) (GameState, string) {
	pick := wheel[Intn(rng, len(wheel))]
	next := s.Apply(pick.Apply(s))
	next.WheelCooldown = bal.WheelCooldown
	return next, pick.Label
}
