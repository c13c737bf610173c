package game

import "errors"

// Domain outcomes reported to callers as errors. These are preconditions the
// engine enforces at the boundary; the sim pipeline itself never rejects.
var (
	ErrUnknownAction   = errors.New("unknown action")
	ErrUnknownItem     = errors.New("unknown shop item")
	ErrNotEnoughEnergy = errors.New("not enough energy")
	ErrNotEnoughCash   = errors.New("not enough cash")
	ErrAlreadyOwned    = errors.New("item already owned")
	ErrWheelCooldown   = errors.New("wheel is cooling down")
)
