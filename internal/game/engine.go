// Package game hosts the stateful engine that serializes transitions over a
// single save, layering preconditions, logging, and telemetry on top of the
// pure pipeline in internal/sim.
package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tfs2006/affiliate-simulator/internal/catalog"
	"github.com/tfs2006/affiliate-simulator/internal/config"
	"github.com/tfs2006/affiliate-simulator/internal/sim"
	"github.com/tfs2006/affiliate-simulator/internal/telemetry"
)

// Engine owns the live game state. All transitions go through the mutex, so
// concurrent HTTP handlers and the auto-day ticker never interleave partial
// updates.
type Engine struct {
	mu      sync.Mutex
	bal     config.Balance
	content sim.Content
	clock   Clock
	rng     sim.RNG
	events  telemetry.Repository
	state   sim.GameState
}

// Options configures a new engine. Zero-value fields fall back to production
// defaults: real clock, system RNG, shipped catalog, in-memory telemetry.
type Options struct {
	Balance   config.Balance
	Content   *sim.Content
	Clock     Clock
	RNG       sim.RNG
	Telemetry telemetry.Repository
	Initial   *sim.GameState
}

func New(opts Options) *Engine {
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.RNG == nil {
		opts.RNG = sim.SystemRNG{}
	}
	if opts.Telemetry == nil {
		opts.Telemetry = telemetry.NewMemoryRepository()
	}
	if opts.Balance == (config.Balance{}) {
		opts.Balance = config.Default()
	}
	if opts.Content == nil {
		c := catalog.New(opts.Balance)
		opts.Content = &c
	}
	e := &Engine{
		bal:     opts.Balance,
		content: *opts.Content,
		clock:   opts.Clock,
		rng:     opts.RNG,
		events:  opts.Telemetry,
	}
	if opts.Initial != nil {
		e.state = opts.Initial.Clone()
	} else {
		e.state = sim.NewGameState(e.clock.Now())
	}
	return e
}

// State returns a snapshot the caller may keep; it never aliases the live
// state.
func (e *Engine) State() sim.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// Replace swaps in a loaded save wholesale.
func (e *Engine) Replace(s sim.GameState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = s.Clone()
}

// Reset starts a fresh day-1 game.
func (e *Engine) Reset() sim.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = sim.NewGameState(e.clock.Now())
	_ = e.events.RecordEvent(telemetry.EventGameReset, nil)
	return e.state.Clone()
}

// DoAction applies one action by id. The energy precondition is enforced
// here; the sim layer assumes it holds.
func (e *Engine) DoAction(id string) (st sim.GameState, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.recoverTo(&err)

	a, ok := e.content.ActionByID(id)
	if !ok {
		return sim.GameState{}, fmt.Errorf("%w: %q", ErrUnknownAction, id)
	}
	if e.state.Energy < a.Cost {
		return sim.GameState{}, ErrNotEnoughEnergy
	}

	next := sim.ApplyAction(e.state, a, e.rng)
	next = sim.AppendLog(next, e.clock.Now(), sim.LogAction, a.Label, e.bal.LogCap)
	e.state = next
	_ = e.events.RecordEvent(telemetry.EventActionApplied, telemetry.EventMetadata{
		"action": a.ID,
		"day":    next.Day,
		"cash":   next.Cash,
	})
	return next.Clone(), nil
}

// EndDay advances the simulation one day and folds the results into the
// activity log.
func (e *Engine) EndDay() (res sim.DayResult, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.recoverTo(&err)

	res = sim.AdvanceDay(e.state, e.content, e.bal, e.rng)
	now := e.clock.Now()
	next := res.State

	for _, line := range res.BillLog {
		next = sim.AppendLog(next, now, sim.LogBill, line, e.bal.LogCap)
	}
	if res.Event != nil {
		next = sim.AppendLog(next, now, sim.LogEvent, res.Event.Title+": "+res.Event.Desc, e.bal.LogCap)
		_ = e.events.RecordEvent(telemetry.EventCardDrawn, telemetry.EventMetadata{
			"card": res.Event.ID,
			"day":  next.Day,
		})
	}
	for _, id := range res.NewAchievements {
		next = sim.AppendLog(next, now, sim.LogInfo, "Achievement unlocked: "+catalog.AchievementLabel(id), e.bal.LogCap)
		_ = e.events.RecordEvent(telemetry.EventAchievementEarned, telemetry.EventMetadata{"achievement": id})
	}
	next = sim.AppendLog(next, now, sim.LogInfo, fmt.Sprintf("Day %d begins.", next.Day), e.bal.LogCap)

	e.state = next
	res.State = next
	_ = e.events.RecordEvent(telemetry.EventDayAdvanced, telemetry.EventMetadata{
		"day":  next.Day,
		"cash": next.Cash,
		"debt": next.Debt,
	})
	if len(res.BillLog) > 0 {
		_ = e.events.RecordEvent(telemetry.EventBillsSettled, telemetry.EventMetadata{
			"day":   next.Day,
			"lines": len(res.BillLog),
		})
	}
	return res, nil
}

// Spin runs the reward wheel once and arms its cooldown.
func (e *Engine) Spin() (st sim.GameState, label string, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.recoverTo(&err)

	if e.state.WheelCooldown > 0 {
		return sim.GameState{}, "", ErrWheelCooldown
	}
	next, picked := sim.SpinWheel(e.state, e.content.Wheel, e.bal, e.rng)
	next = sim.AppendLog(next, e.clock.Now(), sim.LogInfo, "Wheel: "+picked, e.bal.LogCap)
	e.state = next
	_ = e.events.RecordEvent(telemetry.EventWheelSpun, telemetry.EventMetadata{"slice": picked, "day": next.Day})
	return next.Clone(), picked, nil
}

// Buy purchases a shop item once. Cash and ownership preconditions are
// enforced here.
func (e *Engine) Buy(id string) (st sim.GameState, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.recoverTo(&err)

	item, ok := e.content.ShopItemByID(id)
	if !ok {
		return sim.GameState{}, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	if e.state.HasItem(item.ID) {
		return sim.GameState{}, ErrAlreadyOwned
	}
	if e.state.Cash < item.Cost {
		return sim.GameState{}, ErrNotEnoughCash
	}

	next := sim.Purchase(e.state, item)
	next = sim.AppendLog(next, e.clock.Now(), sim.LogBuy, "Purchased "+item.Name, e.bal.LogCap)
	e.state = next
	_ = e.events.RecordEvent(telemetry.EventItemPurchased, telemetry.EventMetadata{"item": item.ID, "cost": item.Cost})
	return next.Clone(), nil
}

// SetAutoDay updates the auto-advance settings, clamping the interval to the
// configured bounds.
func (e *Engine) SetAutoDay(enabled bool, ms int) sim.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ms < e.bal.AutoDayMinMS {
		ms = e.bal.AutoDayMinMS
	}
	if ms > e.bal.AutoDayMaxMS {
		ms = e.bal.AutoDayMaxMS
	}
	e.state.Settings.AutoDay = enabled
	e.state.Settings.AutoMS = ms
	return e.state.Clone()
}

// RunAutoDay blocks, advancing the day on the save's own cadence whenever
// auto-day is enabled, until the context is cancelled. Interval changes take
// effect on the next tick.
func (e *Engine) RunAutoDay(ctx context.Context) {
	for {
		s := e.State()
		wait := time.Duration(s.Settings.AutoMS) * time.Millisecond
		if min := time.Duration(e.bal.AutoDayMinMS) * time.Millisecond; wait < min {
			wait = min
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
		if !e.State().Settings.AutoDay {
			continue
		}
		_, _ = e.EndDay()
	}
}

// recoverTo converts a panic inside a catalog effect into an error without
// committing any state, keeping one bad card from taking down the engine.
func (e *Engine) recoverTo(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("engine: transition panicked: %v", r)
	}
}
