package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfs2006/affiliate-simulator/internal/config"
)

func quietContent() Content {
	return Content{
		Goals: []GoalSpec{
			{ID: "g1", When: func(s GameState) bool { return s.Cash >= 1000 }},
		},
		Achievements: []Achievement{
			{ID: "ach_cash_1k", Label: "Four Figures", When: func(s GameState) bool { return s.Cash >= 1000 }},
		},
	}
}

// noEvent makes the daily event roll always miss.
func noEvent() RNG { return &SeqRNG{Seq: []float64{0.99}} }

func TestAdvanceDay_Bookkeeping(t *testing.T) {
	s := NewGameState(time.Now())
	s.ActionCounts["shortform"] = 3
	s.WheelCooldown = 2

	res := AdvanceDay(s, quietContent(), config.Default(), noEvent())

	assert.Equal(t, 2, res.State.Day)
	assert.Equal(t, 1, res.State.Streak)
	assert.Equal(t, 1, res.State.WheelCooldown)
	assert.Empty(t, res.State.ActionCounts, "fatigue resets overnight")
	assert.Equal(t, 100.0, res.State.Energy)
	assert.Nil(t, res.Event)
}

func TestAdvanceDay_PassiveIncomeFromMRR(t *testing.T) {
	s := NewGameState(time.Now())
	s.MRR = 300
	s.Multipliers.Revenue = 2

	res := AdvanceDay(s, quietContent(), config.Default(), noEvent())

	// floor(300/30) * 2 = 20 on top of the starting $500.
	assert.Equal(t, 520, res.State.Cash)
}

func TestAdvanceDay_SubThresholdMRRPaysNothing(t *testing.T) {
	s := NewGameState(time.Now())
	s.MRR = 29

	res := AdvanceDay(s, quietContent(), config.Default(), noEvent())

	assert.Equal(t, 500, res.State.Cash)
}

func TestAdvanceDay_DebtAccruesDailyInterest(t *testing.T) {
	s := NewGameState(time.Now())
	s.Debt = 10000

	res := AdvanceDay(s, quietContent(), config.Default(), noEvent())

	// floor(10000 * 0.18 / 365) = 4.
	assert.Equal(t, 10004, res.State.Debt)
}

func TestAdvanceDay_EnergyCapPenalty(t *testing.T) {
	s := NewGameState(time.Now())
	s.Modifiers.EnergyCapPenaltyDays = 2

	res := AdvanceDay(s, quietContent(), config.Default(), noEvent())

	assert.Equal(t, 80.0, res.State.Energy)
	assert.Equal(t, 1, res.State.Modifiers.EnergyCapPenaltyDays)

	res = AdvanceDay(res.State, quietContent(), config.Default(), noEvent())
	assert.Equal(t, 80.0, res.State.Energy)
	assert.Equal(t, 0, res.State.Modifiers.EnergyCapPenaltyDays)

	res = AdvanceDay(res.State, quietContent(), config.Default(), noEvent())
	assert.Equal(t, 100.0, res.State.Energy)
}

func TestAdvanceDay_EventTriggersAndApplies(t *testing.T) {
	content := quietContent()
	content.Events = []Event{{
		ID: "windfall", Title: "Windfall", Weight: 1.0,
		Effect: func(s GameState, rng RNG) Patch {
			return Patch{Cash: IntPtr(s.Cash + 100)}
		},
	}}
	s := NewGameState(time.Now())

	// First sample passes the 0.55 gate, second picks from the pool.
	rng := &SeqRNG{Seq: []float64{0.1, 0.0}}
	res := AdvanceDay(s, content, config.Default(), rng)

	require.NotNil(t, res.Event)
	assert.Equal(t, "windfall", res.Event.ID)
	assert.Equal(t, 600, res.State.Cash)
}

func TestAdvanceDay_ShieldSoftensRefundWave(t *testing.T) {
	content := quietContent()
	content.Events = []Event{{
		ID: "refund_wave", Title: "Refund Wave", Weight: 1.0,
		Effect: func(s GameState, rng RNG) Patch {
			return Patch{Cash: IntPtr(Floor(float64(s.Cash) * 0.9))}
		},
	}}
	s := NewGameState(time.Now())
	s.Cash = 1000
	s.Inventory = []string{"legal_shield"}

	rng := &SeqRNG{Seq: []float64{0.1, 0.0}}
	res := AdvanceDay(s, content, config.Default(), rng)

	// Raw loss is $100; the shield cuts it to $70: 1000 - 70 = 930.
	assert.Equal(t, 930, res.State.Cash)
}

func TestAdvanceDay_GoalsAndAchievements(t *testing.T) {
	s := NewGameState(time.Now())
	s.Cash = 2000

	res := AdvanceDay(s, quietContent(), config.Default(), noEvent())

	assert.True(t, res.State.Goals[0].Done)
	assert.Equal(t, []string{"ach_cash_1k"}, res.NewAchievements)
	assert.Equal(t, []string{"ach_cash_1k"}, res.State.Achievements)

	// Already-earned achievements never re-announce.
	res = AdvanceDay(res.State, quietContent(), config.Default(), noEvent())
	assert.Empty(t, res.NewAchievements)
	assert.Equal(t, []string{"ach_cash_1k"}, res.State.Achievements)
}

func TestAdvanceDay_WeeklyBillsLandOnDaySeven(t *testing.T) {
	s := NewGameState(time.Now())
	var res DayResult
	res.State = s

	for i := 0; i < 6; i++ {
		res = AdvanceDay(res.State, quietContent(), config.Default(), noEvent())
		assert.Empty(t, res.BillLog)
	}
	res = AdvanceDay(res.State, quietContent(), config.Default(), noEvent())
	require.Len(t, res.BillLog, 1)
	assert.Contains(t, res.BillLog[0], "Weekly bills")
}

func TestDrawEvent_WeightsExpandThePool(t *testing.T) {
	deck := []Event{
		{ID: "a", Weight: 1.0},
		{ID: "b", Weight: 0.5},
	}
	// Pool is 10 copies of "a" then 5 of "b"; sample 0.9 lands in "b".
	card := drawEvent(deck, &SeqRNG{Seq: []float64{0.9}})
	require.NotNil(t, card)
	assert.Equal(t, "b", card.ID)

	card = drawEvent(deck, &SeqRNG{Seq: []float64{0.0}})
	assert.Equal(t, "a", card.ID)

	assert.Nil(t, drawEvent(nil, neutral()))
}
