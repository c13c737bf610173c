package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameState_StartingPosition(t *testing.T) {
	s := NewGameState(time.Now())

	assert.Equal(t, 1, s.Day)
	assert.Equal(t, 500, s.Cash)
	assert.Equal(t, 0, s.Debt)
	assert.Equal(t, 100.0, s.Energy)
	require.Len(t, s.Offers, 3)
	assert.True(t, s.Offers[0].Unlocked)
	assert.True(t, s.Offers[1].Unlocked)
	assert.False(t, s.Offers[2].Unlocked, "rebill offer starts locked")
	assert.Equal(t, 0.18, s.Finance.APR)
	assert.Equal(t, 7, s.Bills.DaysUntilWeekly)
	assert.Equal(t, 30, s.Bills.DaysUntilMonthly)
	assert.Equal(t, 90, s.Finance.DaysUntilQuarter)
	require.Len(t, s.Log, 1)
	assert.Len(t, s.Goals, 3)
}

func TestClone_NoAliasing(t *testing.T) {
	s := NewGameState(time.Now())
	c := s.Clone()

	c.Traffic["seo"] = 99
	c.ActionCounts["shortform"] = 5
	c.Offers[0].Unlocked = false
	c.Bills.Weekly[0].Amount = 1

	assert.Equal(t, 1.0, s.Traffic["seo"])
	assert.Equal(t, 0, s.ActionCounts["shortform"])
	assert.True(t, s.Offers[0].Unlocked)
	assert.Equal(t, 120, s.Bills.Weekly[0].Amount)
}

func TestAppendLog_PrependsAndCaps(t *testing.T) {
	s := NewGameState(time.Now())
	now := time.Now()

	for i := 0; i < 5; i++ {
		s = AppendLog(s, now, LogInfo, "entry", 3)
	}

	assert.Len(t, s.Log, 3)
	assert.Equal(t, "entry", s.Log[0].Text)
}

func TestHasItem(t *testing.T) {
	s := NewGameState(time.Now())
	assert.False(t, s.HasItem("bookkeeper"))
	s.Inventory = append(s.Inventory, "bookkeeper")
	assert.True(t, s.HasItem("bookkeeper"))
}

func TestFloor_RoundsTowardNegativeInfinity(t *testing.T) {
	assert.Equal(t, 2, Floor(2.9))
	assert.Equal(t, -3, Floor(-2.1))
	assert.Equal(t, 0, Floor(0.0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.25, Clamp(0.1, 0.25, 0.85))
	assert.Equal(t, 0.85, Clamp(2.0, 0.25, 0.85))
	assert.Equal(t, 0.5, Clamp(0.5, 0.25, 0.85))
}
