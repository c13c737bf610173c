package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfs2006/affiliate-simulator/internal/sim"
)

func eventByID(t *testing.T, id string) sim.Event {
	t.Helper()
	for _, e := range Events() {
		if e.ID == id {
			return e
		}
	}
	t.Fatalf("event %q not in deck", id)
	return sim.Event{}
}

func TestEvents_WeightsPositive(t *testing.T) {
	for _, e := range Events() {
		assert.Greater(t, e.Weight, 0.0, "event %q", e.ID)
		assert.NotEmpty(t, e.Title)
	}
}

func TestViralShort_ScalesWithMultipliers(t *testing.T) {
	s := newState(t)
	s.Multipliers.Audience = 2

	p := eventByID(t, "viral_short").Effect(s, midpoint())

	// Between(800,1600) midpoint 1200, doubled.
	assert.Equal(t, 2400, *p.Audience)
	assert.Equal(t, 250, *p.EmailList)
	assert.Equal(t, 8, *p.Reputation)
}

func TestAlgoDip_FloorsAtZero(t *testing.T) {
	s := newState(t)
	s.Audience = 100
	s.Reputation = 2

	p := eventByID(t, "algo_dip").Effect(s, midpoint())

	assert.Equal(t, 92, *p.Audience)
	assert.Equal(t, 0, *p.Reputation)
}

func TestEquipmentBreak_InsuranceHalvesRepair(t *testing.T) {
	s := newState(t)
	s.Cash = 1000
	e := eventByID(t, "equipment_break")

	plain := e.Effect(s, midpoint())
	// Between(150,400) midpoint is 275.
	assert.Equal(t, 725, *plain.Cash)
	assert.Equal(t, 1, *plain.Modifiers.EnergyCapPenaltyDays)

	s.Inventory = []string{"business_insurance"}
	insured := e.Effect(s, midpoint())
	assert.Equal(t, 1000-137, *insured.Cash)
}

func TestPolicyUpdate_StacksPenaltyDays(t *testing.T) {
	s := newState(t)
	s.Modifiers.AdsPenaltyDays = 2

	p := eventByID(t, "policy_update").Effect(s, midpoint())

	assert.Equal(t, 5, *p.Modifiers.AdsPenaltyDays)
}

func TestTestimonialWave_BundlesCashWithQuarterRevenue(t *testing.T) {
	s := newState(t)

	p := eventByID(t, "testimonial_wave").Effect(s, midpoint())

	require.NotNil(t, p.Finance)
	assert.Equal(t, s.Cash+725, *p.Cash)
	assert.Equal(t, 725, *p.Finance.QuarterRevenue)
}

func TestChargebackStorm_HitsCashAndMRR(t *testing.T) {
	s := newState(t)
	s.Cash = 150
	s.MRR = 100

	p := eventByID(t, "chargeback_storm").Effect(s, midpoint())

	assert.Equal(t, 0, *p.Cash, "cash floors at zero")
	assert.Equal(t, 90, *p.MRR)
}
