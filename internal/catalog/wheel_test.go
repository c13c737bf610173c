package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWheelSlices_CashGrantsAccrueQuarterRevenue(t *testing.T) {
	s := newState(t)
	slices := WheelSlices()
	require.Len(t, slices, 7)

	p := slices[0].Apply(s)
	assert.Equal(t, s.Cash+250, *p.Cash)
	assert.Equal(t, 250, *p.Finance.QuarterRevenue)
}

func TestWheelSlices_NothingIsANoOp(t *testing.T) {
	s := newState(t)
	for _, sl := range WheelSlices() {
		if sl.Label == "Nothing" {
			assert.True(t, sl.Apply(s).IsZero())
			return
		}
	}
	t.Fatal("wheel has no Nothing slice")
}

func TestWheelSlices_SetbackFloorsAtZero(t *testing.T) {
	s := newState(t)
	s.Cash = 120

	last := WheelSlices()[6]
	p := last.Apply(s)

	assert.Equal(t, 0, *p.Cash)
}
