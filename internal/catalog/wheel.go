package catalog

import "github.com/tfs2006/affiliate-simulator/internal/sim"

// WheelSlices returns the daily wheel rewards. Cash grants count toward
// quarter revenue; the setback never drives cash below zero.
func WheelSlices() []sim.WheelSlice {
	return []sim.WheelSlice{
		{
			Label: "+$250",
			Apply: func(s sim.GameState) sim.Patch {
				return sim.Patch{
					Cash:    sim.IntPtr(s.Cash + 250),
					Finance: &sim.FinancePatch{QuarterRevenue: sim.IntPtr(s.Finance.QuarterRevenue + 250)},
				}
			},
		},
		{
			Label: "+$500",
			Apply: func(s sim.GameState) sim.Patch {
				return sim.Patch{
					Cash:    sim.IntPtr(s.Cash + 500),
					Finance: &sim.FinancePatch{QuarterRevenue: sim.IntPtr(s.Finance.QuarterRevenue + 500)},
				}
			},
		},
		{
			Label: "+150 Audience",
			Apply: func(s sim.GameState) sim.Patch {
				return sim.Patch{Audience: sim.IntPtr(s.Audience + 150)}
			},
		},
		{
			Label: "+100 Emails",
			Apply: func(s sim.GameState) sim.Patch {
				return sim.Patch{EmailList: sim.IntPtr(s.EmailList + 100)}
			},
		},
		{
			Label: "+10 Rep",
			Apply: func(s sim.GameState) sim.Patch {
				return sim.Patch{Reputation: sim.IntPtr(s.Reputation + 10)}
			},
		},
		{
			Label: "Nothing",
			Apply: func(s sim.GameState) sim.Patch { return sim.Patch{} },
		},
		{
			Label: "Setback: -$200",
			Apply: func(s sim.GameState) sim.Patch {
				return sim.Patch{Cash: sim.IntPtr(pos(s.Cash - 200))}
			},
		},
	}
}
