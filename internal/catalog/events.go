package catalog

import "github.com/tfs2006/affiliate-simulator/internal/sim"

// Events returns the weighted random event deck, good cards and bad.
func Events() []sim.Event {
	return []sim.Event{
		{
			ID: "viral_short", Title: "Your Short Goes Viral!", Weight: 1.0,
			Desc: "+ massive audience spike and email subs",
			Effect: func(s sim.GameState, rng sim.RNG) sim.Patch {
				return sim.Patch{
					Audience:   sim.IntPtr(s.Audience + sim.Floor(sim.Between(rng, 800, 1600)*s.Multipliers.Audience)),
					EmailList:  sim.IntPtr(s.EmailList + sim.Floor(sim.Between(rng, 150, 350)*s.Multipliers.Email)),
					Reputation: sim.IntPtr(s.Reputation + 8),
				}
			},
		},
		{
			ID: "algo_dip", Title: "Algorithm Dip", Weight: 1.1,
			Desc: "Traffic tanks temporarily. Oof.",
			Effect: func(s sim.GameState, rng sim.RNG) sim.Patch {
				return sim.Patch{
					Audience:   sim.IntPtr(pos(sim.Floor(float64(s.Audience) * 0.92))),
					Reputation: sim.IntPtr(pos(s.Reputation - 4)),
				}
			},
		},
		{
			ID: "sponsor_ping", Title: "Brand Reaches Out", Weight: 0.8,
			Desc: "Sponsored slot for your next video.",
			Effect: func(s sim.GameState, rng sim.RNG) sim.Patch {
				return sim.Patch{
					Cash:    sim.IntPtr(s.Cash + sim.Floor(sim.Between(rng, 150, 450)*s.Multipliers.Revenue)),
					Finance: &sim.FinancePatch{QuarterRevenue: sim.IntPtr(s.Finance.QuarterRevenue + sim.Floor(sim.Between(rng, 150, 450)))},
				}
			},
		},
		{
			ID: "ad_account_flag", Title: "Ad Account Flagged", Weight: 0.6,
			Desc: "Compliance hiccup - pay a review fee.",
			Effect: func(s sim.GameState, rng sim.RNG) sim.Patch {
				return sim.Patch{
					Cash:       sim.IntPtr(pos(s.Cash - 250)),
					Reputation: sim.IntPtr(pos(s.Reputation - 6)),
				}
			},
		},
		{
			ID: "testimonial_wave", Title: "Wave of Testimonials", Weight: 0.7,
			Desc: "+rep and conversions",
			Effect: func(s sim.GameState, rng sim.RNG) sim.Patch {
				return sim.Patch{
					Reputation:  sim.IntPtr(s.Reputation + 10),
					Conversions: sim.IntPtr(s.Conversions + 25),
					Cash:        sim.IntPtr(s.Cash + 25*29),
					Finance:     &sim.FinancePatch{QuarterRevenue: sim.IntPtr(s.Finance.QuarterRevenue + 25*29)},
				}
			},
		},
		{
			ID: "platform_outage", Title: "Platform Outage", Weight: 0.7,
			Desc: "Your scheduler fails. Missed posts.",
			Effect: func(s sim.GameState, rng sim.RNG) sim.Patch {
				return sim.Patch{
					Audience:   sim.IntPtr(pos(s.Audience - 120)),
					Reputation: sim.IntPtr(pos(s.Reputation - 3)),
				}
			},
		},
		{
			ID: "seo_win", Title: "SEO Win", Weight: 0.9,
			Desc: "Evergreen guide hits page one.",
			Effect: func(s sim.GameState, rng sim.RNG) sim.Patch {
				return sim.Patch{
					Audience:   sim.IntPtr(s.Audience + 400),
					MRR:        sim.IntPtr(s.MRR + 60),
					Reputation: sim.IntPtr(s.Reputation + 5),
				}
			},
		},
		{
			ID: "refund_wave", Title: "Refund Wave", Weight: 0.6,
			Desc: "A portion of recent sales are refunded.",
			Effect: func(s sim.GameState, rng sim.RNG) sim.Patch {
				return sim.Patch{
					Cash:       sim.IntPtr(pos(sim.Floor(float64(s.Cash) * 0.9))),
					Reputation: sim.IntPtr(pos(s.Reputation - 2)),
				}
			},
		},
		{
			ID: "chargeback_storm", Title: "Chargeback Storm", Weight: 0.4,
			Desc: "Banks claw back disputed payments; subscription churn spikes.",
			Effect: func(s sim.GameState, rng sim.RNG) sim.Patch {
				return sim.Patch{
					Cash:       sim.IntPtr(pos(s.Cash - 200)),
					MRR:        sim.IntPtr(pos(sim.Floor(float64(s.MRR) * 0.9))),
					Reputation: sim.IntPtr(pos(s.Reputation - 6)),
				}
			},
		},
		{
			ID: "equipment_break", Title: "Camera/PC Breakdown", Weight: 0.7,
			Desc: "Unexpected repair bill.",
			Effect: func(s sim.GameState, rng sim.RNG) sim.Patch {
				base := sim.Floor(sim.Between(rng, 150, 400))
				cost := base
				if s.HasItem("business_insurance") {
					cost = sim.Floor(float64(base) * 0.5)
				}
				return sim.Patch{
					Cash:      sim.IntPtr(pos(s.Cash - cost)),
					Modifiers: &sim.ModifiersPatch{EnergyCapPenaltyDays: sim.IntPtr(s.Modifiers.EnergyCapPenaltyDays + 1)},
				}
			},
		},
		{
			ID: "policy_update", Title: "Platform Policy Update", Weight: 0.7,
			Desc: "Ad performance down for a bit.",
			Effect: func(s sim.GameState, rng sim.RNG) sim.Patch {
				return sim.Patch{
					Modifiers: &sim.ModifiersPatch{AdsPenaltyDays: sim.IntPtr(s.Modifiers.AdsPenaltyDays + 3)},
				}
			},
		},
	}
}
