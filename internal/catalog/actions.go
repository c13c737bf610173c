package catalog

import (
	"math"

	"github.com/tfs2006/affiliate-simulator/internal/config"
	"github.com/tfs2006/affiliate-simulator/internal/sim"
)

// Actions returns the full action list. Growth actions sample their traffic
// yield, apply same-day fatigue, and feed the offer revenue engine; the
// financial actions read state and may return an empty patch when their
// preconditions fail or a negotiation roll misses.
func Actions(bal config.Balance) []sim.Action {
	return []sim.Action{
		{
			ID: "shortform", Label: "Post Short-Form Video", Cost: 25,
			Help: "Quick hit for audience growth; can go viral. Repeats in a day lose punch.",
			Effect: func(s sim.GameState, rng sim.RNG) sim.Patch {
				fatigue := math.Max(0.4, 1-0.15*float64(s.ActionCounts["shortform"]))
				baseAud := sim.Floor(sim.Between(rng, 80, 180) * s.Traffic["shortform"] * s.Multipliers.Audience * fatigue)
				emails := sim.Floor(float64(baseAud) * 0.08 * s.Multipliers.Email)
				convs := sim.Floor(float64(baseAud)*0.018 + sim.Between(rng, 0, 4))
				rev := sim.ComputeRevenue(s, sim.Metrics{AudienceDelta: baseAud, EmailsDelta: emails, Conversions: convs}, bal.ShieldCushion, rng)
				return sim.Patch{
					Audience:    sim.IntPtr(s.Audience + baseAud),
					EmailList:   sim.IntPtr(s.EmailList + emails),
					Conversions: sim.IntPtr(s.Conversions + convs),
					Cash:        sim.IntPtr(s.Cash + rev.CashDelta),
					MRR:         sim.IntPtr(s.MRR + rev.MRRDelta),
					Reputation:  sim.IntPtr(s.Reputation + 2),
					Finance:     accrueQuarter(s, rev.CashDelta),
				}
			},
		},
		{
			ID: "longform", Label: "Publish Long-Form Video", Cost: 35,
			Help: "Deeper trust. Slower but sturdier growth.",
			Effect: func(s sim.GameState, rng sim.RNG) sim.Patch {
				fatigue := math.Max(0.5, 1-0.1*float64(s.ActionCounts["longform"]))
				baseAud := sim.Floor(sim.Between(rng, 60, 120) * s.Traffic["longform"] * s.Multipliers.Audience * fatigue)
				emails := sim.Floor(float64(baseAud) * 0.12 * s.Multipliers.Email)
				convs := sim.Floor(float64(baseAud)*0.012 + sim.Between(rng, 0, 3))
				rev := sim.ComputeRevenue(s, sim.Metrics{AudienceDelta: baseAud, EmailsDelta: emails, Conversions: convs}, bal.ShieldCushion, rng)
				upfront := sim.Floor(sim.Between(rng, 5, 15))
				return sim.Patch{
					Audience:   sim.IntPtr(s.Audience + baseAud),
					EmailList:  sim.IntPtr(s.EmailList + emails),
					Reputation: sim.IntPtr(s.Reputation + 5),
					MRR:        sim.IntPtr(s.MRR + rev.MRRDelta + upfront),
					Cash:       sim.IntPtr(s.Cash + rev.CashDelta),
					Finance:    accrueQuarter(s, rev.CashDelta),
				}
			},
		},
		{
			ID: "blog", Label: "Write Blog / SEO Guide", Cost: 30,
			Help: "Compounds with time via search.",
			Effect: func(s sim.GameState, rng sim.RNG) sim.Patch {
				fatigue := math.Max(0.6, 1-0.08*float64(s.ActionCounts["blog"]))
				baseAud := sim.Floor(sim.Between(rng, 40, 90) * s.Traffic["seo"] * s.Multipliers.Audience * fatigue)
				rev := sim.ComputeRevenue(s, sim.Metrics{AudienceDelta: baseAud, Conversions: sim.Floor(float64(baseAud) * 0.008)}, bal.ShieldCushion, rng)
				upfront := sim.Floor(sim.Between(rng, 10, 25))
				return sim.Patch{
					Audience:   sim.IntPtr(s.Audience + baseAud),
					MRR:        sim.IntPtr(s.MRR + rev.MRRDelta + upfront),
					Reputation: sim.IntPtr(s.Reputation + 3),
					Cash:       sim.IntPtr(s.Cash + rev.CashDelta),
					Finance:    accrueQuarter(s, rev.CashDelta),
				}
			},
		},
		{
			ID: "ads", Label: "Run Paid Ads", Cost: 15,
			Help: "Spend cash, buy time. Risk & reward.",
			Effect: func(s sim.GameState, rng sim.RNG) sim.Patch {
				spend := sim.Floor(sim.Between(rng, 80, 200))
				if spend > s.Cash {
					spend = s.Cash
				}
				roi := sim.Between(rng, 0.7, 1.6) * s.Multipliers.Revenue
				if s.Modifiers.AdsPenaltyDays > 0 {
					roi *= 0.7
				}
				revenueRaw := sim.Floor(float64(spend) * roi)
				subs := sim.Floor(float64(spend) * 0.2 * s.Multipliers.Email)
				aud := sim.Floor(float64(spend) * 0.6 * s.Multipliers.Audience)
				rev := sim.ComputeRevenue(s, sim.Metrics{AudienceDelta: aud, EmailsDelta: subs, Conversions: sim.Floor(float64(aud) * 0.01)}, bal.ShieldCushion, rng)
				cashGain := -spend + revenueRaw + rev.CashDelta
				cash := s.Cash + cashGain
				if cash < 0 {
					cash = 0
				}
				return sim.Patch{
					Cash:      sim.IntPtr(cash),
					EmailList: sim.IntPtr(s.EmailList + subs),
					Audience:  sim.IntPtr(s.Audience + aud),
					MRR:       sim.IntPtr(s.MRR + rev.MRRDelta),
					Finance:   accrueQuarter(s, cashGain),
				}
			},
		},
		{
			ID: "email", Label: "Send Email Blast", Cost: 15,
			Help: "Monetize trust. Works better with rep.",
			Effect: func(s sim.GameState, rng sim.RNG) sim.Patch {
				base := float64(s.EmailList) * (0.01 + float64(s.Reputation)/1000)
				convs := sim.Floor(base * sim.Between(rng, 0.8, 1.6))
				rev := sim.ComputeRevenue(s, sim.Metrics{EmailsDelta: s.EmailList, Conversions: convs}, bal.ShieldCushion, rng)
				return sim.Patch{
					Conversions: sim.IntPtr(s.Conversions + convs),
					Cash:        sim.IntPtr(s.Cash + rev.CashDelta),
					MRR:         sim.IntPtr(s.MRR + rev.MRRDelta),
					Reputation:  sim.IntPtr(s.Reputation + 2),
					Finance:     accrueQuarter(s, rev.CashDelta),
				}
			},
		},
		{
			ID: "optimize", Label: "Optimize Funnel", Cost: 20,
			Help: "Increase conversion rates across board.",
			Effect: func(s sim.GameState, rng sim.RNG) sim.Patch {
				return sim.Patch{
					Traffic:     map[string]float64{"ads": s.Traffic["ads"] * 1.05},
					Multipliers: &sim.MultipliersPatch{Revenue: sim.FloatPtr(s.Multipliers.Revenue * 1.05)},
					Reputation:  sim.IntPtr(s.Reputation + 1),
				}
			},
		},
		{
			ID: "network", Label: "Network / Partnerships", Cost: 10,
			Help: "Collabs boost reach and reputation.",
			Effect: func(s sim.GameState, rng sim.RNG) sim.Patch {
				return sim.Patch{
					Reputation: sim.IntPtr(s.Reputation + 4),
					Audience:   sim.IntPtr(s.Audience + sim.Floor(sim.Between(rng, 40, 120)*s.Multipliers.Audience)),
				}
			},
		},
		{
			ID: "pay_debt", Label: "Pay Down Debt", Cost: 5,
			Help: "Use cash to reduce any outstanding debt (min $50 per action).",
			Effect: func(s sim.GameState, rng sim.RNG) sim.Patch {
				if s.Debt <= 0 || s.Cash <= 0 {
					return sim.Patch{}
				}
				pay := sim.Floor(float64(s.Debt) * 0.25)
				if pay < 50 {
					pay = 50
				}
				if pay > s.Cash {
					pay = s.Cash
				}
				debt := s.Debt - pay
				if debt < 0 {
					debt = 0
				}
				return sim.Patch{Cash: sim.IntPtr(s.Cash - pay), Debt: sim.IntPtr(debt)}
			},
		},
		{
			ID: "negotiate_vendor", Label: "Negotiate Vendor Contracts", Cost: 10,
			Help: "Chance to reduce weekly subscriptions for ~14 days.",
			Effect: func(s sim.GameState, rng sim.RNG) sim.Patch {
				if s.Modifiers.VendorDiscountDays > 0 {
					return sim.Patch{}
				}
				if !sim.Chance(rng, 0.55) {
					return sim.Patch{Reputation: sim.IntPtr(pos(s.Reputation - 1))}
				}
				rate := sim.Between(rng, 0.1, 0.3)
				return sim.Patch{
					Modifiers: &sim.ModifiersPatch{
						VendorDiscountDays: sim.IntPtr(14),
						VendorDiscountRate: sim.FloatPtr(rate),
					},
					Reputation: sim.IntPtr(s.Reputation + 2),
				}
			},
		},
		{
			ID: "refinance", Label: "Refinance Debt", Cost: 10,
			Help: "Attempt to lower APR by 2-5% (success depends on reputation).",
			Effect: func(s sim.GameState, rng sim.RNG) sim.Patch {
				chance := sim.Clamp(0.25+float64(s.Reputation)/150, 0.25, 0.85)
				if rng.Float64() > chance {
					return sim.Patch{Reputation: sim.IntPtr(pos(s.Reputation - 1))}
				}
				cut := sim.Between(rng, 0.02, 0.05)
				apr := math.Max(0.05, s.Finance.APR-cut)
				return sim.Patch{
					Finance:    &sim.FinancePatch{APR: sim.FloatPtr(apr)},
					Reputation: sim.IntPtr(s.Reputation + 1),
				}
			},
		},
	}
}

// accrueQuarter adds a positive cash gain to the quarter-revenue tracker;
// losses never reduce it.
func accrueQuarter(s sim.GameState, cashGain int) *sim.FinancePatch {
	return &sim.FinancePatch{QuarterRevenue: sim.IntPtr(s.Finance.QuarterRevenue + pos(cashGain))}
}

func pos(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
