package sim

import "math"

// Metrics describes the traffic and conversion yield of the action that just
// ran, fed to every unlocked offer.
type Metrics struct {
	AudienceDelta int
	EmailsDelta   int
	Conversions   int
}

// Revenue is the aggregate money delta produced by the offer portfolio.
type Revenue struct {
	CashDelta int `json:"cash_delta"`
	MRRDelta  int `json:"mrr_delta"`
}

// ComputeRevenue maps traffic metrics to cash/MRR deltas across all unlocked
// offers. Each offer samples its own volatility multiplier. The dispute
// shield cushions aggregate losses by the configured factor, never gains.
// Both outputs are floored to integers.
func ComputeRevenue(s GameState, m Metrics, shieldCushion float64, rng RNG) Revenue {
	var cashDelta, mrrDelta float64

	for _, o := range s.Offers {
		if !o.Unlocked {
			continue
		}
		switch o.Type {
		case OfferCPC:
			clicksBase := (float64(m.AudienceDelta)*0.05 + float64(m.EmailsDelta)*0.1) * volMult(rng, o.Volatility)
			clicks := math.Max(0, math.Floor(clicksBase))
			cashDelta += clicks * o.CPC * s.Multipliers.Revenue
		case OfferCPA:
			convs := offerConversions(m.Conversions, o.ConvRate, volMult(rng, o.Volatility))
			cashDelta += convs * float64(o.Price) * s.Multipliers.Revenue
		case OfferRebill:
			convs := offerConversions(m.Conversions, o.ConvRate, volMult(rng, o.Volatility))
			cashDelta += convs * float64(o.Price) * s.Multipliers.Revenue
			mrrDelta += convs * float64(o.Rebill)
		}
	}

	if cashDelta < 0 && s.HasItem("legal_shield") {
		cashDelta = math.Floor(cashDelta * shieldCushion)
	}
	if mrrDelta < 0 && s.HasItem("legal_shield") {
		mrrDelta = math.Floor(mrrDelta * shieldCushion)
	}

	return Revenue{CashDelta: Floor(cashDelta), MRRDelta: Floor(mrrDelta)}
}

func offerConversions(conversions int, convRate, vol float64) float64 {
	return math.Max(0, math.Floor(float64(conversions)*convRate/100*vol))
}
