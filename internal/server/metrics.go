package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tfs2006/affiliate-simulator/internal/sim"
)

var actionsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "sim_actions_applied_total",
	Help: "Actions applied, by action id.",
}, []string{"action"})

var daysAdvanced = promauto.NewCounter(prometheus.CounterOpts{
	Name: "sim_days_advanced_total",
	Help: "Day advances processed.",
})

var itemsPurchased = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "sim_items_purchased_total",
	Help: "Shop purchases, by item id.",
}, []string{"item"})

var wheelSpins = promauto.NewCounter(prometheus.CounterOpts{
	Name: "sim_wheel_spins_total",
	Help: "Reward wheel spins.",
})

var gaugeDay = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "sim_day",
	Help: "Current in-game day.",
})

var gaugeCash = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "sim_cash",
	Help: "Current cash balance.",
})

var gaugeDebt = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "sim_debt",
	Help: "Current outstanding debt.",
})

var gaugeMRR = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "sim_mrr",
	Help: "Current monthly recurring revenue.",
})

// observeState refreshes the state gauges after a committed transition.
func observeState(s sim.GameState) {
	gaugeDay.Set(float64(s.Day))
	gaugeCash.Set(float64(s.Cash))
	gaugeDebt.Set(float64(s.Debt))
	gaugeMRR.Set(float64(s.MRR))
}
