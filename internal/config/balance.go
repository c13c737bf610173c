// Package config holds gameplay balance configuration. Balance numbers are
// data, not code: the engine is parameterized over them so tuning never
// touches pipeline logic.
package config

// Balance holds the numeric policy knobs of the simulation.
type Balance struct {
	// Day pipeline
	EventChance      float64 `yaml:"event_chance" json:"event_chance"`
	EnergyCap        float64 `yaml:"energy_cap" json:"energy_cap"`
	PenaltyEnergyCap float64 `yaml:"penalty_energy_cap" json:"penalty_energy_cap"`
	WheelCooldown    int     `yaml:"wheel_cooldown" json:"wheel_cooldown"`
	LogCap           int     `yaml:"log_cap" json:"log_cap"`

	// Bill cycles
	WeeklyCadence  int `yaml:"weekly_cadence" json:"weekly_cadence"`
	MonthlyCadence int `yaml:"monthly_cadence" json:"monthly_cadence"`
	QuarterCadence int `yaml:"quarter_cadence" json:"quarter_cadence"`

	// Shortfall handling
	LateFeeRate           float64 `yaml:"late_fee_rate" json:"late_fee_rate"`
	LateFeeMinBill        int     `yaml:"late_fee_min_bill" json:"late_fee_min_bill"`
	LateFeeMinTax         int     `yaml:"late_fee_min_tax" json:"late_fee_min_tax"`
	RepPenaltyBill        int     `yaml:"rep_penalty_bill" json:"rep_penalty_bill"`
	RepPenaltyTax         int     `yaml:"rep_penalty_tax" json:"rep_penalty_tax"`
	BookkeeperLateFeeMult float64 `yaml:"bookkeeper_late_fee_mult" json:"bookkeeper_late_fee_mult"`

	// Quarterly tax
	TaxRate float64 `yaml:"tax_rate" json:"tax_rate"`
	TaxMin  int     `yaml:"tax_min" json:"tax_min"`

	// Dispute shield cushion on revenue losses
	ShieldCushion float64 `yaml:"shield_cushion" json:"shield_cushion"`

	// Auto-day ticker bounds (milliseconds)
	AutoDayMinMS int `yaml:"auto_day_min_ms" json:"auto_day_min_ms"`
	AutoDayMaxMS int `yaml:"auto_day_max_ms" json:"auto_day_max_ms"`
}

// Default returns the shipped balance configuration.
func Default() Balance {
	return Balance{
		EventChance:           0.55,
		EnergyCap:             100,
		PenaltyEnergyCap:      80,
		WheelCooldown:         2,
		LogCap:                140,
		WeeklyCadence:         7,
		MonthlyCadence:        30,
		QuarterCadence:        90,
		LateFeeRate:           0.1,
		LateFeeMinBill:        25,
		LateFeeMinTax:         50,
		RepPenaltyBill:        3,
		RepPenaltyTax:         4,
		BookkeeperLateFeeMult: 0.5,
		TaxRate:               0.12,
		TaxMin:                200,
		ShieldCushion:         0.7,
		AutoDayMinMS:          2000,
		AutoDayMaxMS:          20000,
	}
}
