package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load reads a balance YAML file over the defaults. A missing file is not an
// error; the defaults are returned unchanged.
func Load(path string) (Balance, error) {
	b := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return b, nil
		}
		return b, err
	}
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Default(), err
	}
	return b, nil
}

// FromEnv applies environment variable overrides on top of b.
func FromEnv(b Balance) Balance {
	if v, ok := envFloat("SIM_EVENT_CHANCE"); ok {
		b.EventChance = v
	}
	if v, ok := envFloat("SIM_ENERGY_CAP"); ok {
		b.EnergyCap = v
	}
	if v, ok := envFloat("SIM_PENALTY_ENERGY_CAP"); ok {
		b.PenaltyEnergyCap = v
	}
	if v, ok := envInt("SIM_WHEEL_COOLDOWN"); ok {
		b.WheelCooldown = v
	}
	if v, ok := envInt("SIM_LOG_CAP"); ok {
		b.LogCap = v
	}
	if v, ok := envFloat("SIM_LATE_FEE_RATE"); ok {
		b.LateFeeRate = v
	}
	if v, ok := envFloat("SIM_TAX_RATE"); ok {
		b.TaxRate = v
	}
	if v, ok := envInt("SIM_TAX_MIN"); ok {
		b.TaxMin = v
	}
	return b
}

func envInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func envFloat(key string) (float64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
