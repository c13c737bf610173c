package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_KnownBaselines(t *testing.T) {
	b := Default()

	assert.Equal(t, 0.55, b.EventChance)
	assert.Equal(t, 100.0, b.EnergyCap)
	assert.Equal(t, 80.0, b.PenaltyEnergyCap)
	assert.Equal(t, 2, b.WheelCooldown)
	assert.Equal(t, 140, b.LogCap)
	assert.Equal(t, 7, b.WeeklyCadence)
	assert.Equal(t, 30, b.MonthlyCadence)
	assert.Equal(t, 90, b.QuarterCadence)
	assert.Equal(t, 0.12, b.TaxRate)
	assert.Equal(t, 200, b.TaxMin)
	assert.Equal(t, 0.7, b.ShieldCushion)
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	b, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), b)
}

func TestLoad_FileOverridesPartially(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yml")
	require.NoError(t, os.WriteFile(path, []byte("event_chance: 0.8\nlog_cap: 50\n"), 0644))

	b, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.8, b.EventChance)
	assert.Equal(t, 50, b.LogCap)
	assert.Equal(t, Default().TaxMin, b.TaxMin, "untouched fields keep defaults")
}

func TestLoad_BadYAMLErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yml")
	require.NoError(t, os.WriteFile(path, []byte("event_chance: [oops"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("SIM_EVENT_CHANCE", "0.9")
	t.Setenv("SIM_TAX_MIN", "300")
	t.Setenv("SIM_LOG_CAP", "not-a-number")

	b := FromEnv(Default())

	assert.Equal(t, 0.9, b.EventChance)
	assert.Equal(t, 300, b.TaxMin)
	assert.Equal(t, Default().LogCap, b.LogCap, "unparseable values are ignored")
}
