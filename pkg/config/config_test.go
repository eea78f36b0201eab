package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vending-fleet/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "vending-fleet", cfg.App.Name)
	assert.Equal(t, []string{"001", "002", "003"}, cfg.Sim.MachineIDs)
	assert.Equal(t, 50, cfg.Sim.EventCount)
	assert.Equal(t, int64(1), cfg.Sim.Seed)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SIM_EVENT_COUNT", "200")
	t.Setenv("SIM_MACHINE_IDS", "101, 102 ,103")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, 200, cfg.Sim.EventCount)
	assert.Equal(t, []string{"101", "102", "103"}, cfg.Sim.MachineIDs,
		"los ids llegan como CSV y se recortan espacios")
}

func TestLoad_EnvInvalidaCaeAlDefault(t *testing.T) {
	t.Setenv("SIM_EVENT_COUNT", "no-es-numero")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Sim.EventCount, "un entero ilegible conserva el default")
}
