package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadSimulation_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadSimulation(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSimulation(), cfg)
}

func TestLoadSimulation_ParsesFile(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
tick_interval: 250ms
ticks: 4
entities:
  - name: orc
    stats:
      - name: stamina
        value: 12.5
        max: 40
        min: 0
        effects:
          - type: Drain
            params: {amount: "3"}
            aux_modifier: 0.5
            active: false
            id: 42
          - type: Add
            params: {amount: "1"}
`)

	cfg, err := LoadSimulation(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 4, cfg.Ticks)
	require.Len(t, cfg.Entities, 1)

	ent := cfg.Entities[0]
	assert.Equal(t, "orc", ent.Name)
	require.Len(t, ent.Stats, 1)

	st := ent.Stats[0]
	require.NotNil(t, st.Value)
	assert.Equal(t, 12.5, *st.Value)
	assert.Equal(t, 40.0, st.Max)
	require.Len(t, st.Effects, 2)

	drain := st.Effects[0]
	assert.Equal(t, "Drain", drain.Type)
	assert.Equal(t, "3", drain.Params["amount"])
	assert.Equal(t, 0.5, drain.AuxModifier)
	assert.False(t, drain.IsActive())
	require.NotNil(t, drain.ID)
	assert.Equal(t, 42, *drain.ID)

	add := st.Effects[1]
	assert.True(t, add.IsActive())
	assert.Nil(t, add.ID)
}

func TestLoadSimulation_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "ticks: 3\n")

	cfg, err := LoadSimulation(path)
	require.NoError(t, err)

	def := DefaultSimulation()
	assert.Equal(t, 3, cfg.Ticks)
	assert.Equal(t, def.TickInterval, cfg.TickInterval)
	assert.Equal(t, def.Entities, cfg.Entities)
}

func TestLoadSimulation_BadYAML(t *testing.T) {
	path := writeConfig(t, "ticks: [oops\n")

	_, err := LoadSimulation(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}
