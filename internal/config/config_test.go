package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pxdal/buckshot/internal/item"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesSelectedValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buckshot.hcl")
	src := `
rules {
  health_min       = 3
  health_max       = 6
  items_min        = 0
  items_max        = 0
  rounds_per_match = 5
  item_limits = {
    beer       = 2
    cigarettes = 4
  }
}

simulation {
  runs       = 50
  seed       = 77
  workers    = 2
  timeout    = "250ms"
  player     = "dealer"
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	r := cfg.Rules
	assert.Equal(t, 3, r.HealthMin)
	assert.Equal(t, 6, r.HealthMax)
	assert.Equal(t, 0, r.ItemsMin, "explicit zero must be honoured")
	assert.Equal(t, 0, r.ItemsMax)
	assert.Equal(t, 5, r.RoundsPerMatch)
	assert.Equal(t, 2, r.ShellsMin, "unset attributes keep defaults")
	assert.Equal(t, 8, r.ShellsMax)
	assert.Equal(t, 2, r.ItemLimits[item.Beer])
	assert.Equal(t, 4, r.ItemLimits[item.Cigarettes])
	assert.Equal(t, 3, r.ItemLimits[item.Knife], "unlisted limits keep defaults")

	s := cfg.Simulation
	assert.Equal(t, 50, s.Runs)
	assert.Equal(t, int64(77), s.Seed)
	assert.Equal(t, 2, s.Workers)
	assert.Equal(t, 250*time.Millisecond, s.Timeout)
	assert.Equal(t, "dealer", s.Player)
	assert.Equal(t, 30, s.MaxRounds)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", `rules {`},
		{"unknown item", `rules { item_limits = { grenade = 1 } }`},
		{"inverted health", `rules {
  health_min = 5
  health_max = 2
}`},
		{"bad timeout", `simulation { timeout = "soon" }`},
		{"zero workers", `simulation { workers = 0 }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "test.hcl")
			assert.Error(t, err)
		})
	}
}

func TestRulesValidate(t *testing.T) {
	r := DefaultRules()
	require.NoError(t, r.Validate())

	r.RoundsPerMatch = 0
	assert.Error(t, r.Validate())

	r = DefaultRules()
	r.ItemLimits = item.Limits{item.None: 1}
	assert.Error(t, r.Validate())
}

func TestEncodeParsesBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rules.HealthMax = 5
	cfg.Rules.ItemLimits[item.Beer] = 1
	cfg.Simulation.Seed = -12
	cfg.Simulation.Timeout = 1500 * time.Millisecond
	cfg.Simulation.Player = "heuristic"

	src := Encode(cfg)
	assert.Contains(t, string(src), "rounds_per_match")

	got, err := Parse(src, "encoded.hcl")
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestSaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "buckshot.hcl")

	cfg := DefaultConfig()
	cfg.Rules.ShellsMax = 6
	require.NoError(t, Save(path, cfg))

	// overwrite in place
	cfg.Simulation.Runs = 12
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")
	assert.Equal(t, "buckshot.hcl", entries[0].Name())
}

func TestSaveRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buckshot.hcl")
	cfg := DefaultConfig()
	cfg.Rules.HealthMin = 0

	assert.Error(t, Save(path, cfg))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSaveMissingDirectory(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "nope", "buckshot.hcl"), DefaultConfig())
	assert.Error(t, err)
}
