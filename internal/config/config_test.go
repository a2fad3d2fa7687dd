package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.hcl")
	src := `
stats {
  iterations = 5000
  workers    = 4
  seed       = 99
}

ui {
  log_level = "debug"
  color     = true
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(5000), cfg.Stats.Iterations)
	assert.Equal(t, 4, cfg.Stats.Workers)
	assert.Equal(t, int64(99), cfg.Stats.Seed)
	assert.Equal(t, "debug", cfg.UI.LogLevel)
	assert.True(t, cfg.UI.Color)
}

func TestLoadFillsMissingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.hcl")
	src := `
stats {
  workers = 2
}

ui {}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Default().Stats.Iterations, cfg.Stats.Iterations)
	assert.Equal(t, Default().Stats.Seed, cfg.Stats.Seed)
	assert.Equal(t, 2, cfg.Stats.Workers)
	assert.Equal(t, "info", cfg.UI.LogLevel)
}

func TestLoadRejectsBadHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.hcl")
	require.NoError(t, os.WriteFile(path, []byte("stats {"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
