package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-tui/internal/field"
)

func withFlags(t *testing.T, config, params string) {
	t.Helper()
	oldConfig, oldParams := configPath, paramsFlag
	configPath, paramsFlag = config, params
	t.Cleanup(func() {
		configPath, paramsFlag = oldConfig, oldParams
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	withFlags(t, "", "")

	cfg, defaults, err := loadConfig()
	require.NoError(t, err)
	assert.Nil(t, defaults)
	assert.Equal(t, "production", cfg.Mode)
	assert.Nil(t, sourceFor(cfg))
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"params": "9:9:10", "seed": 7}`), 0o644))
	withFlags(t, path, "")

	cfg, defaults, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, &field.Params{Width: 9, Height: 9, MineCount: 10}, defaults)

	newSource := sourceFor(cfg)
	require.NotNil(t, newSource)
	a, b := newSource(), newSource()
	for range 10 {
		assert.Equal(t, a.IntN(100), b.IntN(100))
	}
}

func TestLoadConfigFlagWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"params": "9:9:10"}`), 0o644))
	withFlags(t, path, "30:16:99")

	_, defaults, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, &field.Params{Width: 30, Height: 16, MineCount: 99}, defaults)
}

func TestLoadConfigErrors(t *testing.T) {
	withFlags(t, filepath.Join(t.TempDir(), "missing.json"), "")
	_, _, err := loadConfig()
	assert.ErrorIs(t, err, os.ErrNotExist)

	withFlags(t, "", "9:9")
	_, _, err = loadConfig()
	assert.Error(t, err)

	withFlags(t, "", "3:3:9")
	_, _, err = loadConfig()
	assert.ErrorIs(t, err, field.ErrInvalidConfiguration)
}
