package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration(t *testing.T) {
	testCases := []struct {
		input string
		want  time.Duration
		ok    bool
	}{
		{`"36h"`, 36 * time.Hour, true},
		{`"1m30s"`, 90 * time.Second, true},
		{`1000`, time.Microsecond, true},
		{`"soon"`, 0, false},
		{`true`, 0, false},
	}
	for _, test := range testCases {
		var d Duration
		err := json.Unmarshal([]byte(test.input), &d)
		if !test.ok {
			assert.Error(t, err, test.input)
			continue
		}
		require.NoError(t, err, test.input)
		assert.Equal(t, test.want, d.Duration)
	}

	b, err := json.Marshal(Duration{time.Minute})
	require.NoError(t, err)
	assert.Equal(t, `"1m0s"`, string(b))
}

func TestMaxAgeDays(t *testing.T) {
	assert.Equal(t, 0, LogConfig{}.MaxAgeDays())
	assert.Equal(t, 1, LogConfig{MaxAge: Duration{time.Hour}}.MaxAgeDays())
	assert.Equal(t, 7, LogConfig{MaxAge: Duration{7 * 24 * time.Hour}}.MaxAgeDays())
}

func TestReadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
	"mode": "development",
	"params": "16:16:40",
	"log": {"path": "/tmp/mines.log", "max_age": "48h"}
}`), 0o644))

	cfg := Default()
	require.NoError(t, ReadConfig(path, cfg))

	assert.Equal(t, "development", cfg.Mode)
	assert.Equal(t, "16:16:40", cfg.Params)
	assert.Equal(t, "/tmp/mines.log", cfg.Log.Path)
	assert.Equal(t, 2, cfg.Log.MaxAgeDays())
	// untouched keys keep their defaults
	assert.Equal(t, 10, cfg.Log.MaxSize)
	assert.Equal(t, 3, cfg.Log.MaxBackups)
	assert.True(t, cfg.Development())
	assert.Equal(t, "48h0m0s", cfg.Fields()["log_max_age"])
}

func TestReadConfigMissing(t *testing.T) {
	err := ReadConfig(filepath.Join(t.TempDir(), "nope.json"), Default())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDevelopment(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, Development())
	assert.True(t, Default().Production())

	t.Setenv("DEVELOPMENT", "1")
	assert.True(t, Development())
	assert.True(t, Default().Development())
}
