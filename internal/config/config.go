package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

type Duration struct{ time.Duration }

// [Duration] implements [json.Marshaler]
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		var err error
		d.Duration, err = time.ParseDuration(value)
		if err != nil {
			return err
		}
		return nil

	default:
		return errors.New("invalid duration")
	}
}

type LogConfig struct {
	Path       string   `json:"path"`
	MaxSize    int      `json:"max_size"` // megabytes
	MaxBackups int      `json:"max_backups"`
	MaxAge     Duration `json:"max_age"`
}

// MaxAgeDays rounds MaxAge up to whole days, the unit the rotating log
// file understands.
func (c LogConfig) MaxAgeDays() int {
	const day = 24 * time.Hour
	return int((c.MaxAge.Duration + day - 1) / day)
}

type Config struct {
	Mode string    `json:"mode"`
	Log  LogConfig `json:"log"`

	// Params pre-fills the setup prompts, "width:height:mines".
	Params string `json:"params"`

	// Seed fixes mine placement; 0 picks a random one per game.
	Seed uint64 `json:"seed"`
}

func Default() *Config {
	return &Config{
		Mode: "production",
		Log: LogConfig{
			Path:       filepath.Join(os.TempDir(), "minesweeper.log"),
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     Duration{7 * 24 * time.Hour},
		},
	}
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":            c.Mode,
		"log_path":        c.Log.Path,
		"log_max_size":    c.Log.MaxSize,
		"log_max_backups": c.Log.MaxBackups,
		"log_max_age":     c.Log.MaxAge.Duration.String(),
		"params":          c.Params,
		"seed":            c.Seed,
	}
}

func (c Config) Production() bool {
	return !c.Development()
}

func (c Config) Development() bool {
	return c.Mode == "development" || Development()
}

// ReadConfig decodes the JSON file at path over config, so keys missing from
// the file keep their current values.
func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}
