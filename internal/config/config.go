// Package config loads the settings shared by the command line tools from a
// JSON or YAML file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Backend names the sat backend, e.g. "gini", "cadical" or "exec/kissat".
	Backend string `mapstructure:"backend"`
	// Timeout bounds every solve; zero means no timeout.
	Timeout time.Duration `mapstructure:"timeout"`
	// PollInterval is how often the gini and exec backends poll for
	// termination.
	PollInterval time.Duration `mapstructure:"pollInterval"`
	// LogLevel is a zap level name ("debug", "info", ...).
	LogLevel string `mapstructure:"logLevel"`
	// Development switches to zap's human readable development logger.
	Development bool `mapstructure:"development"`
	// Executables maps exec dialects to the paths of their binaries.
	Executables map[string]string `mapstructure:"executables"`
}

func Default() Config {
	return Config{
		Backend:      "gini",
		PollInterval: time.Millisecond,
		LogLevel:     "info",
		Executables:  map[string]string{},
	}
}

// Load reads the file at path over Default. Files ending in .yaml or .yml
// are read as YAML, anything else as JSON. Durations are strings such as
// "500ms".
func Load(path string) (Config, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config file: %w", err)
	}

	var raw map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &raw)
	default:
		err = json.Unmarshal(bytes, &raw)
	}
	if err != nil {
		return Config{}, fmt.Errorf("cannot parse config file %v: %w", path, err)
	}

	return Decode(raw)
}

// Decode decodes raw, as produced by a JSON or YAML decoder, over Default.
// Unknown keys are an error.
func Decode(raw map[string]any) (Config, error) {
	config := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused: true,
		Result:      &config,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	if config.Timeout < 0 {
		return Config{}, fmt.Errorf("timeout must not be negative: %v", config.Timeout)
	}
	if _, err := zapcore.ParseLevel(config.LogLevel); err != nil {
		return Config{}, fmt.Errorf("invalid log level: %w", err)
	}
	return config, nil
}

// Logger builds the logger described by c.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	var zapConfig zap.Config
	if c.Development {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	return zapConfig.Build()
}
