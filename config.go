package ecsgo

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the file-based configuration of a World.
//
//	log_level: debug
//	log_format: json
//	initial_capacity: 1024
type Config struct {
	// LogLevel is one of debug, info, warn, error or off. Empty means off.
	LogLevel string `yaml:"log_level"`
	// LogFormat is text (default) or json.
	LogFormat string `yaml:"log_format"`
	// InitialCapacity pre-sizes newly created archetypes.
	InitialCapacity int `yaml:"initial_capacity"`
}

// LoadConfig decodes a YAML Config from r and validates it.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML Config from path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// Validate checks the config values.
func (c Config) Validate() error {
	if c.InitialCapacity < 0 {
		return fmt.Errorf("invalid initial_capacity: %d", c.InitialCapacity)
	}
	if _, _, err := c.level(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log_format: %q", c.LogFormat)
	}
	return nil
}

func (c Config) level() (slog.Level, bool, error) {
	switch strings.ToLower(c.LogLevel) {
	case "", "off":
		return 0, false, nil
	case "debug":
		return slog.LevelDebug, true, nil
	case "info":
		return slog.LevelInfo, true, nil
	case "warn":
		return slog.LevelWarn, true, nil
	case "error":
		return slog.LevelError, true, nil
	default:
		return 0, false, fmt.Errorf("invalid log_level: %q", c.LogLevel)
	}
}

func (c Config) logger() (*Logger, error) {
	level, enabled, err := c.level()
	if err != nil {
		return nil, err
	}
	if !enabled {
		return NoopLogger(), nil
	}
	if strings.EqualFold(c.LogFormat, "json") {
		return NewJSONLogger(level), nil
	}
	return NewTextLogger(level), nil
}
