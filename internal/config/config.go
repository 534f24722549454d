// Package config loads contactmap settings: defaults, then an optional TOML
// file, then environment variables. Command-line flags are applied last by
// the command itself.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"contact-mapper/internal/common"
	"contact-mapper/internal/logging"
	"contact-mapper/internal/mapping"
)

const (
	EnvConfig     = "CONTACTMAP_CONFIG"
	EnvFormat     = "CONTACTMAP_FORMAT"
	EnvPrependKey = "CONTACTMAP_PREPEND_KEY"
	EnvValidate   = "CONTACTMAP_VALIDATE"
)

// Config holds the settings shared by every command.
type Config struct {
	// PrependKey wraps requests as {"contact": ...}.
	PrependKey bool
	// Format is the output encoding.
	Format mapping.Format
	// LogLevel is empty when the logger keeps its own level.
	LogLevel string
	// Validate checks every request against the JSON Schema before output.
	Validate bool
}

func Default() Config {
	return Config{
		PrependKey: true,
		Format:     mapping.FormatJSON,
	}
}

type fileConfig struct {
	PrependKey bool   `toml:"prepend_key"`
	Format     string `toml:"format"`
	LogLevel   string `toml:"log_level"`
	Validate   bool   `toml:"validate"`
}

// Load returns the configuration read from path. An empty path falls back to
// $CONTACTMAP_CONFIG; with neither, only defaults and environment apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvConfig))
	}

	if path != "" {
		var err error

		cfg, err = loadFile(cfg, path)
		if err != nil {
			return Config{}, err
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadFile(cfg Config, path string) (Config, error) {
	var raw fileConfig

	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if key, ok := common.First(meta.Undecoded()); ok {
		return Config{}, fmt.Errorf("load config %s: unknown key %q", path, key.String())
	}

	if meta.IsDefined("prepend_key") {
		cfg.PrependKey = raw.PrependKey
	}

	if meta.IsDefined("format") {
		f, err := mapping.ParseFormat(strings.TrimSpace(raw.Format))
		if err != nil {
			return Config{}, fmt.Errorf("parse format: %w", err)
		}
		cfg.Format = f
	}

	if meta.IsDefined("log_level") {
		lvl := strings.TrimSpace(raw.LogLevel)
		if _, ok := logging.ParseLevel(lvl); !ok {
			return Config{}, fmt.Errorf("parse log_level: unknown level %q", lvl)
		}
		cfg.LogLevel = lvl
	}

	if meta.IsDefined("validate") {
		cfg.Validate = raw.Validate
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if raw := strings.TrimSpace(os.Getenv(EnvFormat)); raw != "" {
		f, err := mapping.ParseFormat(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFormat, err)
		}
		cfg.Format = f
	}

	if v, ok := common.ParseBool(os.Getenv(EnvPrependKey)); ok {
		cfg.PrependKey = v
	}
	if v, ok := common.ParseBool(os.Getenv(EnvValidate)); ok {
		cfg.Validate = v
	}
	if lvl := strings.TrimSpace(os.Getenv(logging.EnvLogLevel)); lvl != "" {
		if _, ok := logging.ParseLevel(lvl); ok {
			cfg.LogLevel = lvl
		}
	}

	return nil
}
