// Package config loads tracker settings from a YAML file with environment
// variable overrides.
//
// Precedence (highest to lowest):
//  1. SUPPLYTRACK_* environment variables
//  2. YAML config file (~/.supplytrack/config.yaml, or $SUPPLYTRACK_CONFIG)
//  3. Hardcoded defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/calyxcontainers/supplytrack/internal/domain"
)

const envPrefix = "SUPPLYTRACK_"

type Config struct {
	// DataDir holds the backing JSON document.
	DataDir string `koanf:"data_dir"`
	// NoColor disables ANSI styling in CLI output.
	NoColor bool `koanf:"no_color"`
	// UpcomingLimit caps the upcoming-deadlines table.
	UpcomingLimit int     `koanf:"upcoming_limit"`
	Quarter       Quarter `koanf:"quarter"`
}

// Quarter is the tracked planning window. Dates are YYYY-MM-DD strings in
// the file; Window parses them.
type Quarter struct {
	Start string `koanf:"start"`
	End   string `koanf:"end"`
}

// Window returns the parsed quarter bounds. Call Validate first; Window
// panics on unparseable dates.
func (q Quarter) Window() (start, end domain.Date) {
	start, err := domain.ParseDate(q.Start)
	if err != nil {
		panic(fmt.Sprintf("config: quarter start: %v", err))
	}
	end, err = domain.ParseDate(q.End)
	if err != nil {
		panic(fmt.Sprintf("config: quarter end: %v", err))
	}
	return start, end
}

func (c *Config) Validate() error {
	if c.UpcomingLimit <= 0 {
		return fmt.Errorf("upcoming_limit must be positive, got %d", c.UpcomingLimit)
	}
	start, err := domain.ParseDate(c.Quarter.Start)
	if err != nil {
		return fmt.Errorf("quarter.start: %w", err)
	}
	end, err := domain.ParseDate(c.Quarter.End)
	if err != nil {
		return fmt.Errorf("quarter.end: %w", err)
	}
	if end.Before(start) {
		return fmt.Errorf("quarter.end %s is before quarter.start %s", c.Quarter.End, c.Quarter.Start)
	}
	return nil
}

// DefaultPath is ~/.supplytrack/config.yaml, overridable via
// SUPPLYTRACK_CONFIG.
func DefaultPath() (string, error) {
	if p := os.Getenv(envPrefix + "CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".supplytrack", "config.yaml"), nil
}

// Load reads the config file at path (missing file is fine, defaults
// apply), then layers SUPPLYTRACK_* environment variables over it.
// An empty path means DefaultPath.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	if content, err := os.ReadFile(path); err == nil {
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	// SUPPLYTRACK_DATA_DIR -> data_dir, SUPPLYTRACK_QUARTER_START ->
	// quarter.start. Only "quarter" is a nested section; everything else
	// keeps its underscores.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		if rest, ok := strings.CutPrefix(key, "quarter_"); ok {
			return "quarter." + rest
		}
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment overrides: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.DataDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.DataDir = filepath.Join(home, ".supplytrack")
		} else {
			cfg.DataDir = ".supplytrack"
		}
	}
	if cfg.UpcomingLimit == 0 {
		cfg.UpcomingLimit = 10
	}
	if cfg.Quarter.Start == "" {
		cfg.Quarter.Start = "2026-01-01"
	}
	if cfg.Quarter.End == "" {
		cfg.Quarter.End = "2026-03-31"
	}
}
