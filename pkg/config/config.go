// 19 Oct 2026

// Package config holds the settings for a run. They come from
// defaults, then an optional yaml file, then command line flags.
package config

import (
	"fmt"
	"os"

	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"

	"github.com/andrew-torda/seqalign/pkg/align"
)

// Config is what a yaml file may set.
type Config struct {
	MinLen    int    `yaml:"min_length"` // shortest random strand
	MaxLen    int    `yaml:"max_length"` // longest random strand
	Seed      int64  `yaml:"seed"`       // zero means pick one from the clock
	Rounds    int    `yaml:"rounds"`     // zero means ask before each round
	Gap       string `yaml:"gap"`        // printed for a gap
	MaxDepth  int    `yaml:"max_depth"`  // longer pairs use the table
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"` // json or text
}

var ErrConfig = errors.New("bad configuration")

// Default returns the values the original program was written with.
func Default() Config {
	return Config{
		MinLen:    40,
		MaxLen:    60,
		Gap:       " ",
		MaxDepth:  align.DefaultMaxDepth,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Load reads a yaml file over the defaults. Keys missing from the file
// keep their default values.
func Load(fname string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(fname)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", fname, err)
	}
	return cfg, cfg.Validate()
}

// Write puts cfg out as yaml, for a starting config file.
func (cfg Config) Write(fname string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(fname, data, 0644)
}

// Validate reports every setting that cannot be used.
func (cfg Config) Validate() error {
	errs := &errors.M{}
	if cfg.MinLen <= 0 {
		errs.Append(fmt.Errorf("%w: min_length %d must be positive", ErrConfig, cfg.MinLen))
	}
	if cfg.MaxLen < cfg.MinLen {
		errs.Append(fmt.Errorf("%w: max_length %d below min_length %d", ErrConfig, cfg.MaxLen, cfg.MinLen))
	}
	if len(cfg.Gap) != 1 {
		errs.Append(fmt.Errorf("%w: gap %q must be one character", ErrConfig, cfg.Gap))
	}
	if cfg.Rounds < 0 {
		errs.Append(fmt.Errorf("%w: rounds %d is negative", ErrConfig, cfg.Rounds))
	}
	if cfg.MaxDepth <= 0 {
		errs.Append(fmt.Errorf("%w: max_depth %d must be positive", ErrConfig, cfg.MaxDepth))
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		errs.Append(err)
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		errs.Append(fmt.Errorf("%w: log_format %q is not json or text", ErrConfig, cfg.LogFormat))
	}
	return errs.Err()
}
