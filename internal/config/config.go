package config

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Flag names for configuration. Unset flags take the defaults below.
const (
	FlagVerbose     = "verbose"
	FlagAllowEmpty  = "allow-empty"
	FlagMaxReadRate = "max-read-rate"
)

// Default values when a flag is not given.
const (
	DefaultVerbose     = false
	DefaultAllowEmpty  = false
	DefaultMaxReadRate = "0" // unlimited
)

// Flags holds the raw flag values as parsed by the command line.
type Flags struct {
	Verbose     bool
	AllowEmpty  bool
	MaxReadRate string
}

// Config holds validated run options.
type Config struct {
	verbose     bool
	allowEmpty  bool
	maxReadRate uint64
}

// Load validates f and returns the resulting Config. MaxReadRate accepts
// plain byte counts or humanized sizes ("64MiB", "1.5 GB"); empty means
// unlimited.
func Load(f Flags) (*Config, error) {
	cfg := &Config{verbose: f.Verbose, allowEmpty: f.AllowEmpty}
	if f.MaxReadRate == "" {
		return cfg, nil
	}
	rate, err := humanize.ParseBytes(f.MaxReadRate)
	if err != nil {
		return nil, fmt.Errorf("--%s must be a size such as 64MiB: %w", FlagMaxReadRate, err)
	}
	cfg.maxReadRate = rate
	return cfg, nil
}

// Verbose reports whether debug logging is on.
func (c *Config) Verbose() bool {
	return c.verbose
}

// AllowEmpty reports whether a zero-byte file yields the empty-input digest
// instead of an error.
func (c *Config) AllowEmpty() bool {
	return c.allowEmpty
}

// MaxReadRate returns the buffered read limit in bytes per second; 0 means unlimited.
func (c *Config) MaxReadRate() uint64 {
	return c.maxReadRate
}
