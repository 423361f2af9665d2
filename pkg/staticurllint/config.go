// SPDX-License-Identifier: MPL-2.0

package staticurllint

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ErrInvalidTarget is returned when a [[targets]] entry is malformed.
	ErrInvalidTarget = errors.New("invalid target")
	// ErrInvalidException is returned when an [[exceptions]] pattern is malformed.
	ErrInvalidException = errors.New("invalid exception pattern")
)

type (
	// Config holds the analyzer settings loaded from TOML.
	Config struct {
		Settings   Settings    `toml:"settings"`
		Targets    []Target    `toml:"targets"`
		Exceptions []Exception `toml:"exceptions"`

		// matchCounts tracks how many literals each exception matched.
		// Used by --audit-exceptions to detect stale entries.
		matchCounts map[int]int
	}

	// Settings configures global analyzer behavior.
	Settings struct {
		// ExcludePaths lists path substrings that cause files to be skipped.
		ExcludePaths []string `toml:"exclude_paths"`
	}

	// Target names a function whose argument at index Arg must be a static
	// web URL literal. Function uses types.Func.FullName form, e.g.
	// "net/url.Parse" or "(*example.com/api.Client).Endpoint".
	Target struct {
		Function string `toml:"function"`
		Arg      int    `toml:"arg"`
	}

	// Exception accepts rejected literals matching Pattern (path.Match syntax,
	// so * does not cross a '/').
	Exception struct {
		Pattern string `toml:"pattern"`
		// Reason documents why the literal is intentional.
		Reason string `toml:"reason"`
	}
)

// loadConfig reads and parses the TOML config file. Returns an empty config
// (default target only) if path is empty or the file doesn't exist.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{matchCounts: make(map[int]int)}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{matchCounts: make(map[int]int)}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config TOML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	cfg.matchCounts = make(map[int]int, len(cfg.Exceptions))

	return &cfg, nil
}

// Validate checks every target and exception entry.
func (c *Config) Validate() error {
	var errs []error
	for i, t := range c.Targets {
		if err := t.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("targets[%d]: %w", i, err))
		}
	}
	for i, e := range c.Exceptions {
		if err := e.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("exceptions[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Validate returns an error if the target cannot name a function argument.
func (t Target) Validate() error {
	if !strings.Contains(t.Function, ".") || strings.TrimSpace(t.Function) != t.Function {
		return fmt.Errorf("%w: function %q must be a qualified name like \"net/url.Parse\"", ErrInvalidTarget, t.Function)
	}
	if t.Arg < 0 {
		return fmt.Errorf("%w: arg %d must not be negative", ErrInvalidTarget, t.Arg)
	}
	return nil
}

// Validate returns an error if the pattern is empty or not a valid glob.
func (e Exception) Validate() error {
	if e.Pattern == "" {
		return fmt.Errorf("%w: empty pattern", ErrInvalidException)
	}
	if _, err := path.Match(e.Pattern, ""); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidException, e.Pattern, err)
	}
	return nil
}

// targetArgs maps each target's full function name to its URL argument
// index. DefaultTarget is always present; a config entry may override it.
func (c *Config) targetArgs() map[string]int {
	m := make(map[string]int, len(c.Targets)+1)
	m[DefaultTarget] = 0
	for _, t := range c.Targets {
		m[t.Function] = t.Arg
	}
	return m
}

// isExcepted checks whether a literal matches any exception pattern.
func (c *Config) isExcepted(literal string) bool {
	for i, exc := range c.Exceptions {
		if matched, err := path.Match(exc.Pattern, literal); err == nil && matched {
			if c.matchCounts != nil {
				c.matchCounts[i]++
			}
			return true
		}
	}
	return false
}

// isExcludedPath checks whether a file path contains any of the
// exclude_paths substrings.
func (c *Config) isExcludedPath(filePath string) bool {
	for _, ep := range c.Settings.ExcludePaths {
		if strings.Contains(filePath, ep) {
			return true
		}
	}
	return false
}

// staleExceptions returns the indices of exception patterns that matched
// zero literals during the analysis run.
func (c *Config) staleExceptions() []int {
	var stale []int
	for i := range c.Exceptions {
		if c.matchCounts[i] == 0 {
			stale = append(stale, i)
		}
	}
	return stale
}
