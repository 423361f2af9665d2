// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	ColorSchemeAuto  ColorScheme = "auto"
	ColorSchemeDark  ColorScheme = "dark"
	ColorSchemeLight ColorScheme = "light"

	// FormatText prints one styled line per literal.
	FormatText Format = "text"
	// FormatJSON prints a JSON array of results.
	FormatJSON Format = "json"
)

var (
	// ErrInvalidColorScheme is wrapped by InvalidColorSchemeError.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidFormat is wrapped by InvalidFormatError.
	ErrInvalidFormat = errors.New("invalid output format")
	// ErrInvalidConfig is wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme selects the terminal palette used for rendered output.
	ColorScheme string

	// InvalidColorSchemeError is returned for an unknown ColorScheme.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// Format selects how `staticurl check` prints results.
	Format string

	// InvalidFormatError is returned for an unknown Format.
	InvalidFormatError struct {
		Value Format
	}

	// InvalidConfigError collects every field error found by Config.Validate.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the CLI configuration.
	Config struct {
		UI       UIConfig       `json:"ui" mapstructure:"ui"`
		Check    CheckConfig    `json:"check" mapstructure:"check"`
		Generate GenerateConfig `json:"generate" mapstructure:"generate"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		Verbose     bool        `json:"verbose" mapstructure:"verbose"`
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
	}

	// CheckConfig configures `staticurl check`.
	CheckConfig struct {
		Format Format `json:"format" mapstructure:"format"`
	}

	// GenerateConfig configures `staticurl generate`.
	GenerateConfig struct {
		// Manifest is the CUE file listing the URLs.
		Manifest string `json:"manifest" mapstructure:"manifest"`
		// Output is the Go file written.
		Output string `json:"output" mapstructure:"output"`
		// Package overrides the manifest's package name when non-empty.
		Package string `json:"package" mapstructure:"package"`
	}
)

func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

func (cs ColorScheme) String() string { return string(cs) }

// Validate returns an *InvalidColorSchemeError for unknown values.
func (cs ColorScheme) Validate() error {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: cs}
	}
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: text, json)", e.Value)
}

func (e *InvalidFormatError) Unwrap() error { return ErrInvalidFormat }

func (f Format) String() string { return string(f) }

// Validate returns an *InvalidFormatError for unknown values.
func (f Format) Validate() error {
	switch f {
	case FormatText, FormatJSON:
		return nil
	default:
		return &InvalidFormatError{Value: f}
	}
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s): %v", len(e.FieldErrors), errors.Join(e.FieldErrors...))
}

func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// Validate checks every enum field. Environment overrides bypass the CUE
// schema, so this runs after every load.
func (c *Config) Validate() error {
	var errs []error
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Check.Format.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Verbose:     false,
			ColorScheme: ColorSchemeAuto,
		},
		Check: CheckConfig{
			Format: FormatText,
		},
		Generate: GenerateConfig{
			Manifest: "staticurls.cue",
			Output:   "staticurls_gen.go",
			Package:  "",
		},
	}
}
