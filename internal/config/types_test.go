// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestColorSchemeValidate(t *testing.T) {
	t.Parallel()

	for _, cs := range []ColorScheme{ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight} {
		if err := cs.Validate(); err != nil {
			t.Errorf("ColorScheme(%q).Validate() = %v", cs, err)
		}
	}

	err := ColorScheme("neon").Validate()
	if !errors.Is(err, ErrInvalidColorScheme) {
		t.Fatalf("Validate() = %v, want ErrInvalidColorScheme", err)
	}
	var cse *InvalidColorSchemeError
	if !errors.As(err, &cse) || cse.Value != "neon" {
		t.Errorf("error = %#v", err)
	}
}

func TestFormatValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   Format
		wantErr bool
	}{
		{FormatText, false},
		{FormatJSON, false},
		{"", true},
		{"JSON", true},
	}

	for _, tt := range tests {
		err := tt.value.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("Format(%q).Validate() error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Format(%q).Validate() does not wrap ErrInvalidFormat", tt.value)
		}
	}
}

func TestConfigValidateCollectsAll(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.UI.ColorScheme = "neon"
	cfg.Check.Format = "yaml"

	err := cfg.Validate()
	var ice *InvalidConfigError
	if !errors.As(err, &ice) {
		t.Fatalf("Validate() = %v, want *InvalidConfigError", err)
	}
	if len(ice.FieldErrors) != 2 {
		t.Errorf("FieldErrors = %v, want 2", ice.FieldErrors)
	}
	if !errors.Is(err, ErrInvalidColorScheme) || !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Validate() should wrap both field sentinels")
	}
}

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}
