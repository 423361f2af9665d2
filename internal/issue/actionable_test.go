// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "load configuration"},
			want: "failed to load configuration",
		},
		{
			name: "with resource",
			err:  &ActionableError{Operation: "read manifest", Resource: "staticurls.cue"},
			want: "failed to read manifest: staticurls.cue",
		},
		{
			name: "with cause",
			err: &ActionableError{
				Operation: "read manifest",
				Resource:  "staticurls.cue",
				Cause:     errors.New("file does not exist"),
			},
			want: "failed to read manifest: staticurls.cue: file does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("sentinel")
	err := NewErrorContext().
		WithOperation("generate URL declarations").
		Wrap(fmt.Errorf("render: %w", sentinel)).
		BuildError()

	if !errors.Is(err, sentinel) {
		t.Errorf("errors.Is(err, sentinel) = false, want true")
	}

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatal("errors.As(err, *ActionableError) = false")
	}
	if ae.Operation != "generate URL declarations" {
		t.Errorf("Operation = %q", ae.Operation)
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	err := &ActionableError{
		Operation:   "generate URL declarations",
		Resource:    "staticurls.cue",
		Suggestions: []string{"Fix the rejected entries", "Run 'staticurl check'"},
		Cause:       fmt.Errorf("2 entries rejected: %w", errors.New("Home")),
	}

	plain := err.Format(false)
	if !strings.Contains(plain, "• Fix the rejected entries") {
		t.Errorf("Format(false) missing first suggestion:\n%s", plain)
	}
	if !strings.Contains(plain, "• Run 'staticurl check'") {
		t.Errorf("Format(false) missing second suggestion:\n%s", plain)
	}
	if strings.Contains(plain, "Error chain:") {
		t.Errorf("Format(false) should not include the error chain:\n%s", plain)
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Errorf("Format(true) missing error chain:\n%s", verbose)
	}
	if !strings.Contains(verbose, "1. 2 entries rejected: Home") || !strings.Contains(verbose, "2. Home") {
		t.Errorf("Format(true) chain not numbered as expected:\n%s", verbose)
	}
}

func TestErrorContext_BuildWithoutOperation(t *testing.T) {
	t.Parallel()

	if got := NewErrorContext().WithResource("x").Build(); got != nil {
		t.Errorf("Build() = %v, want nil", got)
	}
	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError() = %v, want nil", err)
	}
}

func TestFormatForDisplay(t *testing.T) {
	t.Parallel()

	plain := errors.New("plain failure")
	if got := FormatForDisplay(plain, true); got != "plain failure" {
		t.Errorf("FormatForDisplay(plain) = %q", got)
	}

	wrapped := fmt.Errorf("outer: %w", &ActionableError{
		Operation:   "load configuration",
		Suggestions: []string{"Run 'staticurl config path'"},
	})
	got := FormatForDisplay(wrapped, false)
	if !strings.HasPrefix(got, "failed to load configuration") || !strings.Contains(got, "staticurl config path") {
		t.Errorf("FormatForDisplay(actionable) = %q", got)
	}
}
