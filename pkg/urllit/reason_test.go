// SPDX-License-Identifier: MPL-2.0

package urllit

import (
	"errors"
	"testing"
)

func TestReason_Validate(t *testing.T) {
	t.Parallel()

	for _, r := range Reasons() {
		if err := r.Validate(); err != nil {
			t.Errorf("Reason(%q).Validate() = %v, want nil", r, err)
		}
	}

	err := Reason("bogus").Validate()
	if err == nil {
		t.Fatal("Reason(\"bogus\").Validate() = nil, want error")
	}
	if !errors.Is(err, ErrInvalidReason) {
		t.Errorf("error should wrap ErrInvalidReason, got: %v", err)
	}
	var rErr *InvalidReasonError
	if !errors.As(err, &rErr) {
		t.Fatalf("error should be *InvalidReasonError, got: %T", err)
	}
	if rErr.Value != "bogus" {
		t.Errorf("InvalidReasonError.Value = %q, want %q", rErr.Value, "bogus")
	}
}

func TestReason_Message(t *testing.T) {
	t.Parallel()

	tests := []struct {
		reason Reason
		want   string
	}{
		{ReasonNotAStringLiteral, "Argument is not a string literal"},
		{ReasonNotAParsableURL, "Argument is not a valid URL"},
		{ReasonUnsupportedScheme, "Web URL's must start with 'http://' or 'https://"},
		{ReasonMissingHost, "Web URL's must contain a valid hostname"},
		{Reason("unknown"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.reason.String(), func(t *testing.T) {
			t.Parallel()
			if got := tt.reason.Message(); got != tt.want {
				t.Errorf("Reason(%q).Message() = %q, want %q", tt.reason, got, tt.want)
			}
		})
	}
}

func TestReasons_GateOrder(t *testing.T) {
	t.Parallel()

	got := Reasons()
	want := []Reason{ReasonNotAStringLiteral, ReasonNotAParsableURL, ReasonUnsupportedScheme, ReasonMissingHost}
	if len(got) != len(want) {
		t.Fatalf("Reasons() returned %d reasons, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Reasons()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
