// SPDX-License-Identifier: MPL-2.0

package urllit

import (
	"errors"
	"fmt"
)

const (
	// ReasonNotAStringLiteral means the argument was not a static string.
	// Validate never returns it; callers that extract literals report it.
	ReasonNotAStringLiteral Reason = "not-a-string-literal"
	// ReasonNotAParsableURL means the text failed strict URL parsing.
	ReasonNotAParsableURL Reason = "not-a-parsable-url"
	// ReasonUnsupportedScheme means the scheme does not contain "http".
	ReasonUnsupportedScheme Reason = "unsupported-scheme"
	// ReasonMissingHost means the URL has no host name.
	ReasonMissingHost Reason = "missing-host"
)

// ErrInvalidReason is the sentinel error wrapped by InvalidReasonError.
var ErrInvalidReason = errors.New("invalid rejection reason")

type (
	// Reason identifies why a literal was rejected. Its string value doubles
	// as the diagnostic category reported by the analyzer.
	Reason string

	// InvalidReasonError is returned when a Reason value is not recognized.
	InvalidReasonError struct {
		Value Reason
	}
)

// reasonMessages holds the one fixed user-facing message per reason.
var reasonMessages = map[Reason]string{
	ReasonNotAStringLiteral: "Argument is not a string literal",
	ReasonNotAParsableURL:   "Argument is not a valid URL",
	ReasonUnsupportedScheme: "Web URL's must start with 'http://' or 'https://",
	ReasonMissingHost:       "Web URL's must contain a valid hostname",
}

// Reasons returns every known reason in gate order.
func Reasons() []Reason {
	return []Reason{
		ReasonNotAStringLiteral,
		ReasonNotAParsableURL,
		ReasonUnsupportedScheme,
		ReasonMissingHost,
	}
}

// String returns the reason identifier.
func (r Reason) String() string { return string(r) }

// Validate returns an error if r is not one of the known reasons.
func (r Reason) Validate() error {
	if _, ok := reasonMessages[r]; !ok {
		return &InvalidReasonError{Value: r}
	}
	return nil
}

// Message returns the fixed human-readable message for r, or the empty
// string for an unknown reason.
func (r Reason) Message() string { return reasonMessages[r] }

// Error implements the error interface.
func (e *InvalidReasonError) Error() string {
	return fmt.Sprintf("invalid rejection reason %q", e.Value)
}

// Unwrap returns ErrInvalidReason for errors.Is() compatibility.
func (e *InvalidReasonError) Unwrap() error { return ErrInvalidReason }
