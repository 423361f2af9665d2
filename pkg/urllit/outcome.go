// SPDX-License-Identifier: MPL-2.0

package urllit

import (
	"errors"
	"fmt"
)

// ErrRejected is the sentinel error wrapped by RejectedError.
var ErrRejected = errors.New("url literal rejected")

type (
	// Outcome is the result of validating one literal: either accepted with
	// the literal text to construct from, or rejected with exactly one reason.
	// The zero value is a rejection with an empty reason and should not be used;
	// build outcomes with Accepted or Rejected.
	Outcome struct {
		accepted bool
		text     Literal
		reason   Reason
	}

	// RejectedError reports a rejected literal together with its reason.
	RejectedError struct {
		Literal Literal
		Reason  Reason
	}
)

// Accepted returns an accepting outcome that carries text verbatim.
func Accepted(text Literal) Outcome {
	return Outcome{accepted: true, text: text}
}

// Rejected returns a rejecting outcome for reason.
func Rejected(reason Reason) Outcome {
	return Outcome{reason: reason}
}

// IsAccepted reports whether the literal passed every check.
func (o Outcome) IsAccepted() bool { return o.accepted }

// Text returns the accepted literal text. It is empty for rejections.
func (o Outcome) Text() Literal { return o.text }

// Reason returns the rejection reason. It is empty for accepted outcomes.
func (o Outcome) Reason() Reason { return o.reason }

// Err returns nil for an accepted outcome and a *RejectedError otherwise.
// The rejected literal is not part of an Outcome, so the returned error's
// Literal field is empty; use RejectedError directly when it is known.
func (o Outcome) Err() error {
	if o.accepted {
		return nil
	}
	return &RejectedError{Reason: o.reason}
}

// String renders the outcome for logs and test failures.
func (o Outcome) String() string {
	if o.accepted {
		return fmt.Sprintf("accepted(%q)", string(o.text))
	}
	return fmt.Sprintf("rejected(%s)", o.reason)
}

// Error implements the error interface.
func (e *RejectedError) Error() string {
	if e.Literal == "" {
		return e.Reason.Message()
	}
	return fmt.Sprintf("%s: %q", e.Reason.Message(), string(e.Literal))
}

// Unwrap returns ErrRejected for errors.Is() compatibility.
func (e *RejectedError) Unwrap() error { return ErrRejected }
