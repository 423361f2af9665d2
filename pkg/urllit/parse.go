// SPDX-License-Identifier: MPL-2.0

package urllit

import "net/url"

// Parse validates text and returns the parsed URL. A rejected literal yields
// a *RejectedError naming the literal and the reason.
func Parse(text string) (*url.URL, error) {
	out := Validate(text)
	if !out.IsAccepted() {
		return nil, &RejectedError{Literal: Literal(text), Reason: out.Reason()}
	}
	// Validate already parsed the same text successfully.
	u, err := url.Parse(out.Text().String())
	if err != nil {
		return nil, &RejectedError{Literal: Literal(text), Reason: ReasonNotAParsableURL}
	}
	return u, nil
}

// MustParse is like Parse but panics if text is rejected. It is meant for
// package-level URL values built from literals; the staticurl analyzer
// requires every direct call to pass a constant string that Parse accepts.
// Calls through a function value are not checked.
func MustParse(text string) *url.URL {
	u, err := Parse(text)
	if err != nil {
		panic("urllit: MustParse: " + err.Error())
	}
	return u
}
