// SPDX-License-Identifier: MPL-2.0

// Package urllit validates static web URL literals.
//
// Validate is an ordered gate over a literal's text. The first failing check
// decides the outcome and no further checks run:
//
//  1. The text must already be a static string. This is a caller precondition;
//     the staticurllint analyzer enforces it at vet time.
//  2. The text must parse as a URL in strict mode. Characters outside the
//     RFC 3986 set are a parse failure, never percent-encoded.
//  3. The scheme, as written, must contain "http".
//  4. The URL must name a host.
//
// An accepted literal carries its input text verbatim; the package never
// rewrites or canonicalizes it.
//
// # Usage
//
//	var apiBase = urllit.MustParse("https://api.example.com")
//
//	out := urllit.Validate(text)
//	if !out.IsAccepted() {
//		return out.Err()
//	}
//
// All functions are pure and safe for concurrent use.
package urllit
