// SPDX-License-Identifier: MPL-2.0

package urllit

// Literal is the exact text of a static string supplied to the validator.
// It is never escaped, interpolated, or trimmed.
type Literal string

// String returns the literal text.
func (l Literal) String() string { return string(l) }
