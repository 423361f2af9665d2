// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and the Markdown guidance shown for
// each kind of rejected URL literal and CLI failure.
package issue
