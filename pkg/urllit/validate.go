// SPDX-License-Identifier: MPL-2.0

package urllit

import (
	"net/url"
	"strings"
)

// uriChars marks the bytes RFC 3986 permits anywhere in a URI reference:
// unreserved, gen-delims and sub-delims. '%' is handled separately.
var uriChars = func() (set [256]bool) {
	const allowed = "abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"0123456789" +
		"-._~" +
		":/?#[]@" +
		"!$&'()*+,;="
	for i := range len(allowed) {
		set[allowed[i]] = true
	}
	return set
}()

// schemeMarker is the text a scheme must contain to be accepted. The check is
// a substring match, so "https" and "httpfoo" both pass.
const schemeMarker = "http"

// Validate runs the ordered literal gate over text and returns the first
// failing reason, or an accepting outcome carrying text unchanged.
//
// The caller guarantees text is a static literal; Validate never returns
// ReasonNotAStringLiteral.
func Validate(text string) Outcome {
	u, ok := parseStrict(text)
	if !ok {
		return Rejected(ReasonNotAParsableURL)
	}

	if !strings.Contains(writtenScheme(text, u), schemeMarker) {
		return Rejected(ReasonUnsupportedScheme)
	}

	if u.Hostname() == "" {
		return Rejected(ReasonMissingHost)
	}

	return Accepted(Literal(text))
}

// parseStrict parses text as a URL, rejecting anything net/url would accept
// leniently: empty input, bytes outside the URI character set, malformed
// escapes and misplaced delimiters.
func parseStrict(text string) (*url.URL, bool) {
	if !wellFormed(text) {
		return nil, false
	}
	u, err := url.Parse(text)
	if err != nil {
		return nil, false
	}
	return u, true
}

// wellFormed checks the character-level grammar of a URI reference.
func wellFormed(text string) bool {
	if text == "" {
		return false
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '%' {
			if i+2 >= len(text) || !isHex(text[i+1]) || !isHex(text[i+2]) {
				return false
			}
			i += 2
			continue
		}
		if !uriChars[c] {
			return false
		}
	}

	rest, fragment, hasFragment := strings.Cut(text, "#")
	if hasFragment && strings.ContainsAny(fragment, "#[]") {
		return false
	}
	rest, query, hasQuery := strings.Cut(rest, "?")
	if hasQuery && strings.ContainsAny(query, "[]") {
		return false
	}

	// Brackets are only meaningful around an IP literal in the authority.
	hier := rest
	if i := strings.IndexByte(rest, ':'); i > 0 && !strings.Contains(rest[:i], "/") {
		hier = rest[i+1:]
	}
	if authority, ok := strings.CutPrefix(hier, "//"); ok {
		if j := strings.IndexByte(authority, '/'); j >= 0 {
			return !strings.ContainsAny(authority[j:], "[]")
		}
		return true
	}
	return !strings.ContainsAny(hier, "[]")
}

// writtenScheme returns the scheme exactly as it appears in text. net/url
// lowercases schemes; the gate matches against the original spelling.
func writtenScheme(text string, u *url.URL) string {
	if u.Scheme == "" || len(u.Scheme) > len(text) {
		return u.Scheme
	}
	return text[:len(u.Scheme)]
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}
