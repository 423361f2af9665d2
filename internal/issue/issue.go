// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/invowk/staticurl/pkg/urllit"
)

// Id identifies one entry of the guidance catalog.
type Id int

const (
	NotAStringLiteralId Id = iota + 1
	NotAParsableURLId
	UnsupportedSchemeId
	MissingHostId
	ConfigLoadFailedId
	ManifestInvalidId
)

type (
	// MarkdownMsg is guidance text rendered with glamour.
	MarkdownMsg string

	// HttpLink is a documentation link appended to the rendered guidance.
	HttpLink string

	// Issue is one catalog entry.
	Issue struct {
		id       Id
		reason   urllit.Reason // empty for CLI failures
		mdMsg    MarkdownMsg
		docLinks []HttpLink
	}
)

func (i *Issue) Id() Id { return i.id }

// Reason returns the rejection reason this entry documents, if any.
func (i *Issue) Reason() urllit.Reason { return i.reason }

func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

func (i *Issue) DocLinks() []HttpLink { return slices.Clone(i.docLinks) }

// Render renders the guidance with a glamour style ("dark", "light",
// "notty", "auto", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("\n- ")
			md.WriteString(string(link))
		}
	}
	return glamour.Render(md.String(), stylePath)
}

const rfc3986 HttpLink = "https://www.rfc-editor.org/rfc/rfc3986"

var (
	notAStringLiteralIssue = &Issue{
		id:     NotAStringLiteralId,
		reason: urllit.ReasonNotAStringLiteral,
		mdMsg: `
# Argument is not a string literal

The URL passed to ` + "`urllit.MustParse`" + ` (or another checked function) is
computed at run time, so it cannot be verified before the program runs.

## Things you can try
- Pass a string literal or a constant:
~~~go
var api = urllit.MustParse("https://api.example.com")
~~~
- Build dynamic URLs from a static base at run time:
~~~go
u := api.JoinPath("users", id)
~~~
- Use ` + "`urllit.Parse`" + ` and handle the error when the text is truly dynamic.`,
	}

	notAParsableURLIssue = &Issue{
		id:     NotAParsableURLId,
		reason: urllit.ReasonNotAParsableURL,
		mdMsg: `
# Argument is not a valid URL

The literal does not parse as a URL. Characters outside the URI character set
(spaces, quotes, non-ASCII text) are rejected rather than percent-encoded.

## Things you can try
- Percent-encode reserved or non-ASCII characters yourself (` + "`%20`" + ` for a space)
- Check for a stray space or quote at either end of the literal
- Make sure every ` + "`%`" + ` is followed by two hex digits`,
		docLinks: []HttpLink{rfc3986},
	}

	unsupportedSchemeIssue = &Issue{
		id:     UnsupportedSchemeId,
		reason: urllit.ReasonUnsupportedScheme,
		mdMsg: `
# Web URL's must start with 'http://' or 'https://'

Only web URLs are accepted. The scheme is compared as written, so
` + "`HTTPS://`" + ` and ` + "`ftp://`" + ` are both rejected.

## Things you can try
- Prefix the literal with ` + "`https://`" + `
- Write the scheme in lower case`,
	}

	missingHostIssue = &Issue{
		id:     MissingHostId,
		reason: urllit.ReasonMissingHost,
		mdMsg: `
# Web URL's must contain a valid hostname

The literal has a web scheme but no host, as in ` + "`http://`" + ` or
` + "`https:///path`" + `.

## Things you can try
- Add the host name after the scheme: ` + "`https://example.com/path`" + `
- Remove an extra slash after ` + "`https://`",
		docLinks: []HttpLink{rfc3986 + "#section-3.2.2"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration

The staticurl configuration could not be read or did not match its schema.

## Things you can try
- Show the resolved location:
~~~
$ staticurl config path
~~~
- Compare your file with the defaults:
~~~
$ staticurl config show
~~~`,
	}

	manifestInvalidIssue = &Issue{
		id: ManifestInvalidId,
		mdMsg: `
# Invalid URL manifest

The manifest passed to ` + "`staticurl generate`" + ` must look like:
~~~cue
go_package: "links"
urls: {
	Home: "https://example.com"
	Docs: "https://example.com/docs"
}
~~~
Names must be exported Go identifiers.`,
	}

	issues = map[Id]*Issue{
		notAStringLiteralIssue.Id(): notAStringLiteralIssue,
		notAParsableURLIssue.Id():   notAParsableURLIssue,
		unsupportedSchemeIssue.Id(): unsupportedSchemeIssue,
		missingHostIssue.Id():       missingHostIssue,
		configLoadFailedIssue.Id():  configLoadFailedIssue,
		manifestInvalidIssue.Id():   manifestInvalidIssue,
	}
)

// Values returns all catalog entries ordered by Id.
func Values() []*Issue {
	return slices.SortedFunc(maps.Values(issues), func(a, b *Issue) int {
		return int(a.id) - int(b.id)
	})
}

// Get returns the entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}

// ForReason returns the entry documenting a rejection reason, or nil.
func ForReason(r urllit.Reason) *Issue {
	for _, i := range issues {
		if i.reason != "" && i.reason == r {
			return i
		}
	}
	return nil
}
