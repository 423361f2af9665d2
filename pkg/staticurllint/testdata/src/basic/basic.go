package basic

import "github.com/invowk/staticurl/pkg/urllit"

const apiBase = "https://api.example.com"

var (
	home   = urllit.MustParse("https://example.com/path?q=1")
	api    = urllit.MustParse(apiBase)
	joined = urllit.MustParse("https://example.com" + "/v1")
	loose  = urllit.MustParse("httpfoo://example.com")
	local  = urllit.MustParse(`http://localhost:3000/health`)

	bad    = urllit.MustParse("not a url")         // want `Argument is not a valid URL: "not a url"`
	ftp    = urllit.MustParse("ftp://example.com") // want `Web URL's must start with 'http://' or 'https://: "ftp://example.com"`
	nohost = urllit.MustParse("http://")           // want `Web URL's must contain a valid hostname: "http://"`
	paren  = urllit.MustParse(("mailto:a@b.c"))    // want `Web URL's must start with 'http://' or 'https://: "mailto:a@b.c"`

	//staticurl:ignore -- documents a legacy mirror
	ignored = urllit.MustParse("ftp://mirror.example.com")
	inline  = urllit.MustParse("http://") //nolint:staticurl
)

func dynamic(host string) {
	_ = urllit.MustParse("https://" + host) // want `Argument is not a string literal: urllit\.MustParse\("https://" \+ host\)`
}

func notTargets() {
	// Parse returns an error and is not a target.
	_, _ = urllit.Parse("ftp://example.com")

	// Calls through a function value have no static callee.
	f := urllit.MustParse
	_ = f("ftp://example.com")
}
