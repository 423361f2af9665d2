package literalonly

import "github.com/invowk/staticurl/pkg/urllit"

const base = "https://example.com"

var (
	plain  = urllit.MustParse("https://example.com")
	paren  = urllit.MustParse(("https://example.com"))
	named  = urllit.MustParse(base)                            // want `Argument is not a string literal: urllit\.MustParse\(base\)`
	concat = urllit.MustParse("https://example.com" + "/v1")   // want `Argument is not a string literal: urllit\.MustParse\("https://example\.com" \+ "/v1"\)`
	badLit = urllit.MustParse("ftp://example.com")             // want `Web URL's must start with 'http://' or 'https://: "ftp://example.com"`
)
