package aliases

import (
	. "github.com/invowk/staticurl/pkg/urllit"
	u "github.com/invowk/staticurl/pkg/urllit"
)

var (
	viaAlias = u.MustParse("ftp://example.com") // want `Web URL's must start with 'http://' or 'https://: "ftp://example.com"`
	viaDot   = MustParse("https://")            // want `Web URL's must contain a valid hostname: "https://"`
	fine     = u.MustParse("https://example.com")
)
