package baseline

import "github.com/invowk/staticurl/pkg/urllit"

var (
	known = urllit.MustParse("ftp://known.example.com")
	fresh = urllit.MustParse("ftp://fresh.example.com") // want `Web URL's must start with 'http://' or 'https://: "ftp://fresh.example.com"`
)
