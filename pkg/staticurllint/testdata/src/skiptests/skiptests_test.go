package skiptests

import "github.com/invowk/staticurl/pkg/urllit"

// Test fixtures use deliberately broken literals; skipped by -skip-tests.
var broken = urllit.MustParse("not a url")
