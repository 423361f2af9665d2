package configured

import "github.com/invowk/staticurl/pkg/urllit"

// Excluded by exclude_paths; no diagnostic expected.
var generated = urllit.MustParse("not a url")
