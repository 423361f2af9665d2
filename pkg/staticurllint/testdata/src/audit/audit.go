package audit // want `stale exception: pattern "never-matches://\*" matched no literals \(reason: stale entry\)`

import "github.com/invowk/staticurl/pkg/urllit"

var legacy = urllit.MustParse("ftp://legacy.example.com/file")
