package skiptests

import "github.com/invowk/staticurl/pkg/urllit"

var prod = urllit.MustParse("http://") // want `Web URL's must contain a valid hostname: "http://"`
