// Package urllit is a fixture copy of the real package's call surface.
package urllit

import "net/url"

func MustParse(text string) *url.URL {
	u, err := url.Parse(text)
	if err != nil {
		panic(err)
	}
	return u
}

func Parse(text string) (*url.URL, error) { return url.Parse(text) }
