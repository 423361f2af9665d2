package configured

import (
	"net/url"

	"github.com/invowk/staticurl/pkg/urllit"
)

type Client struct{}

func (c *Client) Endpoint(name, raw string) string { return name + raw }

func use(c *Client, dyn string) {
	_, _ = url.Parse("https://example.com")
	_, _ = url.Parse("ftp://example.com") // want `Web URL's must start with 'http://' or 'https://: "ftp://example.com"`
	_, _ = url.Parse(dyn)                 // want `Argument is not a string literal: url\.Parse\(dyn\)`

	_ = c.Endpoint("health", "http://") // want `Web URL's must contain a valid hostname: "http://"`
	_ = c.Endpoint("http://", "https://ok.example.com")

	_ = urllit.MustParse("ftp://legacy.example.com/file")
	_ = urllit.MustParse("ftp://other.example.com") // want `Web URL's must start with 'http://' or 'https://: "ftp://other.example.com"`
}
