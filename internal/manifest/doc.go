// SPDX-License-Identifier: MPL-2.0

// Package manifest reads the CUE file consumed by `staticurl generate`:
//
//	go_package: "links"
//	doc:     "Links used by the web frontend."
//	urls: {
//		Home: "https://example.com"
//		Docs: "https://example.com/docs"
//	}
//
// Names must be exported Go identifiers. URL values are plain strings here;
// they are validated by the generator, which reports every rejection at once.
package manifest
