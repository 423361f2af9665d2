// SPDX-License-Identifier: MPL-2.0

// Package cueutil compiles an embedded CUE schema, unifies user data with one
// of its definitions, validates the result and decodes it into Go values.
//
//	//go:embed manifest_schema.cue
//	var schema []byte
//
//	res, err := cueutil.ParseAndDecode[Manifest](schema, data, "#Manifest",
//		cueutil.WithFilename("staticurls.cue"),
//		cueutil.WithMaxFileSize(1<<20),
//	)
//
// Errors carry the CUE path of the offending value, e.g.
// "staticurls.cue: urls.Home: conflicting values 1 and string".
package cueutil
