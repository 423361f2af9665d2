// SPDX-License-Identifier: MPL-2.0

// Package config loads staticurl CLI settings using Viper with CUE as the file
// format.
//
// The file is looked up at the --config path when given, otherwise at
// $XDG_CONFIG_HOME/staticurl/config.cue and then ./staticurl.cue. Values are
// validated against the embedded config_schema.cue and can be overridden with
// STATICURL_* environment variables (STATICURL_CHECK_FORMAT=json).
package config
