// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI commands for staticurl.
//
// The root command wires `check`, `generate`, `config` and `explain` around an
// App that carries the configuration provider and the process streams, so
// tests can run the full command tree against buffers.
package cmd
