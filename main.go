// SPDX-License-Identifier: MPL-2.0

// Command staticurl validates URL literals and generates pre-validated URL
// variables.
package main

import "github.com/invowk/staticurl/cmd/staticurl"

func main() {
	cmd.Execute()
}
