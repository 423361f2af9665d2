// SPDX-License-Identifier: MPL-2.0

package staticurllint

import (
	"fmt"

	"golang.org/x/tools/go/analysis"
)

// reportStaleExceptionsInline reports exceptions that matched zero literals
// within the current package. go/analysis runs per package, so cross-package
// audits should pipe the output through sort -u.
func reportStaleExceptionsInline(pass *analysis.Pass, cfg *Config) {
	stale := cfg.staleExceptions()
	if len(stale) == 0 || len(pass.Files) == 0 {
		return
	}

	pos := pass.Files[0].Package

	for _, idx := range stale {
		exc := cfg.Exceptions[idx]
		pass.Report(analysis.Diagnostic{
			Pos:      pos,
			Category: CategoryStaleException,
			Message: fmt.Sprintf(
				"stale exception: pattern %q matched no literals (reason: %s)",
				exc.Pattern, exc.Reason),
		})
	}
}
