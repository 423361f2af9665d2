// SPDX-License-Identifier: MPL-2.0

// staticurllint reports URL literal arguments that are not static, valid
// http(s) URLs with a host. It checks urllit.MustParse by default and any
// extra targets named in the config file.
//
// Usage:
//
//	staticurllint [-config=staticurl.toml] [-json] ./...
//	staticurllint -literal-only -skip-tests ./...
//	staticurllint -audit-exceptions -config=staticurl.toml ./...
//	staticurllint -update-baseline=baseline.toml -config=staticurl.toml ./...
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/invowk/staticurl/pkg/staticurllint"
)

func main() {
	// singlechecker.Main() calls os.Exit(), so -update-baseline is handled first.
	if outputPath := extractUpdateBaselinePath(os.Args[1:]); outputPath != "" {
		if err := generateBaseline(outputPath, os.Args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "staticurllint: update-baseline: %v\n", err)
			os.Exit(1)
		}
		return
	}

	singlechecker.Main(staticurllint.Analyzer)
}

// extractUpdateBaselinePath scans CLI args for -update-baseline=PATH or
// --update-baseline=PATH and returns the path. Returns "" if not found.
func extractUpdateBaselinePath(args []string) string {
	for _, arg := range args {
		trimmed := strings.TrimLeft(arg, "-")
		if strings.HasPrefix(trimmed, "update-baseline=") {
			return strings.TrimPrefix(trimmed, "update-baseline=")
		}
	}
	return ""
}

// generateBaseline runs the analyzer as a subprocess with -json output,
// collects the diagnostics, and writes a sorted baseline TOML file.
// singlechecker has no post-analysis hook for cross-package aggregation.
func generateBaseline(outputPath string, originalArgs []string) error {
	selfPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolving executable path: %w", err)
	}

	cmd := exec.Command(selfPath, buildSubprocessArgs(originalArgs)...)
	cmd.Stderr = os.Stderr

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	// singlechecker exits non-zero when diagnostics are found; the JSON
	// output is needed regardless.
	_ = cmd.Run()

	findings, err := parseAnalysisJSON(stdout.Bytes())
	if err != nil {
		return fmt.Errorf("parsing analysis output: %w", err)
	}

	if err := staticurllint.WriteBaseline(outputPath, findings); err != nil {
		return fmt.Errorf("writing baseline: %w", err)
	}

	total := 0
	for _, msgs := range findings {
		total += len(msgs)
	}
	fmt.Fprintf(os.Stderr, "Baseline written: %s (%d findings)\n", outputPath, total)

	return nil
}

// buildSubprocessArgs drops -update-baseline and ensures -json is present.
// The baseline being regenerated must not filter its own findings, so an
// existing -baseline flag is dropped too.
func buildSubprocessArgs(args []string) []string {
	var result []string
	hasJSON := false

	for _, arg := range args {
		trimmed := strings.TrimLeft(arg, "-")

		if strings.HasPrefix(trimmed, "update-baseline") || strings.HasPrefix(trimmed, "baseline=") {
			continue
		}
		if trimmed == "json" {
			hasJSON = true
		}

		result = append(result, arg)
	}

	if !hasJSON {
		result = slices.Insert(result, 0, "-json")
	}

	return result
}

// analysisResult is the go/analysis -json output: package path to
// analyzer name to diagnostics.
type analysisResult map[string]map[string]json.RawMessage

// analysisDiagnostic is a single diagnostic in the -json output.
type analysisDiagnostic struct {
	Posn     string `json:"posn"`
	Message  string `json:"message"`
	Category string `json:"category"`
}

// parseAnalysisJSON parses the concatenated per-package JSON objects and
// returns deduplicated, sorted messages grouped by category. Stale-exception
// diagnostics are config maintenance, not findings, and are dropped.
func parseAnalysisJSON(data []byte) (map[string][]string, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))

	// Test variants of a package report the same findings twice.
	seen := make(map[string]map[string]bool)

	for decoder.More() {
		var result analysisResult
		if err := decoder.Decode(&result); err != nil {
			return nil, fmt.Errorf("decoding JSON object: %w", err)
		}

		for _, analyzers := range result {
			raw, ok := analyzers[staticurllint.Analyzer.Name]
			if !ok {
				continue
			}
			var diags []analysisDiagnostic
			// Analyzer errors are encoded as {"error": "..."}; skip those.
			if err := json.Unmarshal(raw, &diags); err != nil {
				continue
			}
			for _, d := range diags {
				if d.Category == staticurllint.CategoryStaleException {
					continue
				}
				if d.Category == "" || d.Message == "" {
					continue
				}
				if seen[d.Category] == nil {
					seen[d.Category] = make(map[string]bool)
				}
				seen[d.Category][d.Message] = true
			}
		}
	}

	findings := make(map[string][]string, len(seen))
	for cat, msgs := range seen {
		sorted := make([]string, 0, len(msgs))
		for msg := range msgs {
			sorted = append(sorted, msg)
		}
		slices.Sort(sorted)
		findings[cat] = sorted
	}

	return findings, nil
}
