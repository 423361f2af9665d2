// SPDX-License-Identifier: MPL-2.0

// Package staticurllint implements a go/analysis analyzer that checks URL
// literals at vet time. Every call to a target function (by default
// urllit.MustParse) must pass a compile-time constant string, and that string
// must be accepted by urllit.Validate. Each failing call gets exactly one
// diagnostic, carrying the first rejection reason as its category.
//
// Findings can be suppressed with a //staticurl:ignore or //nolint:staticurl
// comment on the call line (or the line above), with exception patterns and
// exclude_paths from a TOML config file, or with a baseline file of accepted
// findings.
//
// Additional modes:
//   - --audit-exceptions: report exception patterns that matched no literal
//   - --literal-only: accept only string literal tokens, not named constants
//   - --skip-tests: do not check _test.go files
package staticurllint

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"github.com/invowk/staticurl/pkg/urllit"
)

// Diagnostic category constants for structured JSON output. The rejection
// categories are the urllit.Reason identifiers.
const (
	CategoryNotAStringLiteral = string(urllit.ReasonNotAStringLiteral)
	CategoryNotAParsableURL   = string(urllit.ReasonNotAParsableURL)
	CategoryUnsupportedScheme = string(urllit.ReasonUnsupportedScheme)
	CategoryMissingHost       = string(urllit.ReasonMissingHost)
	CategoryStaleException    = "stale-exception"
)

// DefaultTarget is the function whose first argument is always checked,
// whether or not a config file names additional targets.
const DefaultTarget = "github.com/invowk/staticurl/pkg/urllit.MustParse"

// Flag binding variables. run() reads them once via newRunConfig().
var (
	configPath      string
	baselinePath    string
	auditExceptions bool
	literalOnly     bool
	skipTests       bool
)

// Analyzer is the staticurl analysis pass. Use it with singlechecker or
// multichecker, or via go vet -vettool.
var Analyzer = &analysis.Analyzer{
	Name:     "staticurl",
	Doc:      "reports URL literals that are not static, well-formed http(s) URLs with a host",
	URL:      "https://github.com/invowk/staticurl/pkg/staticurllint",
	Run:      run,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

func init() {
	Analyzer.Flags.StringVar(&configPath, "config", "",
		"path to staticurl TOML config file (targets, exceptions, exclude_paths)")
	Analyzer.Flags.StringVar(&baselinePath, "baseline", "",
		"path to baseline TOML file (suppress known findings, report only new ones)")
	Analyzer.Flags.BoolVar(&auditExceptions, "audit-exceptions", false,
		"report exception patterns that matched zero literals (stale entries)")
	Analyzer.Flags.BoolVar(&literalOnly, "literal-only", false,
		"require a string literal token; reject named constants and constant expressions")
	Analyzer.Flags.BoolVar(&skipTests, "skip-tests", false,
		"do not check _test.go files")
}

// runConfig holds the resolved flag values for a single run() invocation.
type runConfig struct {
	configPath      string
	baselinePath    string
	auditExceptions bool
	literalOnly     bool
	skipTests       bool
}

func newRunConfig() runConfig {
	return runConfig{
		configPath:      configPath,
		baselinePath:    baselinePath,
		auditExceptions: auditExceptions,
		literalOnly:     literalOnly,
		skipTests:       skipTests,
	}
}

func run(pass *analysis.Pass) (any, error) {
	rc := newRunConfig()

	cfg, err := loadConfig(rc.configPath)
	if err != nil {
		return nil, err
	}

	bl, err := loadBaseline(rc.baselinePath)
	if err != nil {
		return nil, err
	}

	targets := cfg.targetArgs()
	ignores := collectIgnoreDirectives(pass)
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)

		if rc.skipTests && isTestFile(pass, call.Pos()) {
			return
		}
		if cfg.isExcludedPath(pass.Fset.Position(call.Pos()).Filename) {
			return
		}

		fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
		if !ok {
			return
		}
		argIdx, ok := targets[fn.FullName()]
		if !ok || argIdx >= len(call.Args) {
			return
		}
		if ignores.covers(pass.Fset, call.Pos()) {
			return
		}

		checkCall(pass, call, fn, call.Args[argIdx], rc, cfg, bl)
	})

	if rc.auditExceptions {
		reportStaleExceptionsInline(pass, cfg)
	}

	return nil, nil
}
