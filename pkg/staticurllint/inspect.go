// SPDX-License-Identifier: MPL-2.0

package staticurllint

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"

	"github.com/invowk/staticurl/pkg/urllit"
)

const (
	// ignoreDirective suppresses a finding on its line or the line below.
	ignoreDirective = "staticurl:ignore"
	// nolintName is the linter name accepted in //nolint:a,b lists.
	nolintName = "staticurl"
)

// checkCall validates the URL argument of one target call and reports at
// most one diagnostic. Findings present in the baseline are suppressed.
func checkCall(pass *analysis.Pass, call *ast.CallExpr, fn *types.Func, arg ast.Expr, rc runConfig, cfg *Config, bl *BaselineConfig) {
	text, ok := literalText(pass.TypesInfo, arg, rc.literalOnly)
	if !ok {
		msg := fmt.Sprintf("%s: %s(%s)",
			urllit.ReasonNotAStringLiteral.Message(), calleeName(fn), types.ExprString(arg))
		if bl.Contains(CategoryNotAStringLiteral, msg) {
			return
		}
		pass.Report(analysis.Diagnostic{
			Pos:      call.Pos(),
			End:      call.End(),
			Category: CategoryNotAStringLiteral,
			Message:  msg,
		})
		return
	}

	out := urllit.Validate(text)
	if out.IsAccepted() {
		return
	}
	if cfg.isExcepted(text) {
		return
	}

	category := out.Reason().String()
	msg := fmt.Sprintf("%s: %s", out.Reason().Message(), strconv.Quote(text))
	if bl.Contains(category, msg) {
		return
	}

	pass.Report(analysis.Diagnostic{
		Pos:      arg.Pos(),
		End:      arg.End(),
		Category: category,
		Message:  msg,
	})
}

// literalText returns the constant string value of arg. With literalOnly set,
// only a (possibly parenthesized) string literal token qualifies.
func literalText(info *types.Info, arg ast.Expr, literalOnly bool) (string, bool) {
	if literalOnly {
		lit, ok := ast.Unparen(arg).(*ast.BasicLit)
		if !ok || lit.Kind != token.STRING {
			return "", false
		}
	}

	tv, ok := info.Types[arg]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", false
	}
	return constant.StringVal(tv.Value), true
}

// calleeName renders fn as pkg.Name or pkg.Recv.Name for messages.
func calleeName(fn *types.Func) string {
	name := fn.Name()
	if sig, ok := fn.Type().(*types.Signature); ok && sig.Recv() != nil {
		if recv := receiverTypeName(sig.Recv().Type()); recv != "" {
			name = recv + "." + name
		}
	}
	if pkg := packageName(fn.Pkg()); pkg != "" {
		return pkg + "." + name
	}
	return name
}

// receiverTypeName extracts the named type behind a receiver, dereferencing
// pointers.
func receiverTypeName(t types.Type) string {
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	if named, ok := t.(*types.Named); ok {
		return named.Obj().Name()
	}
	return ""
}

// directiveLines records, per file, the lines carrying an ignore directive.
type directiveLines map[string]map[int]bool

// collectIgnoreDirectives scans every comment in the pass for ignore markers.
func collectIgnoreDirectives(pass *analysis.Pass) directiveLines {
	lines := make(directiveLines)
	for _, f := range pass.Files {
		for _, cg := range f.Comments {
			for _, c := range cg.List {
				if !hasDirective(c.Text) {
					continue
				}
				p := pass.Fset.Position(c.Slash)
				if lines[p.Filename] == nil {
					lines[p.Filename] = make(map[int]bool)
				}
				lines[p.Filename][p.Line] = true
			}
		}
	}
	return lines
}

// covers reports whether a directive sits on pos's line or the line above.
func (d directiveLines) covers(fset *token.FileSet, pos token.Pos) bool {
	p := fset.Position(pos)
	file := d[p.Filename]
	return file[p.Line] || file[p.Line-1]
}

// hasDirective checks whether a comment carries //staticurl:ignore or a
// //nolint list naming staticurl.
func hasDirective(comment string) bool {
	text := strings.TrimPrefix(comment, "//")
	text = strings.TrimPrefix(text, "/*")
	text = strings.TrimSuffix(text, "*/")
	text = strings.TrimSpace(text)

	if rest, ok := strings.CutPrefix(text, ignoreDirective); ok {
		return rest == "" || rest[0] == ' ' || rest[0] == ','
	}
	list, ok := strings.CutPrefix(text, "nolint:")
	if !ok {
		return false
	}
	list, _, _ = strings.Cut(list, " ")
	for name := range strings.SplitSeq(list, ",") {
		if name == nolintName {
			return true
		}
	}
	return false
}

// isTestFile returns true if the filename ends with _test.go.
func isTestFile(pass *analysis.Pass, pos token.Pos) bool {
	file := pass.Fset.Position(pos).Filename
	return strings.HasSuffix(file, "_test.go")
}

// packageName extracts the last segment of a package path.
func packageName(pkg *types.Package) string {
	if pkg == nil {
		return ""
	}
	path := pkg.Path()
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}
