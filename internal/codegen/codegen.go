// SPDX-License-Identifier: MPL-2.0

// Package codegen renders Go source declaring pre-validated URL variables.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/invowk/staticurl/internal/manifest"
)

// ImportPath is the package whose MustParse the generated code calls.
const ImportPath = "github.com/invowk/staticurl/pkg/urllit"

// ErrNoPackage is returned when File.Package is empty.
var ErrNoPackage = errors.New("generated file needs a package name")

// File describes one generated Go file.
type File struct {
	// Package is the Go package name.
	Package string
	// Source is the manifest path recorded in the header.
	Source string
	// Doc is an optional comment placed above the var block.
	Doc string
	// Entries are emitted in the given order.
	Entries []manifest.Entry
}

var fileTemplate = template.Must(template.New("urls").Funcs(template.FuncMap{
	"quote":   strconv.Quote,
	"comment": comment,
}).Parse(`// Code generated by staticurl generate{{if .Source}} from {{.Source}}{{end}}; DO NOT EDIT.

package {{.Package}}

import "` + ImportPath + `"
{{if .Doc}}
{{comment .Doc}}{{end}}
var (
{{- range .Entries}}
	{{.Name}} = urllit.MustParse({{quote .Literal.String}})
{{- end}}
)
`))

// Render returns the gofmt-ed source for f.
func Render(f File) ([]byte, error) {
	if f.Package == "" {
		return nil, ErrNoPackage
	}
	if !token.IsIdentifier(f.Package) {
		return nil, fmt.Errorf("invalid package name %q", f.Package)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, f); err != nil {
		return nil, fmt.Errorf("render %s: %w", f.Package, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

// Write renders f and replaces path atomically.
func Write(path string, f File) error {
	src, err := Render(f)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // no-op after a successful rename

	if _, err := tmp.Write(src); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}

func comment(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight("// "+l, " ")
	}
	return strings.Join(lines, "\n")
}
