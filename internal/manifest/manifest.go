// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	_ "embed"
	"errors"
	"fmt"
	"go/token"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/invowk/staticurl/internal/cueutil"
	"github.com/invowk/staticurl/pkg/urllit"
)

// MaxFileSize is the largest manifest accepted.
const MaxFileSize int64 = 1 << 20

//go:embed manifest_schema.cue
var schema []byte

var (
	// ErrEmptyManifest is returned when a manifest declares no URLs.
	ErrEmptyManifest = errors.New("manifest declares no urls")
	// ErrInvalidName is wrapped by InvalidNameError.
	ErrInvalidName = errors.New("invalid URL name")
)

type (
	// Manifest is a decoded manifest file.
	Manifest struct {
		Package string            `json:"go_package"`
		Doc     string            `json:"doc,omitempty"`
		URLs    map[string]string `json:"urls"`
	}

	// Entry is one named URL literal.
	Entry struct {
		Name    string
		Literal urllit.Literal
	}

	// InvalidNameError reports a URL name that is not an exported Go identifier.
	InvalidNameError struct {
		Name string
	}
)

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("urls.%s: not an exported Go identifier", e.Name)
}

func (e *InvalidNameError) Unwrap() error { return ErrInvalidName }

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	if info.Size() > MaxFileSize {
		return nil, &cueutil.FileTooLargeError{Filename: path, Size: info.Size(), Max: MaxFileSize}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data, path)
}

// Parse validates data against #Manifest. filename is used in error messages.
func Parse(data []byte, filename string) (*Manifest, error) {
	res, err := cueutil.ParseAndDecode[Manifest](schema, data, "#Manifest",
		cueutil.WithFilename(filename),
		cueutil.WithMaxFileSize(MaxFileSize),
	)
	if err != nil {
		return nil, err
	}

	m := res.Value
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return m, nil
}

// Validate checks the constraints the schema cannot express in Go terms.
func (m *Manifest) Validate() error {
	if len(m.URLs) == 0 {
		return ErrEmptyManifest
	}
	if !token.IsIdentifier(m.Package) || m.Package == "_" {
		return fmt.Errorf("go_package %q: not a valid Go package name", m.Package)
	}

	var errs []error
	for _, name := range slices.Sorted(maps.Keys(m.URLs)) {
		if !token.IsIdentifier(name) || !token.IsExported(name) {
			errs = append(errs, &InvalidNameError{Name: name})
		}
	}
	return errors.Join(errs...)
}

// Entries returns the URLs sorted by name.
func (m *Manifest) Entries() []Entry {
	entries := make([]Entry, 0, len(m.URLs))
	for name, text := range m.URLs {
		entries = append(entries, Entry{Name: name, Literal: urllit.Literal(text)})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return entries
}
