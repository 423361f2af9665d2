// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/invowk/staticurl/internal/cueutil"
	"github.com/invowk/staticurl/pkg/urllit"
)

const validManifest = `
go_package: "links"
doc:     "Links used by the frontend."
urls: {
	Home:     "https://example.com"
	Docs:     "https://example.com/docs"
	API_Base: "https://api.example.com/v1/"
}
`

func TestParse(t *testing.T) {
	t.Parallel()

	m, err := Parse([]byte(validManifest), "staticurls.cue")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if m.Package != "links" {
		t.Errorf("Package = %q", m.Package)
	}
	if m.Doc != "Links used by the frontend." {
		t.Errorf("Doc = %q", m.Doc)
	}

	want := []Entry{
		{Name: "API_Base", Literal: "https://api.example.com/v1/"},
		{Name: "Docs", Literal: "https://example.com/docs"},
		{Name: "Home", Literal: "https://example.com"},
	}
	got := m.Entries()
	if len(got) != len(want) {
		t.Fatalf("Entries() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entries()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr string
		wantIs  error
	}{
		{
			name:    "lowercase name",
			data:    `go_package: "links", urls: {home: "https://example.com"}`,
			wantErr: "urls.home",
		},
		{
			name:    "non-string url",
			data:    `go_package: "links", urls: {Home: 42}`,
			wantErr: "urls.Home",
		},
		{
			name:    "missing package",
			data:    `urls: {Home: "https://example.com"}`,
			wantErr: "package",
		},
		{
			name:    "uppercase package",
			data:    `go_package: "Links", urls: {Home: "https://example.com"}`,
			wantErr: "package",
		},
		{
			name:   "no urls",
			data:   `go_package: "links", urls: {}`,
			wantIs: ErrEmptyManifest,
		},
		{
			name:    "unknown top-level field",
			data:    `go_package: "links", urls: {Home: "https://example.com"}, extra: 1`,
			wantErr: "extra",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.data), "m.cue")
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != "" && !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Errorf("error = %v, want errors.Is %v", err, tt.wantIs)
			}
			if !strings.HasPrefix(err.Error(), "m.cue") {
				t.Errorf("error = %q, want file prefix", err)
			}
		})
	}
}

func TestParseKeepsRejectedLiterals(t *testing.T) {
	t.Parallel()

	m, err := Parse([]byte(`go_package: "links", urls: {Bad: "ftp://example.com"}`), "m.cue")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	entries := m.Entries()
	if len(entries) != 1 || entries[0].Literal != "ftp://example.com" {
		t.Fatalf("Entries() = %v", entries)
	}
	if urllit.Validate(string(entries[0].Literal)).IsAccepted() {
		t.Error("ftp literal should be rejected by the validator")
	}
}

func TestValidateNames(t *testing.T) {
	t.Parallel()

	m := &Manifest{Package: "links", URLs: map[string]string{"Ok": "x", "not_exported": "y", "Bad-Name": "z"}}
	err := m.Validate()
	if !errors.Is(err, ErrInvalidName) {
		t.Fatalf("Validate() = %v, want ErrInvalidName", err)
	}
	if !strings.Contains(err.Error(), "urls.Bad-Name") || !strings.Contains(err.Error(), "urls.not_exported") {
		t.Errorf("Validate() = %q, want both names", err)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "staticurls.cue")
	if err := os.WriteFile(path, []byte(validManifest), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(m.URLs) != 3 {
		t.Errorf("URLs = %v", m.URLs)
	}

	if _, err := Load(filepath.Join(dir, "missing.cue")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) = %v, want os.ErrNotExist", err)
	}
}

func TestLoadTooLarge(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "big.cue")
	big := "go_package: \"links\"\n// " + strings.Repeat("x", int(MaxFileSize)) + "\n"
	if err := os.WriteFile(path, []byte(big), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, cueutil.ErrFileTooLarge) {
		t.Errorf("Load(big) = %v, want ErrFileTooLarge", err)
	}
}
