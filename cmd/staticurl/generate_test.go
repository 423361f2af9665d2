// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/invowk/staticurl/internal/config"
	"github.com/invowk/staticurl/internal/issue"
	"github.com/invowk/staticurl/pkg/urllit"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "staticurls.cue")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const goodManifest = `
go_package: "links"
urls: {
	Home: "https://example.com"
	Docs: "https://example.com/docs"
}
`

func TestGenerateWritesFile(t *testing.T) {
	t.Parallel()

	manifestPath := writeManifest(t, goodManifest)
	output := filepath.Join(t.TempDir(), "links_gen.go")

	res := runCLI(t, nil, "", "generate", "--manifest", manifestPath, "--output", output)
	if res.err != nil {
		t.Fatalf("err = %v\nstderr: %s", res.err, res.stderr)
	}

	src, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	got := string(src)
	for _, want := range []string{
		"package links",
		`Docs = urllit.MustParse("https://example.com/docs")`,
		`Home = urllit.MustParse("https://example.com")`,
		"DO NOT EDIT.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("generated file missing %q:\n%s", want, got)
		}
	}
	if !strings.Contains(res.stderr, "generated URL declarations") {
		t.Errorf("stderr = %q, want info log", res.stderr)
	}
}

func TestGeneratePackagePrecedence(t *testing.T) {
	t.Parallel()

	manifestPath := writeManifest(t, goodManifest)

	cfg := config.DefaultConfig()
	cfg.Generate.Package = "fromconfig"
	cfg.Generate.Manifest = manifestPath
	p := &stubProvider{cfg: cfg}

	res := runCLI(t, p, "", "generate", "--stdout")
	if res.err != nil {
		t.Fatalf("err = %v", res.err)
	}
	if !strings.Contains(res.stdout, "package fromconfig") {
		t.Errorf("config package not applied:\n%s", res.stdout)
	}

	res = runCLI(t, p, "", "generate", "--stdout", "--package", "fromflag")
	if res.err != nil {
		t.Fatalf("err = %v", res.err)
	}
	if !strings.Contains(res.stdout, "package fromflag") {
		t.Errorf("flag package not applied:\n%s", res.stdout)
	}
}

func TestGenerateRejectsAndWritesNothing(t *testing.T) {
	t.Parallel()

	manifestPath := writeManifest(t, `
go_package: "links"
urls: {
	Good:   "https://example.com"
	Legacy: "ftp://files.example.com"
	Empty:  "https://"
}
`)
	output := filepath.Join(t.TempDir(), "links_gen.go")

	res := runCLI(t, nil, "", "generate", "--manifest", manifestPath, "--output", output)

	var ae *issue.ActionableError
	if !errors.As(res.err, &ae) {
		t.Fatalf("err = %v, want *issue.ActionableError", res.err)
	}
	if ae.Operation != "generate URL declarations" || ae.Resource != manifestPath {
		t.Errorf("ActionableError = %+v", ae)
	}
	if !errors.Is(res.err, urllit.ErrRejected) {
		t.Error("error should wrap urllit.ErrRejected")
	}

	msg := res.err.Error()
	for _, want := range []string{
		"2 of 3 entries rejected",
		`urls.Empty: ` + urllit.ReasonMissingHost.Message() + `: "https://"`,
		`urls.Legacy: ` + urllit.ReasonUnsupportedScheme.Message() + `: "ftp://files.example.com"`,
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("error missing %q:\n%s", want, msg)
		}
	}
	if strings.Index(msg, "urls.Empty") > strings.Index(msg, "urls.Legacy") {
		t.Errorf("rejections not in name order:\n%s", msg)
	}

	if _, err := os.Stat(output); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("output written despite rejections: %v", err)
	}
}

func TestGenerateManifestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		manifest string
		wantErr  string
	}{
		{name: "missing file", wantErr: "no such file"},
		{name: "invalid name", manifest: `go_package: "links", urls: {home: "https://example.com"}`, wantErr: "urls.home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "missing.cue")
			if tt.manifest != "" {
				path = writeManifest(t, tt.manifest)
			}

			res := runCLI(t, nil, "", "generate", "--manifest", path, "--stdout")
			var ae *issue.ActionableError
			if !errors.As(res.err, &ae) {
				t.Fatalf("err = %v, want *issue.ActionableError", res.err)
			}
			if ae.Operation != "read URL manifest" {
				t.Errorf("Operation = %q", ae.Operation)
			}
			if !strings.Contains(res.err.Error(), tt.wantErr) {
				t.Errorf("err = %q, want it to contain %q", res.err, tt.wantErr)
			}
		})
	}
}

func TestGenerateRejectsArgs(t *testing.T) {
	t.Parallel()

	if res := runCLI(t, nil, "", "generate", "extra"); res.err == nil {
		t.Error("generate should reject positional arguments")
	}
}

func TestFirstNonEmpty(t *testing.T) {
	t.Parallel()

	if got := firstNonEmpty("", "b", "c"); got != "b" {
		t.Errorf("firstNonEmpty = %q", got)
	}
	if got := firstNonEmpty("", ""); got != "" {
		t.Errorf("firstNonEmpty = %q", got)
	}
}
