// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/invowk/staticurl/internal/codegen"
	"github.com/invowk/staticurl/internal/issue"
	"github.com/invowk/staticurl/internal/manifest"
	"github.com/invowk/staticurl/pkg/urllit"
)

type generateOptions struct {
	manifest string
	output   string
	pkg      string
	stdout   bool
}

func newGenerateCommand(app *App) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate pre-validated URL variables from a CUE manifest",
		Long: `Generate a Go file declaring one urllit.MustParse variable per manifest entry.

Every entry is validated first. If any entry is rejected, all rejections are
reported and no file is written. Suitable for go:generate:

  //go:generate staticurl generate --manifest staticurls.cue`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.manifest, "manifest", "m", "", "manifest `PATH` (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output `PATH` (default from config)")
	cmd.Flags().StringVar(&opts.pkg, "package", "", "package name (default from config or manifest)")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "print the generated file instead of writing it")

	return cmd
}

func runGenerate(app *App, opts *generateOptions) error {
	settings := app.settings().Generate
	manifestPath := firstNonEmpty(opts.manifest, settings.Manifest)
	outputPath := firstNonEmpty(opts.output, settings.Output)

	app.logger.Debug("reading manifest", "path", manifestPath)
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("read URL manifest").
			WithResource(manifestPath).
			WithSuggestion("Run 'staticurl explain manifest' to see the expected layout").
			WithSuggestion("Pass --manifest to point at another file").
			Wrap(err).
			BuildError()
	}

	entries := m.Entries()
	if err := rejectedEntries(entries); err != nil {
		return issue.NewErrorContext().
			WithOperation("generate URL declarations").
			WithResource(manifestPath).
			WithSuggestion("Fix the rejected entries; run 'staticurl explain <reason>' for details").
			Wrap(err).
			BuildError()
	}

	file := codegen.File{
		Package: firstNonEmpty(opts.pkg, settings.Package, m.Package),
		Source:  manifestPath,
		Doc:     m.Doc,
		Entries: entries,
	}

	if opts.stdout {
		src, err := codegen.Render(file)
		if err != nil {
			return err
		}
		_, err = app.stdout.Write(src)
		return err
	}

	if err := codegen.Write(outputPath, file); err != nil {
		return issue.NewErrorContext().
			WithOperation("write generated file").
			WithResource(outputPath).
			Wrap(err).
			BuildError()
	}

	app.logger.Info("generated URL declarations", "output", outputPath, "count", len(entries))
	return nil
}

// rejectedEntries validates every entry and joins one error per rejection,
// in entry order.
func rejectedEntries(entries []manifest.Entry) error {
	var errs []error
	for _, e := range entries {
		out := urllit.Validate(e.Literal.String())
		if out.IsAccepted() {
			continue
		}
		errs = append(errs, fmt.Errorf("urls.%s: %w", e.Name, &urllit.RejectedError{
			Literal: e.Literal,
			Reason:  out.Reason(),
		}))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d entries rejected:\n%w", len(errs), len(entries), errors.Join(errs...))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
