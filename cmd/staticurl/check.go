// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/invowk/staticurl/internal/config"
	"github.com/invowk/staticurl/pkg/urllit"
)

// errNoLiterals is returned when check has nothing to validate.
var errNoLiterals = errors.New("no literals given: pass them as arguments or with --file")

type (
	checkOptions struct {
		file   string
		format string
	}

	// checkResult is one JSON array element of `check --format json`.
	checkResult struct {
		Literal  string        `json:"literal"`
		Accepted bool          `json:"accepted"`
		Reason   urllit.Reason `json:"reason,omitempty"`
		Message  string        `json:"message,omitempty"`
	}
)

func newCheckCommand(app *App) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [literal...]",
		Short: "Validate URL literals",
		Long: `Validate URL literals with the same rules the analyzer applies.

Literals come from the arguments and, with --file, from a file holding one
literal per line (blank lines and lines starting with '#' are skipped).
Use --file - to read standard input. Every literal is reported; the command
exits with status 1 when any of them is rejected.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(app, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read literals from `PATH` (- for stdin)")
	cmd.Flags().StringVar(&opts.format, "format", "", "output format: text or json (default from config)")

	return cmd
}

func runCheck(app *App, opts *checkOptions, args []string) error {
	format := app.settings().Check.Format
	if opts.format != "" {
		format = config.Format(opts.format)
	}
	if err := format.Validate(); err != nil {
		return err
	}

	literals := append([]string(nil), args...)
	if opts.file != "" {
		fromFile, err := readLiterals(app, opts.file)
		if err != nil {
			return err
		}
		literals = append(literals, fromFile...)
	}
	if len(literals) == 0 {
		return errNoLiterals
	}

	results := make([]checkResult, 0, len(literals))
	rejected := 0
	for _, lit := range literals {
		out := urllit.Validate(lit)
		res := checkResult{Literal: lit, Accepted: out.IsAccepted()}
		if !out.IsAccepted() {
			res.Reason = out.Reason()
			res.Message = out.Reason().Message()
			rejected++
		}
		app.logger.Debug("validated literal", "literal", lit, "outcome", out)
		results = append(results, res)
	}

	var err error
	switch format {
	case config.FormatJSON:
		err = writeJSONResults(app.stdout, results)
	default:
		err = writeTextResults(app.stdout, results)
	}
	if err != nil {
		return err
	}

	if rejected > 0 {
		return &ExitError{Code: 1, Err: fmt.Errorf("%d of %d literals rejected", rejected, len(results))}
	}
	return nil
}

// readLiterals reads one literal per line. Surrounding whitespace is kept,
// so a literal with a stray space is still rejected.
func readLiterals(app *App, path string) ([]string, error) {
	var r io.Reader
	if path == "-" {
		r = app.stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read literals: %w", err)
		}
		defer f.Close()
		r = f
	}

	var literals []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		literals = append(literals, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read literals from %s: %w", path, err)
	}
	return literals, nil
}

func writeTextResults(w io.Writer, results []checkResult) error {
	for _, res := range results {
		var line string
		if res.Accepted {
			line = SuccessStyle.Render("✓") + " " + CmdStyle.Render(res.Literal)
		} else {
			line = ErrorStyle.Render("✗") + " " + CmdStyle.Render(res.Literal) + "  " + SubtitleStyle.Render(res.Message)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeJSONResults(w io.Writer, results []checkResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(results)
}
