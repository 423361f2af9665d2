// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/invowk/staticurl/internal/config"
)

// newConfigCommand creates the `staticurl config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect staticurl configuration",
		Long: `Inspect staticurl configuration.

The configuration file is read from --config when given, otherwise from
$XDG_CONFIG_HOME/staticurl/config.cue and then ./staticurl.cue.
STATICURL_* environment variables override file values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show which configuration file is used",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(app.stdout, config.GenerateCUE(app.settings()))
			return err
		},
	})

	return cfgCmd
}

func showConfig(app *App) error {
	cfg := app.settings()
	w := app.stdout

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	path, err := app.Config.Path(app.loadOptions())
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	} else {
		fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("Config file"), path)
	}

	value := func(v any) string { return SuccessStyle.Render(fmt.Sprint(v)) }

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", CmdStyle.Render("ui"))
	fmt.Fprintf(w, "  verbose: %s\n", value(cfg.UI.Verbose))
	fmt.Fprintf(w, "  color_scheme: %s\n", value(cfg.UI.ColorScheme))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", CmdStyle.Render("check"))
	fmt.Fprintf(w, "  format: %s\n", value(cfg.Check.Format))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", CmdStyle.Render("generate"))
	fmt.Fprintf(w, "  manifest: %s\n", value(cfg.Generate.Manifest))
	fmt.Fprintf(w, "  output: %s\n", value(cfg.Generate.Output))
	if cfg.Generate.Package == "" {
		fmt.Fprintf(w, "  package: %s\n", SubtitleStyle.Render("(from manifest)"))
	} else {
		fmt.Fprintf(w, "  package: %s\n", value(cfg.Generate.Package))
	}

	return nil
}

func showConfigPath(app *App) error {
	path, err := app.Config.Path(app.loadOptions())
	if err != nil {
		return err
	}
	if path != "" {
		fmt.Fprintf(app.stdout, "Config file: %s\n", path)
		return nil
	}

	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	fmt.Fprintf(app.stdout, "Config file: %s %s\n",
		filepath.Join(cfgDir, config.ConfigFileName), SubtitleStyle.Render("(not found, using defaults)"))
	return nil
}
