// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/invowk/staticurl/internal/issue"
	"github.com/invowk/staticurl/pkg/urllit"
)

const (
	topicConfig   = "config"
	topicManifest = "manifest"
)

func newExplainCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "explain [topic]",
		Short:     "Explain a rejection reason or an input format",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: explainTopics(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listTopics(app)
			}
			return explain(app, args[0])
		},
	}
}

func explainTopics() []string {
	topics := make([]string, 0, len(urllit.Reasons())+2)
	for _, r := range urllit.Reasons() {
		topics = append(topics, r.String())
	}
	return append(topics, topicConfig, topicManifest)
}

func listTopics(app *App) error {
	if _, err := fmt.Fprintln(app.stdout, TitleStyle.Render("Topics")); err != nil {
		return err
	}
	for _, t := range explainTopics() {
		if _, err := fmt.Fprintf(app.stdout, "  %s\n", CmdStyle.Render(t)); err != nil {
			return err
		}
	}
	return nil
}

func explain(app *App, topic string) error {
	var entry *issue.Issue
	switch topic {
	case topicConfig:
		entry = issue.Get(issue.ConfigLoadFailedId)
	case topicManifest:
		entry = issue.Get(issue.ManifestInvalidId)
	default:
		reason := urllit.Reason(topic)
		if err := reason.Validate(); err != nil {
			return fmt.Errorf("%w (topics: %v)", err, explainTopics())
		}
		entry = issue.ForReason(reason)
	}

	rendered, err := entry.Render(glamourStyle(app.settings().UI.ColorScheme))
	if err != nil {
		return fmt.Errorf("render guidance: %w", err)
	}
	_, err = fmt.Fprint(app.stdout, rendered)
	return err
}
