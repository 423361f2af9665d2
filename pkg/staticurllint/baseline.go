// SPDX-License-Identifier: MPL-2.0

package staticurllint

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// BaselineConfig holds accepted findings loaded from a baseline TOML file.
// Findings present in the baseline are suppressed during analysis, so only
// new regressions are reported.
type BaselineConfig struct {
	NotAStringLiteral BaselineCategory `toml:"not-a-string-literal"`
	NotAParsableURL   BaselineCategory `toml:"not-a-parsable-url"`
	UnsupportedScheme BaselineCategory `toml:"unsupported-scheme"`
	MissingHost       BaselineCategory `toml:"missing-host"`

	// lookup is keyed by category; each value is the set of accepted messages.
	lookup map[string]map[string]bool
}

// BaselineCategory holds the accepted diagnostic messages for one category.
type BaselineCategory struct {
	Messages []string `toml:"messages"`
}

// baselineSections lists categories in output order with their header labels.
var baselineSections = []struct {
	key   string
	label string
}{
	{CategoryNotAStringLiteral, "URL arguments that are not static strings"},
	{CategoryNotAParsableURL, "Literals that are not valid URLs"},
	{CategoryUnsupportedScheme, "Literals without an http(s) scheme"},
	{CategoryMissingHost, "Literals without a host name"},
}

// loadBaseline reads and parses a baseline TOML file. Returns an empty
// baseline (matches nothing) if path is empty or the file does not exist.
func loadBaseline(path string) (*BaselineConfig, error) {
	if path == "" {
		return emptyBaseline(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return emptyBaseline(), nil
		}
		return nil, fmt.Errorf("reading baseline: %w", err)
	}

	var cfg BaselineConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing baseline TOML: %w", err)
	}

	cfg.buildLookup()

	return &cfg, nil
}

// Contains reports whether a finding with the given category and message
// is present in the baseline.
func (b *BaselineConfig) Contains(category, message string) bool {
	if b == nil || b.lookup == nil {
		return false
	}
	return b.lookup[category][message]
}

// Count returns the total number of baseline entries across all categories.
func (b *BaselineConfig) Count() int {
	if b == nil {
		return 0
	}
	return len(b.NotAStringLiteral.Messages) +
		len(b.NotAParsableURL.Messages) +
		len(b.UnsupportedScheme.Messages) +
		len(b.MissingHost.Messages)
}

func (b *BaselineConfig) buildLookup() {
	b.lookup = map[string]map[string]bool{
		CategoryNotAStringLiteral: toSet(b.NotAStringLiteral.Messages),
		CategoryNotAParsableURL:   toSet(b.NotAParsableURL.Messages),
		CategoryUnsupportedScheme: toSet(b.UnsupportedScheme.Messages),
		CategoryMissingHost:       toSet(b.MissingHost.Messages),
	}
}

// WriteBaseline writes a baseline TOML file from categorized findings.
// Messages are sorted for stable diffs and empty categories are omitted.
func WriteBaseline(path string, findings map[string][]string) error {
	var sb strings.Builder

	sb.WriteString("# SPDX-License-Identifier: MPL-2.0\n")
	sb.WriteString("#\n")
	sb.WriteString("# staticurl baseline: accepted URL literal findings\n")
	fmt.Fprintf(&sb, "# Generated: %s\n", time.Now().UTC().Format("2006-01-02"))
	sb.WriteString("# Regenerate: staticurllint -update-baseline=<path> ./...\n")

	total := 0
	for _, msgs := range findings {
		total += len(msgs)
	}
	fmt.Fprintf(&sb, "# Total: %d findings\n", total)

	for _, sec := range baselineSections {
		msgs := slices.Clone(findings[sec.key])
		if len(msgs) == 0 {
			continue
		}
		slices.Sort(msgs)

		fmt.Fprintf(&sb, "\n# %s\n", sec.label)
		fmt.Fprintf(&sb, "[%s]\n", sec.key)
		sb.WriteString("messages = [\n")
		for _, msg := range msgs {
			fmt.Fprintf(&sb, "    %s,\n", quote(msg))
		}
		sb.WriteString("]\n")
	}

	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

func emptyBaseline() *BaselineConfig {
	b := &BaselineConfig{}
	b.buildLookup()
	return b
}

func toSet(ss []string) map[string]bool {
	m := make(map[string]bool, len(ss))
	for _, s := range ss {
		m[s] = true
	}
	return m
}

// quote produces a TOML basic string. Messages embed quoted URL literals,
// so backslashes and quotes are common.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&sb, `\u%04X`, r)
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
