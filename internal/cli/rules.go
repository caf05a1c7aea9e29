package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/yaklabco/sentencelint/pkg/config"
	"github.com/yaklabco/sentencelint/pkg/lint"
)

type rulesFlags struct {
	ruleFormat string
	format     string
}

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases,omitempty"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Enabled     bool     `json:"enabled"`
	Fixable     bool     `json:"fixable"`
	Tags        []string `json:"tags,omitempty"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available lint rules",
		Long: `List all available lint rules with their IDs, aliases, default
severity, and whether they support auto-fixing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry := lint.DefaultRegistry
			out := cmd.OutOrStdout()

			switch flags.format {
			case formatJSON:
				return writeRulesJSON(out, registry)
			case "text", "":
				writeRulesTable(out, registry, config.RuleFormat(flags.ruleFormat))
				return nil
			default:
				return &exitError{
					code: ExitInvalidUsage,
					err:  fmt.Errorf("invalid format %q: must be text or json", flags.format),
				}
			}
		},
	}

	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", string(config.RuleFormatName),
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")

	return cmd
}

func writeRulesTable(w io.Writer, registry *lint.Registry, ruleFormat config.RuleFormat) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Rule", "Aliases", "Severity", "Fix", "Description"})

	for _, rule := range registry.Rules() {
		fixable := "-"
		if rule.CanFix() {
			fixable = "yes"
		}
		t.AppendRow(table.Row{
			ruleFormat.Identifier(rule.ID(), rule.Name()),
			strings.Join(registry.Aliases(rule.ID()), ", "),
			rule.DefaultSeverity(),
			fixable,
			rule.Description(),
		})
	}

	t.Render()
}

func writeRulesJSON(w io.Writer, registry *lint.Registry) error {
	rules := registry.Rules()
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Aliases:     registry.Aliases(rule.ID()),
			Description: rule.Description(),
			Severity:    string(rule.DefaultSeverity()),
			Enabled:     rule.DefaultEnabled(),
			Fixable:     rule.CanFix(),
			Tags:        rule.Tags(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
