// Package cli wires the sentencelint commands together with cobra.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/sentencelint/internal/logging"
	"github.com/yaklabco/sentencelint/internal/ui/pretty"

	// Built-in rules register themselves with lint.DefaultRegistry.
	_ "github.com/yaklabco/sentencelint/pkg/lint/rules"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root sentencelint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:     "sentencelint",
		Version: info.Version,
		Short:   "Keep every Markdown sentence on its own line",
		Long: `sentencelint finds Markdown lines that hold more than one sentence and
can rewrite them so each sentence starts on a new line.

Headings, table rows, fenced code blocks and inline code are left alone, and
common abbreviations such as "e.g." and "etc." do not end a sentence.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", pretty.ColorAuto, "colorize output: auto, always, never")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &exitError{code: ExitInvalidUsage, err: err}
	})

	rootCmd.AddCommand(
		newLintCommand(),
		newRulesCommand(),
		newInitCommand(),
		newMigrateCommand(),
		newVersionCommand(info),
	)

	applyHelp(rootCmd, color, os.Stdout)

	return rootCmd
}
