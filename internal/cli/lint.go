package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/sentencelint/internal/configloader"
	"github.com/yaklabco/sentencelint/internal/logging"
	"github.com/yaklabco/sentencelint/pkg/config"
	"github.com/yaklabco/sentencelint/pkg/lint"
	"github.com/yaklabco/sentencelint/pkg/reporter"
	"github.com/yaklabco/sentencelint/pkg/runner"
)

type lintFlags struct {
	format     string
	ruleFormat string
	strict     bool
	noContext  bool
	compact    bool
	flat       bool
}

func newLintCommand() *cobra.Command {
	var cfg config.Config
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint Markdown files",
		Long: `Report Markdown lines that contain more than one sentence.

Without arguments every .md and .markdown file below the current directory
is checked. Hidden directories and files matching an ignore pattern are
skipped. Files named explicitly are always checked.`,
		Example: `  sentencelint lint                    Lint the current directory
  sentencelint lint docs/ README.md    Lint a directory and a file
  sentencelint lint --fix              Split lines in place
  sentencelint lint --fix --dry-run    Show the fixes as a diff
  sentencelint lint --format sarif     Emit SARIF for code scanning`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, &cfg, flags)
		},
	}

	addLintFlags(cmd, &cfg, flags)

	return cmd
}

func addLintFlags(cmd *cobra.Command, cfg *config.Config, flags *lintFlags) {
	f := cmd.Flags()
	f.BoolVar(&cfg.Fix, "fix", false, "rewrite files so each sentence starts a new line")
	f.BoolVar(&cfg.DryRun, "dry-run", false, "with --fix, report changes without writing files")
	f.StringVar(&flags.format, "format", string(config.FormatText), "output format: text, json, sarif, diff")
	f.IntVarP(&cfg.Jobs, "jobs", "j", 0, "number of files linted in parallel (0 = one per CPU)")
	f.StringSliceVar(&cfg.Ignore, "ignore", nil, "glob patterns of files to skip")
	f.StringSliceVar(&cfg.EnableRules, "enable", nil, "rules to enable (ID, name or alias)")
	f.StringSliceVar(&cfg.DisableRules, "disable", nil, "rules to disable (ID, name or alias)")
	f.StringSliceVar(&cfg.FixRules, "fix-rules", nil, "only auto-fix these rules")
	f.BoolVar(&cfg.NoBackups, "no-backups", false, "do not write backup files when fixing")
	f.BoolVar(&flags.strict, "strict", false, "exit non-zero for warnings as well as errors")
	f.BoolVar(&flags.noContext, "no-context", false, "hide the source line under each issue")
	f.BoolVar(&flags.compact, "compact", false, "unindented JSON and SARIF output")
	f.BoolVar(&flags.flat, "flat", false, "one line per issue instead of grouping by file")
	f.StringVar(&flags.ruleFormat, "rule-format", string(config.RuleFormatName),
		"rule identifier format in output: name, id, or combined")
}

func runLint(cmd *cobra.Command, args []string, cliCfg *config.Config, flags *lintFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.Default()
	ctx = logging.WithLogger(ctx, logger)

	// Flags left at their defaults must not mask env or file values.
	if cmd.Flags().Changed("format") {
		cliCfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("rule-format") {
		cliCfg.RuleFormat = config.RuleFormat(flags.ruleFormat)
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		return fmt.Errorf("get color flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	machineOutput := cliCfg.Format == config.FormatJSON || cliCfg.Format == config.FormatSARIF
	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:     workDir,
		ExplicitPath:   configPath,
		CLIConfig:      cliCfg,
		Registry:       lint.DefaultRegistry,
		NonInteractive: machineOutput,
		PromptOut:      cmd.ErrOrStderr(),
	})
	if err != nil {
		return &exitError{code: ExitConfigError, err: fmt.Errorf("load configuration: %w", err)}
	}

	cfg := loadResult.Config
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	logger.Debug("configuration loaded",
		logging.FieldFiles, loadResult.LoadedFrom,
		logging.FieldFix, cfg.Fix,
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldFormat, cfg.Format,
	)

	lintRunner := runner.New(lint.NewPipeline(lint.NewEngine(lint.DefaultRegistry)))

	runOpts := runner.OptionsFromConfig(cfg, args)
	runOpts.WorkingDir = workDir

	result, err := lintRunner.Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("lint run failed: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      cfg.Format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		GroupByFile: !flags.flat,
		Compact:     flags.compact,
		RuleFormat:  cfg.RuleFormat,
		WorkingDir:  workDir,
		ToolVersion: cmd.Root().Version,
	})
	if err != nil {
		return &exitError{code: ExitInvalidUsage, err: fmt.Errorf("create reporter: %w", err)}
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if code := ExitCodeFromResult(result, flags.strict); code != ExitSuccess {
		return &exitError{code: code, err: ErrLintIssuesFound}
	}
	return nil
}
