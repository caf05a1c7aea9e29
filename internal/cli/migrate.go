package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/sentencelint/internal/configloader"
	"github.com/yaklabco/sentencelint/internal/logging"
	"github.com/yaklabco/sentencelint/pkg/lint"
)

type migrateFlags struct {
	force  bool
	output string
}

func newMigrateCommand() *cobra.Command {
	flags := &migrateFlags{}

	cmd := &cobra.Command{
		Use:   "migrate [input]",
		Short: "Convert a markdownlint configuration to sentencelint format",
		Long: `Convert a markdownlint configuration file (.markdownlint.json,
.markdownlint.jsonc, .markdownlint.yaml or .markdownlint.yml) to a
.sentencelint.yml file.

Without an argument the current directory is searched. JavaScript
configuration files cannot be converted.`,
		Example: `  sentencelint migrate                      Auto-detect and convert
  sentencelint migrate .markdownlint.json   Convert a specific file
  sentencelint migrate --output ci.yml      Write to a custom path`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) == 1 {
				input = args[0]
			}
			return runMigrate(cmd, input, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing output file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", configloader.ProjectConfigName, "output file path")

	return cmd
}

func runMigrate(cmd *cobra.Command, inputPath string, flags *migrateFlags) error {
	logger := logging.NewInteractive(cmd.OutOrStdout())

	if inputPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}

		inputPath = configloader.FindMarkdownlintConfig(cwd)
		if inputPath == "" {
			return &exitError{
				code: ExitIOError,
				err:  errors.New("no markdownlint configuration file found in current directory"),
			}
		}
		logger.Info("found markdownlint config", logging.FieldPath, inputPath)
	}

	if configloader.IsJavaScriptConfig(inputPath) {
		return &exitError{
			code: ExitConfigError,
			err:  fmt.Errorf("cannot convert JavaScript config %s; create %s by hand", inputPath, configloader.ProjectConfigName),
		}
	}

	absOutput, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	if _, err := os.Stat(absOutput); err == nil {
		if !flags.force {
			return &exitError{
				code: ExitInvalidUsage,
				err:  fmt.Errorf("output file %q already exists; use --force to overwrite", flags.output),
			}
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	}

	result, err := configloader.ConvertMarkdownlintConfig(inputPath, lint.DefaultRegistry)
	if err != nil {
		return fmt.Errorf("convert configuration: %w", err)
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}

	if err := configloader.WriteMigratedConfig(result, absOutput); err != nil {
		return fmt.Errorf("write migrated configuration: %w", err)
	}

	logger.Info("migration complete", logging.FieldInput, inputPath, logging.FieldOutput, flags.output)
	if len(result.Warnings) > 0 {
		logger.Warn("review the warnings above and check the migrated configuration")
	}

	return nil
}
