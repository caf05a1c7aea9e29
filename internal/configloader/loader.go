// Package configloader resolves sentencelint configuration from defaults,
// config files, the environment and CLI flags, and converts markdownlint
// configs.
package configloader

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/sentencelint/pkg/config"
	"github.com/yaklabco/sentencelint/pkg/lint"
)

const configFilePermissions = 0o644

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is where the project config search starts. Defaults to the
	// current directory.
	WorkingDir string

	// ExplicitPath is the --config file. It is layered above the project config.
	ExplicitPath string

	IgnoreSystemConfig  bool
	IgnoreUserConfig    bool
	IgnoreProjectConfig bool
	IgnoreEnv           bool
	IgnoreMarkdownlint  bool

	// NonInteractive disables the markdownlint migration prompt.
	NonInteractive bool

	// CLIConfig holds flag values. It has the highest precedence.
	CLIConfig *config.Config

	// Registry resolves rule names. Defaults to lint.DefaultRegistry.
	Registry *lint.Registry

	// PromptIn and PromptOut replace stdin and stdout for the migration prompt.
	// Setting PromptIn also skips the terminal check.
	PromptIn  io.Reader
	PromptOut io.Writer
}

// LoadResult is the resolved configuration and where it came from.
type LoadResult struct {
	Config *config.Config
	Paths  *ConfigPaths

	// LoadedFrom lists the files that were read, lowest precedence first.
	LoadedFrom []string

	Warnings []string

	// MigrationPerformed is true if a markdownlint config was converted.
	MigrationPerformed bool
}

// layer is one parsed config file.
type layer struct {
	cfg *config.Config

	// backupsEnabled is set when the file names backups.enabled, so a file can
	// turn backups off.
	backupsEnabled *bool
}

// Load merges every configuration source. Precedence, highest first:
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (SENTENCELINT_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.sentencelint.yml, searched upward)
//  5. User config ($XDG_CONFIG_HOME/sentencelint/config.yaml)
//  6. System config (/etc/sentencelint/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	registry := opts.Registry
	if registry == nil {
		registry = lint.DefaultRegistry
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}

	if !opts.IgnoreMarkdownlint && !opts.IgnoreProjectConfig {
		migrated, err := maybeMigrate(paths, result, opts, workDir, registry)
		if err != nil {
			return nil, err
		}
		if migrated {
			paths.Project = filepath.Join(workDir, ProjectConfigName)
		}
	}

	sources := []struct {
		name string
		path string
		skip bool
	}{
		{"system", paths.System, opts.IgnoreSystemConfig},
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig},
		{"explicit", opts.ExplicitPath, false},
	}

	cfg := config.NewConfig()
	for _, src := range sources {
		if src.skip || src.path == "" {
			continue
		}
		l, err := loadConfigFile(src.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", src.name, err)
		}
		cfg = merge(cfg, l.cfg)
		if l.backupsEnabled != nil {
			cfg.Backups.Enabled = *l.backupsEnabled
		}
		result.LoadedFrom = append(result.LoadedFrom, src.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	cfg = merge(cfg, opts.CLIConfig)

	normalizeRuleKeys(cfg, registry, result)

	validation := Validate(cfg, registry)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile parses a YAML config file. Unknown keys are errors.
func loadConfigFile(path string) (*layer, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var probe struct {
		Backups struct {
			Enabled *bool `yaml:"enabled"`
		} `yaml:"backups"`
	}
	if err := yaml.Unmarshal(content, &probe); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &layer{cfg: cfg, backupsEnabled: probe.Backups.Enabled}, nil
}

// maybeMigrate offers to convert a markdownlint config when the project has no
// sentencelint config. Without a terminal it only warns.
func maybeMigrate(
	paths *ConfigPaths,
	result *LoadResult,
	opts LoadOptions,
	workDir string,
	registry *lint.Registry,
) (bool, error) {
	if paths.Markdownlint == "" {
		return false, nil
	}
	if paths.Project != "" {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("both %s and %s exist; using %s", paths.Project, paths.Markdownlint, paths.Project))
		return false, nil
	}
	if IsJavaScriptConfig(paths.Markdownlint) {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"%s cannot be converted automatically; create %s or run 'sentencelint init'",
			filepath.Base(paths.Markdownlint), ProjectConfigName))
		return false, nil
	}

	in, out := opts.PromptIn, opts.PromptOut
	if opts.NonInteractive || (in == nil && !term.IsTerminal(int(os.Stdin.Fd()))) {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"found %s but no %s; run 'sentencelint migrate' to convert", paths.Markdownlint, ProjectConfigName))
		return false, nil
	}
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	ok, err := promptMigration(in, out, paths.Markdownlint)
	if err != nil || !ok {
		return false, err
	}

	migration, err := ConvertMarkdownlintConfig(paths.Markdownlint, registry)
	if err != nil {
		return false, fmt.Errorf("convert markdownlint config: %w", err)
	}
	result.Warnings = append(result.Warnings, migration.Warnings...)

	target := filepath.Join(workDir, ProjectConfigName)
	if err := WriteMigratedConfig(migration, target); err != nil {
		return false, fmt.Errorf("write migrated config: %w", err)
	}

	result.MigrationPerformed = true
	result.Warnings = append(result.Warnings,
		fmt.Sprintf("migrated %s to %s; the old file can be deleted", paths.Markdownlint, target))
	return true, nil
}

// promptMigration asks a yes/no question; an empty answer means yes.
func promptMigration(in io.Reader, out io.Writer, markdownlintPath string) (bool, error) {
	if _, err := fmt.Fprintf(out, "Found %s but no %s\nConvert to sentencelint format? [Y/n] ",
		markdownlintPath, ProjectConfigName); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("read response: %w", err)
		}
		if response == "" {
			return false, nil
		}
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "" || response == "y" || response == "yes", nil
}

// normalizeRuleKeys rewrites rule names and aliases in cfg.Rules and in the
// enable, disable and fix-rules lists to rule IDs. Unknown keys are kept so
// validation can warn about them.
func normalizeRuleKeys(cfg *config.Config, registry *lint.Registry, result *LoadResult) {
	cfg.EnableRules = normalizeRuleList(cfg.EnableRules, registry)
	cfg.DisableRules = normalizeRuleList(cfg.DisableRules, registry)
	cfg.FixRules = normalizeRuleList(cfg.FixRules, registry)

	if len(cfg.Rules) == 0 {
		return
	}

	normalized := make(map[string]config.RuleConfig, len(cfg.Rules))
	seen := make(map[string]string)

	for key, ruleCfg := range cfg.Rules {
		id, ok := registry.Resolve(key)
		if !ok {
			normalized[key] = ruleCfg
			continue
		}
		if prev, dup := seen[id]; dup {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("duplicate rule configuration: %q and %q both refer to %s", prev, key, id))
			normalized[id] = mergeRuleConfig(normalized[id], ruleCfg)
			continue
		}
		seen[id] = key
		normalized[id] = ruleCfg
	}

	cfg.Rules = normalized
}

func normalizeRuleList(keys []string, registry *lint.Registry) []string {
	if keys == nil {
		return nil
	}
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		if id, ok := registry.Resolve(key); ok {
			key = id
		}
		if !slices.Contains(out, key) {
			out = append(out, key)
		}
	}
	return out
}
