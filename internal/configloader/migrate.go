package configloader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/sentencelint/pkg/config"
	"github.com/yaklabco/sentencelint/pkg/lint"
)

// MigrationResult is a markdownlint config converted to sentencelint form.
type MigrationResult struct {
	Config     *config.Config
	Warnings   []string
	SourcePath string
}

// ConvertMarkdownlintConfig reads a markdownlint JSON, JSONC or YAML config and
// converts the keys sentencelint understands.
//
// Rule keys are resolved through registry (nil means lint.DefaultRegistry), so
// "sentences-per-line", its alias and its ID all map to the same rule. The
// "default" key sets whether rules not named in the file are enabled. Keys for
// other markdownlint rules are reported in a single warning.
func ConvertMarkdownlintConfig(path string, registry *lint.Registry) (*MigrationResult, error) {
	if IsJavaScriptConfig(path) {
		return nil, fmt.Errorf("cannot convert JavaScript config file %q; create %s manually", path, ProjectConfigName)
	}
	if registry == nil {
		registry = lint.DefaultRegistry
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var raw map[string]any
	if IsJSONConfig(path) {
		if err := json.Unmarshal(stripJSONComments(content), &raw); err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
	} else if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	result := &MigrationResult{Config: config.NewConfig(), SourcePath: path}

	defaultEnabled := true
	if v, ok := raw["default"]; ok {
		defaultEnabled = valueToBool(v)
	}
	if extends, ok := raw["extends"].(string); ok {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("'extends: %q' is not supported; merge that file manually", extends))
	}

	var skipped []string
	for key, value := range raw {
		switch key {
		case "default", "extends", "$schema":
			continue
		}
		ruleID, ok := registry.Resolve(key)
		if !ok {
			skipped = append(skipped, key)
			continue
		}
		result.Config.Rules[ruleID] = convertRuleValue(value)
	}

	if !defaultEnabled {
		for _, id := range registry.IDs() {
			if _, set := result.Config.Rules[id]; !set {
				disabled := false
				result.Config.Rules[id] = config.RuleConfig{Enabled: &disabled}
			}
		}
	}

	if len(skipped) > 0 {
		slices.Sort(skipped)
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("skipped %d keys sentencelint does not implement: %s", len(skipped), strings.Join(skipped, ", ")))
	}

	return result, nil
}

// stripJSONComments removes // and /* */ comments outside of strings.
func stripJSONComments(content []byte) []byte {
	out := make([]byte, 0, len(content))
	inString := false

	for i := 0; i < len(content); i++ {
		c := content[i]

		if inString {
			out = append(out, c)
			switch {
			case c == '\\' && i+1 < len(content):
				i++
				out = append(out, content[i])
			case c == '"':
				inString = false
			}
			continue
		}

		if c == '/' && i+1 < len(content) {
			switch content[i+1] {
			case '/':
				for i < len(content) && content[i] != '\n' {
					i++
				}
				if i < len(content) {
					out = append(out, '\n')
				}
				continue
			case '*':
				end := strings.Index(string(content[i+2:]), "*/")
				if end < 0 {
					return out
				}
				i += end + 3
				continue
			}
		}

		if c == '"' {
			inString = true
		}
		out = append(out, c)
	}

	return out
}

// convertRuleValue maps a markdownlint rule value to a RuleConfig. true, an
// object or any other value enables the rule; false and null disable it.
func convertRuleValue(value any) config.RuleConfig {
	enabled := valueToBool(value)
	cfg := config.RuleConfig{Enabled: &enabled}

	if opts, ok := value.(map[string]any); ok && len(opts) > 0 {
		cfg.Options = opts
	}
	return cfg
}

func valueToBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case nil:
		return false
	default:
		return true
	}
}

// MigrationHeader returns the comment written above a migrated config.
func MigrationHeader(sourcePath string) string {
	return fmt.Sprintf("# sentencelint configuration\n# Migrated from: %s\n", filepath.Base(sourcePath))
}

// WriteMigratedConfig writes result to path with a migration header.
func WriteMigratedConfig(result *MigrationResult, path string) error {
	content, err := result.Config.ToYAMLWithHeader(MigrationHeader(result.SourcePath))
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
