package config

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full documents every rule. A minimal template is written otherwise.
	Full bool

	// IncludeRules limits the documented rules to these IDs.
	IncludeRules []string
}

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Enabled     bool
	Severity    Severity
	Tags        []string
	CanFix      bool
}

// RuleInfoProvider returns metadata for every known rule.
// It keeps config free of an import cycle with the lint package.
type RuleInfoProvider func() []RuleInfo

// DefaultRuleInfoProvider is installed by the rules package during init.
//
//nolint:gochecknoglobals // Extension point filled at init time.
var DefaultRuleInfoProvider RuleInfoProvider

const templateHeader = `# sentencelint configuration
# See: https://github.com/yaklabco/sentencelint

# Default severity for rules without one: error, warning, or info
severity_default: warning

# File extensions linted when walking directories
extensions:
  - .md
  - .markdown

# File patterns to ignore (glob patterns, ** matches any depth)
# ignore:
#   - "vendor/**"
#   - "node_modules/**"

# Backups written before fixing a file
backups:
  enabled: true
  mode: sidecar
`

// GenerateTemplate creates a YAML configuration file template.
func GenerateTemplate(opts TemplateOptions) []byte {
	var buf bytes.Buffer
	buf.WriteString(templateHeader)

	if !opts.Full {
		buf.WriteString(`
# Rule-specific configuration, keyed by ID or name
# rules:
#   sentences-per-line:
#     enabled: true
#     severity: error
`)
		return buf.Bytes()
	}

	rules := ruleInfos()
	if len(opts.IncludeRules) > 0 {
		rules = slices.DeleteFunc(rules, func(r RuleInfo) bool {
			return !slices.Contains(opts.IncludeRules, r.ID)
		})
	}
	slices.SortFunc(rules, func(a, b RuleInfo) int { return cmp.Compare(a.ID, b.ID) })

	if len(rules) == 0 {
		return buf.Bytes()
	}

	buf.WriteString("\n# Rule-specific configuration\nrules:\n")
	for _, rule := range rules {
		fmt.Fprintf(&buf, "  # %s: %s\n", rule.ID, rule.Name)
		fmt.Fprintf(&buf, "  # %s\n", wrapComment(rule.Description, commentWrapWidth))
		if len(rule.Tags) > 0 {
			fmt.Fprintf(&buf, "  # Tags: %s\n", strings.Join(rule.Tags, ", "))
		}
		if rule.CanFix {
			buf.WriteString("  # Auto-fix: yes\n")
		}
		fmt.Fprintf(&buf, "  %s:\n", rule.ID)
		fmt.Fprintf(&buf, "    enabled: %t\n", rule.Enabled)
		fmt.Fprintf(&buf, "    severity: %s\n", rule.Severity)
	}

	return buf.Bytes()
}

func ruleInfos() []RuleInfo {
	if DefaultRuleInfoProvider == nil {
		return nil
	}
	return DefaultRuleInfoProvider()
}

// wrapComment wraps text to maxWidth, continuing lines as indented comments.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= maxWidth:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}

	return strings.Join(lines, "\n  # ")
}
