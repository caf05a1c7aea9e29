// Package lint provides the rule engine, diagnostics, and registry for sentencelint.
package lint

import (
	"github.com/yaklabco/sentencelint/pkg/config"
	"github.com/yaklabco/sentencelint/pkg/fix"
	"github.com/yaklabco/sentencelint/pkg/mdfile"
)

// Diagnostic represents a single lint issue found in a file.
type Diagnostic struct {
	// RuleID is the identifier of the rule that produced this diagnostic.
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "sentences-per-line").
	RuleName string

	// Message is the human-readable description of the issue.
	Message string

	// Severity indicates the importance of the diagnostic.
	Severity config.Severity

	// FilePath is the path to the file containing the issue.
	FilePath string

	// 1-based position of the issue. Columns count bytes.
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int

	// Context is a short excerpt of the offending line around the issue.
	Context string

	// Suggestion is an optional human-readable fix suggestion.
	Suggestion string

	// LineFix is the fix in line/column form, as reported by the rule.
	LineFix *fix.LineEdit

	// FixEdits contains the resolved byte-offset edits for LineFix.
	FixEdits []fix.TextEdit
}

// HasFix returns true if this diagnostic has associated fix edits.
func (d *Diagnostic) HasFix() bool {
	return len(d.FixEdits) > 0
}

// SourcePosition returns the diagnostic position as a SourcePosition.
func (d *Diagnostic) SourcePosition() mdfile.SourcePosition {
	return mdfile.SourcePosition{
		StartLine:   d.StartLine,
		StartColumn: d.StartColumn,
		EndLine:     d.EndLine,
		EndColumn:   d.EndColumn,
	}
}

// Rule defines the interface that all lint rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "MDS001").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a one-line description of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this rule.
	Tags() []string

	// CanFix returns whether this rule can auto-fix issues.
	CanFix() bool

	// Apply executes the rule against the given context and returns diagnostics.
	//
	// Rules return one diagnostic per violation, respect cancellation, and
	// return an error only for internal failures.
	Apply(ctx *RuleContext) ([]Diagnostic, error)
}
