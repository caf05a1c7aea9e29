package lint

import (
	"context"
	"fmt"
	"slices"

	"github.com/yaklabco/sentencelint/pkg/config"
	"github.com/yaklabco/sentencelint/pkg/fix"
	"github.com/yaklabco/sentencelint/pkg/mdfile"
)

// FileResult contains the results of linting a single file.
type FileResult struct {
	// Snapshot is the linted file.
	Snapshot *mdfile.FileSnapshot

	// Diagnostics contains all issues found, in rule then position order.
	Diagnostics []Diagnostic

	// Edits contains validated, sorted edits for auto-fix.
	// Empty unless fixing was requested.
	Edits []fix.TextEdit

	// SkippedEdits contains edits dropped because they overlapped earlier ones.
	SkippedEdits []fix.TextEdit

	// EditConflicts is true if any edits were skipped or failed validation.
	EditConflicts bool

	// RuleErrors contains errors from rule execution, keyed by rule ID.
	RuleErrors map[string]error
}

// HasIssues returns true if any diagnostics were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Diagnostics) > 0
}

// HasFixes returns true if any fixes are available.
func (fr *FileResult) HasFixes() bool {
	return len(fr.Edits) > 0
}

// IssueCount returns the total number of diagnostics.
func (fr *FileResult) IssueCount() int {
	return len(fr.Diagnostics)
}

// FixableCount returns the number of diagnostics with fixes.
func (fr *FileResult) FixableCount() int {
	count := 0
	for i := range fr.Diagnostics {
		if fr.Diagnostics[i].HasFix() {
			count++
		}
	}
	return count
}

// Engine runs the registered rules over file content.
type Engine struct {
	Registry *Registry
}

// NewEngine creates a new Engine over the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// LintFile lints content as the file at path.
func (e *Engine) LintFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	snapshot := mdfile.New(path, content)

	result := &FileResult{
		Snapshot:   snapshot,
		RuleErrors: make(map[string]error),
	}

	var edits []fix.TextEdit

	for _, rr := range ResolveRules(e.Registry, cfg) {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("linting cancelled: %w", err)
		}

		ruleCtx := NewRuleContext(ctx, snapshot, cfg, rr.Config)

		diags, err := rr.Rule.Apply(ruleCtx)
		if err != nil {
			result.RuleErrors[rr.Rule.ID()] = err
			continue
		}

		for i := range diags {
			diag := &diags[i]
			diag.Severity = rr.Severity
			if diag.FilePath == "" {
				diag.FilePath = path
			}
			if diag.RuleName == "" {
				diag.RuleName = rr.Rule.Name()
			}
			if rr.AutoFix {
				edits = append(edits, diag.FixEdits...)
			}
		}

		result.Diagnostics = append(result.Diagnostics, diags...)
	}

	edits = slices.DeleteFunc(edits, func(e fix.TextEdit) bool { return e.IsNoop(content) })
	if len(edits) > 0 {
		accepted, skipped, err := fix.PrepareEditsFiltered(edits, len(content))
		if err != nil {
			// Diagnostics stand; nothing is applied.
			result.EditConflicts = true
			return result, nil
		}
		result.Edits = accepted
		result.SkippedEdits = skipped
		result.EditConflicts = len(skipped) > 0
	}

	return result, nil
}
