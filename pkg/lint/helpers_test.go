package lint_test

import (
	"bytes"

	"github.com/yaklabco/sentencelint/pkg/fix"
	"github.com/yaklabco/sentencelint/pkg/lint"
	"github.com/yaklabco/sentencelint/pkg/mdfile"
)

// splitRule reports every ". " followed by a capital and fixes it with a newline.
// It is a tiny stand-in for the real sentence rule.
type splitRule struct {
	lint.BaseRule
}

func newSplitRule() *splitRule {
	return &splitRule{BaseRule: lint.NewBaseRule("T001", "test-split", "Split test sentences", []string{"test"}, true)}
}

func (r *splitRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic
	for idx, line := range ctx.File.LineStrings() {
		for col := 0; col+2 < len(line); col++ {
			if line[col] != '.' || line[col+1] != ' ' || line[col+2] < 'A' || line[col+2] > 'Z' {
				continue
			}
			diag, err := lint.NewDiagnosticAt(r.ID(), ctx.File.Path, mdfile.At(idx+1, col+2), "split").
				WithLineFix(ctx.File, fix.LineEdit{Line: idx + 1, Column: col + 2, DeleteCount: 1, InsertText: "\n"}).
				BuildChecked()
			if err != nil {
				return nil, err
			}
			diags = append(diags, diag)
		}
	}
	return diags, nil
}

// staticRule returns fixed diagnostics or an error.
type staticRule struct {
	lint.BaseRule
	diags []lint.Diagnostic
	err   error
}

func (r *staticRule) Apply(_ *lint.RuleContext) ([]lint.Diagnostic, error) {
	return r.diags, r.err
}

func newStaticRule(id, name string, fixable bool, diags ...lint.Diagnostic) *staticRule {
	return &staticRule{BaseRule: lint.NewBaseRule(id, name, "static", nil, fixable), diags: diags}
}

func countLines(b []byte) int {
	return bytes.Count(b, []byte("\n"))
}
