package lint

import (
	"fmt"

	"github.com/yaklabco/sentencelint/pkg/config"
	"github.com/yaklabco/sentencelint/pkg/fix"
	"github.com/yaklabco/sentencelint/pkg/mdfile"
)

// DiagnosticBuilder helps construct Diagnostic values.
type DiagnosticBuilder struct {
	diag Diagnostic
	err  error
}

// NewDiagnosticAt starts building a diagnostic at a specific position.
// An invalid position surfaces from BuildChecked.
func NewDiagnosticAt(ruleID, filePath string, pos mdfile.SourcePosition, message string) *DiagnosticBuilder {
	var err error
	if !pos.IsValid() {
		err = fmt.Errorf("%s: invalid position %d:%d-%d:%d", ruleID,
			pos.StartLine, pos.StartColumn, pos.EndLine, pos.EndColumn)
	}
	return &DiagnosticBuilder{
		err: err,
		diag: Diagnostic{
			RuleID:      ruleID,
			Message:     message,
			FilePath:    filePath,
			StartLine:   pos.StartLine,
			StartColumn: pos.StartColumn,
			EndLine:     pos.EndLine,
			EndColumn:   pos.EndColumn,
		},
	}
}

// WithSeverity sets the severity.
func (b *DiagnosticBuilder) WithSeverity(s config.Severity) *DiagnosticBuilder {
	b.diag.Severity = s
	return b
}

// WithSuggestion sets a human-readable fix suggestion.
func (b *DiagnosticBuilder) WithSuggestion(s string) *DiagnosticBuilder {
	b.diag.Suggestion = s
	return b
}

// WithContext sets the excerpt shown next to the message.
func (b *DiagnosticBuilder) WithContext(excerpt string) *DiagnosticBuilder {
	b.diag.Context = excerpt
	return b
}

// WithEdit adds a single byte-offset fix edit.
func (b *DiagnosticBuilder) WithEdit(edit fix.TextEdit) *DiagnosticBuilder {
	b.diag.FixEdits = append(b.diag.FixEdits, edit)
	return b
}

// WithLineFix records a line/column fix and resolves it against snap.
// A fix that does not fit the file is kept out of the diagnostic and surfaces
// from BuildChecked.
func (b *DiagnosticBuilder) WithLineFix(snap *mdfile.FileSnapshot, edit fix.LineEdit) *DiagnosticBuilder {
	resolved, err := edit.Resolve(snap)
	if err != nil {
		if b.err == nil {
			b.err = fmt.Errorf("%s: %w", b.diag.RuleID, err)
		}
		return b
	}
	b.diag.LineFix = &edit
	b.diag.FixEdits = append(b.diag.FixEdits, resolved)
	return b
}

// Build returns the constructed Diagnostic.
func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.diag
}

// BuildChecked returns the Diagnostic along with any error recorded while building.
func (b *DiagnosticBuilder) BuildChecked() (Diagnostic, error) {
	return b.diag, b.err
}
