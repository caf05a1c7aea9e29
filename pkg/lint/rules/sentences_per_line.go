package rules

import (
	"github.com/yaklabco/sentencelint/pkg/config"
	"github.com/yaklabco/sentencelint/pkg/fix"
	"github.com/yaklabco/sentencelint/pkg/lint"
	"github.com/yaklabco/sentencelint/pkg/mdfile"
	"github.com/yaklabco/sentencelint/pkg/sentences"
)

const (
	sentencesPerLineID   = "MDS001"
	sentencesPerLineName = "sentences-per-line"
	sentencesPerLineDesc = "Each sentence should be on its own line"
)

// SentencesPerLineRule reports lines that contain more than one sentence and
// fixes them by breaking the line after each sentence.
type SentencesPerLineRule struct {
	lint.BaseRule
}

// NewSentencesPerLineRule creates a new sentences-per-line rule.
func NewSentencesPerLineRule() *SentencesPerLineRule {
	return &SentencesPerLineRule{
		BaseRule: lint.NewBaseRule(
			sentencesPerLineID,
			sentencesPerLineName,
			sentencesPerLineDesc,
			[]string{"sentences"},
			true,
		),
	}
}

// Apply scans every line outside fenced code blocks.
func (r *SentencesPerLineRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.File == nil || len(ctx.File.Lines) == 0 {
		return nil, nil
	}

	var (
		diags    []lint.Diagnostic
		buildErr error
	)

	lines := ctx.File.LineStrings()
	var tracker sentences.FenceTracker

	for idx, line := range lines {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}
		if !tracker.Next(line) {
			continue
		}

		sentences.ScanLine(line, idx+1, func(v sentences.Violation) {
			if buildErr != nil {
				return
			}
			diag, err := r.diagnostic(ctx.File, v)
			if err != nil {
				buildErr = err
				return
			}
			diags = append(diags, diag)
		})
		if buildErr != nil {
			return diags, buildErr
		}
	}

	return diags, nil
}

// diagnostic converts a violation into a diagnostic positioned on the
// punctuation that ends the sentence, spanning the space that the fix replaces.
func (r *SentencesPerLineRule) diagnostic(snap *mdfile.FileSnapshot, v sentences.Violation) (lint.Diagnostic, error) {
	pos := mdfile.Span(v.LineNumber, v.Fix.EditColumn-1, 1)

	return lint.NewDiagnosticAt(r.ID(), snap.Path, pos, sentencesPerLineDesc).
		WithSeverity(config.SeverityWarning).
		WithContext(v.Context).
		WithSuggestion("Start the next sentence on a new line").
		WithLineFix(snap, lineEdit(v.Fix)).
		BuildChecked()
}

func lineEdit(fi sentences.FixInfo) fix.LineEdit {
	return fix.LineEdit{
		Line:        fi.LineNumber,
		Column:      fi.EditColumn,
		DeleteCount: fi.DeleteCount,
		InsertText:  fi.InsertText,
	}
}
