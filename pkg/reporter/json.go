package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/sentencelint/pkg/fix"
	"github.com/yaklabco/sentencelint/pkg/runner"
)

// jsonSchemaVersion is bumped when the JSON document changes incompatibly.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path        string            `json:"path"`
	Status      string            `json:"status"`
	Diagnostics []JSONDiagnostic  `json:"diagnostics"`
	Modified    bool              `json:"modified,omitempty"`
	FixPasses   int               `json:"fixPasses,omitempty"`
	Error       string            `json:"error,omitempty"`
	RuleErrors  map[string]string `json:"ruleErrors,omitempty"`
}

// JSONDiagnostic represents a single diagnostic.
//
// Context and FixInfo carry the same data markdownlint reports as
// errorContext and fixInfo.
type JSONDiagnostic struct {
	RuleID      string        `json:"ruleId"`
	RuleName    string        `json:"ruleName"`
	Severity    string        `json:"severity"`
	Message     string        `json:"message"`
	StartLine   int           `json:"startLine"`
	StartColumn int           `json:"startColumn"`
	EndLine     int           `json:"endLine"`
	EndColumn   int           `json:"endColumn"`
	Context     string        `json:"context,omitempty"`
	Suggestion  string        `json:"suggestion,omitempty"`
	Fixable     bool          `json:"fixable"`
	FixInfo     *fix.LineEdit `json:"fixInfo,omitempty"`
	Fixes       []JSONFix     `json:"fixes,omitempty"`
}

// JSONFix is a fix resolved to byte offsets.
type JSONFix struct {
	StartOffset int    `json:"startOffset"`
	EndOffset   int    `json:"endOffset"`
	NewText     string `json:"newText"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesWithIssues int            `json:"filesWithIssues"`
	FilesModified   int            `json:"filesModified"`
	FilesErrored    int            `json:"filesErrored"`
	TotalIssues     int            `json:"totalIssues"`
	Fixable         int            `json:"fixable"`
	EditsApplied    int            `json:"editsApplied"`
	BySeverity      map[string]int `json:"bySeverity"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalIssues, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonSchemaVersion,
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{BySeverity: make(map[string]int)},
	}
	if result == nil {
		return output
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:        r.opts.displayPath(file.Path),
			Diagnostics: make([]JSONDiagnostic, 0),
		}

		if file.Error != nil {
			fileResult.Status = "error"
			fileResult.Error = file.Error.Error()
			output.Files = append(output.Files, fileResult)
			continue
		}

		if pr := file.Result; pr != nil {
			fileResult.Status = pr.Summary()
			fileResult.Modified = pr.Written
			fileResult.FixPasses = pr.FixPasses

			for _, diag := range diagnosticsOf(pr) {
				jd := JSONDiagnostic{
					RuleID:      diag.RuleID,
					RuleName:    diag.RuleName,
					Severity:    string(severityOf(&diag)),
					Message:     diag.Message,
					StartLine:   diag.StartLine,
					StartColumn: diag.StartColumn,
					EndLine:     diag.EndLine,
					EndColumn:   diag.EndColumn,
					Context:     diag.Context,
					Suggestion:  diag.Suggestion,
					Fixable:     diag.HasFix(),
					FixInfo:     diag.LineFix,
				}
				for _, edit := range diag.FixEdits {
					jd.Fixes = append(jd.Fixes, JSONFix{
						StartOffset: edit.StartOffset,
						EndOffset:   edit.EndOffset,
						NewText:     edit.NewText,
					})
				}
				fileResult.Diagnostics = append(fileResult.Diagnostics, jd)
			}

			if pr.FileResult != nil && len(pr.RuleErrors) > 0 {
				fileResult.RuleErrors = make(map[string]string, len(pr.RuleErrors))
				for id, ruleErr := range pr.RuleErrors {
					fileResult.RuleErrors[id] = ruleErr.Error()
				}
			}
		}

		output.Files = append(output.Files, fileResult)
	}

	stats := result.Stats
	output.Summary.FilesChecked = stats.FilesProcessed
	output.Summary.FilesWithIssues = stats.FilesWithIssues
	output.Summary.FilesModified = stats.FilesModified
	output.Summary.FilesErrored = stats.FilesErrored
	output.Summary.TotalIssues = stats.DiagnosticsTotal
	output.Summary.Fixable = stats.DiagnosticsFixable
	output.Summary.EditsApplied = stats.EditsApplied
	for severity, n := range stats.DiagnosticsBySeverity {
		output.Summary.BySeverity[string(severity)] = n
	}

	return output
}
