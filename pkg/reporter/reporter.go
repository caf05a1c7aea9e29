// Package reporter writes lint results in text, JSON, SARIF and diff form.
package reporter

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/sentencelint/pkg/config"
	"github.com/yaklabco/sentencelint/pkg/lint"
	"github.com/yaklabco/sentencelint/pkg/runner"
)

// ErrUnsupportedFormat is returned by New for unknown formats.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Reporter formats and writes lint results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of issues reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for opts.Format. An empty format means text.
func New(opts Options) (Reporter, error) {
	defaults := DefaultOptions()
	if opts.Writer == nil {
		opts.Writer = defaults.Writer
	}
	if opts.ToolVersion == "" {
		opts.ToolVersion = defaults.ToolVersion
	}

	switch opts.Format {
	case config.FormatText, "":
		return NewTextReporter(opts), nil
	case config.FormatJSON:
		return NewJSONReporter(opts), nil
	case config.FormatSARIF:
		return NewSARIFReporter(opts), nil
	case config.FormatDiff:
		return NewDiffReporter(opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
	}
}

// sourceLine returns the content of a diagnostic's line from the snapshot the
// diagnostics were produced against.
func sourceLine(pr *lint.PipelineResult, line int) string {
	if pr == nil || pr.FileResult == nil || pr.Snapshot == nil {
		return ""
	}
	return string(pr.Snapshot.LineContent(line))
}

func diagnosticsOf(pr *lint.PipelineResult) []lint.Diagnostic {
	if pr == nil || pr.FileResult == nil {
		return nil
	}
	return pr.Diagnostics
}

func severityOf(diag *lint.Diagnostic) config.Severity {
	if diag.Severity == "" {
		return config.SeverityWarning
	}
	return diag.Severity
}
