package reporter

import (
	"bufio"
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/yaklabco/sentencelint/internal/ui/pretty"
	"github.com/yaklabco/sentencelint/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int
	for _, file := range result.Files {
		if err := ctx.Err(); err != nil {
			return total, fmt.Errorf("report cancelled: %w", err)
		}
		total += r.writeFile(file)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

// writeFile writes one file's section and returns its diagnostic count.
func (r *TextReporter) writeFile(file runner.FileOutcome) int {
	path := r.opts.displayPath(file.Path)

	if file.Error != nil {
		fmt.Fprintf(r.bw, "%s: %s\n",
			r.styles.FilePath.Render(path),
			r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
		)
		return 0
	}

	pr := file.Result
	if pr == nil {
		return 0
	}
	if pr.Skipped {
		fmt.Fprintf(r.bw, "%s: %s\n", r.styles.FilePath.Render(path), r.styles.Dim.Render(pr.Summary()))
		return 0
	}

	diagnostics := diagnosticsOf(pr)
	if len(diagnostics) == 0 && !pr.Written {
		return 0
	}

	if r.opts.GroupByFile {
		header := r.styles.FormatFileHeader(path, len(diagnostics))
		if pr.Written {
			header += " " + r.styles.Success.Render(pr.Summary())
		}
		fmt.Fprintln(r.bw, header)
	} else if pr.Written {
		fmt.Fprintf(r.bw, "%s: %s\n", r.styles.FilePath.Render(path), r.styles.Success.Render(pr.Summary()))
	}

	for i := range diagnostics {
		diag := diagnostics[i]
		diag.FilePath = path
		fmt.Fprint(r.bw, r.styles.FormatDiagnostic(&diag, pretty.DiagnosticOptions{
			ShowContext: r.opts.ShowContext,
			SourceLine:  sourceLine(pr, diag.StartLine),
			RuleFormat:  r.opts.RuleFormat,
			ShowPath:    !r.opts.GroupByFile,
		}))
	}

	if pr.FileResult != nil {
		for _, ruleID := range slices.Sorted(maps.Keys(pr.RuleErrors)) {
			fmt.Fprintf(r.bw, "  %s\n", r.styles.Error.Render(fmt.Sprintf("rule %s failed: %v", ruleID, pr.RuleErrors[ruleID])))
		}
	}

	if r.opts.GroupByFile {
		fmt.Fprintln(r.bw)
	}

	return len(diagnostics)
}
