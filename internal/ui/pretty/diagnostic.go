package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/sentencelint/pkg/config"
	"github.com/yaklabco/sentencelint/pkg/lint"
)

const (
	sourceIndent = "      "
	tabWidth     = 4
)

// DiagnosticOptions controls FormatDiagnostic.
type DiagnosticOptions struct {
	// ShowContext adds the source line with a caret under the issue.
	ShowContext bool
	// SourceLine is the content of the diagnostic's start line.
	SourceLine string
	RuleFormat config.RuleFormat
	// ShowPath prefixes the location with the file path (ungrouped output).
	ShowPath bool
}

// FormatDiagnostic renders one diagnostic as
//
//	line:col  severity  message [excerpt]  (rule)
func (s *Styles) FormatDiagnostic(diag *lint.Diagnostic, opts DiagnosticOptions) string {
	var b strings.Builder

	location := fmt.Sprintf("%d:%d", diag.StartLine, diag.StartColumn)
	if opts.ShowPath {
		location = s.FilePath.Render(diag.FilePath) + ":" + location
	}

	rule := opts.RuleFormat.Identifier(diag.RuleID, diag.RuleName)

	fmt.Fprintf(&b, "  %s  %s  %s", s.Location.Render(location), s.FormatSeverity(diag.Severity), s.Message.Render(diag.Message))
	if diag.Context != "" {
		b.WriteString(" " + s.Excerpt.Render(fmt.Sprintf("[Context: %q]", diag.Context)))
	}
	b.WriteString("  " + s.RuleID.Render("("+rule+")") + "\n")

	if opts.ShowContext && opts.SourceLine != "" {
		b.WriteString(s.FormatSourceContext(opts.SourceLine, diag.StartColumn, diag.EndColumn))
	}

	if diag.Suggestion != "" {
		b.WriteString(sourceIndent + s.Dim.Render("fix:") + " " + s.Suggestion.Render(diag.Suggestion) + "\n")
	}

	return b.String()
}

// FormatSeverity returns the styled severity label.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatSourceContext renders line with carets under byte columns [start, end).
// Padding follows display width. Render expands tabs to tabWidth spaces.
func (s *Styles) FormatSourceContext(line string, start, end int) string {
	var b strings.Builder
	b.WriteString(sourceIndent + s.SourceLine.Render(line) + "\n")

	if start < 1 || start > len(line)+1 {
		return b.String()
	}
	width := max(end-start, 1)

	var pad strings.Builder
	for _, r := range line[:start-1] {
		if r == '\t' {
			pad.WriteString(strings.Repeat(" ", tabWidth))
			continue
		}
		pad.WriteString(strings.Repeat(" ", lipgloss.Width(string(r))))
	}
	b.WriteString(sourceIndent + pad.String() + s.Caret.Render(strings.Repeat("^", width)) + "\n")

	return b.String()
}

// FormatFileHeader renders a file heading for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", issueCount, plural(issueCount, "issue", "issues")))
	}
	return header
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
