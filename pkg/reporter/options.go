package reporter

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/sentencelint/internal/ui/pretty"
	"github.com/yaklabco/sentencelint/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	Format config.OutputFormat

	// Color is "auto", "always" or "never".
	Color string

	// ShowContext prints the source line and a caret under each text diagnostic.
	ShowContext bool

	// ShowSummary appends aggregate statistics (text and diff).
	ShowSummary bool

	// GroupByFile prints a heading per file; otherwise every line carries its path.
	GroupByFile bool

	// Compact disables indentation in JSON and SARIF output.
	Compact bool

	RuleFormat config.RuleFormat

	// WorkingDir is the directory paths are shown relative to.
	// If empty, paths are shown as given.
	WorkingDir string

	// ToolVersion is reported in SARIF output.
	ToolVersion string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      config.FormatText,
		Color:       pretty.ColorAuto,
		ShowContext: true,
		ShowSummary: true,
		GroupByFile: true,
		RuleFormat:  config.RuleFormatName,
		ToolVersion: "dev",
	}
}

// displayPath returns path relative to WorkingDir, with forward slashes.
// Paths outside WorkingDir are kept as given.
func (o Options) displayPath(path string) string {
	if o.WorkingDir == "" || !filepath.IsAbs(path) {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(o.WorkingDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
