package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/sentencelint/internal/cli"
	"github.com/yaklabco/sentencelint/pkg/fsutil"
	"github.com/yaklabco/sentencelint/pkg/reporter"
)

func TestLint_ReportsViolations(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.md")
	writeFile(t, doc, "# Title. Heading\n\nOne. Two.\n\n```\nNot. Scanned.\n```\n")

	stdout, _, err := execute(t, "lint", "--config", emptyConfig(t, dir), "--color", "never", doc)
	require.NoError(t, err, "warnings do not fail the run without --strict")

	assert.Contains(t, stdout, "(1 issue)")
	assert.Contains(t, stdout, "3:4")
	assert.Contains(t, stdout, "Each sentence should be on its own line")
	assert.Contains(t, stdout, `[Context: "One. Two."]`)
	assert.Contains(t, stdout, "(sentences-per-line)")
	assert.Contains(t, stdout, "fix: Start the next sentence on a new line")
	assert.Contains(t, stdout, "1 issue (1 warning) in 1 file, 1 fixable")
}

func TestLint_RuleFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{format: "name", want: "(sentences-per-line)"},
		{format: "id", want: "(MDS001)"},
		{format: "combined", want: "(MDS001/sentences-per-line)"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			doc := filepath.Join(dir, "doc.md")
			writeFile(t, doc, "One. Two.\n")

			stdout, _, err := execute(t, "lint", "--config", emptyConfig(t, dir),
				"--rule-format", tt.format, "--no-context", doc)
			require.NoError(t, err)
			assert.Contains(t, stdout, tt.want)
		})
	}
}

func TestLint_ExitCodes(t *testing.T) {
	t.Parallel()

	t.Run("strict fails on warnings", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		doc := filepath.Join(dir, "doc.md")
		writeFile(t, doc, "One. Two.\n")

		_, _, err := execute(t, "lint", "--config", emptyConfig(t, dir), "--strict", doc)
		require.Error(t, err)
		assert.ErrorIs(t, err, cli.ErrLintIssuesFound)
		assert.Equal(t, cli.ExitLintWarnings, cli.ExitCode(err))
	})

	t.Run("error severity fails", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		doc := filepath.Join(dir, "doc.md")
		writeFile(t, doc, "One. Two.\n")
		cfg := filepath.Join(dir, "strict.yml")
		writeFile(t, cfg, "rules:\n  sentences-per-line:\n    severity: error\n")

		_, _, err := execute(t, "lint", "--config", cfg, doc)
		require.Error(t, err)
		assert.Equal(t, cli.ExitLintErrors, cli.ExitCode(err))
	})

	t.Run("clean file passes strict", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		doc := filepath.Join(dir, "doc.md")
		writeFile(t, doc, "One sentence, e.g. this one.\n")

		stdout, _, err := execute(t, "lint", "--config", emptyConfig(t, dir), "--strict", doc)
		require.NoError(t, err)
		assert.Contains(t, stdout, "No issues found (1 file checked)")
	})

	t.Run("invalid config", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfg := filepath.Join(dir, "bad.yml")
		writeFile(t, cfg, "severity_default: loud\n")

		_, _, err := execute(t, "lint", "--config", cfg, dir)
		require.Error(t, err)
		assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		_, _, err := execute(t, "lint", "--config", emptyConfig(t, dir), filepath.Join(dir, "nope.md"))
		require.Error(t, err)
		assert.Equal(t, cli.ExitIOError, cli.ExitCode(err))
	})
}

func TestLint_JSONOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.md")
	writeFile(t, doc, "First. Second.\n")

	stdout, _, err := execute(t, "lint", "--config", emptyConfig(t, dir), "--format", "json", doc)
	require.NoError(t, err)

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Len(t, out.Files, 1)
	require.Len(t, out.Files[0].Diagnostics, 1)

	diag := out.Files[0].Diagnostics[0]
	assert.Equal(t, "MDS001", diag.RuleID)
	assert.Equal(t, 6, diag.StartColumn)
	assert.Equal(t, "First. Secon", diag.Context)
	require.NotNil(t, diag.FixInfo)
	assert.Equal(t, 1, diag.FixInfo.Line)
	assert.Equal(t, 7, diag.FixInfo.Column)
	assert.Equal(t, 1, diag.FixInfo.DeleteCount)
	assert.Equal(t, "\n", diag.FixInfo.InsertText)
	assert.Equal(t, 1, out.Summary.TotalIssues)
}

func TestLint_Fix(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.md")
	writeFile(t, doc, "One. Two. Three.\n\n| A. B |\n")

	stdout, _, err := execute(t, "lint", "--config", emptyConfig(t, dir), "--fix", "--no-backups", "--strict", doc)
	require.NoError(t, err)
	assert.Contains(t, stdout, "fixed")

	content, err := os.ReadFile(doc)
	require.NoError(t, err)
	assert.Equal(t, "One.\nTwo.\nThree.\n\n| A. B |\n", string(content))
	assert.NoFileExists(t, doc+fsutil.BackupSuffix)
}

func TestLint_DryRunDiff(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.md")
	original := "Intro line.\nOne. Two.\n"
	writeFile(t, doc, original)

	stdout, _, err := execute(t, "lint", "--config", emptyConfig(t, dir),
		"--fix", "--dry-run", "--format", "diff", doc)
	require.NoError(t, err)

	assert.Contains(t, stdout, "-One. Two.")
	assert.Contains(t, stdout, "+One.")
	assert.Contains(t, stdout, "+Two.")

	content, err := os.ReadFile(doc)
	require.NoError(t, err)
	assert.Equal(t, original, string(content), "dry run leaves the file alone")
}

func TestLint_DisableRule(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.md")
	writeFile(t, doc, "One. Two.\n")

	stdout, _, err := execute(t, "lint", "--config", emptyConfig(t, dir), "--disable", "sentences", "--strict", doc)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No issues found")
}

func TestLint_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "One. Two.\n")
	writeFile(t, filepath.Join(dir, "docs", "b.markdown"), "Fine.\n")
	writeFile(t, filepath.Join(dir, "vendor", "c.md"), "Three. Four.\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "Five. Six.\n")

	stdout, _, err := execute(t, "lint", "--config", emptyConfig(t, dir),
		"--ignore", "vendor", "--format", "json", dir)
	require.NoError(t, err)

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Len(t, out.Files, 2)
	assert.Equal(t, 2, out.Summary.FilesChecked)
	assert.Equal(t, 1, out.Summary.TotalIssues)
}
