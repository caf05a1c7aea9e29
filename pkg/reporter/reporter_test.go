package reporter_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/sentencelint/pkg/config"
	"github.com/yaklabco/sentencelint/pkg/reporter"
)

func TestNew(t *testing.T) {
	t.Parallel()

	for _, format := range append(config.OutputFormats(), "") {
		rep, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: format})
		require.NoError(t, err, "format %q", format)
		assert.NotNil(t, rep)
	}

	rep, err := reporter.New(reporter.Options{Format: "xml"})
	require.ErrorIs(t, err, reporter.ErrUnsupportedFormat)
	assert.Nil(t, rep)
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := reporter.DefaultOptions()
	assert.Equal(t, config.FormatText, opts.Format)
	assert.Equal(t, config.RuleFormatName, opts.RuleFormat)
	assert.True(t, opts.ShowContext)
	assert.True(t, opts.ShowSummary)
	assert.True(t, opts.GroupByFile)
	assert.NotNil(t, opts.Writer)
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	root, result := lintTree(t, map[string]string{
		"a.md":     "First. Second.\n",
		"clean.md": "Fine.\n",
	}, nil)

	var buf bytes.Buffer
	opts := plainOptions(root)
	opts.Writer = &buf

	n, err := reporter.NewTextReporter(opts).Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	want := "a.md (1 issue)\n" +
		"  1:6  warning  Each sentence should be on its own line [Context: \"First. Secon\"]  (sentences-per-line)\n" +
		"      First. Second.\n" +
		"           ^\n" +
		"      fix: Start the next sentence on a new line\n" +
		"\n" +
		"1 issue (1 warning), in 1 file, 1 fixable\n"
	assert.Equal(t, want, buf.String())
}

func TestTextReporter_Flat(t *testing.T) {
	t.Parallel()

	root, result := lintTree(t, map[string]string{"docs/a.md": "A. B.\n"}, nil)

	var buf bytes.Buffer
	opts := plainOptions(root)
	opts.Writer = &buf
	opts.GroupByFile = false
	opts.ShowContext = false
	opts.ShowSummary = false
	opts.RuleFormat = config.RuleFormatID

	_, err := reporter.NewTextReporter(opts).Report(context.Background(), result)
	require.NoError(t, err)

	assert.Equal(t,
		"  docs/a.md:1:2  warning  Each sentence should be on its own line [Context: \"A. B.\"]  (MDS001)\n"+
			"      fix: Start the next sentence on a new line\n",
		buf.String())
}

func TestTextReporter_Fixed(t *testing.T) {
	t.Parallel()

	root, result := lintTree(t, map[string]string{"a.md": "A. B.\n"}, func(cfg *config.Config) {
		cfg.Fix = true
	})

	var buf bytes.Buffer
	opts := plainOptions(root)
	opts.Writer = &buf

	n, err := reporter.NewTextReporter(opts).Report(context.Background(), result)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, "a.md fixed\n\nNo issues found (1 file checked), 1 fix applied in 1 file\n", buf.String())
}

func TestTextReporter_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := plainOptions("")
	opts.Writer = &buf

	n, err := reporter.NewTextReporter(opts).Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, "No files to check.\n", buf.String())
}
