package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/sentencelint/pkg/config"
	"github.com/yaklabco/sentencelint/pkg/reporter"
)

func TestSARIFReporter(t *testing.T) {
	t.Parallel()

	root, result := lintTree(t, map[string]string{
		"a.md":      "One. Two.\n",
		"docs/b.md": "Yes! No.\n",
	}, nil)

	var buf bytes.Buffer
	opts := plainOptions(root)
	opts.Writer = &buf
	opts.ToolVersion = "1.2.3"

	n, err := reporter.NewSARIFReporter(opts).Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var out reporter.SARIFOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "2.1.0", out.Version)
	require.Len(t, out.Runs, 1)
	run := out.Runs[0]

	_, err = uuid.Parse(run.AutomationDetails.GUID)
	require.NoError(t, err)

	assert.Equal(t, "sentencelint", run.Tool.Driver.Name)
	assert.Equal(t, "1.2.3", run.Tool.Driver.Version)
	require.Len(t, run.Tool.Driver.Rules, 1, "rules are listed once")
	assert.Equal(t, "MDS001", run.Tool.Driver.Rules[0].ID)
	assert.Equal(t, "sentences-per-line", run.Tool.Driver.Rules[0].Name)

	require.Len(t, run.Results, 2)
	first := run.Results[0]
	assert.Equal(t, "MDS001", first.RuleID)
	assert.Zero(t, first.RuleIndex)
	assert.Equal(t, "warning", first.Level)

	loc := first.Locations[0].PhysicalLocation
	assert.Equal(t, "a.md", loc.ArtifactLocation.URI)
	assert.Equal(t, 1, loc.Region.StartLine)
	assert.Equal(t, 4, loc.Region.StartColumn)
	assert.Equal(t, 5, loc.Region.EndColumn)
	require.NotNil(t, loc.Region.Snippet)
	assert.Equal(t, "One. Two.", loc.Region.Snippet.Text)

	require.Len(t, first.Fixes, 1)
	change := first.Fixes[0].ArtifactChanges[0]
	assert.Equal(t, "Start the next sentence on a new line", first.Fixes[0].Description.Text)
	assert.Equal(t, reporter.SARIFRegion{StartLine: 1, StartColumn: 5, EndLine: 1, EndColumn: 6}, change.Replacements[0].DeletedRegion)
	assert.Equal(t, "\n", change.Replacements[0].InsertedContent.Text)

	assert.Equal(t, "docs/b.md", run.Results[1].Locations[0].PhysicalLocation.ArtifactLocation.URI)
}

func TestSARIFReporter_Levels(t *testing.T) {
	t.Parallel()

	for severity, level := range map[config.Severity]string{
		config.SeverityError:   "error",
		config.SeverityWarning: "warning",
		config.SeverityInfo:    "note",
	} {
		root, result := lintTree(t, map[string]string{"a.md": "A. B.\n"}, func(cfg *config.Config) {
			cfg.SeverityDefault = string(severity)
		})

		var buf bytes.Buffer
		opts := plainOptions(root)
		opts.Writer = &buf
		_, err := reporter.NewSARIFReporter(opts).Report(context.Background(), result)
		require.NoError(t, err)

		var out reporter.SARIFOutput
		require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
		require.Len(t, out.Runs[0].Results, 1)
		assert.Equal(t, level, out.Runs[0].Results[0].Level, "severity %s", severity)
	}
}

func TestSARIFReporter_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := plainOptions("")
	opts.Writer = &buf

	n, err := reporter.NewSARIFReporter(opts).Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Contains(t, buf.String(), `"results": []`)
	assert.Contains(t, buf.String(), `"rules": []`)
}
