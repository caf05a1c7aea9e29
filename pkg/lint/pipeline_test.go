package lint_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/sentencelint/pkg/config"
	"github.com/yaklabco/sentencelint/pkg/fsutil"
	"github.com/yaklabco/sentencelint/pkg/lint"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func fixOptions() lint.PipelineOptions {
	opts := lint.DefaultPipelineOptions()
	opts.Fix = true
	return opts
}

func fixConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Fix = true
	return cfg
}

func TestPipeline_ProcessFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	pipeline := lint.NewPipeline(newEngine(newSplitRule()))

	t.Run("lint only", func(t *testing.T) {
		t.Parallel()

		path := writeDoc(t, "Abc. Def.\n")
		result, err := pipeline.ProcessFile(ctx, path, config.NewConfig(), lint.DefaultPipelineOptions())
		require.NoError(t, err)
		assert.Equal(t, 1, result.IssueCount())
		assert.False(t, result.Modified)
		assert.Nil(t, result.ModifiedContent)
		assert.NotNil(t, result.OriginalInfo)
		assert.Equal(t, "issues found", result.Summary())
	})

	t.Run("fix writes file and backup", func(t *testing.T) {
		t.Parallel()

		path := writeDoc(t, "One. Two. Three.\n")
		opts := fixOptions()
		opts.Backup = fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}

		result, err := pipeline.ProcessFile(ctx, path, fixConfig(), opts)
		require.NoError(t, err)
		assert.True(t, result.Written)
		assert.True(t, result.BackupCreated)
		assert.Equal(t, 1, result.FixPasses)
		assert.Equal(t, 2, result.TotalEditsApplied)
		assert.False(t, result.HasIssues(), "last pass is clean")
		assert.Equal(t, "fixed (backup created)", result.Summary())

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "One.\nTwo.\nThree.\n", string(got))
		assert.Equal(t, 3, countLines(got))

		backup, err := os.ReadFile(path + fsutil.BackupSuffix)
		require.NoError(t, err)
		assert.Equal(t, "One. Two. Three.\n", string(backup))

		stat, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), stat.Mode().Perm())
	})

	t.Run("dry run leaves file alone", func(t *testing.T) {
		t.Parallel()

		path := writeDoc(t, "Abc. Def.\n")
		opts := fixOptions()
		opts.DryRun = true

		result, err := pipeline.ProcessFile(ctx, path, fixConfig(), opts)
		require.NoError(t, err)
		assert.True(t, result.Modified)
		assert.False(t, result.Written)
		require.NotNil(t, result.Diff)
		assert.Contains(t, result.Diff.String(), "+Def.")
		assert.Equal(t, "changes pending", result.Summary())

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Abc. Def.\n", string(got))
	})

	t.Run("clean file", func(t *testing.T) {
		t.Parallel()

		path := writeDoc(t, "Abc.\nDef.\n")
		result, err := pipeline.ProcessFile(ctx, path, fixConfig(), fixOptions())
		require.NoError(t, err)
		assert.False(t, result.Written)
		assert.Equal(t, "ok", result.Summary())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := pipeline.ProcessFile(ctx, filepath.Join(t.TempDir(), "missing.md"), nil, lint.DefaultPipelineOptions())
		require.ErrorIs(t, err, lint.ErrFileNotFound)
		assert.True(t, lint.IsPipelineError(err))
	})
}

func TestPipeline_ProcessContent(t *testing.T) {
	t.Parallel()

	pipeline := lint.NewPipeline(newEngine(newSplitRule()))
	opts := fixOptions()
	opts.MaxFixPasses = 1

	result, err := pipeline.ProcessContent(context.Background(), "mem.md", []byte("A. B.\n"), fixConfig(), opts)
	require.NoError(t, err)
	assert.Equal(t, "A.\nB.\n", string(result.ModifiedContent))
	assert.Nil(t, result.OriginalInfo)
	assert.Nil(t, result.Diff)
}

func TestPipelineOptionsFromConfig(t *testing.T) {
	t.Parallel()

	opts := lint.PipelineOptionsFromConfig(nil)
	assert.Equal(t, lint.DefaultPipelineOptions(), opts)

	cfg := config.NewConfig()
	cfg.Fix = true
	cfg.DryRun = true
	opts = lint.PipelineOptionsFromConfig(cfg)
	assert.True(t, opts.Fix)
	assert.True(t, opts.DryRun)
	assert.True(t, opts.Backup.Enabled)
	assert.Equal(t, fsutil.BackupModeSidecar, opts.Backup.Mode)

	cfg.NoBackups = true
	assert.False(t, lint.PipelineOptionsFromConfig(cfg).Backup.Enabled)
}
