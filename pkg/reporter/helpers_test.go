package reporter_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/sentencelint/pkg/config"
	"github.com/yaklabco/sentencelint/pkg/lint"
	"github.com/yaklabco/sentencelint/pkg/lint/rules"
	"github.com/yaklabco/sentencelint/pkg/reporter"
	"github.com/yaklabco/sentencelint/pkg/runner"
)

// lintTree writes files under a temp dir and runs the linter over it.
func lintTree(t *testing.T, files map[string]string, configure func(*config.Config)) (string, *runner.Result) {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	cfg := config.NewConfig()
	cfg.NoBackups = true
	if configure != nil {
		configure(cfg)
	}

	registry := lint.NewRegistry()
	rules.RegisterAll(registry)
	r := runner.New(lint.NewPipeline(lint.NewEngine(registry)))

	result, err := r.Run(context.Background(), runner.Options{WorkingDir: root, Config: cfg})
	require.NoError(t, err)
	return root, result
}

func plainOptions(root string) reporter.Options {
	opts := reporter.DefaultOptions()
	opts.Color = "never"
	opts.WorkingDir = root
	return opts
}
