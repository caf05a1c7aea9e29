package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/sentencelint/pkg/runner"
)

// makeTree creates files (relative paths) under a new temp dir.
func makeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func rel(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		r, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(r))
	}
	return out
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	root := makeTree(t, map[string]string{
		"README.md":             "x",
		"notes.markdown":        "x",
		"CHANGELOG.MD":          "x",
		"main.go":               "x",
		"docs/guide.md":         "x",
		"docs/api/ref.md":       "x",
		".github/template.md":   "x",
		"docs/.draft.md":        "x",
		"vendor/lib/README.md":  "x",
		"node_modules/p/doc.md": "x",
	})

	tests := []struct {
		name string
		opts runner.Options
		want []string
	}{
		{
			name: "defaults",
			opts: runner.Options{},
			want: []string{
				"CHANGELOG.MD", "README.md", "docs/api/ref.md", "docs/guide.md",
				"node_modules/p/doc.md", "notes.markdown", "vendor/lib/README.md",
			},
		},
		{
			name: "excludes",
			opts: runner.Options{ExcludeGlobs: []string{"vendor/**", "node_modules", "docs/api/**"}},
			want: []string{"CHANGELOG.MD", "README.md", "docs/guide.md", "notes.markdown"},
		},
		{
			name: "extensions",
			opts: runner.Options{Extensions: []string{".go"}},
			want: []string{"main.go"},
		},
		{
			name: "subdirectory",
			opts: runner.Options{Paths: []string{"docs"}},
			want: []string{"docs/api/ref.md", "docs/guide.md"},
		},
		{
			name: "explicit files are deduplicated and kept whatever the extension",
			opts: runner.Options{Paths: []string{"main.go", "docs", "docs/guide.md", "docs/.draft.md"}},
			want: []string{"docs/.draft.md", "docs/api/ref.md", "docs/guide.md", "main.go"},
		},
		{
			name: "explicit file still honours excludes",
			opts: runner.Options{Paths: []string{"vendor/lib/README.md"}, ExcludeGlobs: []string{"vendor/**"}},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := tt.opts
			opts.WorkingDir = root
			files, err := runner.Discover(context.Background(), opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rel(t, root, files))
		})
	}
}

func TestDiscover_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"nope.md"},
	})
	require.ErrorIs(t, err, runner.ErrNoSuchPath)
}

func TestDiscover_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{WorkingDir: t.TempDir()})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDiscover_Symlinks(t *testing.T) {
	t.Parallel()

	root := makeTree(t, map[string]string{"docs/a.md": "x"})
	outside := makeTree(t, map[string]string{"b.md": "x"})

	if err := os.Symlink(outside, filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(root, "docs", "a.md"), filepath.Join(root, "alias.md")))
	require.NoError(t, os.Symlink(filepath.Join(root, "missing.md"), filepath.Join(root, "broken.md")))
	// A cycle back to the root.
	require.NoError(t, os.Symlink(root, filepath.Join(root, "docs", "loop")))

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: root})
	require.NoError(t, err)
	assert.Equal(t, []string{"alias.md", "docs/a.md"}, rel(t, root, files))

	files, err = runner.Discover(context.Background(), runner.Options{WorkingDir: root, FollowSymlinks: true})
	require.NoError(t, err)
	assert.Contains(t, files, filepath.Join(outside, "b.md"))
	assert.Contains(t, files, filepath.Join(root, "docs", "a.md"))
}
