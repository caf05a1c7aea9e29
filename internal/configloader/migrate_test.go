package configloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/sentencelint/pkg/config"
)

func TestConvertMarkdownlintConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		file         string
		content      string
		wantEnabled  *bool
		wantOptions  map[string]any
		wantWarnings int
	}{
		{
			name:        "json with comments",
			file:        ".markdownlint.jsonc",
			content:     "{\n  // sentence rule\n  \"sentences-per-line\": true, /* keep */\n  \"url\": \"http://x//y\"\n}",
			wantEnabled: boolPtr(true),
			// "url" is not a rule.
			wantWarnings: 1,
		},
		{
			name:        "yaml alias with options",
			file:        ".markdownlint.yaml",
			content:     "sentences:\n  note: kept\nMD013: false\n",
			wantEnabled: boolPtr(true),
			wantOptions: map[string]any{"note": "kept"},
			// MD013 is skipped.
			wantWarnings: 1,
		},
		{
			name:        "default false disables unnamed rules",
			file:        ".markdownlint.json",
			content:     `{"default": false, "$schema": "x"}`,
			wantEnabled: boolPtr(false),
		},
		{
			name:        "explicit rule beats default",
			file:        ".markdownlint.json",
			content:     `{"default": false, "MDS001": true}`,
			wantEnabled: boolPtr(true),
		},
		{
			name:         "extends warns",
			file:         ".markdownlint.yml",
			content:      "extends: base.yml\n",
			wantWarnings: 1,
		},
		{
			name:        "null disables",
			file:        ".markdownlint.yml",
			content:     "sentences-per-line: null\n",
			wantEnabled: boolPtr(false),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), tt.file)
			writeFile(t, path, tt.content)

			result, err := ConvertMarkdownlintConfig(path, testRegistry())
			require.NoError(t, err)
			assert.Len(t, result.Warnings, tt.wantWarnings, result.Warnings)

			rule, ok := result.Config.Rules["MDS001"]
			if tt.wantEnabled == nil {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, *tt.wantEnabled, *rule.Enabled)
			assert.Equal(t, tt.wantOptions, rule.Options)
		})
	}
}

func TestConvertMarkdownlintConfig_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := ConvertMarkdownlintConfig(filepath.Join(dir, ".markdownlint.cjs"), nil)
	require.Error(t, err)

	_, err = ConvertMarkdownlintConfig(filepath.Join(dir, ".markdownlint.json"), nil)
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	writeFile(t, bad, "{nope")
	_, err = ConvertMarkdownlintConfig(bad, nil)
	require.Error(t, err)
}

func TestWriteMigratedConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, ".markdownlint.json")
	writeFile(t, src, `{"sentences-per-line": false}`)

	result, err := ConvertMarkdownlintConfig(src, testRegistry())
	require.NoError(t, err)

	target := filepath.Join(dir, ProjectConfigName)
	require.NoError(t, WriteMigratedConfig(result, target))

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Migrated from: .markdownlint.json")

	cfg, err := config.FromYAML(content)
	require.NoError(t, err)
	assert.False(t, *cfg.Rules["MDS001"].Enabled)
}

func TestStripJSONComments(t *testing.T) {
	t.Parallel()

	in := "{\"a\": \"//not\", // gone\n\"b\": /* gone */ 1, \"c\": \"\\\"/*\"}"
	assert.Equal(t, "{\"a\": \"//not\", \n\"b\":  1, \"c\": \"\\\"/*\"}", string(stripJSONComments([]byte(in))))
}

func boolPtr(b bool) *bool { return &b }
