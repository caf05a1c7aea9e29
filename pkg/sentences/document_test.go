package sentences_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/sentencelint/pkg/sentences"
)

func scanText(text string) []sentences.Violation {
	var got []sentences.Violation
	sentences.ScanDocument(strings.Split(text, "\n"), func(v sentences.Violation) {
		got = append(got, v)
	})
	return got
}

func TestScanDocument(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLines []int
	}{
		{
			name:      "plain paragraph",
			text:      "Abc. Def.\nGhi.\n",
			wantLines: []int{1},
		},
		{
			name:      "fenced block is skipped",
			text:      "\n```plaintext\nAbc. Def.\n```\n\nAbc. Def.\n",
			wantLines: []int{6},
		},
		{
			name:      "indented fence is recognised",
			text:      "Intro.\n  ```\nAbc. Def.\n  ```\nGhi. Jkl.\n",
			wantLines: []int{5},
		},
		{
			name:      "unclosed fence skips the rest",
			text:      "Abc. Def.\n```\nGhi. Jkl.\nMno. Pqr.\n",
			wantLines: []int{1},
		},
		{
			name:      "fence line itself is not scanned",
			text:      "```Abc. Def.\n```\n",
			wantLines: nil,
		},
		{
			name:      "several blocks",
			text:      "```\nA. B.\n```\nC. D.\n```go\nE. F.\n```\nG. H.\n",
			wantLines: []int{4, 8},
		},
		{
			name:      "empty document",
			text:      "",
			wantLines: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lines []int
			for _, v := range scanText(tt.text) {
				lines = append(lines, v.LineNumber)
			}
			assert.Equal(t, tt.wantLines, lines)
		})
	}
}

func TestScanDocument_FencedExample(t *testing.T) {
	got := scanText("\n```plaintext\nAbc. Def.\n```\n\nAbc. Def.\n")
	require.Len(t, got, 1)
	assert.Equal(t, 6, got[0].LineNumber)
	assert.Equal(t, 5, got[0].Fix.EditColumn)
	assert.Equal(t, "Abc. Def.", got[0].Context)
}

func TestFenceTracker(t *testing.T) {
	var ft sentences.FenceTracker
	assert.False(t, ft.InFence())

	assert.True(t, ft.Next("text"))
	assert.False(t, ft.Next("```go"))
	assert.True(t, ft.InFence())
	assert.False(t, ft.Next("code. Here."))
	assert.False(t, ft.Next("\t```"))
	assert.False(t, ft.InFence())
	assert.True(t, ft.Next("more text"))
}

func TestIsFenceLine(t *testing.T) {
	assert.True(t, sentences.IsFenceLine("```"))
	assert.True(t, sentences.IsFenceLine("```js"))
	assert.True(t, sentences.IsFenceLine("    ````"))
	assert.False(t, sentences.IsFenceLine("``"))
	assert.False(t, sentences.IsFenceLine("~~~"))
	assert.False(t, sentences.IsFenceLine("text ```"))
}

// applyFixes applies fixes to text the way a host engine would, last first.
func applyFixes(text string, violations []sentences.Violation) string {
	lines := strings.Split(text, "\n")
	for idx := len(violations) - 1; idx >= 0; idx-- {
		fix := violations[idx].Fix
		line := lines[fix.LineNumber-1]
		col := fix.EditColumn - 1
		lines[fix.LineNumber-1] = line[:col] + fix.InsertText + line[col+fix.DeleteCount:]
	}
	return strings.Join(lines, "\n")
}

func TestFixIsIdempotent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "two sentences",
			text: "Abc. Def.\n",
			want: "Abc.\nDef.\n",
		},
		{
			name: "three sentences",
			text: "One here. Two here! Three here?\n",
			want: "One here.\nTwo here!\nThree here?\n",
		},
		{
			name: "several lines",
			text: "A b. C d.\n\n```\nX. Y.\n```\nE f? G h.\n",
			want: "A b.\nC d.\n\n```\nX. Y.\n```\nE f?\nG h.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixed := applyFixes(tt.text, scanText(tt.text))
			assert.Equal(t, tt.want, fixed)
			assert.Empty(t, scanText(fixed))
		})
	}
}
