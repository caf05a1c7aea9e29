package mdfile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/sentencelint/pkg/mdfile"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []mdfile.LineInfo
	}{
		{
			name:     "empty content",
			content:  "",
			expected: []mdfile.LineInfo{},
		},
		{
			name:    "single line no newline",
			content: "hello",
			expected: []mdfile.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 5},
			},
		},
		{
			name:    "single line with LF",
			content: "hello\n",
			expected: []mdfile.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 6},
				{StartOffset: 6, NewlineStart: 6, EndOffset: 6},
			},
		},
		{
			name:    "multiple lines CRLF",
			content: "line1\r\nline2\r\n",
			expected: []mdfile.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 7},
				{StartOffset: 7, NewlineStart: 12, EndOffset: 14},
				{StartOffset: 14, NewlineStart: 14, EndOffset: 14},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, mdfile.BuildLines([]byte(testCase.content)))
		})
	}
}

func TestLineStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "empty", content: "", want: []string{}},
		{name: "no trailing newline", content: "a\nb", want: []string{"a", "b"}},
		{name: "trailing newline", content: "a\nb\n", want: []string{"a", "b", ""}},
		{name: "crlf", content: "Abc. Def.\r\nGhi.\r\n", want: []string{"Abc. Def.", "Ghi.", ""}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			snap := mdfile.New("test.md", []byte(testCase.content))
			assert.Equal(t, testCase.want, snap.LineStrings())
		})
	}
}

func TestLineAtAndOffset(t *testing.T) {
	t.Parallel()

	snap := mdfile.New("test.md", []byte("Abc. Def.\nGhi. Jkl.\n"))
	require.Equal(t, 3, snap.LineCount())

	line, col := snap.LineAt(14)
	assert.Equal(t, 2, line)
	assert.Equal(t, 5, col)

	offset, ok := snap.Offset(2, 5)
	require.True(t, ok)
	assert.Equal(t, 14, offset)

	offset, ok = snap.Offset(1, 10)
	require.True(t, ok, "column one past the content is allowed")
	assert.Equal(t, 9, offset)

	_, ok = snap.Offset(1, 11)
	assert.False(t, ok)
	_, ok = snap.Offset(4, 1)
	assert.False(t, ok)
	_, ok = snap.Offset(1, 0)
	assert.False(t, ok)

	line, col = snap.LineAt(-1)
	assert.Zero(t, line)
	assert.Zero(t, col)
}

func TestLineContent(t *testing.T) {
	t.Parallel()

	snap := mdfile.New("test.md", []byte("first\r\nsecond"))
	assert.Equal(t, []byte("first"), snap.LineContent(1))
	assert.Equal(t, "second", snap.Line(2))
	assert.Nil(t, snap.LineContent(3))
	assert.Empty(t, snap.Line(0))
}

func TestSourcePosition(t *testing.T) {
	t.Parallel()

	assert.True(t, mdfile.At(3, 7).IsValid())
	assert.Equal(t, mdfile.SourcePosition{StartLine: 3, StartColumn: 7, EndLine: 3, EndColumn: 9}, mdfile.Span(3, 7, 2))
	assert.True(t, mdfile.Span(3, 7, 2).IsValid())

	assert.False(t, mdfile.SourcePosition{}.IsValid())
	assert.False(t, mdfile.SourcePosition{StartLine: 2, StartColumn: 5, EndLine: 2, EndColumn: 4}.IsValid())
	assert.False(t, mdfile.SourcePosition{StartLine: 2, StartColumn: 1, EndLine: 1, EndColumn: 9}.IsValid())
	assert.True(t, mdfile.SourcePosition{StartLine: 1, StartColumn: 9, EndLine: 2, EndColumn: 1}.IsValid())
}

func TestLineEnding(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "\n", mdfile.New("", []byte("a\nb\r\n")).LineEnding())
	assert.Equal(t, "\r\n", mdfile.New("", []byte("a\r\nb\n")).LineEnding())
	assert.Equal(t, "\n", mdfile.New("", []byte("no terminator")).LineEnding())
	assert.Equal(t, "\n", mdfile.New("", nil).LineEnding())
}
