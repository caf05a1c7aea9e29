// Package mdfile holds the line-indexed view of a Markdown file that rules scan.
//
// Sentence rules work on raw lines rather than a syntax tree, so a snapshot is
// just the content plus an index of line boundaries.
package mdfile

// FileSnapshot is an immutable view of a Markdown file at a specific time.
type FileSnapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines contains metadata for each line in the file.
	Lines []LineInfo

	lineStrings []string
}

// LineInfo holds metadata for a single line in a file.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where the line terminator begins.
	// For the last line without a terminator this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the terminator (or end of file).
	EndOffset int
}

// New creates a FileSnapshot and builds its line index.
func New(path string, content []byte) *FileSnapshot {
	lines := BuildLines(content)
	strs := make([]string, len(lines))
	for idx, info := range lines {
		strs[idx] = string(content[info.StartOffset:info.NewlineStart])
	}

	return &FileSnapshot{
		Path:        path,
		Content:     content,
		Lines:       lines,
		lineStrings: strs,
	}
}

// LineStrings returns every line without its terminator, in order.
// Content ending in a newline yields a trailing empty line, and empty content
// yields no lines. The returned slice must not be modified.
func (f *FileSnapshot) LineStrings() []string {
	return f.lineStrings
}

// Line returns the 1-based line without its terminator, or "" when out of range.
func (f *FileSnapshot) Line(line int) string {
	if line < 1 || line > len(f.lineStrings) {
		return ""
	}
	return f.lineStrings[line-1]
}
