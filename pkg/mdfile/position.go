package mdfile

// SourcePosition is a range of 1-based byte columns. EndColumn is exclusive,
// so a range covering one byte has EndColumn == StartColumn+1.
type SourcePosition struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// At returns the empty range at line:col.
func At(line, col int) SourcePosition {
	return SourcePosition{StartLine: line, StartColumn: col, EndLine: line, EndColumn: col}
}

// Span returns the range of n bytes starting at line:col.
func Span(line, col, n int) SourcePosition {
	return SourcePosition{StartLine: line, StartColumn: col, EndLine: line, EndColumn: col + n}
}

// IsValid reports whether the range starts at a positive position and does
// not end before it starts.
func (sp SourcePosition) IsValid() bool {
	if sp.StartLine < 1 || sp.StartColumn < 1 || sp.EndLine < sp.StartLine {
		return false
	}
	return sp.EndLine > sp.StartLine || sp.EndColumn >= sp.StartColumn
}
