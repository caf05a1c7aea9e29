// Package fix applies byte-offset text edits and renders unified diffs of the
// result.
package fix

// TextEdit replaces the bytes [StartOffset, EndOffset) with NewText.
// An empty range inserts and an empty NewText deletes.
type TextEdit struct {
	StartOffset int
	EndOffset   int
	NewText     string
}

// Len returns the number of bytes the edit removes.
func (e TextEdit) Len() int {
	return e.EndOffset - e.StartOffset
}

// IsNoop reports whether applying the edit to content leaves it unchanged.
func (e TextEdit) IsNoop(content []byte) bool {
	if e.StartOffset < 0 || e.EndOffset > len(content) || e.StartOffset > e.EndOffset {
		return false
	}
	return string(content[e.StartOffset:e.EndOffset]) == e.NewText
}
