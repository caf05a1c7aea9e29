package fix

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/sentencelint/pkg/mdfile"
)

// ErrLineEditOutOfRange is returned when a LineEdit does not fit its line.
var ErrLineEditOutOfRange = errors.New("line edit out of range")

// LineEdit is an edit addressed by line and column, in the shape markdownlint
// uses for fixInfo.
//
// DeleteCount bytes starting at Column on Line are replaced by InsertText.
// Columns are 1-based byte columns into the unmodified line.
type LineEdit struct {
	Line        int    `json:"lineNumber"`
	Column      int    `json:"editColumn"`
	DeleteCount int    `json:"deleteCount"`
	InsertText  string `json:"insertText"`
}

// Resolve converts the edit to a byte-offset TextEdit against snap.
//
// The deleted bytes must lie within the line's content; the terminator is never
// deleted. Newlines in InsertText are rewritten to the file's line ending.
func (le LineEdit) Resolve(snap *mdfile.FileSnapshot) (TextEdit, error) {
	if le.DeleteCount < 0 {
		return TextEdit{}, fmt.Errorf("%w: negative delete count %d", ErrLineEditOutOfRange, le.DeleteCount)
	}

	start, ok := snap.Offset(le.Line, le.Column)
	if !ok {
		return TextEdit{}, fmt.Errorf("%w: line %d column %d", ErrLineEditOutOfRange, le.Line, le.Column)
	}

	end := start + le.DeleteCount
	if end > snap.Lines[le.Line-1].NewlineStart {
		return TextEdit{}, fmt.Errorf("%w: deleting %d bytes at line %d column %d crosses the line end",
			ErrLineEditOutOfRange, le.DeleteCount, le.Line, le.Column)
	}

	text := le.InsertText
	if ending := snap.LineEnding(); ending != "\n" {
		text = strings.ReplaceAll(text, "\n", ending)
	}

	return TextEdit{StartOffset: start, EndOffset: end, NewText: text}, nil
}
