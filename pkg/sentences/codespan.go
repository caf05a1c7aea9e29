package sentences

import "strings"

// SkipCodeSpan returns the index just past the inline code span that opens at line[i].
//
// The opening run of backticks may be any length. The span closes at the next
// backtick that is not preceded by a backslash, and the whole closing run is
// consumed. ok is false when the span is unterminated: the line ends inside the
// opening run, no unescaped closing backtick exists, or the closing run reaches the
// end of the line. Callers treat an unterminated span as consuming the rest of the line.
//
// If line[i] is not a backtick, SkipCodeSpan returns (i, true).
func SkipCodeSpan(line string, i int) (int, bool) {
	if i < 0 || i >= len(line) || line[i] != '`' {
		return i, true
	}

	i++

	// Opening run.
	for i < len(line) && line[i] == '`' {
		i++
		if i == len(line) {
			return 0, false
		}
	}

	// Closing backtick, skipping escaped ones.
	for {
		next := strings.IndexByte(line[i:], '`')
		if next < 0 {
			return 0, false
		}
		i += next
		if line[i-1] != '\\' {
			break
		}
		i++
	}

	// Closing run.
	for i < len(line) && line[i] == '`' {
		i++
		if i == len(line) {
			return 0, false
		}
	}

	return i, true
}
