package sentences

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// contextRadius is the number of bytes shown on each side of a boundary.
const contextRadius = 7

var (
	headingPattern    = regexp.MustCompile(`^\s*#`)
	tablePattern      = regexp.MustCompile(`^\s*\|`)
	listMarkerPattern = regexp.MustCompile(`^\s*\d+\.`)
)

// ignoredWords are lowercase abbreviation stems that may be followed by
// punctuation, a space and a capital letter without ending a sentence.
var ignoredWords = [...]string{"ie", "i.e", "eg", "e.g", "etc", "ex"}

// IgnoredWords returns a copy of the abbreviation stems that never end a sentence.
func IgnoredWords() []string {
	words := make([]string, len(ignoredWords))
	copy(words, ignoredWords[:])
	return words
}

// ScanLine reports every sentence boundary on line.
//
// Headings and table rows are skipped entirely. A leading ordered-list marker
// ("1.", "  11.") is not treated as a sentence end. Inline code spans are skipped,
// and an unterminated code span stops the scan for the rest of the line.
func ScanLine(line string, lineNumber int, report ReportFunc) {
	if headingPattern.MatchString(line) || tablePattern.MatchString(line) {
		return
	}

	start := 0
	if listMarkerPattern.MatchString(line) {
		start = strings.IndexByte(line, '.') + 1
	}

	for i := start; i < len(line)-2; i++ {
		if line[i] == '`' {
			next, ok := SkipCodeSpan(line, i)
			if !ok {
				return
			}
			i = next
		}
		if i >= len(line)-2 {
			return
		}

		if !IsBoundary(line, i) {
			continue
		}

		report(Violation{
			LineNumber: lineNumber,
			Context:    contextAround(line, i),
			Fix: FixInfo{
				LineNumber:  lineNumber,
				EditColumn:  i + 2,
				DeleteCount: 1,
				InsertText:  "\n",
			},
		})
	}
}

// IsBoundary reports whether line[i] ends a sentence that is followed on the same
// line by another one: terminal punctuation, a single space, then A-Z, and no
// abbreviation stem immediately before the punctuation.
func IsBoundary(line string, i int) bool {
	if i < 0 || i+2 >= len(line) {
		return false
	}
	return isTerminal(line[i]) &&
		line[i+1] == ' ' &&
		isCapital(line[i+2]) &&
		!PrecededByIgnoredWord(line, i)
}

// PrecededByIgnoredWord reports whether the bytes ending at i spell an ignored
// abbreviation stem that starts on a word boundary.
//
// The comparison is exact on the stem's length, so "complex." is not matched by
// "ex": the byte before the stem ('l') is alphanumeric.
func PrecededByIgnoredWord(line string, i int) bool {
	for _, word := range ignoredWords {
		startPos := i - len(word)
		if startPos < 0 {
			continue
		}
		if !strings.EqualFold(line[startPos:i], word) {
			continue
		}
		if startPos == 0 || !isAlphanumeric(line[startPos-1]) {
			return true
		}
	}
	return false
}

func isTerminal(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}

func isCapital(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isAlphanumeric(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// contextAround returns line[i-7:i+7], clamped to the line and widened to rune
// boundaries so the snippet stays valid UTF-8.
func contextAround(line string, i int) string {
	from := max(0, i-contextRadius)
	to := min(len(line), i+contextRadius)
	for from > 0 && !utf8.RuneStart(line[from]) {
		from--
	}
	for to < len(line) && !utf8.RuneStart(line[to]) {
		to++
	}
	return line[from:to]
}
