// Package sentences detects lines that hold more than one sentence.
//
// A sentence boundary is terminal punctuation ('.', '!' or '?') followed by a
// single space and an uppercase ASCII letter, unless the punctuation closes one of
// a small fixed set of abbreviations ("e.g", "ie", "etc", ...). Headings, table
// rows, ordered-list numbering, inline code spans and fenced code blocks never
// produce boundaries.
//
// Each boundary is reported as a Violation carrying a FixInfo that replaces the
// separating space with a newline. The package holds no mutable state; ScanLine
// and ScanDocument are safe for concurrent use.
package sentences
