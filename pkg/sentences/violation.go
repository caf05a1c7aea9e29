package sentences

// Range is a 1-based column span within a line.
type Range struct {
	Column int
	Length int
}

// FixInfo describes a single in-line edit in markdownlint's fixInfo shape.
//
// Applying it deletes DeleteCount bytes starting at EditColumn on LineNumber and
// inserts InsertText in their place. Columns are 1-based byte columns into the
// unmodified line.
type FixInfo struct {
	LineNumber  int
	EditColumn  int
	DeleteCount int
	InsertText  string
}

// Violation is a single sentence boundary found on a line.
type Violation struct {
	// LineNumber is the 1-based line the boundary was found on.
	LineNumber int

	// Detail is always empty for this rule.
	Detail string

	// Range is always nil for this rule.
	Range *Range

	// Context is a short snippet of the line centred on the boundary.
	Context string

	// Fix replaces the space between the two sentences with a newline.
	Fix FixInfo
}

// ReportFunc receives violations as they are found.
type ReportFunc func(Violation)
