package sentences

import "strings"

// fenceMarker opens and closes a fenced code block.
const fenceMarker = "```"

// fenceState is the driver state while walking a document.
type fenceState int

const (
	stateNormal fenceState = iota
	stateInFence
)

// FenceTracker follows fenced code blocks line by line.
// The zero value starts outside any fence.
type FenceTracker struct {
	state fenceState
}

// Next consumes one line and reports whether it should be scanned.
// Fence delimiter lines toggle the state and are never scanned.
func (ft *FenceTracker) Next(line string) bool {
	if IsFenceLine(line) {
		if ft.state == stateNormal {
			ft.state = stateInFence
		} else {
			ft.state = stateNormal
		}
		return false
	}
	return ft.state == stateNormal
}

// InFence reports whether the tracker is inside a fenced code block.
func (ft *FenceTracker) InFence() bool {
	return ft.state == stateInFence
}

// IsFenceLine reports whether line, ignoring leading whitespace, starts with
// three backticks.
func IsFenceLine(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), fenceMarker)
}

// ScanDocument scans lines in order, skipping fenced code blocks, and reports
// violations with 1-based line numbers.
func ScanDocument(lines []string, report ReportFunc) {
	var tracker FenceTracker
	for idx, line := range lines {
		if !tracker.Next(line) {
			continue
		}
		ScanLine(line, idx+1, report)
	}
}
