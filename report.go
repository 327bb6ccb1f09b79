package linediff

import (
	"strconv"

	"go.uber.org/zap"
)

// NoDifferences is the report for identical line sequences
const NoDifferences = "No differences\n"

// Divergence is the first difference between two line sequences, including the line from each sequence at that point.
// A line index past the end of a sequence has an empty line.
type Divergence struct {
	Position
	A, B string
}

// Locate returns the first Divergence between a and b and true.
// Returns false if a and b are identical.
func Locate(a, b []string) (Divergence, bool) {
	pos, differs := CompareLines(a, b)
	if !differs {
		return Divergence{Position: pos}, false
	}
	return Divergence{
		Position: pos,
		A:        lineAt(a, pos.Line),
		B:        lineAt(b, pos.Line),
	}, true
}

func lineAt(lines []string, index int) string {
	if index >= len(lines) {
		return ""
	}
	return lines[index]
}

// Report returns a report of the first difference between a and b. See Reporter.Report.
func Report(a, b []string) string {
	return Reporter{}.Report(a, b)
}

// Reporter generates difference reports and logs what it finds
type Reporter struct {
	// Logger receives debug logs for each report and warnings for lines that cannot be formatted.
	// Defaults to a no-op logger.
	Logger *zap.Logger
}

// Report returns NoDifferences if a and b are identical.
// Otherwise, returns a "Line N:" header followed by FormatLine's output for the lines at the first difference.
func (r Reporter) Report(a, b []string) string {
	d, differs := Locate(a, b)
	return r.report(d, differs)
}

func (r Reporter) report(d Divergence, differs bool) string {
	logger := r.logger()
	if !differs {
		logger.Debug("No differences found")
		return NoDifferences
	}
	logger.Debug("Found first difference", zap.Int("line", d.Line), zap.Int("column", d.Column))
	formatted, err := formatLine(d.A, d.B, d.Column)
	if err != nil {
		logger.Warn("Unable to format difference", zap.Int("line", d.Line), zap.Error(err))
	}
	return Header(d.Line) + formatted
}

func (r Reporter) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// Header returns the report header line for the given line index, including a trailing newline
func Header(line int) string {
	return "Line " + strconv.Itoa(line) + ":\n"
}
