package linediff

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	lineBreaks = "\r\n"
	markerFill = "="
	markerTip  = "^"
)

var (
	// ErrLineBreak is returned when a line to format contains a newline or carriage return
	ErrLineBreak = errors.New("line contains a line break")
	// ErrColumnMismatch is returned when a column to format is not the first difference between two lines
	ErrColumnMismatch = errors.New("column is not the first difference")
)

// FormatLine returns a, a marker line pointing at column, and b, each followed by a newline.
// The marker is column '=' characters followed by a '^'.
//
// Returns an empty string if a or b contain a line break, or if column is not what CompareLine(a, b) returns.
func FormatLine(a, b string, column int) string {
	formatted, _ := formatLine(a, b, column)
	return formatted
}

func formatLine(a, b string, column int) (string, error) {
	if strings.ContainsAny(a, lineBreaks) || strings.ContainsAny(b, lineBreaks) {
		return "", errors.WithStack(ErrLineBreak)
	}
	if firstDiff, _ := CompareLine(a, b); column != firstDiff {
		return "", errors.Wrapf(ErrColumnMismatch, "column %d, first difference at %d", column, firstDiff)
	}

	var sb strings.Builder
	sb.WriteString(a)
	sb.WriteRune('\n')
	sb.WriteString(Marker(column))
	sb.WriteRune('\n')
	sb.WriteString(b)
	sb.WriteRune('\n')
	return sb.String(), nil
}

// Marker returns the marker line for column, without a trailing newline.
// An Identical column is just the tip.
func Marker(column int) string {
	return strings.Repeat(markerFill, max(column, 0)) + markerTip
}
