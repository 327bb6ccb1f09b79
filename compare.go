// Package linediff locates the first difference between two texts and formats a marker pointing at it.
package linediff

import "unicode/utf8"

// Identical is the line or column index reported when no difference exists
const Identical = -1

// Position is the line and column of the first difference between two line sequences.
// Both fields are Identical when nothing differs, otherwise both are 0 or greater.
type Position struct {
	Line   int
	Column int
}

var identicalPosition = Position{Line: Identical, Column: Identical}

// CompareLine returns the character index of the first difference between a and b and true.
// If one line is a prefix of the other, the index is the length of the shorter line.
// Returns Identical and false if a and b are equal.
func CompareLine(a, b string) (column int, differs bool) {
	for a != "" && b != "" {
		_, sizeA := utf8.DecodeRuneInString(a)
		_, sizeB := utf8.DecodeRuneInString(b)
		if a[:sizeA] != b[:sizeB] {
			return column, true
		}
		a, b = a[sizeA:], b[sizeB:]
		column++
	}
	if a == "" && b == "" {
		return Identical, false
	}
	return column, true
}

// CompareLines returns the Position of the first difference between line sequences a and b and true.
// Earlier lines take priority, then earlier columns. A length mismatch only counts once all common lines match,
// in which case the Position is the first line present in only the longer sequence, column 0.
// Returns a Position of Identical and false if a and b are equal.
func CompareLines(a, b []string) (Position, bool) {
	common := min(len(a), len(b))
	for i := 0; i < common; i++ {
		if column, differs := CompareLine(a[i], b[i]); differs {
			return Position{Line: i, Column: column}, true
		}
	}
	if len(a) == len(b) {
		return identicalPosition, false
	}
	// the first extra line is always the length of the common prefix, including an empty one
	return Position{Line: common, Column: 0}, true
}
