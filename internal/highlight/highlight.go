// Package highlight renders line differences for terminals
package highlight

import (
	"strings"

	"github.com/fatih/color"
	"github.com/johnstarich/go/linediff"
	"github.com/johnstarich/go/linediff/internal/status"
	"github.com/mattn/go-runewidth"
)

// Options controls how differences are rendered. The zero value renders the same text as linediff.Report.
type Options struct {
	// Color adds terminal colors
	Color bool
	// DisplayWidth sizes the marker by terminal cell width instead of character count, aligning the marker under wide characters
	DisplayWidth bool
}

func bold() *color.Color   { return color.New(color.Bold) }
func red() *color.Color    { return color.New(color.FgRed) }
func yellow() *color.Color { return color.New(color.FgYellow) }
func green() *color.Color  { return color.New(color.FgGreen) }

// Format renders the report for 'd'
func Format(d linediff.Divergence, opts Options) string {
	header := strings.TrimSuffix(linediff.Header(d.Line), "\n")
	return status.Paint(bold(), header, opts.Color) + "\n" + FormatLine(d.A, d.B, d.Column, opts)
}

// FormatLine renders a, b, and a marker line pointing at column. See linediff.FormatLine.
// Returns an empty string if linediff.FormatLine does.
func FormatLine(a, b string, column int, opts Options) string {
	if linediff.FormatLine(a, b, column) == "" {
		return ""
	}
	markerColumn := column
	if opts.DisplayWidth && column > 0 {
		markerColumn = runewidth.StringWidth(string([]rune(a)[:column]))
	}

	var sb strings.Builder
	sb.WriteString(status.Paint(red(), a, opts.Color))
	sb.WriteRune('\n')
	sb.WriteString(status.Paint(yellow(), linediff.Marker(markerColumn), opts.Color))
	sb.WriteRune('\n')
	sb.WriteString(status.Paint(green(), b, opts.Color))
	sb.WriteRune('\n')
	return sb.String()
}

// Identical renders the report for identical inputs
func Identical(opts Options) string {
	message := strings.TrimSuffix(linediff.NoDifferences, "\n")
	return status.Identical.Colorize(message, opts.Color) + "\n"
}
