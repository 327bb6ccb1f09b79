package summary

import (
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/johnstarich/go/linediff/internal/status"
)

// Format represents a summary report's format
type Format int

// Supported formats
const (
	FormatTerminal Format = iota
	FormatColorTerminal
	FormatMarkdown
)

// Colorize returns 's' and optionally wraps with color 'c' according to the format's rules
func (f Format) Colorize(c *color.Color, s string) string {
	return status.Paint(c, s, f == FormatColorTerminal)
}

// ColorizeStatus returns 's' and optionally wraps with the status's color according to the format's rules
func (f Format) ColorizeStatus(s status.Status, str string) string {
	return s.Colorize(str, f == FormatColorTerminal)
}

// FormatTable returns a formatted table according to the format's rules
func (f Format) FormatTable(tbl table.Writer) string {
	if f == FormatMarkdown {
		return tbl.RenderMarkdown()
	}
	tbl.SetStyle(table.StyleLight)
	return tbl.Render()
}

// StatusIcon returns a status icon according to the format's rules.
// Markdown returns an emoji, terminals return empty string.
func (f Format) StatusIcon(s status.Status) string {
	if f == FormatMarkdown {
		return s.Emoji()
	}
	return ""
}
