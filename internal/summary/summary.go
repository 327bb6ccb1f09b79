// Package summary generates summary reports of file comparisons in various formats.
package summary

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/johnstarich/go/linediff"
	"github.com/johnstarich/go/linediff/internal/status"
)

func boldColor() *color.Color { return color.New(color.Bold) }

// New generates a new summary report in the given format
func New(files linediff.Files, format Format) string {
	tbl := table.NewWriter()
	const linesColumnNumber = 4
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: linesColumnNumber, Align: text.AlignRight},
	})
	tbl.SuppressEmptyColumns()
	bold := boldColor()
	tbl.AppendHeader(table.Row{
		"",
		format.Colorize(bold, "Status"),
		format.Colorize(bold, "File"),
		format.Colorize(bold, "Lines"),
		format.Colorize(bold, "First difference"),
	})

	s := status.New(files.Differs)
	firstDifference := FirstDifference(files)
	for _, f := range []struct {
		path  string
		lines []string
	}{
		{files.PathA, files.A},
		{files.PathB, files.B},
	} {
		tbl.AppendRow(table.Row{
			format.StatusIcon(s),
			format.ColorizeStatus(s, s.Label()),
			f.path,
			len(f.lines),
			firstDifference,
		})
	}

	var sb strings.Builder
	sb.WriteString(format.FormatTable(tbl))
	sb.WriteRune('\n')
	return sb.String()
}

// FirstDifference describes where files first differ, or "-" if they are identical
func FirstDifference(files linediff.Files) string {
	if !files.Differs {
		return "-"
	}
	d := files.Divergence
	return fmt.Sprintf("line %d, column %d", d.Line, d.Column)
}
