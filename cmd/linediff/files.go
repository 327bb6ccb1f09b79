package main

import (
	"fmt"

	"github.com/johnstarich/go/linediff"
	"github.com/johnstarich/go/linediff/internal/highlight"
	"github.com/johnstarich/go/linediff/internal/summary"
	"github.com/urfave/cli/v2"
)

func (a App) files(c *cli.Context) error {
	logger := a.logger(c)
	defer func() { _ = logger.Sync() }()

	pathA, err := a.fsPath(c.String("a"))
	if err != nil {
		return err
	}
	pathB, err := a.fsPath(c.String("b"))
	if err != nil {
		return err
	}
	files, err := linediff.ReportFiles(linediff.Options{
		FS:     a.fs,
		Stdin:  a.stdin,
		PathA:  pathA,
		PathB:  pathB,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	opts := a.highlightOptions(c)
	if files.Differs {
		fmt.Fprint(a.outWriter, highlight.Format(files.Divergence, opts))
	} else {
		fmt.Fprint(a.outWriter, highlight.Identical(opts))
	}

	if c.Bool("summary") || c.Bool("markdown") {
		format := summary.FormatTerminal
		switch {
		case c.Bool("markdown"):
			format = summary.FormatMarkdown
		case opts.Color:
			format = summary.FormatColorTerminal
		}
		fmt.Fprintln(a.outWriter)
		fmt.Fprint(a.outWriter, summary.New(files, format))
	}
	return exitCode(c, files.Differs)
}
