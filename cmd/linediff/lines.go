package main

import (
	"fmt"
	"strings"

	"github.com/johnstarich/go/linediff"
	"github.com/johnstarich/go/linediff/internal/highlight"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func (a App) lines(c *cli.Context) error {
	logger := a.logger(c)
	defer func() { _ = logger.Sync() }()

	lineA, lineB := c.String("a"), c.String("b")
	if strings.ContainsAny(lineA, "\r\n") || strings.ContainsAny(lineB, "\r\n") {
		return errors.Wrap(linediff.ErrLineBreak, "use the 'files' command to compare multiple lines")
	}

	opts := a.highlightOptions(c)
	column, differs := linediff.CompareLine(lineA, lineB)
	if !differs {
		logger.Debug("No differences found")
		fmt.Fprint(a.outWriter, highlight.Identical(opts))
		return nil
	}
	logger.Debug("Found first difference", zap.Int("column", column))
	fmt.Fprint(a.outWriter, highlight.FormatLine(lineA, lineB, column, opts))
	return exitCode(c, differs)
}
