package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/hack-pad/hackpadfs"
	"github.com/johnstarich/go/linediff"
	"github.com/johnstarich/go/linediff/internal/fspath"
	"github.com/johnstarich/go/linediff/internal/highlight"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const appName = "linediff"

// errDiffer is returned when inputs differ and -exit-code is set. Exits 1 without printing.
var errDiffer = errors.New("inputs differ")

// App runs linediff commands. Swapped out in tests.
type App struct {
	errWriter  io.Writer
	fs         hackpadfs.FS
	getEnv     func(string) string
	isTerminal bool
	outWriter  io.Writer
	stdin      io.Reader
}

func (a App) Run(args []string) error {
	exitCodeFlag := &cli.BoolFlag{
		Name:  "exit-code",
		Usage: "Exit with status 1 if the inputs differ.",
	}
	cliApp := &cli.App{
		Name:  appName,
		Usage: "Find the first difference between two files or lines.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "color",
				Usage:   "Colorize output. Defaults to on in CI and terminals.",
				EnvVars: []string{"LINEDIFF_COLOR"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Log debug information to stderr.",
				EnvVars: []string{"LINEDIFF_VERBOSE"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "files",
				Usage:  "Compare two files. Use '-' to read one of them from stdin.",
				Action: a.files,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "a",
						Usage:    "Path to the first file.",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "b",
						Usage:    "Path to the second file.",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "summary",
						Usage: "Print a summary table after the report.",
					},
					&cli.BoolFlag{
						Name:  "markdown",
						Usage: "Print the summary table as Markdown. Implies -summary.",
					},
					&cli.BoolFlag{
						Name:  "width",
						Usage: "Align the marker by terminal display width, for wide characters.",
					},
					exitCodeFlag,
				},
			},
			{
				Name:   "lines",
				Usage:  "Compare two single lines of text.",
				Action: a.lines,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "a",
						Usage:    "The first line.",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "b",
						Usage:    "The second line.",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "width",
						Usage: "Align the marker by terminal display width, for wide characters.",
					},
					exitCodeFlag,
				},
			},
		},
		HideHelpCommand: true,
		ErrWriter:       a.errWriter,
		ExitErrHandler:  func(*cli.Context, error) {},
		Reader:          a.stdin,
		Writer:          a.outWriter,
	}

	applyCommands(cliApp.Commands, func(cmd *cli.Command) {
		cmd.Before = a.noArgs
	})
	return cliApp.Run(args)
}

func applyCommands(commands cli.Commands, apply func(cmd *cli.Command)) {
	for _, cmd := range commands {
		apply(cmd)
		applyCommands(cmd.Subcommands, apply)
	}
}

func (a App) noArgs(c *cli.Context) error {
	if c.NArg() > 0 {
		return fmt.Errorf("unexpected arguments used without flags: %s", strings.Join(c.Args().Slice(), " "))
	}
	return nil
}

func (a App) highlightOptions(c *cli.Context) highlight.Options {
	return highlight.Options{
		Color:        a.colorEnabled(c),
		DisplayWidth: c.Bool("width"),
	}
}

func (a App) colorEnabled(c *cli.Context) bool {
	if c.IsSet("color") {
		return c.Bool("color")
	}
	return a.getEnv("CI") == "true" || a.isTerminal
}

func (a App) logger(c *cli.Context) *zap.Logger {
	if !c.Bool("verbose") {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(a.errWriter),
		zapcore.DebugLevel,
	)
	return zap.New(core).Named(appName)
}

// fsPath converts a path argument into an FS path, preserving linediff.StdinPath
func (a App) fsPath(p string) (string, error) {
	if p == linediff.StdinPath {
		return p, nil
	}
	return fspath.FromOS(a.fs, p)
}

func exitCode(c *cli.Context, differs bool) error {
	if differs && c.Bool("exit-code") {
		return errDiffer
	}
	return nil
}
