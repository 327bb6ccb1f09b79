// Command linediff reports the first difference between two files or lines of text.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	osfs "github.com/hack-pad/hackpadfs/os"
	"github.com/pkg/errors"
)

//nolint:gochecknoglobals // These globals are required to handle pre-existing globals in other libraries. Access to them is tightly controlled and minimized.
var (
	osExiter           = os.Exit
	osErr    io.Writer = os.Stderr
)

func main() {
	app := App{
		errWriter:  osErr,
		fs:         osfs.NewFS(),
		getEnv:     os.Getenv,
		isTerminal: !color.NoColor,
		outWriter:  os.Stdout,
		stdin:      os.Stdin,
	}
	err := app.Run(os.Args)
	switch {
	case errors.Is(err, errDiffer):
		osExiter(1)
	case err != nil:
		fmt.Fprintln(osErr, err)
		osExiter(1)
	}
}
