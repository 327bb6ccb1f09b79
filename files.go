package linediff

import (
	"io"

	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/os"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// StdinPath is the path which reads from Options.Stdin instead of the FS
const StdinPath = "-"

// Options contains file comparison options
type Options struct {
	// FS is the file system to read files from. Defaults to hackpadfs's os.NewFS().
	FS hackpadfs.FS
	// Stdin is read in place of a path set to StdinPath
	Stdin io.Reader
	// PathA and PathB are the FS paths of the files to compare
	PathA, PathB string
	// Logger defaults to a no-op logger
	Logger *zap.Logger
}

// Files is the result of comparing two files
type Files struct {
	PathA, PathB string
	// A and B are the loaded lines of each file
	A, B []string
	// Divergence is the first difference. Its Position is Identical if Differs is false.
	Divergence Divergence
	Differs    bool
	// Report is the same as Report(A, B)
	Report string
}

// ReportFiles loads both files and reports the first difference between them
func ReportFiles(options Options) (files Files, err error) {
	defer func() { err = errors.Wrap(err, "linediff") }()
	if options.PathA == StdinPath && options.PathB == StdinPath {
		return Files{}, errors.New("only one file may be read from stdin")
	}
	for _, p := range []string{options.PathA, options.PathB} {
		if p != StdinPath && !hackpadfs.ValidPath(p) {
			return Files{}, errors.Errorf("invalid FS path: %q", p)
		}
	}
	if options.FS == nil {
		options.FS = os.NewFS()
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}

	a, err := options.load(options.PathA)
	if err != nil {
		return Files{}, err
	}
	b, err := options.load(options.PathB)
	if err != nil {
		return Files{}, err
	}
	options.Logger.Debug("Loaded files",
		zap.String("a", options.PathA),
		zap.Int("a_lines", len(a)),
		zap.String("b", options.PathB),
		zap.Int("b_lines", len(b)),
	)

	d, differs := Locate(a, b)
	reporter := Reporter{Logger: options.Logger}
	return Files{
		PathA:      options.PathA,
		PathB:      options.PathB,
		A:          a,
		B:          b,
		Divergence: d,
		Differs:    differs,
		Report:     reporter.report(d, differs),
	}, nil
}

func (o Options) load(p string) ([]string, error) {
	if p != StdinPath {
		return LoadFile(o.FS, p)
	}
	if o.Stdin == nil {
		return nil, errors.New("stdin reader must not be nil")
	}
	lines, err := LoadLines(o.Stdin)
	return lines, errors.Wrap(err, "stdin")
}
