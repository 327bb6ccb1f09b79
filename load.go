package linediff

import (
	"bufio"
	"bytes"
	"io"
	"math"

	"github.com/hack-pad/hackpadfs"
	"github.com/pkg/errors"
)

const initialLineBufferSize = 64 * 1024

// LoadLines reads all lines from r. Lines end with "\n", "\r\n", or a lone "\r", and are returned without them.
// A final line terminator does not start an empty line.
func LoadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialLineBufferSize), math.MaxInt)
	scanner.Split(scanLines)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, errors.WithStack(scanner.Err())
}

// scanLines is a bufio.SplitFunc like bufio.ScanLines which also splits on a lone carriage return
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	i := bytes.IndexAny(data, lineBreaks)
	switch {
	case i < 0 && atEOF:
		return len(data), data, nil
	case i < 0:
		return 0, nil, nil // request more data
	case data[i] == '\n':
		return i + 1, data[:i], nil
	case i+1 < len(data) && data[i+1] == '\n':
		return i + 2, data[:i], nil
	case i+1 < len(data) || atEOF:
		return i + 1, data[:i], nil
	default:
		return 0, nil, nil // carriage return may be followed by a newline
	}
}

// LoadFile reads all lines from the file 'name' in fs. See LoadLines.
func LoadFile(fs hackpadfs.FS, name string) ([]string, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	lines, err := LoadLines(f)
	return lines, errors.Wrap(err, name)
}
