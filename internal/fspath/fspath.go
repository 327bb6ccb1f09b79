// Package fspath converts OS paths from the command line into hackpadfs FS paths
package fspath

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/hack-pad/hackpadfs"
	"github.com/pkg/errors"
)

// OSPathFS is an FS with a mapping from OS paths, like hackpadfs's os.FS
type OSPathFS interface {
	hackpadfs.FS
	FromOSPath(path string) (string, error)
}

// FromOS converts the OS path 'p' into an FS path for 'fs'.
// Relative paths are relative to the working directory.
// If fs has no OS path mapping, 'p' is treated as a slash-separated path relative to the FS root.
func FromOS(fs hackpadfs.FS, p string) (string, error) {
	osFS, ok := fs.(OSPathFS)
	if !ok {
		return ToFSPath(p), nil
	}
	absPath, err := filepath.Abs(p)
	if err != nil {
		return "", errors.WithStack(err)
	}
	fsPath, err := osFS.FromOSPath(absPath)
	return fsPath, errors.Wrapf(err, "convert path %q", p)
}

// ToFSPath cleans 'p' into a slash-separated path without a leading slash
func ToFSPath(p string) string {
	// TODO fix for windows volume names
	return strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(p)), "/")
}
