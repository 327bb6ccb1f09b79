package testhelpers

import (
	"path"
	"testing"

	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/require"
)

// FSWithFiles returns an in-memory FS with the given files' contents written inside it.
// Contents are written exactly, so line terminators under test are preserved.
func FSWithFiles(t *testing.T, files map[string]string) hackpadfs.FS {
	t.Helper()
	fs, err := mem.NewFS()
	require.NoError(t, err)
	for name, contents := range files {
		require.NoError(t, hackpadfs.MkdirAll(fs, path.Dir(name), 0o700))
		require.NoError(t, hackpadfs.WriteFullFile(fs, name, []byte(contents), 0o600))
	}
	return fs
}
