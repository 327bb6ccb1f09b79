package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFiles(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		description string
		args        []string
		env         map[string]string
		files       map[string]string
		stdin       string
		expectOut   string
		expectErr   string
		expectDiff  bool
	}{
		{
			description: "identical",
			args:        []string{"files", "-a", "a.txt", "-b", "b.txt"},
			files: map[string]string{
				"a.txt": "one\ntwo\n",
				"b.txt": "one\ntwo\n",
			},
			expectOut: "No differences\n",
		},
		{
			description: "identical with exit code",
			args:        []string{"files", "-exit-code", "-a", "a.txt", "-b", "b.txt"},
			files: map[string]string{
				"a.txt": "one\n",
				"b.txt": "one\r\n",
			},
			expectOut: "No differences\n",
		},
		{
			description: "different",
			args:        []string{"files", "-a", "a.txt", "-b", "dir/b.txt"},
			files: map[string]string{
				"a.txt":     "abc\n",
				"dir/b.txt": "abd\n",
			},
			expectOut: "Line 0:\nabc\n==^\nabd\n",
		},
		{
			description: "different with exit code",
			args:        []string{"files", "-a", "a.txt", "-b", "b.txt", "-exit-code"},
			files: map[string]string{
				"a.txt": "same\nabc\n",
				"b.txt": "same\n",
			},
			expectOut:  "Line 1:\nabc\n^\n\n",
			expectDiff: true,
		},
		{
			description: "stdin",
			args:        []string{"files", "-a", "-", "-b", "b.txt"},
			files: map[string]string{
				"b.txt": "hello world\n",
			},
			stdin:     "hello there\n",
			expectOut: "Line 0:\nhello there\n======^\nhello world\n",
		},
		{
			description: "color in CI",
			args:        []string{"files", "-a", "a.txt", "-b", "b.txt"},
			env:         map[string]string{"CI": "true"},
			files: map[string]string{
				"a.txt": "a\n",
				"b.txt": "a\n",
			},
			expectOut: "\x1b[32mNo differences\x1b[0m\n",
		},
		{
			description: "color disabled in CI",
			args:        []string{"-color=false", "files", "-a", "a.txt", "-b", "b.txt"},
			env:         map[string]string{"CI": "true"},
			files: map[string]string{
				"a.txt": "a\n",
				"b.txt": "a\n",
			},
			expectOut: "No differences\n",
		},
		{
			description: "color flag",
			args:        []string{"-color", "files", "-a", "a.txt", "-b", "b.txt"},
			files: map[string]string{
				"a.txt": "ab\n",
				"b.txt": "ac\n",
			},
			expectOut: "\x1b[1mLine 0:\x1b[0m\n\x1b[31mab\x1b[0m\n\x1b[33m=^\x1b[0m\n\x1b[32mac\x1b[0m\n",
		},
		{
			description: "display width",
			args:        []string{"files", "-width", "-a", "a.txt", "-b", "b.txt"},
			files: map[string]string{
				"a.txt": "日本語\n",
				"b.txt": "日本人\n",
			},
			expectOut: "Line 0:\n日本語\n====^\n日本人\n",
		},
		{
			description: "missing file",
			args:        []string{"files", "-a", "a.txt", "-b", "b.txt"},
			files: map[string]string{
				"a.txt": "a\n",
			},
			expectErr: "linediff: open b.txt: file does not exist",
		},
		{
			description: "both stdin",
			args:        []string{"files", "-a", "-", "-b", "-"},
			expectErr:   "linediff: only one file may be read from stdin",
		},
		{
			description: "missing flag",
			args:        []string{"files", "-a", "a.txt"},
			expectErr:   "not set",
		},
		{
			description: "extra args",
			args:        []string{"files", "-a", "a.txt", "-b", "b.txt", "c.txt"},
			expectErr:   "unexpected arguments used without flags: c.txt",
		},
	} {
		tc := tc // enable parallel sub-tests
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()
			app := newTestApp(t, testAppOptions{
				env:   tc.env,
				files: tc.files,
				stdin: tc.stdin,
			})
			err := app.Run(append([]string{appName}, tc.args...))
			switch {
			case tc.expectErr != "":
				assert.ErrorContains(t, err, tc.expectErr)
				return
			case tc.expectDiff:
				assert.ErrorIs(t, err, errDiffer)
			default:
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.expectOut, app.Stdout())
		})
	}
}

func TestFilesSummary(t *testing.T) {
	t.Parallel()
	files := map[string]string{
		"a.txt": "abc\n",
		"b.txt": "abd\nextra\n",
	}

	t.Run("terminal", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t, testAppOptions{files: files})
		err := app.Run([]string{appName, "files", "-summary", "-a", "a.txt", "-b", "b.txt"})
		assert.NoError(t, err)
		out := app.Stdout()
		assert.True(t, strings.HasPrefix(out, "Line 0:\nabc\n==^\nabd\n\n"), out)
		assert.Contains(t, out, "┌")
		assert.Contains(t, out, "line 0, column 2")
		assert.NotContains(t, out, "\x1b[")
	})

	t.Run("markdown", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(t, testAppOptions{files: files})
		err := app.Run([]string{appName, "files", "-markdown", "-a", "a.txt", "-b", "b.txt"})
		assert.NoError(t, err)
		out := app.Stdout()
		assert.Contains(t, out, "🔴")
		assert.Contains(t, out, "line 0, column 2")
		assert.NotContains(t, out, "┌")
	})
}

func TestFilesVerbose(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, testAppOptions{files: map[string]string{
		"a.txt": "abc\n",
		"b.txt": "abd\n",
	}})
	err := app.Run([]string{appName, "-verbose", "files", "-a", "a.txt", "-b", "b.txt"})
	assert.NoError(t, err)
	assert.Equal(t, "Line 0:\nabc\n==^\nabd\n", app.Stdout())
	assert.Contains(t, app.Stderr(), "Loaded files")
	assert.Contains(t, app.Stderr(), "Found first difference")
}
