package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Starscribers/any-registries/internal/fsutil"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"*.hcl", "a.hcl", true},
		{"*.hcl", "a.yaml", false},
		{"*.hcl", "sub/a.hcl", false},
		{"**/*.hcl", "a.hcl", true},
		{"**/*.hcl", "sub/a.hcl", true},
		{"**/*.hcl", "sub/deep/a.hcl", true},
		{"cmds/*.hcl", "cmds/a.hcl", true},
		{"cmds/*.hcl", "other/a.hcl", false},
		{"cmds/**/*.hcl", "cmds/a.hcl", true},
		{"cmds/**/*.hcl", "cmds/sub/a.hcl", true},
		{"cmds/**/*.hcl", "other/a.hcl", false},
		{"**", "anything/at/all", true},
		{"a?c/*.reg", "abc/x.reg", true},
		{"a?c/*.reg", "abbc/x.reg", false},
		{"[mn]od/*.reg", "mod/x.reg", true},
		{"[mn]od/*.reg", "pod/x.reg", false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.pattern+" vs "+tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := fsutil.Match(tc.pattern, tc.name)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestMatchBadPattern(t *testing.T) {
	t.Parallel()
	_, err := fsutil.Match("[broken", "whatever")
	require.Error(t, err)

	_, err = fsutil.Match("", "whatever")
	require.Error(t, err)
}

func TestGlob(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	for _, name := range []string{
		"cmds/a.hcl",
		"cmds/sub/b.hcl",
		"cmds/sub/notes.txt",
		"top.hcl",
	} {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, nil, 0644))
	}

	files, err := fsutil.Glob(root, "cmds/**/*.hcl")
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(root, "cmds", "a.hcl"),
		filepath.Join(root, "cmds", "sub", "b.hcl"),
	}, files)

	files, err = fsutil.Glob(root, "**/*.hcl")
	require.NoError(t, err)
	require.Len(t, files, 3)

	files, err = fsutil.Glob(root, "*.hcl")
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(root, "top.hcl")}, files)

	files, err = fsutil.Glob(root, "*.nope")
	require.NoError(t, err)
	require.Empty(t, files)
}

func TestGlobMissingRoot(t *testing.T) {
	t.Parallel()
	_, err := fsutil.Glob(filepath.Join(t.TempDir(), "does-not-exist"), "*.hcl")
	require.Error(t, err)
}
