// Package fsutil provides file system helpers for pattern-based discovery.
package fsutil

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

// Glob recursively searches root for files whose path relative to root
// matches the given slash-separated glob pattern. '*', '?' and '[...]'
// match within a single path segment; '**' matches any number of
// segments, including none. Results are full paths in lexical order.
func Glob(root, pattern string) ([]string, error) {
	segments, err := splitPattern(pattern)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		if matchSegments(segments, strings.Split(filepath.ToSlash(rel), "/")) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Match reports whether the slash-separated relative path name matches
// pattern, with the same wildcard semantics as Glob.
func Match(pattern, name string) (bool, error) {
	segments, err := splitPattern(pattern)
	if err != nil {
		return false, err
	}
	return matchSegments(segments, strings.Split(name, "/")), nil
}

// splitPattern normalizes a pattern into slash-separated segments and
// rejects malformed ones up front, so segment matching never errors.
func splitPattern(pattern string) ([]string, error) {
	if pattern == "" {
		return nil, fmt.Errorf("pattern must not be empty")
	}
	segments := strings.Split(path.Clean(filepath.ToSlash(pattern)), "/")
	for _, seg := range segments {
		if seg == "**" {
			continue
		}
		if _, err := path.Match(seg, ""); err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
	}
	return segments, nil
}

func matchSegments(pattern, name []string) bool {
	if len(pattern) == 0 {
		return len(name) == 0
	}
	if pattern[0] == "**" {
		if matchSegments(pattern[1:], name) {
			return true
		}
		if len(name) == 0 {
			return false
		}
		return matchSegments(pattern, name[1:])
	}
	if len(name) == 0 {
		return false
	}
	// Patterns are validated by splitPattern, so Match cannot error here.
	if ok, _ := path.Match(pattern[0], name[0]); !ok {
		return false
	}
	return matchSegments(pattern[1:], name[1:])
}
