// Package fileutil provides file and path utility functions.
package fileutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// MarkdownExtension is the only source format the publisher picks up.
const MarkdownExtension = ".md"

// Entry is one file discovered under a content root.
type Entry struct {
	AbsolutePath string
	RelativePath string
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsHidden reports whether the path's base name starts with a dot.
func IsHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}

// IsMarkdown reports whether the path has the Markdown extension.
func IsMarkdown(path string) bool {
	return strings.HasSuffix(path, MarkdownExtension)
}

// ListMarkdownFiles walks root and returns the Markdown files beneath it,
// skipping hidden files and hidden directories. RelativePath is relative to
// root. When root is itself a regular file it is returned as the only entry,
// with its base name as the relative path.
func ListMarkdownFiles(root string) ([]Entry, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}

	if info.Mode().IsRegular() {
		if !IsMarkdown(abs) {
			return nil, nil
		}
		return []Entry{{AbsolutePath: abs, RelativePath: filepath.Base(abs)}}, nil
	}

	var entries []Entry
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if IsHidden(path) && path != abs {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !IsMarkdown(path) {
			return nil
		}
		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return err
		}
		entries = append(entries, Entry{AbsolutePath: path, RelativePath: rel})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
