package md2confluence

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/alnah/go-md2confluence/internal/fileutil"
)

// DiscoverDocuments builds the document set for the given files and
// directory trees. Directories are walked recursively; hidden files and
// directories are ignored, and only Markdown files are kept. Relative paths
// are taken from the listed root, so the wiki hierarchy mirrors each tree.
func DiscoverDocuments(paths []string) ([]*Document, error) {
	var docs []*Document
	for _, path := range paths {
		entries, err := fileutil.ListMarkdownFiles(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrMissingDocument, path)
			}
			return nil, err
		}
		for _, entry := range entries {
			docs = append(docs, &Document{
				AbsolutePath: entry.AbsolutePath,
				RelativePath: entry.RelativePath,
				State:        StateToBeSynced,
			})
		}
	}
	return docs, nil
}
