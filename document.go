package md2confluence

import (
	"path/filepath"
	"regexp"
	"strings"
)

// State tracks where a document is in the sync lifecycle.
type State string

// Document sync states.
const (
	StateToBeSynced State = "to_be_synced"
	StateCreated    State = "created"
	StateSkipped    State = "skipped"
	StateSynced     State = "synced"
)

// idLabelInvalidChars matches characters Confluence rejects in label names.
var idLabelInvalidChars = regexp.MustCompile(`[ !#&()*,.:;<>?@\[\]^]`)

// Document describes one source file (or directory placeholder) and its
// wiki-side identity. The renderer reads it only to resolve relative image
// paths; the syncer mutates the wiki-side fields as pages are created.
type Document struct {
	AbsolutePath string // filesystem location
	RelativePath string // path relative to the content root, mirrored as the wiki hierarchy

	Space       string // Confluence space key
	PageID      string // Confluence content ID, set once the page exists
	AncestorID  string // parent page ID
	PageVersion int    // current page version, needed for updates

	State       State
	IsDirectory bool
}

// Name returns the base name of the document.
func (d *Document) Name() string {
	return filepath.Base(d.AbsolutePath)
}

// Dir returns the directory containing the document. Relative image
// references resolve against it.
func (d *Document) Dir() string {
	return filepath.Dir(d.AbsolutePath)
}

// Parent returns the relative path of the document's parent, or "" when the
// document sits at the content root.
func (d *Document) Parent() string {
	parent := filepath.Dir(d.RelativePath)
	if parent == "." || parent == string(filepath.Separator) {
		return ""
	}
	return parent
}

// IsMarkdown reports whether the document looks like a Markdown source file.
func (d *Document) IsMarkdown() bool {
	return strings.HasSuffix(d.Name(), ".md")
}

// IDLabel derives the Confluence label used to find this document's page
// again on later runs. Characters Confluence does not accept in labels are
// replaced with underscores.
func (d *Document) IDLabel() string {
	return idLabelInvalidChars.ReplaceAllString("aid_"+d.RelativePath, "_")
}

func (d *Document) String() string {
	return d.RelativePath
}
