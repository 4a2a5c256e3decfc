package md2confluence

import (
	"fmt"
	"html"
	"net/url"
	"path/filepath"
)

// resolveImage classifies an image reference as externally hosted or locally
// stored and produces the storage-format fragment for it.
//
// Externality is decided by URL authority presence rather than scheme
// presence, so protocol-relative sources ("//cdn.example.com/a.png") count as
// external. External sources pass through as a URL reference and record no
// attachment.
//
// Local sources resolve against docDir into a normalized path, returned as
// localPath for the caller to record and upload. The in-page fragment names
// only the base filename, since Confluence associates attachments to a page
// by filename. The file is never read or checked for existence here; a
// missing file surfaces later as an upload failure.
func resolveImage(src, docDir string) (fragment, localPath string) {
	if u, err := url.Parse(src); err == nil && u.Host != "" {
		return fmt.Sprintf(`<ac:image><ri:url ri:value="%s" /></ac:image>`, html.EscapeString(src)), ""
	}

	path := filepath.Clean(src)
	if !filepath.IsAbs(path) {
		path = filepath.Join(docDir, src)
	}

	fragment = fmt.Sprintf(`<ac:image><ri:attachment ri:filename="%s" /></ac:image>`,
		html.EscapeString(filepath.Base(path)))
	return fragment, path
}
