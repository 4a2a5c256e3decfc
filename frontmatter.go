package md2confluence

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"

	"github.com/alnah/go-md2confluence/internal/yamlutil"
)

// FrontMatter is the metadata block preceding a document's Markdown body.
type FrontMatter struct {
	Title   string     `yaml:"title"`
	Authors []string   `yaml:"authors"`
	Tags    []string   `yaml:"tags"`
	Wiki    WikiConfig `yaml:"wiki"`
}

// WikiConfig holds the wiki-specific front matter section.
type WikiConfig struct {
	// Share marks the document for publishing. Documents without it are
	// skipped by the syncer.
	Share bool `yaml:"share"`

	// AncestorID overrides the parent page derived from the directory
	// hierarchy.
	AncestorID string `yaml:"ancestor_id"`
}

// yamlFormat decodes front matter blocks through yamlutil, keeping a single
// YAML implementation across the module.
var yamlFormat = frontmatter.NewFormat("---", "---", yamlutil.Unmarshal)

// ParseFrontMatter extracts the metadata block and the Markdown body from the
// provided source bytes. Documents without a front matter block pass through
// unchanged with zero-value metadata.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var fm FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &fm, yamlFormat)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("%w: %v", ErrFrontMatterParse, err)
	}
	return fm, body, nil
}
