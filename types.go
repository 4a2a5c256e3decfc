package md2confluence

// RenderConfig governs a single render invocation. Construct one per render
// call; the renderer never mutates it.
type RenderConfig struct {
	// Authors holds Confluence user keys rendered in the author block,
	// in order. Empty means no author block.
	Authors []string

	// Warning controls the "auto-generated" banner. When true and
	// WarningText is empty, a fixed default notice is used.
	Warning bool

	// WarningText overrides the default banner copy. Ignored when
	// Warning is false. The text is escaped before inclusion in the page.
	WarningText string

	// RenderTOC enables the table of contents macro. The macro is only
	// emitted when the document contains at least one heading.
	RenderTOC bool

	// TwoColumn renders the TOC and author block in a left sidebar with
	// the body in the main column. Falls back to single-column when both
	// sidebar sections would be empty.
	TwoColumn bool
}

// DefaultRenderConfig returns the render options used when Input.Config is nil:
// no authors, default warning banner, TOC enabled, single column.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Warning:   true,
		RenderTOC: true,
	}
}

// Input contains conversion parameters.
type Input struct {
	Markdown string        // Markdown content (required)
	Document *Document     // Source document, used to resolve relative image paths (optional)
	Config   *RenderConfig // Render options (optional, nil = defaults)
}

// Result holds the output of one conversion.
type Result struct {
	// Page is the complete Confluence storage-format markup.
	Page string

	// Attachments lists the absolute paths of locally referenced images,
	// in document order, one entry per reference. The caller uploads them
	// alongside the page; Confluence associates them by base filename.
	Attachments []string
}
