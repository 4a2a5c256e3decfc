package md2confluence

import (
	"fmt"
	"html"
	"strings"
)

// defaultWarningText is the banner copy used when the warning is enabled
// without custom text.
const defaultWarningText = "This page is automatically generated and can be overwritten. Please don't modify it here."

// Storage-format layout fragments. Tag and attribute names are a versioned
// contract with Confluence and must be reproduced byte-for-byte for the
// macros to render.
const (
	warningTemplate = `<ac:structured-macro ac:name="note" ac:schema-version="1"><ac:rich-text-body><p>%s</p></ac:rich-text-body></ac:structured-macro>`

	// The exclude parameter keeps the TOC from listing its own heading and
	// the author block.
	tocFragment = `<h1>Table of Contents</h1><p><ac:structured-macro ac:name="toc" ac:schema-version="1"><ac:parameter ac:name="exclude">^(Authors|Table of Contents)$</ac:parameter></ac:structured-macro></p>`

	// Each author reference shows the profile picture and links to the user.
	authorTemplate = `<ac:structured-macro ac:name="profile-picture" ac:schema-version="1"><ac:parameter ac:name="User"><ri:user ri:userkey="%[1]s" /></ac:parameter></ac:structured-macro>&nbsp;<ac:link><ri:user ri:userkey="%[1]s" /></ac:link>`

	fullWidthTemplate = `<ac:layout-section ac:type="fixed-width" ac:breakout-mode="default"><ac:layout-cell>%s</ac:layout-cell></ac:layout-section>`

	twoColumnTemplate = `<ac:layout-section ac:type="two_left_sidebar" ac:breakout-mode="default"><ac:layout-cell>%s</ac:layout-cell><ac:layout-cell>%s</ac:layout-cell></ac:layout-section>`

	pageTemplate = `<ac:layout>%s</ac:layout>`
)

// composePage assembles the final page markup from the rendered body, the
// render options, and what the pass observed.
//
// Single-column pages concatenate warning, TOC, authors, body in that order.
// Two-column layout is used only when requested AND at least one of the TOC
// or author block is non-empty, so the page never renders an empty sidebar;
// the warning, when present, sits above the columns at full width.
func composePage(cfg RenderConfig, state *renderState, body string) string {
	warning := renderWarning(cfg)
	authors := renderAuthors(cfg.Authors)

	// Skip the TOC unless the pass saw a heading, to avoid a blank one.
	toc := ""
	if cfg.RenderTOC && state.sawHeading {
		toc = tocFragment
	}

	if cfg.TwoColumn && (toc != "" || authors != "") {
		if warning != "" {
			warning = fmt.Sprintf(fullWidthTemplate, warning)
		}
		columns := fmt.Sprintf(twoColumnTemplate, toc+authors, body)
		return fmt.Sprintf(pageTemplate, warning+columns)
	}

	return warning + toc + authors + body
}

// renderWarning emits the note macro carrying the auto-generated banner, or
// "" when disabled. The copy is escaped so banner text cannot inject markup.
func renderWarning(cfg RenderConfig) string {
	if !cfg.Warning {
		return ""
	}
	text := cfg.WarningText
	if text == "" {
		text = defaultWarningText
	}
	return fmt.Sprintf(warningTemplate, html.EscapeString(text))
}

// renderAuthors emits the author attribution block, or "" when no authors
// are configured. Confluence shows pages as published by the service
// account, so the block names the actual authors.
func renderAuthors(userKeys []string) string {
	if len(userKeys) == 0 {
		return ""
	}
	refs := make([]string, len(userKeys))
	for i, key := range userKeys {
		refs[i] = fmt.Sprintf(authorTemplate, html.EscapeString(key))
	}
	return fmt.Sprintf(`<h1>Authors</h1><p>%s</p>`, strings.Join(refs, "<br />"))
}
