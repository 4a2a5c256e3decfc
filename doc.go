// Package md2confluence converts Markdown documents to Confluence
// storage-format pages and syncs them to a wiki space.
//
// # Quick Start
//
// Create a service and convert a document:
//
//	svc := md2confluence.New()
//	result, err := svc.Convert(ctx, md2confluence.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Page)
//
// The result contains the storage-format page markup (result.Page) and the
// local image paths to upload as attachments (result.Attachments).
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (line-ending normalization, blank-line compression)
//  2. Markdown to storage format via Goldmark (GFM), with Confluence-specific
//     rendering for code blocks and images
//  3. Layout composition (warning banner, table of contents, author block,
//     optional two-column layout)
//
// # Rendering Rules
//
// Code blocks become code macros carrying the payload verbatim in a CDATA
// body. Images hosted externally (any source with a URL authority) pass
// through as URL references; local images are resolved against the document
// directory, referenced by filename, and collected for upload. The table of
// contents is emitted only when the document has at least one heading.
//
// # Publishing
//
// Use Syncer to publish whole document trees. Each document's front matter
// controls its title, authors, tags, and whether it is shared at all:
//
//	client, err := confluence.New(confluence.Config{BaseURL: apiURL})
//	syncer, err := md2confluence.NewSyncer(client, "ENG",
//	    md2confluence.WithGlobalLabel("imported"),
//	)
//	docs, err := md2confluence.DiscoverDocuments([]string{"./content"})
//	results := syncer.Sync(ctx, docs)
//
// Pages are identified across runs by a label derived from the document's
// relative path, so renames create new pages while edits update in place.
package md2confluence
