package md2confluence

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	ghtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// renderState records what a single pass over one document observed. A fresh
// value is created for every conversion; instances are never shared across
// documents, so no reset step exists.
type renderState struct {
	// sawHeading gates TOC emission during layout composition.
	sawHeading bool

	// attachments lists resolved local image paths in document order.
	// Duplicate references append independently.
	attachments []string
}

// storageConverter abstracts Markdown to Confluence storage-format conversion.
type storageConverter interface {
	ToStorage(ctx context.Context, content, sourceDir string) (string, *renderState, error)
}

// goldmarkConverter converts Markdown to storage format using goldmark (pure Go).
//
// The goldmark instance is built per call because the custom node renderer
// carries pass-scoped state; sharing an instance across documents would leak
// one document's attachments into the next.
type goldmarkConverter struct{}

func newGoldmarkConverter() *goldmarkConverter {
	return &goldmarkConverter{}
}

// ToStorage converts Markdown content to a Confluence storage-format body
// fragment, returning the render state observed during the pass. Supports
// context cancellation via goroutine + select pattern since goldmark doesn't
// natively support context.
func (c *goldmarkConverter) ToStorage(ctx context.Context, content, sourceDir string) (string, *renderState, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	state := &renderState{}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
		),
		goldmark.WithRendererOptions(
			ghtml.WithXHTML(), // Storage format is XHTML-based
			renderer.WithNodeRenderers(
				util.Prioritized(&storageNodeRenderer{state: state, sourceDir: sourceDir}, 100),
			),
		),
	)

	type result struct {
		body string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrStorageConversion, err)}
			return
		}
		done <- result{body: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", nil, ctx.Err()
	case r := <-done:
		return r.body, state, r.err
	}
}

// storageNodeRenderer overrides the goldmark constructs whose storage-format
// rendering differs from plain XHTML: code blocks become code macros and
// images become url/attachment references. Headings keep their default shape
// but are counted so layout composition knows whether a TOC makes sense.
// Every other construct falls through to goldmark's default renderer.
type storageNodeRenderer struct {
	state     *renderState
	sourceDir string
}

// RegisterFuncs registers the storage-format overrides at a higher priority
// than goldmark's built-in HTML functions.
func (r *storageNodeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHeading, r.renderHeading)
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
	reg.Register(ast.KindCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindImage, r.renderImage)
}

// renderHeading emits the default heading markup. The override exists for its
// side effect: remembering that the document has at least one heading.
func (r *storageNodeRenderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	if entering {
		r.state.sawHeading = true
		_, _ = fmt.Fprintf(w, "<h%d>", n.Level)
	} else {
		_, _ = fmt.Fprintf(w, "</h%d>", n.Level)
	}
	return ast.WalkContinue, nil
}

func (r *storageNodeRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)
	language := ""
	if l := n.Language(source); l != nil {
		language = string(l)
	}
	writeCodeMacro(w, language, blockLines(n, source))
	return ast.WalkSkipChildren, nil
}

// renderCodeBlock handles indented code blocks, which carry no language tag.
func (r *storageNodeRenderer) renderCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	writeCodeMacro(w, "", blockLines(node, source))
	return ast.WalkSkipChildren, nil
}

// renderImage delegates to the attachment resolver and records local paths
// for upload. Title and alt text are accepted but not emitted; Confluence
// image references carry neither.
func (r *storageNodeRenderer) renderImage(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Image)
	fragment, localPath := resolveImage(string(n.Destination), r.sourceDir)
	if localPath != "" {
		r.state.attachments = append(r.state.attachments, localPath)
	}
	_, _ = w.WriteString(fragment)
	return ast.WalkSkipChildren, nil
}

// blockLines collects the raw source lines of a code block, byte-for-byte.
func blockLines(node ast.Node, source []byte) []byte {
	var buf bytes.Buffer
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}
	return buf.Bytes()
}

// writeCodeMacro emits the Confluence code macro. The payload travels inside
// a CDATA section so markup-significant bytes survive verbatim; a literal
// "]]>" in the payload is split across two CDATA sections to keep the
// fragment well-formed without altering the recovered bytes.
func writeCodeMacro(w util.BufWriter, language string, code []byte) {
	_, _ = w.WriteString(`<ac:structured-macro ac:name="code" ac:schema-version="1">`)
	_, _ = w.WriteString(`<ac:parameter ac:name="language">`)
	_, _ = w.WriteString(html.EscapeString(language))
	_, _ = w.WriteString(`</ac:parameter>`)
	_, _ = w.WriteString(`<ac:plain-text-body><![CDATA[`)
	_, _ = w.WriteString(strings.ReplaceAll(string(code), "]]>", "]]]]><![CDATA[>"))
	_, _ = w.WriteString(`]]></ac:plain-text-body>`)
	_, _ = w.WriteString("</ac:structured-macro>\n")
}
