package md2confluence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-md2confluence/confluence"
)

// Publisher is the wiki-side API surface the syncer needs.
type Publisher interface {
	FindPage(ctx context.Context, idLabel, space, ancestorID string) (*confluence.Page, error)
	CreatePage(ctx context.Context, req confluence.CreatePageRequest) (*confluence.Page, error)
	UpdatePage(ctx context.Context, req confluence.UpdatePageRequest) error
	UploadAttachment(ctx context.Context, pageID, path string) error
	LookupUserKey(ctx context.Context, username string) (string, error)
}

// Compile-time interface implementation check.
var _ Publisher = (*confluence.Client)(nil)

// SyncOption configures a Syncer.
type SyncOption func(*Syncer)

// WithAncestorID sets the page under which root-level documents are placed.
func WithAncestorID(id string) SyncOption {
	return func(s *Syncer) { s.ancestorID = id }
}

// WithGlobalLabel adds a label to every synced page for easier discovery.
func WithGlobalLabel(label string) SyncOption {
	return func(s *Syncer) { s.globalLabel = label }
}

// WithRenderConfig overrides the render defaults applied to every document.
// The author list is still resolved per document from its front matter.
func WithRenderConfig(cfg RenderConfig) SyncOption {
	return func(s *Syncer) { s.renderDefaults = cfg }
}

// WithLogf sets the sink for progress and skip messages.
func WithLogf(logf func(format string, args ...any)) SyncOption {
	return func(s *Syncer) { s.logf = logf }
}

// Syncer publishes a set of documents to Confluence: it ensures a page
// exists for each document (and for the directories above it, mirroring the
// file tree as a page hierarchy), renders the Markdown into storage format,
// updates the page, and uploads the referenced local images.
type Syncer struct {
	publisher      Publisher
	service        *Service
	space          string
	ancestorID     string
	globalLabel    string
	renderDefaults RenderConfig
	logf           func(format string, args ...any)

	// documents is the working set for ancestor lookups; it grows as
	// directory placeholder documents are created.
	documents []*Document
}

// NewSyncer creates a Syncer targeting the given space.
func NewSyncer(publisher Publisher, space string, opts ...SyncOption) (*Syncer, error) {
	if space == "" {
		return nil, ErrMissingSpace
	}
	s := &Syncer{
		publisher:      publisher,
		service:        New(),
		space:          space,
		renderDefaults: DefaultRenderConfig(),
		logf:           func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SyncResult records the outcome for one document. A nil Err means the
// document was synced; ErrNotShared means it was skipped on purpose.
type SyncResult struct {
	Document *Document
	Err      error
}

// Sync processes every document in order. A failing document is skipped and
// reported in its result; it never aborts the rest of the batch.
func (s *Syncer) Sync(ctx context.Context, docs []*Document) []SyncResult {
	s.documents = docs

	results := make([]SyncResult, 0, len(docs))
	for _, doc := range docs {
		s.logf("syncing %s", doc)
		err := s.syncDocument(ctx, doc)
		if err != nil {
			doc.State = StateSkipped
		}
		results = append(results, SyncResult{Document: doc, Err: err})
	}
	return results
}

func (s *Syncer) syncDocument(ctx context.Context, doc *Document) error {
	if doc.IsDirectory || doc.State == StateSkipped || doc.State == StateSynced {
		return nil
	}

	raw, err := os.ReadFile(doc.AbsolutePath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrReadDocument, doc, err)
	}

	fm, body, err := ParseFrontMatter(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", doc, err)
	}

	if !fm.Wiki.Share {
		return fmt.Errorf("%s: %w", doc, ErrNotShared)
	}

	if doc.PageID == "" {
		if err := s.ensureExists(ctx, doc, fm.Wiki.AncestorID); err != nil {
			return err
		}
	}

	cfg := s.renderDefaults
	cfg.Authors = s.resolveAuthorKeys(ctx, fm.Authors)

	result, err := s.service.Convert(ctx, Input{
		Markdown: string(body),
		Document: doc,
		Config:   &cfg,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", doc, err)
	}

	title := fm.Title
	if title == "" {
		title = doc.Name()
	}

	labels := append([]string{doc.IDLabel()}, fm.Tags...)
	if s.globalLabel != "" {
		labels = append(labels, s.globalLabel)
	}

	err = s.publisher.UpdatePage(ctx, confluence.UpdatePageRequest{
		PageID:      doc.PageID,
		Title:       title,
		Space:       s.space,
		AncestorID:  doc.AncestorID,
		PageVersion: doc.PageVersion,
		Content:     result.Page,
		Labels:      labels,
	})
	if err != nil {
		return fmt.Errorf("%s: %w: %v", doc, ErrPageSync, err)
	}

	for _, attachment := range result.Attachments {
		if err := s.publisher.UploadAttachment(ctx, doc.PageID, attachment); err != nil {
			return fmt.Errorf("%s: %w", doc, err)
		}
	}

	doc.PageVersion++
	doc.State = StateSynced
	return nil
}

// ensureExists makes sure the document has a wiki-side page, creating an
// empty one when the identity label finds nothing. explicitAncestor, when
// set by front matter, short-circuits the hierarchy walk.
func (s *Syncer) ensureExists(ctx context.Context, doc *Document, explicitAncestor string) error {
	ancestorID := explicitAncestor
	if ancestorID == "" {
		id, err := s.ancestorFor(ctx, doc)
		if err != nil {
			return fmt.Errorf("%s: %w: %v", doc, ErrAncestorLookup, err)
		}
		ancestorID = id
	}

	page, err := s.publisher.FindPage(ctx, doc.IDLabel(), s.space, ancestorID)
	if err != nil {
		return fmt.Errorf("%s: %w", doc, err)
	}
	if page == nil {
		s.logf("%s: page does not exist, creating", doc)
		page, err = s.publisher.CreatePage(ctx, confluence.CreatePageRequest{
			Title:      doc.Name(),
			Space:      s.space,
			AncestorID: ancestorID,
			IDLabel:    doc.IDLabel(),
		})
		if err != nil {
			return fmt.Errorf("%s: %w", doc, err)
		}
	}

	doc.AncestorID = ancestorID
	doc.PageID = page.ID
	doc.PageVersion = page.Version.Number
	doc.State = StateCreated
	return nil
}

// ancestorFor resolves the page the document should be filed under. Root
// documents use the configured ancestor; nested ones use their parent
// directory's page, creating placeholder documents (and pages) up the tree
// as needed.
func (s *Syncer) ancestorFor(ctx context.Context, doc *Document) (string, error) {
	parentRel := doc.Parent()
	if parentRel == "" {
		return s.ancestorID, nil
	}

	parent := s.findDocument(parentRel)
	if parent == nil {
		parent = &Document{
			AbsolutePath: filepath.Dir(doc.AbsolutePath),
			RelativePath: parentRel,
			IsDirectory:  true,
			State:        StateToBeSynced,
		}
		s.documents = append(s.documents, parent)
	}
	if parent.PageID == "" {
		if err := s.ensureExists(ctx, parent, ""); err != nil {
			return "", err
		}
	}
	return parent.PageID, nil
}

func (s *Syncer) findDocument(relativePath string) *Document {
	for _, doc := range s.documents {
		if doc.RelativePath == relativePath {
			return doc
		}
	}
	return nil
}

// resolveAuthorKeys maps front matter author names to Confluence user keys.
// Unknown authors are skipped rather than failing the document.
func (s *Syncer) resolveAuthorKeys(ctx context.Context, authors []string) []string {
	keys := make([]string, 0, len(authors))
	for _, author := range authors {
		key, err := s.publisher.LookupUserKey(ctx, author)
		if err != nil {
			s.logf("skipping unknown author %q: %v", author, err)
			continue
		}
		keys = append(keys, key)
	}
	return keys
}
