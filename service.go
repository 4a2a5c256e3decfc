package md2confluence

import (
	"context"
	"fmt"
)

// Compile-time interface implementation checks.
var (
	_ markdownPreprocessor = (*commonMarkPreprocessor)(nil)
	_ storageConverter     = (*goldmarkConverter)(nil)
)

// Service orchestrates the markdown-to-storage-format pipeline. A Service is
// stateless and safe for concurrent use; all pass-scoped state lives in the
// render state created per Convert call.
type Service struct {
	preprocessor markdownPreprocessor
	converter    storageConverter
}

// New creates a Service with the default pipeline.
func New() *Service {
	return &Service{
		preprocessor: &commonMarkPreprocessor{},
		converter:    newGoldmarkConverter(),
	}
}

// Convert runs the full pipeline: preprocess the Markdown, render it into a
// storage-format body, and compose the final page layout around it. The
// returned Result carries the page markup and the local image paths the
// caller must upload as attachments.
func (s *Service) Convert(ctx context.Context, input Input) (*Result, error) {
	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	cfg := DefaultRenderConfig()
	if input.Config != nil {
		cfg = *input.Config
	}

	sourceDir := ""
	if input.Document != nil {
		sourceDir = input.Document.Dir()
	}

	// Preprocess markdown
	content := s.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Convert to storage format
	body, state, err := s.converter.ToStorage(ctx, content, sourceDir)
	if err != nil {
		return nil, fmt.Errorf("converting to storage format: %w", err)
	}

	// Wrap the body in the page layout
	page := composePage(cfg, state, body)

	return &Result{
		Page:        page,
		Attachments: state.attachments,
	}, nil
}
