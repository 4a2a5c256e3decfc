package md2confluence

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown     = errors.New("markdown content cannot be empty")
	ErrStorageConversion = errors.New("storage format conversion failed")
	ErrFrontMatterParse  = errors.New("front matter parsing failed")

	// Document discovery and read errors.
	ErrMissingDocument = errors.New("input path not found")
	ErrReadDocument    = errors.New("failed to read document")

	// Sync errors.
	ErrNotShared      = errors.New("document not marked for sharing")
	ErrMissingSpace   = errors.New("confluence space is required")
	ErrAncestorLookup = errors.New("failed to resolve ancestor page")
	ErrPageSync       = errors.New("failed to sync page")
)
