package main

import (
	"errors"
	"os"

	md2confluence "github.com/alnah/go-md2confluence"
	"github.com/alnah/go-md2confluence/confluence"
)

// CLI-level errors.
var (
	errMissingAPIURL = errors.New("please provide a Confluence API URL (--api-url or CONFLUENCE_API_URL)")
	errMissingSpace  = errors.New("please provide a Confluence space (--space or CONFLUENCE_SPACE)")
	errNoInput       = errors.New("no input files or directories given")
	errSyncFailed    = errors.New("one or more documents failed to sync")
)

// Exit codes for md2confluence CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All documents synced or skipped on purpose
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags or configuration
	ExitIO      = 3 // File not found, permission denied
	ExitSync    = 4 // Confluence-side failures
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Confluence-side failures (exit 4)
	if errors.Is(err, errSyncFailed) ||
		errors.Is(err, confluence.ErrUnexpectedStatus) ||
		errors.Is(err, md2confluence.ErrPageSync) ||
		errors.Is(err, md2confluence.ErrAncestorLookup) {
		return ExitSync
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, md2confluence.ErrMissingDocument) ||
		errors.Is(err, md2confluence.ErrReadDocument) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, errMissingAPIURL) ||
		errors.Is(err, errMissingSpace) ||
		errors.Is(err, errNoInput) ||
		errors.Is(err, confluence.ErrMissingBaseURL) ||
		errors.Is(err, confluence.ErrMalformedHeader) ||
		errors.Is(err, md2confluence.ErrMissingSpace) {
		return ExitUsage
	}

	return ExitGeneral
}
