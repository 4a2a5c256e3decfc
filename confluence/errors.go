package confluence

import "errors"

// Sentinel errors for client operations.
var (
	ErrMissingBaseURL   = errors.New("confluence: API base URL is required")
	ErrMalformedHeader  = errors.New("confluence: malformed extra header")
	ErrUnexpectedStatus = errors.New("confluence: unexpected response status")
	ErrUserNotFound     = errors.New("confluence: user not found")
	ErrAttachmentOpen   = errors.New("confluence: cannot open attachment")
)
