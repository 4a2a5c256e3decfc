package confluence

// Page is the subset of Confluence's content representation the publisher
// tracks between calls.
type Page struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Version Version `json:"version"`
}

// Version carries the page version number, required on every update.
type Version struct {
	Number int `json:"number"`
}

// CreatePageRequest describes a page to create.
type CreatePageRequest struct {
	Title      string
	Space      string
	AncestorID string
	IDLabel    string // identity label attached after creation for later lookup
}

// UpdatePageRequest describes a full page update.
type UpdatePageRequest struct {
	PageID      string
	Title       string
	Space       string
	AncestorID  string
	PageVersion int // current version; the update submits PageVersion+1
	Content     string
	Labels      []string
}

// Wire types for the REST payloads.

type searchResponse struct {
	Results []Page `json:"results"`
}

type contentBody struct {
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Space     spaceRef        `json:"space"`
	Ancestors []ancestorRef   `json:"ancestors,omitempty"`
	Body      *storageWrapper `json:"body,omitempty"`
	Version   *Version        `json:"version,omitempty"`
}

type spaceRef struct {
	Key string `json:"key"`
}

type ancestorRef struct {
	ID string `json:"id"`
}

type storageWrapper struct {
	Storage storageValue `json:"storage"`
}

type storageValue struct {
	Value          string `json:"value"`
	Representation string `json:"representation"`
}

type labelBody struct {
	Prefix string `json:"prefix"`
	Name   string `json:"name"`
}

type userResponse struct {
	UserKey string `json:"userKey"`
}
