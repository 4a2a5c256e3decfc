// Package confluence implements the REST client used to publish rendered
// pages and upload their attachments. All network failures are wrapped with
// the page or path they concern so a batch caller can report actionable
// errors without aborting the whole run.
package confluence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Config holds client construction parameters.
type Config struct {
	BaseURL  string   // e.g. https://wiki.example.com/rest/api (required)
	Username string   // basic auth user (optional)
	Password string   // basic auth password (optional)
	Headers  []string // extra headers as "Name:value" pairs
	DryRun   bool     // log requests instead of sending them
	Timeout  time.Duration
	Logf     func(format string, args ...any) // dry-run/trace output (optional)
}

// Client talks to the Confluence REST API. Safe for concurrent use.
type Client struct {
	baseURL    string
	username   string
	password   string
	headers    http.Header
	httpClient *http.Client
	dryRun     bool
	logf       func(format string, args ...any)
}

// New creates a Client from the given configuration.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}

	headers := http.Header{}
	for _, h := range cfg.Headers {
		name, value, ok := strings.Cut(h, ":")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, h)
		}
		headers.Add(strings.TrimSpace(name), strings.TrimSpace(value))
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		username:   cfg.Username,
		password:   cfg.Password,
		headers:    headers,
		httpClient: &http.Client{Timeout: timeout},
		dryRun:     cfg.DryRun,
		logf:       logf,
	}, nil
}

// FindPage looks up an existing page by its identity label, optionally scoped
// to a space and an ancestor. Returns nil when no page carries the label.
func (c *Client) FindPage(ctx context.Context, idLabel, space, ancestorID string) (*Page, error) {
	cql := fmt.Sprintf(`label="%s"`, idLabel)
	if space != "" {
		cql += fmt.Sprintf(` and space="%s"`, space)
	}
	if ancestorID != "" {
		cql += fmt.Sprintf(` and ancestor=%s`, ancestorID)
	}

	query := url.Values{}
	query.Set("cql", cql)
	query.Set("expand", "version")

	if c.dryRun {
		c.logf("dry-run: GET /content/search?%s", query.Encode())
		return nil, nil
	}

	var result searchResponse
	if err := c.do(ctx, http.MethodGet, "/content/search?"+query.Encode(), nil, &result); err != nil {
		return nil, fmt.Errorf("finding page %q: %w", idLabel, err)
	}
	if len(result.Results) == 0 {
		return nil, nil
	}
	return &result.Results[0], nil
}

// CreatePage creates an empty page and attaches the identity label so the
// page can be found again on later runs. The page body is filled in by a
// subsequent UpdatePage.
func (c *Client) CreatePage(ctx context.Context, req CreatePageRequest) (*Page, error) {
	body := contentBody{
		Type:  "page",
		Title: req.Title,
		Space: spaceRef{Key: req.Space},
	}
	if req.AncestorID != "" {
		body.Ancestors = []ancestorRef{{ID: req.AncestorID}}
	}

	if c.dryRun {
		c.logf("dry-run: POST /content title=%q space=%q ancestor=%q", req.Title, req.Space, req.AncestorID)
		return &Page{ID: "dry-run", Title: req.Title, Version: Version{Number: 1}}, nil
	}

	var page Page
	if err := c.do(ctx, http.MethodPost, "/content", body, &page); err != nil {
		return nil, fmt.Errorf("creating page %q: %w", req.Title, err)
	}

	if req.IDLabel != "" {
		if err := c.addLabels(ctx, page.ID, []string{req.IDLabel}); err != nil {
			return nil, err
		}
	}
	return &page, nil
}

// UpdatePage replaces a page's content and labels, bumping its version.
func (c *Client) UpdatePage(ctx context.Context, req UpdatePageRequest) error {
	body := contentBody{
		Type:    "page",
		Title:   req.Title,
		Space:   spaceRef{Key: req.Space},
		Version: &Version{Number: req.PageVersion + 1},
		Body: &storageWrapper{
			Storage: storageValue{Value: req.Content, Representation: "storage"},
		},
	}
	if req.AncestorID != "" {
		body.Ancestors = []ancestorRef{{ID: req.AncestorID}}
	}

	if c.dryRun {
		c.logf("dry-run: PUT /content/%s title=%q version=%d labels=%v",
			req.PageID, req.Title, req.PageVersion+1, req.Labels)
		return nil
	}

	if err := c.do(ctx, http.MethodPut, "/content/"+req.PageID, body, nil); err != nil {
		return fmt.Errorf("updating page %q: %w", req.Title, err)
	}
	return c.addLabels(ctx, req.PageID, req.Labels)
}

// UploadAttachment uploads a local file as a page attachment. Confluence
// associates attachments by base filename, matching the in-page references
// emitted by the renderer.
func (c *Client) UploadAttachment(ctx context.Context, pageID, path string) error {
	if c.dryRun {
		c.logf("dry-run: POST /content/%s/child/attachment file=%s", pageID, path)
		return nil
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrAttachmentOpen, path, err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("uploading attachment %s: %w", path, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("uploading attachment %s: %w", path, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("uploading attachment %s: %w", path, err)
	}

	endpoint := fmt.Sprintf("/content/%s/child/attachment", pageID)
	req, err := c.newRequest(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Atlassian-Token", "nocheck")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("uploading attachment %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("uploading attachment %s: %w: %s", path, ErrUnexpectedStatus, resp.Status)
	}
	return nil
}

// LookupUserKey resolves a username to the user key the profile macros need.
func (c *Client) LookupUserKey(ctx context.Context, username string) (string, error) {
	query := url.Values{}
	query.Set("username", username)

	if c.dryRun {
		c.logf("dry-run: GET /user?%s", query.Encode())
		return "dry-run-" + username, nil
	}

	var user userResponse
	if err := c.do(ctx, http.MethodGet, "/user?"+query.Encode(), nil, &user); err != nil {
		return "", fmt.Errorf("looking up user %q: %w", username, err)
	}
	if user.UserKey == "" {
		return "", fmt.Errorf("%w: %q", ErrUserNotFound, username)
	}
	return user.UserKey, nil
}

// addLabels attaches global labels to a page, skipping empty names.
func (c *Client) addLabels(ctx context.Context, pageID string, labels []string) error {
	body := make([]labelBody, 0, len(labels))
	for _, label := range labels {
		if label == "" {
			continue
		}
		body = append(body, labelBody{Prefix: "global", Name: label})
	}
	if len(body) == 0 {
		return nil
	}
	if err := c.do(ctx, http.MethodPost, "/content/"+pageID+"/label", body, nil); err != nil {
		return fmt.Errorf("labeling page %s: %w", pageID, err)
	}
	return nil
}

// do issues a JSON request and decodes the response into out (when non-nil).
func (c *Client) do(ctx context.Context, method, endpoint string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s: %s", ErrUnexpectedStatus, resp.Status, strings.TrimSpace(string(detail)))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// newRequest builds a request with auth and the configured extra headers.
func (c *Client) newRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, err
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}
	for name, values := range c.headers {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	return req, nil
}
