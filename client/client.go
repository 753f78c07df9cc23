// Package client talks to the portal backend following its REST-like
// convention: {base} for list/create, {base}/{id} for detail, update
// and delete, {base}/search?q= for search. Create, update and delete
// all travel as form-encoded POSTs; update and delete carry a _method
// override field, which is the backend's routing convention and stays
// confined to this package.
package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"adminclient/entity"
)

const defaultTimeout = 10 * time.Second

// Client performs the network calls for one entity type.
type Client struct {
	cfg     entity.TypeConfig
	base    string
	httpc   *http.Client
	timeout time.Duration
	logger  *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithBaseURL overrides the config's base URL, e.g. to point at a test
// server.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.base = strings.TrimRight(base, "/") }
}

// New builds a client for the given entity type.
func New(cfg entity.TypeConfig, opts ...Option) *Client {
	c := &Client{
		cfg:     cfg,
		base:    strings.TrimRight(cfg.BaseURL, "/"),
		httpc:   http.DefaultClient,
		timeout: defaultTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the entity type this client serves.
func (c *Client) Config() entity.TypeConfig { return c.cfg }

// BaseURL returns the effective base URL.
func (c *Client) BaseURL() string { return c.base }

func (c *Client) detailURL(id string) string {
	return c.base + "/" + entity.EscapeID(id)
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Client) do(req *http.Request, op string) (*http.Response, error) {
	req.Header.Set("X-Request-ID", uuid.NewString())
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("request failed", zap.String("op", op), zap.String("url", req.URL.String()), zap.Error(err))
		return nil, NetworkError{Op: op, Err: err}
	}
	return resp, nil
}

// FetchOne retrieves a single record by its identity value.
func (c *Client) FetchOne(ctx context.Context, id string) (entity.Record, error) {
	if entity.Blank(id) {
		return nil, ValidationError{Msg: "identity value must not be blank"}
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.detailURL(id), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req, "fetch "+c.cfg.PluralName)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, NotFoundError{Resource: c.cfg.Name, ID: id}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, BackendError{Status: resp.StatusCode, URL: req.URL.String()}
	}

	var rec entity.Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, BackendError{Status: resp.StatusCode, URL: req.URL.String()}
	}
	return rec, nil
}

// Search runs a term search. A 204 response means no matches and yields
// an empty slice, not an error. Empty queries are rejected here as a
// second line of defense; the table controller never sends them.
func (c *Client) Search(ctx context.Context, query string) ([]entity.Record, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ValidationError{Msg: "search query must not be empty"}
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	u := c.base + "/search?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req, "search "+c.cfg.PluralName)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return []entity.Record{}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, BackendError{Status: resp.StatusCode, URL: u}
	}

	var recs []entity.Record
	if err := json.NewDecoder(resp.Body).Decode(&recs); err != nil {
		return nil, BackendError{Status: resp.StatusCode, URL: u}
	}
	if recs == nil {
		recs = []entity.Record{}
	}
	return recs, nil
}

// Create submits a new record.
func (c *Client) Create(ctx context.Context, form url.Values) error {
	return c.submit(ctx, c.base, form, "")
}

// Update submits changed fields for an existing record.
func (c *Client) Update(ctx context.Context, id string, form url.Values) error {
	if entity.Blank(id) {
		return ValidationError{Msg: "identity value must not be blank"}
	}
	return c.submit(ctx, c.detailURL(id), form, "PUT")
}

// Delete removes a record.
func (c *Client) Delete(ctx context.Context, id string) error {
	if entity.Blank(id) {
		return ValidationError{Msg: "identity value must not be blank"}
	}
	return c.submit(ctx, c.detailURL(id), url.Values{}, "DELETE")
}

func (c *Client) submit(ctx context.Context, target string, form url.Values, override string) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	body := url.Values{}
	for k, vs := range form {
		if k == "_method" {
			continue
		}
		body[k] = vs
	}
	if override != "" {
		body.Set("_method", override)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(body.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	op := "submit " + c.cfg.PluralName
	if override != "" {
		op = strings.ToLower(override) + " " + c.cfg.PluralName
	}
	resp, err := c.do(req, op)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	// The backend answers writes with a redirect back to the listing;
	// the HTTP client follows it, so the final status is the page's.
	if resp.StatusCode == http.StatusNotFound {
		return NotFoundError{Resource: c.cfg.Name}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 399 {
		return BackendError{Status: resp.StatusCode, URL: target}
	}
	return nil
}

// ListFragment fetches the server-rendered listing page and extracts
// the inner HTML of its table body. The table controller splices it in
// place so scroll position and focus survive a reload.
func (c *Client) ListFragment(ctx context.Context) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.do(req, "list "+c.cfg.PluralName)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", BackendError{Status: resp.StatusCode, URL: c.base}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", NetworkError{Op: "parse listing", Err: err}
	}
	tbody := doc.Find("table tbody").First()
	if tbody.Length() == 0 {
		return "", BackendError{Status: resp.StatusCode, URL: c.base}
	}
	html, err := tbody.Html()
	if err != nil {
		return "", NetworkError{Op: "parse listing", Err: err}
	}
	return html, nil
}
