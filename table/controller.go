// Package table keeps a listing table in sync with search input. Each
// search widget gets its own Controller; there is no shared global.
package table

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"adminclient/entity"
	"adminclient/ui"
)

// State is the controller's position in the search lifecycle, exposed
// for inspection.
type State int

const (
	StateIdle State = iota
	StateDebouncing
	StateFetching
	StateRendered
	StateEmpty
	StateErrored
)

const defaultDebounce = 500 * time.Millisecond

// Fetcher is the slice of the entity client the controller needs.
type Fetcher interface {
	Search(ctx context.Context, query string) ([]entity.Record, error)
	ListFragment(ctx context.Context) (string, error)
}

// RowBuilder maps one record to its table row.
type RowBuilder func(rec entity.Record) ui.RowView

// Controller owns one search box and the table body it feeds.
type Controller struct {
	fetcher Fetcher
	body    ui.TableBody
	page    ui.Page
	build   RowBuilder

	debounce  time.Duration
	emptyMsg  string
	searchErr string
	logger    *zap.Logger

	mu    sync.Mutex
	state State
	timer *time.Timer
	// gen increments on every keystroke; a response is applied only if
	// its generation is still the latest, so a stale search can never
	// overwrite a newer one even when responses arrive out of order.
	gen uint64
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithDebounce overrides the 500ms debounce delay.
func WithDebounce(d time.Duration) ControllerOption {
	return func(c *Controller) { c.debounce = d }
}

// WithEmptyMessage sets the placeholder text for empty results.
func WithEmptyMessage(msg string) ControllerOption {
	return func(c *Controller) { c.emptyMsg = msg }
}

// WithSearchErrorMessage sets the alert text for failed searches.
func WithSearchErrorMessage(msg string) ControllerOption {
	return func(c *Controller) { c.searchErr = msg }
}

// WithControllerLogger sets the diagnostics logger.
func WithControllerLogger(l *zap.Logger) ControllerOption {
	return func(c *Controller) { c.logger = l }
}

// NewController wires a search widget to its table body.
func NewController(fetcher Fetcher, body ui.TableBody, page ui.Page, build RowBuilder, opts ...ControllerOption) *Controller {
	c := &Controller{
		fetcher:   fetcher,
		body:      body,
		page:      page,
		build:     build,
		debounce:  defaultDebounce,
		emptyMsg:  "Nenhum registro encontrado.",
		searchErr: "Erro ao realizar busca.",
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Input handles one keystroke of the search box. Every call supersedes
// whatever was pending: the debounce timer restarts and any in-flight
// response becomes stale. An empty query bypasses the delay and reloads
// the unfiltered list instead of searching.
func (c *Controller) Input(query string) {
	c.mu.Lock()
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	if entity.Blank(query) {
		c.state = StateIdle
		c.mu.Unlock()
		c.Reload()
		return
	}

	c.state = StateDebouncing
	gen := c.gen
	c.timer = time.AfterFunc(c.debounce, func() {
		c.runSearch(gen, query)
	})
	c.mu.Unlock()
}

func (c *Controller) runSearch(gen uint64, query string) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.state = StateFetching
	c.mu.Unlock()

	recs, err := c.fetcher.Search(context.Background(), query)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// A newer keystroke won; drop this response unrendered.
		return
	}

	if err != nil {
		// Leave the table body as-is per the error contract.
		c.state = StateErrored
		c.logger.Error("search failed", zap.String("query", query), zap.Error(err))
		c.page.Alert(c.searchErr)
		return
	}

	if len(recs) == 0 {
		c.state = StateEmpty
		c.body.ShowMessage(c.emptyMsg)
		return
	}

	rows := make([]ui.RowView, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, c.build(rec))
	}
	c.state = StateRendered
	c.body.ReplaceRows(rows)
}

// Reload re-fetches the server-rendered listing and splices its table
// body in place, which preserves scroll position and focus. When the
// fetch fails the defined fallback is a full page reload.
func (c *Controller) Reload() {
	fragment, err := c.fetcher.ListFragment(context.Background())
	if err != nil {
		c.logger.Error("reload failed", zap.Error(err))
		c.page.Reload()
		return
	}
	c.body.SpliceHTML(fragment)
}
