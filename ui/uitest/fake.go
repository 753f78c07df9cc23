// Package uitest provides in-memory ui implementations for tests.
package uitest

import (
	"net/url"
	"sync"

	"adminclient/ui"
)

// Control is a fake ui.Control recording every mutation.
type Control struct {
	FieldName string
	FieldKind ui.Kind

	Val        string
	IsChecked  bool
	InvalidMsg string
	Invalid    bool

	blur  []func()
	focus []func()
}

func (c *Control) Name() string      { return c.FieldName }
func (c *Control) Kind() ui.Kind     { return c.FieldKind }
func (c *Control) Value() string     { return c.Val }
func (c *Control) SetValue(v string) { c.Val = v }
func (c *Control) Checked() bool     { return c.IsChecked }
func (c *Control) SetChecked(v bool) { c.IsChecked = v }
func (c *Control) OnBlur(fn func())  { c.blur = append(c.blur, fn) }
func (c *Control) OnFocus(fn func()) { c.focus = append(c.focus, fn) }

func (c *Control) SetInvalid(msg string) {
	c.Invalid = true
	c.InvalidMsg = msg
}

func (c *Control) ClearInvalid() {
	c.Invalid = false
	c.InvalidMsg = ""
}

// Blur fires the registered blur handlers, like leaving the field.
func (c *Control) Blur() {
	for _, fn := range c.blur {
		fn()
	}
}

// Focus fires the registered focus handlers.
func (c *Control) Focus() {
	for _, fn := range c.focus {
		fn()
	}
}

// Form is a fake ui.Form.
type Form struct {
	Fields []*Control

	ResetCalls int
	BannerUp   bool
	Banner     []string
}

// NewForm builds a form from name/kind pairs.
func NewForm(controls ...*Control) *Form {
	return &Form{Fields: controls}
}

func (f *Form) Controls() []ui.Control {
	out := make([]ui.Control, len(f.Fields))
	for i, c := range f.Fields {
		out[i] = c
	}
	return out
}

func (f *Form) Control(name string) (ui.Control, bool) {
	for _, c := range f.Fields {
		if c.FieldName == name {
			return c, true
		}
	}
	return nil, false
}

func (f *Form) Reset() {
	f.ResetCalls++
	for _, c := range f.Fields {
		c.Val = ""
		c.IsChecked = false
	}
}

func (f *Form) Values() url.Values {
	vals := url.Values{}
	for _, c := range f.Fields {
		if c.FieldKind == ui.KindCheckbox {
			if c.IsChecked {
				vals.Set(c.FieldName, "on")
			}
			continue
		}
		vals.Set(c.FieldName, c.Val)
	}
	return vals
}

func (f *Form) ShowError(items []string) {
	f.BannerUp = true
	f.Banner = items
}

func (f *Form) ClearError() {
	f.BannerUp = false
	f.Banner = nil
}

// Modal is a fake ui.Modal.
type Modal struct {
	Shown     bool
	HideCalls int
}

func (m *Modal) Show() { m.Shown = true }
func (m *Modal) Visible() bool { return m.Shown }

func (m *Modal) Hide() {
	m.HideCalls++
	m.Shown = false
}

// ViewPanel is a fake ui.ViewPanel.
type ViewPanel struct {
	Fields []ui.ViewField
}

func (v *ViewPanel) SetFields(fields []ui.ViewField) { v.Fields = fields }

// TableBody is a fake ui.TableBody. It is safe for concurrent use since
// the table controller renders from timer goroutines.
type TableBody struct {
	mu      sync.Mutex
	Columns int

	Rows        []ui.RowView
	Message     string
	MessageSpan int
	HTML        string
	Replaced    int
}

func (b *TableBody) ReplaceRows(rows []ui.RowView) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Rows = rows
	b.Message = ""
	b.HTML = ""
	b.Replaced++
}

func (b *TableBody) ShowMessage(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Rows = nil
	b.Message = msg
	b.MessageSpan = b.Columns
}

func (b *TableBody) SpliceHTML(html string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Rows = nil
	b.HTML = html
}

func (b *TableBody) ColumnCount() int { return b.Columns }

// Snapshot returns the current rows under the lock.
func (b *TableBody) Snapshot() ([]ui.RowView, string, string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Rows, b.Message, b.HTML
}

// Page is a fake ui.Page.
type Page struct {
	mu       sync.Mutex
	Alerts   []string
	Confirms []string
	// ConfirmAnswer is returned from Confirm (default false: declined).
	ConfirmAnswer bool
	Reloads       int
}

func (p *Page) Alert(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Alerts = append(p.Alerts, msg)
}

func (p *Page) Confirm(msg string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Confirms = append(p.Confirms, msg)
	return p.ConfirmAnswer
}

func (p *Page) Reload() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Reloads++
}

// AlertCount returns how many alerts were raised.
func (p *Page) AlertCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Alerts)
}
