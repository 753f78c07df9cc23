// Package ui defines the small widget surface the controllers drive.
// Each page supplies its own implementations; nothing here touches a
// real DOM, which keeps every controller testable with fakes.
package ui

import "net/url"

// Kind tells the form controller how to coerce a record value into a
// control.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindCheckbox
	KindDateTime
)

// Control is one form input.
type Control interface {
	Name() string
	Kind() Kind

	Value() string
	SetValue(v string)
	Checked() bool
	SetChecked(checked bool)

	// SetInvalid marks the control with an inline error message;
	// ClearInvalid removes it. Both are idempotent.
	SetInvalid(msg string)
	ClearInvalid()

	OnBlur(fn func())
	OnFocus(fn func())
}

// Form is the entity create/edit form.
type Form interface {
	Controls() []Control
	Control(name string) (Control, bool)

	// Reset blanks every control.
	Reset()

	// Values returns what the form would submit, keyed by control name.
	Values() url.Values

	// ShowError renders the consolidated error banner at the top of the
	// form; ClearError hides it.
	ShowError(items []string)
	ClearError()
}

// Modal is a dialog plus its backdrop. Hide on an already-hidden modal
// is a no-op.
type Modal interface {
	Show()
	Hide()
	Visible() bool
}

// ViewField is one label/value pair of the read-only detail grid.
type ViewField struct {
	Label string
	Value string
}

// ViewPanel renders the detail grid inside the view modal.
type ViewPanel interface {
	SetFields(fields []ViewField)
}

// Cell is one table cell. Badge, when non-empty, names the badge style
// the cell is rendered with.
type Cell struct {
	Text  string
	Badge string
}

// RowView is the renderable form of one record: its cells plus the
// identity value the action buttons are bound to.
type RowView struct {
	ID    string
	Cells []Cell
}

// TableBody is the tbody the table controller swaps content into.
type TableBody interface {
	// ReplaceRows clears the body and renders the rows in order.
	ReplaceRows(rows []RowView)

	// ShowMessage replaces the body with a single placeholder row
	// spanning all columns.
	ShowMessage(msg string)

	// SpliceHTML replaces the body content with a server-rendered
	// fragment.
	SpliceHTML(html string)

	ColumnCount() int
}

// Page covers the page-level interactions the controllers need.
type Page interface {
	Alert(msg string)
	Confirm(msg string) bool
	// Reload forces a full page reload (the reload-scrape fallback).
	Reload()
}
