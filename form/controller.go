// Package form drives the view and create/edit modals for one entity
// type. The controller is an explicit per-page instance; handlers close
// over it instead of reaching for a shared global.
package form

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"adminclient/entity"
	"adminclient/ui"
)

// Op is the pending submission kind. The _method override the backend
// expects is the client's concern; everything in here works with the
// typed operation.
type Op int

const (
	OpCreate Op = iota
	OpUpdate
)

// EntityAPI is the slice of the entity client the controller needs.
type EntityAPI interface {
	FetchOne(ctx context.Context, id string) (entity.Record, error)
	Create(ctx context.Context, form url.Values) error
	Update(ctx context.Context, id string, form url.Values) error
	Delete(ctx context.Context, id string) error
}

// Validator gates submission; it is the full-form validate call.
type Validator interface {
	Validate(formType string, form ui.Form) bool
}

// Messages are the user-facing strings; defaults are the portal's.
type Messages struct {
	LoadFailed    string
	DeleteFailed  string
	ConfirmDelete string
}

// Controller owns the modals and form of one entity type.
type Controller struct {
	cfg       entity.TypeConfig
	api       EntityAPI
	form      ui.Form
	formModal ui.Modal
	viewModal ui.Modal
	view      ui.ViewPanel
	page      ui.Page
	validator Validator
	loc       *time.Location
	msgs      Messages
	logger    *zap.Logger

	op       Op
	targetID string
}

// FormOption configures a Controller.
type FormOption func(*Controller)

// WithLocation sets the time zone used for date-time controls and view
// rendering. Defaults to the local zone.
func WithLocation(loc *time.Location) FormOption {
	return func(c *Controller) { c.loc = loc }
}

// WithValidator installs the field validator that intercepts Submit.
func WithValidator(v Validator) FormOption {
	return func(c *Controller) { c.validator = v }
}

// WithMessages overrides the user-facing strings.
func WithMessages(m Messages) FormOption {
	return func(c *Controller) {
		if m.LoadFailed != "" {
			c.msgs.LoadFailed = m.LoadFailed
		}
		if m.DeleteFailed != "" {
			c.msgs.DeleteFailed = m.DeleteFailed
		}
		if m.ConfirmDelete != "" {
			c.msgs.ConfirmDelete = m.ConfirmDelete
		}
	}
}

// WithFormLogger sets the diagnostics logger.
func WithFormLogger(l *zap.Logger) FormOption {
	return func(c *Controller) { c.logger = l }
}

// NewController wires the form, its two modals and the page together.
func NewController(cfg entity.TypeConfig, api EntityAPI, form ui.Form, formModal, viewModal ui.Modal, view ui.ViewPanel, page ui.Page, opts ...FormOption) *Controller {
	c := &Controller{
		cfg:       cfg,
		api:       api,
		form:      form,
		formModal: formModal,
		viewModal: viewModal,
		view:      view,
		page:      page,
		loc:       time.Local,
		logger:    zap.NewNop(),
		msgs: Messages{
			LoadFailed:    "Erro ao carregar dados do " + cfg.Name + ".",
			DeleteFailed:  "Erro ao deletar " + cfg.Name + ".",
			ConfirmDelete: "Tem certeza que deseja deletar este " + cfg.Name + "?",
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OpenCreate resets the form, switches to create mode and opens the
// form modal.
func (c *Controller) OpenCreate() {
	c.form.Reset()
	c.form.ClearError()
	c.op = OpCreate
	c.targetID = ""
	c.formModal.Show()
}

// OpenEdit fetches the record and populates the form with type-aware
// coercion before opening the modal. On a fetch failure the modal stays
// closed and the user gets an alert.
func (c *Controller) OpenEdit(ctx context.Context, id string) error {
	rec, err := c.api.FetchOne(ctx, id)
	if err != nil {
		c.logger.Error("edit fetch failed", zap.String("entity", c.cfg.PluralName), zap.String("id", id), zap.Error(err))
		c.page.Alert(c.msgs.LoadFailed)
		return err
	}

	c.form.Reset()
	c.form.ClearError()
	c.populate(rec)
	c.op = OpUpdate
	c.targetID = id
	c.formModal.Show()
	return nil
}

// populate walks the record's fields and sets every same-named control.
// Fields without a control, and controls without a field, are left
// untouched.
func (c *Controller) populate(rec entity.Record) {
	for key, val := range rec {
		ctl, ok := c.form.Control(key)
		if !ok {
			continue
		}
		switch ctl.Kind() {
		case ui.KindCheckbox:
			b, _ := val.(bool)
			ctl.SetChecked(b)
		case ui.KindNumber:
			if val == nil {
				ctl.SetValue("")
				continue
			}
			if f, ok := val.(float64); ok {
				ctl.SetValue(strconv.FormatFloat(f, 'f', -1, 64))
				continue
			}
			ctl.SetValue(rec.String(key))
		case ui.KindDateTime:
			t, ok := rec.Time(key)
			if !ok {
				ctl.SetValue("")
				continue
			}
			// Local wall clock truncated to the minute, the value
			// shape a datetime-local input expects.
			ctl.SetValue(t.In(c.loc).Format("2006-01-02T15:04"))
		default:
			if val == nil {
				ctl.SetValue("")
				continue
			}
			ctl.SetValue(rec.String(key))
		}
	}
}

// OpenView fetches the record and renders the read-only detail grid in
// the order the view-field config dictates. On a fetch failure the
// modal stays closed.
func (c *Controller) OpenView(ctx context.Context, id string, fields []entity.ViewField) error {
	rec, err := c.api.FetchOne(ctx, id)
	if err != nil {
		c.logger.Error("view fetch failed", zap.String("entity", c.cfg.PluralName), zap.String("id", id), zap.Error(err))
		c.page.Alert(c.msgs.LoadFailed)
		return err
	}

	c.view.SetFields(FormatViewFields(rec, fields, c.loc))
	c.viewModal.Show()
	return nil
}

// FormatViewFields formats one record for the detail grid: booleans as
// Sim/Não, dates in the viewer's locale convention, percent values with
// a % suffix and anything blank as a dash.
func FormatViewFields(rec entity.Record, fields []entity.ViewField, loc *time.Location) []ui.ViewField {
	out := make([]ui.ViewField, 0, len(fields))
	for _, f := range fields {
		value := ""
		switch f.Type {
		case "boolean":
			if _, present := rec[f.Key]; present && rec[f.Key] != nil {
				value = "Não"
				if rec.Bool(f.Key) {
					value = "Sim"
				}
			}
		case "date":
			if t, ok := rec.Time(f.Key); ok {
				value = t.In(loc).Format("02/01/2006 15:04:05")
			}
		case "percent":
			if s := rec.String(f.Key); s != "" {
				value = s + "%"
			}
		default:
			value = rec.String(f.Key)
		}
		if value == "" {
			value = "-"
		}
		out = append(out, ui.ViewField{Label: f.Label, Value: value})
	}
	return out
}

// Submit validates the form and dispatches to create or update,
// whichever mode the form was opened in. Validation failures never
// reach the network.
func (c *Controller) Submit(ctx context.Context) error {
	if c.validator != nil && !c.validator.Validate(c.cfg.PluralName, c.form) {
		return ValidationBlockedError{}
	}

	values := c.form.Values()
	var err error
	if c.op == OpUpdate && c.targetID != "" {
		err = c.api.Update(ctx, c.targetID, values)
	} else {
		err = c.api.Create(ctx, values)
	}
	if err != nil {
		c.logger.Error("submit failed", zap.String("entity", c.cfg.PluralName), zap.Error(err))
		return err
	}
	c.CloseForm()
	return nil
}

// Delete asks for confirmation and, only if given, issues the delete
// call. Declining is not an error and produces no network traffic.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if !c.page.Confirm(c.msgs.ConfirmDelete) {
		return nil
	}
	if err := c.api.Delete(ctx, id); err != nil {
		c.logger.Error("delete failed", zap.String("entity", c.cfg.PluralName), zap.String("id", id), zap.Error(err))
		c.page.Alert(c.msgs.DeleteFailed)
		return err
	}
	return nil
}

// CloseForm hides the form modal. Closing an already-closed modal is a
// no-op.
func (c *Controller) CloseForm() { c.formModal.Hide() }

// CloseView hides the view modal.
func (c *Controller) CloseView() { c.viewModal.Hide() }

// TargetID returns the identity the form currently targets ("" in
// create mode).
func (c *Controller) TargetID() string { return c.targetID }

// Mode returns the pending operation kind.
func (c *Controller) Mode() Op { return c.op }

// ValidationBlockedError reports a submission stopped by client-side
// validation; it never left the browser-side of the flow.
type ValidationBlockedError struct{}

func (ValidationBlockedError) Error() string { return "submission blocked by validation" }
