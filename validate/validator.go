// Package validate checks entity forms before submission. Rules are
// keyed by form type (the entity's plural name) and cover required
// fields and email shape; everything else is the backend's job.
package validate

import (
	"strings"

	playground "github.com/go-playground/validator/v10"

	"adminclient/entity"
	"adminclient/ui"
)

// Field-level messages, shown inline next to the control.
const (
	msgRequired = "Este campo é obrigatório"
	msgEmail    = "Email inválido (use: user@example.com)"
)

// bannerSuffix marks an email entry in the consolidated banner.
const bannerEmailSuffix = " - formato inválido"

// Validator runs the configured rule sets against live forms.
type Validator struct {
	rules  map[string]entity.RuleSet
	labels map[string]string
	checks *playground.Validate
}

// New builds a validator. Nil maps fall back to the portal defaults.
func New(rules map[string]entity.RuleSet, labels map[string]string) *Validator {
	if rules == nil {
		rules = entity.DefaultRules
	}
	if labels == nil {
		labels = entity.FieldLabels
	}
	return &Validator{
		rules:  rules,
		labels: labels,
		checks: playground.New(),
	}
}

// Label returns the human-readable label for a field, falling back to
// the raw field name when no mapping exists.
func (v *Validator) Label(field string) string {
	if l, ok := v.labels[field]; ok {
		return l
	}
	return field
}

func (v *Validator) required(value string) bool {
	return v.checks.Var(strings.TrimSpace(value), "required") == nil
}

func (v *Validator) validEmail(value string) bool {
	return v.checks.Var(strings.TrimSpace(value), "email") == nil
}

// Validate clears prior errors and re-checks the whole form. When any
// field fails, every control involved is marked, a consolidated banner
// lists the offending labels, and the result is false — the submission
// must not proceed. Unknown form types have no rules and pass.
func (v *Validator) Validate(formType string, form ui.Form) bool {
	v.clearAll(form)

	rules := v.rules[formType]
	var banner []string

	for _, name := range rules.Required {
		ctl, ok := form.Control(name)
		if !ok {
			continue
		}
		if !v.required(ctl.Value()) {
			ctl.SetInvalid(msgRequired)
			banner = append(banner, v.Label(name))
		}
	}

	for _, name := range rules.Email {
		ctl, ok := form.Control(name)
		if !ok {
			continue
		}
		value := strings.TrimSpace(ctl.Value())
		if value == "" {
			continue
		}
		if !v.validEmail(value) {
			ctl.SetInvalid(msgEmail)
			banner = append(banner, v.Label(name)+bannerEmailSuffix)
		}
	}

	if len(banner) > 0 {
		form.ShowError(banner)
		return false
	}
	return true
}

func (v *Validator) clearAll(form ui.Form) {
	for _, ctl := range form.Controls() {
		ctl.ClearInvalid()
	}
	form.ClearError()
}

// LiveValidation attaches blur handlers (re-validate just that field)
// and focus handlers (clear the field's own error while editing) to
// every configured field. It is independent of the full Validate call.
func (v *Validator) LiveValidation(formType string, form ui.Form) {
	rules := v.rules[formType]

	seen := map[string]bool{}
	var fields []string
	for _, name := range append(append([]string{}, rules.Required...), rules.Email...) {
		if !seen[name] {
			seen[name] = true
			fields = append(fields, name)
		}
	}

	required := map[string]bool{}
	for _, name := range rules.Required {
		required[name] = true
	}
	email := map[string]bool{}
	for _, name := range rules.Email {
		email[name] = true
	}

	for _, name := range fields {
		ctl, ok := form.Control(name)
		if !ok {
			continue
		}
		name := name
		ctl.OnBlur(func() {
			if required[name] {
				if !v.required(ctl.Value()) {
					ctl.SetInvalid(msgRequired)
					return
				}
				ctl.ClearInvalid()
			}
			if email[name] && strings.TrimSpace(ctl.Value()) != "" {
				if !v.validEmail(ctl.Value()) {
					ctl.SetInvalid(msgEmail)
					return
				}
				ctl.ClearInvalid()
			}
		})
		ctl.OnFocus(func() {
			ctl.ClearInvalid()
		})
	}
}
