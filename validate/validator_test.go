package validate

import (
	"testing"

	"adminclient/entity"
	"adminclient/ui"
	"adminclient/ui/uitest"
)

func outletForm() *uitest.Form {
	return uitest.NewForm(
		&uitest.Control{FieldName: "code", FieldKind: ui.KindText},
		&uitest.Control{FieldName: "name", FieldKind: ui.KindText},
		&uitest.Control{FieldName: "email", FieldKind: ui.KindText},
	)
}

func control(t *testing.T, f *uitest.Form, name string) *uitest.Control {
	t.Helper()
	for _, c := range f.Fields {
		if c.FieldName == name {
			return c
		}
	}
	t.Fatalf("no control %q", name)
	return nil
}

func TestValidateFlagsAllMissingRequired(t *testing.T) {
	v := New(nil, nil)
	f := outletForm()

	if v.Validate("outlets", f) {
		t.Fatal("blank form must not validate")
	}

	for _, name := range []string{"code", "name"} {
		c := control(t, f, name)
		if !c.Invalid || c.InvalidMsg != msgRequired {
			t.Errorf("%s: invalid=%v msg=%q", name, c.Invalid, c.InvalidMsg)
		}
	}
	if !f.BannerUp {
		t.Fatal("banner should be shown")
	}
	if len(f.Banner) != 2 || f.Banner[0] != "Código" || f.Banner[1] != "Nome" {
		t.Errorf("banner = %v", f.Banner)
	}
}

func TestValidatePassesWhenFilled(t *testing.T) {
	v := New(nil, nil)
	f := outletForm()
	control(t, f, "code").SetValue("OUT-001")
	control(t, f, "name").SetValue("Mercado Central")

	if !v.Validate("outlets", f) {
		t.Fatal("filled form should validate")
	}
	if f.BannerUp {
		t.Errorf("banner = %v", f.Banner)
	}
}

func TestValidateWhitespaceIsNotFilled(t *testing.T) {
	v := New(nil, nil)
	f := outletForm()
	control(t, f, "code").SetValue("   ")
	control(t, f, "name").SetValue("Mercado Central")

	if v.Validate("outlets", f) {
		t.Fatal("whitespace-only value must count as missing")
	}
	if !control(t, f, "code").Invalid {
		t.Error("code should be flagged")
	}
}

func TestValidateEmailShape(t *testing.T) {
	v := New(nil, nil)
	f := outletForm()
	control(t, f, "code").SetValue("OUT-001")
	control(t, f, "name").SetValue("Mercado Central")

	email := control(t, f, "email")
	email.SetValue("not-an-email")
	if v.Validate("outlets", f) {
		t.Fatal("bad email must fail")
	}
	if !email.Invalid || email.InvalidMsg != msgEmail {
		t.Errorf("invalid=%v msg=%q", email.Invalid, email.InvalidMsg)
	}
	if len(f.Banner) != 1 || f.Banner[0] != "Email"+bannerEmailSuffix {
		t.Errorf("banner = %v", f.Banner)
	}

	email.SetValue("a@b.co")
	if !v.Validate("outlets", f) {
		t.Fatal("valid email should pass")
	}
}

func TestValidateEmailOptionalWhenBlank(t *testing.T) {
	v := New(nil, nil)
	f := outletForm()
	control(t, f, "code").SetValue("OUT-001")
	control(t, f, "name").SetValue("Mercado Central")

	if !v.Validate("outlets", f) {
		t.Fatal("blank optional email should not block")
	}
}

func TestValidateClearsPreviousErrors(t *testing.T) {
	v := New(nil, nil)
	f := outletForm()

	if v.Validate("outlets", f) {
		t.Fatal("precondition: blank form fails")
	}

	control(t, f, "code").SetValue("OUT-001")
	control(t, f, "name").SetValue("Mercado Central")
	if !v.Validate("outlets", f) {
		t.Fatal("re-validation should pass")
	}
	if control(t, f, "code").Invalid || f.BannerUp {
		t.Error("stale error state survived re-validation")
	}
}

func TestValidateUnknownFormTypePasses(t *testing.T) {
	v := New(nil, nil)
	f := outletForm()

	if !v.Validate("nonexistent", f) {
		t.Error("a form type with no rules has nothing to fail")
	}
}

func TestLabelFallsBackToFieldName(t *testing.T) {
	v := New(nil, nil)
	if got := v.Label("code"); got != "Código" {
		t.Errorf("Label(code) = %q", got)
	}
	if got := v.Label("mystery_field"); got != "mystery_field" {
		t.Errorf("Label(mystery_field) = %q", got)
	}
}

func TestLiveValidationOnBlur(t *testing.T) {
	v := New(nil, nil)
	f := outletForm()
	v.LiveValidation("outlets", f)

	code := control(t, f, "code")
	code.Blur()
	if !code.Invalid || code.InvalidMsg != msgRequired {
		t.Errorf("blank blur: invalid=%v msg=%q", code.Invalid, code.InvalidMsg)
	}

	code.Focus()
	if code.Invalid {
		t.Error("focus should clear the field error")
	}

	code.SetValue("OUT-001")
	code.Blur()
	if code.Invalid {
		t.Error("filled blur should clear")
	}

	email := control(t, f, "email")
	email.SetValue("nope")
	email.Blur()
	if !email.Invalid || email.InvalidMsg != msgEmail {
		t.Errorf("email blur: invalid=%v msg=%q", email.Invalid, email.InvalidMsg)
	}
	email.SetValue("a@b.co")
	email.Blur()
	if email.Invalid {
		t.Error("good email blur should clear")
	}
}

func TestCustomRulesAndLabels(t *testing.T) {
	v := New(
		map[string]entity.RuleSet{"things": {Required: []string{"title"}}},
		map[string]string{"title": "Título"},
	)
	f := uitest.NewForm(&uitest.Control{FieldName: "title", FieldKind: ui.KindText})

	if v.Validate("things", f) {
		t.Fatal("blank title must fail")
	}
	if len(f.Banner) != 1 || f.Banner[0] != "Título" {
		t.Errorf("banner = %v", f.Banner)
	}
}
