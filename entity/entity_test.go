package entity

import (
	"testing"
	"time"
)

func TestRecordString(t *testing.T) {
	rec := Record{
		"name":    "Mercado Central",
		"lat":     -23.55,
		"count":   float64(12),
		"smart":   true,
		"missing": nil,
	}

	cases := []struct {
		key  string
		want string
	}{
		{"name", "Mercado Central"},
		{"lat", "-23.55"},
		{"count", "12"},
		{"smart", "true"},
		{"missing", ""},
		{"absent", ""},
	}
	for _, tc := range cases {
		if got := rec.String(tc.key); got != tc.want {
			t.Errorf("String(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestRecordBool(t *testing.T) {
	rec := Record{"a": true, "b": false, "c": "true", "d": nil}
	if !rec.Bool("a") {
		t.Error("a should be true")
	}
	for _, key := range []string{"b", "c", "d", "absent"} {
		if rec.Bool(key) {
			t.Errorf("%q should be false", key)
		}
	}
}

func TestRecordTime(t *testing.T) {
	rec := Record{
		"iso":   "2024-03-05T14:30:00Z",
		"plain": "2024-03-05 14:30:00",
		"date":  "2024-03-05",
		"junk":  "not-a-date",
		"blank": "",
	}

	got, ok := rec.Time("iso")
	if !ok {
		t.Fatal("iso should parse")
	}
	want := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("iso = %v, want %v", got, want)
	}

	if _, ok := rec.Time("plain"); !ok {
		t.Error("plain layout should parse")
	}
	if _, ok := rec.Time("date"); !ok {
		t.Error("date layout should parse")
	}
	for _, key := range []string{"junk", "blank", "absent"} {
		if _, ok := rec.Time(key); ok {
			t.Errorf("%q should not parse", key)
		}
	}
}

func TestEscapeIDRoundTrip(t *testing.T) {
	ids := []string{
		"AA:BB:CC:DD:EE:FF",
		"SER/2024-0001",
		"code with spaces",
		"100%",
		"plain",
	}
	for _, id := range ids {
		esc := EscapeID(id)
		if got := UnescapeID(esc); got != id {
			t.Errorf("round trip of %q: escaped %q, decoded %q", id, esc, got)
		}
	}

	// A slash would split the path segment in two if left unescaped.
	if got := EscapeID("SER/2024-0001"); got != "SER%2F2024-0001" {
		t.Errorf("EscapeID(SER/2024-0001) = %q", got)
	}
}

func TestUnescapeIDBadInput(t *testing.T) {
	// A value that never went through EscapeID comes back unchanged.
	if got := UnescapeID("50%"); got != "50%" {
		t.Errorf("UnescapeID(50%%) = %q", got)
	}
}

func TestBuiltinConfigs(t *testing.T) {
	for _, cfg := range []TypeConfig{Assets, Outlets, SmartDevices, Users} {
		if cfg.BaseURL == "" || cfg.Name == "" || cfg.PluralName == "" || cfg.IdentityKey == "" {
			t.Errorf("%s: incomplete config", cfg.PluralName)
		}
		if len(cfg.ViewFields) == 0 {
			t.Errorf("%s: no view fields", cfg.PluralName)
		}
		if _, ok := DefaultRules[cfg.PluralName]; !ok {
			t.Errorf("%s: no validation rules", cfg.PluralName)
		}
	}

	// The identity field must be a required one; a blank identity can
	// never be used to build a detail URL.
	for _, cfg := range []TypeConfig{Assets, Outlets, SmartDevices, Users} {
		rules := DefaultRules[cfg.PluralName]
		found := false
		for _, f := range rules.Required {
			if f == cfg.IdentityKey {
				found = true
			}
		}
		if !found {
			t.Errorf("%s: identity %q is not required", cfg.PluralName, cfg.IdentityKey)
		}
	}
}
