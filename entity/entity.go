package entity

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Record is one entity as returned by the backend: field name to scalar
// value. No schema is enforced on this side; the backend is the source
// of truth. Values arrive as the JSON decoder leaves them (string,
// float64, bool, nil).
type Record map[string]any

// String returns the field rendered as a string, or "" when the field
// is absent or null.
func (r Record) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Bool returns the field as a boolean; absent, null and non-boolean
// values count as false.
func (r Record) Bool(key string) bool {
	b, _ := r[key].(bool)
	return b
}

// Time parses the field as an ISO-8601 timestamp. ok is false when the
// field is absent, blank or unparseable.
func (r Record) Time(key string) (time.Time, bool) {
	s := r.String(key)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ViewField is one row of the read-only detail grid.
type ViewField struct {
	Label string
	Key   string
	// Type selects value formatting: "", "boolean", "date" or "percent".
	Type string
}

// RuleSet lists the client-side validation rules for one form.
type RuleSet struct {
	Required []string
	Email    []string
}

// TypeConfig is the immutable per-entity-type description. Built once
// at startup and never mutated.
type TypeConfig struct {
	BaseURL     string
	Name        string // display name, e.g. "Outlet"
	PluralName  string // URL segment and rule key, e.g. "outlets"
	IdentityKey string

	TextFields    []string
	NumberFields  []string
	BooleanFields []string

	ViewFields []ViewField
}

// EscapeID percent-encodes an identity value for use as a URL path
// segment. Identity values may contain reserved characters (a MAC
// address with colons, a serial with slashes).
func EscapeID(id string) string {
	return url.PathEscape(id)
}

// UnescapeID reverses EscapeID. Values that fail to decode are returned
// as-is so a lookup still has something to work with.
func UnescapeID(id string) string {
	s, err := url.PathUnescape(id)
	if err != nil {
		return id
	}
	return s
}

// Blank reports whether the value is empty after trimming whitespace.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
