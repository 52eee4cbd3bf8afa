package domain

import (
	"strconv"
	"strings"
)

// Record is one decoded line of a directory file. Keys are the Hebrew field
// names used by the sales team's sheets; nested groups decode as map[string]any.
// Records are shared read-only between queries and must never be mutated.
type Record map[string]any

// Get walks nested groups and returns the value at the path, or nil.
func (r Record) Get(path ...string) any {
	cur := any(map[string]any(r))
	for _, part := range path {
		obj, ok := asMap(cur)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// Str returns the string at path or "". Numbers are formatted so that
// numeric-string and numeric fields compare the same way.
func (r Record) Str(path ...string) string {
	switch v := r.Get(path...).(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	}
	return ""
}

// Group returns the nested group at key, or an empty Record.
func (r Record) Group(key string) Record {
	if m, ok := asMap(r.Get(key)); ok {
		return Record(m)
	}
	return Record{}
}

// Has reports whether key is present at the top level.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Bool applies the sheet's truthiness: false, "", 0 and missing are false.
func (r Record) Bool(path ...string) bool {
	switch v := r.Get(path...).(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	case int:
		return v != 0
	case map[string]any:
		return len(v) > 0
	case []any:
		return len(v) > 0
	}
	return true
}

// Float returns a number stored either as a JSON number or a numeric string
// ("8", "8.5", "8,5").
func (r Record) Float(path ...string) (float64, bool) {
	return toFloat(r.Get(path...))
}

// FloatOr is Float with a default for missing or non-numeric values.
func (r Record) FloatOr(def float64, path ...string) float64 {
	if f, ok := r.Float(path...); ok {
		return f
	}
	return def
}

// ValueOr returns the raw value at path, or def when it is missing.
func (r Record) ValueOr(def any, path ...string) any {
	if v := r.Get(path...); v != nil {
		return v
	}
	return def
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Record:
		return m, true
	}
	return nil, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(n, ",", "."))
		if s == "" {
			return 0, false
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
