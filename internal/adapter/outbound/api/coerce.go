package api

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Field coercion rules for normalizing untrusted backend payloads. The
// backend returns numbers as strings, nulls where strings belong, and
// omits fields at will, so every list element is rebuilt field by field
// through exactly one of these rules:
//
//   - num/integer: numeric with 0 fallback
//   - str:         string with "" fallback
//   - strOr:       string with a declared default for enum-ish fields
//   - nullableStr: nil preserved when the field was not supplied
//   - count:       pagination counters, zero falls back to the default
//
// nullableStr vs str is a real distinction, not cosmetics: a nil phone
// number means the backend did not supply one, an empty string is a valid
// empty value.

// toNumber coerces a decoded JSON value to a number; anything
// unparseable becomes 0.
func toNumber(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	case bool:
		if t {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// toString coerces a decoded JSON value to a string. Absent, null, zero,
// and false all become "" so that downstream defaults apply uniformly.
func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == 0 {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return ""
	default:
		return ""
	}
}

func num(m map[string]any, key string) float64 {
	return toNumber(m[key])
}

func integer(m map[string]any, key string) int64 {
	return int64(toNumber(m[key]))
}

func str(m map[string]any, key string) string {
	return toString(m[key])
}

func strOr(m map[string]any, key, def string) string {
	if s := toString(m[key]); s != "" {
		return s
	}
	return def
}

// nullableStr preserves "field not supplied" as nil instead of "".
func nullableStr(m map[string]any, key string) *string {
	s := toString(m[key])
	if s == "" {
		return nil
	}
	return &s
}

// nullableNum preserves an absent or null numeric field as nil.
func nullableNum(m map[string]any, key string) *float64 {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	f := toNumber(v)
	return &f
}

// boolean coerces a flag field. The backend serializes flags as
// true/false, 1/0, or "1" depending on the route.
func boolean(m map[string]any, key string) bool {
	if b, ok := m[key].(bool); ok {
		return b
	}
	return toNumber(m[key]) != 0
}

// count recomputes a pagination counter; zero or garbage falls back to
// the declared default.
func count(m map[string]any, key string, def int) int {
	if n := int(toNumber(m[key])); n != 0 {
		return n
	}
	return def
}
