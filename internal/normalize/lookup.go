// Package normalize maps loosely keyed export records onto the internal
// player and game schema.
package normalize

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/tables"
)

// Lookup returns the first alias whose value is present and non-empty,
// rendered as a string. It returns "" when no alias matches.
func Lookup(rec tables.Record, keys ...string) string {
	for _, key := range keys {
		if s, ok := stringValue(rec[key]); ok && s != "" {
			return s
		}
	}
	return ""
}

// LookupFloat returns the first alias holding a numeric value. Strings are
// parsed after trimming whitespace and a trailing percent sign. It returns
// nil when nothing numeric is found, so callers can tell "not reported"
// apart from zero.
func LookupFloat(rec tables.Record, keys ...string) *float64 {
	for _, key := range keys {
		if f, ok := floatValue(rec[key]); ok {
			return &f
		}
	}
	return nil
}

// ParseRank parses a rank label into an integer. Non-numeric or empty input
// yields nil rather than a zero sentinel.
func ParseRank(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return &n
	}
	// Exports sometimes carry ranks as "12.0".
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f == float64(int(f)) {
		n := int(f)
		return &n
	}
	return nil
}

// Nested returns rec[key] as a record when it holds an object.
func Nested(rec tables.Record, key string) (tables.Record, bool) {
	switch v := rec[key].(type) {
	case tables.Record:
		return v, true
	case map[string]any:
		return tables.Record(v), true
	default:
		return nil, false
	}
}

func stringValue(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), true
	case bool:
		return strconv.FormatBool(val), true
	case map[string]any, tables.Record, []any:
		return "", false
	default:
		return fmt.Sprint(val), true
	}
}

func floatValue(v any) (float64, bool) {
	switch val := v.(type) {
	case nil:
		return 0, false
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case string:
		s := strings.TrimSuffix(strings.TrimSpace(val), "%")
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
