package core

import (
	"strconv"
	"strings"
)

// ParseAnyFloat parses a numeric value from common loose forms. Returns false
// when the value has no numeric interpretation.
//
// Notes on string handling:
//   - strings are trimmed before parsing, so " 42 " parses as 42.
//   - strings that merely start with digits ("5a") do not parse; the whole
//     token must be numeric.
func ParseAnyFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint64:
		return float64(t), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// AsAnyMap converts supported map forms into map[string]any. Returns nil for
// unsupported inputs. For map[string]any inputs this returns the input
// unchanged, not a copy.
func AsAnyMap(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, vv := range m {
			s, ok := k.(string)
			if !ok {
				return nil
			}
			out[s] = vv
		}
		return out
	default:
		return nil
	}
}

// CloneAnyMap returns a shallow copy of m, or nil when m is nil.
func CloneAnyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
