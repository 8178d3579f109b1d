// Package shape checks untyped filter input (the result of decoding YAML or
// JSON into interface values) at the boundary of each filter and converts it
// into concrete Go values. Every failure is a *domain.InputError carrying the
// path of the offending value.
package shape

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lite-lake/infra-dnsfilters/internal/domain"
)

// Kind names the dynamic type of v the way it would read in YAML.
func Kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "sequence"
	case map[string]any, map[any]any:
		return "mapping"
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "int"
	case float32, float64:
		return "float"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func Index(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

func Key(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func List(v any, path string) ([]any, error) {
	l, ok := v.([]any)
	if !ok {
		return nil, domain.Invalidf(path, "expected sequence, got %s", Kind(v))
	}
	return l, nil
}

// Map accepts both map[string]any (yaml.v3, encoding/json) and map[any]any
// with string keys.
func Map(v any, path string) (map[string]any, error) {
	switch m := v.(type) {
	case map[string]any:
		return m, nil
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, domain.Invalidf(path, "mapping key %v is %s, expected string", k, Kind(k))
			}
			out[ks] = val
		}
		return out, nil
	default:
		return nil, domain.Invalidf(path, "expected mapping, got %s", Kind(v))
	}
}

// Scalar renders a string, number or bool as a string.
func Scalar(v any, path string) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(s), nil
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), nil
	default:
		return "", domain.Invalidf(path, "expected scalar, got %s", Kind(v))
	}
}

// String returns the required string field key of m.
func String(m map[string]any, key, path string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", domain.NewInputError(Key(path, key), "missing key", domain.RequiredField(key))
	}
	s, ok := v.(string)
	if !ok {
		return "", domain.Invalidf(Key(path, key), "expected string, got %s", Kind(v))
	}
	return s, nil
}

// Int converts integral numbers and decimal strings.
func Int(v any, path string) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint:
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, domain.Invalidf(path, "integer %d out of range", n)
		}
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, domain.Invalidf(path, "expected integer, got %v", n)
		}
		return int(n), nil
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, domain.NewInputError(path, "expected integer", err)
		}
		return i, nil
	default:
		return 0, domain.Invalidf(path, "expected integer, got %s", Kind(v))
	}
}

// OptionalInt returns def when key is absent or null.
func OptionalInt(m map[string]any, key, path string, def int) (int, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return def, nil
	}
	return Int(v, Key(path, key))
}
