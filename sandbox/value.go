package sandbox

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Value is a value of the restricted dialect. Concrete representations:
// int64, float64, string, bool, []Value (list), map[Value]Value (map with
// int64/float64/string/bool keys), None and *Func.
type Value = any

type noneValue struct{}

// None is the "no value" marker produced by a function that returns
// nothing. It is distinct from every value a test case can expect.
var None Value = noneValue{}

// IsNone reports whether v is the no-value marker.
func IsNone(v Value) bool {
	_, ok := v.(noneValue)
	return ok
}

// TypeName returns the dialect-level type name used in diagnostics.
func TypeName(v Value) string {
	switch v.(type) {
	case int64:
		return "int"
	case float64:
		return "float"
	case string:
		return "str"
	case bool:
		return "bool"
	case []Value:
		return "list"
	case map[Value]Value:
		return "map"
	case noneValue:
		return "none"
	case *Func:
		return "func"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Equal compares two values by exact, type-strict deep equality.
// An int and a float never compare equal even when numerically identical;
// the harness surfaces that as a type mismatch instead.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case []Value:
		bv, ok := b.([]Value)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[Value]Value:
		bv, ok := b.(map[Value]Value)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bval, ok := bv[k]
			if !ok || !Equal(v, bval) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// Repr renders a value for diagnostics. Strings are quoted, lists and maps
// use a literal-like notation, map keys are emitted in sorted order so the
// output is deterministic.
func Repr(v Value) string {
	switch val := v.(type) {
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case string:
		return strconv.Quote(val)
	case bool:
		return strconv.FormatBool(val)
	case noneValue:
		return "none"
	case []Value:
		parts := make([]string, len(val))
		for i, e := range val {
			parts[i] = Repr(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[Value]Value:
		keys := make([]Value, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			return Repr(keys[i]) < Repr(keys[j])
		})
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = Repr(k) + ": " + Repr(val[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *Func:
		return "func " + val.name
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FromGo converts a caller-supplied Go value (typically decoded from JSON
// or TOML) into a dialect value. json.Number distinguishes ints from
// floats by lexical form so that an expected value of 5 and one of 5.0
// remain different.
func FromGo(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return None, nil
	case bool, string, int64, float64:
		return val, nil
	case int:
		return int64(val), nil
	case int32:
		return int64(val), nil
	case uint64:
		return int64(val), nil
	case float32:
		return float64(val), nil
	case json.Number:
		s := val.String()
		if strings.ContainsAny(s, ".eE") {
			return val.Float64()
		}
		return val.Int64()
	case []any:
		list := make([]Value, len(val))
		for i, e := range val {
			conv, err := FromGo(e)
			if err != nil {
				return nil, err
			}
			list[i] = conv
		}
		return list, nil
	case map[string]any:
		m := make(map[Value]Value, len(val))
		for k, e := range val {
			conv, err := FromGo(e)
			if err != nil {
				return nil, err
			}
			m[k] = conv
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}
