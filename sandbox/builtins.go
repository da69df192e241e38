package sandbox

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// builtins is the complete allow-list of callable primitives. Everything
// here is pure except print, which writes to the environment's in-memory
// sink, and panic, which raises a classified failure. There is nothing
// side-effecting beyond that to expose.
type builtinFn func(in *interp, name string, args []Value) (Value, error)

var builtins = map[string]builtinFn{
	"len":      builtinLen,
	"append":   builtinAppend,
	"delete":   builtinDelete,
	"print":    builtinPrint,
	"panic":    builtinPanic,
	"abs":      builtinAbs,
	"min":      builtinMin,
	"max":      builtinMax,
	"sum":      builtinSum,
	"sorted":   builtinSorted,
	"reversed": builtinReversed,
	"contains": builtinContains,
	"str":      builtinStr,
	"int":      builtinInt,
	"float":    builtinFloat,
	"bool":     builtinBool,
	"round":    builtinRound,
	"pow":      builtinPow,
}

// BuiltinNames lists the allow-listed primitives, for documentation and
// diagnostics.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func wantArgs(name string, args []Value, n int) error {
	if len(args) != n {
		return typeErr("%s() takes %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

func builtinLen(_ *interp, name string, args []Value) (Value, error) {
	if err := wantArgs(name, args, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case string:
		return int64(len(v)), nil
	case []Value:
		return int64(len(v)), nil
	case map[Value]Value:
		return int64(len(v)), nil
	default:
		return nil, typeErr("len() does not support %s", TypeName(v))
	}
}

func builtinAppend(_ *interp, name string, args []Value) (Value, error) {
	if len(args) < 1 {
		return nil, typeErr("%s() takes at least 1 argument", name)
	}
	list, ok := args[0].([]Value)
	if !ok {
		return nil, typeErr("append() requires a list, got %s", TypeName(args[0]))
	}
	out := make([]Value, 0, len(list)+len(args)-1)
	out = append(out, list...)
	out = append(out, args[1:]...)
	return out, nil
}

func builtinDelete(_ *interp, name string, args []Value) (Value, error) {
	if err := wantArgs(name, args, 2); err != nil {
		return nil, err
	}
	m, ok := args[0].(map[Value]Value)
	if !ok {
		return nil, typeErr("delete() requires a map, got %s", TypeName(args[0]))
	}
	if err := checkMapKey(args[1]); err != nil {
		return nil, err
	}
	delete(m, args[1])
	return None, nil
}

func builtinPrint(in *interp, _ string, args []Value) (Value, error) {
	parts := make([]string, len(args))
	for i, v := range args {
		parts[i] = display(v)
	}
	in.env.capturePrint(strings.Join(parts, " "))
	return None, nil
}

func builtinPanic(_ *interp, _ string, args []Value) (Value, error) {
	detail := "panic"
	if len(args) > 0 {
		detail = "panic: " + display(args[0])
	}
	return nil, otherErr("%s", detail)
}

func builtinAbs(_ *interp, name string, args []Value) (Value, error) {
	if err := wantArgs(name, args, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case int64:
		if v < 0 {
			return -v, nil
		}
		return v, nil
	case float64:
		return math.Abs(v), nil
	default:
		return nil, typeErr("abs() requires a number, got %s", TypeName(v))
	}
}

func builtinMin(_ *interp, name string, args []Value) (Value, error) {
	return pickExtreme(name, args, true)
}

func builtinMax(_ *interp, name string, args []Value) (Value, error) {
	return pickExtreme(name, args, false)
}

func pickExtreme(name string, args []Value, less bool) (Value, error) {
	items := args
	if len(args) == 1 {
		list, ok := args[0].([]Value)
		if !ok {
			return nil, typeErr("%s() with one argument requires a list, got %s", name, TypeName(args[0]))
		}
		items = list
	}
	if len(items) == 0 {
		return nil, typeErr("%s() of an empty sequence", name)
	}
	best := items[0]
	for _, v := range items[1:] {
		cmp, err := orderedLess(v, best)
		if err != nil {
			return nil, err
		}
		if cmp == less {
			best = v
		}
	}
	return best, nil
}

// orderedLess compares two values for the ordered builtins. Ints and
// floats compare numerically, strings lexicographically.
func orderedLess(a, b Value) (bool, error) {
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		if !ok {
			return false, typeErr("cannot compare str with %s", TypeName(b))
		}
		return as < bs, nil
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return false, typeErr("cannot compare %s with %s", TypeName(a), TypeName(b))
	}
	return af < bf, nil
}

func builtinSum(_ *interp, name string, args []Value) (Value, error) {
	if err := wantArgs(name, args, 1); err != nil {
		return nil, err
	}
	list, ok := args[0].([]Value)
	if !ok {
		return nil, typeErr("sum() requires a list, got %s", TypeName(args[0]))
	}
	intTotal := int64(0)
	floatTotal := float64(0)
	sawFloat := false
	for _, v := range list {
		switch n := v.(type) {
		case int64:
			intTotal += n
			floatTotal += float64(n)
		case float64:
			sawFloat = true
			floatTotal += n
		default:
			return nil, typeErr("sum() requires numbers, got %s", TypeName(v))
		}
	}
	if sawFloat {
		return floatTotal, nil
	}
	return intTotal, nil
}

func builtinSorted(_ *interp, name string, args []Value) (Value, error) {
	if err := wantArgs(name, args, 1); err != nil {
		return nil, err
	}
	list, ok := args[0].([]Value)
	if !ok {
		return nil, typeErr("sorted() requires a list, got %s", TypeName(args[0]))
	}
	out := make([]Value, len(list))
	copy(out, list)
	var sortErr error
	sort.SliceStable(out, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		lt, err := orderedLess(out[i], out[j])
		if err != nil {
			sortErr = err
			return false
		}
		return lt
	})
	if sortErr != nil {
		return nil, sortErr
	}
	return out, nil
}

func builtinReversed(_ *interp, name string, args []Value) (Value, error) {
	if err := wantArgs(name, args, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case []Value:
		out := make([]Value, len(v))
		for i, e := range v {
			out[len(v)-1-i] = e
		}
		return out, nil
	case string:
		runes := []rune(v)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return string(runes), nil
	default:
		return nil, typeErr("reversed() requires a list or str, got %s", TypeName(v))
	}
}

func builtinContains(_ *interp, name string, args []Value) (Value, error) {
	if err := wantArgs(name, args, 2); err != nil {
		return nil, err
	}
	switch c := args[0].(type) {
	case string:
		s, ok := args[1].(string)
		if !ok {
			return nil, typeErr("contains() on a str requires a str, got %s", TypeName(args[1]))
		}
		return strings.Contains(c, s), nil
	case []Value:
		for _, v := range c {
			if Equal(v, args[1]) {
				return true, nil
			}
		}
		return false, nil
	case map[Value]Value:
		if err := checkMapKey(args[1]); err != nil {
			return nil, err
		}
		_, ok := c[args[1]]
		return ok, nil
	default:
		return nil, typeErr("contains() does not support %s", TypeName(c))
	}
}

func builtinStr(_ *interp, name string, args []Value) (Value, error) {
	if err := wantArgs(name, args, 1); err != nil {
		return nil, err
	}
	return display(args[0]), nil
}

func builtinInt(_ *interp, name string, args []Value) (Value, error) {
	if err := wantArgs(name, args, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	case bool:
		if v {
			return int64(1), nil
		}
		return int64(0), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, otherErr("int(): invalid literal %q", v)
		}
		return n, nil
	default:
		return nil, typeErr("int() does not support %s", TypeName(v))
	}
}

func builtinFloat(_ *interp, name string, args []Value) (Value, error) {
	if err := wantArgs(name, args, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, otherErr("float(): invalid literal %q", v)
		}
		return f, nil
	default:
		return nil, typeErr("float() does not support %s", TypeName(v))
	}
}

func builtinBool(_ *interp, name string, args []Value) (Value, error) {
	if err := wantArgs(name, args, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case bool:
		return v, nil
	case int64:
		return v != 0, nil
	case float64:
		return v != 0, nil
	case string:
		return v != "", nil
	case []Value:
		return len(v) > 0, nil
	case map[Value]Value:
		return len(v) > 0, nil
	case noneValue:
		return false, nil
	default:
		return nil, typeErr("bool() does not support %s", TypeName(v))
	}
}

func builtinRound(_ *interp, name string, args []Value) (Value, error) {
	if err := wantArgs(name, args, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case int64:
		return v, nil
	case float64:
		return int64(math.Round(v)), nil
	default:
		return nil, typeErr("round() requires a number, got %s", TypeName(v))
	}
}

func builtinPow(_ *interp, name string, args []Value) (Value, error) {
	if err := wantArgs(name, args, 2); err != nil {
		return nil, err
	}
	ai, aInt := args[0].(int64)
	bi, bInt := args[1].(int64)
	if aInt && bInt && bi >= 0 {
		result := int64(1)
		for i := int64(0); i < bi; i++ {
			result *= ai
		}
		return result, nil
	}
	af, aok := toFloat(args[0])
	bf, bok := toFloat(args[1])
	if !aok || !bok {
		return nil, typeErr("pow() requires numbers, got %s and %s",
			TypeName(args[0]), TypeName(args[1]))
	}
	return math.Pow(af, bf), nil
}

// display renders a value the way print and str see it: strings bare,
// everything else in literal notation.
func display(v Value) string {
	if s, ok := v.(string); ok {
		return s
	}
	return Repr(v)
}
