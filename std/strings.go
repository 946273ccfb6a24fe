/*
File    : skai/std/strings.go
Package : std
*/
package std

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/skai/function"
	"github.com/akashmaji946/skai/value"
)

func stringBuiltins() []*function.Builtin {
	return []*function.Builtin{
		{FnName: "length", Min: 1, Max: 1, Fn: biLength},
		{FnName: "upper", Min: 1, Max: 1, Fn: biUpper},
		{FnName: "lower", Min: 1, Max: 1, Fn: biLower},
		{FnName: "trim", Min: 1, Max: 1, Fn: biTrim},
		{FnName: "split", Min: 2, Max: 2, Fn: biSplit},
		{FnName: "join", Min: 2, Max: 2, Fn: biJoin},
		{FnName: "contains", Min: 2, Max: 2, Fn: biContains},
		{FnName: "reverse", Min: 1, Max: 1, Fn: biReverse},
	}
}

func asString(v value.Value) (value.String, bool) {
	s, ok := value.Unwrap(v).(value.String)
	return s, ok
}

// biLength reports the rune-decoded length of a String, or the
// element count of an Array — the one builtin shared between the two
// sequence-shaped value types.
func biLength(args []value.Value) (value.Value, error) {
	switch v := value.Unwrap(args[0]).(type) {
	case value.String:
		return value.Integer(len([]rune(v.String()))), nil
	case value.Array:
		return value.Integer(len(*v.Elements)), nil
	default:
		return nil, fmt.Errorf("length expects string or array, got %s", v.Type())
	}
}

func biUpper(args []value.Value) (value.Value, error) {
	s, ok := asString(args[0])
	if !ok {
		return nil, fmt.Errorf("upper expects a string, got %s", args[0].Type())
	}
	return value.String(strings.ToUpper(s.String())), nil
}

func biLower(args []value.Value) (value.Value, error) {
	s, ok := asString(args[0])
	if !ok {
		return nil, fmt.Errorf("lower expects a string, got %s", args[0].Type())
	}
	return value.String(strings.ToLower(s.String())), nil
}

func biTrim(args []value.Value) (value.Value, error) {
	s, ok := asString(args[0])
	if !ok {
		return nil, fmt.Errorf("trim expects a string, got %s", args[0].Type())
	}
	return value.String(strings.TrimSpace(s.String())), nil
}

func biSplit(args []value.Value) (value.Value, error) {
	s, ok1 := asString(args[0])
	sep, ok2 := asString(args[1])
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("split expects two strings")
	}
	parts := strings.Split(s.String(), sep.String())
	elems := make([]value.Value, len(parts))
	for i, p := range parts {
		elems[i] = value.String(p)
	}
	return value.NewArray(elems), nil
}

func biJoin(args []value.Value) (value.Value, error) {
	arr, ok := value.Unwrap(args[0]).(value.Array)
	if !ok {
		return nil, fmt.Errorf("join expects an array as its first argument, got %s", args[0].Type())
	}
	sep, ok := asString(args[1])
	if !ok {
		return nil, fmt.Errorf("join expects a string separator")
	}
	parts := make([]string, len(*arr.Elements))
	for i, e := range *arr.Elements {
		parts[i] = value.Unwrap(e).String()
	}
	return value.String(strings.Join(parts, sep.String())), nil
}

func biContains(args []value.Value) (value.Value, error) {
	s, ok1 := asString(args[0])
	sub, ok2 := asString(args[1])
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("contains expects two strings")
	}
	return value.Bool(strings.Contains(s.String(), sub.String())), nil
}

func biReverse(args []value.Value) (value.Value, error) {
	s, ok := asString(args[0])
	if !ok {
		return nil, fmt.Errorf("reverse expects a string, got %s", args[0].Type())
	}
	runes := []rune(s.String())
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return value.String(string(runes)), nil
}
