/*
File    : skai/std/arrays.go
Package : std
*/
package std

import (
	"fmt"
	"sort"

	"github.com/akashmaji946/skai/function"
	"github.com/akashmaji946/skai/value"
)

func arrayBuiltins() []*function.Builtin {
	return []*function.Builtin{
		{FnName: "push", Min: 2, Max: 2, Fn: biPush},
		{FnName: "pop", Min: 1, Max: 1, Fn: biPop},
		{FnName: "contains_array", Min: 2, Max: 2, Fn: biContainsArray},
		{FnName: "reverse_array", Min: 1, Max: 1, Fn: biReverseArray},
		{FnName: "sort_array", Min: 1, Max: 1, Fn: biSortArray},
	}
}

func asArray(v value.Value) (value.Array, bool) {
	a, ok := value.Unwrap(v).(value.Array)
	return a, ok
}

func biPush(args []value.Value) (value.Value, error) {
	arr, ok := asArray(args[0])
	if !ok {
		return nil, fmt.Errorf("push expects an array, got %s", args[0].Type())
	}
	*arr.Elements = append(*arr.Elements, value.Unwrap(args[1]))
	return arr, nil
}

func biPop(args []value.Value) (value.Value, error) {
	arr, ok := asArray(args[0])
	if !ok {
		return nil, fmt.Errorf("pop expects an array, got %s", args[0].Type())
	}
	elems := *arr.Elements
	if len(elems) == 0 {
		return nil, fmt.Errorf("pop: array is empty")
	}
	last := elems[len(elems)-1]
	*arr.Elements = elems[:len(elems)-1]
	return last, nil
}

func biContainsArray(args []value.Value) (value.Value, error) {
	arr, ok := asArray(args[0])
	if !ok {
		return nil, fmt.Errorf("contains_array expects an array, got %s", args[0].Type())
	}
	needle := value.Unwrap(args[1])
	for _, e := range *arr.Elements {
		if e.String() == needle.String() && e.Type() == needle.Type() {
			return value.Bool(true), nil
		}
	}
	return value.Bool(false), nil
}

func biReverseArray(args []value.Value) (value.Value, error) {
	arr, ok := asArray(args[0])
	if !ok {
		return nil, fmt.Errorf("reverse_array expects an array, got %s", args[0].Type())
	}
	src := *arr.Elements
	out := make([]value.Value, len(src))
	for i, e := range src {
		out[len(src)-1-i] = e
	}
	return value.NewArray(out), nil
}

func biSortArray(args []value.Value) (value.Value, error) {
	arr, ok := asArray(args[0])
	if !ok {
		return nil, fmt.Errorf("sort_array expects an array, got %s", args[0].Type())
	}
	src := *arr.Elements
	out := make([]value.Value, len(src))
	copy(out, src)

	var sortErr error
	sort.SliceStable(out, func(i, j int) bool {
		li, liOk := asFloat(out[i])
		lj, ljOk := asFloat(out[j])
		if liOk && ljOk {
			return li < lj
		}
		si, siOk := asString(out[i])
		sj, sjOk := asString(out[j])
		if siOk && sjOk {
			return si.String() < sj.String()
		}
		sortErr = fmt.Errorf("sort_array: elements must be all numbers or all strings")
		return false
	})
	if sortErr != nil {
		return nil, sortErr
	}
	return value.NewArray(out), nil
}
