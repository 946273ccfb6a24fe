/*
File    : skai/std/math.go
Package : std
*/
package std

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/akashmaji946/skai/function"
	"github.com/akashmaji946/skai/value"
)

func mathBuiltins() []*function.Builtin {
	return []*function.Builtin{
		{FnName: "time", Min: 0, Max: 0, Fn: biTime},
		{FnName: "sleep", Min: 1, Max: 1, Fn: biSleep},
		{FnName: "random", Min: 2, Max: 2, Fn: biRandom},
		{FnName: "pow", Min: 2, Max: 2, Fn: biPow},
		{FnName: "abs", Min: 1, Max: 1, Fn: biAbs},
		{FnName: "sqrt", Min: 1, Max: 1, Fn: biSqrt},
		{FnName: "floor", Min: 1, Max: 1, Fn: biFloor},
		{FnName: "ceil", Min: 1, Max: 1, Fn: biCeil},
		{FnName: "min", Min: 2, Max: 2, Fn: biMin},
		{FnName: "max", Min: 2, Max: 2, Fn: biMax},
	}
}

func biTime(args []value.Value) (value.Value, error) {
	return value.Float(float64(time.Now().UnixNano()) / 1e9), nil
}

func biSleep(args []value.Value) (value.Value, error) {
	ms, ok := args[0].(value.Integer)
	if !ok {
		return nil, fmt.Errorf("sleep expects an integer, got %s", args[0].Type())
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
	return value.Null{}, nil
}

func biRandom(args []value.Value) (value.Value, error) {
	lo, ok1 := args[0].(value.Integer)
	hi, ok2 := args[1].(value.Integer)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("random expects two integers")
	}
	if hi < lo {
		return nil, fmt.Errorf("random: hi (%d) must not be less than lo (%d)", hi, lo)
	}
	return lo + value.Integer(rand.Int63n(int64(hi-lo)+1)), nil
}

func biPow(args []value.Value) (value.Value, error) {
	base, ok1 := args[0].(value.Integer)
	exp, ok2 := args[1].(value.Integer)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("pow expects two integers")
	}
	if exp < 0 {
		return nil, fmt.Errorf("pow: negative exponent not supported for integer exponentiation")
	}
	result := int64(1)
	for i := int64(0); i < int64(exp); i++ {
		result *= int64(base)
	}
	return value.Integer(result), nil
}

func biAbs(args []value.Value) (value.Value, error) {
	switch v := value.Unwrap(args[0]).(type) {
	case value.Integer:
		if v < 0 {
			return -v, nil
		}
		return v, nil
	case value.Float:
		return value.Float(math.Abs(float64(v))), nil
	default:
		return nil, fmt.Errorf("abs expects integer or float, got %s", v.Type())
	}
}

func asFloat(v value.Value) (float64, bool) {
	switch t := value.Unwrap(v).(type) {
	case value.Integer:
		return float64(t), true
	case value.Float:
		return float64(t), true
	default:
		return 0, false
	}
}

func biSqrt(args []value.Value) (value.Value, error) {
	f, ok := asFloat(args[0])
	if !ok {
		return nil, fmt.Errorf("sqrt expects a number, got %s", args[0].Type())
	}
	return value.Float(math.Sqrt(f)), nil
}

func biFloor(args []value.Value) (value.Value, error) {
	f, ok := asFloat(args[0])
	if !ok {
		return nil, fmt.Errorf("floor expects a number, got %s", args[0].Type())
	}
	return value.Float(math.Floor(f)), nil
}

func biCeil(args []value.Value) (value.Value, error) {
	f, ok := asFloat(args[0])
	if !ok {
		return nil, fmt.Errorf("ceil expects a number, got %s", args[0].Type())
	}
	return value.Float(math.Ceil(f)), nil
}

func biMin(args []value.Value) (value.Value, error) {
	a, ok1 := asFloat(args[0])
	b, ok2 := asFloat(args[1])
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("min expects two numbers")
	}
	if a <= b {
		return args[0], nil
	}
	return args[1], nil
}

func biMax(args []value.Value) (value.Value, error) {
	a, ok1 := asFloat(args[0])
	b, ok2 := asFloat(args[1])
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("max expects two numbers")
	}
	if a >= b {
		return args[0], nil
	}
	return args[1], nil
}
