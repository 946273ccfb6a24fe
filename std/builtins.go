/*
File    : skai/std/builtins.go
Package : std
*/

// Package std registers skai's native built-in functions into a
// global environment. Each builtin is a function.Builtin wrapping a
// Go closure; registration happens once, at interpreter startup.
package std

import (
	"bufio"
	"fmt"
	"os"

	"github.com/akashmaji946/skai/environment"
	"github.com/akashmaji946/skai/function"
	"github.com/akashmaji946/skai/value"
)

var stdin = bufio.NewReader(os.Stdin)

// Register installs every built-in into env under its name, failing
// fast (panicking) on a name collision, which would indicate a bug in
// this package rather than anything a skai program can trigger.
func Register(env *environment.Environment) {
	all := concat(coreBuiltins(), mathBuiltins(), stringBuiltins(), arrayBuiltins())
	for _, b := range all {
		if err := env.Define(b.FnName, b, true); err != nil {
			panic(fmt.Sprintf("std: %s", err))
		}
	}
}

func concat(groups ...[]*function.Builtin) []*function.Builtin {
	var out []*function.Builtin
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func coreBuiltins() []*function.Builtin {
	return []*function.Builtin{
		{FnName: "print", Min: 1, Variadic: true, Fn: biPrint},
		{FnName: "prompt", Min: 1, Max: 1, Fn: biPrompt},
		{FnName: "type_of", Min: 1, Max: 1, Fn: biTypeOf},
	}
}

func biPrint(args []value.Value) (value.Value, error) {
	parts := make([]interface{}, len(args))
	for i, a := range args {
		parts[i] = value.Unwrap(a).String()
	}
	fmt.Println(parts...)
	return value.Null{}, nil
}

func biPrompt(args []value.Value) (value.Value, error) {
	s, ok := args[0].(value.String)
	if !ok {
		return nil, fmt.Errorf("prompt expects a string, got %s", args[0].Type())
	}
	fmt.Print(s.String())
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return value.String(""), nil
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return value.String(line), nil
}

func biTypeOf(args []value.Value) (value.Value, error) {
	return value.String(value.Unwrap(args[0]).Type()), nil
}
