/*
File    : skai/function/function.go
Package : function
*/

// Package function holds the callable values: user Function
// declarations carrying closures, native Builtins, and Class (the
// constructor callable bound under a class declaration's name).
package function

import (
	"fmt"

	"github.com/akashmaji946/skai/ast"
	"github.com/akashmaji946/skai/environment"
	"github.com/akashmaji946/skai/value"
)

// Function is a user-declared (or lambda) callable. It captures the
// defining environment by reference, so mutations visible through
// that environment at call time are whatever they are at the moment
// of the call, not frozen at declaration.
type Function struct {
	Decl     *ast.FunctionDecl
	Closure  *environment.Environment
	IsInit   bool
	Variadic bool
}

func New(decl *ast.FunctionDecl, closure *environment.Environment) *Function {
	return &Function{Decl: decl, Closure: closure, Variadic: decl.Variadic}
}

func (*Function) Type() string { return "function" }

func (f *Function) String() string {
	name := f.Decl.Name
	if name == "" {
		name = "<anonymous>"
	}
	return fmt.Sprintf("<function %s>", name)
}

func (f *Function) Name() string { return f.Decl.Name }

// MinArity is the count of parameters with no default expression.
func (f *Function) MinArity() int {
	n := 0
	for _, p := range f.Decl.Params {
		if p.Default == nil {
			n++
		}
	}
	return n
}

// MaxArity is the total declared parameter count.
func (f *Function) MaxArity() int { return len(f.Decl.Params) }

func (f *Function) IsVariadic() bool { return f.Variadic }

var _ value.Callable = (*Function)(nil)
