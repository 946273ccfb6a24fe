/*
File    : skai/function/class.go
Package : function
*/
package function

import (
	"fmt"

	"github.com/akashmaji946/skai/ast"
	"github.com/akashmaji946/skai/environment"
	"github.com/akashmaji946/skai/value"
)

// Class is the callable bound under a class declaration's name;
// calling it instantiates a new object (package eval performs the
// actual instantiation, since it already owns the call/invoke
// machinery needed to run `init`).
type Class struct {
	Decl    *ast.ClassDecl
	Closure *environment.Environment
}

func NewClass(decl *ast.ClassDecl, closure *environment.Environment) *Class {
	return &Class{Decl: decl, Closure: closure}
}

func (*Class) Type() string { return "class" }

func (c *Class) String() string { return fmt.Sprintf("<class %s>", c.Decl.Name) }

func (c *Class) Name() string { return c.Decl.Name }

// Init returns the class's constructor method, or nil if it declares none.
func (c *Class) Init() *ast.FunctionDecl {
	for _, m := range c.Decl.Members {
		if m.Name == "init" {
			return m
		}
	}
	return nil
}

func (c *Class) MinArity() int {
	if init := c.Init(); init != nil {
		return (&Function{Decl: init}).MinArity()
	}
	return 0
}

func (c *Class) MaxArity() int {
	if init := c.Init(); init != nil {
		return (&Function{Decl: init}).MaxArity()
	}
	return 0
}

func (c *Class) IsVariadic() bool { return false }

var _ value.Callable = (*Class)(nil)
