/*
File    : skai/function/function_test.go
Package : function
*/
package function

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/skai/ast"
	"github.com/akashmaji946/skai/environment"
	"github.com/akashmaji946/skai/lexer"
	"github.com/akashmaji946/skai/sloc"
	"github.com/akashmaji946/skai/value"
)

func TestFunctionArity_RequiredAndDefaulted(t *testing.T) {
	decl := &ast.FunctionDecl{
		Name: "greet",
		Params: []*ast.Argument{
			{Name: "name"},
			{Name: "greeting", Default: ast.NewStringLit(sloc.Location{}, "hi")},
		},
	}
	fn := New(decl, environment.New())
	assert.Equal(t, 1, fn.MinArity())
	assert.Equal(t, 2, fn.MaxArity())
	assert.False(t, fn.IsVariadic())
	assert.Equal(t, "greet", fn.Name())
}

func TestFunctionString_AnonymousVersusNamed(t *testing.T) {
	named := New(&ast.FunctionDecl{Name: "f"}, environment.New())
	assert.Equal(t, "<function f>", named.String())

	anon := New(&ast.FunctionDecl{Name: ""}, environment.New())
	assert.Equal(t, "<function <anonymous>>", anon.String())
}

func TestBuiltinArityAndCall(t *testing.T) {
	b := &Builtin{
		FnName: "add",
		Min:    2,
		Max:    2,
		Fn: func(args []value.Value) (value.Value, error) {
			return value.Binary(lexer.PLUS, args[0], args[1])
		},
	}
	assert.Equal(t, 2, b.MinArity())
	assert.Equal(t, 2, b.MaxArity())
	assert.Equal(t, "<builtin add>", b.String())

	result, err := b.Call([]value.Value{value.Integer(1), value.Integer(2)})
	assert.NoError(t, err)
	assert.Equal(t, value.Integer(3), result)
}

func TestClassInitArity(t *testing.T) {
	init := &ast.FunctionDecl{
		Name: "init",
		Params: []*ast.Argument{
			{Name: "x"},
			{Name: "y"},
		},
	}
	decl := &ast.ClassDecl{Name: "Point", Members: []*ast.FunctionDecl{init}}
	cls := NewClass(decl, environment.New())
	assert.Equal(t, 2, cls.MinArity())
	assert.Equal(t, 2, cls.MaxArity())
	assert.False(t, cls.IsVariadic())
	assert.Equal(t, init, cls.Init())
}

func TestClassWithoutInitHasZeroArity(t *testing.T) {
	decl := &ast.ClassDecl{Name: "Empty"}
	cls := NewClass(decl, environment.New())
	assert.Nil(t, cls.Init())
	assert.Equal(t, 0, cls.MinArity())
	assert.Equal(t, 0, cls.MaxArity())
}
