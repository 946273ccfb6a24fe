/*
File    : skai/parser/parser_test.go
Package : parser
*/
package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/skai/ast"
	"github.com/akashmaji946/skai/lexer"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	l := lexer.New("test.sk", src)
	return Parse(l)
}

// shapeOpts allows cmp to walk every ast node's unexported embedded
// base{Loc} field. Re-parsing the identical source string twice
// yields identical locations too, so nothing needs to be ignored -
// every field, exported or not, must match.
var shapeOpts = cmp.AllowUnexported(
	ast.NumberLit{}, ast.FloatLit{}, ast.StringLit{}, ast.BoolLit{}, ast.NullLit{},
	ast.Identifier{}, ast.ArrayLit{}, ast.Binary{}, ast.Logical{}, ast.Unary{},
	ast.Assign{}, ast.Call{}, ast.Subscript{}, ast.Access{}, ast.Self{},
	ast.VarDecl{}, ast.If{}, ast.While{}, ast.For{}, ast.FunctionDecl{},
	ast.Return{}, ast.Break{}, ast.Continue{}, ast.Block{}, ast.ClassDecl{},
)

func TestParse_VarDecl(t *testing.T) {
	prog := parse(t, `let x = 1;`)
	assert.Len(t, prog, 1)
	decl, ok := prog[0].(*ast.VarDecl)
	assert.True(t, ok)
	assert.Equal(t, "x", decl.Name)
	assert.False(t, decl.Const)
	lit, ok := decl.Init.(*ast.NumberLit)
	assert.True(t, ok)
	assert.Equal(t, int64(1), lit.Value)
}

func TestParse_ImmVarDeclRequiresInitializer(t *testing.T) {
	assert.Panics(t, func() {
		parse(t, `let imm x;`)
	})
}

func TestParse_BinaryPrecedence(t *testing.T) {
	// "1 + 2 * 3" must parse as "1 + (2 * 3)".
	prog := parse(t, `1 + 2 * 3;`)
	bin := prog[0].(*ast.Binary)
	assert.Equal(t, lexer.PLUS, bin.Op)
	_, leftIsNumber := bin.Left.(*ast.NumberLit)
	assert.True(t, leftIsNumber)
	rightMul, ok := bin.Right.(*ast.Binary)
	assert.True(t, ok)
	assert.Equal(t, lexer.STAR, rightMul.Op)
}

func TestParse_AccessBindsTighterThanTerm(t *testing.T) {
	// "a.b + 1" must parse as "(a.b) + 1", not "a.(b + 1)" and not
	// a term-level interleaving of ".".
	prog := parse(t, `a.b + 1;`)
	bin := prog[0].(*ast.Binary)
	assert.Equal(t, lexer.PLUS, bin.Op)
	access, ok := bin.Left.(*ast.Access)
	assert.True(t, ok)
	obj, ok := access.Object.(*ast.Identifier)
	assert.True(t, ok)
	assert.Equal(t, "a", obj.Name)
}

func TestParse_AssignmentIsRightAssociative(t *testing.T) {
	prog := parse(t, `a = b = 1;`)
	outer := prog[0].(*ast.Assign)
	assert.Equal(t, lexer.ASSIGN, outer.Op)
	inner, ok := outer.Value.(*ast.Assign)
	assert.True(t, ok)
	assert.Equal(t, lexer.ASSIGN, inner.Op)
}

func TestParse_CompoundAssignTargetMustBeAssignable(t *testing.T) {
	assert.Panics(t, func() {
		parse(t, `1 += 2;`)
	})
}

func TestParse_IfElse(t *testing.T) {
	prog := parse(t, `if (true) { 1; } else { 2; }`)
	ifStmt := prog[0].(*ast.If)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestParse_ForLoopThreeClauses(t *testing.T) {
	prog := parse(t, `for let i = 0; i < 10; i += 1 { print(i); }`)
	forStmt := prog[0].(*ast.For)
	assert.NotNil(t, forStmt.Init)
	assert.NotNil(t, forStmt.Cond)
	assert.NotNil(t, forStmt.Step)
}

func TestParse_FunctionDeclWithDefaultArgument(t *testing.T) {
	prog := parse(t, `fnc greet(name, greeting = "hi") { return greeting; }`)
	fn := prog[0].(*ast.FunctionDecl)
	assert.Equal(t, "greet", fn.Name)
	assert.Len(t, fn.Params, 2)
	assert.Nil(t, fn.Params[0].Default)
	assert.NotNil(t, fn.Params[1].Default)
	assert.False(t, fn.Variadic)
}

func TestParse_LambdaIsAnonymousFunctionDecl(t *testing.T) {
	prog := parse(t, `let f = lm (x) { return x; };`)
	decl := prog[0].(*ast.VarDecl)
	lambda, ok := decl.Init.(*ast.FunctionDecl)
	assert.True(t, ok)
	assert.Equal(t, "", lambda.Name)
	assert.Len(t, lambda.Params, 1)
}

func TestParse_ClassWithInit(t *testing.T) {
	prog := parse(t, `class Point { fnc init(x, y) { self.x = x; self.y = y; } }`)
	cls := prog[0].(*ast.ClassDecl)
	assert.Equal(t, "Point", cls.Name)
	assert.Len(t, cls.Members, 1)
	assert.Equal(t, "init", cls.Members[0].Name)
}

func TestParse_CallAndSubscriptChain(t *testing.T) {
	prog := parse(t, `f(1, 2)[0];`)
	sub := prog[0].(*ast.Subscript)
	call, ok := sub.Object.(*ast.Call)
	assert.True(t, ok)
	assert.Len(t, call.Args, 2)
}

// TestParse_StructuralRoundTrip exercises the testable property that
// parsing the same well-formed program twice yields structurally
// equivalent ASTs (source locations included, see shapeOpts).
func TestParse_StructuralRoundTrip(t *testing.T) {
	src := `
		fnc fib(n) {
			if (n < 2) { return n; }
			return fib(n - 1) + fib(n - 2);
		}
		let imm x = fib(10);
	`
	first := parse(t, src)
	second := parse(t, src)
	if diff := cmp.Diff(first, second, shapeOpts); diff != "" {
		t.Fatalf("re-parsing the same source produced a different AST shape (-first +second):\n%s", diff)
	}
}
