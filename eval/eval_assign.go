/*
File    : skai/eval/eval_assign.go
Package : eval
*/
package eval

import (
	"github.com/akashmaji946/skai/ast"
	"github.com/akashmaji946/skai/environment"
	"github.com/akashmaji946/skai/interp"
	"github.com/akashmaji946/skai/lexer"
	"github.com/akashmaji946/skai/value"
)

// compoundBase maps a compound-assignment token to the binary
// operator it desugars to: "x += y" reads x, applies "+", writes x.
var compoundBase = map[lexer.TokenType]lexer.TokenType{
	lexer.PLUS_ASSIGN:     lexer.PLUS,
	lexer.MINUS_ASSIGN:    lexer.MINUS,
	lexer.STAR_ASSIGN:     lexer.STAR,
	lexer.SLASH_ASSIGN:    lexer.SLASH,
	lexer.MOD_ASSIGN:      lexer.MOD,
	lexer.BIT_AND_ASSIGN:  lexer.BIT_AND,
	lexer.BIT_OR_ASSIGN:   lexer.BIT_OR,
	lexer.BIT_XOR_ASSIGN:  lexer.BIT_XOR,
}

// lvalue abstracts over the three assignable expression shapes
// (identifier, subscript, access) so evalAssign has one code path
// regardless of which one it was handed.
type lvalue struct {
	get func() value.Value
	set func(value.Value)
}

func (e *Evaluator) resolveLvalue(env *environment.Environment, target ast.Expr) lvalue {
	switch t := target.(type) {
	case *ast.Identifier:
		cell, err := env.Get(t.Name)
		if err != nil {
			interp.Raise(t.Pos(), "%s", err)
		}
		return lvalue{
			get: func() value.Value { return value.Unwrap(cell) },
			set: func(v value.Value) {
				if cell.Const {
					interp.Raise(t.Pos(), "cannot assign to const variable %q", t.Name)
				}
				cell.Inner = v
			},
		}
	case *ast.Subscript:
		obj := value.Unwrap(e.evalExpr(env, t.Object))
		idx := value.Unwrap(e.evalExpr(env, t.Index))
		arr, ok := obj.(value.Array)
		if !ok {
			interp.Raise(t.Pos(), "cannot assign into type %s by index", obj.Type())
		}
		i, ok := idx.(value.Integer)
		if !ok {
			interp.Raise(t.Pos(), "index must be an integer, got %s", idx.Type())
		}
		return lvalue{
			get: func() value.Value {
				v, err := value.Index(arr, i)
				if err != nil {
					interp.Raise(t.Pos(), "%s", err)
				}
				return v
			},
			set: func(v value.Value) {
				elems := *arr.Elements
				n := int64(len(elems))
				j := int64(i)
				if j < 0 {
					j += n
				}
				if j < 0 || j >= n {
					interp.Raise(t.Pos(), "array index %d out of range", i)
				}
				elems[j] = v
			},
		}
	case *ast.Access:
		objVal := value.Unwrap(e.evalExpr(env, t.Object))
		obj, ok := objVal.(value.Object)
		if !ok {
			interp.Raise(t.Pos(), "type %s has no members", objVal.Type())
		}
		ident, ok := t.Member.(*ast.Identifier)
		if !ok {
			interp.Raise(t.Pos(), "invalid member expression")
		}
		return lvalue{
			get: func() value.Value {
				v, found := obj.Get(ident.Name)
				if !found {
					interp.Raise(t.Pos(), "%s has no member %q", obj.ClassName, ident.Name)
				}
				return v
			},
			set: func(v value.Value) { obj.Set(ident.Name, v) },
		}
	default:
		interp.Raise(target.Pos(), "invalid assignment target")
		panic("unreachable")
	}
}

func (e *Evaluator) evalAssign(env *environment.Environment, n *ast.Assign) value.Value {
	lv := e.resolveLvalue(env, n.Target)
	rhs := value.Unwrap(e.evalExpr(env, n.Value))

	if n.Op == lexer.ASSIGN {
		lv.set(rhs)
		return rhs
	}

	base, ok := compoundBase[n.Op]
	if !ok {
		interp.Raise(n.Pos(), "unsupported compound assignment operator %s", n.Op)
	}
	lhs, rhsPromoted := value.NumericPromotion(lv.get(), rhs)
	result, err := value.Binary(base, lhs, rhsPromoted)
	if err != nil {
		interp.Raise(n.Pos(), "%s", err)
	}
	lv.set(result)
	return result
}
