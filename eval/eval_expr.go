/*
File    : skai/eval/eval_expr.go
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

func (e *Evaluator) evalExpr(env *environment.Environment, expr ast.Expr) value.Value {
	switch n := expr.(type) {
	case *ast.NumberLit:
		return value.Integer(n.Value)
	case *ast.FloatLit:
		return value.Float(n.Value)
	case *ast.StringLit:
		return value.String(n.Value)
	case *ast.BoolLit:
		return value.Bool(n.Value)
	case *ast.NullLit:
		return value.Null{}
	case *ast.Identifier:
		cell, err := env.Get(n.Name)
		if err != nil {
			interp.Raise(n.Pos(), "%s", err)
		}
		return cell
	case *ast.ArrayLit:
		elems := make([]value.Value, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = value.Unwrap(e.evalExpr(env, el))
		}
		return value.NewArray(elems)
	case *ast.Binary:
		return e.evalBinary(env, n)
	case *ast.Logical:
		return e.evalLogical(env, n)
	case *ast.Unary:
		return e.evalUnary(env, n)
	case *ast.Assign:
		return e.evalAssign(env, n)
	case *ast.Call:
		return e.evalCall(env, n)
	case *ast.Subscript:
		obj := value.Unwrap(e.evalExpr(env, n.Object))
		idx := value.Unwrap(e.evalExpr(env, n.Index))
		v, err := value.Index(obj, idx)
		if err != nil {
			interp.Raise(n.Pos(), "%s", err)
		}
		return v
	case *ast.Access:
		return e.evalAccess(env, n)
	case *ast.Self:
		cell, err := env.Get("self")
		if err != nil {
			interp.Raise(n.Pos(), "'self' used outside a method")
		}
		return cell
	case *ast.FunctionDecl:
		return e.evalFunctionDecl(env, n)
	case *ast.Break, *ast.Continue:
		interp.Raise(n.Pos(), "'break'/'continue' cannot be used as a value")
		panic("unreachable")
	default:
		interp.RaiseNoLoc("unhandled expression type %T", expr)
		panic("unreachable")
	}
}

func (e *Evaluator) evalBinary(env *environment.Environment, n *ast.Binary) value.Value {
	l := value.Unwrap(e.evalExpr(env, n.Left))
	r := value.Unwrap(e.evalExpr(env, n.Right))
	l, r = value.NumericPromotion(l, r)
	result, err := value.Binary(n.Op, l, r)
	if err != nil {
		interp.Raise(n.Pos(), "%s", err)
	}
	return result
}

func (e *Evaluator) evalLogical(env *environment.Environment, n *ast.Logical) value.Value {
	left, err := value.IsTruthy(e.evalExpr(env, n.Left))
	if err != nil {
		interp.Raise(n.Pos(), "%s", err)
	}
	if n.Op == lexer.AND && !left {
		return value.Bool(false)
	}
	if n.Op == lexer.OR && left {
		return value.Bool(true)
	}
	right, err := value.IsTruthy(e.evalExpr(env, n.Right))
	if err != nil {
		interp.Raise(n.Pos(), "%s", err)
	}
	return value.Bool(right)
}

func (e *Evaluator) evalUnary(env *environment.Environment, n *ast.Unary) value.Value {
	operand := e.evalExpr(env, n.Operand)
	var v value.Value
	var err error
	switch n.Op {
	case lexer.MINUS:
		v, err = value.Negate(operand)
	case lexer.PLUS:
		v, err = value.Plus(operand)
	case lexer.BANG:
		v, err = value.Not(operand)
	}
	if err != nil {
		interp.Raise(n.Pos(), "%s", err)
	}
	return v
}

// evalAccess resolves "object.member". Member is always a primary
// identifier in practice (the grammar's access/primary split never
// lets it be a call), so a non-identifier member is a parse-level
// artifact we reject here.
func (e *Evaluator) evalAccess(env *environment.Environment, n *ast.Access) value.Value {
	objVal := value.Unwrap(e.evalExpr(env, n.Object))
	ident, ok := n.Member.(*ast.Identifier)
	if !ok {
		interp.Raise(n.Pos(), "invalid member expression")
	}
	obj, ok := objVal.(value.Object)
	if !ok {
		interp.Raise(n.Pos(), "type %s has no members", objVal.Type())
	}
	v, found := obj.Get(ident.Name)
	if !found {
		interp.Raise(n.Pos(), "%s has no member %q", obj.ClassName, ident.Name)
	}
	return v
}
