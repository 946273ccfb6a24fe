/*
File    : skai/eval/eval.go
Package : eval
*/
package eval

import (
	"github.com/akashmaji946/skai/ast"
	"github.com/akashmaji946/skai/environment"
	"github.com/akashmaji946/skai/function"
	"github.com/akashmaji946/skai/interp"
	"github.com/akashmaji946/skai/value"
)

// Evaluator walks a parsed program against a global environment. It
// carries no mutable "break"/"in_func" flags (see signal.go); the
// only state it tracks across calls is which frame is currently
// executing, threaded explicitly through every eval* method.
type Evaluator struct {
	Global *environment.Environment
}

// New creates an Evaluator over an already-populated global
// environment (the caller registers built-ins into it beforehand).
func New(global *environment.Environment) *Evaluator {
	return &Evaluator{Global: global}
}

// Run executes a program's top-level statements in the global
// environment. A bare top-level "return" is a Control error, matching
// the design note that return is only legal inside a function body.
func (e *Evaluator) Run(program []ast.Stmt) {
	for _, stmt := range program {
		sig := e.evalStmt(e.Global, stmt)
		switch sig.kind {
		case sigReturn:
			interp.RaiseNoLoc("'return' outside function")
		case sigBreak, sigContinue:
			interp.RaiseNoLoc("'break'/'continue' outside loop")
		}
	}
}

func (e *Evaluator) evalStmt(env *environment.Environment, stmt ast.Stmt) signal {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		e.evalVarDecl(env, s)
		return normalSignal
	case *ast.If:
		return e.evalIf(env, s)
	case *ast.While:
		return e.evalWhile(env, s)
	case *ast.For:
		return e.evalFor(env, s)
	case *ast.FunctionDecl:
		e.evalFunctionDecl(env, s)
		return normalSignal
	case *ast.ClassDecl:
		e.evalClassDecl(env, s)
		return normalSignal
	case *ast.Return:
		return e.evalReturn(env, s)
	case *ast.Block:
		return e.evalBlockStmt(env, s)
	case *ast.Break:
		return breakSignal
	case *ast.Continue:
		return continueSignal
	case ast.Expr:
		e.evalExpr(env, s)
		return normalSignal
	default:
		interp.RaiseNoLoc("unhandled statement type %T", stmt)
		panic("unreachable")
	}
}

// evalBlockStmt executes a block's statements in place, in the given
// environment — plain blocks introduce no new scope frame, only a
// function call does (invokeFunction in eval_call.go creates the
// child frame before calling this on the function body).
func (e *Evaluator) evalBlockStmt(env *environment.Environment, b *ast.Block) signal {
	for _, stmt := range b.Statements {
		sig := e.evalStmt(env, stmt)
		if sig.kind != sigNormal {
			return sig
		}
	}
	return normalSignal
}

func (e *Evaluator) evalVarDecl(env *environment.Environment, d *ast.VarDecl) {
	var v value.Value = value.Null{}
	if d.Init != nil {
		v = value.Unwrap(e.evalExpr(env, d.Init))
	}
	if err := env.Define(d.Name, v, d.Const); err != nil {
		interp.Raise(d.Pos(), "%s", err)
	}
}

func (e *Evaluator) evalIf(env *environment.Environment, n *ast.If) signal {
	if n.Init != nil {
		e.evalVarDecl(env, n.Init)
	}
	cond, err := value.IsTruthy(e.evalExpr(env, n.Cond))
	if err != nil {
		interp.Raise(n.Cond.Pos(), "%s", err)
	}
	if cond {
		return e.evalStmt(env, n.Then)
	}
	if n.Else != nil {
		return e.evalStmt(env, n.Else)
	}
	return normalSignal
}

func (e *Evaluator) evalWhile(env *environment.Environment, n *ast.While) signal {
	if n.Init != nil {
		e.evalVarDecl(env, n.Init)
	}
	for {
		cond, err := value.IsTruthy(e.evalExpr(env, n.Cond))
		if err != nil {
			interp.Raise(n.Cond.Pos(), "%s", err)
		}
		if !cond {
			return normalSignal
		}
		sig := e.evalStmt(env, n.Body)
		switch sig.kind {
		case sigBreak:
			return normalSignal
		case sigReturn:
			return sig
		}
	}
}

func (e *Evaluator) evalFor(env *environment.Environment, n *ast.For) signal {
	e.evalVarDecl(env, n.Init)
	for {
		cond, err := value.IsTruthy(e.evalExpr(env, n.Cond))
		if err != nil {
			interp.Raise(n.Cond.Pos(), "%s", err)
		}
		if !cond {
			return normalSignal
		}
		sig := e.evalStmt(env, n.Body)
		switch sig.kind {
		case sigBreak:
			return normalSignal
		case sigReturn:
			return sig
		}
		e.evalExpr(env, n.Step)
	}
}

func (e *Evaluator) evalFunctionDecl(env *environment.Environment, decl *ast.FunctionDecl) *function.Function {
	fn := function.New(decl, env)
	if decl.Name != "" {
		if err := env.Define(decl.Name, fn, false); err != nil {
			interp.Raise(decl.Pos(), "%s", err)
		}
	}
	return fn
}

func (e *Evaluator) evalClassDecl(env *environment.Environment, decl *ast.ClassDecl) {
	cls := function.NewClass(decl, env)
	if err := env.Define(decl.Name, cls, false); err != nil {
		interp.Raise(decl.Pos(), "%s", err)
	}
}

func (e *Evaluator) evalReturn(env *environment.Environment, n *ast.Return) signal {
	var v value.Value = value.Null{}
	if n.Value != nil {
		v = value.Unwrap(e.evalExpr(env, n.Value))
	}
	return returnSignal(v)
}
