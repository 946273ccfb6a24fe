/*
File    : skai/eval/eval_call.go
Package : eval
*/
package eval

import (
	"github.com/akashmaji946/skai/ast"
	"github.com/akashmaji946/skai/environment"
	"github.com/akashmaji946/skai/function"
	"github.com/akashmaji946/skai/interp"
	"github.com/akashmaji946/skai/sloc"
	"github.com/akashmaji946/skai/value"
)

func (e *Evaluator) evalCall(env *environment.Environment, n *ast.Call) value.Value {
	callee := value.Unwrap(e.evalExpr(env, n.Callee))
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		args[i] = value.Unwrap(e.evalExpr(env, a))
	}

	callable, ok := callee.(value.Callable)
	if !ok {
		interp.Raise(n.Pos(), "type %s is not callable", callee.Type())
	}
	checkArity(callable, len(args), n.Pos())

	switch c := callable.(type) {
	case *function.Function:
		return e.invokeFunction(c, args, n.Pos())
	case *function.Builtin:
		result, err := c.Call(args)
		if err != nil {
			interp.Raise(n.Pos(), "%s", err)
		}
		return result
	case *function.Class:
		return e.instantiate(c, args, n.Pos())
	default:
		interp.Raise(n.Pos(), "unsupported callable type %T", callable)
		panic("unreachable")
	}
}

func checkArity(c value.Callable, got int, loc sloc.Location) {
	min, max := c.MinArity(), c.MaxArity()
	if c.IsVariadic() {
		if got < min {
			interp.Raise(loc, "%s expects at least %d argument(s), got %d", c.Name(), min, got)
		}
		return
	}
	if got < min || got > max {
		interp.Raise(loc, "%s expects between %d and %d argument(s), got %d", c.Name(), min, max, got)
	}
}

// invokeFunction creates a fresh call frame enclosed by the
// function's captured environment, binds parameters (positional
// arguments first, then default expressions evaluated in the new
// frame so later defaults can see earlier parameters), executes the
// body, and resolves the pending return value.
func (e *Evaluator) invokeFunction(fn *function.Function, args []value.Value, loc sloc.Location) value.Value {
	frame := environment.Child(fn.Closure)
	for i, p := range fn.Decl.Params {
		var v value.Value
		switch {
		case i < len(args):
			v = args[i]
		case p.Default != nil:
			v = value.Unwrap(e.evalExpr(frame, p.Default))
		default:
			interp.Raise(loc, "missing required argument %q to %s", p.Name, fn.Name())
		}
		if err := frame.Define(p.Name, v, false); err != nil {
			interp.Raise(loc, "%s", err)
		}
	}

	sig := e.evalBlockStmt(frame, fn.Decl.Body)
	if sig.kind == sigBreak || sig.kind == sigContinue {
		interp.Raise(loc, "'break'/'continue' outside loop")
	}

	if fn.IsInit {
		selfCell, err := frame.Get("self")
		if err != nil {
			interp.Raise(loc, "internal error: constructor frame missing self")
		}
		if sig.kind == sigReturn {
			if _, isNull := value.Unwrap(sig.value).(value.Null); !isNull {
				interp.Raise(loc, "constructor must not return a value")
			}
		}
		return value.Unwrap(selfCell)
	}

	if sig.kind == sigReturn {
		return sig.value
	}
	return value.Null{}
}

// instantiate builds a new Object for cls: every method is bound into
// a fresh per-instance environment that already contains "self",
// giving methods access to sibling methods and fields through normal
// name lookup. If the class declares "init", it runs as the
// constructor; its return value is ignored except that it must be
// Null (see the Constructor error category).
func (e *Evaluator) instantiate(cls *function.Class, args []value.Value, loc sloc.Location) value.Value {
	obj := value.NewObject(cls.Decl.Name)
	instanceEnv := environment.Child(cls.Closure)
	if err := instanceEnv.Define("self", obj, true); err != nil {
		interp.Raise(loc, "%s", err)
	}
	for _, m := range cls.Decl.Members {
		obj.Set(m.Name, function.New(m, instanceEnv))
	}

	init := cls.Init()
	if init == nil {
		if len(args) != 0 {
			interp.Raise(loc, "class %s takes no arguments (no init declared)", cls.Decl.Name)
		}
		return obj
	}
	initFn, _ := obj.Get("init")
	fn := initFn.(*function.Function)
	fn.IsInit = true
	e.invokeFunction(fn, args, loc)
	return obj
}
