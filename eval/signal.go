/*
File    : skai/eval/signal.go
Package : eval
*/

// Package eval implements skai's tree-walking evaluator.
package eval

import "github.com/akashmaji946/skai/value"

// signalKind classifies how a statement's execution ended. It
// replaces the mutable "break"/"break_after_ret" evaluator flags the
// language's own design notes flag as fragile: instead of setting and
// clearing shared booleans, each evalStmt/evalBlockStmt call returns a
// signal that its caller must explicitly interpret before continuing.
type signalKind int

const (
	sigNormal signalKind = iota
	sigReturn
	sigBreak
	sigContinue
)

// signal is the result of executing one statement or block.
type signal struct {
	kind  signalKind
	value value.Value // populated only when kind == sigReturn
}

var normalSignal = signal{kind: sigNormal}
var breakSignal = signal{kind: sigBreak}
var continueSignal = signal{kind: sigContinue}

func returnSignal(v value.Value) signal {
	return signal{kind: sigReturn, value: v}
}
