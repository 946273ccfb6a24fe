/*
File    : skai/interp/error.go
Package : interp
*/

// Package interp defines the single fatal error kind shared by the
// lexer, parser, and evaluator. Every failure in the interpreter core
// is reported as one of these: a message plus an optional source
// location. The lexer/parser/evaluator raise it via panic; the CLI is
// the only place that recovers and formats it.
package interp

import (
	"fmt"

	"github.com/akashmaji946/skai/sloc"
)

// Error is the interpreter's single fatal error kind. Category
// ("Lex", "Parse", "Name", "Type", "Arity", "Control", "Const",
// "Index", "Constructor") lives only in the message text, matching the
// design note that the system raises one error kind for every failure.
type Error struct {
	Message string
	Loc     sloc.Location
	HasLoc  bool
}

func (e *Error) Error() string {
	if e.HasLoc {
		return fmt.Sprintf("%s - %s", e.Loc, e.Message)
	}
	return e.Message
}

// New creates a located error.
func New(loc sloc.Location, format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Loc: loc, HasLoc: true}
}

// NewNoLoc creates an error without source position, used for failures
// that have no single offending token (e.g. a top-level 'return' or
// 'break' detected after the statement has finished evaluating).
func NewNoLoc(format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// Raise panics with a located Error. Every lex/parse/eval failure path
// funnels through here so the top-level driver has one recovery point.
func Raise(loc sloc.Location, format string, args ...interface{}) {
	panic(New(loc, format, args...))
}

// RaiseNoLoc panics with an unlocated Error.
func RaiseNoLoc(format string, args ...interface{}) {
	panic(NewNoLoc(format, args...))
}
