/*
File    : skai/value/value.go
Package : value
*/

// Package value defines skai's closed runtime value sum type and the
// polymorphic operator table that dispatches over it. Every variant
// is a plain Go type implementing the Value marker interface; the
// operator table (operators.go) switches on concrete type pairs
// instead of routing through per-type virtual methods.
package value

import (
	"fmt"
	"strings"
)

// Value is the marker interface implemented by every runtime value
// variant: Null, Bool, Integer, Float, String, Array, Cell, Callable,
// plus Object (object.go) for class instances.
type Value interface {
	Type() string
	String() string
}

type Null struct{}

func (Null) Type() string   { return "null" }
func (Null) String() string { return "null" }

type Bool bool

func (Bool) Type() string      { return "bool" }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

type Integer int64

func (Integer) Type() string      { return "integer" }
func (i Integer) String() string  { return fmt.Sprintf("%d", int64(i)) }

type Float float64

func (Float) Type() string     { return "float" }
func (f Float) String() string { return fmt.Sprintf("%g", float64(f)) }

// String holds raw, un-decoded source text; escape sequences are
// expanded only by String() (i.e. whenever the value is stringified
// for print or compared); concatenation joins the raw text.
type String string

func (String) Type() string { return "string" }

func (s String) String() string { return decodeEscapes(string(s)) }

// Raw returns the literal text as stored, escapes un-decoded; used by
// the indexing operator so that "[i]" counts raw bytes consistently
// with how the lexer captured the literal.
func (s String) Raw() string { return string(s) }

var escapeTable = map[byte]byte{
	'n': '\n', 't': '\t', 'r': '\r', '\\': '\\', '"': '"',
	'b': '\b', 'v': '\v', 'f': '\f', '0': 0,
}

func decodeEscapes(raw string) string {
	if !strings.Contains(raw, `\`) {
		return raw
	}
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) {
			if decoded, ok := escapeTable[raw[i+1]]; ok {
				b.WriteByte(decoded)
				i++
				continue
			}
		}
		b.WriteByte(raw[i])
	}
	return b.String()
}

// Array is an ordered, mutable sequence of values with shared
// reference semantics: copying an Array value copies the pointer to
// the same backing slice holder, not the elements.
type Array struct {
	Elements *[]Value
}

func NewArray(elems []Value) Array {
	return Array{Elements: &elems}
}

func (Array) Type() string { return "array" }

func (a Array) String() string {
	parts := make([]string, len(*a.Elements))
	for i, e := range *a.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Cell is a named mutable binding: the environment stores Cells, not
// raw Values, so compound assignment and closures observe the same
// storage location rather than a copy.
type Cell struct {
	Name    string
	Const   bool
	Inner   Value
}

func NewCell(name string, v Value, isConst bool) *Cell {
	return &Cell{Name: name, Const: isConst, Inner: v}
}

func (*Cell) Type() string { return "variable" }

func (c *Cell) String() string { return c.Inner.String() }

// Unwrap returns the underlying value of v, following through a Cell
// if present. Every other variant is returned unchanged.
func Unwrap(v Value) Value {
	if c, ok := v.(*Cell); ok {
		return Unwrap(c.Inner)
	}
	return v
}

// Callable is implemented by both user-declared functions and
// built-ins (package function), letting the evaluator invoke either
// through one interface.
type Callable interface {
	Value
	Name() string
	MinArity() int
	MaxArity() int
	IsVariadic() bool
}

// IsTruthy implements the language's strict truthiness rule: only
// Null and Bool convert; everything else is a type error in a
// boolean context.
func IsTruthy(v Value) (bool, error) {
	switch t := Unwrap(v).(type) {
	case Null:
		return false, nil
	case Bool:
		return bool(t), nil
	default:
		return false, fmt.Errorf("expected bool or null in condition, got %s", t.Type())
	}
}
