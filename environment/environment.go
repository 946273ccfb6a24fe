/*
File    : skai/environment/environment.go
Package : environment
*/

// Package environment implements skai's lexically-scoped variable
// chain: an ordered name-to-cell mapping plus an optional enclosing
// frame. Function values capture a *Environment at creation time and
// reuse it (rather than copying) so mutations through a closure stay
// visible to every holder of the same frame.
package environment

import (
	"fmt"

	"github.com/akashmaji946/skai/value"
)

// Environment is one scope frame in the chain.
type Environment struct {
	vars    map[string]*value.Cell
	order   []string
	Outer   *Environment
}

// New creates a top-level (global) environment with no enclosing frame.
func New() *Environment {
	return &Environment{vars: make(map[string]*value.Cell)}
}

// Child creates a new frame enclosed by e.
func Child(e *Environment) *Environment {
	return &Environment{vars: make(map[string]*value.Cell), Outer: e}
}

// Define inserts name into the current frame. Redefining a name
// already present in this same frame is an error; shadowing an outer
// frame's binding is fine.
func (e *Environment) Define(name string, v value.Value, isConst bool) error {
	if _, ok := e.vars[name]; ok {
		return fmt.Errorf("variable %q already defined in this scope", name)
	}
	e.vars[name] = value.NewCell(name, v, isConst)
	e.order = append(e.order, name)
	return nil
}

// DefineCell inserts an already-constructed cell directly into the
// current frame, under the cell's own name. Redefining a name already
// present in this frame is an error, as with Define.
func (e *Environment) DefineCell(c *value.Cell) error {
	if _, ok := e.vars[c.Name]; ok {
		return fmt.Errorf("variable %q already defined in this scope", c.Name)
	}
	e.vars[c.Name] = c
	e.order = append(e.order, c.Name)
	return nil
}

// Get walks outward from e and returns the cell bound to name.
func (e *Environment) Get(name string) (*value.Cell, error) {
	for frame := e; frame != nil; frame = frame.Outer {
		if c, ok := frame.vars[name]; ok {
			return c, nil
		}
	}
	return nil, fmt.Errorf("undefined name %q", name)
}

// Assign walks outward to find the frame that already defines name
// and mutates its cell's inner value there. Fails if no frame defines
// name, or if the cell is const.
func (e *Environment) Assign(name string, v value.Value) error {
	for frame := e; frame != nil; frame = frame.Outer {
		if c, ok := frame.vars[name]; ok {
			if c.Const {
				return fmt.Errorf("cannot assign to const variable %q", name)
			}
			c.Inner = v
			return nil
		}
	}
	return fmt.Errorf("undefined name %q", name)
}

// Snapshot captures the current frame's name->cell map (not a deep
// copy of the cells themselves) so it can later be restored via
// Restore, or swapped wholesale into another frame via Adopt. The
// evaluator itself threads a fresh child *Environment per call instead
// of swapping a frame's contents in place; Snapshot/Restore/Adopt are
// kept as part of Environment's contract for any caller that does
// want in-place scope replacement.
type Snapshot struct {
	vars  map[string]*value.Cell
	order []string
	outer *Environment
}

func (e *Environment) Snapshot() Snapshot {
	return Snapshot{vars: e.vars, order: e.order, outer: e.Outer}
}

func (e *Environment) Restore(s Snapshot) {
	e.vars = s.vars
	e.order = s.order
	e.Outer = s.outer
}

// Adopt replaces e's contents with other's, keeping e's identity (and
// thus every existing pointer to e) while making it behave like other.
func (e *Environment) Adopt(other *Environment) {
	e.vars = other.vars
	e.order = other.order
	e.Outer = other.Outer
}

// Names returns the bound names in definition order, used by the
// class/self minimal object model to enumerate instance members.
func (e *Environment) Names() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}
