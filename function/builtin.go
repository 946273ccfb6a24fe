/*
File    : skai/function/builtin.go
Package : function
*/
package function

import (
	"fmt"

	"github.com/akashmaji946/skai/value"
)

// Callback is the native Go implementation behind a Builtin. It
// receives already-evaluated, already-unwrapped argument values.
type Callback func(args []value.Value) (value.Value, error)

// Builtin is a native callable registered into the global environment
// at startup (package std).
type Builtin struct {
	FnName   string
	Min      int
	Max      int // ignored when Variadic is true
	Variadic bool
	Fn       Callback
}

func (*Builtin) Type() string { return "builtin" }

func (b *Builtin) String() string { return fmt.Sprintf("<builtin %s>", b.FnName) }

func (b *Builtin) Name() string { return b.FnName }

func (b *Builtin) MinArity() int { return b.Min }

func (b *Builtin) MaxArity() int { return b.Max }

func (b *Builtin) IsVariadic() bool { return b.Variadic }

func (b *Builtin) Call(args []value.Value) (value.Value, error) { return b.Fn(args) }

var _ value.Callable = (*Builtin)(nil)
