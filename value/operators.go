/*
File    : skai/value/operators.go
Package : value
*/
package value

import (
	"fmt"
	"math"

	"github.com/akashmaji946/skai/lexer"
)

// Binary dispatches a binary operator over two already-evaluated,
// already-unwrapped operands. It is the single place that knows which
// (lhs-type, op, rhs-type) triples are legal.
func Binary(op lexer.TokenType, lhs, rhs Value) (Value, error) {
	lhs, rhs = Unwrap(lhs), Unwrap(rhs)

	switch l := lhs.(type) {
	case Integer:
		if r, ok := rhs.(Integer); ok {
			return integerOp(op, l, r)
		}
	case Float:
		if r, ok := rhs.(Float); ok {
			return floatOp(op, l, r)
		}
	case String:
		if r, ok := rhs.(String); ok {
			return stringOp(op, l, r)
		}
	case Bool:
		if r, ok := rhs.(Bool); ok {
			return boolOp(op, l, r)
		}
	}
	return nil, fmt.Errorf("invalid operand for operator %s between types %s and %s", op, lhs.Type(), rhs.Type())
}

func integerOp(op lexer.TokenType, l, r Integer) (Value, error) {
	switch op {
	case lexer.PLUS:
		return l + r, nil
	case lexer.MINUS:
		return l - r, nil
	case lexer.STAR:
		return l * r, nil
	case lexer.MOD:
		if r == 0 {
			return nil, fmt.Errorf("modulo by zero")
		}
		return l % r, nil
	case lexer.SLASH:
		if r == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return Float(float64(l) / float64(r)), nil
	case lexer.BIT_AND:
		return l & r, nil
	case lexer.BIT_OR:
		return l | r, nil
	case lexer.BIT_XOR:
		return l ^ r, nil
	case lexer.SHL:
		return l << uint(r), nil
	case lexer.SHR:
		return l >> uint(r), nil
	case lexer.EQ:
		return Bool(l == r), nil
	case lexer.NE:
		return Bool(l != r), nil
	case lexer.LT:
		return Bool(l < r), nil
	case lexer.LE:
		return Bool(l <= r), nil
	case lexer.GT:
		return Bool(l > r), nil
	case lexer.GE:
		return Bool(l >= r), nil
	}
	return nil, fmt.Errorf("invalid operand for operator %s between types integer and integer", op)
}

func floatOp(op lexer.TokenType, l, r Float) (Value, error) {
	switch op {
	case lexer.PLUS:
		return l + r, nil
	case lexer.MINUS:
		return l - r, nil
	case lexer.STAR:
		return l * r, nil
	case lexer.SLASH:
		if r == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return l / r, nil
	case lexer.MOD:
		return Float(math.Mod(float64(l), float64(r))), nil
	case lexer.EQ:
		return Bool(l == r), nil
	case lexer.NE:
		return Bool(l != r), nil
	case lexer.LT:
		return Bool(l < r), nil
	case lexer.LE:
		return Bool(l <= r), nil
	case lexer.GT:
		return Bool(l > r), nil
	case lexer.GE:
		return Bool(l >= r), nil
	}
	return nil, fmt.Errorf("invalid operand for operator %s between types float and float", op)
}

func stringOp(op lexer.TokenType, l, r String) (Value, error) {
	switch op {
	case lexer.PLUS:
		return String(l.Raw() + r.Raw()), nil
	case lexer.EQ:
		return Bool(l.String() == r.String()), nil
	case lexer.NE:
		return Bool(l.String() != r.String()), nil
	case lexer.LT:
		return Bool(l.String() < r.String()), nil
	case lexer.LE:
		return Bool(l.String() <= r.String()), nil
	case lexer.GT:
		return Bool(l.String() > r.String()), nil
	case lexer.GE:
		return Bool(l.String() >= r.String()), nil
	}
	return nil, fmt.Errorf("invalid operand for operator %s between types string and string", op)
}

func boolOp(op lexer.TokenType, l, r Bool) (Value, error) {
	switch op {
	case lexer.EQ:
		return Bool(l == r), nil
	case lexer.NE:
		return Bool(l != r), nil
	case lexer.AND:
		return Bool(l && r), nil
	case lexer.OR:
		return Bool(l || r), nil
	}
	return nil, fmt.Errorf("invalid operand for operator %s between types bool and bool", op)
}

// NumericPromotion resolves the open question of mixed Integer/Float
// arithmetic: when exactly one side is Integer and the other Float,
// the Integer side is promoted to Float before dispatch, rather than
// failing outright. This is applied by callers (the evaluator) before
// calling Binary, keeping Binary itself a strict same-type table.
func NumericPromotion(lhs, rhs Value) (Value, Value) {
	lhs, rhs = Unwrap(lhs), Unwrap(rhs)
	li, lIsInt := lhs.(Integer)
	ri, rIsInt := rhs.(Integer)
	lf, lIsFloat := lhs.(Float)
	rf, rIsFloat := rhs.(Float)

	if lIsInt && rIsFloat {
		return Float(float64(li)), rf
	}
	if lIsFloat && rIsInt {
		return lf, Float(float64(ri))
	}
	return lhs, rhs
}

// Index dispatches the subscript operator: String[Integer] yields a
// single-character String, Array[Integer] yields the element; both
// accept negative indices counting from the end.
func Index(obj, idx Value) (Value, error) {
	obj, idx = Unwrap(obj), Unwrap(idx)
	i, ok := idx.(Integer)
	if !ok {
		return nil, fmt.Errorf("index must be an integer, got %s", idx.Type())
	}
	switch o := obj.(type) {
	case String:
		raw := o.Raw()
		n := int64(len(raw))
		j := int64(i)
		if j < 0 {
			j += n
		}
		if j < 0 || j >= n {
			return nil, fmt.Errorf("string index %d out of range", i)
		}
		return String(raw[j : j+1]), nil
	case Array:
		elems := *o.Elements
		n := int64(len(elems))
		j := int64(i)
		if j < 0 {
			j += n
		}
		if j < 0 || j >= n {
			return nil, fmt.Errorf("array index %d out of range", i)
		}
		return elems[j], nil
	default:
		return nil, fmt.Errorf("type %s does not support indexing", obj.Type())
	}
}

// Negate implements unary "-": only Integer and Float support it.
func Negate(v Value) (Value, error) {
	switch t := Unwrap(v).(type) {
	case Integer:
		return -t, nil
	case Float:
		return -t, nil
	default:
		return nil, fmt.Errorf("unary - requires integer or float, got %s", t.Type())
	}
}

// Plus implements unary "+": identity on numeric types, error otherwise.
func Plus(v Value) (Value, error) {
	switch t := Unwrap(v).(type) {
	case Integer, Float:
		return t, nil
	default:
		return nil, fmt.Errorf("unary + requires integer or float, got %s", t.Type())
	}
}

// Not implements unary "!": requires Bool.
func Not(v Value) (Value, error) {
	b, ok := Unwrap(v).(Bool)
	if !ok {
		return nil, fmt.Errorf("unary ! requires bool, got %s", Unwrap(v).Type())
	}
	return !b, nil
}
