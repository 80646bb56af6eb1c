// Package runtime provides the runtime value types, the environment chain,
// and the callable protocol for the Lox interpreter.
package runtime

import (
	"math"
	"strconv"
)

// Value is the interface implemented by every Lox runtime value.
// The value set is closed: nil, boolean, number, string, and the callable
// kinds (function, class, builtin) plus class instances.
type Value interface {
	// Type returns the value's kind name, used in diagnostics and tests.
	Type() string

	// String returns the value's print form, as produced by the print
	// statement.
	String() string
}

// NilValue represents the Lox nil value.
type NilValue struct{}

// Nil is the shared nil value; nil never carries state, so one instance
// serves every occurrence.
var Nil = &NilValue{}

func (n *NilValue) Type() string   { return "NIL" }
func (n *NilValue) String() string { return "nil" }

// BooleanValue represents a Lox boolean.
type BooleanValue struct {
	Value bool
}

func (b *BooleanValue) Type() string { return "BOOLEAN" }

func (b *BooleanValue) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// NumberValue represents a Lox number. All Lox numbers are IEEE-754
// doubles.
type NumberValue struct {
	Value float64
}

func (n *NumberValue) Type() string { return "NUMBER" }

// String prints integer-valued numbers without a decimal point and all
// others in the shortest form that round-trips the stored double.
func (n *NumberValue) String() string {
	if n.Value == math.Trunc(n.Value) && !math.IsInf(n.Value, 0) {
		return strconv.FormatFloat(n.Value, 'f', -1, 64)
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// StringValue represents a Lox string.
type StringValue struct {
	Value string
}

func (s *StringValue) Type() string   { return "STRING" }
func (s *StringValue) String() string { return s.Value }

// IsTruthy reports the Lox truthiness of a value: nil and false are falsey,
// everything else (including 0, "" and NaN) is truthy.
func IsTruthy(v Value) bool {
	switch val := v.(type) {
	case nil, *NilValue:
		return false
	case *BooleanValue:
		return val.Value
	default:
		return true
	}
}

// Equals implements Lox equality. nil equals only nil; booleans, numbers
// and strings compare structurally (numbers by IEEE-754 equality, so NaN is
// not equal to itself); every other kind compares by identity.
func Equals(a, b Value) bool {
	switch av := a.(type) {
	case *NilValue:
		_, ok := b.(*NilValue)
		return ok
	case *BooleanValue:
		bv, ok := b.(*BooleanValue)
		return ok && av.Value == bv.Value
	case *NumberValue:
		bv, ok := b.(*NumberValue)
		return ok && av.Value == bv.Value
	case *StringValue:
		bv, ok := b.(*StringValue)
		return ok && av.Value == bv.Value
	default:
		return a == b
	}
}
