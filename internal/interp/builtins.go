package interp

import (
	"time"

	"github.com/cwbudde/golox/internal/interp/runtime"
)

// defineBuiltins installs the host-provided functions into the global
// environment. Lox ships a single builtin.
func defineBuiltins(globals *runtime.Environment) {
	globals.Define("clock", runtime.NewBuiltin("clock", 0, builtinClock))
}

// builtinClock returns the current wall-clock time in seconds, with
// fractional precision.
func builtinClock(_ []runtime.Value) (runtime.Value, error) {
	seconds := float64(time.Now().UnixNano()) / float64(time.Second)
	return &runtime.NumberValue{Value: seconds}, nil
}
