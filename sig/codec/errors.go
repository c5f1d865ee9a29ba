package codec

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
)

// Named is an error that you can read a name from.
type Named interface {
	Name() string
}

// WithStackTrace is an error that you can read a stack trace from.
type WithStackTrace interface {
	Stack() string
}

// MalformedValueError indicates a signature value passed to Encode violates
// the structural invariants of its algorithm family.
type MalformedValueError struct {
	msg   string
	stack errors.StackTrace
}

func NewMalformedValueError(format string, args ...any) *MalformedValueError {
	return &MalformedValueError{msg: fmt.Sprintf(format, args...), stack: callers()}
}

func (e *MalformedValueError) Error() string { return e.msg }

func (e *MalformedValueError) Name() string { return "MalformedValue" }

func (e *MalformedValueError) Stack() string { return fmt.Sprintf("%+v", e.stack) }

// MalformedEncodingError indicates bytes passed to Decode do not parse under
// the expected format grammar.
type MalformedEncodingError struct {
	msg   string
	stack errors.StackTrace
}

func NewMalformedEncodingError(format string, args ...any) *MalformedEncodingError {
	return &MalformedEncodingError{msg: fmt.Sprintf(format, args...), stack: callers()}
}

func (e *MalformedEncodingError) Error() string { return e.msg }

func (e *MalformedEncodingError) Name() string { return "MalformedEncoding" }

func (e *MalformedEncodingError) Stack() string { return fmt.Sprintf("%+v", e.stack) }

func callers() errors.StackTrace {
	const depth = 32

	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])

	st := make(errors.StackTrace, n)
	for i := 0; i < n; i++ {
		st[i] = errors.Frame(pcs[i])
	}
	return st
}
