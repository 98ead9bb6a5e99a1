package oxide

import (
	"github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Trace returns the stack trace attached to err or to the first error in its
// chain that carries one. It returns nil when no trace is present.
func Trace(err error) errors.StackTrace {
	var st stackTracer
	if errors.As(err, &st) {
		return st.StackTrace()
	}
	return nil
}

// fixTrace guarantees that an error payload carries a stack trace.
// Errors that already have one are returned untouched.
func fixTrace(err error) error {
	if IsNil(err) {
		return errors.WithStack(ErrNilError)
	}
	if Trace(err) != nil {
		return err
	}
	return errors.WithStack(err)
}

// fixValue is the permissive counterpart of fixTrace used by ErrOf.
func fixValue(v any) error {
	if err, ok := v.(error); ok {
		return fixTrace(err)
	}
	return errors.WithStack(&ValueError{Value: v})
}

// recovered turns a recovered panic value into a traced error.
func recovered(p any) error {
	if err, ok := p.(error); ok {
		return fixTrace(err)
	}
	return errors.WithStack(&PanicError{Value: p})
}

// Capture runs f and converts a panic raised inside it into an Err.
// It is the fault-capture step every Result transformation goes through.
func Capture[T any](f func() Result[T]) (out Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			out = Err[T](recovered(p))
		}
	}()
	return f()
}
