package oxide

import (
	"context"
	"reflect"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// IsNil reports whether i is nil or a nil pointer, map, chan, func or
// interface. Nil slices are values, not absence.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// GetErrors splits an aggregate error into its parts, in order.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		return e.Unwrap()
	}

	return multierr.Errors(err)
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
