package solo

import (
	"github.com/pkg/errors"

	"github.com/ib-77/oxide/pkg/oxide"
)

// Map applies onOk to an Ok value and wraps the outcome. A panic in onOk
// becomes an Err; an Err input is carried over unchanged.
func Map[In, Out any](input oxide.Result[In], onOk func(In) Out) oxide.Result[Out] {
	if !input.IsOk() {
		return carry[In, Out](input)
	}
	return oxide.Capture(func() oxide.Result[Out] {
		return oxide.Ok(onOk(input.Unwrap()))
	})
}

// AndThen passes an Ok value to onOk, which must return a valid Result.
func AndThen[In, Out any](input oxide.Result[In], onOk func(In) oxide.Result[Out]) oxide.Result[Out] {
	if !input.IsOk() {
		return carry[In, Out](input)
	}
	return oxide.Capture(func() oxide.Result[Out] {
		return oxide.ExpectResult(onOk(input.Unwrap()))
	})
}

// Try calls a Go-style function on an Ok value and turns its error into Err.
func Try[In, Out any](input oxide.Result[In], onTryExecute func(In) (Out, error)) oxide.Result[Out] {
	if !input.IsOk() {
		return carry[In, Out](input)
	}
	return oxide.Capture(func() oxide.Result[Out] {
		return oxide.From(onTryExecute(input.Unwrap()))
	})
}

// Validate fails an Ok value that does not satisfy validate.
func Validate[T any](input oxide.Result[T], validate func(in T) (valid bool, errMsg string)) oxide.Result[T] {
	return input.AndThen(func(v T) oxide.Result[T] {
		if valid, errMsg := validate(v); !valid {
			return oxide.Err[T](errors.New(errMsg))
		}
		return input
	})
}

// FailOnError fails an Ok value for which maybeErr returns an error.
func FailOnError[T any](input oxide.Result[T], maybeErr func(in T) error) oxide.Result[T] {
	return input.AndThen(func(v T) oxide.Result[T] {
		if err := maybeErr(v); err != nil {
			return oxide.Err[T](err)
		}
		return input
	})
}

// Flatten removes one level of Result nesting. An outer Err is carried over
// unchanged; an inner Result is returned as is.
func Flatten[T any](input oxide.Result[oxide.Result[T]]) oxide.Result[T] {
	if !input.IsOk() {
		return carry[oxide.Result[T], T](input)
	}
	return oxide.ExpectResult(input.Unwrap())
}

// Match calls the handler of the active variant and returns its value.
// A nil handler for the active variant panics with *oxide.MatchError.
func Match[T, R any](input oxide.Result[T], onOk func(T) R, onErr func(error) R) R {
	switch input.Tag() {
	case oxide.TagOk:
		if onOk == nil {
			panic(&oxide.MatchError{Tag: oxide.TagOk})
		}
		return onOk(input.Unwrap())
	case oxide.TagErr:
		if onErr == nil {
			panic(&oxide.MatchError{Tag: oxide.TagErr})
		}
		return onErr(input.UnwrapErr())
	default:
		panic(&oxide.MatchError{Tag: input.Tag()})
	}
}

// DoubleMap maps both branches into a new Ok. Panics in either handler
// become an Err.
func DoubleMap[In, Out any](input oxide.Result[In], onOk func(In) Out, onErr func(error) Out) oxide.Result[Out] {
	return oxide.Capture(func() oxide.Result[Out] {
		return oxide.Ok(Match(input, onOk, onErr))
	})
}

// carry moves an Err (or an unset input, as a contract violation) into a
// Result of another payload type.
func carry[In, Out any](input oxide.Result[In]) oxide.Result[Out] {
	if input.IsEmpty() {
		return oxide.Err[Out](&oxide.ResultReturnExpectedError{Data: input})
	}
	return oxide.FailFrom[In, Out](input)
}
