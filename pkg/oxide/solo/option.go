package solo

import "github.com/ib-77/oxide/pkg/oxide"

// MapOption applies onSome to a Some value. Panics in onSome are not
// recovered, and a nil result panics with oxide.ErrNilSome.
func MapOption[In, Out any](input oxide.Option[In], onSome func(In) Out) oxide.Option[Out] {
	switch input.Tag() {
	case oxide.TagSome:
		return oxide.Some(onSome(input.Unwrap()))
	case oxide.TagNone:
		return oxide.None[Out]()
	default:
		panic(&oxide.OptionReturnExpectedError{Data: input})
	}
}

// AndThenOption passes a Some value to onSome, which must return a valid
// Option.
func AndThenOption[In, Out any](input oxide.Option[In], onSome func(In) oxide.Option[Out]) oxide.Option[Out] {
	switch input.Tag() {
	case oxide.TagSome:
		return oxide.ExpectOption(onSome(input.Unwrap()))
	case oxide.TagNone:
		return oxide.None[Out]()
	default:
		panic(&oxide.OptionReturnExpectedError{Data: input})
	}
}

// MatchOption calls onSome with the value or onNone with no arguments.
func MatchOption[T, R any](input oxide.Option[T], onSome func(T) R, onNone func() R) R {
	switch input.Tag() {
	case oxide.TagSome:
		if onSome == nil {
			panic(&oxide.MatchError{Tag: oxide.TagSome})
		}
		return onSome(input.Unwrap())
	case oxide.TagNone:
		if onNone == nil {
			panic(&oxide.MatchError{Tag: oxide.TagNone})
		}
		return onNone()
	default:
		panic(&oxide.MatchError{Tag: input.Tag()})
	}
}

// OkOr turns Some into Ok and None into Err(err).
func OkOr[T any](input oxide.Option[T], err error) oxide.Result[T] {
	return MatchOption(input,
		oxide.Ok[T],
		func() oxide.Result[T] { return oxide.Err[T](err) })
}

// ToOption keeps the Ok value and drops the error.
func ToOption[T any](input oxide.Result[T]) oxide.Option[T] {
	if input.IsOk() {
		return oxide.OptionOf(input.Unwrap())
	}
	return oxide.None[T]()
}

// ErrToOption keeps the Err payload and drops the Ok value.
func ErrToOption[T any](input oxide.Result[T]) oxide.Option[error] {
	if input.IsErr() {
		return oxide.Some(input.UnwrapErr())
	}
	return oxide.None[error]()
}
