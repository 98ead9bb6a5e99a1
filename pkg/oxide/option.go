package oxide

import "fmt"

// Option is either Some, holding a non-nil value, or None.
//
// Unlike Result, Option does not treat None as a failure: callbacks passed
// to Option operations are not guarded and their panics reach the caller.
type Option[T any] struct {
	tag   Tag
	value T
}

// Some wraps a present value. A nil value breaks the Option contract and
// panics; use OptionOf for values that may be nil.
func Some[T any](v T) Option[T] {
	if IsNil(v) {
		panic(ErrNilSome)
	}
	return Option[T]{tag: TagSome, value: v}
}

func None[T any]() Option[T] {
	return Option[T]{tag: TagNone}
}

// OptionOf returns None for a nil value and Some otherwise.
func OptionOf[T any](v T) Option[T] {
	if IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

// FromPtr returns None for a nil pointer and Some of the pointee otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return OptionOf(*p)
}

func (o Option[T]) Tag() Tag {
	return o.tag
}

func (o Option[T]) Payload() any {
	if o.tag == TagSome {
		return o.value
	}
	return nil
}

func (o Option[T]) IsSome() bool {
	return o.tag == TagSome
}

func (o Option[T]) IsNone() bool {
	return o.tag == TagNone
}

// Map applies f to a Some value. Like Some, it panics with ErrNilSome when f
// returns nil.
func (o Option[T]) Map(f func(T) T) Option[T] {
	if o.tag != TagSome {
		return o.passThrough()
	}
	return Some(f(o.value))
}

// MapNone turns None into Some of f's value. A nil value from f panics with
// ErrNilSome.
func (o Option[T]) MapNone(f func() T) Option[T] {
	if o.tag != TagNone {
		return o.passThrough()
	}
	return Some(f())
}

// AndThen passes a Some value to f, which must return a valid Option.
// An unset Option from f panics with *OptionReturnExpectedError.
func (o Option[T]) AndThen(f func(T) Option[T]) Option[T] {
	if o.tag != TagSome {
		return o.passThrough()
	}
	return ExpectOption(f(o.value))
}

// OrElse calls f on None, which must return a valid Option.
func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.tag != TagNone {
		return o.passThrough()
	}
	return ExpectOption(f())
}

func (o Option[T]) InspectSome(f func(T)) Option[T] {
	if o.tag == TagSome {
		f(o.value)
	}
	return o.passThrough()
}

func (o Option[T]) InspectNone(f func()) Option[T] {
	if o.tag == TagNone {
		f()
	}
	return o.passThrough()
}

// Unwrap returns the Some value. It panics with *UnwrapError on None.
func (o Option[T]) Unwrap() T {
	if o.tag != TagSome {
		panic(&UnwrapError{Tag: o.tag, Want: TagSome})
	}
	return o.value
}

// UnwrapNone returns the empty marker on None. It panics with *UnwrapError
// on Some.
func (o Option[T]) UnwrapNone() struct{} {
	if o.tag != TagNone {
		panic(&UnwrapError{Tag: o.tag, Data: o.Payload(), Want: TagNone})
	}
	return struct{}{}
}

func (o Option[T]) UnwrapOr(v T) T {
	if o.tag == TagSome {
		return o.value
	}
	return v
}

func (o Option[T]) UnwrapOrElse(f func() T) T {
	if o.tag == TagSome {
		return o.value
	}
	return f()
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.tag == TagSome
}

func (o Option[T]) String() string {
	switch o.tag {
	case TagSome:
		return fmt.Sprintf("Some(%v)", o.value)
	case TagNone:
		return TagNone.String()
	default:
		return TagUnset.String()
	}
}

func (o Option[T]) passThrough() Option[T] {
	if o.tag == TagUnset {
		panic(&OptionReturnExpectedError{Data: o})
	}
	return o
}

// ExpectOption panics with *OptionReturnExpectedError when out is unset.
func ExpectOption[T any](out Option[T]) Option[T] {
	if out.tag == TagUnset {
		panic(&OptionReturnExpectedError{Data: out})
	}
	return out
}
