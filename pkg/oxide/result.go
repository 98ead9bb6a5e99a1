package oxide

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// Result is either Ok, holding a value of T, or Err, holding one error or an
// ordered list of errors. A Result is immutable: every operation returns a
// new Result or the receiver itself.
//
// The zero Result is unset. It is not a valid container; operations on it
// fail and a callback that returns one violates the chaining contract.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	tag       Tag
	value     T
	errs      []error
	aggregate bool
}

func newResult[T any](tag Tag) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		tag:       tag,
	}
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	r := newResult[T](TagOk)
	r.value = v
	return r
}

// Err wraps a single failure. The error is given a stack trace if it has none;
// an error that already carries one is kept as is.
func Err[T any](err error) Result[T] {
	r := newResult[T](TagErr)
	r.errs = []error{fixTrace(err)}
	return r
}

// Errs wraps an ordered list of failures. Each error is trace-fixed.
// An empty list is stored as a single ErrNilError.
func Errs[T any](errs ...error) Result[T] {
	r := newResult[T](TagErr)
	r.aggregate = true
	if len(errs) == 0 {
		r.errs = []error{fixTrace(nil)}
		return r
	}
	r.errs = make([]error, len(errs))
	for i, err := range errs {
		r.errs[i] = fixTrace(err)
	}
	return r
}

// ErrOf builds an Err from an arbitrary failure reason. Errors are used
// directly, slices become aggregates, anything else is wrapped in *ValueError.
func ErrOf[T any](v any) Result[T] {
	switch data := v.(type) {
	case []error:
		return Errs[T](data...)
	case []any:
		r := newResult[T](TagErr)
		r.aggregate = true
		r.errs = make([]error, len(data))
		for i, d := range data {
			r.errs[i] = fixValue(d)
		}
		return r
	default:
		r := newResult[T](TagErr)
		r.errs = []error{fixValue(v)}
		return r
	}
}

// FailFrom carries the failure of one Result into a Result of another type,
// keeping its id and creation time.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		tag:       from.tag,
		errs:      from.errs,
		aggregate: from.aggregate,
	}
}

func (r Result[T]) Tag() Tag {
	return r.tag
}

func (r Result[T]) Payload() any {
	switch r.tag {
	case TagOk:
		return r.value
	case TagErr:
		return r.UnwrapErr()
	default:
		return nil
	}
}

func (r Result[T]) IsOk() bool {
	return r.tag == TagOk
}

func (r Result[T]) IsErr() bool {
	return r.tag == TagErr
}

// IsEmpty reports whether r is an unset zero value.
func (r Result[T]) IsEmpty() bool {
	return r.tag == TagUnset
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// CreatedAt time of construction (UTC)
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// Map applies f to an Ok value. A panic in f becomes an Err.
func (r Result[T]) Map(f func(T) T) Result[T] {
	if r.tag != TagOk {
		return r.passThrough()
	}
	return Capture(func() Result[T] {
		return Ok(f(r.value))
	})
}

// MapErr applies f to an Err payload and wraps the outcome in a new Err.
func (r Result[T]) MapErr(f func(error) error) Result[T] {
	if r.tag != TagErr {
		return r.passThrough()
	}
	return Capture(func() Result[T] {
		return Err[T](f(r.UnwrapErr()))
	})
}

// AndThen passes an Ok value to f, which must return a valid Result.
func (r Result[T]) AndThen(f func(T) Result[T]) Result[T] {
	if r.tag != TagOk {
		return r.passThrough()
	}
	return Capture(func() Result[T] {
		return ExpectResult(f(r.value))
	})
}

// OrElse passes an Err payload to f, which must return a valid Result.
func (r Result[T]) OrElse(f func(error) Result[T]) Result[T] {
	if r.tag != TagErr {
		return r.passThrough()
	}
	return Capture(func() Result[T] {
		return ExpectResult(f(r.UnwrapErr()))
	})
}

// InspectOk calls f with an Ok value and returns r unchanged.
func (r Result[T]) InspectOk(f func(T)) Result[T] {
	if r.tag != TagOk {
		return r.passThrough()
	}
	return Capture(func() Result[T] {
		f(r.value)
		return r
	})
}

// InspectErr calls f with an Err payload and returns r unchanged.
func (r Result[T]) InspectErr(f func(error)) Result[T] {
	if r.tag != TagErr {
		return r.passThrough()
	}
	return Capture(func() Result[T] {
		f(r.UnwrapErr())
		return r
	})
}

// Unwrap returns the Ok value. It panics with *UnwrapError otherwise.
func (r Result[T]) Unwrap() T {
	if r.tag != TagOk {
		panic(&UnwrapError{Tag: r.tag, Data: r.Payload(), Want: TagOk})
	}
	return r.value
}

// UnwrapErr returns the Err payload. Aggregates come back combined; use
// UnwrapErrs for the ordered parts. It panics with *UnwrapError on Ok.
func (r Result[T]) UnwrapErr() error {
	if r.tag != TagErr {
		panic(&UnwrapError{Tag: r.tag, Data: r.Payload(), Want: TagErr})
	}
	if r.aggregate {
		return multierr.Combine(r.errs...)
	}
	return r.errs[0]
}

// UnwrapErrs returns the Err payload as an ordered list.
func (r Result[T]) UnwrapErrs() []error {
	if r.tag != TagErr {
		panic(&UnwrapError{Tag: r.tag, Data: r.Payload(), Want: TagErr})
	}
	out := make([]error, len(r.errs))
	copy(out, r.errs)
	return out
}

func (r Result[T]) UnwrapOr(v T) T {
	if r.tag == TagOk {
		return r.value
	}
	return v
}

func (r Result[T]) UnwrapOrElse(f func() T) T {
	if r.tag == TagOk {
		return r.value
	}
	return f()
}

// UnwrapErrOrElse returns the Err payload, or f applied to the Ok value.
func (r Result[T]) UnwrapErrOrElse(f func(T) error) error {
	if r.tag == TagErr {
		return r.UnwrapErr()
	}
	return f(r.value)
}

// Get returns the Ok value, or an *UnwrapError when r is not Ok.
func (r Result[T]) Get() (T, error) {
	if r.tag != TagOk {
		var zero T
		return zero, &UnwrapError{Tag: r.tag, Data: r.Payload(), Want: TagOk}
	}
	return r.value, nil
}

// Flatten collapses Results nested in the Ok value, at any depth, and
// returns the innermost one. Err is never unwrapped. A non-nested Result
// comes back as the same instance (same Id) with its payload type erased.
// An unset Result at any level becomes an Err carrying
// *ResultReturnExpectedError.
func (r Result[T]) Flatten() Result[any] {
	if r.tag == TagOk {
		if inner, ok := any(r.value).(AnyResult); ok {
			return ExpectResult(inner.Any()).Flatten()
		}
	}
	return r.passThrough().Any()
}

// Any erases the payload type.
func (r Result[T]) Any() Result[any] {
	out := Result[any]{
		id:        r.id,
		createdAt: r.createdAt,
		tag:       r.tag,
		errs:      r.errs,
		aggregate: r.aggregate,
	}
	if r.tag == TagOk {
		out.value = r.value
	}
	return out
}

func (r Result[T]) String() string {
	switch r.tag {
	case TagOk:
		return fmt.Sprintf("Ok(%v)", r.value)
	case TagErr:
		if r.aggregate {
			return fmt.Sprintf("Err(%v)", r.errs)
		}
		return fmt.Sprintf("Err(%v)", r.errs[0])
	default:
		return TagUnset.String()
	}
}

// passThrough returns r for the inactive branch of an operation. An unset
// receiver is not passed on; it turns into an Err naming itself.
func (r Result[T]) passThrough() Result[T] {
	if r.tag == TagUnset {
		return Err[T](&ResultReturnExpectedError{Data: r})
	}
	return r
}

// ExpectResult enforces the chaining contract on a callback's return value:
// an unset Result is replaced by an Err carrying *ResultReturnExpectedError.
func ExpectResult[T any](out Result[T]) Result[T] {
	if out.tag == TagUnset {
		return Err[T](&ResultReturnExpectedError{Data: out})
	}
	return out
}

// AndThenAny chains a callback whose return type is only known at run time.
// A returned Result of any payload type is used with its type erased;
// anything else yields an Err carrying *ResultReturnExpectedError.
func AndThenAny[T any](r Result[T], f func(T) any) Result[any] {
	if r.tag != TagOk {
		return r.passThrough().Any()
	}
	return Capture(func() Result[any] {
		out := f(r.value)
		if res, ok := out.(AnyResult); ok {
			return ExpectResult(res.Any())
		}
		return Err[any](&ResultReturnExpectedError{Data: out})
	})
}
