package oxide

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrOxide is the root of every error produced by this package.
// Use errors.Is(err, ErrOxide) to tell library failures from caller payloads.
var ErrOxide = errors.New("oxide")

// ErrNilError replaces a nil error handed to an Err constructor.
var ErrNilError = fmt.Errorf("%w: nil error cannot be used as an Err payload", ErrOxide)

// ErrNilSome is raised when Some is handed a nil value.
var ErrNilSome = fmt.Errorf("%w: Some cannot hold a nil value", ErrOxide)

// UnwrapError is raised (as a panic value) when a container is unwrapped as
// the variant it is not.
type UnwrapError struct {
	Tag  Tag
	Data any
	Want Tag
}

func (e *UnwrapError) Error() string {
	if e.Tag == TagNone {
		return fmt.Sprintf("%s could not be unwrapped as a %s.", e.Tag, e.Want)
	}
	return fmt.Sprintf("%s with %s could not be unwrapped as %s.", e.Tag, inspect(e.Data), article(e.Want))
}

func (e *UnwrapError) Is(target error) bool {
	return target == ErrOxide
}

// ResultReturnExpectedError is the Err payload produced when a chained
// callback does not hand back a valid Result.
type ResultReturnExpectedError struct {
	Data any
}

func (e *ResultReturnExpectedError) Error() string {
	return fmt.Sprintf("A Result was expected but got %s.", inspect(e.Data))
}

func (e *ResultReturnExpectedError) Is(target error) bool {
	return target == ErrOxide
}

// OptionReturnExpectedError is raised when an Option callback does not hand
// back a valid Option.
type OptionReturnExpectedError struct {
	Data any
}

func (e *OptionReturnExpectedError) Error() string {
	return fmt.Sprintf("An Option was expected but got %s.", inspect(e.Data))
}

func (e *OptionReturnExpectedError) Is(target error) bool {
	return target == ErrOxide
}

// EitherReturnExpectedError is raised when an Either callback does not hand
// back a valid Either.
type EitherReturnExpectedError struct {
	Data any
}

func (e *EitherReturnExpectedError) Error() string {
	return fmt.Sprintf("An Either was expected but got %s.", inspect(e.Data))
}

func (e *EitherReturnExpectedError) Is(target error) bool {
	return target == ErrOxide
}

// MatchError reports a match without a handler for the active variant.
type MatchError struct {
	Tag Tag
}

func (e *MatchError) Error() string {
	family := e.Tag.Family()
	if family == 0 {
		return "match on an unset container"
	}
	return fmt.Sprintf("no match handler for %s of %s", e.Tag, article(family))
}

func (e *MatchError) Is(target error) bool {
	return target == ErrOxide
}

// PanicError carries a non-error value recovered from a panicking callback.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func (e *PanicError) Is(target error) bool {
	return target == ErrOxide
}

// ValueError wraps a non-error value used as a failure reason.
type ValueError struct {
	Value any
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%v", e.Value)
}

// inspect renders a payload for error messages. Containers print through
// their String method, everything else in Go syntax.
func inspect(v any) string {
	if c, ok := v.(interface {
		Container
		fmt.Stringer
	}); ok {
		return c.String()
	}
	if err, ok := v.(error); ok {
		return fmt.Sprintf("%q", err.Error())
	}
	return fmt.Sprintf("%#v", v)
}

func article(v fmt.Stringer) string {
	s := v.String()
	switch s {
	case TagOk.String(), TagErr.String(), FamilyOption.String(), FamilyEither.String():
		return "an " + s
	default:
		return "a " + s
	}
}
