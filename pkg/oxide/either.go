package oxide

import "fmt"

// Either holds a Left or a Right value. Neither side means success or
// failure, and callbacks are not guarded against panics.
type Either[L, R any] struct {
	tag   Tag
	left  L
	right R
}

func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{tag: TagLeft, left: l}
}

func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{tag: TagRight, right: r}
}

func (e Either[L, R]) Tag() Tag {
	return e.tag
}

func (e Either[L, R]) Payload() any {
	switch e.tag {
	case TagLeft:
		return e.left
	case TagRight:
		return e.right
	default:
		return nil
	}
}

func (e Either[L, R]) IsLeft() bool {
	return e.tag == TagLeft
}

func (e Either[L, R]) IsRight() bool {
	return e.tag == TagRight
}

func (e Either[L, R]) MapLeft(f func(L) L) Either[L, R] {
	if e.tag != TagLeft {
		return e.passThrough()
	}
	return Left[L, R](f(e.left))
}

func (e Either[L, R]) MapRight(f func(R) R) Either[L, R] {
	if e.tag != TagRight {
		return e.passThrough()
	}
	return Right[L](f(e.right))
}

// LeftAndThen passes a Left value to f, which must return a valid Either.
// An unset Either from f panics with *EitherReturnExpectedError.
func (e Either[L, R]) LeftAndThen(f func(L) Either[L, R]) Either[L, R] {
	if e.tag != TagLeft {
		return e.passThrough()
	}
	return ExpectEither(f(e.left))
}

// RightAndThen is the mirror of LeftAndThen.
func (e Either[L, R]) RightAndThen(f func(R) Either[L, R]) Either[L, R] {
	if e.tag != TagRight {
		return e.passThrough()
	}
	return ExpectEither(f(e.right))
}

func (e Either[L, R]) InspectLeft(f func(L)) Either[L, R] {
	if e.tag == TagLeft {
		f(e.left)
	}
	return e.passThrough()
}

func (e Either[L, R]) InspectRight(f func(R)) Either[L, R] {
	if e.tag == TagRight {
		f(e.right)
	}
	return e.passThrough()
}

// UnwrapLeft returns the Left value. It panics with *UnwrapError on Right.
func (e Either[L, R]) UnwrapLeft() L {
	if e.tag != TagLeft {
		panic(&UnwrapError{Tag: e.tag, Data: e.Payload(), Want: TagLeft})
	}
	return e.left
}

// UnwrapRight returns the Right value. It panics with *UnwrapError on Left.
func (e Either[L, R]) UnwrapRight() R {
	if e.tag != TagRight {
		panic(&UnwrapError{Tag: e.tag, Data: e.Payload(), Want: TagRight})
	}
	return e.right
}

func (e Either[L, R]) UnwrapLeftOr(l L) L {
	if e.tag == TagLeft {
		return e.left
	}
	return l
}

func (e Either[L, R]) UnwrapRightOr(r R) R {
	if e.tag == TagRight {
		return e.right
	}
	return r
}

func (e Either[L, R]) UnwrapLeftOrElse(f func() L) L {
	if e.tag == TagLeft {
		return e.left
	}
	return f()
}

func (e Either[L, R]) UnwrapRightOrElse(f func() R) R {
	if e.tag == TagRight {
		return e.right
	}
	return f()
}

// Swap exchanges the sides. An unset Either panics with
// *EitherReturnExpectedError.
func (e Either[L, R]) Swap() Either[R, L] {
	switch e.tag {
	case TagLeft:
		return Right[R](e.left)
	case TagRight:
		return Left[R, L](e.right)
	default:
		panic(&EitherReturnExpectedError{Data: e})
	}
}

func (e Either[L, R]) String() string {
	switch e.tag {
	case TagLeft:
		return fmt.Sprintf("Left(%v)", e.left)
	case TagRight:
		return fmt.Sprintf("Right(%v)", e.right)
	default:
		return TagUnset.String()
	}
}

func (e Either[L, R]) passThrough() Either[L, R] {
	if e.tag == TagUnset {
		panic(&EitherReturnExpectedError{Data: e})
	}
	return e
}

// ExpectEither panics with *EitherReturnExpectedError when out is unset.
func ExpectEither[L, R any](out Either[L, R]) Either[L, R] {
	if out.tag == TagUnset {
		panic(&EitherReturnExpectedError{Data: out})
	}
	return out
}
