package solo

import "github.com/ib-77/oxide/pkg/oxide"

func MapLeft[L, R, O any](input oxide.Either[L, R], onLeft func(L) O) oxide.Either[O, R] {
	switch input.Tag() {
	case oxide.TagLeft:
		return oxide.Left[O, R](onLeft(input.UnwrapLeft()))
	case oxide.TagRight:
		return oxide.Right[O](input.UnwrapRight())
	default:
		panic(&oxide.EitherReturnExpectedError{Data: input})
	}
}

func MapRight[L, R, O any](input oxide.Either[L, R], onRight func(R) O) oxide.Either[L, O] {
	switch input.Tag() {
	case oxide.TagRight:
		return oxide.Right[L](onRight(input.UnwrapRight()))
	case oxide.TagLeft:
		return oxide.Left[L, O](input.UnwrapLeft())
	default:
		panic(&oxide.EitherReturnExpectedError{Data: input})
	}
}

// LeftAndThen passes a Left value to onLeft, which must return a valid
// Either. A Right is carried over.
func LeftAndThen[L, R, O any](input oxide.Either[L, R], onLeft func(L) oxide.Either[O, R]) oxide.Either[O, R] {
	switch input.Tag() {
	case oxide.TagLeft:
		return oxide.ExpectEither(onLeft(input.UnwrapLeft()))
	case oxide.TagRight:
		return oxide.Right[O](input.UnwrapRight())
	default:
		panic(&oxide.EitherReturnExpectedError{Data: input})
	}
}

// RightAndThen is the mirror of LeftAndThen.
func RightAndThen[L, R, O any](input oxide.Either[L, R], onRight func(R) oxide.Either[L, O]) oxide.Either[L, O] {
	switch input.Tag() {
	case oxide.TagRight:
		return oxide.ExpectEither(onRight(input.UnwrapRight()))
	case oxide.TagLeft:
		return oxide.Left[L, O](input.UnwrapLeft())
	default:
		panic(&oxide.EitherReturnExpectedError{Data: input})
	}
}

// MatchEither calls the handler of the active side.
func MatchEither[L, R, O any](input oxide.Either[L, R], onLeft func(L) O, onRight func(R) O) O {
	switch input.Tag() {
	case oxide.TagLeft:
		if onLeft == nil {
			panic(&oxide.MatchError{Tag: oxide.TagLeft})
		}
		return onLeft(input.UnwrapLeft())
	case oxide.TagRight:
		if onRight == nil {
			panic(&oxide.MatchError{Tag: oxide.TagRight})
		}
		return onRight(input.UnwrapRight())
	default:
		panic(&oxide.MatchError{Tag: input.Tag()})
	}
}

func LeftToOption[L, R any](input oxide.Either[L, R]) oxide.Option[L] {
	if input.IsLeft() {
		return oxide.OptionOf(input.UnwrapLeft())
	}
	return oxide.None[L]()
}

func RightToOption[L, R any](input oxide.Either[L, R]) oxide.Option[R] {
	if input.IsRight() {
		return oxide.OptionOf(input.UnwrapRight())
	}
	return oxide.None[R]()
}

// ToEither puts the Err payload on the Left and the Ok value on the Right.
func ToEither[T any](input oxide.Result[T]) oxide.Either[error, T] {
	return Match(input,
		oxide.Right[error, T],
		oxide.Left[error, T])
}
