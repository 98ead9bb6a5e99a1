package oxide

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEither_Variants(t *testing.T) {
	t.Parallel()
	l := Left[string, int]("foo")
	r := Right[string](3)

	assert.True(t, l.IsLeft())
	assert.False(t, l.IsRight())
	assert.True(t, r.IsRight())
	assert.Equal(t, TagLeft, l.Tag())
	assert.Equal(t, "foo", l.UnwrapLeft())
	assert.Equal(t, 3, r.UnwrapRight())
	assert.Equal(t, "Left(foo)", l.String())
	assert.Equal(t, "Right(3)", r.String())
}

func TestEither_Map(t *testing.T) {
	t.Parallel()
	l := Left[string, int]("foo")
	r := Right[string](3)

	assert.Equal(t, "FOO", l.MapLeft(strings.ToUpper).UnwrapLeft())
	assert.Equal(t, l, l.MapRight(func(v int) int { return v + 1 }))
	assert.Equal(t, 4, r.MapRight(func(v int) int { return v + 1 }).UnwrapRight())
	assert.Equal(t, r, r.MapLeft(strings.ToUpper))

	assert.Panics(t, func() {
		l.MapLeft(func(string) string { panic("unguarded") })
	})
}

func TestEither_AndThen(t *testing.T) {
	t.Parallel()
	l := Left[string, int]("foo")
	r := Right[string](3)

	toRight := func(s string) Either[string, int] { return Right[string](len(s)) }
	toLeft := func(v int) Either[string, int] { return Left[string, int](strings.Repeat("x", v)) }

	assert.Equal(t, 3, l.LeftAndThen(toRight).UnwrapRight())
	assert.Equal(t, l, l.RightAndThen(toLeft))
	assert.Equal(t, "xxx", r.RightAndThen(toLeft).UnwrapLeft())
	assert.Equal(t, r, r.LeftAndThen(toRight))

	p := panicValue(func() {
		l.LeftAndThen(func(string) Either[string, int] { return Either[string, int]{} })
	})
	var eerr *EitherReturnExpectedError
	require.ErrorAs(t, p.(error), &eerr)
	assert.Equal(t, "An Either was expected but got Unset.", eerr.Error())

	assert.Panics(t, func() {
		r.RightAndThen(func(int) Either[string, int] { return Either[string, int]{} })
	})
}

func TestEither_Inspect(t *testing.T) {
	t.Parallel()
	var seen []string

	Left[string, int]("a").
		InspectLeft(func(s string) { seen = append(seen, "left:"+s) }).
		InspectRight(func(int) { seen = append(seen, "right") })
	Right[string](1).
		InspectLeft(func(s string) { seen = append(seen, "left:"+s) }).
		InspectRight(func(int) { seen = append(seen, "right") })

	assert.Equal(t, []string{"left:a", "right"}, seen)
}

func TestEither_Unwrap(t *testing.T) {
	t.Parallel()
	l := Left[string, int]("foo")
	r := Right[string](3)

	p := panicValue(func() { l.UnwrapRight() })
	var uerr *UnwrapError
	require.ErrorAs(t, p.(error), &uerr)
	assert.Equal(t, `Left with "foo" could not be unwrapped as a Right.`, uerr.Error())

	p = panicValue(func() { r.UnwrapLeft() })
	require.ErrorAs(t, p.(error), &uerr)
	assert.Equal(t, TagRight, uerr.Tag)

	assert.Equal(t, 9, l.UnwrapRightOr(9))
	assert.Equal(t, "bar", r.UnwrapLeftOr("bar"))
	assert.Equal(t, "baz", r.UnwrapLeftOrElse(func() string { return "baz" }))
	assert.Equal(t, 3, r.UnwrapRightOrElse(func() int { return 0 }))
}

func TestEither_Swap(t *testing.T) {
	t.Parallel()

	swapped := Left[string, int]("foo").Swap()
	assert.True(t, swapped.IsRight())
	assert.Equal(t, "foo", swapped.UnwrapRight())
	assert.Equal(t, 3, Right[string](3).Swap().UnwrapLeft())

	defer func() {
		var eerr *EitherReturnExpectedError
		require.ErrorAs(t, recover().(error), &eerr)
	}()
	Either[string, int]{}.Swap()
	t.Fatalf("Swap must panic on an unset Either")
}
