package flow

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ib-77/oxide/pkg/oxide"
)

// ErrNoResult is returned by Await when the channel closes without a value.
var ErrNoResult = errors.New("flow: channel closed without a result")

// ToChan feeds values into a new channel as Ok results. The channel is
// closed once every value is sent or the context is done.
func ToChan[T any](ctx context.Context, values ...T) <-chan oxide.Result[T] {
	results := make([]oxide.Result[T], 0, len(values))
	for _, v := range values {
		results = append(results, oxide.Ok(v))
	}
	return ToChanResults(ctx, results...)
}

// ToChanResults feeds prepared results into a new channel.
func ToChanResults[T any](ctx context.Context, results ...oxide.Result[T]) <-chan oxide.Result[T] {
	in := make(chan oxide.Result[T])

	go func() {
		defer close(in)

		for i, r := range results {
			select {
			case in <- r:
			case <-ctx.Done():
				Logger(ctx).Debug("source stopped",
					zap.Int("sent", i),
					zap.Int("rest", len(results)-i),
					zap.Error(ctx.Err()))
				return
			}
		}
	}()

	return in
}

// FromChanMany drains a channel into a slice until it is closed or the
// context is done.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	var values []T
	for {
		select {
		case <-ctx.Done():
			return values
		case v, ok := <-out:
			if !ok {
				return values
			}
			values = append(values, v)
		}
	}
}

// Collect folds every result of a closed channel into one Result. A context
// that is done by the time the channel closes contributes its error, so a
// cut-short pipeline never reports Ok.
func Collect[T any](ctx context.Context, in <-chan oxide.Result[T]) oxide.Result[[]T] {
	var results []oxide.Result[T]
	for r := range in {
		results = append(results, r)
	}
	if err := ctx.Err(); err != nil {
		results = append(results, oxide.Err[T](err))
	}
	return oxide.Collect(results...)
}

// Go runs fn on its own goroutine and delivers its outcome as a single
// Result. A panic in fn becomes an Err.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) <-chan oxide.Result[T] {
	out := make(chan oxide.Result[T], 1)

	go func() {
		defer close(out)
		out <- oxide.Capture(func() oxide.Result[T] {
			return oxide.From(fn(ctx))
		})
	}()

	return out
}

// GoOutcome is Go for untyped work. Its value is folded the same way
// oxide.FromOutcome folds it: a returned Result is flattened and a slice
// holding Results is collected.
func GoOutcome(ctx context.Context, fn func(context.Context) (any, error)) <-chan oxide.Result[any] {
	out := make(chan oxide.Result[any], 1)

	go func() {
		defer close(out)
		out <- oxide.Capture(func() oxide.Result[any] {
			v, err := fn(ctx)
			return oxide.FromOutcome(err == nil, v, err)
		})
	}()

	return out
}

// Await waits for the first result on ch. The context error is returned as
// an Err when it fires first.
func Await[T any](ctx context.Context, ch <-chan oxide.Result[T]) oxide.Result[T] {
	select {
	case r, ok := <-ch:
		if !ok {
			return oxide.Err[T](ErrNoResult)
		}
		return r
	case <-ctx.Done():
		return oxide.Err[T](ctx.Err())
	}
}
