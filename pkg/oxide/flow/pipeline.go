package flow

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ib-77/oxide/pkg/oxide"
	"github.com/ib-77/oxide/pkg/oxide/solo"
)

const defaultLines = 1

// Run starts lines workers that apply a same-type stage to every input.
// A non-positive lines falls back to the worker options of the context.
func Run[T any](ctx context.Context, inputCh <-chan oxide.Result[T], stage Stage[T, T],
	lines int) <-chan oxide.Result[T] {
	return Turnout(ctx, inputCh, stage, lines)
}

// Turnout starts lines workers that apply a type-changing stage. The output
// is closed once every worker has stopped. Ordering is not preserved when
// more than one worker runs.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan oxide.Result[In], stage Stage[In, Out],
	lines int) <-chan oxide.Result[Out] {

	if lines <= 0 {
		lines = GetWorkerMaxCount(ctx, defaultLines)
	}

	observe(ctx).workers(lines)

	out := make(chan oxide.Result[Out])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go Locomotive(ctx, inputCh, out, stage, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func Switch[In, Out any](onOk func(ctx context.Context, in In) oxide.Result[Out]) Stage[In, Out] {
	return func(ctx context.Context, input oxide.Result[In]) oxide.Result[Out] {
		return solo.AndThen(input, func(in In) oxide.Result[Out] {
			return onOk(ctx, in)
		})
	}
}

func Map[In, Out any](onOk func(ctx context.Context, in In) Out) Stage[In, Out] {
	return func(ctx context.Context, input oxide.Result[In]) oxide.Result[Out] {
		return solo.Map(input, func(in In) Out {
			return onOk(ctx, in)
		})
	}
}

func Try[In, Out any](onOk func(ctx context.Context, in In) (Out, error)) Stage[In, Out] {
	return func(ctx context.Context, input oxide.Result[In]) oxide.Result[Out] {
		return solo.Try(input, func(in In) (Out, error) {
			return onOk(ctx, in)
		})
	}
}

func Validate[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) Stage[T, T] {
	return func(ctx context.Context, input oxide.Result[T]) oxide.Result[T] {
		return solo.Validate(input, func(in T) (bool, string) {
			return validate(ctx, in)
		})
	}
}

// Tee runs a side effect on Ok values.
func Tee[T any](onOk func(ctx context.Context, in T)) Stage[T, T] {
	return func(ctx context.Context, input oxide.Result[T]) oxide.Result[T] {
		return input.InspectOk(func(in T) {
			onOk(ctx, in)
		})
	}
}

// Recover lets a failed input return to Ok.
func Recover[T any](onErr func(ctx context.Context, err error) oxide.Result[T]) Stage[T, T] {
	return func(ctx context.Context, input oxide.Result[T]) oxide.Result[T] {
		return input.OrElse(func(err error) oxide.Result[T] {
			return onErr(ctx, err)
		})
	}
}

// DoubleMap settles every input into an Ok value, routing failures through
// onErr.
func DoubleMap[In, Out any](onOk func(ctx context.Context, in In) Out,
	onErr func(ctx context.Context, err error) Out) Stage[In, Out] {
	return func(ctx context.Context, input oxide.Result[In]) oxide.Result[Out] {
		var settle func(error) Out
		if onErr != nil {
			settle = func(err error) Out { return onErr(ctx, err) }
		}
		return solo.DoubleMap(input, func(in In) Out { return onOk(ctx, in) }, settle)
	}
}

// Then composes two stages into one.
func Then[In, Mid, Out any](first Stage[In, Mid], second Stage[Mid, Out]) Stage[In, Out] {
	return func(ctx context.Context, input oxide.Result[In]) oxide.Result[Out] {
		return second(ctx, first(ctx, input))
	}
}

// Finally settles every result into a plain value. Cancellation errors go to
// onCancel when it is given and to onErr otherwise.
func Finally[In, Out any](ctx context.Context, inputCh <-chan oxide.Result[In],
	onOk func(ctx context.Context, in In) Out,
	onErr func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for in := range inputCh {
			v := solo.Match(oxide.ExpectResult(in),
				func(v In) Out { return onOk(ctx, v) },
				func(err error) Out {
					if onCancel != nil && oxide.IsCancellationError(err) {
						return onCancel(ctx, err)
					}
					return onErr(ctx, err)
				})

			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Retry runs stage up to attempts times while it fails, doubling delay
// between attempts. Cancellation errors are not retried, and a context that
// is done while waiting ends the retries with its error. Delays use the
// clock attached with WithClock.
func Retry[In, Out any](attempts int, delay time.Duration, stage Stage[In, Out]) Stage[In, Out] {
	return func(ctx context.Context, input oxide.Result[In]) oxide.Result[Out] {
		o := observe(ctx)
		clock := getClock(ctx)

		out := apply(ctx, stage, input)
		for i := 1; i < attempts && out.IsErr() && input.IsOk(); i++ {
			if oxide.IsCancellationError(out.UnwrapErr()) {
				return out
			}

			o.log.Debug("stage failed, retrying",
				zap.Int("attempt", i),
				zap.Int("max_attempts", attempts),
				zap.Duration("delay", delay),
				zap.Error(out.UnwrapErr()))

			select {
			case <-clock.After(delay):
				delay *= 2
			case <-ctx.Done():
				return oxide.Err[Out](ctx.Err())
			}

			if o.metrics != nil {
				o.metrics.Counter(RetriesTotal).Inc()
			}
			out = apply(ctx, stage, input)
		}
		return out
	}
}
