package flow

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/ib-77/oxide/pkg/oxide"
)

// Stage processes one result of a pipeline. Stages built with the helpers of
// this package pass Err inputs through untouched.
type Stage[In, Out any] func(ctx context.Context, input oxide.Result[In]) oxide.Result[Out]

// Locomotive is a single pipeline worker. It pulls from inputCh, runs the
// stage and pushes to outCh until the input closes or the context is done.
// A stage that panics or returns an unset Result yields an Err.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan oxide.Result[In], outCh chan<- oxide.Result[Out],
	stage Stage[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()
	o := observe(ctx)

	for {
		select {
		case <-ctx.Done():
			cancelRemaining(ctx, o, inputCh, outCh)
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			processed := run(ctx, o, stage, in)

			select {
			case outCh <- processed:
			case <-ctx.Done():
				if IsProcessRemainingEnabled(ctx, false) {
					outCh <- processed
				} else {
					o.dropped(ctx, processed.Id(), processed.Tag())
				}
				cancelRemaining(ctx, o, inputCh, outCh)
				return
			}
		}
	}
}

// cancelRemaining drains inputCh after cancellation when remaining inputs are
// to be processed. Failures keep their errors and Ok inputs fail with the
// context error.
func cancelRemaining[In, Out any](ctx context.Context, o instruments,
	inputCh <-chan oxide.Result[In], outCh chan<- oxide.Result[Out]) {
	if !IsProcessRemainingEnabled(ctx, false) {
		return
	}

	count := 0
	for in := range inputCh {
		count++
		if in.IsErr() {
			outCh <- oxide.FailFrom[In, Out](in)
			continue
		}
		outCh <- oxide.Err[Out](ctx.Err())
	}

	o.log.Debug("remaining inputs cancelled",
		zap.Int("count", count),
		zap.Error(ctx.Err()))
}
