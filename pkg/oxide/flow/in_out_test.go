package flow

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ib-77/oxide/pkg/oxide"
)

func TestToChan_Collect(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Collect(ctx, ToChan(ctx, 1, 2, 3))
	require.True(t, out.IsOk())
	assert.Equal(t, []int{1, 2, 3}, out.Unwrap())
}

func TestToChan_Empty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Collect(ctx, ToChan[int](ctx))
	require.True(t, out.IsOk())
	assert.Empty(t, out.Unwrap())
}

func TestCollect_KeepsFailuresInOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a, b := errors.New("a"), errors.New("b")

	out := Collect(ctx, ToChanResults(ctx, oxide.Ok(1), oxide.Err[int](a), oxide.Ok(2), oxide.Err[int](b)))
	require.True(t, out.IsErr())

	errs := out.UnwrapErrs()
	require.Len(t, errs, 2)
	assert.Same(t, a, errs[0])
	assert.Same(t, b, errs[1])
}

func TestCollect_CancelledContextIsErr(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())

	in := make(chan oxide.Result[int], 1)
	in <- oxide.Ok(1)
	close(in)
	cancel()

	out := Collect(ctx, in)
	require.True(t, out.IsErr())
	assert.ErrorIs(t, out.UnwrapErr(), context.Canceled)
}

func TestToChan_LogsStop(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zap.DebugLevel)
	ctx, cancel := context.WithCancel(WithLogger(context.Background(), zap.New(core)))
	cancel()

	// Nothing reads the channel, so the source can only stop.
	_ = ToChan(ctx, 1, 2, 3)

	assert.Eventually(t, func() bool {
		return logs.FilterMessage("source stopped").Len() == 1
	}, time.Second, 5*time.Millisecond)

	entry := logs.FilterMessage("source stopped").All()[0]
	assert.Equal(t, int64(0), entry.ContextMap()["sent"])
	assert.Equal(t, int64(3), entry.ContextMap()["rest"])
}

func TestFromChanMany(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ch := make(chan string, 2)
	ch <- "a"
	ch <- "b"
	close(ch)

	assert.Equal(t, []string{"a", "b"}, FromChanMany(ctx, ch))
}

func TestGo_Await(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := Await(ctx, Go(ctx, func(context.Context) (int, error) { return 7, nil }))
	assert.Equal(t, 7, ok.Unwrap())

	e := errors.New("failed")
	failed := Await(ctx, Go(ctx, func(context.Context) (int, error) { return 0, e }))
	assert.Same(t, e, failed.UnwrapErr())

	panicked := Await(ctx, Go(ctx, func(context.Context) (int, error) { panic("boom") }))
	var perr *oxide.PanicError
	require.ErrorAs(t, panicked.UnwrapErr(), &perr)
	assert.Equal(t, "boom", perr.Value)
}

func TestGoOutcome_Folds(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	flat := Await(ctx, GoOutcome(ctx, func(context.Context) (any, error) {
		return oxide.Ok(oxide.Ok(5)), nil
	}))
	assert.Equal(t, 5, flat.Unwrap())

	folded := Await(ctx, GoOutcome(ctx, func(context.Context) (any, error) {
		return []any{oxide.Ok(1), 2}, nil
	}))
	assert.Equal(t, []any{1, 2}, folded.Unwrap())

	e := errors.New("x")
	failed := Await(ctx, GoOutcome(ctx, func(context.Context) (any, error) { return nil, e }))
	assert.Same(t, e, failed.UnwrapErr())
}

func TestAwait_ClosedAndCancelled(t *testing.T) {
	t.Parallel()

	closed := make(chan oxide.Result[int])
	close(closed)
	assert.ErrorIs(t, Await(context.Background(), closed).UnwrapErr(), ErrNoResult)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Await(ctx, make(chan oxide.Result[int])).UnwrapErr(), context.Canceled)
}

func TestOptions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, 3, GetWorkerMaxCount(ctx, 3))
	assert.Equal(t, 8, GetWorkerMaxCount(WithWorkerOptions(ctx, 8), 3))
	assert.Equal(t, 3, GetWorkerMaxCount(WithWorkerOptions(ctx, 0), 3))

	assert.False(t, IsProcessRemainingEnabled(ctx, false))
	assert.True(t, IsProcessRemainingEnabled(WithProcessOptions(ctx, true), false))

	assert.NotNil(t, Logger(ctx))
	logger := zap.NewExample()
	assert.Same(t, logger, Logger(WithLogger(ctx, logger)))
}
