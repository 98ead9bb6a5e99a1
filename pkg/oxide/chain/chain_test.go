package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/oxide/pkg/oxide"
)

func TestStart_Result_Ok(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	base := oxide.Ok(10)
	out := Start(ctx, base).Result()
	if !out.IsOk() || out.Unwrap() != 10 || out.Id() != base.Id() {
		t.Fatalf("expected the same Ok(10), got %v", out)
	}
}

func TestFromValue_Ok(t *testing.T) {
	t.Parallel()
	out := FromValue(context.Background(), 7).Result()
	if !out.IsOk() || out.Unwrap() != 7 {
		t.Fatalf("expected Ok(7), got %v", out)
	}
}

func TestThen_ShortCircuitOnErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := Start(ctx, oxide.Err[int](errors.New("boom")))
	called := false
	out := Then(c, func(ctx context.Context, v int) oxide.Result[string] {
		called = true
		return oxide.Ok("ok")
	}).Result()
	if !out.IsErr() || out.UnwrapErr().Error() != "boom" {
		t.Fatalf("expected Err 'boom', got %v", out)
	}
	if called {
		t.Fatalf("Then onOk must not be called on Err input")
	}
}

func TestThen_ContractViolation(t *testing.T) {
	t.Parallel()
	out := FromValue(context.Background(), 1).
		Then(func(context.Context, int) oxide.Result[int] { return oxide.Result[int]{} }).
		Result()
	var rerr *oxide.ResultReturnExpectedError
	if !out.IsErr() || !errors.As(out.UnwrapErr(), &rerr) {
		t.Fatalf("expected ResultReturnExpectedError, got %v", out)
	}
}

func TestThenTry_OkAndErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := ThenTry(FromValue(ctx, "3"), func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	}).Result()
	if !out.IsOk() || out.Unwrap() != 3 {
		t.Fatalf("expected Ok(3), got %v", out)
	}

	out = ThenTry(FromValue(ctx, "x"), func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	}).Result()
	if !out.IsErr() || !errors.Is(out.UnwrapErr(), strconv.ErrSyntax) {
		t.Fatalf("expected syntax Err, got %v", out)
	}
}

func TestMap_OkAndPanic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Map(FromValue(ctx, 5), func(_ context.Context, v int) string {
		return "n:" + strconv.Itoa(v)
	}).Result()
	if !out.IsOk() || out.Unwrap() != "n:5" {
		t.Fatalf("expected Ok('n:5'), got %v", out)
	}

	same := FromValue(ctx, 5).Map(func(context.Context, int) int { panic("broken") }).Result()
	var perr *oxide.PanicError
	if !same.IsErr() || !errors.As(same.UnwrapErr(), &perr) {
		t.Fatalf("expected captured panic, got %v", same)
	}
}

func TestRecover(t *testing.T) {
	t.Parallel()
	out := Start(context.Background(), oxide.Err[string](errors.New("a"))).
		Recover(func(_ context.Context, err error) oxide.Result[string] {
			return oxide.Ok(err.Error() + "-recovered")
		}).
		Result()
	if !out.IsOk() || out.Unwrap() != "a-recovered" {
		t.Fatalf("expected Ok('a-recovered'), got %v", out)
	}
}

func TestEnsure_SideEffects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	okCalled, errCalled := false, false
	out := FromValue(ctx, 11).
		Ensure(func(context.Context, int) { okCalled = true }, func(context.Context, error) { errCalled = true }).
		Result()
	if !out.IsOk() || out.Unwrap() != 11 {
		t.Fatalf("expected Ok(11), got %v", out)
	}
	if !okCalled || errCalled {
		t.Fatalf("expected Ok side effect only; ok=%v, err=%v", okCalled, errCalled)
	}

	okCalled, errCalled = false, false
	out = Start(ctx, oxide.Err[int](errors.New("bad"))).
		Ensure(func(context.Context, int) { okCalled = true }, func(context.Context, error) { errCalled = true }).
		Result()
	if !out.IsErr() || okCalled || !errCalled {
		t.Fatalf("expected Err side effect only; ok=%v, err=%v", okCalled, errCalled)
	}

	out = FromValue(ctx, 1).Ensure(nil, nil).Result()
	if !out.IsOk() || out.Unwrap() != 1 {
		t.Fatalf("nil callbacks must leave the result unchanged, got %v", out)
	}
}

func TestCancelledContext_ShortCircuits(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	c := Then(FromValue(ctx, 1), func(context.Context, int) oxide.Result[int] {
		called = true
		return oxide.Ok(2)
	})
	if called {
		t.Fatalf("a step must not run after cancellation")
	}

	got := Finally(c,
		func(_ context.Context, v int) int { return v },
		func(context.Context, error) int { return -1 },
		func(context.Context, error) int { return -2 },
	)
	if got != -2 {
		t.Fatalf("expected -2 for cancel, got %d", got)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	onOk := func(_ context.Context, v int) int { return v + 100 }
	onErr := func(context.Context, error) int { return -1 }

	if s := Finally(FromValue(ctx, 3), onOk, onErr, nil); s != 103 {
		t.Fatalf("expected 103, got %d", s)
	}
	if f := Finally(Start(ctx, oxide.Err[int](errors.New("x"))), onOk, onErr, nil); f != -1 {
		t.Fatalf("expected -1, got %d", f)
	}
	if c := Finally(Start(ctx, oxide.Err[int](context.Canceled)), onOk, onErr, nil); c != -1 {
		t.Fatalf("cancel without onCancel must use onErr, got %d", c)
	}
}
