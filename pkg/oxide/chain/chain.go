package chain

import (
	"context"

	"github.com/ib-77/oxide/pkg/oxide"
	"github.com/ib-77/oxide/pkg/oxide/solo"
)

// Chain wraps an oxide.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result oxide.Result[T]
}

// Start creates a new chain from an oxide.Result
func Start[T any](ctx context.Context, result oxide.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, oxide.Ok(value))
}

// Result returns the underlying oxide.Result
func (c *Chain[T]) Result() oxide.Result[T] {
	return c.result
}

// Then chains a function that returns oxide.Result[U]
func Then[T, U any](c *Chain[T], onOk func(context.Context, T) oxide.Result[U]) *Chain[U] {
	in := c.live()
	return &Chain[U]{
		ctx: c.ctx,
		result: solo.AndThen(in, func(v T) oxide.Result[U] {
			return onOk(c.ctx, v)
		}),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnOk func(context.Context, T) (U, error)) *Chain[U] {
	in := c.live()
	return &Chain[U]{
		ctx: c.ctx,
		result: solo.Try(in, func(v T) (U, error) {
			return tryOnOk(c.ctx, v)
		}),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onOk func(context.Context, T) U) *Chain[U] {
	in := c.live()
	return &Chain[U]{
		ctx: c.ctx,
		result: solo.Map(in, func(v T) U {
			return onOk(c.ctx, v)
		}),
	}
}

// Then is the same-type form of the package level Then
func (c *Chain[T]) Then(onOk func(context.Context, T) oxide.Result[T]) *Chain[T] {
	return Then(c, onOk)
}

// Map is the same-type form of the package level Map
func (c *Chain[T]) Map(onOk func(context.Context, T) T) *Chain[T] {
	return Map(c, onOk)
}

// Recover gives a failed chain a chance to return to Ok
func (c *Chain[T]) Recover(onErr func(context.Context, error) oxide.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		result: c.result.OrElse(func(err error) oxide.Result[T] {
			return onErr(c.ctx, err)
		}),
	}
}

// Ensure performs side effects without changing the result. Nil callbacks
// are skipped.
func (c *Chain[T]) Ensure(onOk func(context.Context, T), onErr func(context.Context, error)) *Chain[T] {
	res := c.result
	if onOk != nil {
		res = res.InspectOk(func(v T) { onOk(c.ctx, v) })
	}
	if onErr != nil {
		res = res.InspectErr(func(err error) { onErr(c.ctx, err) })
	}
	return &Chain[T]{ctx: c.ctx, result: res}
}

// Finally collapses the chain into a final value. A cancelled context is
// routed to onCancel when one is given, and to onErr otherwise.
func Finally[T, U any](c *Chain[T], onOk func(context.Context, T) U,
	onErr func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	return solo.Match(c.result,
		func(v T) U {
			return onOk(c.ctx, v)
		},
		func(err error) U {
			if onCancel != nil && oxide.IsCancellationError(err) {
				return onCancel(c.ctx, err)
			}
			return onErr(c.ctx, err)
		})
}

// live short-circuits an Ok result into Err once the context is done.
func (c *Chain[T]) live() oxide.Result[T] {
	if c.result.IsOk() && c.ctx.Err() != nil {
		return oxide.Err[T](c.ctx.Err())
	}
	return c.result
}
