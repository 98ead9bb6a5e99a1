package chain

import (
	"context"

	"github.com/ib-77/oxide/pkg/oxide"
)

// RepeatUntil runs onOk at least once. It keeps running it while the chain
// stays Ok and until reports true for the latest value; a false from until
// ends the loop.
func (c *Chain[T]) RepeatUntil(onOk func(context.Context, T) oxide.Result[T],
	until func(context.Context, T) bool) *Chain[T] {

	if !c.live().IsOk() {
		return c.settled()
	}

	for {
		c = c.Then(onOk)
		if !c.result.IsOk() || !until(c.ctx, c.result.Unwrap()) {
			return c
		}
	}
}

// While runs onOk as long as the chain is Ok and while holds for its value.
func (c *Chain[T]) While(onOk func(context.Context, T) oxide.Result[T],
	while func(context.Context, T) bool) *Chain[T] {

	for c.live().IsOk() && while(c.ctx, c.result.Unwrap()) {
		c = c.Then(onOk)
	}
	return c.settled()
}

// Or returns the first Ok chain among c and the alternatives. With no Ok
// chain a cancelled one wins over any other failure.
func (c *Chain[T]) Or(alternatives ...*Chain[T]) *Chain[T] {
	candidates := append([]*Chain[T]{c}, alternatives...)

	var cancelled, failed *Chain[T]
	for _, ch := range candidates {
		res := ch.live()
		switch {
		case res.IsOk():
			return ch
		case res.IsErr() && oxide.IsCancellationError(res.UnwrapErr()):
			if cancelled == nil {
				cancelled = ch.settled()
			}
		default:
			if failed == nil {
				failed = ch.settled()
			}
		}
	}

	if cancelled != nil {
		return cancelled
	}
	return failed
}

// And returns the first failed chain among c and the required ones, or the
// last chain when all are Ok.
func (c *Chain[T]) And(required ...*Chain[T]) *Chain[T] {
	last := c
	for _, ch := range append([]*Chain[T]{c}, required...) {
		if !ch.live().IsOk() {
			return ch.settled()
		}
		last = ch
	}
	return last
}

// settled pins the cancellation short-circuit into the stored result.
func (c *Chain[T]) settled() *Chain[T] {
	return &Chain[T]{ctx: c.ctx, result: c.live()}
}
