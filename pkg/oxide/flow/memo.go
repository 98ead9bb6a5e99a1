package flow

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ib-77/oxide/pkg/oxide"
)

// Memo caches the Ok outputs of stage by input value in an LRU of the given
// size. Failures are not cached, so a failed input is processed again the
// next time it arrives. The returned stage is safe for concurrent workers.
func Memo[In comparable, Out any](size int, stage Stage[In, Out]) (Stage[In, Out], error) {
	cache, err := lru.New[In, oxide.Result[Out]](size)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, input oxide.Result[In]) oxide.Result[Out] {
		if !input.IsOk() {
			return apply(ctx, stage, input)
		}

		key := input.Unwrap()
		if cached, ok := cache.Get(key); ok {
			return cached
		}

		out := apply(ctx, stage, input)
		if out.IsOk() {
			cache.Add(key, out)
		}
		return out
	}, nil
}
