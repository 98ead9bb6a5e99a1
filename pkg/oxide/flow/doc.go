// Package flow runs oxide Results through concurrent channel pipelines.
//
// Sources (ToChan, ToChanResults) feed a channel, Run and Turnout fan it out
// over worker goroutines applying a Stage, and Collect or Finally drain the
// output. Go and Await bridge one-off goroutines.
//
// Runtime knobs travel on the context:
//
//	ctx = flow.WithWorkerOptions(ctx, 4)      // workers when lines <= 0
//	ctx = flow.WithProcessOptions(ctx, true)  // drain queued inputs on cancel
//	ctx = flow.WithLogger(ctx, logger)        // zap, debug level only
//	ctx = flow.WithMetrics(ctx, metricz.New())
//	ctx = flow.WithTracer(ctx, tracez.New())  // one span per stage run
//	ctx = flow.WithHooks(ctx, hookz.New[flow.Event]())
//	ctx = flow.WithClock(ctx, clock)          // Retry delays
//
// With ProcessRemaining enabled the output must be read until it closes;
// FromChanMany stops at cancellation and leaves the workers blocked.
package flow
