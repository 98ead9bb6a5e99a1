package flow

import (
	"context"

	"github.com/google/uuid"
	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
	"go.uber.org/zap"

	"github.com/ib-77/oxide/pkg/oxide"
)

const (
	MetricsOptionKey OptionKey = "metrics_options"
	TracerOptionKey  OptionKey = "tracer_options"
	HooksOptionKey   OptionKey = "hooks_options"
	ClockOptionKey   OptionKey = "clock_options"
)

// Observability keys for pipeline workers.
const (
	// Metrics.
	ProcessedTotal = metricz.Key("flow.processed.total")
	OkTotal        = metricz.Key("flow.ok.total")
	ErrTotal       = metricz.Key("flow.err.total")
	DroppedTotal   = metricz.Key("flow.dropped.total")
	RetriesTotal   = metricz.Key("flow.retries.total")
	WorkersMax     = metricz.Key("flow.workers.max")

	// Spans.
	StageSpan = tracez.Key("flow.stage")

	// Tags.
	TagResultID = tracez.Tag("flow.result_id")
	TagSuccess  = tracez.Tag("flow.success")
	TagError    = tracez.Tag("flow.error")

	// Hook event keys.
	EventProcessed = hookz.Key("flow.processed")
	EventDropped   = hookz.Key("flow.dropped")
)

// Event describes one result leaving a worker.
type Event struct {
	ID  uuid.UUID
	Tag oxide.Tag
	Err error
}

func WithMetrics(ctx context.Context, metrics *metricz.Registry) context.Context {
	return context.WithValue(ctx, MetricsOptionKey, metrics)
}

func WithTracer(ctx context.Context, tracer *tracez.Tracer) context.Context {
	return context.WithValue(ctx, TracerOptionKey, tracer)
}

func WithHooks(ctx context.Context, hooks *hookz.Hooks[Event]) context.Context {
	return context.WithValue(ctx, HooksOptionKey, hooks)
}

// WithClock replaces the real clock used for retry delays.
func WithClock(ctx context.Context, clock clockz.Clock) context.Context {
	return context.WithValue(ctx, ClockOptionKey, clock)
}

func getClock(ctx context.Context) clockz.Clock {
	if clock, ok := ctx.Value(ClockOptionKey).(clockz.Clock); ok && clock != nil {
		return clock
	}
	return clockz.RealClock
}

// instruments bundles the optional observability found on a context.
type instruments struct {
	log     *zap.Logger
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[Event]
}

func observe(ctx context.Context) instruments {
	o := instruments{log: Logger(ctx)}
	o.metrics, _ = ctx.Value(MetricsOptionKey).(*metricz.Registry)
	o.tracer, _ = ctx.Value(TracerOptionKey).(*tracez.Tracer)
	o.hooks, _ = ctx.Value(HooksOptionKey).(*hookz.Hooks[Event])
	return o
}

func (o instruments) workers(n int) {
	if o.metrics != nil {
		o.metrics.Gauge(WorkersMax).Set(float64(n))
	}
}

// run applies the stage inside a span and records the outcome.
func run[In, Out any](ctx context.Context, o instruments, stage Stage[In, Out], in oxide.Result[In]) oxide.Result[Out] {
	if o.tracer == nil {
		return record(ctx, o, apply(ctx, stage, in))
	}

	spanCtx, span := o.tracer.StartSpan(ctx, StageSpan)
	defer span.Finish()

	out := record(spanCtx, o, apply(spanCtx, stage, in))
	span.SetTag(TagResultID, out.Id().String())
	if out.IsOk() {
		span.SetTag(TagSuccess, "true")
	} else {
		span.SetTag(TagSuccess, "false")
		span.SetTag(TagError, out.UnwrapErr().Error())
	}
	return out
}

// apply runs a stage so that a panic or an unset return becomes an Err.
func apply[In, Out any](ctx context.Context, stage Stage[In, Out], in oxide.Result[In]) oxide.Result[Out] {
	return oxide.ExpectResult(oxide.Capture(func() oxide.Result[Out] {
		return stage(ctx, in)
	}))
}

func record[T any](ctx context.Context, o instruments, out oxide.Result[T]) oxide.Result[T] {
	event := Event{ID: out.Id(), Tag: out.Tag()}
	if out.IsErr() {
		event.Err = out.UnwrapErr()
	}

	if o.metrics != nil {
		o.metrics.Counter(ProcessedTotal).Inc()
		if out.IsOk() {
			o.metrics.Counter(OkTotal).Inc()
		} else {
			o.metrics.Counter(ErrTotal).Inc()
		}
	}
	if o.hooks != nil {
		_ = o.hooks.Emit(ctx, EventProcessed, event) //nolint:errcheck
	}
	return out
}

// dropped reports a result discarded because the context is done.
func (o instruments) dropped(ctx context.Context, id uuid.UUID, tag oxide.Tag) {
	o.log.Debug("processed result dropped", zap.Stringer("id", id), zap.Error(ctx.Err()))
	if o.metrics != nil {
		o.metrics.Counter(DroppedTotal).Inc()
	}
	if o.hooks != nil {
		_ = o.hooks.Emit(ctx, EventDropped, Event{ID: id, Tag: tag, Err: ctx.Err()}) //nolint:errcheck
	}
}
