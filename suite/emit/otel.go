package emit

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// OTelSink implements Sink by creating one OpenTelemetry span per event.
//
// Each span carries:
//   - Span name: the event name ("start", "pass", "fail", ...)
//   - Attributes: probatio.node (origin), probatio.event, probatio.args
//   - Status: error when the event is "fail", with the error recorded
//
// Events are points in time, so each span is ended immediately; durations
// live in the node stats and the metrics sink, not in span length.
//
// Usage:
//
//	tracer := otel.Tracer("probatio")
//	root.Events().Pipe(emit.NewOTelSink(tracer))
type OTelSink struct {
	tracer trace.Tracer
}

// NewOTelSink creates a sink emitting spans through the given tracer.
// A nil tracer falls back to the globally registered provider.
func NewOTelSink(tracer trace.Tracer) *OTelSink {
	if tracer == nil {
		tracer = otel.Tracer("probatio")
	}
	return &OTelSink{tracer: tracer}
}

// Emit records the event as an immediately-ended span.
func (o *OTelSink) Emit(event Event) {
	_, span := o.tracer.Start(context.Background(), event.Name)
	defer span.End()

	span.SetAttributes(
		attribute.String("probatio.node", event.Origin),
		attribute.String("probatio.event", event.Name),
		attribute.Int("probatio.args", len(event.Args)),
	)

	if event.Name != "fail" {
		return
	}
	for _, a := range event.Args {
		if err, ok := a.(error); ok {
			span.SetStatus(codes.Error, err.Error())
			span.RecordError(err)
			return
		}
	}
	span.SetStatus(codes.Error, fmt.Sprintf("%v", event.Args))
}

// Flush forces export of pending spans when the registered provider
// supports it. Call before process exit.
func (o *OTelSink) Flush(ctx context.Context) error {
	type flusher interface {
		ForceFlush(context.Context) error
	}
	if f, ok := otel.GetTracerProvider().(flusher); ok {
		return f.ForceFlush(ctx)
	}
	return nil
}
