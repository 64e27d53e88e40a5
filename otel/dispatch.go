package otel

import (
	"context"

	"github.com/middlemost/podlink"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultTracerName is the tracer used when none is set.
const DefaultTracerName = "podlink"

// Ensure service implements interface.
var _ podlink.DispatchService = &DispatchService{}

// DispatchService wraps a dispatch service with a span per request.
type DispatchService struct {
	next   podlink.DispatchService
	tracer trace.Tracer
}

// NewDispatchService returns a new instance of DispatchService using the
// global tracer provider.
func NewDispatchService(next podlink.DispatchService, tracerName string) *DispatchService {
	if tracerName == "" {
		tracerName = DefaultTracerName
	}
	return NewDispatchServiceWithTracer(next, otel.Tracer(tracerName))
}

// NewDispatchServiceWithTracer returns a new instance of DispatchService
// using tracer.
func NewDispatchServiceWithTracer(next podlink.DispatchService, tracer trace.Tracer) *DispatchService {
	return &DispatchService{next: next, tracer: tracer}
}

// Dispatch dispatches req within a span.
func (s *DispatchService) Dispatch(ctx context.Context, req *podlink.Request) (*podlink.Resolution, error) {
	ctx, span := s.tracer.Start(ctx, "podlink.Dispatch", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	if req != nil {
		span.SetAttributes(
			attribute.String("deeplink.action", req.Action),
			attribute.String("deeplink.host", req.Host()),
		)
	}

	r, err := s.next.Dispatch(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("deeplink.kind", r.Kind()),
		attribute.StringSlice("deeplink.candidates", r.Candidates),
	)
	if r.ID != "" {
		span.SetAttributes(attribute.String("deeplink.resolution_id", r.ID))
	}
	span.SetStatus(codes.Ok, "")
	return r, nil
}
