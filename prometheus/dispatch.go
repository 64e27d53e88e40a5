package prometheus

import (
	"context"
	"time"

	"github.com/middlemost/podlink"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultNamespace is the metrics namespace used when none is set.
const DefaultNamespace = "podlink"

// Ensure service implements interface.
var _ podlink.DispatchService = &DispatchService{}

// DispatchService wraps a dispatch service and records metrics for each
// dispatched request.
type DispatchService struct {
	next podlink.DispatchService

	dispatches *prometheus.CounterVec
	ambiguous  prometheus.Counter
	errors     prometheus.Counter
	duration   prometheus.Histogram
}

// NewDispatchService returns a new instance of DispatchService that registers
// its metrics with reg under namespace.
func NewDispatchService(next podlink.DispatchService, reg prometheus.Registerer, namespace string) *DispatchService {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	factory := promauto.With(reg)

	return &DispatchService{
		next: next,

		dispatches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatches_total",
			Help:      "Total number of dispatched requests by deep link kind",
		}, []string{"kind"}),

		ambiguous: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ambiguous_dispatches_total",
			Help:      "Total number of requests matching more than one rule",
		}),

		errors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_errors_total",
			Help:      "Total number of failed dispatches",
		}),

		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dispatch_duration_seconds",
			Help:      "Dispatch duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// Dispatch dispatches req through the wrapped service.
func (s *DispatchService) Dispatch(ctx context.Context, req *podlink.Request) (*podlink.Resolution, error) {
	t := time.Now()
	r, err := s.next.Dispatch(ctx, req)
	s.duration.Observe(time.Since(t).Seconds())

	if err != nil {
		s.errors.Inc()
		return nil, err
	}

	s.dispatches.WithLabelValues(r.Kind()).Inc()
	if r.Ambiguous() {
		s.ambiguous.Inc()
	}
	return r, nil
}
