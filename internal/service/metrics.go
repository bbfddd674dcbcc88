package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/founderpulse/internal/app"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusUseCaseObserver counts use-case outcomes and records latency.
type PrometheusUseCaseObserver struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewPrometheusUseCaseObserver registers its collectors on reg. Registering
// twice on the same registry reuses the existing collectors.
func NewPrometheusUseCaseObserver(reg prometheus.Registerer) (*PrometheusUseCaseObserver, error) {
	calls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "founderpulse",
		Name:      "use_case_total",
		Help:      "Service use-case invocations by outcome.",
	}, []string{"use_case", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "founderpulse",
		Name:      "use_case_duration_seconds",
		Help:      "Service use-case latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"use_case"})

	var err error
	if calls, err = registerOrExisting(reg, calls); err != nil {
		return nil, err
	}
	if duration, err = registerOrExisting(reg, duration); err != nil {
		return nil, err
	}
	return &PrometheusUseCaseObserver{calls: calls, duration: duration}, nil
}

func registerOrExisting[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (o *PrometheusUseCaseObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	outcome := "ok"
	if event.Err != nil {
		outcome = string(app.ErrorKindOf(event.Err))
	}
	o.calls.WithLabelValues(event.Name, outcome).Inc()
	o.duration.WithLabelValues(event.Name).Observe(event.Duration.Seconds())
}
