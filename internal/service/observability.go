package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// UseCaseEvent captures lightweight execution telemetry for a service use case.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type zapUseCaseObserver struct {
	logger *zap.Logger
}

// NewZapUseCaseObserver writes service use-case events to logger.
func NewZapUseCaseObserver(logger *zap.Logger) UseCaseObserver {
	if logger == nil {
		return NoopUseCaseObserver{}
	}
	return &zapUseCaseObserver{logger: logger.Named("usecase")}
}

func (o *zapUseCaseObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	fields := make([]zap.Field, 0, 4+len(event.Fields))
	fields = append(fields,
		zap.String("use_case", event.Name),
		zap.Int64("duration_ms", event.Duration.Milliseconds()),
		zap.Bool("success", event.Success),
	)
	for k, v := range event.Fields {
		fields = append(fields, zap.Any(k, v))
	}
	if event.Err != nil {
		fields = append(fields, zap.Error(event.Err))
		o.logger.Error("service_use_case", fields...)
		return
	}
	o.logger.Info("service_use_case", fields...)
}

// MultiUseCaseObserver fans events out to every observer in order.
type MultiUseCaseObserver []UseCaseObserver

func (m MultiUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	for _, o := range m {
		if o != nil {
			o.ObserveUseCase(ctx, event)
		}
	}
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	var live MultiUseCaseObserver
	for _, obs := range observers {
		if obs != nil {
			live = append(live, obs)
		}
	}
	switch len(live) {
	case 0:
		return NoopUseCaseObserver{}
	case 1:
		return live[0]
	default:
		return live
	}
}

// track returns a func that reports the use case when deferred. errp points at
// the method's named error result.
func track(ctx context.Context, obs UseCaseObserver, name string, fields map[string]any, errp *error) func() {
	startedAt := time.Now()
	return func() {
		err := *errp
		obs.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}
}
