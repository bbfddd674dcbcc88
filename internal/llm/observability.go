package llm

import "go.uber.org/zap"

// CallEvent records metadata about a single generation call.
type CallEvent struct {
	Task      TaskType
	Model     string
	Attempts  int
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives an event after every generation call.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to a zap logger.
type LogObserver struct {
	logger *zap.Logger
}

func NewLogObserver(logger *zap.Logger) *LogObserver {
	return &LogObserver{logger: logger.Named("llm")}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	fields := []zap.Field{
		zap.String("task", string(event.Task)),
		zap.String("model", event.Model),
		zap.Int("attempts", event.Attempts),
		zap.Int64("latency_ms", event.LatencyMs),
	}
	if !event.Success {
		o.logger.Warn("llm_call", append(fields, zap.String("error_code", event.ErrorCode))...)
		return
	}
	o.logger.Debug("llm_call", fields...)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
