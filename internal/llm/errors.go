package llm

import "errors"

var (
	// ErrUnavailable means the Ollama server could not be reached.
	ErrUnavailable = errors.New("ollama server unavailable")

	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput means the reply did not contain the expected JSON.
	ErrInvalidOutput = errors.New("invalid llm output format")

	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)

// ErrorCode is the short label used in call events.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
