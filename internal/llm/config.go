package llm

// TaskType identifies the kind of generation being requested.
type TaskType string

const (
	TaskBurnoutInsight TaskType = "burnout_insight"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	TimeoutMs   int     `mapstructure:"timeout_ms"` // overrides the global timeout when > 0
}

// LLMConfig configures the Ollama client. Generation is off unless Enabled.
type LLMConfig struct {
	Enabled    bool                    `mapstructure:"enabled"`
	LogCalls   bool                    `mapstructure:"log_calls"`
	Endpoint   string                  `mapstructure:"endpoint"`
	Model      string                  `mapstructure:"model"`
	TimeoutMs  int                     `mapstructure:"timeout_ms"`
	MaxRetries int                     `mapstructure:"max_retries"`
	Tasks      map[TaskType]TaskConfig `mapstructure:"tasks"`
}

// DefaultConfig returns a disabled config pointing at a local Ollama.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  2500,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskBurnoutInsight: {Temperature: 0.4, MaxTokens: 256},
		},
	}
}

// TaskTimeout returns the effective timeout in milliseconds for task.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

// Task returns the parameters for task, falling back to the defaults.
func (c LLMConfig) Task(task TaskType) TaskConfig {
	if tc, ok := c.Tasks[task]; ok {
		return tc
	}
	return DefaultConfig().Tasks[task]
}
