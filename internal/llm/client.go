package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// GenerateRequest holds the parameters for one generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	// JSON asks Ollama to constrain the reply to a JSON document.
	JSON bool
}

type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Generator produces text from a prompt.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// OllamaClient talks to the Ollama HTTP API.
type OllamaClient struct {
	cfg      LLMConfig
	http     *http.Client
	observer Observer
}

func NewOllamaClient(cfg LLMConfig, observer Observer) *OllamaClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &OllamaClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: 2 * time.Second}).DialContext,
			},
		},
		observer: observer,
	}
}

type ollamaRequest struct {
	Model   string        `json:"model"`
	System  string        `json:"system,omitempty"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Format  string        `json:"format,omitempty"`
	Options ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

// Generate calls /api/generate, retrying up to MaxRetries times until the task
// timeout or ctx expires.
func (c *OllamaClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()
	task := c.cfg.Task(req.Task)

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TaskTimeout(req.Task))*time.Millisecond)
	defer cancel()

	body := ollamaRequest{
		Model:  c.cfg.Model,
		System: req.SystemPrompt,
		Prompt: req.UserPrompt,
		Options: ollamaOptions{
			Temperature: task.Temperature,
			NumPredict:  task.MaxTokens,
		},
	}
	if req.JSON {
		body.Format = "json"
	}

	event := CallEvent{Task: req.Task, Model: c.cfg.Model}
	var lastErr error
	for event.Attempts < 1+c.cfg.MaxRetries {
		event.Attempts++
		resp, err := c.post(ctx, body)
		if err == nil {
			event.Success = true
			event.LatencyMs = time.Since(start).Milliseconds()
			c.observer.OnCallComplete(event)
			return &GenerateResponse{Text: resp.Response, Model: resp.Model, LatencyMs: event.LatencyMs}, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}

	switch {
	case ctx.Err() != nil:
		lastErr = ErrTimeout
	case isConnectionError(lastErr):
		lastErr = ErrUnavailable
	default:
		lastErr = fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
	}
	event.LatencyMs = time.Since(start).Milliseconds()
	event.ErrorCode = ErrorCode(lastErr)
	c.observer.OnCallComplete(event)
	return nil, lastErr
}

func (c *OllamaClient) post(ctx context.Context, body ollamaRequest) (*ollamaResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint+"/api/generate", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(httpResp.Body, 512))
		return nil, fmt.Errorf("ollama returned status %d: %s", httpResp.StatusCode, snippet)
	}
	var resp ollamaResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &resp, nil
}

// Available reports whether the server answers /api/tags.
func (c *OllamaClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func isConnectionError(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
