package genai

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dperaltab/quizgen/internal/metrics"
)

// strategy is one upstream calling convention. The list below is ordered
// most modern first and the order must not change: Generate stops at the
// first success.
type strategy struct {
	method string
	cap    Capability
	call   func(ctx context.Context, c Client, p GenerateParams) (json.RawMessage, error)
}

var strategies = []strategy{
	{
		method: "generate_text",
		cap:    CapGenerateText,
		call: func(ctx context.Context, c Client, p GenerateParams) (json.RawMessage, error) {
			return c.GenerateText(ctx, p)
		},
	},
	{
		method: "generate",
		cap:    CapGenerate,
		call: func(ctx context.Context, c Client, p GenerateParams) (json.RawMessage, error) {
			return c.Generate(ctx, p)
		},
	},
	{
		method: "responses_create",
		cap:    CapResponses,
		call: func(ctx context.Context, c Client, p GenerateParams) (json.RawMessage, error) {
			raw, err := c.ResponsesCreate(ctx, p, "input")
			var fieldErr *InvalidFieldError
			if errors.As(err, &fieldErr) {
				// Older servers want the prompt under "prompt".
				return c.ResponsesCreate(ctx, p, "prompt")
			}
			return raw, err
		},
	},
	{
		method: "create",
		cap:    CapCreate,
		call: func(ctx context.Context, c Client, p GenerateParams) (json.RawMessage, error) {
			return c.Create(ctx, p.Model, p.Prompt)
		},
	},
}

// Generate runs the strategies in order against the given model and returns
// the normalized text of the first one that succeeds. Strategies whose
// capability is not enabled on the client are skipped without counting as a
// failure. If nothing succeeds, only the last error is surfaced.
func Generate(ctx context.Context, c Client, p GenerateParams) (string, error) {
	if p.MaxOutputTokens == 0 {
		p.MaxOutputTokens = DefaultMaxOutputTokens
	}
	if p.Temperature == 0 {
		p.Temperature = DefaultTemperature
	}

	var lastErr error
	for _, s := range strategies {
		if !c.Supports(s.cap) {
			continue
		}
		raw, err := s.call(ctx, c, p)
		if err != nil {
			metrics.StrategyAttempts.WithLabelValues(s.method, "error").Inc()
			lastErr = err
			continue
		}
		metrics.StrategyAttempts.WithLabelValues(s.method, "ok").Inc()
		return Normalize(raw), nil
	}
	return "", &AllFailedError{Last: lastErr}
}

// Attempt records the outcome of one strategy during a debug run.
type Attempt struct {
	Method        string `json:"method"`
	OK            bool   `json:"ok"`
	OutputPreview string `json:"output_preview,omitempty"`
	Error         string `json:"error,omitempty"`
}

const previewLimit = 500

// DebugGenerate runs every strategy, never short-circuiting and never
// failing: an unsupported capability or an upstream error becomes a failed
// attempt in the result. One Attempt per strategy, in strategy order.
func DebugGenerate(ctx context.Context, c Client, p GenerateParams) []Attempt {
	if p.MaxOutputTokens == 0 {
		p.MaxOutputTokens = DebugMaxOutputTokens
	}
	if p.Temperature == 0 {
		p.Temperature = DefaultTemperature
	}

	attempts := make([]Attempt, 0, len(strategies))
	for _, s := range strategies {
		if !c.Supports(s.cap) {
			attempts = append(attempts, Attempt{
				Method: s.method,
				Error:  "capability not enabled on client",
			})
			continue
		}
		raw, err := s.call(ctx, c, p)
		if err != nil {
			attempts = append(attempts, Attempt{Method: s.method, Error: err.Error()})
			continue
		}
		out := Normalize(raw)
		if len(out) > previewLimit {
			out = out[:previewLimit]
		}
		attempts = append(attempts, Attempt{Method: s.method, OK: true, OutputPreview: out})
	}
	return attempts
}
