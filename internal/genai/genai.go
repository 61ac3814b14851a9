package genai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Capability identifies one upstream calling convention. The hosted API has
// shipped several generations of its generation endpoint; a client supports
// whichever subset its configuration enables.
type Capability string

const (
	CapGenerateText Capability = "generate_text"
	CapGenerate     Capability = "generate"
	CapResponses    Capability = "responses_create"
	CapCreate       Capability = "create"
)

// AllCapabilities lists every known calling convention, most recent first.
var AllCapabilities = []Capability{CapGenerateText, CapGenerate, CapResponses, CapCreate}

// Client is the contract for the upstream generative-language API.
type Client interface {
	// ListModels fetches the current model catalog. No caching: every call
	// re-queries upstream.
	ListModels(ctx context.Context) ([]Model, error)

	// Supports reports whether a calling convention is enabled on this
	// client. It is a configuration check, not a network call.
	Supports(c Capability) bool

	GenerateText(ctx context.Context, p GenerateParams) (json.RawMessage, error)
	Generate(ctx context.Context, p GenerateParams) (json.RawMessage, error)

	// ResponsesCreate names the prompt with the given field ("input" or
	// "prompt"). Upstream versions disagree on which one they accept; a
	// rejection of the field name is returned as *InvalidFieldError.
	ResponsesCreate(ctx context.Context, p GenerateParams, field string) (json.RawMessage, error)

	// Create is the minimal legacy call: model and prompt only.
	Create(ctx context.Context, model, prompt string) (json.RawMessage, error)
}

// Model describes one upstream model as exposed via GET /api/list-models.
type Model struct {
	Name         string   `json:"name"`
	DisplayName  string   `json:"displayName"`
	Capabilities []string `json:"capabilities"`
}

// GenerateParams carries one generation request upstream.
type GenerateParams struct {
	Model           string
	Prompt          string
	MaxOutputTokens int
	Temperature     float64
}

const (
	// DefaultMaxOutputTokens applies to /api/generate.
	DefaultMaxOutputTokens = 256
	// DebugMaxOutputTokens applies to the debug path, which only needs
	// enough output to tell success from failure.
	DebugMaxOutputTokens = 128
	// DefaultTemperature keeps generation close to deterministic.
	DefaultTemperature = 0.2
)

// ErrNoModels is returned when the upstream listing succeeds but is empty.
var ErrNoModels = errors.New("no models returned by the API (empty list)")

// InvalidFieldError reports that upstream rejected the name of a request
// field. Only the responses_create strategy cares: it retries with the
// alternate field name.
type InvalidFieldError struct {
	Field string
	Msg   string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Msg)
}

// AllFailedError means every available strategy raised or was unsupported.
// Only the last underlying error is kept; earlier ones are discarded.
type AllFailedError struct {
	Last error
}

func (e *AllFailedError) Error() string {
	if e.Last == nil {
		return "all generation attempts failed: unknown error"
	}
	return fmt.Sprintf("all generation attempts failed: last error: %v", e.Last)
}

func (e *AllFailedError) Unwrap() error { return e.Last }
