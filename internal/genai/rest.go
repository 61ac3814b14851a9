package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// RESTClient talks to the hosted generative-language API over HTTP. Each
// Capability maps to a distinct endpoint generation; which ones are enabled
// comes from configuration, so Supports never touches the network.
type RESTClient struct {
	BaseURL string
	APIKey  string
	Caps    map[Capability]bool // nil means all capabilities enabled
	Client  *http.Client
}

type restModel struct {
	Name                       string   `json:"name"`
	DisplayName                string   `json:"displayName"`
	Capabilities               []string `json:"capabilities"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
}

type listModelsResponse struct {
	Models []restModel `json:"models"`
}

type restError struct {
	Error struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (c *RESTClient) ListModels(ctx context.Context) ([]Model, error) {
	raw, err := c.do(ctx, http.MethodGet, "/v1beta/models", nil)
	if err != nil {
		return nil, err
	}

	var resp listModelsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("genai: decode model list: %w", err)
	}

	models := make([]Model, 0, len(resp.Models))
	for _, m := range resp.Models {
		caps := m.Capabilities
		if len(caps) == 0 {
			// Newer catalog versions advertise generation methods instead
			// of capability tags.
			caps = m.SupportedGenerationMethods
		}
		models = append(models, Model{
			// Catalog names come back as resource paths ("models/x").
			Name:         strings.TrimPrefix(m.Name, "models/"),
			DisplayName:  m.DisplayName,
			Capabilities: caps,
		})
	}
	return models, nil
}

func (c *RESTClient) Supports(cap Capability) bool {
	if c.Caps == nil {
		return true
	}
	return c.Caps[cap]
}

func (c *RESTClient) GenerateText(ctx context.Context, p GenerateParams) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/v1beta2/models/"+p.Model+":generateText", map[string]any{
		"prompt":          p.Prompt,
		"maxOutputTokens": p.MaxOutputTokens,
		"temperature":     p.Temperature,
	})
}

func (c *RESTClient) Generate(ctx context.Context, p GenerateParams) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/v1beta3/models/"+p.Model+":generate", map[string]any{
		"prompt":          p.Prompt,
		"maxOutputTokens": p.MaxOutputTokens,
		"temperature":     p.Temperature,
	})
}

func (c *RESTClient) ResponsesCreate(ctx context.Context, p GenerateParams, field string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/v1/responses", map[string]any{
		"model":           p.Model,
		field:             p.Prompt,
		"maxOutputTokens": p.MaxOutputTokens,
		"temperature":     p.Temperature,
	})
}

func (c *RESTClient) Create(ctx context.Context, model, prompt string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/v1beta/models/"+model+":create", map[string]any{
		"prompt": prompt,
	})
}

func (c *RESTClient) do(ctx context.Context, method, path string, body map[string]any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("genai: marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	url := strings.TrimRight(baseURL, "/") + path

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("genai: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("genai: request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("genai: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.apiError(resp.StatusCode, raw, body)
	}
	return raw, nil
}

// apiError maps an upstream failure body to an error. A 400 complaining
// about an unknown request field becomes *InvalidFieldError so the caller
// can retry with the alternate field name.
func (c *RESTClient) apiError(status int, raw []byte, body map[string]any) error {
	var e restError
	if err := json.Unmarshal(raw, &e); err != nil || e.Error.Message == "" {
		return fmt.Errorf("genai: unexpected status %d", status)
	}

	if status == http.StatusBadRequest {
		for name := range body {
			if strings.Contains(e.Error.Message, fmt.Sprintf("Unknown name %q", name)) {
				return &InvalidFieldError{Field: name, Msg: e.Error.Message}
			}
		}
	}
	return fmt.Errorf("genai: API error: %s", e.Error.Message)
}
