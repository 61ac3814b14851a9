package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// MockClient simulates the upstream API with a configurable delay. Used for
// development (-mock flag) and in tests without a real credential.
type MockClient struct {
	Delay  time.Duration
	Models []Model
}

func (m *MockClient) ListModels(ctx context.Context) ([]Model, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	if m.Models != nil {
		return m.Models, nil
	}
	return []Model{
		{Name: "gemini-pro", DisplayName: "Gemini Pro (mock)", Capabilities: []string{"generate", "text"}},
		{Name: "text-bison", DisplayName: "Text Bison (mock)", Capabilities: []string{"text"}},
	}, nil
}

func (m *MockClient) Supports(Capability) bool { return true }

func (m *MockClient) GenerateText(ctx context.Context, p GenerateParams) (json.RawMessage, error) {
	return m.respond(ctx, p.Prompt)
}

func (m *MockClient) Generate(ctx context.Context, p GenerateParams) (json.RawMessage, error) {
	return m.respond(ctx, p.Prompt)
}

func (m *MockClient) ResponsesCreate(ctx context.Context, p GenerateParams, field string) (json.RawMessage, error) {
	return m.respond(ctx, p.Prompt)
}

func (m *MockClient) Create(ctx context.Context, model, prompt string) (json.RawMessage, error) {
	return m.respond(ctx, prompt)
}

func (m *MockClient) respond(ctx context.Context, prompt string) (json.RawMessage, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(map[string]string{
		"output": "[mock] " + prompt,
	})
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (m *MockClient) wait(ctx context.Context) error {
	if m.Delay <= 0 {
		return nil
	}
	select {
	case <-time.After(m.Delay):
		return nil
	case <-ctx.Done():
		return fmt.Errorf("mock: %w", ctx.Err())
	}
}
