package genai

import (
	"context"
	"encoding/json"
)

// fakeClient scripts upstream behavior per capability and counts calls.
type fakeClient struct {
	models  []Model
	listErr error

	caps map[Capability]bool // nil means all enabled

	generateTextFn    func(p GenerateParams) (json.RawMessage, error)
	generateFn        func(p GenerateParams) (json.RawMessage, error)
	responsesCreateFn func(p GenerateParams, field string) (json.RawMessage, error)
	createFn          func(model, prompt string) (json.RawMessage, error)

	calls map[string]int
}

func (f *fakeClient) record(method string) {
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[method]++
}

func (f *fakeClient) ListModels(ctx context.Context) ([]Model, error) {
	f.record("list_models")
	return f.models, f.listErr
}

func (f *fakeClient) Supports(c Capability) bool {
	if f.caps == nil {
		return true
	}
	return f.caps[c]
}

func (f *fakeClient) GenerateText(ctx context.Context, p GenerateParams) (json.RawMessage, error) {
	f.record("generate_text")
	return f.generateTextFn(p)
}

func (f *fakeClient) Generate(ctx context.Context, p GenerateParams) (json.RawMessage, error) {
	f.record("generate")
	return f.generateFn(p)
}

func (f *fakeClient) ResponsesCreate(ctx context.Context, p GenerateParams, field string) (json.RawMessage, error) {
	f.record("responses_create")
	return f.responsesCreateFn(p, field)
}

func (f *fakeClient) Create(ctx context.Context, model, prompt string) (json.RawMessage, error) {
	f.record("create")
	return f.createFn(model, prompt)
}
