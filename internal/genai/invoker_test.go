package genai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func okResponse(text string) (json.RawMessage, error) {
	return json.RawMessage(fmt.Sprintf(`{"output":%q}`, text)), nil
}

func params() GenerateParams {
	return GenerateParams{Model: "gemini-pro", Prompt: "a quiz about rivers"}
}

func TestGenerateFirstStrategyWins(t *testing.T) {
	c := &fakeClient{
		generateTextFn: func(p GenerateParams) (json.RawMessage, error) {
			return okResponse("from generate_text")
		},
	}

	got, err := Generate(context.Background(), c, params())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from generate_text" {
		t.Errorf("got %q, want %q", got, "from generate_text")
	}
	if c.calls["generate"] != 0 || c.calls["responses_create"] != 0 || c.calls["create"] != 0 {
		t.Errorf("later strategies invoked: %v", c.calls)
	}
}

func TestGenerateShortCircuitsAfterSecondStrategy(t *testing.T) {
	c := &fakeClient{
		generateTextFn: func(p GenerateParams) (json.RawMessage, error) {
			return nil, fmt.Errorf("legacy endpoint gone")
		},
		generateFn: func(p GenerateParams) (json.RawMessage, error) {
			return okResponse("from generate")
		},
	}

	got, err := Generate(context.Background(), c, params())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from generate" {
		t.Errorf("got %q, want %q", got, "from generate")
	}
	if c.calls["generate_text"] != 1 {
		t.Errorf("generate_text calls: got %d, want 1", c.calls["generate_text"])
	}
	if c.calls["responses_create"] != 0 {
		t.Errorf("responses_create calls: got %d, want 0", c.calls["responses_create"])
	}
	if c.calls["create"] != 0 {
		t.Errorf("create calls: got %d, want 0", c.calls["create"])
	}
}

func TestGenerateSkipsUnsupportedCapabilities(t *testing.T) {
	c := &fakeClient{
		caps: map[Capability]bool{CapCreate: true},
		createFn: func(model, prompt string) (json.RawMessage, error) {
			return okResponse("from create")
		},
	}

	got, err := Generate(context.Background(), c, params())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from create" {
		t.Errorf("got %q, want %q", got, "from create")
	}
	if c.calls["generate_text"] != 0 || c.calls["generate"] != 0 || c.calls["responses_create"] != 0 {
		t.Errorf("unsupported strategies were called: %v", c.calls)
	}
}

func TestGenerateAllStrategiesFail(t *testing.T) {
	lastErr := fmt.Errorf("create refused")
	c := &fakeClient{
		generateTextFn: func(p GenerateParams) (json.RawMessage, error) {
			return nil, fmt.Errorf("first failure")
		},
		generateFn: func(p GenerateParams) (json.RawMessage, error) {
			return nil, fmt.Errorf("second failure")
		},
		responsesCreateFn: func(p GenerateParams, field string) (json.RawMessage, error) {
			return nil, fmt.Errorf("third failure")
		},
		createFn: func(model, prompt string) (json.RawMessage, error) {
			return nil, lastErr
		},
	}

	_, err := Generate(context.Background(), c, params())
	var allFailed *AllFailedError
	if !errors.As(err, &allFailed) {
		t.Fatalf("got %T (%v), want *AllFailedError", err, err)
	}
	if !errors.Is(err, lastErr) {
		t.Errorf("carried error %v, want the last one (%v)", allFailed.Last, lastErr)
	}
	if !strings.Contains(err.Error(), "create refused") {
		t.Errorf("error %q should surface the last failure", err)
	}
}

func TestGenerateNoCapabilitiesAtAll(t *testing.T) {
	c := &fakeClient{caps: map[Capability]bool{}}

	_, err := Generate(context.Background(), c, params())
	var allFailed *AllFailedError
	if !errors.As(err, &allFailed) {
		t.Fatalf("got %T (%v), want *AllFailedError", err, err)
	}
	if allFailed.Last != nil {
		t.Errorf("last error: got %v, want nil", allFailed.Last)
	}
}

func TestGenerateResponsesRetriesWithPromptField(t *testing.T) {
	var fields []string
	c := &fakeClient{
		caps: map[Capability]bool{CapResponses: true},
		responsesCreateFn: func(p GenerateParams, field string) (json.RawMessage, error) {
			fields = append(fields, field)
			if field == "input" {
				return nil, &InvalidFieldError{Field: "input", Msg: `Unknown name "input"`}
			}
			return okResponse("via prompt field")
		},
	}

	got, err := Generate(context.Background(), c, params())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "via prompt field" {
		t.Errorf("got %q, want %q", got, "via prompt field")
	}
	want := []string{"input", "prompt"}
	if len(fields) != 2 || fields[0] != want[0] || fields[1] != want[1] {
		t.Errorf("field order: got %v, want %v", fields, want)
	}
}

func TestGenerateResponsesNonFieldErrorDoesNotRetry(t *testing.T) {
	c := &fakeClient{
		caps: map[Capability]bool{CapResponses: true},
		responsesCreateFn: func(p GenerateParams, field string) (json.RawMessage, error) {
			return nil, fmt.Errorf("quota exceeded")
		},
	}

	_, err := Generate(context.Background(), c, params())
	if err == nil {
		t.Fatal("expected error")
	}
	if c.calls["responses_create"] != 1 {
		t.Errorf("responses_create calls: got %d, want 1", c.calls["responses_create"])
	}
}

func TestGenerateAppliesDefaults(t *testing.T) {
	var got GenerateParams
	c := &fakeClient{
		generateTextFn: func(p GenerateParams) (json.RawMessage, error) {
			got = p
			return okResponse("ok")
		},
	}

	if _, err := Generate(context.Background(), c, params()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.MaxOutputTokens != DefaultMaxOutputTokens {
		t.Errorf("max tokens: got %d, want %d", got.MaxOutputTokens, DefaultMaxOutputTokens)
	}
	if got.Temperature != DefaultTemperature {
		t.Errorf("temperature: got %v, want %v", got.Temperature, DefaultTemperature)
	}
}

func TestDebugGenerateRecordsEveryStrategy(t *testing.T) {
	c := &fakeClient{
		generateTextFn: func(p GenerateParams) (json.RawMessage, error) {
			return nil, fmt.Errorf("first failure")
		},
		generateFn: func(p GenerateParams) (json.RawMessage, error) {
			return okResponse("from generate")
		},
		responsesCreateFn: func(p GenerateParams, field string) (json.RawMessage, error) {
			return okResponse("from responses")
		},
		createFn: func(model, prompt string) (json.RawMessage, error) {
			return nil, fmt.Errorf("create failure")
		},
	}

	attempts := DebugGenerate(context.Background(), c, params())
	if len(attempts) != 4 {
		t.Fatalf("attempts: got %d, want 4", len(attempts))
	}

	wantMethods := []string{"generate_text", "generate", "responses_create", "create"}
	for i, a := range attempts {
		if a.Method != wantMethods[i] {
			t.Errorf("attempt %d method: got %q, want %q", i, a.Method, wantMethods[i])
		}
	}

	if attempts[0].OK || attempts[0].Error == "" {
		t.Errorf("attempt 0 should record failure: %+v", attempts[0])
	}
	if !attempts[1].OK || attempts[1].OutputPreview != "from generate" {
		t.Errorf("attempt 1 should record success: %+v", attempts[1])
	}
	if !attempts[2].OK {
		t.Errorf("attempt 2 should still have run: %+v", attempts[2])
	}
	if attempts[3].OK {
		t.Errorf("attempt 3 should record failure: %+v", attempts[3])
	}
}

func TestDebugGenerateUnsupportedCapabilityRecordedAsFailure(t *testing.T) {
	c := &fakeClient{
		caps: map[Capability]bool{CapGenerate: true},
		generateFn: func(p GenerateParams) (json.RawMessage, error) {
			return okResponse("ok")
		},
	}

	attempts := DebugGenerate(context.Background(), c, params())
	if len(attempts) != 4 {
		t.Fatalf("attempts: got %d, want 4", len(attempts))
	}
	if attempts[0].OK {
		t.Errorf("unsupported strategy should fail: %+v", attempts[0])
	}
	if !strings.Contains(attempts[0].Error, "capability") {
		t.Errorf("attempt 0 error %q should mention the capability", attempts[0].Error)
	}
	if c.calls["generate_text"] != 0 {
		t.Errorf("unsupported strategy was still called upstream")
	}
}

func TestDebugGenerateTruncatesPreview(t *testing.T) {
	long := strings.Repeat("x", previewLimit+100)
	c := &fakeClient{
		caps: map[Capability]bool{CapGenerate: true},
		generateFn: func(p GenerateParams) (json.RawMessage, error) {
			return okResponse(long)
		},
	}

	attempts := DebugGenerate(context.Background(), c, params())
	if got := len(attempts[1].OutputPreview); got != previewLimit {
		t.Errorf("preview length: got %d, want %d", got, previewLimit)
	}
}

func TestDebugGenerateUsesSmallerTokenBudget(t *testing.T) {
	var got GenerateParams
	c := &fakeClient{
		caps: map[Capability]bool{CapGenerateText: true},
		generateTextFn: func(p GenerateParams) (json.RawMessage, error) {
			got = p
			return okResponse("ok")
		},
	}

	DebugGenerate(context.Background(), c, params())
	if got.MaxOutputTokens != DebugMaxOutputTokens {
		t.Errorf("max tokens: got %d, want %d", got.MaxOutputTokens, DebugMaxOutputTokens)
	}
}
