package genai

import (
	"context"
	"fmt"
	"strings"
)

// DefaultPreferredModels ranks general-purpose models first and legacy text
// models last. Used when the caller (or config) supplies no preference.
var DefaultPreferredModels = []string{
	"gemini-pro",
	"gemini-1.5-pro",
	"gemini-ultra-1.0",
	"gemini-1.0",
	"text-bison@001",
	"text-bison",
}

// generationCaps are the capability tags that mark a model as able to
// generate text, compared case-insensitively.
var generationCaps = []string{"generate", "generations", "text", "chat", "responses"}

// ChooseModel picks a model from the live upstream catalog. Selection order:
// case-insensitive exact match against the preferred list, then first model
// advertising a generation capability, then the first model unconditionally.
// The last rule means a non-empty catalog always yields a model, even one
// with no generation capability at all.
func ChooseModel(ctx context.Context, c Client, preferred []string) (string, error) {
	if len(preferred) == 0 {
		preferred = DefaultPreferredModels
	}

	models, err := c.ListModels(ctx)
	if err != nil {
		return "", fmt.Errorf("list models: %w", err)
	}
	if len(models) == 0 {
		return "", ErrNoModels
	}

	byName := make(map[string]Model, len(models))
	for _, m := range models {
		byName[strings.ToLower(m.Name)] = m
	}
	for _, want := range preferred {
		if m, ok := byName[strings.ToLower(want)]; ok {
			return m.Name, nil
		}
	}

	for _, m := range models {
		if hasGenerationCap(m.Capabilities) {
			return m.Name, nil
		}
	}

	return models[0].Name, nil
}

func hasGenerationCap(caps []string) bool {
	for _, c := range caps {
		for _, want := range generationCaps {
			if strings.EqualFold(c, want) {
				return true
			}
		}
	}
	return false
}
