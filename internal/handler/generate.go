package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dperaltab/quizgen/internal/genai"
	"github.com/dperaltab/quizgen/internal/metrics"
)

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	OK        bool   `json:"ok"`
	ModelUsed string `json:"model_used"`
	Output    string `json:"output"`
}

// Generate handles POST /api/generate: select a model, run the strategy
// sequence, return the normalized text. Exactly one of output or error ends
// up in the response body.
func Generate(c genai.Client, preferred []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			writeError(w, http.StatusBadRequest, "missing prompt in JSON body")
			return
		}

		prompt := strings.TrimSpace(req.Prompt)
		if prompt == "" {
			writeError(w, http.StatusBadRequest, "missing prompt in JSON body")
			return
		}

		slog.Info("generate", "prompt_chars", len(prompt))
		metrics.PromptChars.Observe(float64(len(prompt)))

		model, err := genai.ChooseModel(r.Context(), c, preferred)
		if err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("model selection failed: %v", err))
			return
		}

		start := time.Now()
		output, err := genai.Generate(r.Context(), c, genai.GenerateParams{
			Model:  model,
			Prompt: prompt,
		})
		metrics.GenerateDuration.WithLabelValues(model).Observe(time.Since(start).Seconds())

		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, generateResponse{
			OK:        true,
			ModelUsed: model,
			Output:    output,
		})
	}
}
