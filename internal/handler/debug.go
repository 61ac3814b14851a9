package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dperaltab/quizgen/internal/genai"
)

const debugDefaultPrompt = "Hello debug"

type debugResult struct {
	ModelUsed string          `json:"model_used"`
	Attempts  []genai.Attempt `json:"attempts"`
}

type debugResponse struct {
	OK    bool        `json:"ok"`
	Debug debugResult `json:"debug"`
}

type debugError struct {
	OK    bool   `json:"ok"`
	Stage string `json:"stage"`
	Error string `json:"error"`
}

// DebugGenerate handles POST /api/debug-generate. Every strategy is run and
// recorded, so the response shows which calling conventions the upstream
// actually accepts. Only a model-selection failure produces an error status.
func DebugGenerate(c genai.Client, preferred []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req generateRequest
		json.NewDecoder(r.Body).Decode(&req)
		prompt := strings.TrimSpace(req.Prompt)
		if prompt == "" {
			prompt = debugDefaultPrompt
		}

		model, err := genai.ChooseModel(r.Context(), c, preferred)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, debugError{
				Stage: "choose_model",
				Error: err.Error(),
			})
			return
		}

		attempts := genai.DebugGenerate(r.Context(), c, genai.GenerateParams{
			Model:  model,
			Prompt: prompt,
		})

		writeJSON(w, http.StatusOK, debugResponse{
			OK: true,
			Debug: debugResult{
				ModelUsed: model,
				Attempts:  attempts,
			},
		})
	}
}
