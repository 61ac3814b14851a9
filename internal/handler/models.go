package handler

import (
	"fmt"
	"net/http"

	"github.com/dperaltab/quizgen/internal/genai"
)

type modelsResponse struct {
	OK     bool          `json:"ok"`
	Models []genai.Model `json:"models"`
}

// Models handles GET /api/list-models with a fresh upstream catalog query.
func Models(c genai.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		models, err := c.ListModels(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to list models: %v", err))
			return
		}
		if models == nil {
			models = []genai.Model{}
		}
		writeJSON(w, http.StatusOK, modelsResponse{OK: true, Models: models})
	}
}
