package handler

import (
	"net/http"

	"github.com/dperaltab/quizgen/internal/genai"
)

type healthResponse struct {
	Status       string   `json:"status"`
	Capabilities []string `json:"capabilities"`
}

// Health reports liveness and which upstream calling conventions are enabled.
// It never calls upstream.
func Health(c genai.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caps := make([]string, 0, len(genai.AllCapabilities))
		for _, cap := range genai.AllCapabilities {
			if c.Supports(cap) {
				caps = append(caps, string(cap))
			}
		}
		writeJSON(w, http.StatusOK, healthResponse{
			Status:       "ok",
			Capabilities: caps,
		})
	}
}
