package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dperaltab/quizgen/internal/genai"
	"github.com/dperaltab/quizgen/internal/handler"
	"github.com/dperaltab/quizgen/internal/middleware"
)

// SetupMux wires the API routes, the metrics endpoint, and the static
// frontend behind the middleware chain. The /api/ fallback keeps unknown
// API paths out of static serving.
func SetupMux(c genai.Client, preferred []string, frontendDir string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handler.Health(c))
	mux.HandleFunc("/api/list-models", handler.Models(c))
	mux.HandleFunc("/api/generate", handler.Generate(c, preferred))
	mux.HandleFunc("/api/debug-generate", handler.DebugGenerate(c, preferred))
	mux.HandleFunc("/api/", handler.APINotFound)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/", handler.Frontend(frontendDir))
	return middleware.Chain(mux)
}
