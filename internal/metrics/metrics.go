package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quizgen_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// GenerateDuration tracks upstream generation latency per model.
	GenerateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quizgen_generate_duration_seconds",
		Help:    "Time spent on upstream generation.",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	}, []string{"model"})

	// StrategyAttempts counts upstream call attempts by strategy and outcome.
	StrategyAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quizgen_strategy_attempts_total",
		Help: "Upstream generation attempts by calling convention.",
	}, []string{"method", "outcome"})

	// PromptChars tracks the distribution of prompt lengths.
	PromptChars = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "quizgen_prompt_chars",
		Help:    "Number of characters in generation prompts.",
		Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
	})
)
