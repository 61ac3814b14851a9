package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dperaltab/quizgen/internal/config"
	"github.com/dperaltab/quizgen/internal/genai"
	"github.com/dperaltab/quizgen/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	useMock := flag.Bool("mock", false, "use a mock upstream client instead of the real API")
	port := flag.Int("port", 0, "override listen port")
	frontend := flag.String("frontend", "", "override frontend directory")
	flag.Parse()

	// .env is optional; real environment variables win.
	godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !errors.Is(err, config.ErrMissingAPIKey) || !*useMock {
			log.Fatalf("config: %v", err)
		}
	}
	if *port > 0 {
		cfg.Port = *port
	}
	if *frontend != "" {
		cfg.FrontendDir = *frontend
	}

	client := buildClient(cfg, *useMock)
	handler := server.SetupMux(client, cfg.PreferredModels, cfg.FrontendDir)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("quizgen api listening on %s (frontend: %s)", addr, cfg.FrontendDir)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	<-done
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
	log.Println("server stopped")
}

func buildClient(cfg config.Config, useMock bool) genai.Client {
	if useMock {
		log.Println("mode: mock upstream client enabled")
		return &genai.MockClient{Delay: 500 * time.Millisecond}
	}

	var caps map[genai.Capability]bool
	if len(cfg.Capabilities) > 0 {
		caps = make(map[genai.Capability]bool, len(cfg.Capabilities))
		for _, c := range cfg.Capabilities {
			caps[genai.Capability(c)] = true
		}
	}

	timeout := time.Duration(cfg.RequestTimeoutSecs) * time.Second
	log.Printf("mode: upstream at %s (timeout: %s)", cfg.BaseURL, timeout)
	return &genai.RESTClient{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Caps:    caps,
		Client:  &http.Client{Timeout: timeout},
	}
}
