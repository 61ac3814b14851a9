package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrMissingAPIKey means no upstream credential was found in the config file
// or the environment. The process must not start without one (outside mock
// mode).
var ErrMissingAPIKey = errors.New("config: set GEMINI_API_KEY or GOOGLE_API_KEY (.env, environment, or api_key in config.yaml)")

// Config holds all application configuration. The API key is read once at
// startup and never rotated at runtime.
type Config struct {
	Port               int      `yaml:"port"`
	BaseURL            string   `yaml:"base_url"`
	APIKey             string   `yaml:"api_key"`
	FrontendDir        string   `yaml:"frontend_dir"`
	PreferredModels    []string `yaml:"preferred_models"`
	Capabilities       []string `yaml:"capabilities"`
	RequestTimeoutSecs int      `yaml:"request_timeout_secs"`
}

func configDefaults() Config {
	return Config{
		Port:               8080,
		BaseURL:            "https://generativelanguage.googleapis.com",
		FrontendDir:        "web",
		RequestTimeoutSecs: 60,
	}
}

// Load reads configuration from a YAML file (if path is non-empty), then
// applies environment variable overrides. An empty path returns defaults +
// env overrides. A missing upstream credential yields ErrMissingAPIKey with
// the rest of the config still populated, so mock mode can proceed.
func Load(path string) (Config, error) {
	cfg := configDefaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("QUIZGEN_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid QUIZGEN_PORT %q: %w", v, err)
		}
		cfg.Port = p
	}
	if v := os.Getenv("QUIZGEN_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("QUIZGEN_FRONTEND_DIR"); v != "" {
		cfg.FrontendDir = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.APIKey = v
	} else if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		cfg.APIKey = v
	}

	if cfg.APIKey == "" {
		return cfg, ErrMissingAPIKey
	}
	return cfg, nil
}
