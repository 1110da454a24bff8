// Package config provides configuration for the escalate router.
package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the router configuration. It is read once at startup and
// passed explicitly into the components that need it.
type Config struct {
	// Server settings
	HTTPPort int `env:"HTTP_PORT" env-default:"8100"`

	// Model routing
	FrontModel string `env:"FRONT_MODEL" env-default:"llama3.2:3b"`
	BackModel  string `env:"BACK_MODEL" env-default:"qwen2.5:14b"`
	// VisionModel is accepted for parity with the deployed stack; it is
	// outside the text dispatch path.
	VisionModel string `env:"VISION_MODEL"`

	// The single virtual model name advertised to clients.
	RouterModelName string `env:"ROUTER_MODEL_NAME" env-default:"local-router"`

	// Upstream inference server
	OllamaURL       string        `env:"OLLAMA_URL" env-default:"http://localhost:11434"`
	GenerateTimeout time.Duration `env:"GENERATE_TIMEOUT" env-default:"5m"`

	// Web search
	SearchAPIKey  string        `env:"TAVILY_API_KEY"`
	SearchBaseURL string        `env:"SEARCH_BASE_URL"`
	SearchTimeout time.Duration `env:"SEARCH_TIMEOUT" env-default:"10s"`

	// Dispatch log. Empty disables persistence.
	DatabaseURL string `env:"ROUTER_DB"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
