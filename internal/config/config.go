// Package config reads client and Story API settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"

	"storycrafter/internal/utils"
)

// Project store modes.
const (
	ProjectStoreMemory = "memory"
	ProjectStoreLocal  = "local"
	ProjectStoreRemote = "remote"
)

// ClientConfig configures the desktop and terminal clients.
type ClientConfig struct {
	APIURL         string        `env:"STORYCRAFTER_API_URL" envDefault:"http://127.0.0.1:8000"`
	RequestTimeout time.Duration `env:"STORYCRAFTER_REQUEST_TIMEOUT" envDefault:"120s"`
	MinLoading     time.Duration `env:"STORYCRAFTER_MIN_LOADING" envDefault:"1500ms"`
	ProjectStore   string        `env:"STORYCRAFTER_PROJECT_STORE" envDefault:"memory"`
	DBPath         string        `env:"STORYCRAFTER_DB_PATH"` // empty: database.GetDefaultDBPath

	KeyringBackend  string `env:"STORYCRAFTER_KEYRING_BACKEND" envDefault:"auto"` // auto | file
	KeyringDir      string `env:"STORYCRAFTER_KEYRING_DIR"`
	KeyringPassword string `env:"STORYCRAFTER_KEYRING_PASSWORD"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// ServerConfig configures the Story API.
type ServerConfig struct {
	Addr           string        `env:"API_ADDR" envDefault:"127.0.0.1:8000"`
	DBPath         string        `env:"API_DB_PATH" envDefault:"storycrafter.db"`
	SecretKey      string        `env:"SECRET_KEY"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"30m"`
	AllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:5174,http://localhost:5175,http://127.0.0.1:5173,http://127.0.0.1:5174,http://127.0.0.1:5175"`

	GeneratorProvider string `env:"GENERATOR_PROVIDER" envDefault:"gemini"` // gemini | openai | claude
	GeneratorModel    string `env:"GENERATOR_MODEL"`                        // empty: provider default
	GeminiAPIKey      string `env:"GEMINI_API_KEY"`
	OpenAIAPIKey      string `env:"OPENAI_API_KEY"`
	AnthropicAPIKey   string `env:"ANTHROPIC_API_KEY"`

	RequireKnownProjects bool   `env:"API_REQUIRE_KNOWN_PROJECTS" envDefault:"false"`
	LogLevel             string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadClient loads .env (if present) and parses the client configuration.
func LoadClient() (*ClientConfig, error) {
	if err := utils.LoadEnv(); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return ParseClient()
}

// ParseClient parses the client configuration from the current environment only.
func ParseClient() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	cfg.APIURL = strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	cfg.ProjectStore = strings.ToLower(strings.TrimSpace(cfg.ProjectStore))
	switch cfg.ProjectStore {
	case ProjectStoreMemory, ProjectStoreLocal, ProjectStoreRemote:
	default:
		return nil, fmt.Errorf("STORYCRAFTER_PROJECT_STORE must be memory, local or remote, got %q", cfg.ProjectStore)
	}
	if cfg.MinLoading < 0 {
		cfg.MinLoading = 0
	}
	return cfg, nil
}

// LoadServer loads .env (if present) and parses the Story API configuration.
func LoadServer() (*ServerConfig, error) {
	if err := utils.LoadEnv(); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return ParseServer()
}

func ParseServer() (*ServerConfig, error) {
	cfg := &ServerConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	cfg.SecretKey = strings.TrimSpace(cfg.SecretKey)
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY is required")
	}
	if cfg.AccessTokenTTL <= 0 {
		return nil, fmt.Errorf("ACCESS_TOKEN_TTL must be positive")
	}
	cfg.GeneratorProvider = strings.ToLower(strings.TrimSpace(cfg.GeneratorProvider))
	return cfg, nil
}
