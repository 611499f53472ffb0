package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"google.golang.org/genai"

	"storycrafter/internal/config"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
)

var defaultModels = map[string]string{
	ProviderGemini: "gemini-2.5-flash",
	ProviderOpenAI: "gpt-5-mini",
	ProviderClaude: "claude-3-5-sonnet-latest",
}

const claudeMaxTokens = 4096

// ModelConfig selects and authenticates a chat model.
type ModelConfig struct {
	Provider string
	Model    string
	APIKey   string
}

// ModelConfigFrom picks the API key matching the configured provider.
func ModelConfigFrom(cfg *config.ServerConfig) ModelConfig {
	mc := ModelConfig{Provider: strings.ToLower(cfg.GeneratorProvider), Model: cfg.GeneratorModel}
	switch mc.Provider {
	case ProviderGemini:
		mc.APIKey = cfg.GeminiAPIKey
	case ProviderOpenAI:
		mc.APIKey = cfg.OpenAIAPIKey
	case ProviderClaude:
		mc.APIKey = cfg.AnthropicAPIKey
	}
	return mc
}

// NewChatModel builds the eino chat model for the configured provider.
func NewChatModel(ctx context.Context, mc ModelConfig) (model.BaseChatModel, error) {
	name := mc.Model
	if name == "" {
		name = defaultModels[mc.Provider]
	}
	if mc.APIKey == "" {
		return nil, fmt.Errorf("no API key configured for provider %q", mc.Provider)
	}

	switch mc.Provider {
	case ProviderGemini:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  mc.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("create genai client: %w", err)
		}
		m, err := gemini.NewChatModel(ctx, &gemini.Config{Client: client, Model: name})
		if err != nil {
			return nil, fmt.Errorf("create gemini model: %w", err)
		}
		return m, nil
	case ProviderOpenAI:
		m, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{APIKey: mc.APIKey, Model: name})
		if err != nil {
			return nil, fmt.Errorf("create openai model: %w", err)
		}
		return m, nil
	case ProviderClaude:
		m, err := claude.NewChatModel(ctx, &claude.Config{APIKey: mc.APIKey, Model: name, MaxTokens: claudeMaxTokens})
		if err != nil {
			return nil, fmt.Errorf("create claude model: %w", err)
		}
		return m, nil
	}
	return nil, fmt.Errorf("unknown generator provider %q", mc.Provider)
}
