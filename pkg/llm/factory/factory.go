package factory

import (
	"context"
	"fmt"

	"ai-interview-be/pkg/llm"
	"ai-interview-be/pkg/llm/gemini"
	"ai-interview-be/pkg/llm/ollama"
)

type Config struct {
	Provider string
	Model    string
	BaseURL  string
	APIKey   string
	Project  string
	Location string
}

func NewLLMProvider(ctx context.Context, cfg Config) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "", "gemini":
		return gemini.NewGeminiProvider(ctx, cfg.APIKey, cfg.Project, cfg.Location, cfg.Model)
	case "ollama":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(baseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
