package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/question-scorer/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/question-scorer/internal/adapter/provider/gemini"
	"github.com/heartmarshall/question-scorer/internal/config"
	"github.com/heartmarshall/question-scorer/internal/domain"
)

// Generator sends one prompt to the generation backend.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewGenerator builds the backend client selected by cfg.Provider.
func NewGenerator(cfg config.LLMConfig, log *slog.Logger) (Generator, error) {
	model := cfg.Model
	if model == "" {
		model = cfg.DefaultModel()
	}

	switch cfg.Provider {
	case config.ProviderAnthropic:
		return anthropic.New(anthropic.Config{
			APIKey:      cfg.APIKey,
			Model:       model,
			BaseURL:     cfg.BaseURL,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
			Timeout:     cfg.Timeout,
		}, log), nil
	case config.ProviderGemini:
		return gemini.New(gemini.Config{
			APIKey:      cfg.APIKey,
			Model:       model,
			BaseURL:     cfg.BaseURL,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
			Timeout:     cfg.Timeout,
		}, log), nil
	default:
		return nil, fmt.Errorf("%w: unknown llm provider %q", domain.ErrConfig, cfg.Provider)
	}
}
