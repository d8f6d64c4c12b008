package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/question-scorer/internal/domain"
	"github.com/heartmarshall/question-scorer/internal/scoring"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// Every failure wraps domain.ErrConfig.
func (c *Config) Validate() error {
	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("%w: llm: %w", domain.ErrConfig, err)
	}

	if c.Budget.MaxCalls <= 0 {
		return fmt.Errorf("%w: budget.max_calls must be > 0 (got %d)", domain.ErrConfig, c.Budget.MaxCalls)
	}

	if err := c.Scoring.validate(); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}

	if c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("%w: rate_limit.per_minute must be > 0 (got %d)", domain.ErrConfig, c.RateLimit.PerMinute)
	}

	return nil
}

func (l *LLMConfig) validate() error {
	l.Provider = strings.ToLower(strings.TrimSpace(l.Provider))
	switch l.Provider {
	case ProviderAnthropic, ProviderGemini:
	default:
		return fmt.Errorf("unknown provider %q (want %s or %s)", l.Provider, ProviderAnthropic, ProviderGemini)
	}

	if strings.TrimSpace(l.APIKey) == "" {
		return fmt.Errorf("api_key is required (LLM_API_KEY)")
	}
	if l.Model == "" {
		l.Model = l.DefaultModel()
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return fmt.Errorf("temperature must be within [0,2] (got %v)", l.Temperature)
	}
	return nil
}

func (s *ScoringConfig) validate() error {
	if s.ShortfallCount < 0 || s.ShortfallCount > domain.ItemCount {
		return fmt.Errorf("%w: shortfall_count must be within [0,%d] (got %d)", domain.ErrConfig, domain.ItemCount, s.ShortfallCount)
	}
	if s.FocusItems < 0 || s.FocusItems > domain.ItemCount {
		return fmt.Errorf("%w: focus_items must be within [0,%d] (got %d)", domain.ErrConfig, domain.ItemCount, s.FocusItems)
	}
	if s.MaxTextLength <= 0 {
		return fmt.Errorf("%w: max_text_length must be > 0 (got %d)", domain.ErrConfig, s.MaxTextLength)
	}

	s.FloorRank = strings.ToUpper(strings.TrimSpace(s.FloorRank))
	bps, err := scoring.ParseBreakpoints(s.RankThresholdsRaw)
	if err != nil {
		return fmt.Errorf("rank_thresholds: %w", err)
	}
	s.RankBreakpoints = bps

	if _, err := s.RankTable(); err != nil {
		return fmt.Errorf("rank_thresholds: %w", err)
	}
	return nil
}
