package app

import (
	"fmt"
	"log/slog"

	"github.com/heartmarshall/question-scorer/internal/budget"
	"github.com/heartmarshall/question-scorer/internal/config"
	"github.com/heartmarshall/question-scorer/internal/prompt"
	"github.com/heartmarshall/question-scorer/internal/scoring"
	"github.com/heartmarshall/question-scorer/internal/service/evaluation"
)

// Components is the process-scoped object graph shared by every surface.
// The budget lives here, so one process never exceeds its ceiling no matter
// how many requests or tool calls it serves.
type Components struct {
	Config   *config.Config
	Logger   *slog.Logger
	Budget   *budget.Budget
	Ranks    scoring.RankTable
	Service  *evaluation.Service
	Provider string
}

// NewComponents wires the scoring pipeline around gen.
func NewComponents(cfg *config.Config, log *slog.Logger, gen Generator) (*Components, error) {
	ranks, err := cfg.Scoring.RankTable()
	if err != nil {
		return nil, fmt.Errorf("rank table: %w", err)
	}

	b := budget.New(cfg.Budget.MaxCalls)
	prompts := prompt.NewBuilder(prompt.Options{
		Precedents: cfg.Scoring.Precedents,
		FocusItems: cfg.Scoring.FocusItems,
	})
	svc := evaluation.NewService(log, gen, b, prompts, ranks, evaluation.Options{
		ShortfallCount: cfg.Scoring.ShortfallCount,
		Summary:        cfg.Scoring.Summary,
		MaxTextLength:  cfg.Scoring.MaxTextLength,
	})

	return &Components{
		Config:   cfg,
		Logger:   log,
		Budget:   b,
		Ranks:    ranks,
		Service:  svc,
		Provider: cfg.LLM.Provider,
	}, nil
}

// Bootstrap loads configuration, installs the logger and wires components
// around the configured backend.
func Bootstrap() (*Components, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := NewLogger(cfg.Log)

	gen, err := NewGenerator(cfg.LLM, logger)
	if err != nil {
		return nil, err
	}

	return NewComponents(cfg, logger, gen)
}
