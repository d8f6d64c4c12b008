package evaluation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/question-scorer/internal/domain"
	"github.com/heartmarshall/question-scorer/internal/prompt"
	"github.com/heartmarshall/question-scorer/internal/scoring"
)

const DefaultMaxTextLength = 20000

type generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type callBudget interface {
	Reserve(n int) error
}

// Options selects optional pipeline stages.
type Options struct {
	// ShortfallCount is how many weak items a non-passing result lists.
	ShortfallCount int
	// Summary adds a narrative request after a single scoring run.
	Summary bool
	// MaxTextLength caps the draft length in characters.
	MaxTextLength int
}

// Service scores drafts and runs Before/After sessions.
type Service struct {
	gen     generator
	budget  callBudget
	prompts *prompt.Builder
	ranks   scoring.RankTable
	opts    Options
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new evaluation service.
func NewService(
	log *slog.Logger,
	gen generator,
	budget callBudget,
	prompts *prompt.Builder,
	ranks scoring.RankTable,
	opts Options,
) *Service {
	if opts.MaxTextLength <= 0 {
		opts.MaxTextLength = DefaultMaxTextLength
	}
	return &Service{
		gen:     gen,
		budget:  budget,
		prompts: prompts,
		ranks:   ranks,
		opts:    opts,
		log:     log.With("service", "evaluation"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// call reserves one budget unit and sends prompt to the backend. Errors are
// tagged with stage.
func (s *Service) call(ctx context.Context, stage, p string) (string, error) {
	if err := s.budget.Reserve(1); err != nil {
		s.log.WarnContext(ctx, "call budget refused", slog.String("stage", stage), slog.String("error", err.Error()))
		return "", err
	}

	start := time.Now()
	raw, err := s.gen.Generate(ctx, p)
	if err != nil {
		var re *domain.ResponseError
		if !errors.As(err, &re) {
			re = domain.NewBackendError("", err)
			err = re
		}
		re.Stage = stage
		s.log.ErrorContext(ctx, "generation failed",
			slog.String("stage", stage),
			slog.String("error", err.Error()),
		)
		return "", err
	}

	s.log.DebugContext(ctx, "generation done",
		slog.String("stage", stage),
		slog.Int("response_len", len(raw)),
		slog.Duration("duration", time.Since(start)),
	)
	return raw, nil
}

// score runs one scoring pass: prompt, call, parse, aggregate, classify.
func (s *Service) score(ctx context.Context, stage, text string) (*domain.EvaluationResult, error) {
	raw, err := s.call(ctx, stage, s.prompts.Scoring(text))
	if err != nil {
		return nil, err
	}

	matrix, err := scoring.ParseScoreMatrix(raw)
	if err != nil {
		var re *domain.ResponseError
		if errors.As(err, &re) {
			re.Stage = stage
		}
		s.log.WarnContext(ctx, "unusable scoring response",
			slog.String("stage", stage),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	res := s.ranks.Evaluate(matrix, s.opts.ShortfallCount)
	res.Raw = raw
	return &res, nil
}
