package evaluation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/question-scorer/internal/domain"
)

const stageScore = "score"

// Score evaluates one draft. Input is validated before any budget is used.
func (s *Service) Score(ctx context.Context, input ScoreInput) (*domain.EvaluationResult, error) {
	if err := input.Validate(s.opts.MaxTextLength); err != nil {
		return nil, err
	}
	text := domain.NormalizeDraft(input.Text)

	res, err := s.score(ctx, stageScore, text)
	if err != nil {
		return nil, err
	}

	if s.opts.Summary {
		summary, err := s.call(ctx, "summary", s.prompts.Summary(text, res.Total, res.Rank, res.ItemTotals))
		if err != nil {
			return nil, err
		}
		res.Summary = strings.TrimSpace(summary)
	}

	s.log.InfoContext(ctx, "draft scored",
		slog.Int("total", res.Total),
		slog.String("rank", res.Rank.String()),
		slog.String("verdict", res.Verdict.String()),
	)

	return res, nil
}
