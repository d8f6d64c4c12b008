package evaluation

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/heartmarshall/question-scorer/internal/domain"
	"github.com/heartmarshall/question-scorer/internal/scoring"
	"github.com/heartmarshall/question-scorer/pkg/ctxutil"
)

// SessionCalls is the number of backend calls one session makes.
const SessionCalls = 4

// RunSession scores the draft, asks for improvements and a revision, scores
// the revision and classifies the outcome. Steps run strictly in order; the
// first error moves the session to failed and is returned together with
// the partial session. Only input validation errors return a nil session.
func (s *Service) RunSession(ctx context.Context, input ScoreInput) (*domain.Session, error) {
	if err := input.Validate(s.opts.MaxTextLength); err != nil {
		return nil, err
	}
	text := domain.NormalizeDraft(input.Text)

	sess := domain.NewSession()
	ctx = ctxutil.WithSessionID(ctx, sess.ID)

	if err := s.runSession(ctx, sess, text); err != nil {
		sess.Fail(err, s.now())
		s.log.WarnContext(ctx, "session failed",
			slog.String("failed_at", sess.FailedAt.String()),
			slog.String("error", err.Error()),
		)
		return sess, err
	}

	s.log.InfoContext(ctx, "session done",
		slog.Int("before", sess.Before.Total),
		slog.Int("after", sess.After.Total),
		slog.String("outcome", sess.Outcome.String()),
	)
	return sess, nil
}

func (s *Service) runSession(ctx context.Context, sess *domain.Session, text string) error {
	if err := sess.Advance(domain.SessionScoringBefore, s.now()); err != nil {
		return err
	}
	before, err := s.score(ctx, domain.SessionScoringBefore.String(), text)
	if err != nil {
		return err
	}
	sess.Before = before

	if err := sess.Advance(domain.SessionImproving, s.now()); err != nil {
		return err
	}
	improvements, err := s.call(ctx, domain.SessionImproving.String(), s.prompts.Improvement(text, before.ItemTotals))
	if err != nil {
		return err
	}
	improvements = strings.TrimSpace(improvements)
	if improvements == "" {
		return stageError(domain.SessionImproving, "backend returned no improvements")
	}
	sess.Improvements = improvements

	if err := sess.Advance(domain.SessionRevising, s.now()); err != nil {
		return err
	}
	revision, err := s.call(ctx, domain.SessionRevising.String(), s.prompts.Revision(text, improvements))
	if err != nil {
		return err
	}
	revision = strings.TrimSpace(domain.NormalizeDraft(revision))
	if domain.IsBlank(revision) {
		return stageError(domain.SessionRevising, "backend returned an empty revision")
	}
	sess.Revision = revision

	if err := sess.Advance(domain.SessionScoringAfter, s.now()); err != nil {
		return err
	}
	after, err := s.score(ctx, domain.SessionScoringAfter.String(), revision)
	if err != nil {
		return err
	}
	sess.After = after

	if err := sess.Advance(domain.SessionComparing, s.now()); err != nil {
		return err
	}
	sess.Outcome = scoring.ClassifyOutcome(s.ranks, before.Total, after.Total)

	return sess.Advance(domain.SessionDone, s.now())
}

func stageError(stage domain.SessionState, msg string) error {
	re := domain.NewBackendError("", errors.New(msg))
	re.Stage = stage.String()
	return re
}
