package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/question-scorer/internal/chart"
	"github.com/heartmarshall/question-scorer/internal/domain"
	"github.com/heartmarshall/question-scorer/internal/service/evaluation"
)

// evaluationService defines the minimal interface needed by EvaluationHandler.
type evaluationService interface {
	Score(ctx context.Context, input evaluation.ScoreInput) (*domain.EvaluationResult, error)
	RunSession(ctx context.Context, input evaluation.ScoreInput) (*domain.Session, error)
}

// EvaluationHandler serves scoring and Before/After session endpoints.
type EvaluationHandler struct {
	svc evaluationService
	log *slog.Logger
}

// NewEvaluationHandler creates an EvaluationHandler.
func NewEvaluationHandler(svc evaluationService, logger *slog.Logger) *EvaluationHandler {
	return &EvaluationHandler{svc: svc, log: logger.With("handler", "evaluation")}
}

type scoreRequest struct {
	Text string `json:"text"`
}

type evaluationResponse struct {
	Evaluation *domain.EvaluationResult `json:"evaluation"`
	Chart      chart.Radar              `json:"chart"`
	ItemCharts []chart.Radar            `json:"item_charts"`
}

type sessionResponse struct {
	Session      *domain.Session `json:"session"`
	OutcomeLabel string          `json:"outcome_label,omitempty"`
	Chart        *chart.Radar    `json:"chart,omitempty"`
}

type sessionErrorResponse struct {
	errorResponse
	Session *sessionResponse `json:"session,omitempty"`
}

// Evaluate scores one draft.
func (h *EvaluationHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.Score(r.Context(), evaluation.ScoreInput{Text: req.Text})
	if err != nil {
		status, body := errorStatus(err)
		logError(h.log, r, status, err)
		writeJSON(w, status, body)
		return
	}

	writeJSON(w, http.StatusOK, evaluationResponse{
		Evaluation: res,
		Chart:      chart.ItemRadar(res.ItemTotals),
		ItemCharts: chart.AxisRadars(res.Scores),
	})
}

// Session runs a Before/After session. A failed session is still returned
// so the caller sees how far it got.
func (h *EvaluationHandler) Session(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := h.svc.RunSession(r.Context(), evaluation.ScoreInput{Text: req.Text})
	if err != nil {
		status, body := errorStatus(err)
		logError(h.log, r, status, err)
		resp := sessionErrorResponse{errorResponse: body}
		if sess != nil {
			resp.Session = toSessionResponse(sess)
		}
		writeJSON(w, status, resp)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(sess))
}

func toSessionResponse(sess *domain.Session) *sessionResponse {
	resp := &sessionResponse{
		Session:      sess,
		OutcomeLabel: sess.Outcome.Label(),
	}
	switch {
	case sess.Before != nil && sess.After != nil:
		c := chart.ComparisonRadar(sess.Before.ItemTotals, sess.After.ItemTotals)
		resp.Chart = &c
	case sess.Before != nil:
		c := chart.ItemRadar(sess.Before.ItemTotals)
		resp.Chart = &c
	}
	return resp
}
