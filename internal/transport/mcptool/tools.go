package mcptool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/heartmarshall/question-scorer/internal/chart"
	"github.com/heartmarshall/question-scorer/internal/domain"
	"github.com/heartmarshall/question-scorer/internal/service/evaluation"
)

// evaluationService defines the minimal interface needed by the tools.
type evaluationService interface {
	Score(ctx context.Context, input evaluation.ScoreInput) (*domain.EvaluationResult, error)
	RunSession(ctx context.Context, input evaluation.ScoreInput) (*domain.Session, error)
}

// ScoreTool handles the score_question MCP tool.
type ScoreTool struct {
	svc evaluationService
}

// NewScoreTool creates a ScoreTool.
func NewScoreTool(svc evaluationService) *ScoreTool {
	return &ScoreTool{svc: svc}
}

// Definition returns the MCP tool definition for score_question.
func (t *ScoreTool) Definition() mcp.Tool {
	return mcp.NewTool("score_question",
		mcp.WithDescription(
			"Score a draft of a legislative general question (一般質問原稿) on 15 items × 4 axes (0-5 each, 300 points). "+
				"Returns scores, item totals, total, rank, pass verdict and the weakest items as JSON.",
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Full text of the draft question"),
		),
	)
}

// Handle processes the score_question tool call.
func (t *ScoreTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := req.GetString("text", "")

	res, err := t.svc.Score(ctx, evaluation.ScoreInput{Text: text})
	if err != nil {
		return errorResult(err), nil
	}

	return jsonResult(struct {
		Evaluation *domain.EvaluationResult `json:"evaluation"`
		Chart      chart.Radar              `json:"chart"`
		ItemCharts []chart.Radar            `json:"item_charts"`
	}{res, chart.ItemRadar(res.ItemTotals), chart.AxisRadars(res.Scores)})
}

// SessionTool handles the improve_and_rescore MCP tool.
type SessionTool struct {
	svc evaluationService
}

// NewSessionTool creates a SessionTool.
func NewSessionTool(svc evaluationService) *SessionTool {
	return &SessionTool{svc: svc}
}

// Definition returns the MCP tool definition for improve_and_rescore.
func (t *SessionTool) Definition() mcp.Tool {
	return mcp.NewTool("improve_and_rescore",
		mcp.WithDescription(
			"Score a draft, propose five concrete improvements, rewrite the draft with them and score the revision. "+
				"Uses four backend calls. Returns before/after results, the improvements, the revision and the outcome as JSON.",
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Full text of the draft question"),
		),
	)
}

// Handle processes the improve_and_rescore tool call.
func (t *SessionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := req.GetString("text", "")

	sess, err := t.svc.RunSession(ctx, evaluation.ScoreInput{Text: text})
	if err != nil {
		if sess != nil {
			return errorResult(fmt.Errorf("session failed at %s: %w", sess.FailedAt, err)), nil
		}
		return errorResult(err), nil
	}

	return jsonResult(struct {
		Session      *domain.Session `json:"session"`
		OutcomeLabel string          `json:"outcome_label"`
		Chart        chart.Radar     `json:"chart"`
	}{sess, sess.Outcome.Label(), chart.ComparisonRadar(sess.Before.ItemTotals, sess.After.ItemTotals)})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// errorResult reports err to the host, with the backend payload when one
// was captured.
func errorResult(err error) *mcp.CallToolResult {
	msg := err.Error()
	if raw, ok := domain.RawPayload(err); ok {
		msg += "\n\nraw response:\n" + raw
	}
	return mcp.NewToolResultError(msg)
}
