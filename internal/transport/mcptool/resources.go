package mcptool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/heartmarshall/question-scorer/internal/domain"
	"github.com/heartmarshall/question-scorer/internal/scoring"
)

const rubricURI = "scorer://rubric"

// budgetStatus is the read side of the call budget.
type budgetStatus interface {
	Used() int
	Ceiling() int
	Remaining() int
}

// RubricResource serves the rubric and the remaining call budget.
type RubricResource struct {
	ranks  scoring.RankTable
	budget budgetStatus
}

// NewRubricResource creates a RubricResource.
func NewRubricResource(ranks scoring.RankTable, budget budgetStatus) *RubricResource {
	return &RubricResource{ranks: ranks, budget: budget}
}

// Resource returns the MCP resource definition.
func (r *RubricResource) Resource() mcp.Resource {
	return mcp.NewResource(
		rubricURI,
		"Scoring rubric",
		mcp.WithResourceDescription("Score-level legend, axes, items, rank table and call budget"),
		mcp.WithMIMEType("application/json"),
	)
}

// Handle returns the rubric as JSON.
func (r *RubricResource) Handle(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(struct {
		Legend        []domain.LevelExplanation `json:"legend"`
		Axes          []domain.Axis             `json:"axes"`
		Items         []domain.Item             `json:"items"`
		Ranks         []domain.RankBreakpoint   `json:"ranks"`
		PassThreshold int                       `json:"pass_threshold"`
		Budget        map[string]int            `json:"budget"`
	}{
		Legend:        domain.ScoreLevelExplanations(),
		Axes:          domain.Axes(),
		Items:         domain.Items(),
		Ranks:         r.ranks.Breakpoints(),
		PassThreshold: r.ranks.PassThreshold(),
		Budget: map[string]int{
			"used":      r.budget.Used(),
			"ceiling":   r.budget.Ceiling(),
			"remaining": r.budget.Remaining(),
		},
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling rubric: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
