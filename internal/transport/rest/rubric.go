package rest

import (
	"net/http"

	"github.com/heartmarshall/question-scorer/internal/domain"
	"github.com/heartmarshall/question-scorer/internal/scoring"
)

// RubricHandler serves the static scoring rubric and the call budget.
type RubricHandler struct {
	ranks  scoring.RankTable
	budget budgetStatus
}

// NewRubricHandler creates a RubricHandler.
func NewRubricHandler(ranks scoring.RankTable, budget budgetStatus) *RubricHandler {
	return &RubricHandler{ranks: ranks, budget: budget}
}

type rubricResponse struct {
	Legend              []domain.LevelExplanation `json:"legend"`
	Axes                []domain.Axis             `json:"axes"`
	Items               []domain.Item             `json:"items"`
	Ranks               []domain.RankBreakpoint   `json:"ranks"`
	PassThreshold       int                       `json:"pass_threshold"`
	BorderlineThreshold int                       `json:"borderline_threshold"`
	MaxTotal            int                       `json:"max_total"`
}

type budgetResponse struct {
	Used      int `json:"used"`
	Ceiling   int `json:"ceiling"`
	Remaining int `json:"remaining"`
}

// Rubric returns the legend once, then axes and items, then the rank table.
func (h *RubricHandler) Rubric(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rubricResponse{
		Legend:              domain.ScoreLevelExplanations(),
		Axes:                domain.Axes(),
		Items:               domain.Items(),
		Ranks:               h.ranks.Breakpoints(),
		PassThreshold:       h.ranks.PassThreshold(),
		BorderlineThreshold: h.ranks.BorderlineThreshold(),
		MaxTotal:            domain.MaxGrandTotal,
	})
}

// Budget reports backend call usage.
func (h *RubricHandler) Budget(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, budgetResponse{
		Used:      h.budget.Used(),
		Ceiling:   h.budget.Ceiling(),
		Remaining: h.budget.Remaining(),
	})
}
