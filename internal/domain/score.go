package domain

// AxisScores holds one item's four axis scores.
type AxisScores map[AxisID]ScoreLevel

// ScoreMatrix maps every item to its axis scores. A validated matrix has
// exactly 15 items with 4 axes each.
type ScoreMatrix map[ItemID]AxisScores

// ItemTotals maps every item to the sum of its axis scores (0..20).
type ItemTotals map[ItemID]int

// RankBreakpoint is one row of the rank table: totals >= Min get Rank.
type RankBreakpoint struct {
	Min   int    `json:"min"`
	Rank  Rank   `json:"rank"`
	Label string `json:"label"`
}

// Shortfall is the distance of one item from the 20-point maximum.
type Shortfall struct {
	Item      ItemID `json:"item"`
	Name      string `json:"name"`
	Total     int    `json:"total"`
	Shortfall int    `json:"shortfall"`
}

// EvaluationResult bundles one scoring pass over one text.
type EvaluationResult struct {
	Scores     ScoreMatrix `json:"scores"`
	ItemTotals ItemTotals  `json:"item_totals"`
	Total      int         `json:"total"`
	Rank       Rank        `json:"rank"`
	RankLabel  string      `json:"rank_label"`
	Passing    bool        `json:"passing"`
	Verdict    Verdict     `json:"verdict"`
	Shortfalls []Shortfall `json:"shortfalls,omitempty"`
	Summary    string      `json:"summary,omitempty"`
	Raw        string      `json:"-"`
}
