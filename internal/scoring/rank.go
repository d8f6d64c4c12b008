package scoring

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/heartmarshall/question-scorer/internal/domain"
)

// Default thresholds used when nothing is configured.
const (
	DefaultPassThreshold       = 210
	DefaultBorderlineThreshold = 180
	DefaultFloorRank           = domain.RankE
)

// RankTable maps totals to ranks and pass/fail verdicts. Breakpoints are
// strictly descending; a total below every breakpoint gets the floor rank.
type RankTable struct {
	breakpoints []domain.RankBreakpoint
	floor       domain.Rank
	pass        int
	borderline  int
}

// DefaultBreakpoints returns the canonical table: 270/240/210/180/150 for S..D.
func DefaultBreakpoints() []domain.RankBreakpoint {
	return []domain.RankBreakpoint{
		{Min: 270, Rank: domain.RankS, Label: domain.RankS.DefaultLabel()},
		{Min: 240, Rank: domain.RankA, Label: domain.RankA.DefaultLabel()},
		{Min: 210, Rank: domain.RankB, Label: domain.RankB.DefaultLabel()},
		{Min: 180, Rank: domain.RankC, Label: domain.RankC.DefaultLabel()},
		{Min: 150, Rank: domain.RankD, Label: domain.RankD.DefaultLabel()},
	}
}

// DefaultRankTable returns the canonical table with pass at 210 and
// borderline at 180.
func DefaultRankTable() RankTable {
	t, err := NewRankTable(DefaultBreakpoints(), DefaultFloorRank, DefaultPassThreshold, DefaultBorderlineThreshold)
	if err != nil {
		panic(fmt.Sprintf("scoring: default rank table: %v", err))
	}
	return t
}

// NewRankTable validates and builds a rank table. Breakpoint minimums must
// be strictly descending within (0, 300], ranks strictly descending from
// best to worst and all above floor, and 0 <= borderline <= pass <= 300.
func NewRankTable(breakpoints []domain.RankBreakpoint, floor domain.Rank, pass, borderline int) (RankTable, error) {
	if !floor.IsValid() {
		return RankTable{}, fmt.Errorf("%w: unknown floor rank %q", domain.ErrConfig, floor)
	}
	if pass < 0 || pass > domain.MaxGrandTotal {
		return RankTable{}, fmt.Errorf("%w: pass threshold %d out of range [0,%d]", domain.ErrConfig, pass, domain.MaxGrandTotal)
	}
	if borderline < 0 || borderline > pass {
		return RankTable{}, fmt.Errorf("%w: borderline threshold %d must be within [0,%d]", domain.ErrConfig, borderline, pass)
	}

	seen := map[domain.Rank]bool{floor: true}
	bps := make([]domain.RankBreakpoint, len(breakpoints))
	for i, bp := range breakpoints {
		if !bp.Rank.IsValid() {
			return RankTable{}, fmt.Errorf("%w: unknown rank %q", domain.ErrConfig, bp.Rank)
		}
		if seen[bp.Rank] {
			return RankTable{}, fmt.Errorf("%w: rank %s used twice", domain.ErrConfig, bp.Rank)
		}
		seen[bp.Rank] = true

		if bp.Min <= 0 || bp.Min > domain.MaxGrandTotal {
			return RankTable{}, fmt.Errorf("%w: threshold %d for rank %s out of range (0,%d]", domain.ErrConfig, bp.Min, bp.Rank, domain.MaxGrandTotal)
		}
		if i > 0 && bp.Min >= breakpoints[i-1].Min {
			return RankTable{}, fmt.Errorf("%w: rank thresholds must be strictly descending (%d after %d)", domain.ErrConfig, bp.Min, breakpoints[i-1].Min)
		}
		if i > 0 && bp.Rank.Order() >= breakpoints[i-1].Rank.Order() {
			return RankTable{}, fmt.Errorf("%w: rank %s may not follow rank %s", domain.ErrConfig, bp.Rank, breakpoints[i-1].Rank)
		}
		if floor.Order() >= bp.Rank.Order() {
			return RankTable{}, fmt.Errorf("%w: floor rank %s must be below rank %s", domain.ErrConfig, floor, bp.Rank)
		}

		if bp.Label == "" {
			bp.Label = bp.Rank.DefaultLabel()
		}
		bps[i] = bp
	}

	return RankTable{breakpoints: bps, floor: floor, pass: pass, borderline: borderline}, nil
}

// ParseBreakpoints parses "270:S,240:A,..." into breakpoints with default
// labels. Order and ranges are checked by NewRankTable.
func ParseBreakpoints(raw string) ([]domain.RankBreakpoint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	out := make([]domain.RankBreakpoint, 0, len(parts))
	for _, p := range parts {
		minStr, rankStr, ok := strings.Cut(strings.TrimSpace(p), ":")
		if !ok {
			return nil, fmt.Errorf("%w: rank threshold %q: want MIN:RANK", domain.ErrConfig, p)
		}
		minScore, err := strconv.Atoi(strings.TrimSpace(minStr))
		if err != nil {
			return nil, fmt.Errorf("%w: rank threshold %q: %v", domain.ErrConfig, p, err)
		}
		rank := domain.Rank(strings.ToUpper(strings.TrimSpace(rankStr)))
		out = append(out, domain.RankBreakpoint{Min: minScore, Rank: rank, Label: rank.DefaultLabel()})
	}
	return out, nil
}

// Classify returns the rank of the first breakpoint whose minimum the total
// reaches, else the floor rank.
func (t RankTable) Classify(total int) domain.Rank {
	for _, bp := range t.breakpoints {
		if total >= bp.Min {
			return bp.Rank
		}
	}
	return t.floor
}

// Label returns the description configured for rank.
func (t RankTable) Label(rank domain.Rank) string {
	for _, bp := range t.breakpoints {
		if bp.Rank == rank {
			return bp.Label
		}
	}
	return rank.DefaultLabel()
}

// IsPassing reports whether total reaches the pass threshold.
func (t RankTable) IsPassing(total int) bool {
	return total >= t.pass
}

// Verdict places total in the passing, borderline or failing band.
func (t RankTable) Verdict(total int) domain.Verdict {
	switch {
	case total >= t.pass:
		return domain.VerdictPassing
	case total >= t.borderline:
		return domain.VerdictBorderline
	default:
		return domain.VerdictFailing
	}
}

func (t RankTable) PassThreshold() int       { return t.pass }
func (t RankTable) BorderlineThreshold() int { return t.borderline }
func (t RankTable) FloorRank() domain.Rank   { return t.floor }

// Breakpoints returns a copy of the table rows, highest first, followed
// by the floor row.
func (t RankTable) Breakpoints() []domain.RankBreakpoint {
	out := make([]domain.RankBreakpoint, 0, len(t.breakpoints)+1)
	out = append(out, t.breakpoints...)
	return append(out, domain.RankBreakpoint{Min: 0, Rank: t.floor, Label: t.floor.DefaultLabel()})
}

// Evaluate builds an evaluation result from a validated matrix. Shortfalls
// are listed only for results below the pass threshold.
func (t RankTable) Evaluate(matrix domain.ScoreMatrix, shortfalls int) domain.EvaluationResult {
	totals, total := Aggregate(matrix)
	rank := t.Classify(total)

	res := domain.EvaluationResult{
		Scores:     matrix,
		ItemTotals: totals,
		Total:      total,
		Rank:       rank,
		RankLabel:  t.Label(rank),
		Passing:    t.IsPassing(total),
		Verdict:    t.Verdict(total),
	}
	if !res.Passing {
		res.Shortfalls = TopShortfalls(totals, shortfalls)
	}
	return res
}
