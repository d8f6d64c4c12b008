package domain

// Rank is the ordinal label derived from an evaluation total.
type Rank string

const (
	RankS Rank = "S"
	RankA Rank = "A"
	RankB Rank = "B"
	RankC Rank = "C"
	RankD Rank = "D"
	RankE Rank = "E"
)

func (r Rank) String() string { return string(r) }

func (r Rank) IsValid() bool {
	switch r {
	case RankS, RankA, RankB, RankC, RankD, RankE:
		return true
	}
	return false
}

// Order returns the rank's position, higher is better. Unknown ranks are -1.
func (r Rank) Order() int {
	switch r {
	case RankS:
		return 5
	case RankA:
		return 4
	case RankB:
		return 3
	case RankC:
		return 2
	case RankD:
		return 1
	case RankE:
		return 0
	}
	return -1
}

// DefaultLabel returns the description shown next to the rank.
func (r Rank) DefaultLabel() string {
	switch r {
	case RankS:
		return "模範水準"
	case RankA:
		return "非常に優秀"
	case RankB:
		return "合格：実務水準"
	case RankC:
		return "ボーダー"
	case RankD:
		return "要改善"
	case RankE:
		return "不十分"
	}
	return ""
}

// Verdict is the three-band pass/fail banner for a total.
type Verdict string

const (
	VerdictPassing    Verdict = "passing"
	VerdictBorderline Verdict = "borderline"
	VerdictFailing    Verdict = "failing"
)

func (v Verdict) String() string { return string(v) }

func (v Verdict) Label() string {
	switch v {
	case VerdictPassing:
		return "合格"
	case VerdictBorderline:
		return "ボーダー"
	case VerdictFailing:
		return "不合格"
	}
	return ""
}

// Outcome classifies a Before/After comparison.
type Outcome string

const (
	OutcomePassing                 Outcome = "passing"
	OutcomeImprovedNotPassing      Outcome = "improved_not_passing"
	OutcomeNoSufficientImprovement Outcome = "no_sufficient_improvement"
)

func (o Outcome) String() string { return string(o) }

func (o Outcome) Label() string {
	switch o {
	case OutcomePassing:
		return "改善後に合格水準へ到達"
	case OutcomeImprovedNotPassing:
		return "改善したが合格水準には未達"
	case OutcomeNoSufficientImprovement:
		return "十分な改善が見られない"
	}
	return ""
}
