package scoring

import "github.com/heartmarshall/question-scorer/internal/domain"

// ClassifyOutcome compares the totals before and after revision.
func ClassifyOutcome(table RankTable, before, after int) domain.Outcome {
	switch {
	case table.IsPassing(after):
		return domain.OutcomePassing
	case after > before:
		return domain.OutcomeImprovedNotPassing
	default:
		return domain.OutcomeNoSufficientImprovement
	}
}
