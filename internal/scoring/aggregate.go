package scoring

import "github.com/heartmarshall/question-scorer/internal/domain"

// Aggregate sums the 4 axis scores of every item (0..20) and the 15 item
// totals (0..300). Missing entries count as zero; a validated matrix has none.
func Aggregate(matrix domain.ScoreMatrix) (domain.ItemTotals, int) {
	totals := make(domain.ItemTotals, domain.ItemCount)
	grand := 0

	for _, item := range domain.ItemIDs() {
		sum := 0
		for _, axis := range domain.AxisIDs() {
			sum += int(matrix[item][axis])
		}
		totals[item] = sum
		grand += sum
	}

	return totals, grand
}
