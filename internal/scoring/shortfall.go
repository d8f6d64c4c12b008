package scoring

import (
	"cmp"
	"slices"

	"github.com/heartmarshall/question-scorer/internal/domain"
)

// DefaultShortfallCount is how many weak items are reported by default.
const DefaultShortfallCount = 3

// TopShortfalls ranks items by their distance from the 20-point maximum,
// largest first. Ties keep item order. At most k entries are returned.
func TopShortfalls(totals domain.ItemTotals, k int) []domain.Shortfall {
	if k <= 0 {
		return nil
	}

	all := make([]domain.Shortfall, 0, domain.ItemCount)
	for _, item := range domain.ItemIDs() {
		total := totals[item]
		all = append(all, domain.Shortfall{
			Item:      item,
			Name:      domain.ItemName(item),
			Total:     total,
			Shortfall: domain.MaxItemTotal - total,
		})
	}

	slices.SortStableFunc(all, func(a, b domain.Shortfall) int {
		return cmp.Compare(b.Shortfall, a.Shortfall)
	})

	if k > len(all) {
		k = len(all)
	}
	return all[:k]
}
