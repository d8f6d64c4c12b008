package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/question-scorer/internal/domain"
)

func totalsWith(base int, overrides map[domain.ItemID]int) domain.ItemTotals {
	totals := make(domain.ItemTotals, domain.ItemCount)
	for _, item := range domain.ItemIDs() {
		totals[item] = base
	}
	for item, v := range overrides {
		totals[item] = v
	}
	return totals
}

func TestTopShortfalls_OrdersLargestFirst(t *testing.T) {
	t.Parallel()

	totals := totalsWith(18, map[domain.ItemID]int{4: 5, 11: 2, 7: 10})

	got := TopShortfalls(totals, 3)
	require.Len(t, got, 3)
	assert.Equal(t, domain.ItemID(11), got[0].Item)
	assert.Equal(t, 18, got[0].Shortfall)
	assert.Equal(t, domain.ItemID(4), got[1].Item)
	assert.Equal(t, domain.ItemID(7), got[2].Item)
	assert.Equal(t, domain.ItemName(11), got[0].Name)
	assert.Equal(t, 2, got[0].Total)
}

func TestTopShortfalls_TiesKeepItemOrder(t *testing.T) {
	t.Parallel()

	totals := totalsWith(12, map[domain.ItemID]int{9: 8, 3: 8})

	got := TopShortfalls(totals, 4)
	require.Len(t, got, 4)
	assert.Equal(t, domain.ItemID(3), got[0].Item)
	assert.Equal(t, domain.ItemID(9), got[1].Item)
	assert.Equal(t, domain.ItemID(1), got[2].Item)
	assert.Equal(t, domain.ItemID(2), got[3].Item)
}

func TestTopShortfalls_NonIncreasing(t *testing.T) {
	t.Parallel()

	totals := totalsWith(0, map[domain.ItemID]int{1: 20, 2: 13, 5: 7, 6: 19, 14: 1})

	got := TopShortfalls(totals, domain.ItemCount)
	require.Len(t, got, domain.ItemCount)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Shortfall, got[i].Shortfall)
	}
}

func TestTopShortfalls_Bounds(t *testing.T) {
	t.Parallel()

	totals := totalsWith(10, nil)
	assert.Empty(t, TopShortfalls(totals, 0))
	assert.Empty(t, TopShortfalls(totals, -1))
	assert.Len(t, TopShortfalls(totals, 99), domain.ItemCount)
}
