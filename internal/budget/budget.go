// Package budget counts backend calls against a fixed ceiling.
package budget

import (
	"sync/atomic"

	"github.com/heartmarshall/question-scorer/internal/domain"
)

// DefaultCeiling is used when no ceiling is configured.
const DefaultCeiling = 100

// Budget is a process-scoped call counter. It is safe for concurrent use:
// a reservation checks and increments in one step, so the ceiling is never
// exceeded. Units are consumed on reservation, whether or not the call
// that follows succeeds.
type Budget struct {
	used    atomic.Int64
	ceiling int64
}

// New creates a budget. A non-positive ceiling falls back to DefaultCeiling.
func New(ceiling int) *Budget {
	if ceiling <= 0 {
		ceiling = DefaultCeiling
	}
	return &Budget{ceiling: int64(ceiling)}
}

// TryReserve consumes n units if they fit under the ceiling.
func (b *Budget) TryReserve(n int) bool {
	if n <= 0 {
		return true
	}
	for {
		used := b.used.Load()
		if used+int64(n) > b.ceiling {
			return false
		}
		if b.used.CompareAndSwap(used, used+int64(n)) {
			return true
		}
	}
}

// Reserve is TryReserve returning a *domain.BudgetExceededError on refusal.
func (b *Budget) Reserve(n int) error {
	if b.TryReserve(n) {
		return nil
	}
	return &domain.BudgetExceededError{
		Used:      b.Used(),
		Ceiling:   b.Ceiling(),
		Requested: n,
	}
}

// Used returns the number of units consumed so far.
func (b *Budget) Used() int { return int(b.used.Load()) }

// Ceiling returns the configured maximum.
func (b *Budget) Ceiling() int { return int(b.ceiling) }

// Remaining returns how many units can still be reserved.
func (b *Budget) Remaining() int {
	r := b.ceiling - b.used.Load()
	if r < 0 {
		return 0
	}
	return int(r)
}

// Exhausted reports whether no unit is left.
func (b *Budget) Exhausted() bool { return b.Remaining() == 0 }
