package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/question-scorer/internal/domain"
)

func TestClassifyOutcome(t *testing.T) {
	t.Parallel()

	table := DefaultRankTable()
	tests := []struct {
		name          string
		before, after int
		want          domain.Outcome
	}{
		{"improved but below pass", 150, 200, domain.OutcomeImprovedNotPassing},
		{"reached pass", 150, 215, domain.OutcomePassing},
		{"got worse", 200, 190, domain.OutcomeNoSufficientImprovement},
		{"unchanged", 170, 170, domain.OutcomeNoSufficientImprovement},
		{"passing without improvement", 250, 230, domain.OutcomePassing},
		{"exact boundary", 100, 210, domain.OutcomePassing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ClassifyOutcome(table, tt.before, tt.after))
		})
	}
}
