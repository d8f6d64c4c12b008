package evaluation

import (
	"fmt"
	"unicode/utf8"

	"github.com/heartmarshall/question-scorer/internal/domain"
)

// ScoreInput holds a draft to evaluate.
type ScoreInput struct {
	Text string
}

// Validate rejects blank and oversized drafts. A blank draft yields
// domain.ErrEmptyInput so callers can tell it apart from other problems.
func (i ScoreInput) Validate(maxLen int) error {
	if domain.IsBlank(i.Text) {
		return domain.ErrEmptyInput
	}
	if maxLen > 0 && utf8.RuneCountInString(i.Text) > maxLen {
		return domain.NewValidationError("text", fmt.Sprintf("max %d characters", maxLen))
	}
	return nil
}
