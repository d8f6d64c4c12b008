package scoring

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/question-scorer/internal/domain"
)

// uniformMatrix returns a matrix with every cell set to level.
func uniformMatrix(level domain.ScoreLevel) domain.ScoreMatrix {
	m := make(domain.ScoreMatrix, domain.ItemCount)
	for _, item := range domain.ItemIDs() {
		axes := make(domain.AxisScores, domain.AxisCount)
		for _, axis := range domain.AxisIDs() {
			axes[axis] = level
		}
		m[item] = axes
	}
	return m
}

// scoresJSON renders {"scores": {...}} with every cell set to value.
// override replaces single cells: key "3/B" → raw JSON value.
func scoresJSON(value string, override map[string]string) string {
	var b strings.Builder
	b.WriteString(`{"scores":{`)
	for i, item := range domain.ItemIDs() {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "%q:{", item.Key())
		for j, axis := range domain.AxisIDs() {
			if j > 0 {
				b.WriteString(",")
			}
			v := value
			if o, ok := override[fmt.Sprintf("%d/%s", item, axis)]; ok {
				v = o
			}
			fmt.Fprintf(&b, "%q:%s", axis, v)
		}
		b.WriteString("}")
	}
	b.WriteString("}}")
	return b.String()
}
