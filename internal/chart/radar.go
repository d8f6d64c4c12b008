// Package chart prepares closed radar-chart series. Each series repeats its
// first point at the end so a renderer draws a closed polygon.
package chart

import (
	"fmt"

	"github.com/heartmarshall/question-scorer/internal/domain"
)

// Series is one closed polygon.
type Series struct {
	Name   string   `json:"name"`
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

// Radar is a polar chart with a fixed radial range.
type Radar struct {
	Title  string   `json:"title"`
	Min    int      `json:"min"`
	Max    int      `json:"max"`
	Series []Series `json:"series"`
}

// Series names used by the comparison chart.
const (
	SeriesBefore = "Before"
	SeriesAfter  = "After"
)

// ItemRadar plots the 15 item totals on a 0..20 range. Labels are the item
// numbers 1..15.
func ItemRadar(totals domain.ItemTotals) Radar {
	return Radar{
		Title:  "項目別得点",
		Min:    0,
		Max:    domain.MaxItemTotal,
		Series: []Series{itemSeries("", totals)},
	}
}

// ComparisonRadar overlays the item totals before and after revision.
func ComparisonRadar(before, after domain.ItemTotals) Radar {
	return Radar{
		Title: "Before / After",
		Min:   0,
		Max:   domain.MaxItemTotal,
		Series: []Series{
			itemSeries(SeriesBefore, before),
			itemSeries(SeriesAfter, after),
		},
	}
}

// AxisRadar plots one item's four axis scores on a 0..5 range.
func AxisRadar(item domain.ItemID, scores domain.AxisScores) Radar {
	axes := domain.AxisIDs()
	labels := make([]string, 0, len(axes)+1)
	values := make([]int, 0, len(axes)+1)
	for _, a := range axes {
		labels = append(labels, a.String())
		values = append(values, int(scores[a]))
	}

	return Radar{
		Title:  fmt.Sprintf("%d. %s", item, domain.ItemName(item)),
		Min:    int(domain.MinScoreLevel),
		Max:    int(domain.MaxScoreLevel),
		Series: []Series{closed(domain.ItemName(item), labels, values)},
	}
}

// AxisRadars returns one AxisRadar per item, in item order.
func AxisRadars(scores domain.ScoreMatrix) []Radar {
	ids := domain.ItemIDs()
	out := make([]Radar, 0, len(ids))
	for _, id := range ids {
		out = append(out, AxisRadar(id, scores[id]))
	}
	return out
}

func itemSeries(name string, totals domain.ItemTotals) Series {
	ids := domain.ItemIDs()
	labels := make([]string, 0, len(ids)+1)
	values := make([]int, 0, len(ids)+1)
	for _, id := range ids {
		labels = append(labels, id.Key())
		values = append(values, totals[id])
	}
	return closed(name, labels, values)
}

func closed(name string, labels []string, values []int) Series {
	if len(labels) > 0 {
		labels = append(labels, labels[0])
		values = append(values, values[0])
	}
	return Series{Name: name, Labels: labels, Values: values}
}
