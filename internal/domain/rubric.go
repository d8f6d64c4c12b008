package domain

import "strconv"

// ItemID identifies one of the 15 evaluation items (1..15).
type ItemID int

// AxisID identifies one of the 4 evaluation axes ("A".."D").
type AxisID string

// ScoreLevel is the 0..5 score the backend assigns to one (item, axis) pair.
type ScoreLevel int

const (
	ItemCount     = 15
	AxisCount     = 4
	MinScoreLevel = ScoreLevel(0)
	MaxScoreLevel = ScoreLevel(5)

	// MaxItemTotal is the best possible sum of one item's axes.
	MaxItemTotal = AxisCount * int(MaxScoreLevel)
	// MaxGrandTotal is the best possible evaluation total.
	MaxGrandTotal = ItemCount * MaxItemTotal
)

const (
	AxisA AxisID = "A"
	AxisB AxisID = "B"
	AxisC AxisID = "C"
	AxisD AxisID = "D"
)

// Item is a catalog entry for an evaluation item.
type Item struct {
	ID   ItemID `json:"id"`
	Name string `json:"name"`
}

// Axis is a catalog entry for an evaluation axis.
type Axis struct {
	ID   AxisID `json:"id"`
	Name string `json:"name"`
}

// LevelExplanation pairs a score level with its fixed meaning.
type LevelExplanation struct {
	Level       ScoreLevel `json:"level"`
	Explanation string     `json:"explanation"`
}

var items = [ItemCount]Item{
	{ID: 1, Name: "テーマ設定の妥当性"},
	{ID: 2, Name: "目的の明確性"},
	{ID: 3, Name: "論理構成の明確性"},
	{ID: 4, Name: "根拠・エビデンスの妥当性"},
	{ID: 5, Name: "質問の具体性"},
	{ID: 6, Name: "政策提案の実現可能性"},
	{ID: 7, Name: "行政答弁を引き出す質問力"},
	{ID: 8, Name: "議会の役割・法的理解"},
	{ID: 9, Name: "住民視点・説明責任の明瞭性"},
	{ID: 10, Name: "答弁後のフォロー可能性"},
	{ID: 11, Name: "文章表現・スピーチ技術"},
	{ID: 12, Name: "行政との協働姿勢・倫理性"},
	{ID: 13, Name: "将来志向・イノベーション性"},
	{ID: 14, Name: "政策横断性・全体視点"},
	{ID: 15, Name: "議員としての成長・継続性"},
}

var axes = [AxisCount]Axis{
	{ID: AxisA, Name: "核心適合・本質性"},
	{ID: AxisB, Name: "明確性・具体性"},
	{ID: AxisC, Name: "根拠・裏付け"},
	{ID: AxisD, Name: "議会・行政適合性"},
}

// Ordered from the highest level down, the way the legend is shown.
var levelExplanations = [int(MaxScoreLevel) + 1]LevelExplanation{
	{Level: 5, Explanation: "完全充足。具体・一義的で実務で修正不要。"},
	{Level: 4, Explanation: "実務上ほぼ問題なし。軽微な補足不足あり。"},
	{Level: 3, Explanation: "最低限達成。抽象的で追加説明が必要。"},
	{Level: 2, Explanation: "不足が明確。実務に結びつかない。"},
	{Level: 1, Explanation: "形式的・断片的。"},
	{Level: 0, Explanation: "未達・評価不能。"},
}

// Items returns the 15 evaluation items in display order.
func Items() []Item {
	out := make([]Item, len(items))
	copy(out, items[:])
	return out
}

// Axes returns the 4 evaluation axes in display order.
func Axes() []Axis {
	out := make([]Axis, len(axes))
	copy(out, axes[:])
	return out
}

// ItemIDs returns 1..15.
func ItemIDs() []ItemID {
	out := make([]ItemID, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

// AxisIDs returns A..D.
func AxisIDs() []AxisID {
	out := make([]AxisID, len(axes))
	for i, a := range axes {
		out[i] = a.ID
	}
	return out
}

// ScoreLevelExplanations returns the legend, highest level first.
func ScoreLevelExplanations() []LevelExplanation {
	out := make([]LevelExplanation, len(levelExplanations))
	copy(out, levelExplanations[:])
	return out
}

// ItemName returns the display name, or "" for an unknown item.
func ItemName(id ItemID) string {
	if !id.IsValid() {
		return ""
	}
	return items[id-1].Name
}

// AxisName returns the display name, or "" for an unknown axis.
func AxisName(id AxisID) string {
	for _, a := range axes {
		if a.ID == id {
			return a.Name
		}
	}
	return ""
}

// Explanation returns the fixed meaning of the level, or "" when out of range.
func (l ScoreLevel) Explanation() string {
	if !l.IsValid() {
		return ""
	}
	return levelExplanations[int(MaxScoreLevel-l)].Explanation
}

func (l ScoreLevel) IsValid() bool {
	return l >= MinScoreLevel && l <= MaxScoreLevel
}

func (id ItemID) IsValid() bool {
	return id >= 1 && int(id) <= ItemCount
}

// Key is the JSON object key the backend uses for this item ("1".."15").
func (id ItemID) Key() string {
	return strconv.Itoa(int(id))
}

func (a AxisID) String() string { return string(a) }

func (a AxisID) IsValid() bool {
	switch a {
	case AxisA, AxisB, AxisC, AxisD:
		return true
	}
	return false
}
