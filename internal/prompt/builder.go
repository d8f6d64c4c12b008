// Package prompt renders the requests sent to the generation backend.
// Builders are pure: the same inputs always give the same prompt, and the
// caller's text is embedded literally.
package prompt

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/question-scorer/internal/domain"
	"github.com/heartmarshall/question-scorer/internal/scoring"
)

// ImprovementCount is the number of improvement items requested.
const ImprovementCount = 5

// Options selects the optional parts of the prompts.
type Options struct {
	// Precedents asks for a precedent from another jurisdiction per improvement.
	Precedents bool
	// FocusItems is how many of the weakest prior items to highlight.
	FocusItems int
}

// Builder renders prompts from the rubric catalog.
type Builder struct {
	opts Options
}

// NewBuilder creates a Builder.
func NewBuilder(opts Options) *Builder {
	if opts.FocusItems < 0 {
		opts.FocusItems = 0
	}
	return &Builder{opts: opts}
}

// Scoring renders the evaluation request: the rubric, the draft verbatim,
// and a JSON skeleton with every item and axis set to 0.
func (b *Builder) Scoring(text string) string {
	var sb strings.Builder

	sb.WriteString("あなたは地方議会の一般質問を評価する専門家です。\n")
	sb.WriteString("以下の一般質問原稿を、15の評価項目それぞれについて4つの評価軸（A〜D）で0〜5点の整数で採点してください。\n")
	sb.WriteString("JSON以外は絶対に出力しないでください。前置き・説明・コードブロックも不要です。\n\n")

	writeRubric(&sb)

	sb.WriteString("\n【一般質問原稿】\n")
	sb.WriteString(text)
	sb.WriteString("\n\n出力形式：\n")
	writeSkeleton(&sb)

	return sb.String()
}

// Improvement asks for exactly five concrete improvements. When prior item
// totals are given, the weakest items are listed first so suggestions can
// target them.
func (b *Builder) Improvement(text string, prior domain.ItemTotals) string {
	var sb strings.Builder

	sb.WriteString("あなたは地方議会の一般質問を指導する専門家です。\n")
	fmt.Fprintf(&sb, "以下の一般質問原稿について、改善点を必ず%d項目、番号付きで挙げてください。\n", ImprovementCount)
	sb.WriteString("各項目には次の要素をすべて含めてください。\n")
	sb.WriteString("- 具体的な仕組み（政策・事業・予算・担当部署のいずれか）\n")
	sb.WriteString("- 数値目標と達成時期\n")
	sb.WriteString("- 原稿の修正例\n")
	if b.opts.Precedents {
		sb.WriteString("- 他自治体の先行事例\n")
	}

	if len(prior) > 0 && b.opts.FocusItems > 0 {
		sb.WriteString("\n【特に弱い評価項目】\n")
		for _, s := range scoring.TopShortfalls(prior, b.opts.FocusItems) {
			fmt.Fprintf(&sb, "- %d. %s（%d / %d点）\n", s.Item, s.Name, s.Total, domain.MaxItemTotal)
		}
	}

	sb.WriteString("\n【一般質問原稿】\n")
	sb.WriteString(text)
	sb.WriteString("\n")

	return sb.String()
}

// Revision asks for a rewritten draft applying the improvements while
// keeping the original intent.
func (b *Builder) Revision(text, improvements string) string {
	var sb strings.Builder

	sb.WriteString("あなたは地方議会の一般質問原稿を推敲する専門家です。\n")
	sb.WriteString("元の原稿の趣旨と質問の意図を保ったまま、改善点をすべて反映した改訂版原稿を作成してください。\n")
	sb.WriteString("出力は改訂後の原稿本文のみとしてください。\n")

	sb.WriteString("\n【元の原稿】\n")
	sb.WriteString(text)
	sb.WriteString("\n\n【改善点】\n")
	sb.WriteString(improvements)
	sb.WriteString("\n")

	return sb.String()
}

// Summary asks for a 200-300 character narrative of a scoring result.
func (b *Builder) Summary(text string, total int, rank domain.Rank, totals domain.ItemTotals) string {
	var sb strings.Builder

	sb.WriteString("あなたは地方議会の一般質問を評価する専門家です。\n")
	sb.WriteString("以下の採点結果をもとに、原稿の強みと課題を200〜300文字の講評としてまとめてください。\n")

	fmt.Fprintf(&sb, "\n【総合点】%d / %d点（ランク%s）\n", total, domain.MaxGrandTotal, rank)
	sb.WriteString("【項目別得点】\n")
	for _, item := range domain.Items() {
		fmt.Fprintf(&sb, "- %d. %s：%d / %d点\n", item.ID, item.Name, totals[item.ID], domain.MaxItemTotal)
	}

	sb.WriteString("\n【一般質問原稿】\n")
	sb.WriteString(text)
	sb.WriteString("\n")

	return sb.String()
}

func writeRubric(sb *strings.Builder) {
	sb.WriteString("【評価項目】\n")
	for _, item := range domain.Items() {
		fmt.Fprintf(sb, "%d. %s\n", item.ID, item.Name)
	}

	sb.WriteString("\n【評価軸】\n")
	for _, axis := range domain.Axes() {
		fmt.Fprintf(sb, "%s: %s\n", axis.ID, axis.Name)
	}

	sb.WriteString("\n【点数の基準】\n")
	for _, l := range domain.ScoreLevelExplanations() {
		fmt.Fprintf(sb, "%d: %s\n", l.Level, l.Explanation)
	}
}

func writeSkeleton(sb *strings.Builder) {
	sb.WriteString("{\n \"scores\": {\n")
	ids := domain.ItemIDs()
	for i, item := range ids {
		fmt.Fprintf(sb, "   %q: {", item.Key())
		for j, axis := range domain.AxisIDs() {
			if j > 0 {
				sb.WriteString(",")
			}
			fmt.Fprintf(sb, "%q:0", axis)
		}
		sb.WriteString("}")
		if i < len(ids)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(" }\n}\n")
}
