package main

import (
	"fmt"
	"io"

	"github.com/heartmarshall/question-scorer/internal/domain"
)

func writeEvaluation(w io.Writer, res *domain.EvaluationResult) {
	fmt.Fprintf(w, "総合点：%d / %d点\n", res.Total, domain.MaxGrandTotal)
	fmt.Fprintf(w, "ランク：%s（%s）\n", res.Rank, res.RankLabel)
	fmt.Fprintf(w, "判定：%s\n", res.Verdict.Label())

	fmt.Fprintln(w)
	fmt.Fprintln(w, "項目別得点：")
	for _, item := range domain.Items() {
		fmt.Fprintf(w, "  %2d. %s  %d / %d\n", item.ID, item.Name, res.ItemTotals[item.ID], domain.MaxItemTotal)
	}

	if len(res.Shortfalls) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "不足の大きい項目：")
		for _, s := range res.Shortfalls {
			fmt.Fprintf(w, "  - %d. %s（%d / %d点、不足 %d点）\n", s.Item, s.Name, s.Total, domain.MaxItemTotal, s.Shortfall)
		}
	}

	if res.Summary != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "講評：")
		fmt.Fprintln(w, res.Summary)
	}
}

func writeSession(w io.Writer, sess *domain.Session) {
	fmt.Fprintln(w, "===== Before =====")
	writeEvaluation(w, sess.Before)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "===== 改善案 =====")
	fmt.Fprintln(w, sess.Improvements)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "===== 修正版原稿 =====")
	fmt.Fprintln(w, sess.Revision)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "===== After =====")
	writeEvaluation(w, sess.After)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Before → After：%d → %d点（%+d）\n", sess.Before.Total, sess.After.Total, sess.After.Total-sess.Before.Total)
	fmt.Fprintf(w, "結果：%s\n", sess.Outcome.Label())
}
