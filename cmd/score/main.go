// Command score scores a draft question from a file or stdin.
//
// Usage:
//
//	score [-mode score|session] [-format text|json] [-file draft.txt]
//
// Without -file the draft is read from stdin. On parse, schema or backend
// errors the raw backend payload is printed to stderr.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/question-scorer/internal/app"
	"github.com/heartmarshall/question-scorer/internal/domain"
	"github.com/heartmarshall/question-scorer/internal/service/evaluation"
)

const (
	modeScore   = "score"
	modeSession = "session"

	formatText = "text"
	formatJSON = "json"
)

type scorer interface {
	Score(ctx context.Context, input evaluation.ScoreInput) (*domain.EvaluationResult, error)
	RunSession(ctx context.Context, input evaluation.ScoreInput) (*domain.Session, error)
}

type options struct {
	mode   string
	format string
	file   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(1)
	}

	c, err := app.Bootstrap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "score: %v\n", err)
		os.Exit(1)
	}

	if err := run(ctx, opts, c.Service, os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.mode, "mode", modeScore, "score: one evaluation; session: improve and rescore")
	fs.StringVar(&opts.format, "format", formatText, "output format: text or json")
	fs.StringVar(&opts.file, "file", "", "path to the draft (default: stdin)")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.mode != modeScore && opts.mode != modeSession {
		err := fmt.Errorf("unknown mode %q", opts.mode)
		fmt.Fprintf(stderr, "score: %v\n", err)
		return opts, err
	}
	if opts.format != formatText && opts.format != formatJSON {
		err := fmt.Errorf("unknown format %q", opts.format)
		fmt.Fprintf(stderr, "score: %v\n", err)
		return opts, err
	}
	return opts, nil
}

// run executes one evaluation or session and writes the report to stdout.
// Errors are reported on stderr before being returned.
func run(ctx context.Context, opts options, svc scorer, stdin io.Reader, stdout, stderr io.Writer) error {
	text, err := readDraft(opts.file, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "score: %v\n", err)
		return err
	}

	input := evaluation.ScoreInput{Text: text}

	switch opts.mode {
	case modeSession:
		sess, err := svc.RunSession(ctx, input)
		if err != nil {
			reportError(stderr, err, sess)
			return err
		}
		return write(stdout, opts.format, sess, func(w io.Writer) { writeSession(w, sess) })
	default:
		res, err := svc.Score(ctx, input)
		if err != nil {
			reportError(stderr, err, nil)
			return err
		}
		return write(stdout, opts.format, res, func(w io.Writer) { writeEvaluation(w, res) })
	}
}

func readDraft(path string, stdin io.Reader) (string, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read draft: %w", err)
	}
	return string(data), nil
}

func write(w io.Writer, format string, v any, text func(io.Writer)) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(w)
	return nil
}

func reportError(w io.Writer, err error, sess *domain.Session) {
	if sess != nil && sess.State == domain.SessionFailed {
		fmt.Fprintf(w, "score: session failed at %s: %v\n", sess.FailedAt, err)
	} else {
		fmt.Fprintf(w, "score: %v\n", err)
	}

	var budgetErr *domain.BudgetExceededError
	if errors.As(err, &budgetErr) {
		fmt.Fprintf(w, "API利用状況：%d / %d\n", budgetErr.Used, budgetErr.Ceiling)
	}
	if raw, ok := domain.RawPayload(err); ok {
		fmt.Fprintf(w, "--- raw response ---\n%s\n", raw)
	}
}
