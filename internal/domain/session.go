package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SessionState is a step of the Before/After session.
type SessionState string

const (
	SessionIdle          SessionState = "idle"
	SessionScoringBefore SessionState = "scoring_before"
	SessionImproving     SessionState = "improving"
	SessionRevising      SessionState = "revising"
	SessionScoringAfter  SessionState = "scoring_after"
	SessionComparing     SessionState = "comparing"
	SessionDone          SessionState = "done"
	SessionFailed        SessionState = "failed"
)

func (s SessionState) String() string { return string(s) }

// IsTerminal reports whether no further transition is allowed.
func (s SessionState) IsTerminal() bool {
	return s == SessionDone || s == SessionFailed
}

// sessionFlow is the only legal order of non-failure states.
var sessionFlow = []SessionState{
	SessionIdle,
	SessionScoringBefore,
	SessionImproving,
	SessionRevising,
	SessionScoringAfter,
	SessionComparing,
	SessionDone,
}

// Transition records one state change.
type Transition struct {
	From SessionState `json:"from"`
	To   SessionState `json:"to"`
	At   time.Time    `json:"at"`
}

// Session is one Before/After run over a draft. It lives only for the
// duration of the request that created it.
type Session struct {
	ID           uuid.UUID         `json:"id"`
	State        SessionState      `json:"state"`
	FailedAt     SessionState      `json:"failed_at,omitempty"`
	Error        string            `json:"error,omitempty"`
	Before       *EvaluationResult `json:"before,omitempty"`
	Improvements string            `json:"improvements,omitempty"`
	Revision     string            `json:"revision,omitempty"`
	After        *EvaluationResult `json:"after,omitempty"`
	Outcome      Outcome           `json:"outcome,omitempty"`
	Transitions  []Transition      `json:"transitions"`
}

// NewSession creates a session in the idle state.
func NewSession() *Session {
	return &Session{
		ID:    uuid.New(),
		State: SessionIdle,
	}
}

// Advance moves the session to the next state in the fixed flow.
// Jumps, repeats and moves out of a terminal state are rejected.
func (s *Session) Advance(to SessionState, at time.Time) error {
	if s.State.IsTerminal() {
		return fmt.Errorf("session %s is already %s", s.ID, s.State)
	}
	idx := -1
	for i, st := range sessionFlow {
		if st == s.State {
			idx = i
			break
		}
	}
	if idx < 0 || idx+1 >= len(sessionFlow) || sessionFlow[idx+1] != to {
		return fmt.Errorf("invalid session transition %s -> %s", s.State, to)
	}
	s.record(to, at)
	return nil
}

// Fail moves the session to the failed state, remembering where it stopped.
func (s *Session) Fail(err error, at time.Time) {
	if s.State.IsTerminal() {
		return
	}
	s.FailedAt = s.State
	if err != nil {
		s.Error = err.Error()
	}
	s.record(SessionFailed, at)
}

func (s *Session) record(to SessionState, at time.Time) {
	s.Transitions = append(s.Transitions, Transition{From: s.State, To: to, At: at})
	s.State = to
}
