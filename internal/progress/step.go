// Package progress drives a scenario attempt from decision to persisted
// completion. The Session state machine owns the in-flight attempt; the
// Orchestrator owns everything that happens once the attempt finishes.
package progress

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Riverstargroup/cultiva-finanzas/internal/content"
)

// Step is the phase of an in-flight scenario attempt.
type Step int

const (
	// StepDecision waits for the user to pick one of the scenario options.
	StepDecision Step = iota
	// StepFeedback shows the feedback for the chosen option.
	StepFeedback
	// StepRecall walks the recall questions one at a time.
	StepRecall
	// StepDone means the attempt is ready to be finished.
	StepDone
)

// ErrWrongStep is returned when a transition is attempted out of phase.
var ErrWrongStep = errors.New("progress: action not valid in current step")

// ErrUnknownChoice is returned when an option or recall choice id does not
// belong to the scenario.
var ErrUnknownChoice = errors.New("progress: unknown choice id")

// Session is the state machine for one scenario attempt. Answers are
// locked once given: there is no way back to an earlier step, so the
// recorded result always reflects the user's first answer.
type Session struct {
	id        string
	scenario  *content.Scenario
	startedAt time.Time

	step          Step
	chosen        *content.Option
	recallIndex   int
	recallCorrect int
}

// NewSession starts an attempt at the given scenario.
func NewSession(sc *content.Scenario, now time.Time) *Session {
	return &Session{
		id:        uuid.NewString(),
		scenario:  sc,
		startedAt: now,
		step:      StepDecision,
	}
}

// ID returns the attempt's session id.
func (s *Session) ID() string { return s.id }

// Scenario returns the scenario under attempt.
func (s *Session) Scenario() *content.Scenario { return s.scenario }

// Step returns the current phase.
func (s *Session) Step() Step { return s.step }

// StartedAt returns when the attempt began.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Choose records the decision choice and moves to the feedback step. The
// chosen option is returned so the caller can show its feedback text.
func (s *Session) Choose(optionID string) (*content.Option, error) {
	if s.step != StepDecision {
		return nil, ErrWrongStep
	}
	opt := s.scenario.Option(optionID)
	if opt == nil {
		return nil, ErrUnknownChoice
	}
	s.chosen = opt
	s.step = StepFeedback
	return opt, nil
}

// Continue leaves the feedback step. Scenarios without recall questions
// skip straight to done.
func (s *Session) Continue() error {
	if s.step != StepFeedback {
		return ErrWrongStep
	}
	if len(s.scenario.Recall) == 0 {
		s.step = StepDone
	} else {
		s.step = StepRecall
	}
	return nil
}

// CurrentQuestion returns the recall question awaiting an answer, or nil
// outside the recall step.
func (s *Session) CurrentQuestion() *content.RecallQuestion {
	if s.step != StepRecall {
		return nil
	}
	return &s.scenario.Recall[s.recallIndex]
}

// AnswerRecall records the answer for the current recall question and
// advances to the next one, or to done after the last. It reports whether
// the answer was correct.
func (s *Session) AnswerRecall(choiceID string) (bool, error) {
	if s.step != StepRecall {
		return false, ErrWrongStep
	}
	q := &s.scenario.Recall[s.recallIndex]
	valid := false
	for _, c := range q.Choices {
		if c.ID == choiceID {
			valid = true
			break
		}
	}
	if !valid {
		return false, ErrUnknownChoice
	}

	correct := choiceID == q.CorrectChoiceID
	if correct {
		s.recallCorrect++
	}
	s.recallIndex++
	if s.recallIndex >= len(s.scenario.Recall) {
		s.step = StepDone
	}
	return correct, nil
}

// Result returns the attempt outcome once the session is done.
func (s *Session) Result() (choseBest bool, recallCorrect, recallTotal int, err error) {
	if s.step != StepDone {
		return false, 0, 0, ErrWrongStep
	}
	return s.chosen.IsBest, s.recallCorrect, len(s.scenario.Recall), nil
}
