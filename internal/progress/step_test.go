package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Riverstargroup/cultiva-finanzas/internal/content"
)

func testScenario() *content.Scenario {
	return &content.Scenario{
		ID:       "s1",
		CourseID: "c1",
		Title:    "Prueba",
		Options: []content.Option{
			{ID: "a", Text: "mala", IsBest: false},
			{ID: "b", Text: "buena", IsBest: true},
		},
		Recall: []content.RecallQuestion{
			{
				ID:              "q1",
				Choices:         []content.RecallChoice{{ID: "x"}, {ID: "y"}},
				CorrectChoiceID: "x",
			},
			{
				ID:              "q2",
				Choices:         []content.RecallChoice{{ID: "x"}, {ID: "y"}},
				CorrectChoiceID: "y",
			},
		},
	}
}

func TestSession_FullWalk(t *testing.T) {
	s := NewSession(testScenario(), time.Now())
	require.Equal(t, StepDecision, s.Step())
	require.NotEmpty(t, s.ID())

	opt, err := s.Choose("b")
	require.NoError(t, err)
	assert.True(t, opt.IsBest)
	require.Equal(t, StepFeedback, s.Step())

	require.NoError(t, s.Continue())
	require.Equal(t, StepRecall, s.Step())
	require.Equal(t, "q1", s.CurrentQuestion().ID)

	correct, err := s.AnswerRecall("x")
	require.NoError(t, err)
	assert.True(t, correct)
	require.Equal(t, "q2", s.CurrentQuestion().ID)

	correct, err = s.AnswerRecall("x")
	require.NoError(t, err)
	assert.False(t, correct)

	require.Equal(t, StepDone, s.Step())
	choseBest, recallCorrect, recallTotal, err := s.Result()
	require.NoError(t, err)
	assert.True(t, choseBest)
	assert.Equal(t, 1, recallCorrect)
	assert.Equal(t, 2, recallTotal)
}

func TestSession_NoRecallSkipsToDone(t *testing.T) {
	sc := testScenario()
	sc.Recall = nil
	s := NewSession(sc, time.Now())

	_, err := s.Choose("a")
	require.NoError(t, err)
	require.NoError(t, s.Continue())
	require.Equal(t, StepDone, s.Step())

	choseBest, recallCorrect, recallTotal, err := s.Result()
	require.NoError(t, err)
	assert.False(t, choseBest)
	assert.Zero(t, recallCorrect)
	assert.Zero(t, recallTotal)
}

func TestSession_AnswersAreLocked(t *testing.T) {
	s := NewSession(testScenario(), time.Now())

	_, err := s.Choose("b")
	require.NoError(t, err)

	// A second decision must not overwrite the first.
	_, err = s.Choose("a")
	assert.ErrorIs(t, err, ErrWrongStep)

	require.NoError(t, s.Continue())
	_, err = s.AnswerRecall("x")
	require.NoError(t, err)

	// The answered question is behind us; only q2 remains.
	assert.Equal(t, "q2", s.CurrentQuestion().ID)
}

func TestSession_RejectsUnknownIDs(t *testing.T) {
	s := NewSession(testScenario(), time.Now())

	_, err := s.Choose("nope")
	assert.ErrorIs(t, err, ErrUnknownChoice)

	_, err = s.Choose("a")
	require.NoError(t, err)
	require.NoError(t, s.Continue())

	_, err = s.AnswerRecall("nope")
	assert.ErrorIs(t, err, ErrUnknownChoice)
	// An invalid answer does not advance the question index.
	assert.Equal(t, "q1", s.CurrentQuestion().ID)
}

func TestSession_ResultBeforeDone(t *testing.T) {
	s := NewSession(testScenario(), time.Now())
	_, _, _, err := s.Result()
	assert.ErrorIs(t, err, ErrWrongStep)
}
