package services

import (
	"context"
	"testing"

	"github.com/neurosensemed-IA/Med-FlashCards/internal/models"
	"github.com/neurosensemed-IA/Med-FlashCards/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deckOf(questions ...models.Question) models.Deck {
	return models.Deck{
		Username:  "drdavid",
		Name:      "test deck",
		Questions: questions,
		Subject:   "Physiology",
		Topic:     "Cardiovascular",
	}
}

func question(prompt, correct string) models.Question {
	return models.Question{
		Prompt: prompt,
		Options: map[string]string{
			"A": prompt + " option A",
			"B": prompt + " option B",
			"C": prompt + " option C",
			"D": prompt + " option D",
		},
		Correct:     correct,
		Explanation: "explanation for " + prompt,
	}
}

func TestStart_RejectsEmptyDeck(t *testing.T) {
	exams := NewExamService()

	_, err := exams.Start("drdavid", deckOf())

	assert.Error(t, err)
	_, err = exams.Get("drdavid")
	assert.ErrorIs(t, err, ErrNoActiveExam)
}

func TestSubmitAnswer_EmptySelectionDoesNotTransition(t *testing.T) {
	exams := NewExamService()
	_, err := exams.Start("drdavid", deckOf(question("Q1", "A")))
	require.NoError(t, err)

	_, err = exams.SubmitAnswer("drdavid", "")
	assert.ErrorIs(t, err, ErrEmptyAnswer)

	session, err := exams.Get("drdavid")
	require.NoError(t, err)
	assert.Equal(t, ExamStatusInProgress, session.Status)
	assert.Empty(t, session.Results)
}

func TestSubmitAnswer_IdempotentByIndex(t *testing.T) {
	exams := NewExamService()
	q := question("Q1", "A")
	_, err := exams.Start("drdavid", deckOf(q))
	require.NoError(t, err)

	first, err := exams.SubmitAnswer("drdavid", q.Options["A"])
	require.NoError(t, err)
	require.True(t, first.IsCorrect)

	// Duplicate submission for the same index appends nothing.
	second, err := exams.SubmitAnswer("drdavid", q.Options["A"])
	require.NoError(t, err)
	assert.Equal(t, *first, *second)

	session, err := exams.Get("drdavid")
	require.NoError(t, err)
	assert.Len(t, session.Results, 1)
}

func TestAdvance_RequiresRevealedAnswer(t *testing.T) {
	exams := NewExamService()
	_, err := exams.Start("drdavid", deckOf(question("Q1", "A")))
	require.NoError(t, err)

	_, _, err = exams.Advance("drdavid")
	assert.ErrorIs(t, err, ErrNotRevealed)
}

// Two-question run with one wrong answer: score 50, not passed, and a failed
// outcome leaves progress untouched with an encouragement message.
func TestExam_HalfRightRunScoresFifty(t *testing.T) {
	exams := NewExamService()
	tracker := NewProgressTracker(storage.NewMemory(), storage.NewMemory())
	ctx := context.Background()

	q1 := question("Q1", "A")
	q2 := question("Q2", "B")
	_, err := exams.Start("drdavid", deckOf(q1, q2))
	require.NoError(t, err)

	result, err := exams.SubmitAnswer("drdavid", q1.Options["A"])
	require.NoError(t, err)
	assert.True(t, result.IsCorrect)

	_, completed, err := exams.Advance("drdavid")
	require.NoError(t, err)
	require.False(t, completed)

	result, err = exams.SubmitAnswer("drdavid", q2.Options["D"])
	require.NoError(t, err)
	assert.False(t, result.IsCorrect)
	assert.Equal(t, q2.Options["B"], result.CorrectText)

	session, completed, err := exams.Advance("drdavid")
	require.NoError(t, err)
	require.True(t, completed)

	assert.Equal(t, ExamStatusCompleted, session.Status)
	assert.Equal(t, 50.0, session.Score())
	assert.False(t, session.Passed())

	progress, msg := tracker.RecordOutcome(ctx, "drdavid", session.Deck.Subject, session.Passed())
	assert.Equal(t, models.LevelNovice, progress.Level)
	assert.Equal(t, 0, progress.XP)
	assert.NotEmpty(t, msg)
}

// Perfect five-question run: score 100, passed, Novice advances to Student.
func TestExam_PerfectRunLevelsUp(t *testing.T) {
	exams := NewExamService()
	tracker := NewProgressTracker(storage.NewMemory(), storage.NewMemory())
	ctx := context.Background()

	labels := []string{"A", "B", "C", "D", "A"}
	questions := make([]models.Question, len(labels))
	for i, label := range labels {
		questions[i] = question("Q"+string(rune('1'+i)), label)
	}

	_, err := exams.Start("drdavid", deckOf(questions...))
	require.NoError(t, err)

	var session *ExamSession
	completed := false
	for i, q := range questions {
		result, err := exams.SubmitAnswer("drdavid", q.Options[labels[i]])
		require.NoError(t, err)
		require.True(t, result.IsCorrect)

		session, completed, err = exams.Advance("drdavid")
		require.NoError(t, err)
	}

	require.True(t, completed)
	assert.Equal(t, 100.0, session.Score())
	assert.True(t, session.Passed())

	progress, msg := tracker.RecordOutcome(ctx, "drdavid", session.Deck.Subject, session.Passed())
	assert.Equal(t, models.LevelStudent, progress.Level)
	assert.Equal(t, 10, progress.XP)
	assert.NotEmpty(t, msg)
}

func TestAbandon_DiscardsFromAnyState(t *testing.T) {
	exams := NewExamService()
	q := question("Q1", "A")
	_, err := exams.Start("drdavid", deckOf(q))
	require.NoError(t, err)

	_, err = exams.SubmitAnswer("drdavid", q.Options["C"])
	require.NoError(t, err)

	exams.Abandon("drdavid")

	_, err = exams.Get("drdavid")
	assert.ErrorIs(t, err, ErrNoActiveExam)

	// A fresh run starts clean.
	session, err := exams.Start("drdavid", deckOf(q))
	require.NoError(t, err)
	assert.Equal(t, 0, session.Index)
	assert.Empty(t, session.Results)
}

func TestStart_SecondExamWhileRunningRejected(t *testing.T) {
	exams := NewExamService()
	_, err := exams.Start("drdavid", deckOf(question("Q1", "A")))
	require.NoError(t, err)

	_, err = exams.Start("drdavid", deckOf(question("Q2", "B")))
	assert.ErrorIs(t, err, ErrExamRunning)
}
