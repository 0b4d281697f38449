package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/neurosensemed-IA/Med-FlashCards/internal/models"
	"github.com/neurosensemed-IA/Med-FlashCards/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuestions(n int) []models.Question {
	questions := make([]models.Question, n)
	for i := range questions {
		questions[i] = models.Question{
			Prompt: fmt.Sprintf("Question %d?", i+1),
			Options: map[string]string{
				"A": "first", "B": "second", "C": "third", "D": "fourth",
			},
			Correct:     "A",
			Explanation: "because",
		}
	}
	return questions
}

func TestSave_RejectsEmptyQuestionList(t *testing.T) {
	repo := NewDeckRepository(storage.NewMemory(), storage.NewMemory())
	ctx := context.Background()

	ok := repo.Save(ctx, "drdavid", "empty", nil, "Anatomy", "Cardiovascular")

	assert.False(t, ok)
	assert.Empty(t, repo.LoadAll(ctx, "drdavid"))
}

func TestSave_RejectsQuestionWithBadCorrectLabel(t *testing.T) {
	repo := NewDeckRepository(storage.NewMemory(), storage.NewMemory())
	ctx := context.Background()

	questions := validQuestions(2)
	questions[1].Correct = "E"

	ok := repo.Save(ctx, "drdavid", "broken", questions, "Anatomy", "Cardiovascular")

	assert.False(t, ok)
	assert.Empty(t, repo.LoadAll(ctx, "drdavid"))
}

func TestSave_DurableFailureKeepsCacheCopy(t *testing.T) {
	repo := NewDeckRepository(failingStore{}, storage.NewMemory())
	ctx := context.Background()

	ok := repo.Save(ctx, "drdavid", "cardio", validQuestions(3), "Physiology", "Cardiovascular")

	require.True(t, ok)
	decks := repo.LoadAll(ctx, "drdavid")
	require.Contains(t, decks, "cardio")
	assert.Len(t, decks["cardio"].Questions, 3)
}

func TestLoadAll_CacheWinsOnCollision(t *testing.T) {
	remote := storage.NewMemory()
	cache := storage.NewMemory()
	repo := NewDeckRepository(remote, cache)
	ctx := context.Background()

	// Stale durable copy vs newer local write under the same name.
	require.NoError(t, remote.PutDeck(ctx, models.Deck{
		Username: "drdavid", Name: "X", Questions: validQuestions(1), Subject: "Anatomy", Topic: "General",
	}))
	require.NoError(t, cache.PutDeck(ctx, models.Deck{
		Username: "drdavid", Name: "X", Questions: validQuestions(1), Subject: "Physiology", Topic: "General",
	}))

	decks := repo.LoadAll(ctx, "drdavid")

	require.Contains(t, decks, "X")
	assert.Equal(t, "Physiology", decks["X"].Subject)
}

func TestLoadAll_MergesBothTiers(t *testing.T) {
	remote := storage.NewMemory()
	cache := storage.NewMemory()
	repo := NewDeckRepository(remote, cache)
	ctx := context.Background()

	require.NoError(t, remote.PutDeck(ctx, models.Deck{
		Username: "drdavid", Name: "remote-only", Questions: validQuestions(1), Subject: "Anatomy", Topic: "General",
	}))
	require.NoError(t, cache.PutDeck(ctx, models.Deck{
		Username: "drdavid", Name: "cache-only", Questions: validQuestions(1), Subject: "Pathology", Topic: "General",
	}))

	decks := repo.LoadAll(ctx, "drdavid")

	assert.Len(t, decks, 2)
	assert.Contains(t, decks, "remote-only")
	assert.Contains(t, decks, "cache-only")
}

func TestDelete_SucceedsWhenOnlyCacheHasTheDeck(t *testing.T) {
	// Simulates a deck whose durable write previously failed.
	repo := NewDeckRepository(failingStore{}, storage.NewMemory())
	ctx := context.Background()

	require.True(t, repo.Save(ctx, "drdavid", "orphan", validQuestions(1), "Anatomy", "General"))

	assert.True(t, repo.Delete(ctx, "drdavid", "orphan"))
	assert.NotContains(t, repo.LoadAll(ctx, "drdavid"), "orphan")
}

func TestDelete_MissingEverywhereFails(t *testing.T) {
	repo := NewDeckRepository(storage.NewMemory(), storage.NewMemory())

	assert.False(t, repo.Delete(context.Background(), "drdavid", "nope"))
}

func TestSave_OverwritesExistingName(t *testing.T) {
	repo := NewDeckRepository(storage.NewMemory(), storage.NewMemory())
	ctx := context.Background()

	require.True(t, repo.Save(ctx, "drdavid", "X", validQuestions(1), "Anatomy", "General"))
	require.True(t, repo.Save(ctx, "drdavid", "X", validQuestions(4), "Anatomy", "General"))

	decks := repo.LoadAll(ctx, "drdavid")
	assert.Len(t, decks["X"].Questions, 4)
}
