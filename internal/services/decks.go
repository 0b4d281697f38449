package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/neurosensemed-IA/Med-FlashCards/internal/models"
	"github.com/neurosensemed-IA/Med-FlashCards/internal/storage"
)

// DeckRepository owns create/read/delete of named decks per user across the
// two storage tiers. The cache is written unconditionally and wins on every
// read collision, so it stays the source of truth until the durable store
// catches up.
type DeckRepository struct {
	remote storage.DeckStore
	cache  storage.DeckStore
}

func NewDeckRepository(remote, cache storage.DeckStore) *DeckRepository {
	return &DeckRepository{remote: remote, cache: cache}
}

// Save validates and persists a deck. It returns false with no side effect
// when the questions fail the deck invariant. A durable-storage failure does
// not roll back the cache write; it is logged as a warning only. Saving under
// an existing name silently replaces the old deck.
func (r *DeckRepository) Save(ctx context.Context, username, name string, questions []models.Question, subject, topic string) bool {
	deck := models.Deck{
		Username:  username,
		Name:      name,
		Questions: questions,
		Subject:   subject,
		Topic:     topic,
		CreatedAt: time.Now(),
	}
	if err := deck.Validate(); err != nil {
		slog.Warn("rejected invalid deck", "username", username, "deck", name, "err", err)
		return false
	}

	if err := r.cache.PutDeck(ctx, deck); err != nil {
		slog.Warn("deck cache write failed", "username", username, "deck", name, "err", err)
	}
	if err := r.remote.PutDeck(ctx, deck); err != nil {
		slog.Warn("durable deck write failed, cache keeps the copy",
			"username", username, "deck", name, "err", err)
	}
	return true
}

// LoadAll merges durable and cached decks for the user. On a name collision
// the cached copy wins: the last local write overrides a possibly-stale
// durable one.
func (r *DeckRepository) LoadAll(ctx context.Context, username string) map[string]models.Deck {
	merged := make(map[string]models.Deck)

	remote, err := r.remote.ListDecks(ctx, username)
	if err != nil {
		slog.Warn("durable deck list failed, serving cache only", "username", username, "err", err)
	} else {
		for name, deck := range remote {
			merged[name] = deck
		}
	}

	cached, _ := r.cache.ListDecks(ctx, username)
	for name, deck := range cached {
		merged[name] = deck
	}

	return merged
}

// Delete removes the deck from both tiers independently. The two stores may
// be out of sync, so removal from either one counts as success.
func (r *DeckRepository) Delete(ctx context.Context, username, name string) bool {
	cacheRemoved, _ := r.cache.DeleteDeck(ctx, username, name)

	remoteRemoved, err := r.remote.DeleteDeck(ctx, username, name)
	if err != nil {
		slog.Warn("durable deck delete failed", "username", username, "deck", name, "err", err)
		remoteRemoved = false
	}

	return cacheRemoved || remoteRemoved
}
