package storage

import (
	"context"
	"errors"

	"github.com/neurosensemed-IA/Med-FlashCards/internal/models"
)

// ErrNotFound is returned by any store when the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// UserStore holds registered accounts. Accounts live only in durable storage;
// there is no cached tier for credentials.
type UserStore interface {
	GetUser(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
}

// ProgressStore holds per-(user, subject) level/XP records.
type ProgressStore interface {
	GetProgress(ctx context.Context, username, subject string) (*models.SubjectProgress, error)
	ListProgress(ctx context.Context, username string) (map[string]models.SubjectProgress, error)
	PutProgress(ctx context.Context, progress models.SubjectProgress) error
}

// DeckStore holds named decks per user. PutDeck overwrites an existing name.
// DeleteDeck reports whether a deck was actually removed.
type DeckStore interface {
	ListDecks(ctx context.Context, username string) (map[string]models.Deck, error)
	PutDeck(ctx context.Context, deck models.Deck) error
	DeleteDeck(ctx context.Context, username, name string) (bool, error)
}
