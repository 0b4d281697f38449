package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/neurosensemed-IA/Med-FlashCards/internal/models"
	"github.com/neurosensemed-IA/Med-FlashCards/internal/storage"
)

// XPReward is the fixed XP granted for every passed exam.
const XPReward = 10

// ProgressTracker owns the per-subject level/XP state. Every update is
// written to the in-memory cache first and then to durable storage; a
// durable-storage failure degrades silently to cache-only, so the caller
// never sees it as fatal.
type ProgressTracker struct {
	remote storage.ProgressStore
	cache  storage.ProgressStore
}

func NewProgressTracker(remote, cache storage.ProgressStore) *ProgressTracker {
	return &ProgressTracker{remote: remote, cache: cache}
}

// GetProgress returns the current (level, xp) for the pair, defaulting to
// (Novice, 0) when no record exists anywhere.
func (t *ProgressTracker) GetProgress(ctx context.Context, username, subject string) models.SubjectProgress {
	if p, err := t.cache.GetProgress(ctx, username, subject); err == nil {
		return *p
	}

	p, err := t.remote.GetProgress(ctx, username, subject)
	if err != nil {
		if err != storage.ErrNotFound {
			slog.Warn("durable progress read failed, using defaults",
				"username", username, "subject", subject, "err", err)
		}
		return models.DefaultProgress(username, subject)
	}

	if err := t.cache.PutProgress(ctx, *p); err != nil {
		slog.Warn("progress cache write failed", "username", username, "err", err)
	}
	return *p
}

// RecordOutcome applies one completed exam to the subject's progress.
// A passed exam grants XPReward XP and advances exactly one rank unless the
// user is already at the top rank; the rank-up message names the subject and
// the new rank. A failed exam changes nothing and yields an encouragement
// message.
func (t *ProgressTracker) RecordOutcome(ctx context.Context, username, subject string, passed bool) (models.SubjectProgress, string) {
	progress := t.GetProgress(ctx, username, subject)

	if !passed {
		return progress, "Keep practicing to level up."
	}

	progress.XP += XPReward
	message := ""
	if next, ok := progress.Level.Next(); ok {
		progress.Level = next
		message = fmt.Sprintf("Level up! You are now %s in %s.", next, subject)
	}

	if err := t.cache.PutProgress(ctx, progress); err != nil {
		slog.Warn("progress cache write failed", "username", username, "err", err)
	}
	if err := t.remote.PutProgress(ctx, progress); err != nil {
		slog.Warn("durable progress write failed, cache keeps the update",
			"username", username, "subject", subject, "err", err)
	}

	return progress, message
}

// Overview returns every subject the user has progress in, merging durable
// and cached records with the cache taking precedence.
func (t *ProgressTracker) Overview(ctx context.Context, username string) map[string]models.SubjectProgress {
	merged := make(map[string]models.SubjectProgress)

	remote, err := t.remote.ListProgress(ctx, username)
	if err != nil {
		slog.Warn("durable progress list failed, serving cache only", "username", username, "err", err)
	} else {
		for subject, p := range remote {
			merged[subject] = p
		}
	}

	cached, _ := t.cache.ListProgress(ctx, username)
	for subject, p := range cached {
		merged[subject] = p
	}

	return merged
}
