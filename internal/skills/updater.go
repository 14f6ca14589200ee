package skills

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Riverstargroup/cultiva-finanzas/internal/store"
)

// Skill status values derived from mastery.
const (
	StatusUnlocked = "unlocked"
	StatusMastered = "mastered"
)

// MasteredThreshold is the mastery level at which a skill counts as mastered.
const MasteredThreshold = 0.8

// MasteryDelta returns the mastery gain for a first completion with the
// given score: at least 0.08, at most 0.30, scaled by performance.
func MasteryDelta(score float64) float64 {
	delta := 0.08 + 0.22*score
	if delta < 0.08 {
		return 0.08
	}
	if delta > 0.30 {
		return 0.30
	}
	return delta
}

// StatusFor derives the skill status from a mastery value.
func StatusFor(mastery float64) string {
	if mastery >= MasteredThreshold {
		return StatusMastered
	}
	return StatusUnlocked
}

// Updater applies mastery gains to the skills mapped from a completed
// scenario's tags.
type Updater struct {
	repo   store.SkillRepo
	logger *slog.Logger
}

// NewUpdater creates an Updater. A nil logger falls back to slog.Default.
func NewUpdater(repo store.SkillRepo, logger *slog.Logger) *Updater {
	if logger == nil {
		logger = slog.Default()
	}
	return &Updater{repo: repo, logger: logger}
}

// UpdateOnCompletion nudges mastery for every skill mapped from tags.
// Repeat completions never change mastery, so the whole call is a no-op
// unless firstCompletion is set. Skill updates are independent: a failed
// upsert is logged and the rest proceed; the joined error is returned for
// the caller's step accounting.
func (u *Updater) UpdateOnCompletion(ctx context.Context, userID string, tags []string, score float64, firstCompletion bool) error {
	if !firstCompletion {
		return nil
	}

	skillIDs := SkillsForTags(tags)
	if len(skillIDs) == 0 {
		return nil
	}

	existing, err := u.repo.GetMastery(ctx, userID, skillIDs)
	if err != nil {
		return fmt.Errorf("read mastery: %w", err)
	}

	delta := MasteryDelta(score)
	var errs []error
	for _, skillID := range skillIDs {
		mastery := existing[skillID] + delta
		if mastery > 1.0 {
			mastery = 1.0
		}
		if err := u.repo.Upsert(ctx, userID, skillID, mastery, StatusFor(mastery)); err != nil {
			u.logger.Warn("skill mastery update failed",
				"user", userID, "skill", skillID, "err", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
