package store

import (
	"context"
	"fmt"

	"github.com/Riverstargroup/cultiva-finanzas/ent/achievement"
	"github.com/Riverstargroup/cultiva-finanzas/ent/activityday"
	"github.com/Riverstargroup/cultiva-finanzas/ent/completionevent"
	"github.com/Riverstargroup/cultiva-finanzas/ent/courseprogress"
	"github.com/Riverstargroup/cultiva-finanzas/ent/reviewstate"
	"github.com/Riverstargroup/cultiva-finanzas/ent/userskill"
)

// ResetUser deletes every record belonging to userID in one transaction.
// Used by the reset command only; nothing in the engine deletes rows.
func (s *Store) ResetUser(ctx context.Context, userID string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	steps := []func() error{
		func() error {
			_, err := tx.ReviewState.Delete().Where(reviewstate.UserID(userID)).Exec(ctx)
			return err
		},
		func() error {
			_, err := tx.CourseProgress.Delete().Where(courseprogress.UserID(userID)).Exec(ctx)
			return err
		},
		func() error {
			_, err := tx.Achievement.Delete().Where(achievement.UserID(userID)).Exec(ctx)
			return err
		},
		func() error {
			_, err := tx.UserSkill.Delete().Where(userskill.UserID(userID)).Exec(ctx)
			return err
		},
		func() error {
			_, err := tx.ActivityDay.Delete().Where(activityday.UserID(userID)).Exec(ctx)
			return err
		},
		func() error {
			_, err := tx.CompletionEvent.Delete().Where(completionevent.UserID(userID)).Exec(ctx)
			return err
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("reset user %s: %w", userID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}
	return nil
}
