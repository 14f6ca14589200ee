package store

import (
	"context"
	"fmt"

	"github.com/Riverstargroup/cultiva-finanzas/ent"
	"github.com/Riverstargroup/cultiva-finanzas/ent/achievement"
)

// achievementRepo implements AchievementRepo on the ent client.
type achievementRepo struct {
	client *ent.Client
}

func (r *achievementRepo) Unlock(ctx context.Context, userID, badgeID string) (bool, error) {
	exists, err := r.client.Achievement.Query().
		Where(
			achievement.UserID(userID),
			achievement.BadgeID(badgeID),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check achievement: %w", err)
	}
	if exists {
		return false, nil
	}

	// On-conflict-ignore keeps a racing duplicate unlock from erroring and
	// leaves the original unlocked_at untouched.
	err = r.client.Achievement.Create().
		SetUserID(userID).
		SetBadgeID(badgeID).
		OnConflictColumns(achievement.FieldUserID, achievement.FieldBadgeID).
		Ignore().
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("unlock achievement: %w", err)
	}
	return true, nil
}

func (r *achievementRepo) List(ctx context.Context, userID string) ([]AchievementRecord, error) {
	rows, err := r.client.Achievement.Query().
		Where(achievement.UserID(userID)).
		Order(ent.Asc(achievement.FieldUnlockedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}

	records := make([]AchievementRecord, len(rows))
	for i, row := range rows {
		records[i] = AchievementRecord{
			BadgeID:    row.BadgeID,
			UnlockedAt: row.UnlockedAt,
		}
	}
	return records, nil
}
