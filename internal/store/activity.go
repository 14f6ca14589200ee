package store

import (
	"context"
	"fmt"

	"github.com/Riverstargroup/cultiva-finanzas/ent"
	"github.com/Riverstargroup/cultiva-finanzas/ent/activityday"
)

// activityRepo implements ActivityRepo on the ent client.
type activityRepo struct {
	client *ent.Client
}

func (r *activityRepo) GetDay(ctx context.Context, userID, day string) (*ActivityRecord, error) {
	row, err := r.client.ActivityDay.Query().
		Where(
			activityday.UserID(userID),
			activityday.Day(day),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query activity day: %w", err)
	}
	return &ActivityRecord{Day: row.Day, Minutes: row.Minutes}, nil
}

func (r *activityRepo) AddMinutes(ctx context.Context, userID, day string, minutes int) error {
	// Additive upsert: the conflict branch increments the accumulator
	// instead of replacing it, so concurrent completions never lose credit.
	err := r.client.ActivityDay.Create().
		SetUserID(userID).
		SetDay(day).
		SetMinutes(minutes).
		OnConflictColumns(activityday.FieldUserID, activityday.FieldDay).
		Update(func(u *ent.ActivityDayUpsert) {
			u.AddMinutes(minutes)
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("add activity minutes: %w", err)
	}
	return nil
}

func (r *activityRepo) ListRecent(ctx context.Context, userID string, limit int) ([]ActivityRecord, error) {
	query := r.client.ActivityDay.Query().
		Where(activityday.UserID(userID)).
		Order(ent.Desc(activityday.FieldDay))
	if limit > 0 {
		query = query.Limit(limit)
	}
	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activity days: %w", err)
	}

	records := make([]ActivityRecord, len(rows))
	for i, row := range rows {
		records[i] = ActivityRecord{Day: row.Day, Minutes: row.Minutes}
	}
	return records, nil
}
