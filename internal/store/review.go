package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Riverstargroup/cultiva-finanzas/ent"
	"github.com/Riverstargroup/cultiva-finanzas/ent/reviewstate"
)

// reviewRepo implements ReviewRepo on the ent client.
type reviewRepo struct {
	client *ent.Client
}

func (r *reviewRepo) Get(ctx context.Context, userID, scenarioID string) (*ReviewRecord, error) {
	row, err := r.client.ReviewState.Query().
		Where(
			reviewstate.UserID(userID),
			reviewstate.ScenarioID(scenarioID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query review state: %w", err)
	}
	return entReviewToRecord(row), nil
}

func (r *reviewRepo) Upsert(ctx context.Context, rec *ReviewRecord) error {
	builder := r.client.ReviewState.Create().
		SetUserID(rec.UserID).
		SetCourseID(rec.CourseID).
		SetScenarioID(rec.ScenarioID).
		SetRepetitions(rec.Repetitions).
		SetIntervalDays(rec.IntervalDays).
		SetEaseFactor(rec.EaseFactor).
		SetNextDueAt(rec.NextDueAt).
		SetLastQuality(rec.LastQuality).
		SetLastScore(rec.LastScore)
	if rec.LastAttemptAt != nil {
		builder = builder.SetLastAttemptAt(*rec.LastAttemptAt)
	}

	err := builder.
		OnConflictColumns(reviewstate.FieldUserID, reviewstate.FieldScenarioID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert review state: %w", err)
	}
	return nil
}

func (r *reviewRepo) ListDue(ctx context.Context, userID string, now time.Time) ([]*ReviewRecord, error) {
	rows, err := r.client.ReviewState.Query().
		Where(
			reviewstate.UserID(userID),
			reviewstate.NextDueAtLTE(now),
		).
		Order(ent.Asc(reviewstate.FieldNextDueAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due reviews: %w", err)
	}

	records := make([]*ReviewRecord, len(rows))
	for i, row := range rows {
		records[i] = entReviewToRecord(row)
	}
	return records, nil
}

func entReviewToRecord(row *ent.ReviewState) *ReviewRecord {
	return &ReviewRecord{
		UserID:        row.UserID,
		CourseID:      row.CourseID,
		ScenarioID:    row.ScenarioID,
		Repetitions:   row.Repetitions,
		IntervalDays:  row.IntervalDays,
		EaseFactor:    row.EaseFactor,
		NextDueAt:     row.NextDueAt,
		LastQuality:   row.LastQuality,
		LastScore:     row.LastScore,
		LastAttemptAt: row.LastAttemptAt,
	}
}
