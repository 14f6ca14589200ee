package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Riverstargroup/cultiva-finanzas/ent"
	"github.com/Riverstargroup/cultiva-finanzas/ent/courseprogress"
)

// progressRepo implements ProgressRepo on the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context, userID, courseID string) (*ProgressRecord, error) {
	row, err := r.client.CourseProgress.Query().
		Where(
			courseprogress.UserID(userID),
			courseprogress.CourseID(courseID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query course progress: %w", err)
	}
	return entProgressToRecord(row), nil
}

// AddCompleted performs the set-add inside a transaction so the
// first-completion flag is computed exactly once even when two finishes for
// the same scenario race (double submission on a slow network).
func (r *progressRepo) AddCompleted(ctx context.Context, userID, courseID, scenarioID string, totalScenarios int) (*ProgressRecord, bool, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("begin tx: %w", err)
	}

	rec, newly, err := addCompletedTx(ctx, tx, userID, courseID, scenarioID, totalScenarios)
	if err != nil {
		_ = tx.Rollback()
		return nil, false, err
	}
	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("commit: %w", err)
	}
	return rec, newly, nil
}

func addCompletedTx(ctx context.Context, tx *ent.Tx, userID, courseID, scenarioID string, total int) (*ProgressRecord, bool, error) {
	row, err := tx.CourseProgress.Query().
		Where(
			courseprogress.UserID(userID),
			courseprogress.CourseID(courseID),
		).
		Only(ctx)

	switch {
	case ent.IsNotFound(err):
		completed := []string{scenarioID}
		created, cerr := tx.CourseProgress.Create().
			SetUserID(userID).
			SetCourseID(courseID).
			SetCompletedScenarios(completed).
			SetMasteryScore(masteryScore(1, total)).
			Save(ctx)
		if cerr != nil {
			return nil, false, fmt.Errorf("create course progress: %w", cerr)
		}
		if total == 1 {
			created, cerr = created.Update().SetCompletedAt(time.Now()).Save(ctx)
			if cerr != nil {
				return nil, false, fmt.Errorf("set completed_at: %w", cerr)
			}
		}
		return entProgressToRecord(created), true, nil

	case err != nil:
		return nil, false, fmt.Errorf("query course progress: %w", err)
	}

	for _, id := range row.CompletedScenarios {
		if id == scenarioID {
			// Already in the set: repeat completion, nothing to write.
			return entProgressToRecord(row), false, nil
		}
	}

	completed := append(append([]string{}, row.CompletedScenarios...), scenarioID)
	update := row.Update().
		SetCompletedScenarios(completed).
		SetMasteryScore(masteryScore(len(completed), total))
	// completed_at is set once on reaching the full set and never cleared.
	if row.CompletedAt == nil && total > 0 && len(completed) >= total {
		update = update.SetCompletedAt(time.Now())
	}
	updated, err := update.Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("update course progress: %w", err)
	}
	return entProgressToRecord(updated), true, nil
}

func (r *progressRepo) List(ctx context.Context, userID string) ([]*ProgressRecord, error) {
	rows, err := r.client.CourseProgress.Query().
		Where(courseprogress.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list course progress: %w", err)
	}
	records := make([]*ProgressRecord, len(rows))
	for i, row := range rows {
		records[i] = entProgressToRecord(row)
	}
	return records, nil
}

func masteryScore(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(completed) / float64(total)
}

func entProgressToRecord(row *ent.CourseProgress) *ProgressRecord {
	return &ProgressRecord{
		UserID:             row.UserID,
		CourseID:           row.CourseID,
		CompletedScenarios: row.CompletedScenarios,
		MasteryScore:       row.MasteryScore,
		StartedAt:          row.StartedAt,
		CompletedAt:        row.CompletedAt,
	}
}
