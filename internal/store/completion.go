package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/Riverstargroup/cultiva-finanzas/ent"
	"github.com/Riverstargroup/cultiva-finanzas/ent/completionevent"
)

// sequenceCounter assigns a single monotonically increasing sequence to
// every completion event, independent of the table's auto-increment id, so
// events stay totally ordered even if rows are ever migrated or merged.
//
// Uses raw SQL outside ent because ent doesn't support database-level atomic
// counters. The mutex serializes within the process; the RETURNING clause
// makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// completionRepo implements CompletionRepo on the ent client.
type completionRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *completionRepo) Append(ctx context.Context, rec CompletionRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.CompletionEvent.Create().
		SetSequence(seqNum).
		SetUserID(rec.UserID).
		SetCourseID(rec.CourseID).
		SetScenarioID(rec.ScenarioID).
		SetScore(rec.Score).
		SetQuality(rec.Quality).
		SetFirstCompletion(rec.FirstCompletion)
	if rec.SessionID != "" {
		builder = builder.SetSessionID(rec.SessionID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save completion event: %w", err)
	}
	return nil
}

func (r *completionRepo) Recent(ctx context.Context, userID string, limit int) ([]CompletionRecord, error) {
	query := r.client.CompletionEvent.Query().
		Where(completionevent.UserID(userID)).
		Order(ent.Desc(completionevent.FieldSequence))
	if limit > 0 {
		query = query.Limit(limit)
	}
	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completion events: %w", err)
	}

	records := make([]CompletionRecord, len(rows))
	for i, row := range rows {
		records[i] = CompletionRecord{
			Sequence:        row.Sequence,
			Timestamp:       row.Timestamp,
			UserID:          row.UserID,
			CourseID:        row.CourseID,
			ScenarioID:      row.ScenarioID,
			Score:           row.Score,
			Quality:         row.Quality,
			FirstCompletion: row.FirstCompletion,
			SessionID:       row.SessionID,
		}
	}
	return records, nil
}
