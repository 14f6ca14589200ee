package store

import (
	"context"
	"time"
)

// ReviewRecord is the persisted spaced repetition state for one
// (user, scenario) pair.
type ReviewRecord struct {
	UserID        string
	CourseID      string
	ScenarioID    string
	Repetitions   int
	IntervalDays  int
	EaseFactor    float64
	NextDueAt     time.Time
	LastQuality   int
	LastScore     float64
	LastAttemptAt *time.Time
}

// ProgressRecord is the persisted course progress for one (user, course)
// pair. CompletedScenarios is a set; ordering carries no meaning.
type ProgressRecord struct {
	UserID             string
	CourseID           string
	CompletedScenarios []string
	MasteryScore       float64
	StartedAt          time.Time
	CompletedAt        *time.Time
}

// Completed reports whether scenarioID is in the completed set.
// Membership is exact-match on identifier.
func (p *ProgressRecord) Completed(scenarioID string) bool {
	for _, id := range p.CompletedScenarios {
		if id == scenarioID {
			return true
		}
	}
	return false
}

// AchievementRecord is one unlocked badge.
type AchievementRecord struct {
	BadgeID    string
	UnlockedAt time.Time
}

// SkillRecord is a user's mastery for one skill.
type SkillRecord struct {
	SkillID string
	Mastery float64
	Status  string
}

// ActivityRecord is the minutes accumulated on one calendar day.
type ActivityRecord struct {
	Day     string // YYYY-MM-DD in the profile timezone
	Minutes int
}

// CompletionRecord is one append-only completion event.
type CompletionRecord struct {
	Sequence        int64
	Timestamp       time.Time
	UserID          string
	CourseID        string
	ScenarioID      string
	Score           float64
	Quality         int
	FirstCompletion bool
	SessionID       string
}

// ReviewRepo manages per-unit spaced repetition state, keyed uniquely on
// (user, scenario).
type ReviewRepo interface {
	// Get returns the review state, or nil if the user has never finished
	// the scenario. Absence is the expected first-encounter case, not an
	// error.
	Get(ctx context.Context, userID, scenarioID string) (*ReviewRecord, error)

	// Upsert inserts or replaces the review state for (user, scenario).
	Upsert(ctx context.Context, rec *ReviewRecord) error

	// ListDue returns review states with next_due_at <= now, ordered by due
	// date ascending.
	ListDue(ctx context.Context, userID string, now time.Time) ([]*ReviewRecord, error)
}

// ProgressRepo manages per-course completion sets, keyed uniquely on
// (user, course).
type ProgressRepo interface {
	// Get returns the course progress, or nil if the user has not started
	// the course.
	Get(ctx context.Context, userID, courseID string) (*ProgressRecord, error)

	// AddCompleted adds scenarioID to the completed set as a single atomic
	// conditional update and reports whether it was newly added. The first
	// call for a scenario creates the row; reaching totalScenarios sets
	// completed_at exactly once and later calls never clear it.
	AddCompleted(ctx context.Context, userID, courseID, scenarioID string, totalScenarios int) (*ProgressRecord, bool, error)

	// List returns all course progress rows for the user.
	List(ctx context.Context, userID string) ([]*ProgressRecord, error)
}

// AchievementRepo manages unlocked badges, keyed uniquely on (user, badge).
type AchievementRepo interface {
	// Unlock inserts the badge if absent and reports whether it was newly
	// inserted. Re-unlocking is a no-op that preserves the original
	// unlocked_at timestamp.
	Unlock(ctx context.Context, userID, badgeID string) (bool, error)

	// List returns all unlocked badges for the user.
	List(ctx context.Context, userID string) ([]AchievementRecord, error)
}

// SkillRepo manages per-skill mastery, keyed uniquely on (user, skill).
type SkillRepo interface {
	// GetMastery returns the current mastery for the given skill ids.
	// Skills with no row are absent from the map.
	GetMastery(ctx context.Context, userID string, skillIDs []string) (map[string]float64, error)

	// Upsert inserts or replaces the mastery row for (user, skill).
	Upsert(ctx context.Context, userID, skillID string, mastery float64, status string) error

	// List returns all skill rows for the user.
	List(ctx context.Context, userID string) ([]SkillRecord, error)
}

// ActivityRepo manages per-day minute accumulators, keyed uniquely on
// (user, day).
type ActivityRepo interface {
	// GetDay returns the minutes recorded for the day, or nil if none.
	GetDay(ctx context.Context, userID, day string) (*ActivityRecord, error)

	// AddMinutes adds minutes to the day's accumulator, creating the row if
	// absent.
	AddMinutes(ctx context.Context, userID, day string, minutes int) error

	// ListRecent returns up to limit activity days, most recent day first.
	ListRecent(ctx context.Context, userID string, limit int) ([]ActivityRecord, error)
}

// CompletionRepo is the append-only completion event log.
type CompletionRepo interface {
	// Append records a completion event, assigning its global sequence.
	Append(ctx context.Context, rec CompletionRecord) error

	// Recent returns up to limit completion events, newest first.
	Recent(ctx context.Context, userID string, limit int) ([]CompletionRecord, error)
}
