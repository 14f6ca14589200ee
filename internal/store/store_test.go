package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestReviewRepo_GetMissingIsNil(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec, err := s.Reviews().Get(ctx, "u1", "scenario-001")
	require.NoError(t, err)
	assert.Nil(t, rec, "missing review state is the first-encounter case, not an error")
}

func TestReviewRepo_UpsertAndListDue(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Reviews()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	due := &ReviewRecord{
		UserID: "u1", CourseID: "c1", ScenarioID: "s1",
		Repetitions: 1, IntervalDays: 1, EaseFactor: 2.6,
		NextDueAt: now.Add(-time.Hour), LastQuality: 5, LastScore: 1.0,
	}
	later := &ReviewRecord{
		UserID: "u1", CourseID: "c1", ScenarioID: "s2",
		Repetitions: 2, IntervalDays: 3, EaseFactor: 2.5,
		NextDueAt: now.Add(-2 * time.Hour), LastQuality: 4, LastScore: 0.8,
	}
	notDue := &ReviewRecord{
		UserID: "u1", CourseID: "c1", ScenarioID: "s3",
		Repetitions: 1, IntervalDays: 1, EaseFactor: 2.5,
		NextDueAt: now.Add(24 * time.Hour), LastQuality: 4, LastScore: 0.9,
	}
	for _, rec := range []*ReviewRecord{due, later, notDue} {
		require.NoError(t, repo.Upsert(ctx, rec))
	}

	records, err := repo.ListDue(ctx, "u1", now)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "s2", records[0].ScenarioID, "due list is ordered by due date ascending")
	assert.Equal(t, "s1", records[1].ScenarioID)

	// Upsert on the same key replaces the row instead of adding one.
	due.Repetitions = 2
	due.IntervalDays = 3
	require.NoError(t, repo.Upsert(ctx, due))

	got, err := repo.Get(ctx, "u1", "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Repetitions)
	assert.Equal(t, 3, got.IntervalDays)
}

func TestProgressRepo_AddCompleted(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Progress()

	rec, newly, err := repo.AddCompleted(ctx, "u1", "c1", "s1", 2)
	require.NoError(t, err)
	assert.True(t, newly, "first completion of s1")
	assert.Equal(t, []string{"s1"}, rec.CompletedScenarios)
	assert.InDelta(t, 0.5, rec.MasteryScore, 1e-9)
	assert.Nil(t, rec.CompletedAt)

	// Repeat completion is not newly added and changes nothing.
	rec, newly, err = repo.AddCompleted(ctx, "u1", "c1", "s1", 2)
	require.NoError(t, err)
	assert.False(t, newly)
	assert.Len(t, rec.CompletedScenarios, 1)

	// Completing the last scenario sets completed_at.
	rec, newly, err = repo.AddCompleted(ctx, "u1", "c1", "s2", 2)
	require.NoError(t, err)
	assert.True(t, newly)
	require.NotNil(t, rec.CompletedAt)
	completedAt := *rec.CompletedAt

	// A later repeat never clears or moves completed_at.
	rec, _, err = repo.AddCompleted(ctx, "u1", "c1", "s2", 2)
	require.NoError(t, err)
	require.NotNil(t, rec.CompletedAt)
	assert.Equal(t, completedAt.Unix(), rec.CompletedAt.Unix())
}

func TestAchievementRepo_UnlockIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Achievements()

	newly, err := repo.Unlock(ctx, "u1", "first_steps")
	require.NoError(t, err)
	assert.True(t, newly)

	list, err := repo.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	unlockedAt := list[0].UnlockedAt

	newly, err = repo.Unlock(ctx, "u1", "first_steps")
	require.NoError(t, err)
	assert.False(t, newly, "second unlock is a no-op")

	list, err = repo.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1, "no duplicate row")
	assert.Equal(t, unlockedAt, list[0].UnlockedAt, "original timestamp preserved")
}

func TestSkillRepo_UpsertAndGetMastery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Skills()

	mastery, err := repo.GetMastery(ctx, "u1", []string{"emergency_fund"})
	require.NoError(t, err)
	assert.Empty(t, mastery)

	require.NoError(t, repo.Upsert(ctx, "u1", "emergency_fund", 0.3, "unlocked"))
	require.NoError(t, repo.Upsert(ctx, "u1", "emergency_fund", 0.85, "mastered"))

	mastery, err = repo.GetMastery(ctx, "u1", []string{"emergency_fund", "credit_basics"})
	require.NoError(t, err)
	assert.InDelta(t, 0.85, mastery["emergency_fund"], 1e-9)
	_, present := mastery["credit_basics"]
	assert.False(t, present)

	list, err := repo.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "mastered", list[0].Status)
}

func TestActivityRepo_AddMinutesIsAdditive(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Activity()

	rec, err := repo.GetDay(ctx, "u1", "2025-03-10")
	require.NoError(t, err)
	assert.Nil(t, rec)

	require.NoError(t, repo.AddMinutes(ctx, "u1", "2025-03-10", 5))
	require.NoError(t, repo.AddMinutes(ctx, "u1", "2025-03-10", 5))
	require.NoError(t, repo.AddMinutes(ctx, "u1", "2025-03-09", 5))

	rec, err = repo.GetDay(ctx, "u1", "2025-03-10")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 10, rec.Minutes)

	recent, err := repo.ListRecent(ctx, "u1", 60)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "2025-03-10", recent[0].Day, "most recent day first")
}

func TestCompletionRepo_AppendAssignsSequence(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Completions()

	for _, sc := range []string{"s1", "s2", "s3"} {
		require.NoError(t, repo.Append(ctx, CompletionRecord{
			UserID: "u1", CourseID: "c1", ScenarioID: sc,
			Score: 1.0, Quality: 5, FirstCompletion: true,
		}))
	}

	recent, err := repo.Recent(ctx, "u1", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "s3", recent[0].ScenarioID, "newest first")
	assert.Greater(t, recent[0].Sequence, recent[1].Sequence)
}

func TestResetUser(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, _, err := s.Progress().AddCompleted(ctx, "u1", "c1", "s1", 5)
	require.NoError(t, err)
	_, err = s.Achievements().Unlock(ctx, "u1", "first_steps")
	require.NoError(t, err)
	_, _, err = s.Progress().AddCompleted(ctx, "u2", "c1", "s1", 5)
	require.NoError(t, err)

	require.NoError(t, s.ResetUser(ctx, "u1"))

	prog, err := s.Progress().Get(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.Nil(t, prog)

	// Other users are untouched.
	prog, err = s.Progress().Get(ctx, "u2", "c1")
	require.NoError(t, err)
	assert.NotNil(t, prog)
}
