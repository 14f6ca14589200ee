package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Riverstargroup/cultiva-finanzas/internal/achievements"
	"github.com/Riverstargroup/cultiva-finanzas/internal/content"
	"github.com/Riverstargroup/cultiva-finanzas/internal/skills"
	"github.com/Riverstargroup/cultiva-finanzas/internal/store"
)

type memReviewRepo struct {
	recs     map[string]*store.ReviewRecord
	failNext int // fail this many Upserts before succeeding
	upserts  int
}

func (m *memReviewRepo) Get(_ context.Context, _, scenarioID string) (*store.ReviewRecord, error) {
	rec, ok := m.recs[scenarioID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *memReviewRepo) Upsert(_ context.Context, rec *store.ReviewRecord) error {
	m.upserts++
	if m.failNext > 0 {
		m.failNext--
		return errors.New("disk full")
	}
	if m.recs == nil {
		m.recs = make(map[string]*store.ReviewRecord)
	}
	cp := *rec
	m.recs[rec.ScenarioID] = &cp
	return nil
}

func (m *memReviewRepo) ListDue(_ context.Context, _ string, now time.Time) ([]*store.ReviewRecord, error) {
	var due []*store.ReviewRecord
	for _, rec := range m.recs {
		if !rec.NextDueAt.After(now) {
			cp := *rec
			due = append(due, &cp)
		}
	}
	return due, nil
}

type memProgressRepo struct {
	recs map[string]*store.ProgressRecord // by course id
	fail bool
}

func (m *memProgressRepo) Get(_ context.Context, _, courseID string) (*store.ProgressRecord, error) {
	rec, ok := m.recs[courseID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *memProgressRepo) AddCompleted(_ context.Context, userID, courseID, scenarioID string, totalScenarios int) (*store.ProgressRecord, bool, error) {
	if m.fail {
		return nil, false, errors.New("disk full")
	}
	if m.recs == nil {
		m.recs = make(map[string]*store.ProgressRecord)
	}
	rec, ok := m.recs[courseID]
	if !ok {
		rec = &store.ProgressRecord{UserID: userID, CourseID: courseID, StartedAt: time.Now()}
		m.recs[courseID] = rec
	}
	if rec.Completed(scenarioID) {
		cp := *rec
		return &cp, false, nil
	}
	rec.CompletedScenarios = append(rec.CompletedScenarios, scenarioID)
	rec.MasteryScore = float64(len(rec.CompletedScenarios)) / float64(totalScenarios)
	if len(rec.CompletedScenarios) >= totalScenarios && rec.CompletedAt == nil {
		now := time.Now()
		rec.CompletedAt = &now
	}
	cp := *rec
	return &cp, true, nil
}

func (m *memProgressRepo) List(_ context.Context, _ string) ([]*store.ProgressRecord, error) {
	var out []*store.ProgressRecord
	for _, rec := range m.recs {
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

type memAchievementRepo struct {
	unlocked map[string]time.Time
}

func (m *memAchievementRepo) Unlock(_ context.Context, _, badgeID string) (bool, error) {
	if m.unlocked == nil {
		m.unlocked = make(map[string]time.Time)
	}
	if _, ok := m.unlocked[badgeID]; ok {
		return false, nil
	}
	m.unlocked[badgeID] = time.Now()
	return true, nil
}

func (m *memAchievementRepo) List(_ context.Context, _ string) ([]store.AchievementRecord, error) {
	var out []store.AchievementRecord
	for id, at := range m.unlocked {
		out = append(out, store.AchievementRecord{BadgeID: id, UnlockedAt: at})
	}
	return out, nil
}

type memSkillRepo struct {
	mastery map[string]float64
	status  map[string]string
}

func (m *memSkillRepo) GetMastery(_ context.Context, _ string, skillIDs []string) (map[string]float64, error) {
	out := make(map[string]float64)
	for _, id := range skillIDs {
		if v, ok := m.mastery[id]; ok {
			out[id] = v
		}
	}
	return out, nil
}

func (m *memSkillRepo) Upsert(_ context.Context, _, skillID string, mastery float64, status string) error {
	if m.mastery == nil {
		m.mastery = make(map[string]float64)
		m.status = make(map[string]string)
	}
	m.mastery[skillID] = mastery
	m.status[skillID] = status
	return nil
}

func (m *memSkillRepo) List(_ context.Context, _ string) ([]store.SkillRecord, error) {
	var out []store.SkillRecord
	for id, v := range m.mastery {
		out = append(out, store.SkillRecord{SkillID: id, Mastery: v, Status: m.status[id]})
	}
	return out, nil
}

type memCompletionRepo struct {
	events []store.CompletionRecord
}

func (m *memCompletionRepo) Append(_ context.Context, rec store.CompletionRecord) error {
	rec.Sequence = int64(len(m.events) + 1)
	m.events = append(m.events, rec)
	return nil
}

func (m *memCompletionRepo) Recent(_ context.Context, _ string, limit int) ([]store.CompletionRecord, error) {
	out := make([]store.CompletionRecord, 0, limit)
	for i := len(m.events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.events[i])
	}
	return out, nil
}

type harness struct {
	reviews     *memReviewRepo
	progress    *memProgressRepo
	badges      *memAchievementRepo
	skills      *memSkillRepo
	activity    *fixedActivityRepo
	completions *memCompletionRepo
	cache       *ViewCache
	orch        *Orchestrator
	stats       *Stats
	now         time.Time
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	catalog, err := content.NewCatalog([]content.Course{
		{
			ID:        "c1",
			Title:     "Curso de prueba",
			SortOrder: 1,
			Scenarios: []content.Scenario{
				*testScenario(),
				{
					ID:       "s2",
					CourseID: "c1",
					Title:    "Fondo de emergencia",
					Tags:     []string{"ahorro"},
					Options: []content.Option{
						{ID: "a", IsBest: true},
						{ID: "b"},
					},
				},
			},
		},
		{
			ID:        "c2",
			Title:     "Curso avanzado",
			SortOrder: 2,
			Scenarios: []content.Scenario{
				{
					ID:       "s3",
					CourseID: "c2",
					Title:    "CETES",
					Tags:     []string{"inversion"},
					Options: []content.Option{
						{ID: "a", IsBest: true},
						{ID: "b"},
					},
				},
				{
					ID:         "s4",
					CourseID:   "c2",
					Title:      "Inflación",
					OrderIndex: 1,
					Tags:       []string{"inflacion"},
					Options: []content.Option{
						{ID: "a", IsBest: true},
						{ID: "b"},
					},
				},
			},
		},
	})
	require.NoError(t, err)

	h := &harness{
		reviews:     &memReviewRepo{},
		progress:    &memProgressRepo{},
		badges:      &memAchievementRepo{},
		skills:      &memSkillRepo{},
		activity:    &fixedActivityRepo{},
		completions: &memCompletionRepo{},
		cache:       &ViewCache{},
		now:         time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC),
	}
	deps := Deps{
		Reviews:      h.reviews,
		Progress:     h.progress,
		Activity:     h.activity,
		Completions:  h.completions,
		Badges:       achievements.NewEngine(h.badges, nil),
		Skills:       skills.NewUpdater(h.skills, nil),
		Catalog:      catalog,
		Achievements: h.badges,
		SkillMastery: h.skills,
		Clock:        func() time.Time { return h.now },
		Location:     time.UTC,
		Cache:        h.cache,
	}
	h.orch = NewOrchestrator(deps)
	h.stats = NewStats(deps)
	return h
}

func (h *harness) scenario(t *testing.T, id string) *content.Scenario {
	t.Helper()
	sc := h.orch.deps.Catalog.Scenario(id)
	require.NotNil(t, sc)
	return sc
}

func TestFinish_PerfectFirstAttempt(t *testing.T) {
	h := newHarness(t)
	sc := h.scenario(t, "s1")

	sum, err := h.orch.Finish(context.Background(), Attempt{
		UserID: "u1", SessionID: "sess-1", Scenario: sc,
		ChoseBest: true, RecallCorrect: 2, RecallTotal: 2,
	})
	require.NoError(t, err)
	require.Empty(t, sum.StepErrors)

	assert.Equal(t, 1.0, sum.Score)
	assert.Equal(t, 5, sum.Quality)
	assert.Equal(t, 1, sum.Review.Repetitions)
	assert.Equal(t, 1, sum.Review.IntervalDays)
	assert.Equal(t, 2.6, sum.Review.EaseFactor)
	assert.Equal(t, h.now.Add(24*time.Hour), sum.Review.NextDueAt)
	assert.True(t, sum.FirstCompletion)
	assert.False(t, sum.CourseCompleted)
	assert.Equal(t, 1, sum.Streak)
	assert.Contains(t, sum.NewBadges, achievements.BadgeFirstSteps)

	// Review state persisted.
	rec, err := h.reviews.Get(context.Background(), "u1", "s1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 2.6, rec.EaseFactor)
	require.NotNil(t, rec.LastAttemptAt)

	// Event appended with the rounded score.
	events, err := h.completions.Recent(context.Background(), "u1", 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "sess-1", events[0].SessionID)
	assert.True(t, events[0].FirstCompletion)

	// Cache generation bumped.
	assert.Equal(t, int64(1), h.cache.Generation())
}

func TestFinish_RepeatDoesNotTouchSkills(t *testing.T) {
	h := newHarness(t)
	sc := h.scenario(t, "s2") // tagged "ahorro"

	_, err := h.orch.Finish(context.Background(), Attempt{
		UserID: "u1", Scenario: sc, ChoseBest: true,
	})
	require.NoError(t, err)
	firstMastery := make(map[string]float64)
	for id, v := range h.skills.mastery {
		firstMastery[id] = v
	}
	require.NotEmpty(t, firstMastery)

	sum, err := h.orch.Finish(context.Background(), Attempt{
		UserID: "u1", Scenario: sc, ChoseBest: false,
	})
	require.NoError(t, err)
	assert.False(t, sum.FirstCompletion)
	assert.Equal(t, firstMastery, h.skills.mastery)
}

func TestFinish_PerfectScoreMaxesSkillDelta(t *testing.T) {
	h := newHarness(t)
	sc := h.scenario(t, "s2")

	_, err := h.orch.Finish(context.Background(), Attempt{
		UserID: "u1", Scenario: sc, ChoseBest: true, RecallCorrect: 0, RecallTotal: 0,
	})
	require.NoError(t, err)

	// score 0.5 with no recall questions: delta = 0.08 + 0.22*0.5 = 0.19.
	for id, v := range h.skills.mastery {
		assert.InDelta(t, 0.19, v, 1e-9, "skill %s", id)
	}
}

func TestFinish_FailedAttemptResetsChain(t *testing.T) {
	h := newHarness(t)
	sc := h.scenario(t, "s1")

	// Build up two repetitions first.
	for i := 0; i < 2; i++ {
		_, err := h.orch.Finish(context.Background(), Attempt{
			UserID: "u1", Scenario: sc, ChoseBest: true, RecallCorrect: 2, RecallTotal: 2,
		})
		require.NoError(t, err)
	}
	rec, _ := h.reviews.Get(context.Background(), "u1", "s1")
	require.Equal(t, 2, rec.Repetitions)
	require.Equal(t, 3, rec.IntervalDays)

	// A failing attempt (score 0.25 -> quality 1) resets the chain but
	// keeps the ease factor.
	sum, err := h.orch.Finish(context.Background(), Attempt{
		UserID: "u1", Scenario: sc, ChoseBest: false, RecallCorrect: 1, RecallTotal: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Quality)
	assert.Equal(t, 0, sum.Review.Repetitions)
	assert.Equal(t, 1, sum.Review.IntervalDays)
	assert.Equal(t, rec.EaseFactor, sum.Review.EaseFactor)
	// The scenario stays completed from the earlier pass.
	assert.False(t, sum.FirstCompletion)
}

func TestFinish_CourseCompletion(t *testing.T) {
	h := newHarness(t)

	_, err := h.orch.Finish(context.Background(), Attempt{
		UserID: "u1", Scenario: h.scenario(t, "s1"), ChoseBest: true, RecallCorrect: 2, RecallTotal: 2,
	})
	require.NoError(t, err)

	sum, err := h.orch.Finish(context.Background(), Attempt{
		UserID: "u1", Scenario: h.scenario(t, "s2"), ChoseBest: true,
	})
	require.NoError(t, err)
	assert.True(t, sum.CourseCompleted)
	assert.Contains(t, sum.NewBadges, achievements.BadgeFinancialMaster)
	assert.Contains(t, sum.NewBadges, achievements.BadgeSaver)
}

func TestFinish_BadgeCountsSpanCourses(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	// Three completions spread over two courses. Neither course reaches
	// three on its own, so steady_learner can only come from the union.
	for _, id := range []string{"s3", "s1"} {
		_, err := h.orch.Finish(ctx, Attempt{
			UserID: "u1", Scenario: h.scenario(t, id), ChoseBest: true,
		})
		require.NoError(t, err)
	}

	sum, err := h.orch.Finish(ctx, Attempt{
		UserID: "u1", Scenario: h.scenario(t, "s2"), ChoseBest: true,
	})
	require.NoError(t, err)
	assert.Contains(t, sum.NewBadges, achievements.BadgeSteadyLearner)
	// c1 is complete; c2 is not, and the union must not mark it so.
	assert.Contains(t, sum.NewBadges, achievements.BadgeFinancialMaster)

	prog, err := h.progress.Get(ctx, "u1", "c2")
	require.NoError(t, err)
	assert.Nil(t, prog.CompletedAt)
}

func TestFinish_ReviewWriteRetriesOnce(t *testing.T) {
	h := newHarness(t)
	h.reviews.failNext = 1
	sc := h.scenario(t, "s1")

	sum, err := h.orch.Finish(context.Background(), Attempt{
		UserID: "u1", Scenario: sc, ChoseBest: true, RecallCorrect: 2, RecallTotal: 2,
	})
	require.NoError(t, err)
	assert.Empty(t, sum.StepErrors)
	assert.Equal(t, 2, h.reviews.upserts)

	rec, _ := h.reviews.Get(context.Background(), "u1", "s1")
	require.NotNil(t, rec)
}

func TestFinish_ProgressFailureIsIsolated(t *testing.T) {
	h := newHarness(t)
	h.progress.fail = true
	sc := h.scenario(t, "s1")

	sum, err := h.orch.Finish(context.Background(), Attempt{
		UserID: "u1", Scenario: sc, ChoseBest: true, RecallCorrect: 2, RecallTotal: 2,
	})
	require.NoError(t, err)
	require.NotEmpty(t, sum.StepErrors)
	assert.False(t, sum.FirstCompletion)

	// The attempt still counted: review state and the event log were
	// written despite the progress failure.
	rec, _ := h.reviews.Get(context.Background(), "u1", "s1")
	assert.NotNil(t, rec)
	events, _ := h.completions.Recent(context.Background(), "u1", 10)
	assert.Len(t, events, 1)
}

func TestDashboard(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.orch.Finish(ctx, Attempt{
		UserID: "u1", Scenario: h.scenario(t, "s1"), ChoseBest: true, RecallCorrect: 2, RecallTotal: 2,
	})
	require.NoError(t, err)

	d, err := h.stats.Dashboard(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, d.CompletedScenarios)
	assert.Equal(t, 4, d.TotalScenarios)
	assert.Equal(t, 0, d.CoursesCompleted)
	assert.Equal(t, 5, d.TotalMinutes)
	assert.Equal(t, 1, d.Streak)
	assert.Equal(t, 1, d.BadgesUnlocked)
	assert.Equal(t, len(achievements.Catalog()), d.BadgesTotal)
	require.Len(t, d.Week, 7)
	assert.Equal(t, h.now.Format(dayKeyFormat), d.Week[6].Day)
	assert.Equal(t, 5, d.Week[6].Minutes)
	assert.Equal(t, "Jue", d.Week[6].Label) // 2026-03-12 is a Thursday
	assert.Equal(t, h.cache.Generation(), d.Generation)
}
