package achievements

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Riverstargroup/cultiva-finanzas/internal/store"
)

// mockAchievementRepo is an in-memory AchievementRepo for tests.
type mockAchievementRepo struct {
	unlocked map[string]time.Time
	failOn   map[string]bool
}

func newMockAchievementRepo() *mockAchievementRepo {
	return &mockAchievementRepo{
		unlocked: make(map[string]time.Time),
		failOn:   make(map[string]bool),
	}
}

func (m *mockAchievementRepo) Unlock(_ context.Context, _ string, badgeID string) (bool, error) {
	if m.failOn[badgeID] {
		return false, errors.New("store unavailable")
	}
	if _, ok := m.unlocked[badgeID]; ok {
		return false, nil
	}
	m.unlocked[badgeID] = time.Now()
	return true, nil
}

func (m *mockAchievementRepo) List(_ context.Context, _ string) ([]store.AchievementRecord, error) {
	records := make([]store.AchievementRecord, 0, len(m.unlocked))
	for id, at := range m.unlocked {
		records = append(records, store.AchievementRecord{BadgeID: id, UnlockedAt: at})
	}
	return records, nil
}

func TestEvaluate_FirstCompletion(t *testing.T) {
	repo := newMockAchievementRepo()
	e := NewEngine(repo, nil)

	newly, err := e.Evaluate(context.Background(), "u1", Context{
		Completed:      []string{"scenario-001"},
		TotalScenarios: 5,
		ScenarioTags:   []string{"ahorro"},
		ScenarioTitle:  "Aguinaldo",
		Streak:         1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]bool{BadgeFirstSteps: true, BadgeSaver: true}
	if len(newly) != len(want) {
		t.Fatalf("newly = %v, want first_steps and saver", newly)
	}
	for _, id := range newly {
		if !want[id] {
			t.Errorf("unexpected badge %q", id)
		}
	}
}

func TestEvaluate_SecondCallReportsNothingNew(t *testing.T) {
	repo := newMockAchievementRepo()
	e := NewEngine(repo, nil)
	actx := Context{Completed: []string{"s1"}, TotalScenarios: 5}

	first, err := e.Evaluate(context.Background(), "u1", actx)
	if err != nil || len(first) != 1 {
		t.Fatalf("first call: %v, %v", first, err)
	}

	second, err := e.Evaluate(context.Background(), "u1", actx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second) != 0 {
		t.Errorf("second call reported %v, want nothing new", second)
	}

	records, _ := repo.List(context.Background(), "u1")
	if len(records) != 1 {
		t.Errorf("expected exactly one record, got %d", len(records))
	}
}

func TestEvaluate_FullCourseAndStreaks(t *testing.T) {
	repo := newMockAchievementRepo()
	e := NewEngine(repo, nil)

	newly, err := e.Evaluate(context.Background(), "u1", Context{
		Completed:       []string{"s1", "s2", "s3", "s4", "s5"},
		CourseCompleted: []string{"s1", "s2", "s3", "s4", "s5"},
		TotalScenarios:  5,
		Streak:          7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := map[string]bool{}
	for _, id := range newly {
		got[id] = true
	}
	for _, id := range []string{BadgeFirstSteps, BadgeSteadyLearner, BadgeFinancialMaster, BadgeStreak3, BadgeStreak7} {
		if !got[id] {
			t.Errorf("missing badge %q in %v", id, newly)
		}
	}
	if got[BadgeDebtExpert] || got[BadgeSaver] {
		t.Errorf("topic badges unlocked without matching scenario: %v", newly)
	}
}

func TestEvaluate_CountsSpanCourses(t *testing.T) {
	repo := newMockAchievementRepo()
	e := NewEngine(repo, nil)

	// Two scenarios done in one course, one in another. The count rules
	// see all three; the full-course rule only sees the course at hand.
	newly, err := e.Evaluate(context.Background(), "u1", Context{
		Completed:       []string{"a1", "a2", "b1"},
		CourseCompleted: []string{"b1"},
		TotalScenarios:  2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := map[string]bool{}
	for _, id := range newly {
		got[id] = true
	}
	if !got[BadgeSteadyLearner] {
		t.Errorf("steady_learner should count completions across courses, got %v", newly)
	}
	if got[BadgeFinancialMaster] {
		t.Errorf("financial_master must not fire from cross-course totals, got %v", newly)
	}
}

func TestEvaluate_FailedUnlockDoesNotStopOthers(t *testing.T) {
	repo := newMockAchievementRepo()
	repo.failOn[BadgeFirstSteps] = true
	e := NewEngine(repo, nil)

	newly, err := e.Evaluate(context.Background(), "u1", Context{
		Completed:      []string{"s1", "s2", "s3"},
		TotalScenarios: 5,
	})
	if err == nil {
		t.Fatal("expected joined error")
	}
	found := false
	for _, id := range newly {
		if id == BadgeSteadyLearner {
			found = true
		}
	}
	if !found {
		t.Errorf("steady_learner should unlock despite first_steps failure, got %v", newly)
	}
}

func TestRules_TitleFallbackMatching(t *testing.T) {
	byBadge := make(map[string]Rule)
	for _, r := range Rules() {
		byBadge[r.Badge] = r
	}

	tests := []struct {
		name  string
		badge string
		ctx   Context
		want  bool
	}{
		{"debt by tag", BadgeDebtExpert, Context{ScenarioTags: []string{"deuda"}}, true},
		{"debt by title, untagged legacy content", BadgeDebtExpert, Context{ScenarioTitle: "Tarjeta de crédito"}, true},
		{"saver by title substring", BadgeSaver, Context{ScenarioTitle: "Fondo de emergencia"}, true},
		{"saver no match", BadgeSaver, Context{ScenarioTitle: "CETES", ScenarioTags: []string{"inversion"}}, false},
		{"case insensitive", BadgeDebtExpert, Context{ScenarioTitle: "PLAN DE DEUDA"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := byBadge[tt.badge].Check(tt.ctx); got != tt.want {
				t.Errorf("rule %q = %v, want %v", tt.badge, got, tt.want)
			}
		})
	}
}

func TestCatalog_MatchesRules(t *testing.T) {
	catalog := make(map[string]bool)
	for _, b := range Catalog() {
		catalog[b.ID] = true
	}
	for _, r := range Rules() {
		if !catalog[r.Badge] {
			t.Errorf("rule badge %q missing from catalog", r.Badge)
		}
	}
	if len(Catalog()) != len(Rules()) {
		t.Errorf("catalog has %d badges, rules have %d", len(Catalog()), len(Rules()))
	}
}
