package skills

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/Riverstargroup/cultiva-finanzas/internal/store"
)

// mockSkillRepo is an in-memory SkillRepo for tests.
type mockSkillRepo struct {
	mastery map[string]float64
	status  map[string]string
	failOn  map[string]bool
	upserts int
}

func newMockSkillRepo() *mockSkillRepo {
	return &mockSkillRepo{
		mastery: make(map[string]float64),
		status:  make(map[string]string),
		failOn:  make(map[string]bool),
	}
}

func (m *mockSkillRepo) GetMastery(_ context.Context, _ string, skillIDs []string) (map[string]float64, error) {
	out := make(map[string]float64)
	for _, id := range skillIDs {
		if v, ok := m.mastery[id]; ok {
			out[id] = v
		}
	}
	return out, nil
}

func (m *mockSkillRepo) Upsert(_ context.Context, _ string, skillID string, mastery float64, status string) error {
	if m.failOn[skillID] {
		return errors.New("store unavailable")
	}
	m.upserts++
	m.mastery[skillID] = mastery
	m.status[skillID] = status
	return nil
}

func (m *mockSkillRepo) List(_ context.Context, _ string) ([]store.SkillRecord, error) {
	return nil, nil
}

func TestMasteryDelta(t *testing.T) {
	tests := []struct {
		score float64
		want  float64
	}{
		{0.0, 0.08},
		{0.5, 0.19},
		{1.0, 0.30},
	}
	for _, tt := range tests {
		if got := MasteryDelta(tt.score); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("MasteryDelta(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestUpdateOnCompletion_RepeatIsNoOp(t *testing.T) {
	repo := newMockSkillRepo()
	repo.mastery["emergency_fund"] = 0.5
	u := NewUpdater(repo, nil)

	err := u.UpdateOnCompletion(context.Background(), "u1", []string{"ahorro"}, 1.0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.upserts != 0 {
		t.Errorf("repeat completion wrote %d upserts, want 0", repo.upserts)
	}
	if repo.mastery["emergency_fund"] != 0.5 {
		t.Errorf("mastery changed on repeat completion")
	}
}

func TestUpdateOnCompletion_FirstCompletionAddsDelta(t *testing.T) {
	repo := newMockSkillRepo()
	u := NewUpdater(repo, nil)

	err := u.UpdateOnCompletion(context.Background(), "u1", []string{"inversion"}, 1.0, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := repo.mastery["investing_basics"]
	if math.Abs(got-0.30) > 1e-9 {
		t.Errorf("mastery = %v, want 0.30", got)
	}
	if repo.status["investing_basics"] != StatusUnlocked {
		t.Errorf("status = %q, want %q", repo.status["investing_basics"], StatusUnlocked)
	}
}

func TestUpdateOnCompletion_ClampsAndMasters(t *testing.T) {
	repo := newMockSkillRepo()
	repo.mastery["inflation_basics"] = 0.9
	u := NewUpdater(repo, nil)

	err := u.UpdateOnCompletion(context.Background(), "u1", []string{"inflacion"}, 1.0, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := repo.mastery["inflation_basics"]; got != 1.0 {
		t.Errorf("mastery = %v, want clamped to 1.0", got)
	}
	if repo.status["inflation_basics"] != StatusMastered {
		t.Errorf("status = %q, want %q", repo.status["inflation_basics"], StatusMastered)
	}
}

func TestUpdateOnCompletion_Monotonic(t *testing.T) {
	repo := newMockSkillRepo()
	u := NewUpdater(repo, nil)
	ctx := context.Background()

	prev := 0.0
	for i := 0; i < 6; i++ {
		if err := u.UpdateOnCompletion(ctx, "u1", []string{"fraude"}, 0.4, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := repo.mastery["fraud_basics"]
		if got < prev {
			t.Fatalf("mastery decreased: %v -> %v", prev, got)
		}
		prev = got
	}
}

func TestUpdateOnCompletion_PartialFailure(t *testing.T) {
	repo := newMockSkillRepo()
	repo.failOn["emergency_fund"] = true
	u := NewUpdater(repo, nil)

	err := u.UpdateOnCompletion(context.Background(), "u1", []string{"ahorro"}, 0.5, true)
	if err == nil {
		t.Fatal("expected joined error from failed upsert")
	}
	// The other skill mapped from "ahorro" must still have been written.
	if _, ok := repo.mastery["auto_saving"]; !ok {
		t.Error("failure on one skill blocked the others")
	}
}

func TestUpdateOnCompletion_NoMappedSkills(t *testing.T) {
	repo := newMockSkillRepo()
	u := NewUpdater(repo, nil)

	err := u.UpdateOnCompletion(context.Background(), "u1", []string{"sin-mapa"}, 1.0, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.upserts != 0 {
		t.Errorf("expected no writes for unmapped tags")
	}
}
