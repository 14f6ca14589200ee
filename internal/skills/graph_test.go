package skills

import "testing"

func TestGraph_PrerequisitesExist(t *testing.T) {
	for _, s := range AllSkills() {
		for _, prereq := range s.Prerequisites {
			if SkillByID(prereq) == nil {
				t.Errorf("skill %q: unknown prerequisite %q", s.ID, prereq)
			}
		}
	}
}

func TestGraph_RootsPerDomain(t *testing.T) {
	roots := make(map[Domain]int)
	for _, s := range AllSkills() {
		if len(s.Prerequisites) == 0 {
			roots[s.Domain]++
		}
	}
	for _, d := range []Domain{DomainControl, DomainCredito, DomainProteccion, DomainCrecimiento} {
		if roots[d] == 0 {
			t.Errorf("domain %q has no root skill", d)
		}
	}
}

func TestCheckAcyclic_DetectsCycle(t *testing.T) {
	cyclic := &graph{
		skills: []Skill{
			{ID: "a", Prerequisites: []string{"b"}},
			{ID: "b", Prerequisites: []string{"a"}},
		},
		byID: map[string]*Skill{},
	}
	for i := range cyclic.skills {
		cyclic.byID[cyclic.skills[i].ID] = &cyclic.skills[i]
	}
	if err := checkAcyclic(cyclic); err == nil {
		t.Error("expected cycle detection")
	}
}

func TestSkillsForTags(t *testing.T) {
	ids := SkillsForTags([]string{"ahorro", "deuda", "ahorro", "desconocido"})

	want := map[string]bool{
		"emergency_fund": true, "auto_saving": true,
		"min_payment_trap": true, "rate_compare": true, "snowball_avalanche": true,
	}
	if len(ids) != len(want) {
		t.Fatalf("got %d skills %v, want %d", len(ids), ids, len(want))
	}
	for _, id := range ids {
		if !want[id] {
			t.Errorf("unexpected skill %q", id)
		}
	}

	// Sorted for deterministic iteration.
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("ids not sorted: %v", ids)
		}
	}

	if got := SkillsForTags(nil); len(got) != 0 {
		t.Errorf("no tags should map to no skills, got %v", got)
	}
}

func TestTagSkills_ReferToKnownSkills(t *testing.T) {
	for tag, ids := range TagSkills {
		for _, id := range ids {
			if SkillByID(id) == nil {
				t.Errorf("tag %q maps to unknown skill %q", tag, id)
			}
		}
	}
}
