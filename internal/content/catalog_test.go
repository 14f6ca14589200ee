package content

import (
	"strings"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	courses := c.Courses()
	if len(courses) != 1 {
		t.Fatalf("expected 1 seed course, got %d", len(courses))
	}
	if got := c.ScenarioCount("course-pilot-001"); got != 5 {
		t.Errorf("ScenarioCount = %d, want 5", got)
	}

	for _, course := range courses {
		for _, sc := range course.Scenarios {
			if sc.CourseID != course.ID {
				t.Errorf("scenario %q: CourseID = %q, want %q", sc.ID, sc.CourseID, course.ID)
			}
			if sc.BestOption() == nil {
				t.Errorf("scenario %q has no best option", sc.ID)
			}
		}
	}
}

func TestNewCatalog_RejectsDuplicateScenario(t *testing.T) {
	course := pilotCourse
	course.Scenarios = append([]Scenario{}, course.Scenarios...)
	course.Scenarios = append(course.Scenarios, course.Scenarios[0])

	_, err := NewCatalog([]Course{course})
	if err == nil || !strings.Contains(err.Error(), "duplicate scenario") {
		t.Errorf("expected duplicate scenario error, got %v", err)
	}
}

func TestNewCatalog_RejectsTwoBestOptions(t *testing.T) {
	course := Course{
		ID:    "c1",
		Title: "test",
		Scenarios: []Scenario{{
			ID:     "s1",
			Title:  "t",
			Prompt: "p",
			Options: []Option{
				{ID: "a", Text: "a", IsBest: true},
				{ID: "b", Text: "b", IsBest: true},
			},
		}},
	}
	if _, err := NewCatalog([]Course{course}); err == nil {
		t.Error("expected error for two best options")
	}
}

func TestNewCatalog_IndexesUnorderedScenarios(t *testing.T) {
	twoOptions := []Option{
		{ID: "a", Text: "a", IsBest: true},
		{ID: "b", Text: "b"},
	}
	c, err := NewCatalog([]Course{{
		ID:    "c1",
		Title: "test",
		Scenarios: []Scenario{
			{ID: "s2", Title: "Second", Prompt: "p", OrderIndex: 1, Options: twoOptions},
			{ID: "s1", Title: "First", Prompt: "p", OrderIndex: 0, Options: twoOptions},
		},
	}})
	if err != nil {
		t.Fatal(err)
	}

	// Lookups stay keyed by id no matter what order the author listed
	// the scenarios in.
	if sc := c.Scenario("s1"); sc == nil || sc.ID != "s1" || sc.Title != "First" {
		t.Errorf("Scenario(s1) = %+v, want First", sc)
	}
	if sc := c.Scenario("s2"); sc == nil || sc.ID != "s2" || sc.Title != "Second" {
		t.Errorf("Scenario(s2) = %+v, want Second", sc)
	}
	scenarios := c.Course("c1").Scenarios
	if scenarios[0].ID != "s1" || scenarios[1].ID != "s2" {
		t.Errorf("scenarios not in OrderIndex order: %q, %q", scenarios[0].ID, scenarios[1].ID)
	}
	if next := c.NextScenario("s1"); next == nil || next.ID != "s2" {
		t.Errorf("NextScenario(s1) = %v, want s2", next)
	}
}

func TestNewCatalog_IndexesUnorderedCourses(t *testing.T) {
	twoOptions := []Option{
		{ID: "a", Text: "a", IsBest: true},
		{ID: "b", Text: "b"},
	}
	c, err := NewCatalog([]Course{
		{
			ID: "c2", Title: "Later", SortOrder: 2,
			Scenarios: []Scenario{{ID: "s2", Title: "t", Prompt: "p", Options: twoOptions}},
		},
		{
			ID: "c1", Title: "Earlier", SortOrder: 1,
			Scenarios: []Scenario{{ID: "s1", Title: "t", Prompt: "p", Options: twoOptions}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if got := c.Course("c2"); got == nil || got.ID != "c2" || got.Title != "Later" {
		t.Errorf("Course(c2) = %+v, want Later", got)
	}
	if got := c.Course("c1"); got == nil || got.ID != "c1" || got.Title != "Earlier" {
		t.Errorf("Course(c1) = %+v, want Earlier", got)
	}
	if sc := c.Scenario("s2"); sc == nil || sc.CourseID != "c2" {
		t.Errorf("Scenario(s2) = %+v, want CourseID c2", sc)
	}
	courses := c.Courses()
	if courses[0].ID != "c1" || courses[1].ID != "c2" {
		t.Errorf("courses not in SortOrder: %q, %q", courses[0].ID, courses[1].ID)
	}
}

func TestCatalog_NextScenario(t *testing.T) {
	c := DefaultCatalog()

	next := c.NextScenario("scenario-001")
	if next == nil || next.ID != "scenario-002" {
		t.Errorf("NextScenario(scenario-001) = %v, want scenario-002", next)
	}
	if c.NextScenario("scenario-005") != nil {
		t.Error("NextScenario on last scenario should be nil")
	}
	if c.NextScenario("nope") != nil {
		t.Error("NextScenario on unknown scenario should be nil")
	}
}

func TestScenario_OptionLookup(t *testing.T) {
	sc := DefaultCatalog().Scenario("scenario-003")
	if sc == nil {
		t.Fatal("scenario-003 missing")
	}
	if opt := sc.Option("opt_b"); opt == nil || !opt.IsBest {
		t.Errorf("Option(opt_b) = %v, want best option", opt)
	}
	if sc.Option("opt_z") != nil {
		t.Error("unknown option id should return nil")
	}
}
