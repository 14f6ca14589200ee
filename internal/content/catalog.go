package content

import (
	"fmt"
	"sort"
)

// Catalog is an indexed, read-only view over a set of published courses.
type Catalog struct {
	courses    []Course
	byCourse   map[string]*Course
	byScenario map[string]*Scenario
}

// NewCatalog builds a catalog from courses, validating id uniqueness and
// per-scenario structure.
func NewCatalog(courses []Course) (*Catalog, error) {
	c := &Catalog{
		courses:    courses,
		byCourse:   make(map[string]*Course, len(courses)),
		byScenario: make(map[string]*Scenario),
	}

	// Sort before indexing. The index maps hold pointers into these
	// slices, so reordering after the maps are built would leave entries
	// pointing at whatever element moved into that position.
	sort.SliceStable(c.courses, func(a, b int) bool {
		return c.courses[a].SortOrder < c.courses[b].SortOrder
	})
	for i := range c.courses {
		course := &c.courses[i]
		sort.SliceStable(course.Scenarios, func(a, b int) bool {
			return course.Scenarios[a].OrderIndex < course.Scenarios[b].OrderIndex
		})
	}

	for i := range c.courses {
		course := &c.courses[i]
		if _, dup := c.byCourse[course.ID]; dup {
			return nil, fmt.Errorf("duplicate course id %q", course.ID)
		}
		c.byCourse[course.ID] = course

		for j := range course.Scenarios {
			sc := &course.Scenarios[j]
			if sc.CourseID == "" {
				sc.CourseID = course.ID
			}
			if sc.CourseID != course.ID {
				return nil, fmt.Errorf("scenario %q belongs to %q, found under %q", sc.ID, sc.CourseID, course.ID)
			}
			if _, dup := c.byScenario[sc.ID]; dup {
				return nil, fmt.Errorf("duplicate scenario id %q", sc.ID)
			}
			if err := validateScenario(sc); err != nil {
				return nil, fmt.Errorf("scenario %q: %w", sc.ID, err)
			}
			c.byScenario[sc.ID] = sc
		}
	}

	return c, nil
}

func validateScenario(sc *Scenario) error {
	if len(sc.Options) < 2 {
		return fmt.Errorf("needs at least 2 options, has %d", len(sc.Options))
	}
	best := 0
	for _, o := range sc.Options {
		if o.IsBest {
			best++
		}
	}
	if best != 1 {
		return fmt.Errorf("needs exactly 1 best option, has %d", best)
	}
	for _, q := range sc.Recall {
		found := false
		for _, ch := range q.Choices {
			if ch.ID == q.CorrectChoiceID {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("recall question %q: correct choice %q not among choices", q.ID, q.CorrectChoiceID)
		}
	}
	return nil
}

// Courses returns all courses in sort order.
func (c *Catalog) Courses() []Course {
	return c.courses
}

// Course returns the course with the given id, or nil.
func (c *Catalog) Course(id string) *Course {
	return c.byCourse[id]
}

// Scenario returns the scenario with the given id, or nil.
func (c *Catalog) Scenario(id string) *Scenario {
	return c.byScenario[id]
}

// ScenarioCount returns the number of scenarios in a course, 0 if unknown.
func (c *Catalog) ScenarioCount(courseID string) int {
	course := c.byCourse[courseID]
	if course == nil {
		return 0
	}
	return len(course.Scenarios)
}

// NextScenario returns the scenario after the given one in course order,
// or nil if it is the last (or unknown).
func (c *Catalog) NextScenario(scenarioID string) *Scenario {
	sc := c.byScenario[scenarioID]
	if sc == nil {
		return nil
	}
	course := c.byCourse[sc.CourseID]
	for i := range course.Scenarios {
		if course.Scenarios[i].ID == scenarioID && i+1 < len(course.Scenarios) {
			return &course.Scenarios[i+1]
		}
	}
	return nil
}
