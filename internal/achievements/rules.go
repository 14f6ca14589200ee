package achievements

import "strings"

// Context is the user progress snapshot the rules are evaluated over.
type Context struct {
	// Completed is the user's full completed-scenario id list, across
	// every course. Count rules read this.
	Completed []string
	// CourseCompleted is the completed set of the course just played and
	// TotalScenarios its scenario count; the full-course rule reads these.
	CourseCompleted []string
	TotalScenarios  int
	// ScenarioTags and ScenarioTitle describe the scenario just finished.
	ScenarioTags  []string
	ScenarioTitle string
	// Streak is the consecutive-day streak including today.
	Streak int
}

func (c Context) hasTag(tag string) bool {
	for _, t := range c.ScenarioTags {
		if t == tag {
			return true
		}
	}
	return false
}

func (c Context) titleContains(sub string) bool {
	return strings.Contains(strings.ToLower(c.ScenarioTitle), sub)
}

// Rule pairs a badge id with its qualifying predicate.
type Rule struct {
	Badge string
	Check func(Context) bool
}

// Rules returns the full rule catalog. Every rule is re-evaluated on every
// completion; the idempotent unlock makes that cheap and safe.
//
// Topic rules match on tag membership OR a case-insensitive title
// substring. The title fallback is intentional, not redundant: older
// published scenarios carry no tags.
func Rules() []Rule {
	return []Rule{
		{BadgeFirstSteps, func(c Context) bool {
			return len(c.Completed) >= 1
		}},
		{BadgeSteadyLearner, func(c Context) bool {
			return len(c.Completed) >= 3
		}},
		{BadgeFinancialMaster, func(c Context) bool {
			return c.TotalScenarios > 0 && len(c.CourseCompleted) >= c.TotalScenarios
		}},
		{BadgeDebtExpert, func(c Context) bool {
			return c.hasTag("deuda") || c.titleContains("tarjeta") || c.titleContains("deuda")
		}},
		{BadgeSaver, func(c Context) bool {
			return c.hasTag("ahorro") || c.titleContains("fondo") || c.titleContains("ahorro")
		}},
		{BadgeStreak3, func(c Context) bool {
			return c.Streak >= 3
		}},
		{BadgeStreak7, func(c Context) bool {
			return c.Streak >= 7
		}},
	}
}
