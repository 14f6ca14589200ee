// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Achievement is the predicate function for achievement builders.
type Achievement func(*sql.Selector)

// ActivityDay is the predicate function for activityday builders.
type ActivityDay func(*sql.Selector)

// CompletionEvent is the predicate function for completionevent builders.
type CompletionEvent func(*sql.Selector)

// CourseProgress is the predicate function for courseprogress builders.
type CourseProgress func(*sql.Selector)

// ReviewState is the predicate function for reviewstate builders.
type ReviewState func(*sql.Selector)

// UserSkill is the predicate function for userskill builders.
type UserSkill func(*sql.Selector)
