package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CourseProgress tracks which scenarios of a course a user has completed.
// completed_scenarios is a set: membership is exact-match on scenario id
// and insertion order carries no meaning.
type CourseProgress struct {
	ent.Schema
}

func (CourseProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("course_id").NotEmpty(),
		field.JSON("completed_scenarios", []string{}),
		field.Float("mastery_score").
			Default(0).
			Comment("completed / total, recomputed on every addition"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set once when the completed set reaches the course size, never cleared"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (CourseProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "course_id").Unique(),
	}
}
