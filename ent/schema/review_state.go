package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewState holds the spaced repetition state for one (user, scenario)
// pair. Created on first completion, updated on every later completion,
// never deleted while the account exists.
type ReviewState struct {
	ent.Schema
}

func (ReviewState) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("course_id").NotEmpty(),
		field.String("scenario_id").NotEmpty(),
		field.Int("repetitions").
			Default(0).
			NonNegative(),
		field.Int("interval_days").
			Default(1).
			Positive(),
		field.Float("ease_factor").
			Default(2.5).
			Min(1.3).
			Comment("SM-2 ease factor, bounded below at 1.3"),
		field.Time("next_due_at"),
		field.Int("last_quality").
			Default(0).
			Range(0, 5),
		field.Float("last_score").
			Default(0),
		field.Time("last_attempt_at").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (ReviewState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "scenario_id").Unique(),
		index.Fields("user_id", "next_due_at"),
	}
}
