package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserSkill holds a user's mastery for one skill from the fixed skill graph.
// Mastery is clamped to [0,1] and only ever moves upward.
type UserSkill struct {
	ent.Schema
}

func (UserSkill) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("skill_id").NotEmpty(),
		field.Float("mastery").
			Default(0).
			Min(0).
			Max(1),
		field.String("status").
			Default("unlocked").
			Comment(`"mastered" once mastery >= 0.8, else "unlocked"`),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (UserSkill) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "skill_id").Unique(),
	}
}
