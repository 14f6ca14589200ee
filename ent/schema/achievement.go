package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Achievement records an unlocked badge. Row existence means "unlocked";
// unlocks are monotonic and never revoked. The composite unique index makes
// the unlock upsert idempotent.
type Achievement struct {
	ent.Schema
}

func (Achievement) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("badge_id").NotEmpty(),
		field.Time("unlocked_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Achievement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "badge_id").Unique(),
	}
}
