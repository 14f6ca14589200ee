package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityDay accumulates minutes spent on one calendar day. The day key is
// a YYYY-MM-DD string in the profile timezone; the streak is derived from
// contiguous rows.
type ActivityDay struct {
	ent.Schema
}

func (ActivityDay) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("day").
			NotEmpty().
			MaxLen(10).
			Comment("Calendar day as YYYY-MM-DD in the profile timezone"),
		field.Int("minutes").
			Default(0).
			NonNegative(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ActivityDay) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "day").Unique(),
	}
}
