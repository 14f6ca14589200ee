package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompletionEvent is an append-only record of a finished scenario session.
// The sequence comes from the store's global counter so events stay totally
// ordered regardless of wall-clock skew.
type CompletionEvent struct {
	ent.Schema
}

func (CompletionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.String("user_id").NotEmpty(),
		field.String("course_id").NotEmpty(),
		field.String("scenario_id").NotEmpty(),
		field.Float("score"),
		field.Int("quality").Range(0, 5),
		field.Bool("first_completion"),
		field.String("session_id").Optional(),
	}
}

func (CompletionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sequence"),
		index.Fields("user_id", "timestamp"),
	}
}
