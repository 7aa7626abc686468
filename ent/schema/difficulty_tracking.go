package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DifficultyTracking holds the mutable adaptive-difficulty state for one
// user. Unlike the event tables this row is updated in place; the event
// log carries the history.
type DifficultyTracking struct {
	ent.Schema
}

func (DifficultyTracking) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique(),
		field.Int("level").
			Default(1).
			Comment("Current difficulty level 1-5"),
		field.Int("consecutive_successes").
			Default(0),
		field.Int("consecutive_failures").
			Default(0),
		field.String("last_outcome").
			Default("").
			Comment("success, failure or neutral"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (DifficultyTracking) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
