package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end/cancel).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("user_id").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("start, end or cancel"),
		field.String("session_type").
			Default("").
			Comment("full, exercise_only or scenario_only (on start only)"),
		field.Int("starting_level").
			Default(0).
			Comment("Difficulty level when the session began (on start only)"),
		field.Int("exercises_completed").
			Default(0).
			Comment("Total exercises (on end only)"),
		field.Int("scenarios_completed").
			Default(0).
			Comment("Total scenarios (on end only)"),
		field.Float("average_score").
			Optional().
			Nillable().
			Comment("Mean outcome score (on end only; absent when no outcomes)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
		field.String("recommendation").
			Default("").
			Comment("Next-step guidance shown at session end"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
