package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScenarioEvent records one completed role-playing scenario.
type ScenarioEvent struct {
	ent.Schema
}

func (ScenarioEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ScenarioEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the session this scenario ran in"),
		field.String("user_id").
			NotEmpty(),
		field.String("scenario_id").
			NotEmpty(),
		field.String("scenario_type").
			NotEmpty().
			Comment("negotiation, problem_solving, social_interaction, leadership, creative_thinking"),
		field.Int("difficulty").
			Comment("Level 1-5 at which the scenario was generated"),
		field.Float("average_score").
			Comment("Mean decision quality 0-100 across all turns"),
		field.Int("total_turns").
			Default(0),
		field.String("performance_grade").
			Default("").
			Comment("Letter grade A-F derived from the average score"),
	}
}

func (ScenarioEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id"),
		index.Fields("scenario_type"),
	}
}
