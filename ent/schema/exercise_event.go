package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExerciseEvent records one completed cognitive exercise.
type ExerciseEvent struct {
	ent.Schema
}

func (ExerciseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ExerciseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the session this exercise ran in"),
		field.String("user_id").
			NotEmpty(),
		field.String("exercise_id").
			NotEmpty(),
		field.String("category").
			NotEmpty().
			Comment("memory, logic, problem_solving, pattern_recognition, attention"),
		field.String("exercise_type").
			Default("").
			Comment("Concrete template within the category, e.g. word_list"),
		field.Int("difficulty").
			Comment("Level 1-5 at which the exercise was generated"),
		field.Float("score").
			Comment("Final score 0-100 after time and hint adjustments"),
		field.Float("accuracy").
			Default(0).
			Comment("Correctness-only score, 0 or 100"),
		field.Bool("is_correct"),
		field.Int("completion_time_secs").
			Default(0),
		field.Int("hints_used").
			Default(0),
	}
}

func (ExerciseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id"),
		index.Fields("category"),
	}
}
