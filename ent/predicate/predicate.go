// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DifficultyTracking is the predicate function for difficultytracking builders.
type DifficultyTracking func(*sql.Selector)

// ExerciseEvent is the predicate function for exerciseevent builders.
type ExerciseEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// ScenarioEvent is the predicate function for scenarioevent builders.
type ScenarioEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)
