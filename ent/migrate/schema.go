// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DifficultyTrackingsColumns holds the columns for the "difficulty_trackings" table.
	DifficultyTrackingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "level", Type: field.TypeInt, Default: 1},
		{Name: "consecutive_successes", Type: field.TypeInt, Default: 0},
		{Name: "consecutive_failures", Type: field.TypeInt, Default: 0},
		{Name: "last_outcome", Type: field.TypeString, Default: ""},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DifficultyTrackingsTable holds the schema information for the "difficulty_trackings" table.
	DifficultyTrackingsTable = &schema.Table{
		Name:       "difficulty_trackings",
		Columns:    DifficultyTrackingsColumns,
		PrimaryKey: []*schema.Column{DifficultyTrackingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "difficultytracking_user_id",
				Unique:  true,
				Columns: []*schema.Column{DifficultyTrackingsColumns[1]},
			},
		},
	}
	// ExerciseEventsColumns holds the columns for the "exercise_events" table.
	ExerciseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "exercise_id", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "exercise_type", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "accuracy", Type: field.TypeFloat64, Default: 0},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "completion_time_secs", Type: field.TypeInt, Default: 0},
		{Name: "hints_used", Type: field.TypeInt, Default: 0},
	}
	// ExerciseEventsTable holds the schema information for the "exercise_events" table.
	ExerciseEventsTable = &schema.Table{
		Name:       "exercise_events",
		Columns:    ExerciseEventsColumns,
		PrimaryKey: []*schema.Column{ExerciseEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "exerciseevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ExerciseEventsColumns[1]},
			},
			{
				Name:    "exerciseevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ExerciseEventsColumns[2]},
			},
			{
				Name:    "exerciseevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ExerciseEventsColumns[3]},
			},
			{
				Name:    "exerciseevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{ExerciseEventsColumns[4]},
			},
			{
				Name:    "exerciseevent_category",
				Unique:  false,
				Columns: []*schema.Column{ExerciseEventsColumns[6]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// ScenarioEventsColumns holds the columns for the "scenario_events" table.
	ScenarioEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "scenario_id", Type: field.TypeString},
		{Name: "scenario_type", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "average_score", Type: field.TypeFloat64},
		{Name: "total_turns", Type: field.TypeInt, Default: 0},
		{Name: "performance_grade", Type: field.TypeString, Default: ""},
	}
	// ScenarioEventsTable holds the schema information for the "scenario_events" table.
	ScenarioEventsTable = &schema.Table{
		Name:       "scenario_events",
		Columns:    ScenarioEventsColumns,
		PrimaryKey: []*schema.Column{ScenarioEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scenarioevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ScenarioEventsColumns[1]},
			},
			{
				Name:    "scenarioevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ScenarioEventsColumns[2]},
			},
			{
				Name:    "scenarioevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ScenarioEventsColumns[3]},
			},
			{
				Name:    "scenarioevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{ScenarioEventsColumns[4]},
			},
			{
				Name:    "scenarioevent_scenario_type",
				Unique:  false,
				Columns: []*schema.Column{ScenarioEventsColumns[6]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "session_type", Type: field.TypeString, Default: ""},
		{Name: "starting_level", Type: field.TypeInt, Default: 0},
		{Name: "exercises_completed", Type: field.TypeInt, Default: 0},
		{Name: "scenarios_completed", Type: field.TypeInt, Default: 0},
		{Name: "average_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "recommendation", Type: field.TypeString, Default: ""},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DifficultyTrackingsTable,
		ExerciseEventsTable,
		LlmRequestEventsTable,
		ScenarioEventsTable,
		SessionEventsTable,
	}
)

func init() {
}
