// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/cogniplay/ent/difficultytracking"
	"github.com/abhisek/cogniplay/ent/exerciseevent"
	"github.com/abhisek/cogniplay/ent/llmrequestevent"
	"github.com/abhisek/cogniplay/ent/scenarioevent"
	"github.com/abhisek/cogniplay/ent/schema"
	"github.com/abhisek/cogniplay/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	difficultytrackingFields := schema.DifficultyTracking{}.Fields()
	_ = difficultytrackingFields
	// difficultytrackingDescUserID is the schema descriptor for user_id field.
	difficultytrackingDescUserID := difficultytrackingFields[0].Descriptor()
	// difficultytracking.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	difficultytracking.UserIDValidator = difficultytrackingDescUserID.Validators[0].(func(string) error)
	// difficultytrackingDescLevel is the schema descriptor for level field.
	difficultytrackingDescLevel := difficultytrackingFields[1].Descriptor()
	// difficultytracking.DefaultLevel holds the default value on creation for the level field.
	difficultytracking.DefaultLevel = difficultytrackingDescLevel.Default.(int)
	// difficultytrackingDescConsecutiveSuccesses is the schema descriptor for consecutive_successes field.
	difficultytrackingDescConsecutiveSuccesses := difficultytrackingFields[2].Descriptor()
	// difficultytracking.DefaultConsecutiveSuccesses holds the default value on creation for the consecutive_successes field.
	difficultytracking.DefaultConsecutiveSuccesses = difficultytrackingDescConsecutiveSuccesses.Default.(int)
	// difficultytrackingDescConsecutiveFailures is the schema descriptor for consecutive_failures field.
	difficultytrackingDescConsecutiveFailures := difficultytrackingFields[3].Descriptor()
	// difficultytracking.DefaultConsecutiveFailures holds the default value on creation for the consecutive_failures field.
	difficultytracking.DefaultConsecutiveFailures = difficultytrackingDescConsecutiveFailures.Default.(int)
	// difficultytrackingDescLastOutcome is the schema descriptor for last_outcome field.
	difficultytrackingDescLastOutcome := difficultytrackingFields[4].Descriptor()
	// difficultytracking.DefaultLastOutcome holds the default value on creation for the last_outcome field.
	difficultytracking.DefaultLastOutcome = difficultytrackingDescLastOutcome.Default.(string)
	// difficultytrackingDescUpdatedAt is the schema descriptor for updated_at field.
	difficultytrackingDescUpdatedAt := difficultytrackingFields[5].Descriptor()
	// difficultytracking.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	difficultytracking.DefaultUpdatedAt = difficultytrackingDescUpdatedAt.Default.(func() time.Time)
	// difficultytracking.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	difficultytracking.UpdateDefaultUpdatedAt = difficultytrackingDescUpdatedAt.UpdateDefault.(func() time.Time)
	exerciseeventMixin := schema.ExerciseEvent{}.Mixin()
	exerciseeventMixinFields0 := exerciseeventMixin[0].Fields()
	_ = exerciseeventMixinFields0
	exerciseeventFields := schema.ExerciseEvent{}.Fields()
	_ = exerciseeventFields
	// exerciseeventDescTimestamp is the schema descriptor for timestamp field.
	exerciseeventDescTimestamp := exerciseeventMixinFields0[1].Descriptor()
	// exerciseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	exerciseevent.DefaultTimestamp = exerciseeventDescTimestamp.Default.(func() time.Time)
	// exerciseeventDescSessionID is the schema descriptor for session_id field.
	exerciseeventDescSessionID := exerciseeventFields[0].Descriptor()
	// exerciseevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	exerciseevent.SessionIDValidator = exerciseeventDescSessionID.Validators[0].(func(string) error)
	// exerciseeventDescUserID is the schema descriptor for user_id field.
	exerciseeventDescUserID := exerciseeventFields[1].Descriptor()
	// exerciseevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	exerciseevent.UserIDValidator = exerciseeventDescUserID.Validators[0].(func(string) error)
	// exerciseeventDescExerciseID is the schema descriptor for exercise_id field.
	exerciseeventDescExerciseID := exerciseeventFields[2].Descriptor()
	// exerciseevent.ExerciseIDValidator is a validator for the "exercise_id" field. It is called by the builders before save.
	exerciseevent.ExerciseIDValidator = exerciseeventDescExerciseID.Validators[0].(func(string) error)
	// exerciseeventDescCategory is the schema descriptor for category field.
	exerciseeventDescCategory := exerciseeventFields[3].Descriptor()
	// exerciseevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	exerciseevent.CategoryValidator = exerciseeventDescCategory.Validators[0].(func(string) error)
	// exerciseeventDescExerciseType is the schema descriptor for exercise_type field.
	exerciseeventDescExerciseType := exerciseeventFields[4].Descriptor()
	// exerciseevent.DefaultExerciseType holds the default value on creation for the exercise_type field.
	exerciseevent.DefaultExerciseType = exerciseeventDescExerciseType.Default.(string)
	// exerciseeventDescAccuracy is the schema descriptor for accuracy field.
	exerciseeventDescAccuracy := exerciseeventFields[7].Descriptor()
	// exerciseevent.DefaultAccuracy holds the default value on creation for the accuracy field.
	exerciseevent.DefaultAccuracy = exerciseeventDescAccuracy.Default.(float64)
	// exerciseeventDescCompletionTimeSecs is the schema descriptor for completion_time_secs field.
	exerciseeventDescCompletionTimeSecs := exerciseeventFields[9].Descriptor()
	// exerciseevent.DefaultCompletionTimeSecs holds the default value on creation for the completion_time_secs field.
	exerciseevent.DefaultCompletionTimeSecs = exerciseeventDescCompletionTimeSecs.Default.(int)
	// exerciseeventDescHintsUsed is the schema descriptor for hints_used field.
	exerciseeventDescHintsUsed := exerciseeventFields[10].Descriptor()
	// exerciseevent.DefaultHintsUsed holds the default value on creation for the hints_used field.
	exerciseevent.DefaultHintsUsed = exerciseeventDescHintsUsed.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	scenarioeventMixin := schema.ScenarioEvent{}.Mixin()
	scenarioeventMixinFields0 := scenarioeventMixin[0].Fields()
	_ = scenarioeventMixinFields0
	scenarioeventFields := schema.ScenarioEvent{}.Fields()
	_ = scenarioeventFields
	// scenarioeventDescTimestamp is the schema descriptor for timestamp field.
	scenarioeventDescTimestamp := scenarioeventMixinFields0[1].Descriptor()
	// scenarioevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	scenarioevent.DefaultTimestamp = scenarioeventDescTimestamp.Default.(func() time.Time)
	// scenarioeventDescSessionID is the schema descriptor for session_id field.
	scenarioeventDescSessionID := scenarioeventFields[0].Descriptor()
	// scenarioevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	scenarioevent.SessionIDValidator = scenarioeventDescSessionID.Validators[0].(func(string) error)
	// scenarioeventDescUserID is the schema descriptor for user_id field.
	scenarioeventDescUserID := scenarioeventFields[1].Descriptor()
	// scenarioevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	scenarioevent.UserIDValidator = scenarioeventDescUserID.Validators[0].(func(string) error)
	// scenarioeventDescScenarioID is the schema descriptor for scenario_id field.
	scenarioeventDescScenarioID := scenarioeventFields[2].Descriptor()
	// scenarioevent.ScenarioIDValidator is a validator for the "scenario_id" field. It is called by the builders before save.
	scenarioevent.ScenarioIDValidator = scenarioeventDescScenarioID.Validators[0].(func(string) error)
	// scenarioeventDescScenarioType is the schema descriptor for scenario_type field.
	scenarioeventDescScenarioType := scenarioeventFields[3].Descriptor()
	// scenarioevent.ScenarioTypeValidator is a validator for the "scenario_type" field. It is called by the builders before save.
	scenarioevent.ScenarioTypeValidator = scenarioeventDescScenarioType.Validators[0].(func(string) error)
	// scenarioeventDescTotalTurns is the schema descriptor for total_turns field.
	scenarioeventDescTotalTurns := scenarioeventFields[6].Descriptor()
	// scenarioevent.DefaultTotalTurns holds the default value on creation for the total_turns field.
	scenarioevent.DefaultTotalTurns = scenarioeventDescTotalTurns.Default.(int)
	// scenarioeventDescPerformanceGrade is the schema descriptor for performance_grade field.
	scenarioeventDescPerformanceGrade := scenarioeventFields[7].Descriptor()
	// scenarioevent.DefaultPerformanceGrade holds the default value on creation for the performance_grade field.
	scenarioevent.DefaultPerformanceGrade = scenarioeventDescPerformanceGrade.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescUserID is the schema descriptor for user_id field.
	sessioneventDescUserID := sessioneventFields[1].Descriptor()
	// sessionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionevent.UserIDValidator = sessioneventDescUserID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescSessionType is the schema descriptor for session_type field.
	sessioneventDescSessionType := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultSessionType holds the default value on creation for the session_type field.
	sessionevent.DefaultSessionType = sessioneventDescSessionType.Default.(string)
	// sessioneventDescStartingLevel is the schema descriptor for starting_level field.
	sessioneventDescStartingLevel := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultStartingLevel holds the default value on creation for the starting_level field.
	sessionevent.DefaultStartingLevel = sessioneventDescStartingLevel.Default.(int)
	// sessioneventDescExercisesCompleted is the schema descriptor for exercises_completed field.
	sessioneventDescExercisesCompleted := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultExercisesCompleted holds the default value on creation for the exercises_completed field.
	sessionevent.DefaultExercisesCompleted = sessioneventDescExercisesCompleted.Default.(int)
	// sessioneventDescScenariosCompleted is the schema descriptor for scenarios_completed field.
	sessioneventDescScenariosCompleted := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultScenariosCompleted holds the default value on creation for the scenarios_completed field.
	sessionevent.DefaultScenariosCompleted = sessioneventDescScenariosCompleted.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	// sessioneventDescRecommendation is the schema descriptor for recommendation field.
	sessioneventDescRecommendation := sessioneventFields[9].Descriptor()
	// sessionevent.DefaultRecommendation holds the default value on creation for the recommendation field.
	sessionevent.DefaultRecommendation = sessioneventDescRecommendation.Default.(string)
}
