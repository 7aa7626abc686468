// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cogniplay/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldUserID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldAction, v))
}

// SessionType applies equality check predicate on the "session_type" field. It's identical to SessionTypeEQ.
func SessionType(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSessionType, v))
}

// StartingLevel applies equality check predicate on the "starting_level" field. It's identical to StartingLevelEQ.
func StartingLevel(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldStartingLevel, v))
}

// ExercisesCompleted applies equality check predicate on the "exercises_completed" field. It's identical to ExercisesCompletedEQ.
func ExercisesCompleted(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldExercisesCompleted, v))
}

// ScenariosCompleted applies equality check predicate on the "scenarios_completed" field. It's identical to ScenariosCompletedEQ.
func ScenariosCompleted(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldScenariosCompleted, v))
}

// AverageScore applies equality check predicate on the "average_score" field. It's identical to AverageScoreEQ.
func AverageScore(v float64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldAverageScore, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// Recommendation applies equality check predicate on the "recommendation" field. It's identical to RecommendationEQ.
func Recommendation(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldRecommendation, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContainsFold(FieldUserID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContainsFold(FieldAction, v))
}

// SessionTypeEQ applies the EQ predicate on the "session_type" field.
func SessionTypeEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSessionType, v))
}

// SessionTypeNEQ applies the NEQ predicate on the "session_type" field.
func SessionTypeNEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldSessionType, v))
}

// SessionTypeIn applies the In predicate on the "session_type" field.
func SessionTypeIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldSessionType, vs...))
}

// SessionTypeNotIn applies the NotIn predicate on the "session_type" field.
func SessionTypeNotIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldSessionType, vs...))
}

// SessionTypeGT applies the GT predicate on the "session_type" field.
func SessionTypeGT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldSessionType, v))
}

// SessionTypeGTE applies the GTE predicate on the "session_type" field.
func SessionTypeGTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldSessionType, v))
}

// SessionTypeLT applies the LT predicate on the "session_type" field.
func SessionTypeLT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldSessionType, v))
}

// SessionTypeLTE applies the LTE predicate on the "session_type" field.
func SessionTypeLTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldSessionType, v))
}

// SessionTypeContains applies the Contains predicate on the "session_type" field.
func SessionTypeContains(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContains(FieldSessionType, v))
}

// SessionTypeHasPrefix applies the HasPrefix predicate on the "session_type" field.
func SessionTypeHasPrefix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasPrefix(FieldSessionType, v))
}

// SessionTypeHasSuffix applies the HasSuffix predicate on the "session_type" field.
func SessionTypeHasSuffix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasSuffix(FieldSessionType, v))
}

// SessionTypeEqualFold applies the EqualFold predicate on the "session_type" field.
func SessionTypeEqualFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEqualFold(FieldSessionType, v))
}

// SessionTypeContainsFold applies the ContainsFold predicate on the "session_type" field.
func SessionTypeContainsFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContainsFold(FieldSessionType, v))
}

// StartingLevelEQ applies the EQ predicate on the "starting_level" field.
func StartingLevelEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldStartingLevel, v))
}

// StartingLevelNEQ applies the NEQ predicate on the "starting_level" field.
func StartingLevelNEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldStartingLevel, v))
}

// StartingLevelIn applies the In predicate on the "starting_level" field.
func StartingLevelIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldStartingLevel, vs...))
}

// StartingLevelNotIn applies the NotIn predicate on the "starting_level" field.
func StartingLevelNotIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldStartingLevel, vs...))
}

// StartingLevelGT applies the GT predicate on the "starting_level" field.
func StartingLevelGT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldStartingLevel, v))
}

// StartingLevelGTE applies the GTE predicate on the "starting_level" field.
func StartingLevelGTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldStartingLevel, v))
}

// StartingLevelLT applies the LT predicate on the "starting_level" field.
func StartingLevelLT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldStartingLevel, v))
}

// StartingLevelLTE applies the LTE predicate on the "starting_level" field.
func StartingLevelLTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldStartingLevel, v))
}

// ExercisesCompletedEQ applies the EQ predicate on the "exercises_completed" field.
func ExercisesCompletedEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldExercisesCompleted, v))
}

// ExercisesCompletedNEQ applies the NEQ predicate on the "exercises_completed" field.
func ExercisesCompletedNEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldExercisesCompleted, v))
}

// ExercisesCompletedIn applies the In predicate on the "exercises_completed" field.
func ExercisesCompletedIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldExercisesCompleted, vs...))
}

// ExercisesCompletedNotIn applies the NotIn predicate on the "exercises_completed" field.
func ExercisesCompletedNotIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldExercisesCompleted, vs...))
}

// ExercisesCompletedGT applies the GT predicate on the "exercises_completed" field.
func ExercisesCompletedGT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldExercisesCompleted, v))
}

// ExercisesCompletedGTE applies the GTE predicate on the "exercises_completed" field.
func ExercisesCompletedGTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldExercisesCompleted, v))
}

// ExercisesCompletedLT applies the LT predicate on the "exercises_completed" field.
func ExercisesCompletedLT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldExercisesCompleted, v))
}

// ExercisesCompletedLTE applies the LTE predicate on the "exercises_completed" field.
func ExercisesCompletedLTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldExercisesCompleted, v))
}

// ScenariosCompletedEQ applies the EQ predicate on the "scenarios_completed" field.
func ScenariosCompletedEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldScenariosCompleted, v))
}

// ScenariosCompletedNEQ applies the NEQ predicate on the "scenarios_completed" field.
func ScenariosCompletedNEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldScenariosCompleted, v))
}

// ScenariosCompletedIn applies the In predicate on the "scenarios_completed" field.
func ScenariosCompletedIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldScenariosCompleted, vs...))
}

// ScenariosCompletedNotIn applies the NotIn predicate on the "scenarios_completed" field.
func ScenariosCompletedNotIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldScenariosCompleted, vs...))
}

// ScenariosCompletedGT applies the GT predicate on the "scenarios_completed" field.
func ScenariosCompletedGT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldScenariosCompleted, v))
}

// ScenariosCompletedGTE applies the GTE predicate on the "scenarios_completed" field.
func ScenariosCompletedGTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldScenariosCompleted, v))
}

// ScenariosCompletedLT applies the LT predicate on the "scenarios_completed" field.
func ScenariosCompletedLT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldScenariosCompleted, v))
}

// ScenariosCompletedLTE applies the LTE predicate on the "scenarios_completed" field.
func ScenariosCompletedLTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldScenariosCompleted, v))
}

// AverageScoreEQ applies the EQ predicate on the "average_score" field.
func AverageScoreEQ(v float64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldAverageScore, v))
}

// AverageScoreNEQ applies the NEQ predicate on the "average_score" field.
func AverageScoreNEQ(v float64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldAverageScore, v))
}

// AverageScoreIn applies the In predicate on the "average_score" field.
func AverageScoreIn(vs ...float64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldAverageScore, vs...))
}

// AverageScoreNotIn applies the NotIn predicate on the "average_score" field.
func AverageScoreNotIn(vs ...float64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldAverageScore, vs...))
}

// AverageScoreGT applies the GT predicate on the "average_score" field.
func AverageScoreGT(v float64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldAverageScore, v))
}

// AverageScoreGTE applies the GTE predicate on the "average_score" field.
func AverageScoreGTE(v float64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldAverageScore, v))
}

// AverageScoreLT applies the LT predicate on the "average_score" field.
func AverageScoreLT(v float64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldAverageScore, v))
}

// AverageScoreLTE applies the LTE predicate on the "average_score" field.
func AverageScoreLTE(v float64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldAverageScore, v))
}

// AverageScoreIsNil applies the IsNil predicate on the "average_score" field.
func AverageScoreIsNil() predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIsNull(FieldAverageScore))
}

// AverageScoreNotNil applies the NotNil predicate on the "average_score" field.
func AverageScoreNotNil() predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotNull(FieldAverageScore))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldDurationSecs, v))
}

// RecommendationEQ applies the EQ predicate on the "recommendation" field.
func RecommendationEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldRecommendation, v))
}

// RecommendationNEQ applies the NEQ predicate on the "recommendation" field.
func RecommendationNEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldRecommendation, v))
}

// RecommendationIn applies the In predicate on the "recommendation" field.
func RecommendationIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldRecommendation, vs...))
}

// RecommendationNotIn applies the NotIn predicate on the "recommendation" field.
func RecommendationNotIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldRecommendation, vs...))
}

// RecommendationGT applies the GT predicate on the "recommendation" field.
func RecommendationGT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldRecommendation, v))
}

// RecommendationGTE applies the GTE predicate on the "recommendation" field.
func RecommendationGTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldRecommendation, v))
}

// RecommendationLT applies the LT predicate on the "recommendation" field.
func RecommendationLT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldRecommendation, v))
}

// RecommendationLTE applies the LTE predicate on the "recommendation" field.
func RecommendationLTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldRecommendation, v))
}

// RecommendationContains applies the Contains predicate on the "recommendation" field.
func RecommendationContains(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContains(FieldRecommendation, v))
}

// RecommendationHasPrefix applies the HasPrefix predicate on the "recommendation" field.
func RecommendationHasPrefix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasPrefix(FieldRecommendation, v))
}

// RecommendationHasSuffix applies the HasSuffix predicate on the "recommendation" field.
func RecommendationHasSuffix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasSuffix(FieldRecommendation, v))
}

// RecommendationEqualFold applies the EqualFold predicate on the "recommendation" field.
func RecommendationEqualFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEqualFold(FieldRecommendation, v))
}

// RecommendationContainsFold applies the ContainsFold predicate on the "recommendation" field.
func RecommendationContainsFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContainsFold(FieldRecommendation, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionEvent) predicate.SessionEvent {
	return predicate.SessionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionEvent) predicate.SessionEvent {
	return predicate.SessionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionEvent) predicate.SessionEvent {
	return predicate.SessionEvent(sql.NotPredicates(p))
}
