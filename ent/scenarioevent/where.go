// Code generated by ent, DO NOT EDIT.

package scenarioevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cogniplay/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldUserID, v))
}

// ScenarioID applies equality check predicate on the "scenario_id" field. It's identical to ScenarioIDEQ.
func ScenarioID(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldScenarioID, v))
}

// ScenarioType applies equality check predicate on the "scenario_type" field. It's identical to ScenarioTypeEQ.
func ScenarioType(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldScenarioType, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldDifficulty, v))
}

// AverageScore applies equality check predicate on the "average_score" field. It's identical to AverageScoreEQ.
func AverageScore(v float64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldAverageScore, v))
}

// TotalTurns applies equality check predicate on the "total_turns" field. It's identical to TotalTurnsEQ.
func TotalTurns(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldTotalTurns, v))
}

// PerformanceGrade applies equality check predicate on the "performance_grade" field. It's identical to PerformanceGradeEQ.
func PerformanceGrade(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldPerformanceGrade, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldContainsFold(FieldUserID, v))
}

// ScenarioIDEQ applies the EQ predicate on the "scenario_id" field.
func ScenarioIDEQ(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldScenarioID, v))
}

// ScenarioIDNEQ applies the NEQ predicate on the "scenario_id" field.
func ScenarioIDNEQ(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldScenarioID, v))
}

// ScenarioIDIn applies the In predicate on the "scenario_id" field.
func ScenarioIDIn(vs ...string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldScenarioID, vs...))
}

// ScenarioIDNotIn applies the NotIn predicate on the "scenario_id" field.
func ScenarioIDNotIn(vs ...string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldScenarioID, vs...))
}

// ScenarioIDGT applies the GT predicate on the "scenario_id" field.
func ScenarioIDGT(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldScenarioID, v))
}

// ScenarioIDGTE applies the GTE predicate on the "scenario_id" field.
func ScenarioIDGTE(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldScenarioID, v))
}

// ScenarioIDLT applies the LT predicate on the "scenario_id" field.
func ScenarioIDLT(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldScenarioID, v))
}

// ScenarioIDLTE applies the LTE predicate on the "scenario_id" field.
func ScenarioIDLTE(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldScenarioID, v))
}

// ScenarioIDContains applies the Contains predicate on the "scenario_id" field.
func ScenarioIDContains(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldContains(FieldScenarioID, v))
}

// ScenarioIDHasPrefix applies the HasPrefix predicate on the "scenario_id" field.
func ScenarioIDHasPrefix(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldHasPrefix(FieldScenarioID, v))
}

// ScenarioIDHasSuffix applies the HasSuffix predicate on the "scenario_id" field.
func ScenarioIDHasSuffix(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldHasSuffix(FieldScenarioID, v))
}

// ScenarioIDEqualFold applies the EqualFold predicate on the "scenario_id" field.
func ScenarioIDEqualFold(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEqualFold(FieldScenarioID, v))
}

// ScenarioIDContainsFold applies the ContainsFold predicate on the "scenario_id" field.
func ScenarioIDContainsFold(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldContainsFold(FieldScenarioID, v))
}

// ScenarioTypeEQ applies the EQ predicate on the "scenario_type" field.
func ScenarioTypeEQ(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldScenarioType, v))
}

// ScenarioTypeNEQ applies the NEQ predicate on the "scenario_type" field.
func ScenarioTypeNEQ(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldScenarioType, v))
}

// ScenarioTypeIn applies the In predicate on the "scenario_type" field.
func ScenarioTypeIn(vs ...string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldScenarioType, vs...))
}

// ScenarioTypeNotIn applies the NotIn predicate on the "scenario_type" field.
func ScenarioTypeNotIn(vs ...string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldScenarioType, vs...))
}

// ScenarioTypeGT applies the GT predicate on the "scenario_type" field.
func ScenarioTypeGT(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldScenarioType, v))
}

// ScenarioTypeGTE applies the GTE predicate on the "scenario_type" field.
func ScenarioTypeGTE(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldScenarioType, v))
}

// ScenarioTypeLT applies the LT predicate on the "scenario_type" field.
func ScenarioTypeLT(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldScenarioType, v))
}

// ScenarioTypeLTE applies the LTE predicate on the "scenario_type" field.
func ScenarioTypeLTE(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldScenarioType, v))
}

// ScenarioTypeContains applies the Contains predicate on the "scenario_type" field.
func ScenarioTypeContains(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldContains(FieldScenarioType, v))
}

// ScenarioTypeHasPrefix applies the HasPrefix predicate on the "scenario_type" field.
func ScenarioTypeHasPrefix(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldHasPrefix(FieldScenarioType, v))
}

// ScenarioTypeHasSuffix applies the HasSuffix predicate on the "scenario_type" field.
func ScenarioTypeHasSuffix(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldHasSuffix(FieldScenarioType, v))
}

// ScenarioTypeEqualFold applies the EqualFold predicate on the "scenario_type" field.
func ScenarioTypeEqualFold(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEqualFold(FieldScenarioType, v))
}

// ScenarioTypeContainsFold applies the ContainsFold predicate on the "scenario_type" field.
func ScenarioTypeContainsFold(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldContainsFold(FieldScenarioType, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldDifficulty, v))
}

// AverageScoreEQ applies the EQ predicate on the "average_score" field.
func AverageScoreEQ(v float64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldAverageScore, v))
}

// AverageScoreNEQ applies the NEQ predicate on the "average_score" field.
func AverageScoreNEQ(v float64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldAverageScore, v))
}

// AverageScoreIn applies the In predicate on the "average_score" field.
func AverageScoreIn(vs ...float64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldAverageScore, vs...))
}

// AverageScoreNotIn applies the NotIn predicate on the "average_score" field.
func AverageScoreNotIn(vs ...float64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldAverageScore, vs...))
}

// AverageScoreGT applies the GT predicate on the "average_score" field.
func AverageScoreGT(v float64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldAverageScore, v))
}

// AverageScoreGTE applies the GTE predicate on the "average_score" field.
func AverageScoreGTE(v float64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldAverageScore, v))
}

// AverageScoreLT applies the LT predicate on the "average_score" field.
func AverageScoreLT(v float64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldAverageScore, v))
}

// AverageScoreLTE applies the LTE predicate on the "average_score" field.
func AverageScoreLTE(v float64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldAverageScore, v))
}

// TotalTurnsEQ applies the EQ predicate on the "total_turns" field.
func TotalTurnsEQ(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldTotalTurns, v))
}

// TotalTurnsNEQ applies the NEQ predicate on the "total_turns" field.
func TotalTurnsNEQ(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldTotalTurns, v))
}

// TotalTurnsIn applies the In predicate on the "total_turns" field.
func TotalTurnsIn(vs ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldTotalTurns, vs...))
}

// TotalTurnsNotIn applies the NotIn predicate on the "total_turns" field.
func TotalTurnsNotIn(vs ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldTotalTurns, vs...))
}

// TotalTurnsGT applies the GT predicate on the "total_turns" field.
func TotalTurnsGT(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldTotalTurns, v))
}

// TotalTurnsGTE applies the GTE predicate on the "total_turns" field.
func TotalTurnsGTE(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldTotalTurns, v))
}

// TotalTurnsLT applies the LT predicate on the "total_turns" field.
func TotalTurnsLT(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldTotalTurns, v))
}

// TotalTurnsLTE applies the LTE predicate on the "total_turns" field.
func TotalTurnsLTE(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldTotalTurns, v))
}

// PerformanceGradeEQ applies the EQ predicate on the "performance_grade" field.
func PerformanceGradeEQ(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldPerformanceGrade, v))
}

// PerformanceGradeNEQ applies the NEQ predicate on the "performance_grade" field.
func PerformanceGradeNEQ(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldPerformanceGrade, v))
}

// PerformanceGradeIn applies the In predicate on the "performance_grade" field.
func PerformanceGradeIn(vs ...string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldPerformanceGrade, vs...))
}

// PerformanceGradeNotIn applies the NotIn predicate on the "performance_grade" field.
func PerformanceGradeNotIn(vs ...string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldPerformanceGrade, vs...))
}

// PerformanceGradeGT applies the GT predicate on the "performance_grade" field.
func PerformanceGradeGT(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldPerformanceGrade, v))
}

// PerformanceGradeGTE applies the GTE predicate on the "performance_grade" field.
func PerformanceGradeGTE(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldPerformanceGrade, v))
}

// PerformanceGradeLT applies the LT predicate on the "performance_grade" field.
func PerformanceGradeLT(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldPerformanceGrade, v))
}

// PerformanceGradeLTE applies the LTE predicate on the "performance_grade" field.
func PerformanceGradeLTE(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldPerformanceGrade, v))
}

// PerformanceGradeContains applies the Contains predicate on the "performance_grade" field.
func PerformanceGradeContains(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldContains(FieldPerformanceGrade, v))
}

// PerformanceGradeHasPrefix applies the HasPrefix predicate on the "performance_grade" field.
func PerformanceGradeHasPrefix(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldHasPrefix(FieldPerformanceGrade, v))
}

// PerformanceGradeHasSuffix applies the HasSuffix predicate on the "performance_grade" field.
func PerformanceGradeHasSuffix(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldHasSuffix(FieldPerformanceGrade, v))
}

// PerformanceGradeEqualFold applies the EqualFold predicate on the "performance_grade" field.
func PerformanceGradeEqualFold(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEqualFold(FieldPerformanceGrade, v))
}

// PerformanceGradeContainsFold applies the ContainsFold predicate on the "performance_grade" field.
func PerformanceGradeContainsFold(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldContainsFold(FieldPerformanceGrade, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScenarioEvent) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScenarioEvent) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScenarioEvent) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.NotPredicates(p))
}
