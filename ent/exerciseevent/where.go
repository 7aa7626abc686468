// Code generated by ent, DO NOT EDIT.

package exerciseevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cogniplay/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldUserID, v))
}

// ExerciseID applies equality check predicate on the "exercise_id" field. It's identical to ExerciseIDEQ.
func ExerciseID(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldExerciseID, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldCategory, v))
}

// ExerciseType applies equality check predicate on the "exercise_type" field. It's identical to ExerciseTypeEQ.
func ExerciseType(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldExerciseType, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldDifficulty, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldScore, v))
}

// Accuracy applies equality check predicate on the "accuracy" field. It's identical to AccuracyEQ.
func Accuracy(v float64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldAccuracy, v))
}

// IsCorrect applies equality check predicate on the "is_correct" field. It's identical to IsCorrectEQ.
func IsCorrect(v bool) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldIsCorrect, v))
}

// CompletionTimeSecs applies equality check predicate on the "completion_time_secs" field. It's identical to CompletionTimeSecsEQ.
func CompletionTimeSecs(v int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldCompletionTimeSecs, v))
}

// HintsUsed applies equality check predicate on the "hints_used" field. It's identical to HintsUsedEQ.
func HintsUsed(v int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldHintsUsed, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldContainsFold(FieldUserID, v))
}

// ExerciseIDEQ applies the EQ predicate on the "exercise_id" field.
func ExerciseIDEQ(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldExerciseID, v))
}

// ExerciseIDNEQ applies the NEQ predicate on the "exercise_id" field.
func ExerciseIDNEQ(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNEQ(FieldExerciseID, v))
}

// ExerciseIDIn applies the In predicate on the "exercise_id" field.
func ExerciseIDIn(vs ...string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldIn(FieldExerciseID, vs...))
}

// ExerciseIDNotIn applies the NotIn predicate on the "exercise_id" field.
func ExerciseIDNotIn(vs ...string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNotIn(FieldExerciseID, vs...))
}

// ExerciseIDGT applies the GT predicate on the "exercise_id" field.
func ExerciseIDGT(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldGT(FieldExerciseID, v))
}

// ExerciseIDGTE applies the GTE predicate on the "exercise_id" field.
func ExerciseIDGTE(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldGTE(FieldExerciseID, v))
}

// ExerciseIDLT applies the LT predicate on the "exercise_id" field.
func ExerciseIDLT(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldLT(FieldExerciseID, v))
}

// ExerciseIDLTE applies the LTE predicate on the "exercise_id" field.
func ExerciseIDLTE(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldLTE(FieldExerciseID, v))
}

// ExerciseIDContains applies the Contains predicate on the "exercise_id" field.
func ExerciseIDContains(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldContains(FieldExerciseID, v))
}

// ExerciseIDHasPrefix applies the HasPrefix predicate on the "exercise_id" field.
func ExerciseIDHasPrefix(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldHasPrefix(FieldExerciseID, v))
}

// ExerciseIDHasSuffix applies the HasSuffix predicate on the "exercise_id" field.
func ExerciseIDHasSuffix(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldHasSuffix(FieldExerciseID, v))
}

// ExerciseIDEqualFold applies the EqualFold predicate on the "exercise_id" field.
func ExerciseIDEqualFold(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEqualFold(FieldExerciseID, v))
}

// ExerciseIDContainsFold applies the ContainsFold predicate on the "exercise_id" field.
func ExerciseIDContainsFold(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldContainsFold(FieldExerciseID, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldContainsFold(FieldCategory, v))
}

// ExerciseTypeEQ applies the EQ predicate on the "exercise_type" field.
func ExerciseTypeEQ(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldExerciseType, v))
}

// ExerciseTypeNEQ applies the NEQ predicate on the "exercise_type" field.
func ExerciseTypeNEQ(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNEQ(FieldExerciseType, v))
}

// ExerciseTypeIn applies the In predicate on the "exercise_type" field.
func ExerciseTypeIn(vs ...string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldIn(FieldExerciseType, vs...))
}

// ExerciseTypeNotIn applies the NotIn predicate on the "exercise_type" field.
func ExerciseTypeNotIn(vs ...string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNotIn(FieldExerciseType, vs...))
}

// ExerciseTypeGT applies the GT predicate on the "exercise_type" field.
func ExerciseTypeGT(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldGT(FieldExerciseType, v))
}

// ExerciseTypeGTE applies the GTE predicate on the "exercise_type" field.
func ExerciseTypeGTE(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldGTE(FieldExerciseType, v))
}

// ExerciseTypeLT applies the LT predicate on the "exercise_type" field.
func ExerciseTypeLT(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldLT(FieldExerciseType, v))
}

// ExerciseTypeLTE applies the LTE predicate on the "exercise_type" field.
func ExerciseTypeLTE(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldLTE(FieldExerciseType, v))
}

// ExerciseTypeContains applies the Contains predicate on the "exercise_type" field.
func ExerciseTypeContains(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldContains(FieldExerciseType, v))
}

// ExerciseTypeHasPrefix applies the HasPrefix predicate on the "exercise_type" field.
func ExerciseTypeHasPrefix(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldHasPrefix(FieldExerciseType, v))
}

// ExerciseTypeHasSuffix applies the HasSuffix predicate on the "exercise_type" field.
func ExerciseTypeHasSuffix(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldHasSuffix(FieldExerciseType, v))
}

// ExerciseTypeEqualFold applies the EqualFold predicate on the "exercise_type" field.
func ExerciseTypeEqualFold(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEqualFold(FieldExerciseType, v))
}

// ExerciseTypeContainsFold applies the ContainsFold predicate on the "exercise_type" field.
func ExerciseTypeContainsFold(v string) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldContainsFold(FieldExerciseType, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldLTE(FieldDifficulty, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldLTE(FieldScore, v))
}

// AccuracyEQ applies the EQ predicate on the "accuracy" field.
func AccuracyEQ(v float64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldAccuracy, v))
}

// AccuracyNEQ applies the NEQ predicate on the "accuracy" field.
func AccuracyNEQ(v float64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNEQ(FieldAccuracy, v))
}

// AccuracyIn applies the In predicate on the "accuracy" field.
func AccuracyIn(vs ...float64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldIn(FieldAccuracy, vs...))
}

// AccuracyNotIn applies the NotIn predicate on the "accuracy" field.
func AccuracyNotIn(vs ...float64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNotIn(FieldAccuracy, vs...))
}

// AccuracyGT applies the GT predicate on the "accuracy" field.
func AccuracyGT(v float64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldGT(FieldAccuracy, v))
}

// AccuracyGTE applies the GTE predicate on the "accuracy" field.
func AccuracyGTE(v float64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldGTE(FieldAccuracy, v))
}

// AccuracyLT applies the LT predicate on the "accuracy" field.
func AccuracyLT(v float64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldLT(FieldAccuracy, v))
}

// AccuracyLTE applies the LTE predicate on the "accuracy" field.
func AccuracyLTE(v float64) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldLTE(FieldAccuracy, v))
}

// IsCorrectEQ applies the EQ predicate on the "is_correct" field.
func IsCorrectEQ(v bool) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldIsCorrect, v))
}

// IsCorrectNEQ applies the NEQ predicate on the "is_correct" field.
func IsCorrectNEQ(v bool) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNEQ(FieldIsCorrect, v))
}

// CompletionTimeSecsEQ applies the EQ predicate on the "completion_time_secs" field.
func CompletionTimeSecsEQ(v int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldCompletionTimeSecs, v))
}

// CompletionTimeSecsNEQ applies the NEQ predicate on the "completion_time_secs" field.
func CompletionTimeSecsNEQ(v int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNEQ(FieldCompletionTimeSecs, v))
}

// CompletionTimeSecsIn applies the In predicate on the "completion_time_secs" field.
func CompletionTimeSecsIn(vs ...int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldIn(FieldCompletionTimeSecs, vs...))
}

// CompletionTimeSecsNotIn applies the NotIn predicate on the "completion_time_secs" field.
func CompletionTimeSecsNotIn(vs ...int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNotIn(FieldCompletionTimeSecs, vs...))
}

// CompletionTimeSecsGT applies the GT predicate on the "completion_time_secs" field.
func CompletionTimeSecsGT(v int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldGT(FieldCompletionTimeSecs, v))
}

// CompletionTimeSecsGTE applies the GTE predicate on the "completion_time_secs" field.
func CompletionTimeSecsGTE(v int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldGTE(FieldCompletionTimeSecs, v))
}

// CompletionTimeSecsLT applies the LT predicate on the "completion_time_secs" field.
func CompletionTimeSecsLT(v int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldLT(FieldCompletionTimeSecs, v))
}

// CompletionTimeSecsLTE applies the LTE predicate on the "completion_time_secs" field.
func CompletionTimeSecsLTE(v int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldLTE(FieldCompletionTimeSecs, v))
}

// HintsUsedEQ applies the EQ predicate on the "hints_used" field.
func HintsUsedEQ(v int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldEQ(FieldHintsUsed, v))
}

// HintsUsedNEQ applies the NEQ predicate on the "hints_used" field.
func HintsUsedNEQ(v int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNEQ(FieldHintsUsed, v))
}

// HintsUsedIn applies the In predicate on the "hints_used" field.
func HintsUsedIn(vs ...int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldIn(FieldHintsUsed, vs...))
}

// HintsUsedNotIn applies the NotIn predicate on the "hints_used" field.
func HintsUsedNotIn(vs ...int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldNotIn(FieldHintsUsed, vs...))
}

// HintsUsedGT applies the GT predicate on the "hints_used" field.
func HintsUsedGT(v int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldGT(FieldHintsUsed, v))
}

// HintsUsedGTE applies the GTE predicate on the "hints_used" field.
func HintsUsedGTE(v int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldGTE(FieldHintsUsed, v))
}

// HintsUsedLT applies the LT predicate on the "hints_used" field.
func HintsUsedLT(v int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldLT(FieldHintsUsed, v))
}

// HintsUsedLTE applies the LTE predicate on the "hints_used" field.
func HintsUsedLTE(v int) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.FieldLTE(FieldHintsUsed, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExerciseEvent) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExerciseEvent) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExerciseEvent) predicate.ExerciseEvent {
	return predicate.ExerciseEvent(sql.NotPredicates(p))
}
