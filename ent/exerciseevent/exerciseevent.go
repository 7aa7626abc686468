// Code generated by ent, DO NOT EDIT.

package exerciseevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the exerciseevent type in the database.
	Label = "exercise_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldExerciseID holds the string denoting the exercise_id field in the database.
	FieldExerciseID = "exercise_id"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldExerciseType holds the string denoting the exercise_type field in the database.
	FieldExerciseType = "exercise_type"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldAccuracy holds the string denoting the accuracy field in the database.
	FieldAccuracy = "accuracy"
	// FieldIsCorrect holds the string denoting the is_correct field in the database.
	FieldIsCorrect = "is_correct"
	// FieldCompletionTimeSecs holds the string denoting the completion_time_secs field in the database.
	FieldCompletionTimeSecs = "completion_time_secs"
	// FieldHintsUsed holds the string denoting the hints_used field in the database.
	FieldHintsUsed = "hints_used"
	// Table holds the table name of the exerciseevent in the database.
	Table = "exercise_events"
)

// Columns holds all SQL columns for exerciseevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldUserID,
	FieldExerciseID,
	FieldCategory,
	FieldExerciseType,
	FieldDifficulty,
	FieldScore,
	FieldAccuracy,
	FieldIsCorrect,
	FieldCompletionTimeSecs,
	FieldHintsUsed,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// ExerciseIDValidator is a validator for the "exercise_id" field. It is called by the builders before save.
	ExerciseIDValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// DefaultExerciseType holds the default value on creation for the "exercise_type" field.
	DefaultExerciseType string
	// DefaultAccuracy holds the default value on creation for the "accuracy" field.
	DefaultAccuracy float64
	// DefaultCompletionTimeSecs holds the default value on creation for the "completion_time_secs" field.
	DefaultCompletionTimeSecs int
	// DefaultHintsUsed holds the default value on creation for the "hints_used" field.
	DefaultHintsUsed int
)

// OrderOption defines the ordering options for the ExerciseEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByExerciseID orders the results by the exercise_id field.
func ByExerciseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExerciseID, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByExerciseType orders the results by the exercise_type field.
func ByExerciseType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExerciseType, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByAccuracy orders the results by the accuracy field.
func ByAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccuracy, opts...).ToFunc()
}

// ByIsCorrect orders the results by the is_correct field.
func ByIsCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsCorrect, opts...).ToFunc()
}

// ByCompletionTimeSecs orders the results by the completion_time_secs field.
func ByCompletionTimeSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionTimeSecs, opts...).ToFunc()
}

// ByHintsUsed orders the results by the hints_used field.
func ByHintsUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintsUsed, opts...).ToFunc()
}
