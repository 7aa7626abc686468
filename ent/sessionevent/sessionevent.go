// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
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
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldSessionType holds the string denoting the session_type field in the database.
	FieldSessionType = "session_type"
	// FieldStartingLevel holds the string denoting the starting_level field in the database.
	FieldStartingLevel = "starting_level"
	// FieldExercisesCompleted holds the string denoting the exercises_completed field in the database.
	FieldExercisesCompleted = "exercises_completed"
	// FieldScenariosCompleted holds the string denoting the scenarios_completed field in the database.
	FieldScenariosCompleted = "scenarios_completed"
	// FieldAverageScore holds the string denoting the average_score field in the database.
	FieldAverageScore = "average_score"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// FieldRecommendation holds the string denoting the recommendation field in the database.
	FieldRecommendation = "recommendation"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldUserID,
	FieldAction,
	FieldSessionType,
	FieldStartingLevel,
	FieldExercisesCompleted,
	FieldScenariosCompleted,
	FieldAverageScore,
	FieldDurationSecs,
	FieldRecommendation,
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
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultSessionType holds the default value on creation for the "session_type" field.
	DefaultSessionType string
	// DefaultStartingLevel holds the default value on creation for the "starting_level" field.
	DefaultStartingLevel int
	// DefaultExercisesCompleted holds the default value on creation for the "exercises_completed" field.
	DefaultExercisesCompleted int
	// DefaultScenariosCompleted holds the default value on creation for the "scenarios_completed" field.
	DefaultScenariosCompleted int
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
	// DefaultRecommendation holds the default value on creation for the "recommendation" field.
	DefaultRecommendation string
)

// OrderOption defines the ordering options for the SessionEvent queries.
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

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// BySessionType orders the results by the session_type field.
func BySessionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionType, opts...).ToFunc()
}

// ByStartingLevel orders the results by the starting_level field.
func ByStartingLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartingLevel, opts...).ToFunc()
}

// ByExercisesCompleted orders the results by the exercises_completed field.
func ByExercisesCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExercisesCompleted, opts...).ToFunc()
}

// ByScenariosCompleted orders the results by the scenarios_completed field.
func ByScenariosCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScenariosCompleted, opts...).ToFunc()
}

// ByAverageScore orders the results by the average_score field.
func ByAverageScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAverageScore, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}

// ByRecommendation orders the results by the recommendation field.
func ByRecommendation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendation, opts...).ToFunc()
}
