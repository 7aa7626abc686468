// Code generated by ent, DO NOT EDIT.

package scenarioevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the scenarioevent type in the database.
	Label = "scenario_event"
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
	// FieldScenarioID holds the string denoting the scenario_id field in the database.
	FieldScenarioID = "scenario_id"
	// FieldScenarioType holds the string denoting the scenario_type field in the database.
	FieldScenarioType = "scenario_type"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldAverageScore holds the string denoting the average_score field in the database.
	FieldAverageScore = "average_score"
	// FieldTotalTurns holds the string denoting the total_turns field in the database.
	FieldTotalTurns = "total_turns"
	// FieldPerformanceGrade holds the string denoting the performance_grade field in the database.
	FieldPerformanceGrade = "performance_grade"
	// Table holds the table name of the scenarioevent in the database.
	Table = "scenario_events"
)

// Columns holds all SQL columns for scenarioevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldUserID,
	FieldScenarioID,
	FieldScenarioType,
	FieldDifficulty,
	FieldAverageScore,
	FieldTotalTurns,
	FieldPerformanceGrade,
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
	// ScenarioIDValidator is a validator for the "scenario_id" field. It is called by the builders before save.
	ScenarioIDValidator func(string) error
	// ScenarioTypeValidator is a validator for the "scenario_type" field. It is called by the builders before save.
	ScenarioTypeValidator func(string) error
	// DefaultTotalTurns holds the default value on creation for the "total_turns" field.
	DefaultTotalTurns int
	// DefaultPerformanceGrade holds the default value on creation for the "performance_grade" field.
	DefaultPerformanceGrade string
)

// OrderOption defines the ordering options for the ScenarioEvent queries.
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

// ByScenarioID orders the results by the scenario_id field.
func ByScenarioID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScenarioID, opts...).ToFunc()
}

// ByScenarioType orders the results by the scenario_type field.
func ByScenarioType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScenarioType, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByAverageScore orders the results by the average_score field.
func ByAverageScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAverageScore, opts...).ToFunc()
}

// ByTotalTurns orders the results by the total_turns field.
func ByTotalTurns(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTurns, opts...).ToFunc()
}

// ByPerformanceGrade orders the results by the performance_grade field.
func ByPerformanceGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPerformanceGrade, opts...).ToFunc()
}
