// Code generated by ent, DO NOT EDIT.

package difficultytracking

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the difficultytracking type in the database.
	Label = "difficulty_tracking"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldConsecutiveSuccesses holds the string denoting the consecutive_successes field in the database.
	FieldConsecutiveSuccesses = "consecutive_successes"
	// FieldConsecutiveFailures holds the string denoting the consecutive_failures field in the database.
	FieldConsecutiveFailures = "consecutive_failures"
	// FieldLastOutcome holds the string denoting the last_outcome field in the database.
	FieldLastOutcome = "last_outcome"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the difficultytracking in the database.
	Table = "difficulty_trackings"
)

// Columns holds all SQL columns for difficultytracking fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldLevel,
	FieldConsecutiveSuccesses,
	FieldConsecutiveFailures,
	FieldLastOutcome,
	FieldUpdatedAt,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultLevel holds the default value on creation for the "level" field.
	DefaultLevel int
	// DefaultConsecutiveSuccesses holds the default value on creation for the "consecutive_successes" field.
	DefaultConsecutiveSuccesses int
	// DefaultConsecutiveFailures holds the default value on creation for the "consecutive_failures" field.
	DefaultConsecutiveFailures int
	// DefaultLastOutcome holds the default value on creation for the "last_outcome" field.
	DefaultLastOutcome string
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the DifficultyTracking queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByConsecutiveSuccesses orders the results by the consecutive_successes field.
func ByConsecutiveSuccesses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveSuccesses, opts...).ToFunc()
}

// ByConsecutiveFailures orders the results by the consecutive_failures field.
func ByConsecutiveFailures(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveFailures, opts...).ToFunc()
}

// ByLastOutcome orders the results by the last_outcome field.
func ByLastOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastOutcome, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
