// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cogniplay/ent/difficultytracking"
)

// DifficultyTracking is the model entity for the DifficultyTracking schema.
type DifficultyTracking struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Current difficulty level 1-5
	Level int `json:"level,omitempty"`
	// ConsecutiveSuccesses holds the value of the "consecutive_successes" field.
	ConsecutiveSuccesses int `json:"consecutive_successes,omitempty"`
	// ConsecutiveFailures holds the value of the "consecutive_failures" field.
	ConsecutiveFailures int `json:"consecutive_failures,omitempty"`
	// success, failure or neutral
	LastOutcome string `json:"last_outcome,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DifficultyTracking) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case difficultytracking.FieldID, difficultytracking.FieldLevel, difficultytracking.FieldConsecutiveSuccesses, difficultytracking.FieldConsecutiveFailures:
			values[i] = new(sql.NullInt64)
		case difficultytracking.FieldUserID, difficultytracking.FieldLastOutcome:
			values[i] = new(sql.NullString)
		case difficultytracking.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DifficultyTracking fields.
func (_m *DifficultyTracking) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case difficultytracking.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case difficultytracking.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case difficultytracking.FieldLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = int(value.Int64)
			}
		case difficultytracking.FieldConsecutiveSuccesses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_successes", values[i])
			} else if value.Valid {
				_m.ConsecutiveSuccesses = int(value.Int64)
			}
		case difficultytracking.FieldConsecutiveFailures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_failures", values[i])
			} else if value.Valid {
				_m.ConsecutiveFailures = int(value.Int64)
			}
		case difficultytracking.FieldLastOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_outcome", values[i])
			} else if value.Valid {
				_m.LastOutcome = value.String
			}
		case difficultytracking.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DifficultyTracking.
// This includes values selected through modifiers, order, etc.
func (_m *DifficultyTracking) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DifficultyTracking.
// Note that you need to call DifficultyTracking.Unwrap() before calling this method if this DifficultyTracking
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DifficultyTracking) Update() *DifficultyTrackingUpdateOne {
	return NewDifficultyTrackingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DifficultyTracking entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DifficultyTracking) Unwrap() *DifficultyTracking {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DifficultyTracking is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DifficultyTracking) String() string {
	var builder strings.Builder
	builder.WriteString("DifficultyTracking(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("consecutive_successes=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveSuccesses))
	builder.WriteString(", ")
	builder.WriteString("consecutive_failures=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveFailures))
	builder.WriteString(", ")
	builder.WriteString("last_outcome=")
	builder.WriteString(_m.LastOutcome)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DifficultyTrackings is a parsable slice of DifficultyTracking.
type DifficultyTrackings []*DifficultyTracking
