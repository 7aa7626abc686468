// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cogniplay/ent/exerciseevent"
)

// ExerciseEvent is the model entity for the ExerciseEvent schema.
type ExerciseEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the session this exercise ran in
	SessionID string `json:"session_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// ExerciseID holds the value of the "exercise_id" field.
	ExerciseID string `json:"exercise_id,omitempty"`
	// memory, logic, problem_solving, pattern_recognition, attention
	Category string `json:"category,omitempty"`
	// Concrete template within the category, e.g. word_list
	ExerciseType string `json:"exercise_type,omitempty"`
	// Level 1-5 at which the exercise was generated
	Difficulty int `json:"difficulty,omitempty"`
	// Final score 0-100 after time and hint adjustments
	Score float64 `json:"score,omitempty"`
	// Correctness-only score, 0 or 100
	Accuracy float64 `json:"accuracy,omitempty"`
	// IsCorrect holds the value of the "is_correct" field.
	IsCorrect bool `json:"is_correct,omitempty"`
	// CompletionTimeSecs holds the value of the "completion_time_secs" field.
	CompletionTimeSecs int `json:"completion_time_secs,omitempty"`
	// HintsUsed holds the value of the "hints_used" field.
	HintsUsed    int `json:"hints_used,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExerciseEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case exerciseevent.FieldIsCorrect:
			values[i] = new(sql.NullBool)
		case exerciseevent.FieldScore, exerciseevent.FieldAccuracy:
			values[i] = new(sql.NullFloat64)
		case exerciseevent.FieldID, exerciseevent.FieldSequence, exerciseevent.FieldDifficulty, exerciseevent.FieldCompletionTimeSecs, exerciseevent.FieldHintsUsed:
			values[i] = new(sql.NullInt64)
		case exerciseevent.FieldSessionID, exerciseevent.FieldUserID, exerciseevent.FieldExerciseID, exerciseevent.FieldCategory, exerciseevent.FieldExerciseType:
			values[i] = new(sql.NullString)
		case exerciseevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExerciseEvent fields.
func (_m *ExerciseEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case exerciseevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case exerciseevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case exerciseevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case exerciseevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case exerciseevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case exerciseevent.FieldExerciseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exercise_id", values[i])
			} else if value.Valid {
				_m.ExerciseID = value.String
			}
		case exerciseevent.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case exerciseevent.FieldExerciseType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exercise_type", values[i])
			} else if value.Valid {
				_m.ExerciseType = value.String
			}
		case exerciseevent.FieldDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = int(value.Int64)
			}
		case exerciseevent.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case exerciseevent.FieldAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy", values[i])
			} else if value.Valid {
				_m.Accuracy = value.Float64
			}
		case exerciseevent.FieldIsCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_correct", values[i])
			} else if value.Valid {
				_m.IsCorrect = value.Bool
			}
		case exerciseevent.FieldCompletionTimeSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_time_secs", values[i])
			} else if value.Valid {
				_m.CompletionTimeSecs = int(value.Int64)
			}
		case exerciseevent.FieldHintsUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hints_used", values[i])
			} else if value.Valid {
				_m.HintsUsed = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExerciseEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ExerciseEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExerciseEvent.
// Note that you need to call ExerciseEvent.Unwrap() before calling this method if this ExerciseEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExerciseEvent) Update() *ExerciseEventUpdateOne {
	return NewExerciseEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExerciseEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExerciseEvent) Unwrap() *ExerciseEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExerciseEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExerciseEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ExerciseEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("exercise_id=")
	builder.WriteString(_m.ExerciseID)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("exercise_type=")
	builder.WriteString(_m.ExerciseType)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("accuracy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Accuracy))
	builder.WriteString(", ")
	builder.WriteString("is_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsCorrect))
	builder.WriteString(", ")
	builder.WriteString("completion_time_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletionTimeSecs))
	builder.WriteString(", ")
	builder.WriteString("hints_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.HintsUsed))
	builder.WriteByte(')')
	return builder.String()
}

// ExerciseEvents is a parsable slice of ExerciseEvent.
type ExerciseEvents []*ExerciseEvent
