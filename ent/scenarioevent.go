// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cogniplay/ent/scenarioevent"
)

// ScenarioEvent is the model entity for the ScenarioEvent schema.
type ScenarioEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the session this scenario ran in
	SessionID string `json:"session_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// ScenarioID holds the value of the "scenario_id" field.
	ScenarioID string `json:"scenario_id,omitempty"`
	// negotiation, problem_solving, social_interaction, leadership, creative_thinking
	ScenarioType string `json:"scenario_type,omitempty"`
	// Level 1-5 at which the scenario was generated
	Difficulty int `json:"difficulty,omitempty"`
	// Mean decision quality 0-100 across all turns
	AverageScore float64 `json:"average_score,omitempty"`
	// TotalTurns holds the value of the "total_turns" field.
	TotalTurns int `json:"total_turns,omitempty"`
	// Letter grade A-F derived from the average score
	PerformanceGrade string `json:"performance_grade,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScenarioEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scenarioevent.FieldAverageScore:
			values[i] = new(sql.NullFloat64)
		case scenarioevent.FieldID, scenarioevent.FieldSequence, scenarioevent.FieldDifficulty, scenarioevent.FieldTotalTurns:
			values[i] = new(sql.NullInt64)
		case scenarioevent.FieldSessionID, scenarioevent.FieldUserID, scenarioevent.FieldScenarioID, scenarioevent.FieldScenarioType, scenarioevent.FieldPerformanceGrade:
			values[i] = new(sql.NullString)
		case scenarioevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScenarioEvent fields.
func (_m *ScenarioEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scenarioevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case scenarioevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case scenarioevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case scenarioevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case scenarioevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case scenarioevent.FieldScenarioID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scenario_id", values[i])
			} else if value.Valid {
				_m.ScenarioID = value.String
			}
		case scenarioevent.FieldScenarioType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scenario_type", values[i])
			} else if value.Valid {
				_m.ScenarioType = value.String
			}
		case scenarioevent.FieldDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = int(value.Int64)
			}
		case scenarioevent.FieldAverageScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field average_score", values[i])
			} else if value.Valid {
				_m.AverageScore = value.Float64
			}
		case scenarioevent.FieldTotalTurns:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_turns", values[i])
			} else if value.Valid {
				_m.TotalTurns = int(value.Int64)
			}
		case scenarioevent.FieldPerformanceGrade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field performance_grade", values[i])
			} else if value.Valid {
				_m.PerformanceGrade = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScenarioEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ScenarioEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScenarioEvent.
// Note that you need to call ScenarioEvent.Unwrap() before calling this method if this ScenarioEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScenarioEvent) Update() *ScenarioEventUpdateOne {
	return NewScenarioEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScenarioEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScenarioEvent) Unwrap() *ScenarioEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScenarioEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScenarioEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ScenarioEvent(")
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
	builder.WriteString("scenario_id=")
	builder.WriteString(_m.ScenarioID)
	builder.WriteString(", ")
	builder.WriteString("scenario_type=")
	builder.WriteString(_m.ScenarioType)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("average_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AverageScore))
	builder.WriteString(", ")
	builder.WriteString("total_turns=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTurns))
	builder.WriteString(", ")
	builder.WriteString("performance_grade=")
	builder.WriteString(_m.PerformanceGrade)
	builder.WriteByte(')')
	return builder.String()
}

// ScenarioEvents is a parsable slice of ScenarioEvent.
type ScenarioEvents []*ScenarioEvent
