// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cogniplay/ent/difficultytracking"
	"github.com/abhisek/cogniplay/ent/exerciseevent"
	"github.com/abhisek/cogniplay/ent/llmrequestevent"
	"github.com/abhisek/cogniplay/ent/predicate"
	"github.com/abhisek/cogniplay/ent/scenarioevent"
	"github.com/abhisek/cogniplay/ent/sessionevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDifficultyTracking = "DifficultyTracking"
	TypeExerciseEvent      = "ExerciseEvent"
	TypeLLMRequestEvent    = "LLMRequestEvent"
	TypeScenarioEvent      = "ScenarioEvent"
	TypeSessionEvent       = "SessionEvent"
)

// DifficultyTrackingMutation represents an operation that mutates the DifficultyTracking nodes in the graph.
type DifficultyTrackingMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	user_id                  *string
	level                    *int
	addlevel                 *int
	consecutive_successes    *int
	addconsecutive_successes *int
	consecutive_failures     *int
	addconsecutive_failures  *int
	last_outcome             *string
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*DifficultyTracking, error)
	predicates               []predicate.DifficultyTracking
}

var _ ent.Mutation = (*DifficultyTrackingMutation)(nil)

// difficultytrackingOption allows management of the mutation configuration using functional options.
type difficultytrackingOption func(*DifficultyTrackingMutation)

// newDifficultyTrackingMutation creates new mutation for the DifficultyTracking entity.
func newDifficultyTrackingMutation(c config, op Op, opts ...difficultytrackingOption) *DifficultyTrackingMutation {
	m := &DifficultyTrackingMutation{
		config:        c,
		op:            op,
		typ:           TypeDifficultyTracking,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDifficultyTrackingID sets the ID field of the mutation.
func withDifficultyTrackingID(id int) difficultytrackingOption {
	return func(m *DifficultyTrackingMutation) {
		var (
			err   error
			once  sync.Once
			value *DifficultyTracking
		)
		m.oldValue = func(ctx context.Context) (*DifficultyTracking, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DifficultyTracking.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDifficultyTracking sets the old DifficultyTracking of the mutation.
func withDifficultyTracking(node *DifficultyTracking) difficultytrackingOption {
	return func(m *DifficultyTrackingMutation) {
		m.oldValue = func(context.Context) (*DifficultyTracking, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DifficultyTrackingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DifficultyTrackingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DifficultyTrackingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DifficultyTrackingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DifficultyTracking.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *DifficultyTrackingMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *DifficultyTrackingMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the DifficultyTracking entity.
// If the DifficultyTracking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DifficultyTrackingMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *DifficultyTrackingMutation) ResetUserID() {
	m.user_id = nil
}

// SetLevel sets the "level" field.
func (m *DifficultyTrackingMutation) SetLevel(i int) {
	m.level = &i
	m.addlevel = nil
}

// Level returns the value of the "level" field in the mutation.
func (m *DifficultyTrackingMutation) Level() (r int, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the DifficultyTracking entity.
// If the DifficultyTracking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DifficultyTrackingMutation) OldLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// AddLevel adds i to the "level" field.
func (m *DifficultyTrackingMutation) AddLevel(i int) {
	if m.addlevel != nil {
		*m.addlevel += i
	} else {
		m.addlevel = &i
	}
}

// AddedLevel returns the value that was added to the "level" field in this mutation.
func (m *DifficultyTrackingMutation) AddedLevel() (r int, exists bool) {
	v := m.addlevel
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevel resets all changes to the "level" field.
func (m *DifficultyTrackingMutation) ResetLevel() {
	m.level = nil
	m.addlevel = nil
}

// SetConsecutiveSuccesses sets the "consecutive_successes" field.
func (m *DifficultyTrackingMutation) SetConsecutiveSuccesses(i int) {
	m.consecutive_successes = &i
	m.addconsecutive_successes = nil
}

// ConsecutiveSuccesses returns the value of the "consecutive_successes" field in the mutation.
func (m *DifficultyTrackingMutation) ConsecutiveSuccesses() (r int, exists bool) {
	v := m.consecutive_successes
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveSuccesses returns the old "consecutive_successes" field's value of the DifficultyTracking entity.
// If the DifficultyTracking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DifficultyTrackingMutation) OldConsecutiveSuccesses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveSuccesses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveSuccesses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveSuccesses: %w", err)
	}
	return oldValue.ConsecutiveSuccesses, nil
}

// AddConsecutiveSuccesses adds i to the "consecutive_successes" field.
func (m *DifficultyTrackingMutation) AddConsecutiveSuccesses(i int) {
	if m.addconsecutive_successes != nil {
		*m.addconsecutive_successes += i
	} else {
		m.addconsecutive_successes = &i
	}
}

// AddedConsecutiveSuccesses returns the value that was added to the "consecutive_successes" field in this mutation.
func (m *DifficultyTrackingMutation) AddedConsecutiveSuccesses() (r int, exists bool) {
	v := m.addconsecutive_successes
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveSuccesses resets all changes to the "consecutive_successes" field.
func (m *DifficultyTrackingMutation) ResetConsecutiveSuccesses() {
	m.consecutive_successes = nil
	m.addconsecutive_successes = nil
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (m *DifficultyTrackingMutation) SetConsecutiveFailures(i int) {
	m.consecutive_failures = &i
	m.addconsecutive_failures = nil
}

// ConsecutiveFailures returns the value of the "consecutive_failures" field in the mutation.
func (m *DifficultyTrackingMutation) ConsecutiveFailures() (r int, exists bool) {
	v := m.consecutive_failures
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveFailures returns the old "consecutive_failures" field's value of the DifficultyTracking entity.
// If the DifficultyTracking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DifficultyTrackingMutation) OldConsecutiveFailures(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveFailures: %w", err)
	}
	return oldValue.ConsecutiveFailures, nil
}

// AddConsecutiveFailures adds i to the "consecutive_failures" field.
func (m *DifficultyTrackingMutation) AddConsecutiveFailures(i int) {
	if m.addconsecutive_failures != nil {
		*m.addconsecutive_failures += i
	} else {
		m.addconsecutive_failures = &i
	}
}

// AddedConsecutiveFailures returns the value that was added to the "consecutive_failures" field in this mutation.
func (m *DifficultyTrackingMutation) AddedConsecutiveFailures() (r int, exists bool) {
	v := m.addconsecutive_failures
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveFailures resets all changes to the "consecutive_failures" field.
func (m *DifficultyTrackingMutation) ResetConsecutiveFailures() {
	m.consecutive_failures = nil
	m.addconsecutive_failures = nil
}

// SetLastOutcome sets the "last_outcome" field.
func (m *DifficultyTrackingMutation) SetLastOutcome(s string) {
	m.last_outcome = &s
}

// LastOutcome returns the value of the "last_outcome" field in the mutation.
func (m *DifficultyTrackingMutation) LastOutcome() (r string, exists bool) {
	v := m.last_outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldLastOutcome returns the old "last_outcome" field's value of the DifficultyTracking entity.
// If the DifficultyTracking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DifficultyTrackingMutation) OldLastOutcome(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastOutcome: %w", err)
	}
	return oldValue.LastOutcome, nil
}

// ResetLastOutcome resets all changes to the "last_outcome" field.
func (m *DifficultyTrackingMutation) ResetLastOutcome() {
	m.last_outcome = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DifficultyTrackingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DifficultyTrackingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DifficultyTracking entity.
// If the DifficultyTracking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DifficultyTrackingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DifficultyTrackingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the DifficultyTrackingMutation builder.
func (m *DifficultyTrackingMutation) Where(ps ...predicate.DifficultyTracking) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DifficultyTrackingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DifficultyTrackingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DifficultyTracking, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DifficultyTrackingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DifficultyTrackingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DifficultyTracking).
func (m *DifficultyTrackingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DifficultyTrackingMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, difficultytracking.FieldUserID)
	}
	if m.level != nil {
		fields = append(fields, difficultytracking.FieldLevel)
	}
	if m.consecutive_successes != nil {
		fields = append(fields, difficultytracking.FieldConsecutiveSuccesses)
	}
	if m.consecutive_failures != nil {
		fields = append(fields, difficultytracking.FieldConsecutiveFailures)
	}
	if m.last_outcome != nil {
		fields = append(fields, difficultytracking.FieldLastOutcome)
	}
	if m.updated_at != nil {
		fields = append(fields, difficultytracking.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DifficultyTrackingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case difficultytracking.FieldUserID:
		return m.UserID()
	case difficultytracking.FieldLevel:
		return m.Level()
	case difficultytracking.FieldConsecutiveSuccesses:
		return m.ConsecutiveSuccesses()
	case difficultytracking.FieldConsecutiveFailures:
		return m.ConsecutiveFailures()
	case difficultytracking.FieldLastOutcome:
		return m.LastOutcome()
	case difficultytracking.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DifficultyTrackingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case difficultytracking.FieldUserID:
		return m.OldUserID(ctx)
	case difficultytracking.FieldLevel:
		return m.OldLevel(ctx)
	case difficultytracking.FieldConsecutiveSuccesses:
		return m.OldConsecutiveSuccesses(ctx)
	case difficultytracking.FieldConsecutiveFailures:
		return m.OldConsecutiveFailures(ctx)
	case difficultytracking.FieldLastOutcome:
		return m.OldLastOutcome(ctx)
	case difficultytracking.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DifficultyTracking field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DifficultyTrackingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case difficultytracking.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case difficultytracking.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case difficultytracking.FieldConsecutiveSuccesses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveSuccesses(v)
		return nil
	case difficultytracking.FieldConsecutiveFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveFailures(v)
		return nil
	case difficultytracking.FieldLastOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastOutcome(v)
		return nil
	case difficultytracking.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DifficultyTracking field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DifficultyTrackingMutation) AddedFields() []string {
	var fields []string
	if m.addlevel != nil {
		fields = append(fields, difficultytracking.FieldLevel)
	}
	if m.addconsecutive_successes != nil {
		fields = append(fields, difficultytracking.FieldConsecutiveSuccesses)
	}
	if m.addconsecutive_failures != nil {
		fields = append(fields, difficultytracking.FieldConsecutiveFailures)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DifficultyTrackingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case difficultytracking.FieldLevel:
		return m.AddedLevel()
	case difficultytracking.FieldConsecutiveSuccesses:
		return m.AddedConsecutiveSuccesses()
	case difficultytracking.FieldConsecutiveFailures:
		return m.AddedConsecutiveFailures()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DifficultyTrackingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case difficultytracking.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevel(v)
		return nil
	case difficultytracking.FieldConsecutiveSuccesses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveSuccesses(v)
		return nil
	case difficultytracking.FieldConsecutiveFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveFailures(v)
		return nil
	}
	return fmt.Errorf("unknown DifficultyTracking numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DifficultyTrackingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DifficultyTrackingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DifficultyTrackingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DifficultyTracking nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DifficultyTrackingMutation) ResetField(name string) error {
	switch name {
	case difficultytracking.FieldUserID:
		m.ResetUserID()
		return nil
	case difficultytracking.FieldLevel:
		m.ResetLevel()
		return nil
	case difficultytracking.FieldConsecutiveSuccesses:
		m.ResetConsecutiveSuccesses()
		return nil
	case difficultytracking.FieldConsecutiveFailures:
		m.ResetConsecutiveFailures()
		return nil
	case difficultytracking.FieldLastOutcome:
		m.ResetLastOutcome()
		return nil
	case difficultytracking.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DifficultyTracking field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DifficultyTrackingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DifficultyTrackingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DifficultyTrackingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DifficultyTrackingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DifficultyTrackingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DifficultyTrackingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DifficultyTrackingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DifficultyTracking unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DifficultyTrackingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DifficultyTracking edge %s", name)
}

// ExerciseEventMutation represents an operation that mutates the ExerciseEvent nodes in the graph.
type ExerciseEventMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	sequence                *int64
	addsequence             *int64
	timestamp               *time.Time
	session_id              *string
	user_id                 *string
	exercise_id             *string
	category                *string
	exercise_type           *string
	difficulty              *int
	adddifficulty           *int
	score                   *float64
	addscore                *float64
	accuracy                *float64
	addaccuracy             *float64
	is_correct              *bool
	completion_time_secs    *int
	addcompletion_time_secs *int
	hints_used              *int
	addhints_used           *int
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*ExerciseEvent, error)
	predicates              []predicate.ExerciseEvent
}

var _ ent.Mutation = (*ExerciseEventMutation)(nil)

// exerciseeventOption allows management of the mutation configuration using functional options.
type exerciseeventOption func(*ExerciseEventMutation)

// newExerciseEventMutation creates new mutation for the ExerciseEvent entity.
func newExerciseEventMutation(c config, op Op, opts ...exerciseeventOption) *ExerciseEventMutation {
	m := &ExerciseEventMutation{
		config:        c,
		op:            op,
		typ:           TypeExerciseEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExerciseEventID sets the ID field of the mutation.
func withExerciseEventID(id int) exerciseeventOption {
	return func(m *ExerciseEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ExerciseEvent
		)
		m.oldValue = func(ctx context.Context) (*ExerciseEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExerciseEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExerciseEvent sets the old ExerciseEvent of the mutation.
func withExerciseEvent(node *ExerciseEvent) exerciseeventOption {
	return func(m *ExerciseEventMutation) {
		m.oldValue = func(context.Context) (*ExerciseEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExerciseEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExerciseEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExerciseEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExerciseEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExerciseEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ExerciseEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ExerciseEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ExerciseEvent entity.
// If the ExerciseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ExerciseEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ExerciseEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ExerciseEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ExerciseEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ExerciseEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ExerciseEvent entity.
// If the ExerciseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ExerciseEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *ExerciseEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ExerciseEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ExerciseEvent entity.
// If the ExerciseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ExerciseEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *ExerciseEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ExerciseEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ExerciseEvent entity.
// If the ExerciseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ExerciseEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetExerciseID sets the "exercise_id" field.
func (m *ExerciseEventMutation) SetExerciseID(s string) {
	m.exercise_id = &s
}

// ExerciseID returns the value of the "exercise_id" field in the mutation.
func (m *ExerciseEventMutation) ExerciseID() (r string, exists bool) {
	v := m.exercise_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExerciseID returns the old "exercise_id" field's value of the ExerciseEvent entity.
// If the ExerciseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseEventMutation) OldExerciseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExerciseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExerciseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExerciseID: %w", err)
	}
	return oldValue.ExerciseID, nil
}

// ResetExerciseID resets all changes to the "exercise_id" field.
func (m *ExerciseEventMutation) ResetExerciseID() {
	m.exercise_id = nil
}

// SetCategory sets the "category" field.
func (m *ExerciseEventMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ExerciseEventMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ExerciseEvent entity.
// If the ExerciseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseEventMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *ExerciseEventMutation) ResetCategory() {
	m.category = nil
}

// SetExerciseType sets the "exercise_type" field.
func (m *ExerciseEventMutation) SetExerciseType(s string) {
	m.exercise_type = &s
}

// ExerciseType returns the value of the "exercise_type" field in the mutation.
func (m *ExerciseEventMutation) ExerciseType() (r string, exists bool) {
	v := m.exercise_type
	if v == nil {
		return
	}
	return *v, true
}

// OldExerciseType returns the old "exercise_type" field's value of the ExerciseEvent entity.
// If the ExerciseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseEventMutation) OldExerciseType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExerciseType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExerciseType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExerciseType: %w", err)
	}
	return oldValue.ExerciseType, nil
}

// ResetExerciseType resets all changes to the "exercise_type" field.
func (m *ExerciseEventMutation) ResetExerciseType() {
	m.exercise_type = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *ExerciseEventMutation) SetDifficulty(i int) {
	m.difficulty = &i
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *ExerciseEventMutation) Difficulty() (r int, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the ExerciseEvent entity.
// If the ExerciseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseEventMutation) OldDifficulty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds i to the "difficulty" field.
func (m *ExerciseEventMutation) AddDifficulty(i int) {
	if m.adddifficulty != nil {
		*m.adddifficulty += i
	} else {
		m.adddifficulty = &i
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *ExerciseEventMutation) AddedDifficulty() (r int, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *ExerciseEventMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// SetScore sets the "score" field.
func (m *ExerciseEventMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ExerciseEventMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the ExerciseEvent entity.
// If the ExerciseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseEventMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *ExerciseEventMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ExerciseEventMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *ExerciseEventMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetAccuracy sets the "accuracy" field.
func (m *ExerciseEventMutation) SetAccuracy(f float64) {
	m.accuracy = &f
	m.addaccuracy = nil
}

// Accuracy returns the value of the "accuracy" field in the mutation.
func (m *ExerciseEventMutation) Accuracy() (r float64, exists bool) {
	v := m.accuracy
	if v == nil {
		return
	}
	return *v, true
}

// OldAccuracy returns the old "accuracy" field's value of the ExerciseEvent entity.
// If the ExerciseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseEventMutation) OldAccuracy(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccuracy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccuracy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccuracy: %w", err)
	}
	return oldValue.Accuracy, nil
}

// AddAccuracy adds f to the "accuracy" field.
func (m *ExerciseEventMutation) AddAccuracy(f float64) {
	if m.addaccuracy != nil {
		*m.addaccuracy += f
	} else {
		m.addaccuracy = &f
	}
}

// AddedAccuracy returns the value that was added to the "accuracy" field in this mutation.
func (m *ExerciseEventMutation) AddedAccuracy() (r float64, exists bool) {
	v := m.addaccuracy
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccuracy resets all changes to the "accuracy" field.
func (m *ExerciseEventMutation) ResetAccuracy() {
	m.accuracy = nil
	m.addaccuracy = nil
}

// SetIsCorrect sets the "is_correct" field.
func (m *ExerciseEventMutation) SetIsCorrect(b bool) {
	m.is_correct = &b
}

// IsCorrect returns the value of the "is_correct" field in the mutation.
func (m *ExerciseEventMutation) IsCorrect() (r bool, exists bool) {
	v := m.is_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCorrect returns the old "is_correct" field's value of the ExerciseEvent entity.
// If the ExerciseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseEventMutation) OldIsCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCorrect: %w", err)
	}
	return oldValue.IsCorrect, nil
}

// ResetIsCorrect resets all changes to the "is_correct" field.
func (m *ExerciseEventMutation) ResetIsCorrect() {
	m.is_correct = nil
}

// SetCompletionTimeSecs sets the "completion_time_secs" field.
func (m *ExerciseEventMutation) SetCompletionTimeSecs(i int) {
	m.completion_time_secs = &i
	m.addcompletion_time_secs = nil
}

// CompletionTimeSecs returns the value of the "completion_time_secs" field in the mutation.
func (m *ExerciseEventMutation) CompletionTimeSecs() (r int, exists bool) {
	v := m.completion_time_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTimeSecs returns the old "completion_time_secs" field's value of the ExerciseEvent entity.
// If the ExerciseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseEventMutation) OldCompletionTimeSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTimeSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTimeSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTimeSecs: %w", err)
	}
	return oldValue.CompletionTimeSecs, nil
}

// AddCompletionTimeSecs adds i to the "completion_time_secs" field.
func (m *ExerciseEventMutation) AddCompletionTimeSecs(i int) {
	if m.addcompletion_time_secs != nil {
		*m.addcompletion_time_secs += i
	} else {
		m.addcompletion_time_secs = &i
	}
}

// AddedCompletionTimeSecs returns the value that was added to the "completion_time_secs" field in this mutation.
func (m *ExerciseEventMutation) AddedCompletionTimeSecs() (r int, exists bool) {
	v := m.addcompletion_time_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionTimeSecs resets all changes to the "completion_time_secs" field.
func (m *ExerciseEventMutation) ResetCompletionTimeSecs() {
	m.completion_time_secs = nil
	m.addcompletion_time_secs = nil
}

// SetHintsUsed sets the "hints_used" field.
func (m *ExerciseEventMutation) SetHintsUsed(i int) {
	m.hints_used = &i
	m.addhints_used = nil
}

// HintsUsed returns the value of the "hints_used" field in the mutation.
func (m *ExerciseEventMutation) HintsUsed() (r int, exists bool) {
	v := m.hints_used
	if v == nil {
		return
	}
	return *v, true
}

// OldHintsUsed returns the old "hints_used" field's value of the ExerciseEvent entity.
// If the ExerciseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseEventMutation) OldHintsUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHintsUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHintsUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHintsUsed: %w", err)
	}
	return oldValue.HintsUsed, nil
}

// AddHintsUsed adds i to the "hints_used" field.
func (m *ExerciseEventMutation) AddHintsUsed(i int) {
	if m.addhints_used != nil {
		*m.addhints_used += i
	} else {
		m.addhints_used = &i
	}
}

// AddedHintsUsed returns the value that was added to the "hints_used" field in this mutation.
func (m *ExerciseEventMutation) AddedHintsUsed() (r int, exists bool) {
	v := m.addhints_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetHintsUsed resets all changes to the "hints_used" field.
func (m *ExerciseEventMutation) ResetHintsUsed() {
	m.hints_used = nil
	m.addhints_used = nil
}

// Where appends a list predicates to the ExerciseEventMutation builder.
func (m *ExerciseEventMutation) Where(ps ...predicate.ExerciseEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExerciseEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExerciseEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExerciseEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExerciseEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExerciseEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExerciseEvent).
func (m *ExerciseEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExerciseEventMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.sequence != nil {
		fields = append(fields, exerciseevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, exerciseevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, exerciseevent.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, exerciseevent.FieldUserID)
	}
	if m.exercise_id != nil {
		fields = append(fields, exerciseevent.FieldExerciseID)
	}
	if m.category != nil {
		fields = append(fields, exerciseevent.FieldCategory)
	}
	if m.exercise_type != nil {
		fields = append(fields, exerciseevent.FieldExerciseType)
	}
	if m.difficulty != nil {
		fields = append(fields, exerciseevent.FieldDifficulty)
	}
	if m.score != nil {
		fields = append(fields, exerciseevent.FieldScore)
	}
	if m.accuracy != nil {
		fields = append(fields, exerciseevent.FieldAccuracy)
	}
	if m.is_correct != nil {
		fields = append(fields, exerciseevent.FieldIsCorrect)
	}
	if m.completion_time_secs != nil {
		fields = append(fields, exerciseevent.FieldCompletionTimeSecs)
	}
	if m.hints_used != nil {
		fields = append(fields, exerciseevent.FieldHintsUsed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExerciseEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case exerciseevent.FieldSequence:
		return m.Sequence()
	case exerciseevent.FieldTimestamp:
		return m.Timestamp()
	case exerciseevent.FieldSessionID:
		return m.SessionID()
	case exerciseevent.FieldUserID:
		return m.UserID()
	case exerciseevent.FieldExerciseID:
		return m.ExerciseID()
	case exerciseevent.FieldCategory:
		return m.Category()
	case exerciseevent.FieldExerciseType:
		return m.ExerciseType()
	case exerciseevent.FieldDifficulty:
		return m.Difficulty()
	case exerciseevent.FieldScore:
		return m.Score()
	case exerciseevent.FieldAccuracy:
		return m.Accuracy()
	case exerciseevent.FieldIsCorrect:
		return m.IsCorrect()
	case exerciseevent.FieldCompletionTimeSecs:
		return m.CompletionTimeSecs()
	case exerciseevent.FieldHintsUsed:
		return m.HintsUsed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExerciseEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case exerciseevent.FieldSequence:
		return m.OldSequence(ctx)
	case exerciseevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case exerciseevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case exerciseevent.FieldUserID:
		return m.OldUserID(ctx)
	case exerciseevent.FieldExerciseID:
		return m.OldExerciseID(ctx)
	case exerciseevent.FieldCategory:
		return m.OldCategory(ctx)
	case exerciseevent.FieldExerciseType:
		return m.OldExerciseType(ctx)
	case exerciseevent.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case exerciseevent.FieldScore:
		return m.OldScore(ctx)
	case exerciseevent.FieldAccuracy:
		return m.OldAccuracy(ctx)
	case exerciseevent.FieldIsCorrect:
		return m.OldIsCorrect(ctx)
	case exerciseevent.FieldCompletionTimeSecs:
		return m.OldCompletionTimeSecs(ctx)
	case exerciseevent.FieldHintsUsed:
		return m.OldHintsUsed(ctx)
	}
	return nil, fmt.Errorf("unknown ExerciseEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExerciseEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case exerciseevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case exerciseevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case exerciseevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case exerciseevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case exerciseevent.FieldExerciseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExerciseID(v)
		return nil
	case exerciseevent.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case exerciseevent.FieldExerciseType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExerciseType(v)
		return nil
	case exerciseevent.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case exerciseevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case exerciseevent.FieldAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccuracy(v)
		return nil
	case exerciseevent.FieldIsCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCorrect(v)
		return nil
	case exerciseevent.FieldCompletionTimeSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTimeSecs(v)
		return nil
	case exerciseevent.FieldHintsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHintsUsed(v)
		return nil
	}
	return fmt.Errorf("unknown ExerciseEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExerciseEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, exerciseevent.FieldSequence)
	}
	if m.adddifficulty != nil {
		fields = append(fields, exerciseevent.FieldDifficulty)
	}
	if m.addscore != nil {
		fields = append(fields, exerciseevent.FieldScore)
	}
	if m.addaccuracy != nil {
		fields = append(fields, exerciseevent.FieldAccuracy)
	}
	if m.addcompletion_time_secs != nil {
		fields = append(fields, exerciseevent.FieldCompletionTimeSecs)
	}
	if m.addhints_used != nil {
		fields = append(fields, exerciseevent.FieldHintsUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExerciseEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case exerciseevent.FieldSequence:
		return m.AddedSequence()
	case exerciseevent.FieldDifficulty:
		return m.AddedDifficulty()
	case exerciseevent.FieldScore:
		return m.AddedScore()
	case exerciseevent.FieldAccuracy:
		return m.AddedAccuracy()
	case exerciseevent.FieldCompletionTimeSecs:
		return m.AddedCompletionTimeSecs()
	case exerciseevent.FieldHintsUsed:
		return m.AddedHintsUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExerciseEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case exerciseevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case exerciseevent.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	case exerciseevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case exerciseevent.FieldAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccuracy(v)
		return nil
	case exerciseevent.FieldCompletionTimeSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTimeSecs(v)
		return nil
	case exerciseevent.FieldHintsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHintsUsed(v)
		return nil
	}
	return fmt.Errorf("unknown ExerciseEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExerciseEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExerciseEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExerciseEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ExerciseEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExerciseEventMutation) ResetField(name string) error {
	switch name {
	case exerciseevent.FieldSequence:
		m.ResetSequence()
		return nil
	case exerciseevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case exerciseevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case exerciseevent.FieldUserID:
		m.ResetUserID()
		return nil
	case exerciseevent.FieldExerciseID:
		m.ResetExerciseID()
		return nil
	case exerciseevent.FieldCategory:
		m.ResetCategory()
		return nil
	case exerciseevent.FieldExerciseType:
		m.ResetExerciseType()
		return nil
	case exerciseevent.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case exerciseevent.FieldScore:
		m.ResetScore()
		return nil
	case exerciseevent.FieldAccuracy:
		m.ResetAccuracy()
		return nil
	case exerciseevent.FieldIsCorrect:
		m.ResetIsCorrect()
		return nil
	case exerciseevent.FieldCompletionTimeSecs:
		m.ResetCompletionTimeSecs()
		return nil
	case exerciseevent.FieldHintsUsed:
		m.ResetHintsUsed()
		return nil
	}
	return fmt.Errorf("unknown ExerciseEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExerciseEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExerciseEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExerciseEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExerciseEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExerciseEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExerciseEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExerciseEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExerciseEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExerciseEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExerciseEvent edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	request_body     *string
	response_body    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRequestBody sets the "request_body" field.
func (m *LLMRequestEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *LLMRequestEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *LLMRequestEventMutation) ResetRequestBody() {
	m.request_body = nil
}

// SetResponseBody sets the "response_body" field.
func (m *LLMRequestEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *LLMRequestEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *LLMRequestEventMutation) ResetResponseBody() {
	m.response_body = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, llmrequestevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, llmrequestevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldRequestBody:
		return m.RequestBody()
	case llmrequestevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case llmrequestevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case llmrequestevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case llmrequestevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// ScenarioEventMutation represents an operation that mutates the ScenarioEvent nodes in the graph.
type ScenarioEventMutation struct {
	config
	op                Op
	typ               string
	id                *int
	sequence          *int64
	addsequence       *int64
	timestamp         *time.Time
	session_id        *string
	user_id           *string
	scenario_id       *string
	scenario_type     *string
	difficulty        *int
	adddifficulty     *int
	average_score     *float64
	addaverage_score  *float64
	total_turns       *int
	addtotal_turns    *int
	performance_grade *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ScenarioEvent, error)
	predicates        []predicate.ScenarioEvent
}

var _ ent.Mutation = (*ScenarioEventMutation)(nil)

// scenarioeventOption allows management of the mutation configuration using functional options.
type scenarioeventOption func(*ScenarioEventMutation)

// newScenarioEventMutation creates new mutation for the ScenarioEvent entity.
func newScenarioEventMutation(c config, op Op, opts ...scenarioeventOption) *ScenarioEventMutation {
	m := &ScenarioEventMutation{
		config:        c,
		op:            op,
		typ:           TypeScenarioEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScenarioEventID sets the ID field of the mutation.
func withScenarioEventID(id int) scenarioeventOption {
	return func(m *ScenarioEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ScenarioEvent
		)
		m.oldValue = func(ctx context.Context) (*ScenarioEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScenarioEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScenarioEvent sets the old ScenarioEvent of the mutation.
func withScenarioEvent(node *ScenarioEvent) scenarioeventOption {
	return func(m *ScenarioEventMutation) {
		m.oldValue = func(context.Context) (*ScenarioEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScenarioEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScenarioEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScenarioEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScenarioEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScenarioEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ScenarioEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ScenarioEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ScenarioEvent entity.
// If the ScenarioEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ScenarioEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ScenarioEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ScenarioEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ScenarioEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ScenarioEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ScenarioEvent entity.
// If the ScenarioEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ScenarioEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *ScenarioEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ScenarioEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ScenarioEvent entity.
// If the ScenarioEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ScenarioEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *ScenarioEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ScenarioEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ScenarioEvent entity.
// If the ScenarioEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ScenarioEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetScenarioID sets the "scenario_id" field.
func (m *ScenarioEventMutation) SetScenarioID(s string) {
	m.scenario_id = &s
}

// ScenarioID returns the value of the "scenario_id" field in the mutation.
func (m *ScenarioEventMutation) ScenarioID() (r string, exists bool) {
	v := m.scenario_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScenarioID returns the old "scenario_id" field's value of the ScenarioEvent entity.
// If the ScenarioEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioEventMutation) OldScenarioID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenarioID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenarioID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenarioID: %w", err)
	}
	return oldValue.ScenarioID, nil
}

// ResetScenarioID resets all changes to the "scenario_id" field.
func (m *ScenarioEventMutation) ResetScenarioID() {
	m.scenario_id = nil
}

// SetScenarioType sets the "scenario_type" field.
func (m *ScenarioEventMutation) SetScenarioType(s string) {
	m.scenario_type = &s
}

// ScenarioType returns the value of the "scenario_type" field in the mutation.
func (m *ScenarioEventMutation) ScenarioType() (r string, exists bool) {
	v := m.scenario_type
	if v == nil {
		return
	}
	return *v, true
}

// OldScenarioType returns the old "scenario_type" field's value of the ScenarioEvent entity.
// If the ScenarioEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioEventMutation) OldScenarioType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenarioType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenarioType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenarioType: %w", err)
	}
	return oldValue.ScenarioType, nil
}

// ResetScenarioType resets all changes to the "scenario_type" field.
func (m *ScenarioEventMutation) ResetScenarioType() {
	m.scenario_type = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *ScenarioEventMutation) SetDifficulty(i int) {
	m.difficulty = &i
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *ScenarioEventMutation) Difficulty() (r int, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the ScenarioEvent entity.
// If the ScenarioEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioEventMutation) OldDifficulty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds i to the "difficulty" field.
func (m *ScenarioEventMutation) AddDifficulty(i int) {
	if m.adddifficulty != nil {
		*m.adddifficulty += i
	} else {
		m.adddifficulty = &i
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *ScenarioEventMutation) AddedDifficulty() (r int, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *ScenarioEventMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// SetAverageScore sets the "average_score" field.
func (m *ScenarioEventMutation) SetAverageScore(f float64) {
	m.average_score = &f
	m.addaverage_score = nil
}

// AverageScore returns the value of the "average_score" field in the mutation.
func (m *ScenarioEventMutation) AverageScore() (r float64, exists bool) {
	v := m.average_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAverageScore returns the old "average_score" field's value of the ScenarioEvent entity.
// If the ScenarioEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioEventMutation) OldAverageScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAverageScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAverageScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAverageScore: %w", err)
	}
	return oldValue.AverageScore, nil
}

// AddAverageScore adds f to the "average_score" field.
func (m *ScenarioEventMutation) AddAverageScore(f float64) {
	if m.addaverage_score != nil {
		*m.addaverage_score += f
	} else {
		m.addaverage_score = &f
	}
}

// AddedAverageScore returns the value that was added to the "average_score" field in this mutation.
func (m *ScenarioEventMutation) AddedAverageScore() (r float64, exists bool) {
	v := m.addaverage_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAverageScore resets all changes to the "average_score" field.
func (m *ScenarioEventMutation) ResetAverageScore() {
	m.average_score = nil
	m.addaverage_score = nil
}

// SetTotalTurns sets the "total_turns" field.
func (m *ScenarioEventMutation) SetTotalTurns(i int) {
	m.total_turns = &i
	m.addtotal_turns = nil
}

// TotalTurns returns the value of the "total_turns" field in the mutation.
func (m *ScenarioEventMutation) TotalTurns() (r int, exists bool) {
	v := m.total_turns
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTurns returns the old "total_turns" field's value of the ScenarioEvent entity.
// If the ScenarioEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioEventMutation) OldTotalTurns(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTurns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTurns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTurns: %w", err)
	}
	return oldValue.TotalTurns, nil
}

// AddTotalTurns adds i to the "total_turns" field.
func (m *ScenarioEventMutation) AddTotalTurns(i int) {
	if m.addtotal_turns != nil {
		*m.addtotal_turns += i
	} else {
		m.addtotal_turns = &i
	}
}

// AddedTotalTurns returns the value that was added to the "total_turns" field in this mutation.
func (m *ScenarioEventMutation) AddedTotalTurns() (r int, exists bool) {
	v := m.addtotal_turns
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTurns resets all changes to the "total_turns" field.
func (m *ScenarioEventMutation) ResetTotalTurns() {
	m.total_turns = nil
	m.addtotal_turns = nil
}

// SetPerformanceGrade sets the "performance_grade" field.
func (m *ScenarioEventMutation) SetPerformanceGrade(s string) {
	m.performance_grade = &s
}

// PerformanceGrade returns the value of the "performance_grade" field in the mutation.
func (m *ScenarioEventMutation) PerformanceGrade() (r string, exists bool) {
	v := m.performance_grade
	if v == nil {
		return
	}
	return *v, true
}

// OldPerformanceGrade returns the old "performance_grade" field's value of the ScenarioEvent entity.
// If the ScenarioEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioEventMutation) OldPerformanceGrade(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerformanceGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerformanceGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerformanceGrade: %w", err)
	}
	return oldValue.PerformanceGrade, nil
}

// ResetPerformanceGrade resets all changes to the "performance_grade" field.
func (m *ScenarioEventMutation) ResetPerformanceGrade() {
	m.performance_grade = nil
}

// Where appends a list predicates to the ScenarioEventMutation builder.
func (m *ScenarioEventMutation) Where(ps ...predicate.ScenarioEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScenarioEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScenarioEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScenarioEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScenarioEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScenarioEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScenarioEvent).
func (m *ScenarioEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScenarioEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, scenarioevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, scenarioevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, scenarioevent.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, scenarioevent.FieldUserID)
	}
	if m.scenario_id != nil {
		fields = append(fields, scenarioevent.FieldScenarioID)
	}
	if m.scenario_type != nil {
		fields = append(fields, scenarioevent.FieldScenarioType)
	}
	if m.difficulty != nil {
		fields = append(fields, scenarioevent.FieldDifficulty)
	}
	if m.average_score != nil {
		fields = append(fields, scenarioevent.FieldAverageScore)
	}
	if m.total_turns != nil {
		fields = append(fields, scenarioevent.FieldTotalTurns)
	}
	if m.performance_grade != nil {
		fields = append(fields, scenarioevent.FieldPerformanceGrade)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScenarioEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scenarioevent.FieldSequence:
		return m.Sequence()
	case scenarioevent.FieldTimestamp:
		return m.Timestamp()
	case scenarioevent.FieldSessionID:
		return m.SessionID()
	case scenarioevent.FieldUserID:
		return m.UserID()
	case scenarioevent.FieldScenarioID:
		return m.ScenarioID()
	case scenarioevent.FieldScenarioType:
		return m.ScenarioType()
	case scenarioevent.FieldDifficulty:
		return m.Difficulty()
	case scenarioevent.FieldAverageScore:
		return m.AverageScore()
	case scenarioevent.FieldTotalTurns:
		return m.TotalTurns()
	case scenarioevent.FieldPerformanceGrade:
		return m.PerformanceGrade()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScenarioEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scenarioevent.FieldSequence:
		return m.OldSequence(ctx)
	case scenarioevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case scenarioevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case scenarioevent.FieldUserID:
		return m.OldUserID(ctx)
	case scenarioevent.FieldScenarioID:
		return m.OldScenarioID(ctx)
	case scenarioevent.FieldScenarioType:
		return m.OldScenarioType(ctx)
	case scenarioevent.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case scenarioevent.FieldAverageScore:
		return m.OldAverageScore(ctx)
	case scenarioevent.FieldTotalTurns:
		return m.OldTotalTurns(ctx)
	case scenarioevent.FieldPerformanceGrade:
		return m.OldPerformanceGrade(ctx)
	}
	return nil, fmt.Errorf("unknown ScenarioEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScenarioEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scenarioevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case scenarioevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case scenarioevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case scenarioevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case scenarioevent.FieldScenarioID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenarioID(v)
		return nil
	case scenarioevent.FieldScenarioType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenarioType(v)
		return nil
	case scenarioevent.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case scenarioevent.FieldAverageScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAverageScore(v)
		return nil
	case scenarioevent.FieldTotalTurns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTurns(v)
		return nil
	case scenarioevent.FieldPerformanceGrade:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerformanceGrade(v)
		return nil
	}
	return fmt.Errorf("unknown ScenarioEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScenarioEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, scenarioevent.FieldSequence)
	}
	if m.adddifficulty != nil {
		fields = append(fields, scenarioevent.FieldDifficulty)
	}
	if m.addaverage_score != nil {
		fields = append(fields, scenarioevent.FieldAverageScore)
	}
	if m.addtotal_turns != nil {
		fields = append(fields, scenarioevent.FieldTotalTurns)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScenarioEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scenarioevent.FieldSequence:
		return m.AddedSequence()
	case scenarioevent.FieldDifficulty:
		return m.AddedDifficulty()
	case scenarioevent.FieldAverageScore:
		return m.AddedAverageScore()
	case scenarioevent.FieldTotalTurns:
		return m.AddedTotalTurns()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScenarioEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scenarioevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case scenarioevent.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	case scenarioevent.FieldAverageScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAverageScore(v)
		return nil
	case scenarioevent.FieldTotalTurns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTurns(v)
		return nil
	}
	return fmt.Errorf("unknown ScenarioEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScenarioEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScenarioEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScenarioEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ScenarioEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScenarioEventMutation) ResetField(name string) error {
	switch name {
	case scenarioevent.FieldSequence:
		m.ResetSequence()
		return nil
	case scenarioevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case scenarioevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case scenarioevent.FieldUserID:
		m.ResetUserID()
		return nil
	case scenarioevent.FieldScenarioID:
		m.ResetScenarioID()
		return nil
	case scenarioevent.FieldScenarioType:
		m.ResetScenarioType()
		return nil
	case scenarioevent.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case scenarioevent.FieldAverageScore:
		m.ResetAverageScore()
		return nil
	case scenarioevent.FieldTotalTurns:
		m.ResetTotalTurns()
		return nil
	case scenarioevent.FieldPerformanceGrade:
		m.ResetPerformanceGrade()
		return nil
	}
	return fmt.Errorf("unknown ScenarioEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScenarioEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScenarioEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScenarioEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScenarioEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScenarioEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScenarioEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScenarioEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScenarioEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScenarioEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScenarioEvent edge %s", name)
}

// SessionEventMutation represents an operation that mutates the SessionEvent nodes in the graph.
type SessionEventMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	sequence               *int64
	addsequence            *int64
	timestamp              *time.Time
	session_id             *string
	user_id                *string
	action                 *string
	session_type           *string
	starting_level         *int
	addstarting_level      *int
	exercises_completed    *int
	addexercises_completed *int
	scenarios_completed    *int
	addscenarios_completed *int
	average_score          *float64
	addaverage_score       *float64
	duration_secs          *int
	addduration_secs       *int
	recommendation         *string
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*SessionEvent, error)
	predicates             []predicate.SessionEvent
}

var _ ent.Mutation = (*SessionEventMutation)(nil)

// sessioneventOption allows management of the mutation configuration using functional options.
type sessioneventOption func(*SessionEventMutation)

// newSessionEventMutation creates new mutation for the SessionEvent entity.
func newSessionEventMutation(c config, op Op, opts ...sessioneventOption) *SessionEventMutation {
	m := &SessionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionEventID sets the ID field of the mutation.
func withSessionEventID(id int) sessioneventOption {
	return func(m *SessionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionEvent
		)
		m.oldValue = func(ctx context.Context) (*SessionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionEvent sets the old SessionEvent of the mutation.
func withSessionEvent(node *SessionEvent) sessioneventOption {
	return func(m *SessionEventMutation) {
		m.oldValue = func(context.Context) (*SessionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SessionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SessionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SessionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SessionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SessionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SessionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SessionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SessionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *SessionEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetAction sets the "action" field.
func (m *SessionEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *SessionEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *SessionEventMutation) ResetAction() {
	m.action = nil
}

// SetSessionType sets the "session_type" field.
func (m *SessionEventMutation) SetSessionType(s string) {
	m.session_type = &s
}

// SessionType returns the value of the "session_type" field in the mutation.
func (m *SessionEventMutation) SessionType() (r string, exists bool) {
	v := m.session_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionType returns the old "session_type" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSessionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionType: %w", err)
	}
	return oldValue.SessionType, nil
}

// ResetSessionType resets all changes to the "session_type" field.
func (m *SessionEventMutation) ResetSessionType() {
	m.session_type = nil
}

// SetStartingLevel sets the "starting_level" field.
func (m *SessionEventMutation) SetStartingLevel(i int) {
	m.starting_level = &i
	m.addstarting_level = nil
}

// StartingLevel returns the value of the "starting_level" field in the mutation.
func (m *SessionEventMutation) StartingLevel() (r int, exists bool) {
	v := m.starting_level
	if v == nil {
		return
	}
	return *v, true
}

// OldStartingLevel returns the old "starting_level" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldStartingLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartingLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartingLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartingLevel: %w", err)
	}
	return oldValue.StartingLevel, nil
}

// AddStartingLevel adds i to the "starting_level" field.
func (m *SessionEventMutation) AddStartingLevel(i int) {
	if m.addstarting_level != nil {
		*m.addstarting_level += i
	} else {
		m.addstarting_level = &i
	}
}

// AddedStartingLevel returns the value that was added to the "starting_level" field in this mutation.
func (m *SessionEventMutation) AddedStartingLevel() (r int, exists bool) {
	v := m.addstarting_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartingLevel resets all changes to the "starting_level" field.
func (m *SessionEventMutation) ResetStartingLevel() {
	m.starting_level = nil
	m.addstarting_level = nil
}

// SetExercisesCompleted sets the "exercises_completed" field.
func (m *SessionEventMutation) SetExercisesCompleted(i int) {
	m.exercises_completed = &i
	m.addexercises_completed = nil
}

// ExercisesCompleted returns the value of the "exercises_completed" field in the mutation.
func (m *SessionEventMutation) ExercisesCompleted() (r int, exists bool) {
	v := m.exercises_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldExercisesCompleted returns the old "exercises_completed" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldExercisesCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExercisesCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExercisesCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExercisesCompleted: %w", err)
	}
	return oldValue.ExercisesCompleted, nil
}

// AddExercisesCompleted adds i to the "exercises_completed" field.
func (m *SessionEventMutation) AddExercisesCompleted(i int) {
	if m.addexercises_completed != nil {
		*m.addexercises_completed += i
	} else {
		m.addexercises_completed = &i
	}
}

// AddedExercisesCompleted returns the value that was added to the "exercises_completed" field in this mutation.
func (m *SessionEventMutation) AddedExercisesCompleted() (r int, exists bool) {
	v := m.addexercises_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetExercisesCompleted resets all changes to the "exercises_completed" field.
func (m *SessionEventMutation) ResetExercisesCompleted() {
	m.exercises_completed = nil
	m.addexercises_completed = nil
}

// SetScenariosCompleted sets the "scenarios_completed" field.
func (m *SessionEventMutation) SetScenariosCompleted(i int) {
	m.scenarios_completed = &i
	m.addscenarios_completed = nil
}

// ScenariosCompleted returns the value of the "scenarios_completed" field in the mutation.
func (m *SessionEventMutation) ScenariosCompleted() (r int, exists bool) {
	v := m.scenarios_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldScenariosCompleted returns the old "scenarios_completed" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldScenariosCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenariosCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenariosCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenariosCompleted: %w", err)
	}
	return oldValue.ScenariosCompleted, nil
}

// AddScenariosCompleted adds i to the "scenarios_completed" field.
func (m *SessionEventMutation) AddScenariosCompleted(i int) {
	if m.addscenarios_completed != nil {
		*m.addscenarios_completed += i
	} else {
		m.addscenarios_completed = &i
	}
}

// AddedScenariosCompleted returns the value that was added to the "scenarios_completed" field in this mutation.
func (m *SessionEventMutation) AddedScenariosCompleted() (r int, exists bool) {
	v := m.addscenarios_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetScenariosCompleted resets all changes to the "scenarios_completed" field.
func (m *SessionEventMutation) ResetScenariosCompleted() {
	m.scenarios_completed = nil
	m.addscenarios_completed = nil
}

// SetAverageScore sets the "average_score" field.
func (m *SessionEventMutation) SetAverageScore(f float64) {
	m.average_score = &f
	m.addaverage_score = nil
}

// AverageScore returns the value of the "average_score" field in the mutation.
func (m *SessionEventMutation) AverageScore() (r float64, exists bool) {
	v := m.average_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAverageScore returns the old "average_score" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldAverageScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAverageScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAverageScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAverageScore: %w", err)
	}
	return oldValue.AverageScore, nil
}

// AddAverageScore adds f to the "average_score" field.
func (m *SessionEventMutation) AddAverageScore(f float64) {
	if m.addaverage_score != nil {
		*m.addaverage_score += f
	} else {
		m.addaverage_score = &f
	}
}

// AddedAverageScore returns the value that was added to the "average_score" field in this mutation.
func (m *SessionEventMutation) AddedAverageScore() (r float64, exists bool) {
	v := m.addaverage_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearAverageScore clears the value of the "average_score" field.
func (m *SessionEventMutation) ClearAverageScore() {
	m.average_score = nil
	m.addaverage_score = nil
	m.clearedFields[sessionevent.FieldAverageScore] = struct{}{}
}

// AverageScoreCleared returns if the "average_score" field was cleared in this mutation.
func (m *SessionEventMutation) AverageScoreCleared() bool {
	_, ok := m.clearedFields[sessionevent.FieldAverageScore]
	return ok
}

// ResetAverageScore resets all changes to the "average_score" field.
func (m *SessionEventMutation) ResetAverageScore() {
	m.average_score = nil
	m.addaverage_score = nil
	delete(m.clearedFields, sessionevent.FieldAverageScore)
}

// SetDurationSecs sets the "duration_secs" field.
func (m *SessionEventMutation) SetDurationSecs(i int) {
	m.duration_secs = &i
	m.addduration_secs = nil
}

// DurationSecs returns the value of the "duration_secs" field in the mutation.
func (m *SessionEventMutation) DurationSecs() (r int, exists bool) {
	v := m.duration_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSecs returns the old "duration_secs" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldDurationSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSecs: %w", err)
	}
	return oldValue.DurationSecs, nil
}

// AddDurationSecs adds i to the "duration_secs" field.
func (m *SessionEventMutation) AddDurationSecs(i int) {
	if m.addduration_secs != nil {
		*m.addduration_secs += i
	} else {
		m.addduration_secs = &i
	}
}

// AddedDurationSecs returns the value that was added to the "duration_secs" field in this mutation.
func (m *SessionEventMutation) AddedDurationSecs() (r int, exists bool) {
	v := m.addduration_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSecs resets all changes to the "duration_secs" field.
func (m *SessionEventMutation) ResetDurationSecs() {
	m.duration_secs = nil
	m.addduration_secs = nil
}

// SetRecommendation sets the "recommendation" field.
func (m *SessionEventMutation) SetRecommendation(s string) {
	m.recommendation = &s
}

// Recommendation returns the value of the "recommendation" field in the mutation.
func (m *SessionEventMutation) Recommendation() (r string, exists bool) {
	v := m.recommendation
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendation returns the old "recommendation" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldRecommendation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendation: %w", err)
	}
	return oldValue.Recommendation, nil
}

// ResetRecommendation resets all changes to the "recommendation" field.
func (m *SessionEventMutation) ResetRecommendation() {
	m.recommendation = nil
}

// Where appends a list predicates to the SessionEventMutation builder.
func (m *SessionEventMutation) Where(ps ...predicate.SessionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionEvent).
func (m *SessionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, sessionevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, sessionevent.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, sessionevent.FieldUserID)
	}
	if m.action != nil {
		fields = append(fields, sessionevent.FieldAction)
	}
	if m.session_type != nil {
		fields = append(fields, sessionevent.FieldSessionType)
	}
	if m.starting_level != nil {
		fields = append(fields, sessionevent.FieldStartingLevel)
	}
	if m.exercises_completed != nil {
		fields = append(fields, sessionevent.FieldExercisesCompleted)
	}
	if m.scenarios_completed != nil {
		fields = append(fields, sessionevent.FieldScenariosCompleted)
	}
	if m.average_score != nil {
		fields = append(fields, sessionevent.FieldAverageScore)
	}
	if m.duration_secs != nil {
		fields = append(fields, sessionevent.FieldDurationSecs)
	}
	if m.recommendation != nil {
		fields = append(fields, sessionevent.FieldRecommendation)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.Sequence()
	case sessionevent.FieldTimestamp:
		return m.Timestamp()
	case sessionevent.FieldSessionID:
		return m.SessionID()
	case sessionevent.FieldUserID:
		return m.UserID()
	case sessionevent.FieldAction:
		return m.Action()
	case sessionevent.FieldSessionType:
		return m.SessionType()
	case sessionevent.FieldStartingLevel:
		return m.StartingLevel()
	case sessionevent.FieldExercisesCompleted:
		return m.ExercisesCompleted()
	case sessionevent.FieldScenariosCompleted:
		return m.ScenariosCompleted()
	case sessionevent.FieldAverageScore:
		return m.AverageScore()
	case sessionevent.FieldDurationSecs:
		return m.DurationSecs()
	case sessionevent.FieldRecommendation:
		return m.Recommendation()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionevent.FieldSequence:
		return m.OldSequence(ctx)
	case sessionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case sessionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionevent.FieldUserID:
		return m.OldUserID(ctx)
	case sessionevent.FieldAction:
		return m.OldAction(ctx)
	case sessionevent.FieldSessionType:
		return m.OldSessionType(ctx)
	case sessionevent.FieldStartingLevel:
		return m.OldStartingLevel(ctx)
	case sessionevent.FieldExercisesCompleted:
		return m.OldExercisesCompleted(ctx)
	case sessionevent.FieldScenariosCompleted:
		return m.OldScenariosCompleted(ctx)
	case sessionevent.FieldAverageScore:
		return m.OldAverageScore(ctx)
	case sessionevent.FieldDurationSecs:
		return m.OldDurationSecs(ctx)
	case sessionevent.FieldRecommendation:
		return m.OldRecommendation(ctx)
	}
	return nil, fmt.Errorf("unknown SessionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case sessionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case sessionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case sessionevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case sessionevent.FieldSessionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionType(v)
		return nil
	case sessionevent.FieldStartingLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartingLevel(v)
		return nil
	case sessionevent.FieldExercisesCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExercisesCompleted(v)
		return nil
	case sessionevent.FieldScenariosCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenariosCompleted(v)
		return nil
	case sessionevent.FieldAverageScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAverageScore(v)
		return nil
	case sessionevent.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSecs(v)
		return nil
	case sessionevent.FieldRecommendation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendation(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.addstarting_level != nil {
		fields = append(fields, sessionevent.FieldStartingLevel)
	}
	if m.addexercises_completed != nil {
		fields = append(fields, sessionevent.FieldExercisesCompleted)
	}
	if m.addscenarios_completed != nil {
		fields = append(fields, sessionevent.FieldScenariosCompleted)
	}
	if m.addaverage_score != nil {
		fields = append(fields, sessionevent.FieldAverageScore)
	}
	if m.addduration_secs != nil {
		fields = append(fields, sessionevent.FieldDurationSecs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.AddedSequence()
	case sessionevent.FieldStartingLevel:
		return m.AddedStartingLevel()
	case sessionevent.FieldExercisesCompleted:
		return m.AddedExercisesCompleted()
	case sessionevent.FieldScenariosCompleted:
		return m.AddedScenariosCompleted()
	case sessionevent.FieldAverageScore:
		return m.AddedAverageScore()
	case sessionevent.FieldDurationSecs:
		return m.AddedDurationSecs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case sessionevent.FieldStartingLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartingLevel(v)
		return nil
	case sessionevent.FieldExercisesCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExercisesCompleted(v)
		return nil
	case sessionevent.FieldScenariosCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScenariosCompleted(v)
		return nil
	case sessionevent.FieldAverageScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAverageScore(v)
		return nil
	case sessionevent.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSecs(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionevent.FieldAverageScore) {
		fields = append(fields, sessionevent.FieldAverageScore)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionEventMutation) ClearField(name string) error {
	switch name {
	case sessionevent.FieldAverageScore:
		m.ClearAverageScore()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionEventMutation) ResetField(name string) error {
	switch name {
	case sessionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case sessionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case sessionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionevent.FieldUserID:
		m.ResetUserID()
		return nil
	case sessionevent.FieldAction:
		m.ResetAction()
		return nil
	case sessionevent.FieldSessionType:
		m.ResetSessionType()
		return nil
	case sessionevent.FieldStartingLevel:
		m.ResetStartingLevel()
		return nil
	case sessionevent.FieldExercisesCompleted:
		m.ResetExercisesCompleted()
		return nil
	case sessionevent.FieldScenariosCompleted:
		m.ResetScenariosCompleted()
		return nil
	case sessionevent.FieldAverageScore:
		m.ResetAverageScore()
		return nil
	case sessionevent.FieldDurationSecs:
		m.ResetDurationSecs()
		return nil
	case sessionevent.FieldRecommendation:
		m.ResetRecommendation()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent edge %s", name)
}
