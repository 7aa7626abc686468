// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/cogniplay/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cogniplay/ent/difficultytracking"
	"github.com/abhisek/cogniplay/ent/exerciseevent"
	"github.com/abhisek/cogniplay/ent/llmrequestevent"
	"github.com/abhisek/cogniplay/ent/scenarioevent"
	"github.com/abhisek/cogniplay/ent/sessionevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DifficultyTracking is the client for interacting with the DifficultyTracking builders.
	DifficultyTracking *DifficultyTrackingClient
	// ExerciseEvent is the client for interacting with the ExerciseEvent builders.
	ExerciseEvent *ExerciseEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// ScenarioEvent is the client for interacting with the ScenarioEvent builders.
	ScenarioEvent *ScenarioEventClient
	// SessionEvent is the client for interacting with the SessionEvent builders.
	SessionEvent *SessionEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DifficultyTracking = NewDifficultyTrackingClient(c.config)
	c.ExerciseEvent = NewExerciseEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.ScenarioEvent = NewScenarioEventClient(c.config)
	c.SessionEvent = NewSessionEventClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		DifficultyTracking: NewDifficultyTrackingClient(cfg),
		ExerciseEvent:      NewExerciseEventClient(cfg),
		LLMRequestEvent:    NewLLMRequestEventClient(cfg),
		ScenarioEvent:      NewScenarioEventClient(cfg),
		SessionEvent:       NewSessionEventClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		DifficultyTracking: NewDifficultyTrackingClient(cfg),
		ExerciseEvent:      NewExerciseEventClient(cfg),
		LLMRequestEvent:    NewLLMRequestEventClient(cfg),
		ScenarioEvent:      NewScenarioEventClient(cfg),
		SessionEvent:       NewSessionEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DifficultyTracking.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.DifficultyTracking.Use(hooks...)
	c.ExerciseEvent.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.ScenarioEvent.Use(hooks...)
	c.SessionEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.DifficultyTracking.Intercept(interceptors...)
	c.ExerciseEvent.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.ScenarioEvent.Intercept(interceptors...)
	c.SessionEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DifficultyTrackingMutation:
		return c.DifficultyTracking.mutate(ctx, m)
	case *ExerciseEventMutation:
		return c.ExerciseEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *ScenarioEventMutation:
		return c.ScenarioEvent.mutate(ctx, m)
	case *SessionEventMutation:
		return c.SessionEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DifficultyTrackingClient is a client for the DifficultyTracking schema.
type DifficultyTrackingClient struct {
	config
}

// NewDifficultyTrackingClient returns a client for the DifficultyTracking from the given config.
func NewDifficultyTrackingClient(c config) *DifficultyTrackingClient {
	return &DifficultyTrackingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `difficultytracking.Hooks(f(g(h())))`.
func (c *DifficultyTrackingClient) Use(hooks ...Hook) {
	c.hooks.DifficultyTracking = append(c.hooks.DifficultyTracking, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `difficultytracking.Intercept(f(g(h())))`.
func (c *DifficultyTrackingClient) Intercept(interceptors ...Interceptor) {
	c.inters.DifficultyTracking = append(c.inters.DifficultyTracking, interceptors...)
}

// Create returns a builder for creating a DifficultyTracking entity.
func (c *DifficultyTrackingClient) Create() *DifficultyTrackingCreate {
	mutation := newDifficultyTrackingMutation(c.config, OpCreate)
	return &DifficultyTrackingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DifficultyTracking entities.
func (c *DifficultyTrackingClient) CreateBulk(builders ...*DifficultyTrackingCreate) *DifficultyTrackingCreateBulk {
	return &DifficultyTrackingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DifficultyTrackingClient) MapCreateBulk(slice any, setFunc func(*DifficultyTrackingCreate, int)) *DifficultyTrackingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DifficultyTrackingCreateBulk{err: fmt.Errorf("calling to DifficultyTrackingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DifficultyTrackingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DifficultyTrackingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DifficultyTracking.
func (c *DifficultyTrackingClient) Update() *DifficultyTrackingUpdate {
	mutation := newDifficultyTrackingMutation(c.config, OpUpdate)
	return &DifficultyTrackingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DifficultyTrackingClient) UpdateOne(_m *DifficultyTracking) *DifficultyTrackingUpdateOne {
	mutation := newDifficultyTrackingMutation(c.config, OpUpdateOne, withDifficultyTracking(_m))
	return &DifficultyTrackingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DifficultyTrackingClient) UpdateOneID(id int) *DifficultyTrackingUpdateOne {
	mutation := newDifficultyTrackingMutation(c.config, OpUpdateOne, withDifficultyTrackingID(id))
	return &DifficultyTrackingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DifficultyTracking.
func (c *DifficultyTrackingClient) Delete() *DifficultyTrackingDelete {
	mutation := newDifficultyTrackingMutation(c.config, OpDelete)
	return &DifficultyTrackingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DifficultyTrackingClient) DeleteOne(_m *DifficultyTracking) *DifficultyTrackingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DifficultyTrackingClient) DeleteOneID(id int) *DifficultyTrackingDeleteOne {
	builder := c.Delete().Where(difficultytracking.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DifficultyTrackingDeleteOne{builder}
}

// Query returns a query builder for DifficultyTracking.
func (c *DifficultyTrackingClient) Query() *DifficultyTrackingQuery {
	return &DifficultyTrackingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDifficultyTracking},
		inters: c.Interceptors(),
	}
}

// Get returns a DifficultyTracking entity by its id.
func (c *DifficultyTrackingClient) Get(ctx context.Context, id int) (*DifficultyTracking, error) {
	return c.Query().Where(difficultytracking.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DifficultyTrackingClient) GetX(ctx context.Context, id int) *DifficultyTracking {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DifficultyTrackingClient) Hooks() []Hook {
	return c.hooks.DifficultyTracking
}

// Interceptors returns the client interceptors.
func (c *DifficultyTrackingClient) Interceptors() []Interceptor {
	return c.inters.DifficultyTracking
}

func (c *DifficultyTrackingClient) mutate(ctx context.Context, m *DifficultyTrackingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DifficultyTrackingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DifficultyTrackingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DifficultyTrackingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DifficultyTrackingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DifficultyTracking mutation op: %q", m.Op())
	}
}

// ExerciseEventClient is a client for the ExerciseEvent schema.
type ExerciseEventClient struct {
	config
}

// NewExerciseEventClient returns a client for the ExerciseEvent from the given config.
func NewExerciseEventClient(c config) *ExerciseEventClient {
	return &ExerciseEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `exerciseevent.Hooks(f(g(h())))`.
func (c *ExerciseEventClient) Use(hooks ...Hook) {
	c.hooks.ExerciseEvent = append(c.hooks.ExerciseEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `exerciseevent.Intercept(f(g(h())))`.
func (c *ExerciseEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExerciseEvent = append(c.inters.ExerciseEvent, interceptors...)
}

// Create returns a builder for creating a ExerciseEvent entity.
func (c *ExerciseEventClient) Create() *ExerciseEventCreate {
	mutation := newExerciseEventMutation(c.config, OpCreate)
	return &ExerciseEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExerciseEvent entities.
func (c *ExerciseEventClient) CreateBulk(builders ...*ExerciseEventCreate) *ExerciseEventCreateBulk {
	return &ExerciseEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExerciseEventClient) MapCreateBulk(slice any, setFunc func(*ExerciseEventCreate, int)) *ExerciseEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExerciseEventCreateBulk{err: fmt.Errorf("calling to ExerciseEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExerciseEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExerciseEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExerciseEvent.
func (c *ExerciseEventClient) Update() *ExerciseEventUpdate {
	mutation := newExerciseEventMutation(c.config, OpUpdate)
	return &ExerciseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExerciseEventClient) UpdateOne(_m *ExerciseEvent) *ExerciseEventUpdateOne {
	mutation := newExerciseEventMutation(c.config, OpUpdateOne, withExerciseEvent(_m))
	return &ExerciseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExerciseEventClient) UpdateOneID(id int) *ExerciseEventUpdateOne {
	mutation := newExerciseEventMutation(c.config, OpUpdateOne, withExerciseEventID(id))
	return &ExerciseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExerciseEvent.
func (c *ExerciseEventClient) Delete() *ExerciseEventDelete {
	mutation := newExerciseEventMutation(c.config, OpDelete)
	return &ExerciseEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExerciseEventClient) DeleteOne(_m *ExerciseEvent) *ExerciseEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExerciseEventClient) DeleteOneID(id int) *ExerciseEventDeleteOne {
	builder := c.Delete().Where(exerciseevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExerciseEventDeleteOne{builder}
}

// Query returns a query builder for ExerciseEvent.
func (c *ExerciseEventClient) Query() *ExerciseEventQuery {
	return &ExerciseEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExerciseEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ExerciseEvent entity by its id.
func (c *ExerciseEventClient) Get(ctx context.Context, id int) (*ExerciseEvent, error) {
	return c.Query().Where(exerciseevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExerciseEventClient) GetX(ctx context.Context, id int) *ExerciseEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExerciseEventClient) Hooks() []Hook {
	return c.hooks.ExerciseEvent
}

// Interceptors returns the client interceptors.
func (c *ExerciseEventClient) Interceptors() []Interceptor {
	return c.inters.ExerciseEvent
}

func (c *ExerciseEventClient) mutate(ctx context.Context, m *ExerciseEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExerciseEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExerciseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExerciseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExerciseEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExerciseEvent mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// ScenarioEventClient is a client for the ScenarioEvent schema.
type ScenarioEventClient struct {
	config
}

// NewScenarioEventClient returns a client for the ScenarioEvent from the given config.
func NewScenarioEventClient(c config) *ScenarioEventClient {
	return &ScenarioEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scenarioevent.Hooks(f(g(h())))`.
func (c *ScenarioEventClient) Use(hooks ...Hook) {
	c.hooks.ScenarioEvent = append(c.hooks.ScenarioEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scenarioevent.Intercept(f(g(h())))`.
func (c *ScenarioEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScenarioEvent = append(c.inters.ScenarioEvent, interceptors...)
}

// Create returns a builder for creating a ScenarioEvent entity.
func (c *ScenarioEventClient) Create() *ScenarioEventCreate {
	mutation := newScenarioEventMutation(c.config, OpCreate)
	return &ScenarioEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScenarioEvent entities.
func (c *ScenarioEventClient) CreateBulk(builders ...*ScenarioEventCreate) *ScenarioEventCreateBulk {
	return &ScenarioEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScenarioEventClient) MapCreateBulk(slice any, setFunc func(*ScenarioEventCreate, int)) *ScenarioEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScenarioEventCreateBulk{err: fmt.Errorf("calling to ScenarioEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScenarioEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScenarioEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScenarioEvent.
func (c *ScenarioEventClient) Update() *ScenarioEventUpdate {
	mutation := newScenarioEventMutation(c.config, OpUpdate)
	return &ScenarioEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScenarioEventClient) UpdateOne(_m *ScenarioEvent) *ScenarioEventUpdateOne {
	mutation := newScenarioEventMutation(c.config, OpUpdateOne, withScenarioEvent(_m))
	return &ScenarioEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScenarioEventClient) UpdateOneID(id int) *ScenarioEventUpdateOne {
	mutation := newScenarioEventMutation(c.config, OpUpdateOne, withScenarioEventID(id))
	return &ScenarioEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScenarioEvent.
func (c *ScenarioEventClient) Delete() *ScenarioEventDelete {
	mutation := newScenarioEventMutation(c.config, OpDelete)
	return &ScenarioEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScenarioEventClient) DeleteOne(_m *ScenarioEvent) *ScenarioEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScenarioEventClient) DeleteOneID(id int) *ScenarioEventDeleteOne {
	builder := c.Delete().Where(scenarioevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScenarioEventDeleteOne{builder}
}

// Query returns a query builder for ScenarioEvent.
func (c *ScenarioEventClient) Query() *ScenarioEventQuery {
	return &ScenarioEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScenarioEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ScenarioEvent entity by its id.
func (c *ScenarioEventClient) Get(ctx context.Context, id int) (*ScenarioEvent, error) {
	return c.Query().Where(scenarioevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScenarioEventClient) GetX(ctx context.Context, id int) *ScenarioEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScenarioEventClient) Hooks() []Hook {
	return c.hooks.ScenarioEvent
}

// Interceptors returns the client interceptors.
func (c *ScenarioEventClient) Interceptors() []Interceptor {
	return c.inters.ScenarioEvent
}

func (c *ScenarioEventClient) mutate(ctx context.Context, m *ScenarioEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScenarioEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScenarioEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScenarioEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScenarioEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScenarioEvent mutation op: %q", m.Op())
	}
}

// SessionEventClient is a client for the SessionEvent schema.
type SessionEventClient struct {
	config
}

// NewSessionEventClient returns a client for the SessionEvent from the given config.
func NewSessionEventClient(c config) *SessionEventClient {
	return &SessionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionevent.Hooks(f(g(h())))`.
func (c *SessionEventClient) Use(hooks ...Hook) {
	c.hooks.SessionEvent = append(c.hooks.SessionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionevent.Intercept(f(g(h())))`.
func (c *SessionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionEvent = append(c.inters.SessionEvent, interceptors...)
}

// Create returns a builder for creating a SessionEvent entity.
func (c *SessionEventClient) Create() *SessionEventCreate {
	mutation := newSessionEventMutation(c.config, OpCreate)
	return &SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionEvent entities.
func (c *SessionEventClient) CreateBulk(builders ...*SessionEventCreate) *SessionEventCreateBulk {
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionEventClient) MapCreateBulk(slice any, setFunc func(*SessionEventCreate, int)) *SessionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionEventCreateBulk{err: fmt.Errorf("calling to SessionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionEvent.
func (c *SessionEventClient) Update() *SessionEventUpdate {
	mutation := newSessionEventMutation(c.config, OpUpdate)
	return &SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionEventClient) UpdateOne(_m *SessionEvent) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEvent(_m))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionEventClient) UpdateOneID(id int) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEventID(id))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionEvent.
func (c *SessionEventClient) Delete() *SessionEventDelete {
	mutation := newSessionEventMutation(c.config, OpDelete)
	return &SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionEventClient) DeleteOne(_m *SessionEvent) *SessionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionEventClient) DeleteOneID(id int) *SessionEventDeleteOne {
	builder := c.Delete().Where(sessionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionEventDeleteOne{builder}
}

// Query returns a query builder for SessionEvent.
func (c *SessionEventClient) Query() *SessionEventQuery {
	return &SessionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionEvent entity by its id.
func (c *SessionEventClient) Get(ctx context.Context, id int) (*SessionEvent, error) {
	return c.Query().Where(sessionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionEventClient) GetX(ctx context.Context, id int) *SessionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionEventClient) Hooks() []Hook {
	return c.hooks.SessionEvent
}

// Interceptors returns the client interceptors.
func (c *SessionEventClient) Interceptors() []Interceptor {
	return c.inters.SessionEvent
}

func (c *SessionEventClient) mutate(ctx context.Context, m *SessionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DifficultyTracking, ExerciseEvent, LLMRequestEvent, ScenarioEvent,
		SessionEvent []ent.Hook
	}
	inters struct {
		DifficultyTracking, ExerciseEvent, LLMRequestEvent, ScenarioEvent,
		SessionEvent []ent.Interceptor
	}
)
