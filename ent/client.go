// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/Riverstargroup/cultiva-finanzas/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/Riverstargroup/cultiva-finanzas/ent/achievement"
	"github.com/Riverstargroup/cultiva-finanzas/ent/activityday"
	"github.com/Riverstargroup/cultiva-finanzas/ent/completionevent"
	"github.com/Riverstargroup/cultiva-finanzas/ent/courseprogress"
	"github.com/Riverstargroup/cultiva-finanzas/ent/reviewstate"
	"github.com/Riverstargroup/cultiva-finanzas/ent/userskill"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Achievement is the client for interacting with the Achievement builders.
	Achievement *AchievementClient
	// ActivityDay is the client for interacting with the ActivityDay builders.
	ActivityDay *ActivityDayClient
	// CompletionEvent is the client for interacting with the CompletionEvent builders.
	CompletionEvent *CompletionEventClient
	// CourseProgress is the client for interacting with the CourseProgress builders.
	CourseProgress *CourseProgressClient
	// ReviewState is the client for interacting with the ReviewState builders.
	ReviewState *ReviewStateClient
	// UserSkill is the client for interacting with the UserSkill builders.
	UserSkill *UserSkillClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Achievement = NewAchievementClient(c.config)
	c.ActivityDay = NewActivityDayClient(c.config)
	c.CompletionEvent = NewCompletionEventClient(c.config)
	c.CourseProgress = NewCourseProgressClient(c.config)
	c.ReviewState = NewReviewStateClient(c.config)
	c.UserSkill = NewUserSkillClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		Achievement:     NewAchievementClient(cfg),
		ActivityDay:     NewActivityDayClient(cfg),
		CompletionEvent: NewCompletionEventClient(cfg),
		CourseProgress:  NewCourseProgressClient(cfg),
		ReviewState:     NewReviewStateClient(cfg),
		UserSkill:       NewUserSkillClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		Achievement:     NewAchievementClient(cfg),
		ActivityDay:     NewActivityDayClient(cfg),
		CompletionEvent: NewCompletionEventClient(cfg),
		CourseProgress:  NewCourseProgressClient(cfg),
		ReviewState:     NewReviewStateClient(cfg),
		UserSkill:       NewUserSkillClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Achievement.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.Achievement, c.ActivityDay, c.CompletionEvent, c.CourseProgress,
		c.ReviewState, c.UserSkill,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Achievement, c.ActivityDay, c.CompletionEvent, c.CourseProgress,
		c.ReviewState, c.UserSkill,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AchievementMutation:
		return c.Achievement.mutate(ctx, m)
	case *ActivityDayMutation:
		return c.ActivityDay.mutate(ctx, m)
	case *CompletionEventMutation:
		return c.CompletionEvent.mutate(ctx, m)
	case *CourseProgressMutation:
		return c.CourseProgress.mutate(ctx, m)
	case *ReviewStateMutation:
		return c.ReviewState.mutate(ctx, m)
	case *UserSkillMutation:
		return c.UserSkill.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AchievementClient is a client for the Achievement schema.
type AchievementClient struct {
	config
}

// NewAchievementClient returns a client for the Achievement from the given config.
func NewAchievementClient(c config) *AchievementClient {
	return &AchievementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `achievement.Hooks(f(g(h())))`.
func (c *AchievementClient) Use(hooks ...Hook) {
	c.hooks.Achievement = append(c.hooks.Achievement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `achievement.Intercept(f(g(h())))`.
func (c *AchievementClient) Intercept(interceptors ...Interceptor) {
	c.inters.Achievement = append(c.inters.Achievement, interceptors...)
}

// Create returns a builder for creating a Achievement entity.
func (c *AchievementClient) Create() *AchievementCreate {
	mutation := newAchievementMutation(c.config, OpCreate)
	return &AchievementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Achievement entities.
func (c *AchievementClient) CreateBulk(builders ...*AchievementCreate) *AchievementCreateBulk {
	return &AchievementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AchievementClient) MapCreateBulk(slice any, setFunc func(*AchievementCreate, int)) *AchievementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AchievementCreateBulk{err: fmt.Errorf("calling to AchievementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AchievementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AchievementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Achievement.
func (c *AchievementClient) Update() *AchievementUpdate {
	mutation := newAchievementMutation(c.config, OpUpdate)
	return &AchievementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AchievementClient) UpdateOne(_m *Achievement) *AchievementUpdateOne {
	mutation := newAchievementMutation(c.config, OpUpdateOne, withAchievement(_m))
	return &AchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AchievementClient) UpdateOneID(id int) *AchievementUpdateOne {
	mutation := newAchievementMutation(c.config, OpUpdateOne, withAchievementID(id))
	return &AchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Achievement.
func (c *AchievementClient) Delete() *AchievementDelete {
	mutation := newAchievementMutation(c.config, OpDelete)
	return &AchievementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AchievementClient) DeleteOne(_m *Achievement) *AchievementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AchievementClient) DeleteOneID(id int) *AchievementDeleteOne {
	builder := c.Delete().Where(achievement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AchievementDeleteOne{builder}
}

// Query returns a query builder for Achievement.
func (c *AchievementClient) Query() *AchievementQuery {
	return &AchievementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAchievement},
		inters: c.Interceptors(),
	}
}

// Get returns a Achievement entity by its id.
func (c *AchievementClient) Get(ctx context.Context, id int) (*Achievement, error) {
	return c.Query().Where(achievement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AchievementClient) GetX(ctx context.Context, id int) *Achievement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AchievementClient) Hooks() []Hook {
	return c.hooks.Achievement
}

// Interceptors returns the client interceptors.
func (c *AchievementClient) Interceptors() []Interceptor {
	return c.inters.Achievement
}

func (c *AchievementClient) mutate(ctx context.Context, m *AchievementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AchievementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AchievementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AchievementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Achievement mutation op: %q", m.Op())
	}
}

// ActivityDayClient is a client for the ActivityDay schema.
type ActivityDayClient struct {
	config
}

// NewActivityDayClient returns a client for the ActivityDay from the given config.
func NewActivityDayClient(c config) *ActivityDayClient {
	return &ActivityDayClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `activityday.Hooks(f(g(h())))`.
func (c *ActivityDayClient) Use(hooks ...Hook) {
	c.hooks.ActivityDay = append(c.hooks.ActivityDay, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `activityday.Intercept(f(g(h())))`.
func (c *ActivityDayClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActivityDay = append(c.inters.ActivityDay, interceptors...)
}

// Create returns a builder for creating a ActivityDay entity.
func (c *ActivityDayClient) Create() *ActivityDayCreate {
	mutation := newActivityDayMutation(c.config, OpCreate)
	return &ActivityDayCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActivityDay entities.
func (c *ActivityDayClient) CreateBulk(builders ...*ActivityDayCreate) *ActivityDayCreateBulk {
	return &ActivityDayCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActivityDayClient) MapCreateBulk(slice any, setFunc func(*ActivityDayCreate, int)) *ActivityDayCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActivityDayCreateBulk{err: fmt.Errorf("calling to ActivityDayClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActivityDayCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActivityDayCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActivityDay.
func (c *ActivityDayClient) Update() *ActivityDayUpdate {
	mutation := newActivityDayMutation(c.config, OpUpdate)
	return &ActivityDayUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActivityDayClient) UpdateOne(_m *ActivityDay) *ActivityDayUpdateOne {
	mutation := newActivityDayMutation(c.config, OpUpdateOne, withActivityDay(_m))
	return &ActivityDayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActivityDayClient) UpdateOneID(id int) *ActivityDayUpdateOne {
	mutation := newActivityDayMutation(c.config, OpUpdateOne, withActivityDayID(id))
	return &ActivityDayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActivityDay.
func (c *ActivityDayClient) Delete() *ActivityDayDelete {
	mutation := newActivityDayMutation(c.config, OpDelete)
	return &ActivityDayDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActivityDayClient) DeleteOne(_m *ActivityDay) *ActivityDayDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActivityDayClient) DeleteOneID(id int) *ActivityDayDeleteOne {
	builder := c.Delete().Where(activityday.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActivityDayDeleteOne{builder}
}

// Query returns a query builder for ActivityDay.
func (c *ActivityDayClient) Query() *ActivityDayQuery {
	return &ActivityDayQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActivityDay},
		inters: c.Interceptors(),
	}
}

// Get returns a ActivityDay entity by its id.
func (c *ActivityDayClient) Get(ctx context.Context, id int) (*ActivityDay, error) {
	return c.Query().Where(activityday.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActivityDayClient) GetX(ctx context.Context, id int) *ActivityDay {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ActivityDayClient) Hooks() []Hook {
	return c.hooks.ActivityDay
}

// Interceptors returns the client interceptors.
func (c *ActivityDayClient) Interceptors() []Interceptor {
	return c.inters.ActivityDay
}

func (c *ActivityDayClient) mutate(ctx context.Context, m *ActivityDayMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActivityDayCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActivityDayUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActivityDayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActivityDayDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ActivityDay mutation op: %q", m.Op())
	}
}

// CompletionEventClient is a client for the CompletionEvent schema.
type CompletionEventClient struct {
	config
}

// NewCompletionEventClient returns a client for the CompletionEvent from the given config.
func NewCompletionEventClient(c config) *CompletionEventClient {
	return &CompletionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `completionevent.Hooks(f(g(h())))`.
func (c *CompletionEventClient) Use(hooks ...Hook) {
	c.hooks.CompletionEvent = append(c.hooks.CompletionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `completionevent.Intercept(f(g(h())))`.
func (c *CompletionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.CompletionEvent = append(c.inters.CompletionEvent, interceptors...)
}

// Create returns a builder for creating a CompletionEvent entity.
func (c *CompletionEventClient) Create() *CompletionEventCreate {
	mutation := newCompletionEventMutation(c.config, OpCreate)
	return &CompletionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CompletionEvent entities.
func (c *CompletionEventClient) CreateBulk(builders ...*CompletionEventCreate) *CompletionEventCreateBulk {
	return &CompletionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompletionEventClient) MapCreateBulk(slice any, setFunc func(*CompletionEventCreate, int)) *CompletionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompletionEventCreateBulk{err: fmt.Errorf("calling to CompletionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompletionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompletionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CompletionEvent.
func (c *CompletionEventClient) Update() *CompletionEventUpdate {
	mutation := newCompletionEventMutation(c.config, OpUpdate)
	return &CompletionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompletionEventClient) UpdateOne(_m *CompletionEvent) *CompletionEventUpdateOne {
	mutation := newCompletionEventMutation(c.config, OpUpdateOne, withCompletionEvent(_m))
	return &CompletionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompletionEventClient) UpdateOneID(id int) *CompletionEventUpdateOne {
	mutation := newCompletionEventMutation(c.config, OpUpdateOne, withCompletionEventID(id))
	return &CompletionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CompletionEvent.
func (c *CompletionEventClient) Delete() *CompletionEventDelete {
	mutation := newCompletionEventMutation(c.config, OpDelete)
	return &CompletionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompletionEventClient) DeleteOne(_m *CompletionEvent) *CompletionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompletionEventClient) DeleteOneID(id int) *CompletionEventDeleteOne {
	builder := c.Delete().Where(completionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompletionEventDeleteOne{builder}
}

// Query returns a query builder for CompletionEvent.
func (c *CompletionEventClient) Query() *CompletionEventQuery {
	return &CompletionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompletionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a CompletionEvent entity by its id.
func (c *CompletionEventClient) Get(ctx context.Context, id int) (*CompletionEvent, error) {
	return c.Query().Where(completionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompletionEventClient) GetX(ctx context.Context, id int) *CompletionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CompletionEventClient) Hooks() []Hook {
	return c.hooks.CompletionEvent
}

// Interceptors returns the client interceptors.
func (c *CompletionEventClient) Interceptors() []Interceptor {
	return c.inters.CompletionEvent
}

func (c *CompletionEventClient) mutate(ctx context.Context, m *CompletionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompletionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompletionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompletionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompletionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CompletionEvent mutation op: %q", m.Op())
	}
}

// CourseProgressClient is a client for the CourseProgress schema.
type CourseProgressClient struct {
	config
}

// NewCourseProgressClient returns a client for the CourseProgress from the given config.
func NewCourseProgressClient(c config) *CourseProgressClient {
	return &CourseProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `courseprogress.Hooks(f(g(h())))`.
func (c *CourseProgressClient) Use(hooks ...Hook) {
	c.hooks.CourseProgress = append(c.hooks.CourseProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `courseprogress.Intercept(f(g(h())))`.
func (c *CourseProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.CourseProgress = append(c.inters.CourseProgress, interceptors...)
}

// Create returns a builder for creating a CourseProgress entity.
func (c *CourseProgressClient) Create() *CourseProgressCreate {
	mutation := newCourseProgressMutation(c.config, OpCreate)
	return &CourseProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CourseProgress entities.
func (c *CourseProgressClient) CreateBulk(builders ...*CourseProgressCreate) *CourseProgressCreateBulk {
	return &CourseProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CourseProgressClient) MapCreateBulk(slice any, setFunc func(*CourseProgressCreate, int)) *CourseProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CourseProgressCreateBulk{err: fmt.Errorf("calling to CourseProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CourseProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CourseProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CourseProgress.
func (c *CourseProgressClient) Update() *CourseProgressUpdate {
	mutation := newCourseProgressMutation(c.config, OpUpdate)
	return &CourseProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CourseProgressClient) UpdateOne(_m *CourseProgress) *CourseProgressUpdateOne {
	mutation := newCourseProgressMutation(c.config, OpUpdateOne, withCourseProgress(_m))
	return &CourseProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CourseProgressClient) UpdateOneID(id int) *CourseProgressUpdateOne {
	mutation := newCourseProgressMutation(c.config, OpUpdateOne, withCourseProgressID(id))
	return &CourseProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CourseProgress.
func (c *CourseProgressClient) Delete() *CourseProgressDelete {
	mutation := newCourseProgressMutation(c.config, OpDelete)
	return &CourseProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CourseProgressClient) DeleteOne(_m *CourseProgress) *CourseProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CourseProgressClient) DeleteOneID(id int) *CourseProgressDeleteOne {
	builder := c.Delete().Where(courseprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CourseProgressDeleteOne{builder}
}

// Query returns a query builder for CourseProgress.
func (c *CourseProgressClient) Query() *CourseProgressQuery {
	return &CourseProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCourseProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a CourseProgress entity by its id.
func (c *CourseProgressClient) Get(ctx context.Context, id int) (*CourseProgress, error) {
	return c.Query().Where(courseprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CourseProgressClient) GetX(ctx context.Context, id int) *CourseProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CourseProgressClient) Hooks() []Hook {
	return c.hooks.CourseProgress
}

// Interceptors returns the client interceptors.
func (c *CourseProgressClient) Interceptors() []Interceptor {
	return c.inters.CourseProgress
}

func (c *CourseProgressClient) mutate(ctx context.Context, m *CourseProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CourseProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CourseProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CourseProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CourseProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CourseProgress mutation op: %q", m.Op())
	}
}

// ReviewStateClient is a client for the ReviewState schema.
type ReviewStateClient struct {
	config
}

// NewReviewStateClient returns a client for the ReviewState from the given config.
func NewReviewStateClient(c config) *ReviewStateClient {
	return &ReviewStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewstate.Hooks(f(g(h())))`.
func (c *ReviewStateClient) Use(hooks ...Hook) {
	c.hooks.ReviewState = append(c.hooks.ReviewState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewstate.Intercept(f(g(h())))`.
func (c *ReviewStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewState = append(c.inters.ReviewState, interceptors...)
}

// Create returns a builder for creating a ReviewState entity.
func (c *ReviewStateClient) Create() *ReviewStateCreate {
	mutation := newReviewStateMutation(c.config, OpCreate)
	return &ReviewStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewState entities.
func (c *ReviewStateClient) CreateBulk(builders ...*ReviewStateCreate) *ReviewStateCreateBulk {
	return &ReviewStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewStateClient) MapCreateBulk(slice any, setFunc func(*ReviewStateCreate, int)) *ReviewStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewStateCreateBulk{err: fmt.Errorf("calling to ReviewStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewState.
func (c *ReviewStateClient) Update() *ReviewStateUpdate {
	mutation := newReviewStateMutation(c.config, OpUpdate)
	return &ReviewStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewStateClient) UpdateOne(_m *ReviewState) *ReviewStateUpdateOne {
	mutation := newReviewStateMutation(c.config, OpUpdateOne, withReviewState(_m))
	return &ReviewStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewStateClient) UpdateOneID(id int) *ReviewStateUpdateOne {
	mutation := newReviewStateMutation(c.config, OpUpdateOne, withReviewStateID(id))
	return &ReviewStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewState.
func (c *ReviewStateClient) Delete() *ReviewStateDelete {
	mutation := newReviewStateMutation(c.config, OpDelete)
	return &ReviewStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewStateClient) DeleteOne(_m *ReviewState) *ReviewStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewStateClient) DeleteOneID(id int) *ReviewStateDeleteOne {
	builder := c.Delete().Where(reviewstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewStateDeleteOne{builder}
}

// Query returns a query builder for ReviewState.
func (c *ReviewStateClient) Query() *ReviewStateQuery {
	return &ReviewStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewState},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewState entity by its id.
func (c *ReviewStateClient) Get(ctx context.Context, id int) (*ReviewState, error) {
	return c.Query().Where(reviewstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewStateClient) GetX(ctx context.Context, id int) *ReviewState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewStateClient) Hooks() []Hook {
	return c.hooks.ReviewState
}

// Interceptors returns the client interceptors.
func (c *ReviewStateClient) Interceptors() []Interceptor {
	return c.inters.ReviewState
}

func (c *ReviewStateClient) mutate(ctx context.Context, m *ReviewStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewState mutation op: %q", m.Op())
	}
}

// UserSkillClient is a client for the UserSkill schema.
type UserSkillClient struct {
	config
}

// NewUserSkillClient returns a client for the UserSkill from the given config.
func NewUserSkillClient(c config) *UserSkillClient {
	return &UserSkillClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userskill.Hooks(f(g(h())))`.
func (c *UserSkillClient) Use(hooks ...Hook) {
	c.hooks.UserSkill = append(c.hooks.UserSkill, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userskill.Intercept(f(g(h())))`.
func (c *UserSkillClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserSkill = append(c.inters.UserSkill, interceptors...)
}

// Create returns a builder for creating a UserSkill entity.
func (c *UserSkillClient) Create() *UserSkillCreate {
	mutation := newUserSkillMutation(c.config, OpCreate)
	return &UserSkillCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserSkill entities.
func (c *UserSkillClient) CreateBulk(builders ...*UserSkillCreate) *UserSkillCreateBulk {
	return &UserSkillCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserSkillClient) MapCreateBulk(slice any, setFunc func(*UserSkillCreate, int)) *UserSkillCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserSkillCreateBulk{err: fmt.Errorf("calling to UserSkillClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserSkillCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserSkillCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserSkill.
func (c *UserSkillClient) Update() *UserSkillUpdate {
	mutation := newUserSkillMutation(c.config, OpUpdate)
	return &UserSkillUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserSkillClient) UpdateOne(_m *UserSkill) *UserSkillUpdateOne {
	mutation := newUserSkillMutation(c.config, OpUpdateOne, withUserSkill(_m))
	return &UserSkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserSkillClient) UpdateOneID(id int) *UserSkillUpdateOne {
	mutation := newUserSkillMutation(c.config, OpUpdateOne, withUserSkillID(id))
	return &UserSkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserSkill.
func (c *UserSkillClient) Delete() *UserSkillDelete {
	mutation := newUserSkillMutation(c.config, OpDelete)
	return &UserSkillDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserSkillClient) DeleteOne(_m *UserSkill) *UserSkillDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserSkillClient) DeleteOneID(id int) *UserSkillDeleteOne {
	builder := c.Delete().Where(userskill.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserSkillDeleteOne{builder}
}

// Query returns a query builder for UserSkill.
func (c *UserSkillClient) Query() *UserSkillQuery {
	return &UserSkillQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserSkill},
		inters: c.Interceptors(),
	}
}

// Get returns a UserSkill entity by its id.
func (c *UserSkillClient) Get(ctx context.Context, id int) (*UserSkill, error) {
	return c.Query().Where(userskill.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserSkillClient) GetX(ctx context.Context, id int) *UserSkill {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserSkillClient) Hooks() []Hook {
	return c.hooks.UserSkill
}

// Interceptors returns the client interceptors.
func (c *UserSkillClient) Interceptors() []Interceptor {
	return c.inters.UserSkill
}

func (c *UserSkillClient) mutate(ctx context.Context, m *UserSkillMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserSkillCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserSkillUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserSkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserSkillDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserSkill mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Achievement, ActivityDay, CompletionEvent, CourseProgress, ReviewState,
		UserSkill []ent.Hook
	}
	inters struct {
		Achievement, ActivityDay, CompletionEvent, CourseProgress, ReviewState,
		UserSkill []ent.Interceptor
	}
)
