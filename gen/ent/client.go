// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/qiwen-ops/passportd/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/qiwen-ops/passportd/gen/ent/passportrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// PassportRecord is the client for interacting with the PassportRecord builders.
	PassportRecord *PassportRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.PassportRecord = NewPassportRecordClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		PassportRecord: NewPassportRecordClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		PassportRecord: NewPassportRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		PassportRecord.
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
	c.PassportRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.PassportRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *PassportRecordMutation:
		return c.PassportRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// PassportRecordClient is a client for the PassportRecord schema.
type PassportRecordClient struct {
	config
}

// NewPassportRecordClient returns a client for the PassportRecord from the given config.
func NewPassportRecordClient(c config) *PassportRecordClient {
	return &PassportRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `passportrecord.Hooks(f(g(h())))`.
func (c *PassportRecordClient) Use(hooks ...Hook) {
	c.hooks.PassportRecord = append(c.hooks.PassportRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `passportrecord.Intercept(f(g(h())))`.
func (c *PassportRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.PassportRecord = append(c.inters.PassportRecord, interceptors...)
}

// Create returns a builder for creating a PassportRecord entity.
func (c *PassportRecordClient) Create() *PassportRecordCreate {
	mutation := newPassportRecordMutation(c.config, OpCreate)
	return &PassportRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PassportRecord entities.
func (c *PassportRecordClient) CreateBulk(builders ...*PassportRecordCreate) *PassportRecordCreateBulk {
	return &PassportRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PassportRecordClient) MapCreateBulk(slice any, setFunc func(*PassportRecordCreate, int)) *PassportRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PassportRecordCreateBulk{err: fmt.Errorf("calling to PassportRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PassportRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PassportRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PassportRecord.
func (c *PassportRecordClient) Update() *PassportRecordUpdate {
	mutation := newPassportRecordMutation(c.config, OpUpdate)
	return &PassportRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PassportRecordClient) UpdateOne(_m *PassportRecord) *PassportRecordUpdateOne {
	mutation := newPassportRecordMutation(c.config, OpUpdateOne, withPassportRecord(_m))
	return &PassportRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PassportRecordClient) UpdateOneID(id int64) *PassportRecordUpdateOne {
	mutation := newPassportRecordMutation(c.config, OpUpdateOne, withPassportRecordID(id))
	return &PassportRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PassportRecord.
func (c *PassportRecordClient) Delete() *PassportRecordDelete {
	mutation := newPassportRecordMutation(c.config, OpDelete)
	return &PassportRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PassportRecordClient) DeleteOne(_m *PassportRecord) *PassportRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PassportRecordClient) DeleteOneID(id int64) *PassportRecordDeleteOne {
	builder := c.Delete().Where(passportrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PassportRecordDeleteOne{builder}
}

// Query returns a query builder for PassportRecord.
func (c *PassportRecordClient) Query() *PassportRecordQuery {
	return &PassportRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePassportRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a PassportRecord entity by its id.
func (c *PassportRecordClient) Get(ctx context.Context, id int64) (*PassportRecord, error) {
	return c.Query().Where(passportrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PassportRecordClient) GetX(ctx context.Context, id int64) *PassportRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PassportRecordClient) Hooks() []Hook {
	return c.hooks.PassportRecord
}

// Interceptors returns the client interceptors.
func (c *PassportRecordClient) Interceptors() []Interceptor {
	return c.inters.PassportRecord
}

func (c *PassportRecordClient) mutate(ctx context.Context, m *PassportRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PassportRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PassportRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PassportRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PassportRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PassportRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		PassportRecord []ent.Hook
	}
	inters struct {
		PassportRecord []ent.Interceptor
	}
)
