// Package securedb ties the pieces together: connect to a database by
// driver name and get back a template-aware data-access client. The query
// grammar is documented in the template package; quoting rules in dialect.
package securedb

import (
	"context"
	"errors"

	"github.com/dzentota/secure-db/connector"
	"github.com/dzentota/secure-db/engine"
	"github.com/dzentota/secure-db/template"
)

// Re-exported configuration types.
type (
	Config      = connector.Config
	PoolConfig  = connector.PoolConfig
	RetryConfig = connector.RetryConfig
	Option      = engine.Option
	Tx          = engine.Tx
)

// Skip marks a macro block for exclusion. See template.Skip.
var Skip = template.Skip

// Option constructors, re-exported from engine.
var (
	WithPrefix         = engine.WithPrefix
	WithLogger         = engine.WithLogger
	WithErrorHandler   = engine.WithErrorHandler
	WithStatementCache = engine.WithStatementCache
)

// Client couples the data-access engine with the connection it runs on.
type Client struct {
	*engine.DB
	conn connector.Connection
}

// Connect opens a connection with the named driver ("postgres", "mysql")
// and wraps it in a Client.
func Connect(ctx context.Context, driver string, cfg Config, opts ...Option) (*Client, error) {
	c, err := connector.New(driver, cfg)
	if err != nil {
		return nil, err
	}
	conn, err := c.Connect(ctx)
	if err != nil {
		return nil, err
	}
	return &Client{
		DB:   engine.FromConnection(conn, opts...),
		conn: conn,
	}, nil
}

// Conn exposes the underlying connection for health checks and stats.
func (c *Client) Conn() connector.Connection {
	return c.conn
}

// Close releases the engine's resources and the connection.
func (c *Client) Close() error {
	return errors.Join(c.DB.Close(), c.conn.Close())
}
