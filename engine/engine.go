// Package engine is the data-access surface: it runs template queries
// against a live connection, adds CRUD and pagination helpers built on the
// same placeholder grammar, and wires in logging, error-handler and
// statement-cache hooks. All query rewriting is delegated to the template
// package.
package engine

import (
	"context"
	"database/sql"

	"github.com/dzentota/secure-db/cache"
	"github.com/dzentota/secure-db/connector"
	"github.com/dzentota/secure-db/dialect"
	"github.com/dzentota/secure-db/template"
	"github.com/dzentota/secure-db/utils"
	"go.uber.org/zap"
)

// executor abstracts *sql.DB and *sql.Tx.
type executor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// DB wraps a live database handle with the template engine and the
// configured hooks. Configuration is immutable after New, so a DB is safe
// for concurrent use.
type DB struct {
	session
	db *sql.DB
}

type Option func(*DB)

// WithPrefix sets the identifier prefix for ?_name tokens.
func WithPrefix(prefix string) Option {
	return func(d *DB) {
		d.prefix = prefix
	}
}

// WithLogger installs a structured logger; every statement is logged at
// debug level with its SQL, parameter count, duration and a query id.
func WithLogger(logger *zap.Logger) Option {
	return func(d *DB) {
		d.logger = logger
	}
}

// WithErrorHandler installs a best-effort callback invoked with every
// failed statement before the error is returned.
func WithErrorHandler(h ErrorHandler) Option {
	return func(d *DB) {
		d.onError = h
	}
}

// WithStatementCache enables an LRU prepared-statement cache of the given
// size for statements executed outside transactions.
func WithStatementCache(size int) Option {
	return func(d *DB) {
		d.stmts = cache.NewStatementCache(size)
	}
}

// New builds a DB over an open handle and its dialect.
func New(db *sql.DB, d dialect.Dialect, opts ...Option) *DB {
	e := &DB{db: db}
	e.logger = zap.NewNop()
	for _, opt := range opts {
		opt(e)
	}
	e.tmpl = template.New(d, template.WithPrefix(e.prefix))
	e.fp = utils.Mix64(utils.FingerprintString(d.Name()), utils.FingerprintString(e.prefix))
	e.run = db
	e.stmtDB = db
	return e
}

// FromConnection builds a DB from a connector.Connection, taking the
// dialect from the connection.
func FromConnection(conn connector.Connection, opts ...Option) *DB {
	return New(conn.DB(), conn.Dialect(), opts...)
}

// Template exposes the underlying template engine.
func (d *DB) Template() *template.Engine {
	return d.tmpl
}

// Raw returns the wrapped *sql.DB.
func (d *DB) Raw() *sql.DB {
	return d.db
}

// Close releases the statement cache, if any. The wrapped *sql.DB stays
// open; its lifecycle belongs to the caller.
func (d *DB) Close() error {
	if d.stmts != nil {
		return d.stmts.Close()
	}
	return nil
}
