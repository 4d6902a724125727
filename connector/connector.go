// Package connector establishes database connections and pairs them with
// the matching quoting dialect. Drivers register themselves as providers;
// the rest of the system only sees the Connection interface.
package connector

import (
	"context"
	"database/sql"

	"github.com/dzentota/secure-db/dialect"
)

type Connection interface {
	DB() *sql.DB
	Dialect() dialect.Dialect
	Health(ctx context.Context) error
	Stats() ConnectionStats
	Close() error
}

type Connector interface {
	Connect(ctx context.Context) (Connection, error)
	Close() error
}

// Provider is implemented per driver (postgres, mysql).
type Provider interface {
	Connect(ctx context.Context, config Config) (Connection, error)
	Dialect() dialect.Dialect
}
