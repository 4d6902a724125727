package connector

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dzentota/secure-db/dialect"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

func init() {
	Register("postgres", &postgresProvider{dialect: dialect.NewPostgresDialect()})
}

type postgresProvider struct {
	dialect dialect.Dialect
}

func (p *postgresProvider) Dialect() dialect.Dialect {
	return p.dialect
}

func (p *postgresProvider) Connect(ctx context.Context, cfg Config) (Connection, error) {
	cfg = cfg.withPoolDefaults()

	poolCfg, err := pgxpool.ParseConfig(buildPostgresDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.Pool.MaxOpen)
	poolCfg.MinConns = int32(cfg.Pool.MaxIdle)
	poolCfg.MaxConnLifetime = cfg.Pool.MaxLifetime
	poolCfg.MaxConnIdleTime = cfg.Pool.MaxIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &postgresConnection{pool: pool, dialect: p.dialect}, nil
}

func buildPostgresDSN(cfg Config) string {
	return NewDSNBuilder("postgres").
		Auth(cfg.Username, cfg.Password).
		Host(cfg.Host, cfg.Port).
		Database(cfg.Database).
		Param("sslmode", cfg.SSLMode).
		Params(cfg.Params).
		Build()
}

type postgresConnection struct {
	pool    *pgxpool.Pool
	dialect dialect.Dialect
}

// DB returns a database/sql handle over the pgx pool.
func (c *postgresConnection) DB() *sql.DB {
	return stdlib.OpenDBFromPool(c.pool)
}

func (c *postgresConnection) Dialect() dialect.Dialect {
	return c.dialect
}

func (c *postgresConnection) Health(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

func (c *postgresConnection) Stats() ConnectionStats {
	s := c.pool.Stat()
	return ConnectionStats{
		OpenConnections: int(s.TotalConns()),
		InUse:           int(s.AcquiredConns()),
		Idle:            int(s.IdleConns()),
	}
}

func (c *postgresConnection) Close() error {
	c.pool.Close()
	return nil
}
