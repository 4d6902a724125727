package connector

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"

	"github.com/dzentota/secure-db/dialect"
	mysqldriver "github.com/go-sql-driver/mysql"
)

func init() {
	Register("mysql", &mysqlProvider{dialect: dialect.NewMySQLDialect()})
}

type mysqlProvider struct {
	dialect dialect.Dialect
}

func (p *mysqlProvider) Dialect() dialect.Dialect {
	return p.dialect
}

func (p *mysqlProvider) Connect(ctx context.Context, cfg Config) (Connection, error) {
	cfg = cfg.withPoolDefaults()

	db, err := sql.Open("mysql", buildMySQLDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	db.SetMaxOpenConns(cfg.Pool.MaxOpen)
	db.SetMaxIdleConns(cfg.Pool.MaxIdle)
	db.SetConnMaxLifetime(cfg.Pool.MaxLifetime)
	db.SetConnMaxIdleTime(cfg.Pool.MaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	return &mysqlConnection{db: db, dialect: p.dialect}, nil
}

// buildMySQLDSN uses the driver's own config type; mysql DSNs are not
// URL-shaped, so the URL builder does not apply here.
func buildMySQLDSN(cfg Config) string {
	mc := mysqldriver.NewConfig()
	mc.User = cfg.Username
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mc.DBName = cfg.Database
	mc.ParseTime = true
	if len(cfg.Params) > 0 {
		mc.Params = make(map[string]string, len(cfg.Params))
		for k, v := range cfg.Params {
			mc.Params[k] = v
		}
	}
	return mc.FormatDSN()
}

type mysqlConnection struct {
	db      *sql.DB
	dialect dialect.Dialect
}

func (c *mysqlConnection) DB() *sql.DB {
	return c.db
}

func (c *mysqlConnection) Dialect() dialect.Dialect {
	return c.dialect
}

func (c *mysqlConnection) Health(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *mysqlConnection) Stats() ConnectionStats {
	s := c.db.Stats()
	return ConnectionStats{
		OpenConnections: s.OpenConnections,
		InUse:           s.InUse,
		Idle:            s.Idle,
	}
}

func (c *mysqlConnection) Close() error {
	return c.db.Close()
}
