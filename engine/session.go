package engine

import (
	"context"
	"database/sql"
	"time"

	"github.com/dzentota/secure-db/cache"
	"github.com/dzentota/secure-db/template"
	"github.com/dzentota/secure-db/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// session carries everything a statement execution needs and is shared
// between DB and Tx; Tx copies it with the executor swapped for the
// transaction and the statement cache disabled (cached statements belong to
// the pool, not a single transaction).
type session struct {
	run     executor
	stmtDB  *sql.DB
	stmts   *cache.StatementCache
	tmpl    *template.Engine
	prefix  string
	fp      uint64 // statement-cache key namespace: dialect and prefix fingerprint
	logger  *zap.Logger
	onError ErrorHandler
}

// Query processes the template and executes it, returning raw rows.
func (s *session) Query(ctx context.Context, query string, params ...any) (*sql.Rows, error) {
	stmt, args, err := s.tmpl.Process(query, params)
	if err != nil {
		return nil, s.fail(query, params, err)
	}

	start := time.Now()
	rows, err := s.queryProcessed(ctx, stmt, args)
	s.log(stmt, args, time.Since(start), err)
	if err != nil {
		return nil, s.fail(stmt, args, err)
	}
	return rows, nil
}

// Exec processes the template and executes it without returning rows.
func (s *session) Exec(ctx context.Context, query string, params ...any) (sql.Result, error) {
	stmt, args, err := s.tmpl.Process(query, params)
	if err != nil {
		return nil, s.fail(query, params, err)
	}

	start := time.Now()
	res, err := s.execProcessed(ctx, stmt, args)
	s.log(stmt, args, time.Since(start), err)
	if err != nil {
		return nil, s.fail(stmt, args, err)
	}
	return res, nil
}

func (s *session) queryProcessed(ctx context.Context, stmt string, args []any) (*sql.Rows, error) {
	if s.stmts != nil && s.stmtDB != nil {
		prepared, err := s.stmts.GetOrPrepare(ctx, utils.Mix64(s.fp, utils.FingerprintString(stmt)), s.stmtDB, stmt)
		if err != nil {
			return nil, err
		}
		return prepared.QueryContext(ctx, args...)
	}
	return s.run.QueryContext(ctx, stmt, args...)
}

func (s *session) execProcessed(ctx context.Context, stmt string, args []any) (sql.Result, error) {
	if s.stmts != nil && s.stmtDB != nil {
		prepared, err := s.stmts.GetOrPrepare(ctx, utils.Mix64(s.fp, utils.FingerprintString(stmt)), s.stmtDB, stmt)
		if err != nil {
			return nil, err
		}
		return prepared.ExecContext(ctx, args...)
	}
	return s.run.ExecContext(ctx, stmt, args...)
}

func (s *session) log(stmt string, args []any, took time.Duration, err error) {
	if ce := s.logger.Check(zap.DebugLevel, "query"); ce != nil {
		fields := []zap.Field{
			zap.String("query_id", uuid.NewString()),
			zap.String("sql", stmt),
			zap.Int("params", len(args)),
			zap.Duration("took", took),
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		ce.Write(fields...)
	}
}

// fail routes the error through the handler, if any, then wraps it with
// the statement for context. Handler panics are swallowed: the hook is
// best-effort and must not mask the original error.
func (s *session) fail(query string, params []any, err error) error {
	if s.onError != nil {
		func() {
			defer func() { _ = recover() }()
			s.onError(err, query, params)
		}()
	}
	return &Error{Query: query, Err: err}
}
