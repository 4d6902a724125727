package engine

import (
	"context"
	"database/sql"
	"fmt"
)

// Tx is a transaction-scoped session. It exposes the same query and CRUD
// surface as DB; the statement cache is bypassed because cached statements
// belong to the pool, not to a single transaction.
type Tx struct {
	session
	tx *sql.Tx
}

// Begin starts a transaction.
func (d *DB) Begin(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}

	s := d.session
	s.run = tx
	s.stmts = nil
	s.stmtDB = nil
	return &Tx{session: s, tx: tx}, nil
}

func (t *Tx) Commit() error {
	return t.tx.Commit()
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

// Transaction runs fn inside a transaction: rollback on error or panic,
// commit otherwise. The panic is re-raised after rollback.
func (d *DB) Transaction(ctx context.Context, fn func(tx *Tx) error) error {
	tx, err := d.Begin(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback after %w: %v", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}
