package engine

import (
	"errors"
	"fmt"
)

// ErrEmptyData indicates Insert/Update got an empty data map, or
// Update/Delete got an empty where map.
var ErrEmptyData = errors.New("empty data map")

// ErrNoRows mirrors sql.ErrNoRows for the Select helpers.
var ErrNoRows = errors.New("no rows in result set")

// ErrorHandler is invoked, best effort, with every failed statement before
// the error is returned to the caller.
type ErrorHandler func(err error, query string, params []any)

// Error is the single error kind the engine surfaces: the failing
// statement plus the underlying template or driver error.
type Error struct {
	Query string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("query %q: %v", e.Query, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
