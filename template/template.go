package template

import "github.com/dzentota/secure-db/dialect"

// Engine is the query template processor. It is configured once with a
// dialect and an optional identifier prefix, holds no other state, and is
// safe for concurrent use.
type Engine struct {
	dialect dialect.Dialect
	prefix  string
}

type Option func(*Engine)

// WithPrefix sets the identifier prefix substituted for ?_name tokens:
// ?_users renders as the quoted form of prefix + "users".
func WithPrefix(prefix string) Option {
	return func(e *Engine) {
		e.prefix = prefix
	}
}

func New(d dialect.Dialect, opts ...Option) *Engine {
	e := &Engine{dialect: d}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Dialect returns the dialect the engine quotes and numbers placeholders for.
func (e *Engine) Dialect() dialect.Dialect {
	return e.dialect
}

// Process rewrites a query template into a driver-ready statement and the
// flattened positional parameter list, applying macro-block filtering first
// and placeholder substitution second.
//
// The parameter-counting rule scans raw tokens, so a literal '?' or '{'
// inside a SQL string literal is miscounted. Keep such characters out of
// templates, or pass them as parameters.
func (e *Engine) Process(query string, params []any) (string, []any, error) {
	tokens, filtered := macroFilter(lex(query), params)
	return e.substitute(tokens, filtered)
}
