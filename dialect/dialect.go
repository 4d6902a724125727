package dialect

import "strings"

// Dialect encapsulates the identifier-quoting convention and positional
// placeholder syntax of a target database.
type Dialect interface {
	Name() string
	QuoteIdentifier(name string) string
	Placeholder(n int) string
}

// quotePair holds the open/close characters a dialect wraps identifiers in.
type quotePair struct {
	open  byte
	close byte
}

// quoteIdentifier quotes a possibly qualified identifier. Each dot-separated
// segment is quoted independently, so a.b becomes "a"."b" rather than a
// single quoted blob. Quoting is idempotent: outer quotes of the same pair
// are stripped before re-wrapping, and embedded quote characters (both of
// them, for asymmetric pairs like [ ]) are doubled so arbitrary input stays
// a single valid identifier token.
func (p quotePair) quoteIdentifier(name string) string {
	if !strings.ContainsRune(name, '.') {
		return p.quoteSegment(name)
	}
	segments := strings.Split(name, ".")
	for i, s := range segments {
		segments[i] = p.quoteSegment(s)
	}
	return strings.Join(segments, ".")
}

func (p quotePair) quoteSegment(s string) string {
	for len(s) > 0 && s[0] == p.open {
		s = s[1:]
	}
	for len(s) > 0 && s[len(s)-1] == p.close {
		s = s[:len(s)-1]
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(p.open)
	for i := 0; i < len(s); i++ {
		if s[i] == p.open || s[i] == p.close {
			b.WriteByte(s[i])
		}
		b.WriteByte(s[i])
	}
	b.WriteByte(p.close)
	return b.String()
}

// QuoteIdentifiers quotes every name in the slice with the given dialect.
func QuoteIdentifiers(d Dialect, names []string) []string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = d.QuoteIdentifier(n)
	}
	return quoted
}

// ByName returns the dialect registered under the given tag. Unknown tags
// fall back to the generic double-quote dialect.
func ByName(name string) Dialect {
	switch strings.ToLower(name) {
	case "mysql", "mariadb", "tidb":
		return NewMySQLDialect()
	case "postgres", "postgresql", "pgx":
		return NewPostgresDialect()
	case "sqlite", "sqlite3":
		return NewSQLiteDialect()
	case "sqlserver", "mssql":
		return NewSQLServerDialect()
	case "oracle":
		return NewOracleDialect()
	case "firebird", "interbase":
		return NewFirebirdDialect()
	default:
		return NewGenericDialect()
	}
}
