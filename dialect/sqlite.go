package dialect

type SQLite struct {
	pair quotePair
}

func NewSQLiteDialect() Dialect {
	return &SQLite{pair: quotePair{open: '"', close: '"'}}
}

func (s *SQLite) Name() string {
	return "sqlite"
}

func (s *SQLite) QuoteIdentifier(name string) string {
	return s.pair.quoteIdentifier(name)
}

func (s *SQLite) Placeholder(n int) string {
	return "?"
}
