package dialect

import "strconv"

// SQLServer brackets identifiers. A literal '[' or ']' inside a segment is
// doubled, so a ']' in the input cannot terminate the quoted name early;
// reserved words are safe because everything is quoted.
type SQLServer struct {
	pair quotePair
}

func NewSQLServerDialect() Dialect {
	return &SQLServer{pair: quotePair{open: '[', close: ']'}}
}

func (s *SQLServer) Name() string {
	return "sqlserver"
}

func (s *SQLServer) QuoteIdentifier(name string) string {
	return s.pair.quoteIdentifier(name)
}

func (s *SQLServer) Placeholder(n int) string {
	return "@p" + strconv.Itoa(n)
}
