package dialect

type MySQL struct {
	pair quotePair
}

func NewMySQLDialect() Dialect {
	return &MySQL{pair: quotePair{open: '`', close: '`'}}
}

func (m *MySQL) Name() string {
	return "mysql"
}

func (m *MySQL) QuoteIdentifier(name string) string {
	return m.pair.quoteIdentifier(name)
}

func (m *MySQL) Placeholder(n int) string {
	return "?"
}
