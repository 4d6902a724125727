package dialect

type Firebird struct {
	pair quotePair
}

func NewFirebirdDialect() Dialect {
	return &Firebird{pair: quotePair{open: '"', close: '"'}}
}

func (f *Firebird) Name() string {
	return "firebird"
}

func (f *Firebird) QuoteIdentifier(name string) string {
	return f.pair.quoteIdentifier(name)
}

func (f *Firebird) Placeholder(n int) string {
	return "?"
}
