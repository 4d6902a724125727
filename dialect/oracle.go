package dialect

import "strconv"

type Oracle struct {
	pair quotePair
}

func NewOracleDialect() Dialect {
	return &Oracle{pair: quotePair{open: '"', close: '"'}}
}

func (o *Oracle) Name() string {
	return "oracle"
}

func (o *Oracle) QuoteIdentifier(name string) string {
	return o.pair.quoteIdentifier(name)
}

func (o *Oracle) Placeholder(n int) string {
	return ":" + strconv.Itoa(n)
}
