package dialect

import "strconv"

type Postgres struct {
	pair quotePair
}

func NewPostgresDialect() Dialect {
	return &Postgres{pair: quotePair{open: '"', close: '"'}}
}

func (p *Postgres) Name() string {
	return "postgres"
}

func (p *Postgres) QuoteIdentifier(name string) string {
	return p.pair.quoteIdentifier(name)
}

func (p *Postgres) Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}
