package dialect

// Generic is the fallback dialect for unknown databases: ANSI double quotes
// and driver-native '?' placeholders.
type Generic struct {
	pair quotePair
}

func NewGenericDialect() Dialect {
	return &Generic{pair: quotePair{open: '"', close: '"'}}
}

func (g *Generic) Name() string {
	return "generic"
}

func (g *Generic) QuoteIdentifier(name string) string {
	return g.pair.quoteIdentifier(name)
}

func (g *Generic) Placeholder(n int) string {
	return "?"
}
