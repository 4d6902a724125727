package template

// tokenKind enumerates everything the query lexer can emit.
type tokenKind uint8

const (
	tokenLiteral    tokenKind = iota // raw query text
	tokenPositional                  // ?
	tokenArray                       // ?a
	tokenIdent                       // ?#
	tokenPrefixed                    // ?_name
	tokenBlockOpen                   // {
	tokenBlockClose                  // }
)

type token struct {
	kind tokenKind
	text string // literal run, or the name suffix of a ?_ token
}

// consumesParam reports whether the token pops one value from the parameter
// stream. Prefixed tokens never do.
func (t token) consumesParam() bool {
	switch t.kind {
	case tokenPositional, tokenArray, tokenIdent:
		return true
	}
	return false
}

func isNameByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// lex walks the query once and produces the token stream the macro and
// placeholder passes operate on. Placeholder forms are checked longest
// first, so ?a and ?# are never misread as a bare ? followed by text.
//
// The lexer is not aware of SQL string literals: a quoted literal containing
// '?' or '{' is tokenized like any other text. Fixing that needs a full
// quote-aware SQL lexer, so the limitation stands and is documented on
// Engine.Process.
func lex(query string) []token {
	tokens := make([]token, 0, 8)
	var lit int // start of the current literal run
	flush := func(end int) {
		if end > lit {
			tokens = append(tokens, token{kind: tokenLiteral, text: query[lit:end]})
		}
	}

	i := 0
	for i < len(query) {
		c := query[i]
		switch c {
		case '?':
			flush(i)
			if i+1 < len(query) {
				switch query[i+1] {
				case 'a':
					tokens = append(tokens, token{kind: tokenArray})
					i += 2
					lit = i
					continue
				case '#':
					tokens = append(tokens, token{kind: tokenIdent})
					i += 2
					lit = i
					continue
				case '_':
					j := i + 2
					for j < len(query) && isNameByte(query[j]) {
						j++
					}
					tokens = append(tokens, token{kind: tokenPrefixed, text: query[i+2 : j]})
					i = j
					lit = i
					continue
				}
			}
			tokens = append(tokens, token{kind: tokenPositional})
			i++
			lit = i
		case '{':
			flush(i)
			tokens = append(tokens, token{kind: tokenBlockOpen})
			i++
			lit = i
		case '}':
			flush(i)
			tokens = append(tokens, token{kind: tokenBlockClose})
			i++
			lit = i
		default:
			i++
		}
	}
	flush(len(query))
	return tokens
}
