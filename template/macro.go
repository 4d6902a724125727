package template

// macroFilter resolves {...} conditional blocks against the parameter
// stream. It walks the token stream once, keeping a cursor over the
// original parameters:
//
//   - text between blocks is copied as-is; its placeholders' parameters are
//     copied too, except that a Skip found there is dropped silently (the
//     cursor still advances past it);
//   - for each block, the parameters aligned with the block's own
//     placeholders are inspected: if any of them is Skip, the block's text
//     and parameters are removed entirely; otherwise the text is kept
//     (braces stripped) and the parameters flow through unchanged. The
//     cursor advances past the block's placeholders either way.
//
// Blocks do not nest: a block runs to the first closing brace. An unmatched
// opening brace is kept as literal text. Parameter shortage is not an error
// at this stage; the substitution pass reports it when a token cannot be
// resolved.
func macroFilter(tokens []token, params []any) ([]token, []any) {
	out := make([]token, 0, len(tokens))
	outParams := make([]any, 0, len(params))
	cursor := 0

	take := func() {
		if cursor < len(params) {
			if !isSkip(params[cursor]) {
				outParams = append(outParams, params[cursor])
			}
			cursor++
		}
	}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.kind {
		case tokenBlockOpen:
			end := findBlockClose(tokens, i+1)
			if end < 0 {
				out = append(out, token{kind: tokenLiteral, text: "{"})
				continue
			}
			block := tokens[i+1 : end]
			n := countConsuming(block)

			avail := n
			if cursor+avail > len(params) {
				avail = len(params) - cursor
			}
			blockParams := params[cursor : cursor+avail]

			if !anySkip(blockParams) {
				out = append(out, block...)
				outParams = append(outParams, blockParams...)
			}
			cursor += n
			if cursor > len(params) {
				cursor = len(params)
			}
			i = end
		case tokenBlockClose:
			// Stray closing brace outside any block stays literal.
			out = append(out, token{kind: tokenLiteral, text: "}"})
		default:
			out = append(out, tok)
			if tok.consumesParam() {
				take()
			}
		}
	}
	return out, outParams
}

// findBlockClose returns the index of the next closing brace at or after
// start, or -1. Nested opening braces are not special: blocks don't nest.
func findBlockClose(tokens []token, start int) int {
	for i := start; i < len(tokens); i++ {
		if tokens[i].kind == tokenBlockClose {
			return i
		}
	}
	return -1
}

func countConsuming(tokens []token) int {
	n := 0
	for _, t := range tokens {
		if t.consumesParam() {
			n++
		}
	}
	return n
}

func anySkip(params []any) bool {
	for _, p := range params {
		if isSkip(p) {
			return true
		}
	}
	return false
}
