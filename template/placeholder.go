package template

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// substitute renders the macro-filtered token stream into the final SQL
// string and positional parameter list. Prefixed tokens are pure text
// substitution; ?#, ?a and bare ? consume parameters left to right, with
// typed-value wrappers unwrapped at every consumption point. Positional
// placeholders are emitted in the dialect's syntax, numbered by their index
// in the output parameter list.
func (e *Engine) substitute(tokens []token, params []any) (string, []any, error) {
	var b strings.Builder
	b.Grow(estimateSize(tokens))
	out := make([]any, 0, len(params))
	cursor := 0

	pop := func(tok string) (any, error) {
		if cursor >= len(params) {
			return nil, fmt.Errorf("%w: %s at position %d", ErrMissingParameter, tok, cursor)
		}
		v := params[cursor]
		cursor++
		return v, nil
	}

	for _, tok := range tokens {
		switch tok.kind {
		case tokenLiteral:
			b.WriteString(tok.text)

		case tokenPrefixed:
			b.WriteString(e.dialect.QuoteIdentifier(e.prefix + tok.text))

		case tokenIdent:
			v, err := pop("?#")
			if err != nil {
				return "", nil, err
			}
			name, ok := native(v).(string)
			if !ok {
				return "", nil, fmt.Errorf("%w: got %T", ErrIdentifierType, native(v))
			}
			b.WriteString(e.dialect.QuoteIdentifier(name))

		case tokenArray:
			v, err := pop("?a")
			if err != nil {
				return "", nil, err
			}
			out, err = e.expandArray(&b, native(v), out)
			if err != nil {
				return "", nil, err
			}

		case tokenPositional:
			v, err := pop("?")
			if err != nil {
				return "", nil, err
			}
			out = append(out, native(v))
			b.WriteString(e.dialect.Placeholder(len(out)))

		case tokenBlockOpen:
			// A brace nested inside a kept block survives macro filtering;
			// it is plain text here, same as an unmatched one.
			b.WriteByte('{')

		case tokenBlockClose:
			b.WriteByte('}')
		}
	}
	return b.String(), out, nil
}

// expandArray renders a ?a parameter. Slices become an IN-style comma list
// of placeholders; string-keyed maps become a SET-style "key = ?" list with
// keys quoted and sorted for deterministic output. Each element or map
// value is unwrapped before binding.
func (e *Engine) expandArray(b *strings.Builder, v any, out []any) ([]any, error) {
	switch vv := v.(type) {
	case []any:
		if len(vv) == 0 {
			return out, fmt.Errorf("%w: empty slice", ErrArrayParam)
		}
		for i, elem := range vv {
			if i > 0 {
				b.WriteString(", ")
			}
			out = append(out, native(elem))
			b.WriteString(e.dialect.Placeholder(len(out)))
		}
		return out, nil

	case map[string]any:
		if len(vv) == 0 {
			return out, fmt.Errorf("%w: empty map", ErrArrayParam)
		}
		keys := make([]string, 0, len(vv))
		for k := range vv {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(e.dialect.QuoteIdentifier(k))
			out = append(out, native(vv[k]))
			b.WriteString(" = ")
			b.WriteString(e.dialect.Placeholder(len(out)))
		}
		return out, nil
	}

	// Slow path for typed slices and maps.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type() == reflect.TypeOf([]byte(nil)) {
			return out, fmt.Errorf("%w: got %T", ErrArrayParam, v)
		}
		if rv.Len() == 0 {
			return out, fmt.Errorf("%w: empty slice", ErrArrayParam)
		}
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			out = append(out, native(rv.Index(i).Interface()))
			b.WriteString(e.dialect.Placeholder(len(out)))
		}
		return out, nil

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return out, fmt.Errorf("%w: map key must be string, got %s", ErrArrayParam, rv.Type().Key())
		}
		if rv.Len() == 0 {
			return out, fmt.Errorf("%w: empty map", ErrArrayParam)
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(e.dialect.QuoteIdentifier(k))
			kv := reflect.ValueOf(k).Convert(rv.Type().Key())
			out = append(out, native(rv.MapIndex(kv).Interface()))
			b.WriteString(" = ")
			b.WriteString(e.dialect.Placeholder(len(out)))
		}
		return out, nil
	}

	return out, fmt.Errorf("%w: got %T", ErrArrayParam, v)
}

func estimateSize(tokens []token) int {
	n := 0
	for _, t := range tokens {
		n += len(t.text) + 2
	}
	return n
}
