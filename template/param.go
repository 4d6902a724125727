package template

// skipToken is the type behind Skip. Detection is a type assertion, so any
// value of this type matches regardless of which package instance produced
// it; no identity comparison is involved.
type skipToken struct{}

// Skip marks a macro block for exclusion. Passing Skip in the position of
// any placeholder inside a {...} block removes the whole block and all of
// its parameters from the final statement.
var Skip skipToken

func isSkip(v any) bool {
	_, ok := v.(skipToken)
	return ok
}

// NativeValuer is the capability implemented by typed-value wrappers. The
// engine calls NativeValue at every point a scalar is consumed and binds
// the result instead of the wrapper itself.
type NativeValuer interface {
	NativeValue() any
}

// native unwraps a typed-value wrapper, or returns the value unchanged.
func native(v any) any {
	if nv, ok := v.(NativeValuer); ok {
		return nv.NativeValue()
	}
	return v
}
