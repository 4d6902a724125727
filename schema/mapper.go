package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// Columns extracts a column→value map from a struct (or struct pointer).
// Column names come from the `db` tag, falling back to the snake_case field
// name; fields tagged `db:"-"` and unexported fields are skipped. Embedded
// structs are flattened.
func Columns(v any) (map[string]any, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("schema: nil pointer")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema: expected struct, got %T", v)
	}

	cols := make(map[string]any)
	collectColumns(rv, cols)
	return cols, nil
}

func collectColumns(rv reflect.Value, cols map[string]any) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			collectColumns(rv.Field(i), cols)
			continue
		}

		tag := field.Tag.Get("db")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = ToSnakeCase(field.Name)
		}
		cols[name] = rv.Field(i).Interface()
	}
}

// TableFor returns the conventional table name for a struct value,
// honoring an optional TableNamer implementation.
func TableFor(v any) (string, error) {
	if tn, ok := v.(TableNamer); ok {
		return tn.TableName(), nil
	}
	rt := reflect.TypeOf(v)
	for rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		return "", fmt.Errorf("schema: expected struct, got %T", v)
	}
	return TableName(rt.Name()), nil
}

// TableNamer overrides the derived table name for a model.
type TableNamer interface {
	TableName() string
}
