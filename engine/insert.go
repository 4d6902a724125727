package engine

import (
	"context"
	"database/sql"
	"sort"
	"strings"

	"github.com/dzentota/secure-db/schema"
)

// Insert writes one row. The statement is assembled in the template
// grammar, so the table and every column name go through identifier
// quoting and the values bind positionally.
func (s *session) Insert(ctx context.Context, table string, data map[string]any) (sql.Result, error) {
	if len(data) == 0 {
		return nil, s.fail("INSERT INTO "+table, nil, ErrEmptyData)
	}

	keys := sortedKeys(data)
	params := make([]any, 0, len(keys)+2)
	params = append(params, table)

	var b strings.Builder
	b.WriteString("INSERT INTO ?# (")
	vals := make([]any, 0, len(keys))
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("?#")
		params = append(params, k)
		vals = append(vals, data[k])
	}
	b.WriteString(") VALUES (?a)")
	params = append(params, vals)

	return s.Exec(ctx, b.String(), params...)
}

// InsertStruct derives the table name and column map from a struct and
// inserts it.
func (s *session) InsertStruct(ctx context.Context, model any) (sql.Result, error) {
	table, err := schema.TableFor(model)
	if err != nil {
		return nil, err
	}
	data, err := schema.Columns(model)
	if err != nil {
		return nil, err
	}
	return s.Insert(ctx, table, data)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
