package engine

import (
	"context"
	"strings"
)

// Update modifies the rows matching the where map and returns the number
// of affected rows. Both maps are required: an empty where map would
// rewrite the whole table, so it is rejected with ErrEmptyData.
func (s *session) Update(ctx context.Context, table string, data map[string]any, where map[string]any) (int64, error) {
	if len(data) == 0 || len(where) == 0 {
		return 0, s.fail("UPDATE "+table, nil, ErrEmptyData)
	}

	params := []any{table, data}
	var b strings.Builder
	b.WriteString("UPDATE ?# SET ?a WHERE ")
	appendWhere(&b, &params, where)

	res, err := s.Exec(ctx, b.String(), params...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// appendWhere renders the where map as "?# = ? AND ..." in sorted key
// order, pushing alternating column/value parameters.
func appendWhere(b *strings.Builder, params *[]any, where map[string]any) {
	for i, k := range sortedKeys(where) {
		if i > 0 {
			b.WriteString(" AND ")
		}
		b.WriteString("?# = ?")
		*params = append(*params, k, where[k])
	}
}
