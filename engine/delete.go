package engine

import (
	"context"
	"strings"
)

// Delete removes the rows matching the where map and returns the number of
// affected rows. An empty where map is rejected with ErrEmptyData rather
// than deleting the whole table.
func (s *session) Delete(ctx context.Context, table string, where map[string]any) (int64, error) {
	if len(where) == 0 {
		return 0, s.fail("DELETE FROM "+table, nil, ErrEmptyData)
	}

	params := []any{table}
	var b strings.Builder
	b.WriteString("DELETE FROM ?# WHERE ")
	appendWhere(&b, &params, where)

	res, err := s.Exec(ctx, b.String(), params...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
