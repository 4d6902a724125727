package engine

import (
	"context"
	"database/sql"
	"strconv"
)

// Select runs the query and returns every row as a column→value map.
func (s *session) Select(ctx context.Context, query string, params ...any) ([]map[string]any, error) {
	rows, err := s.Query(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMaps(rows)
}

// SelectRow runs the query and returns the first row, or ErrNoRows.
func (s *session) SelectRow(ctx context.Context, query string, params ...any) (map[string]any, error) {
	all, err := s.Select(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, ErrNoRows
	}
	return all[0], nil
}

// SelectCell runs the query and returns the first column of the first row,
// or ErrNoRows.
func (s *session) SelectCell(ctx context.Context, query string, params ...any) (any, error) {
	rows, err := s.Query(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNoRows
	}
	var cell any
	if err := rows.Scan(&cell); err != nil {
		return nil, err
	}
	return cell, rows.Err()
}

// SelectCol runs the query and returns the first column of every row.
func (s *session) SelectCol(ctx context.Context, query string, params ...any) ([]any, error) {
	rows, err := s.Query(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	col := make([]any, 0, 8)
	for rows.Next() {
		var cell any
		if err := rows.Scan(&cell); err != nil {
			return nil, err
		}
		col = append(col, cell)
	}
	return col, rows.Err()
}

// SelectPage runs a paginated query: the result page plus the total row
// count of the unpaginated query. Pagination uses LIMIT/OFFSET syntax.
func (s *session) SelectPage(ctx context.Context, limit, offset int, query string, params ...any) ([]map[string]any, int64, error) {
	total, err := s.SelectCell(ctx, "SELECT COUNT(*) FROM ("+query+") AS page_count", params...)
	if err != nil {
		return nil, 0, err
	}

	pageParams := append(append([]any{}, params...), limit, offset)
	rows, err := s.Select(ctx, query+" LIMIT ? OFFSET ?", pageParams...)
	if err != nil {
		return nil, 0, err
	}
	return rows, toInt64(total), nil
}

func scanMaps(rows *sql.Rows) ([]map[string]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, 8)
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(map[string]any, len(cols))
		for i, c := range cols {
			row[c] = vals[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case uint64:
		return int64(n)
	case float64:
		return int64(n)
	case []byte:
		parsed, _ := strconv.ParseInt(string(n), 10, 64)
		return parsed
	case string:
		parsed, _ := strconv.ParseInt(n, 10, 64)
		return parsed
	}
	return 0
}
