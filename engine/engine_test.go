package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dzentota/secure-db/dialect"
	"github.com/dzentota/secure-db/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockDB(t *testing.T, opts ...Option) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, dialect.NewMySQLDialect(), opts...), mock
}

func TestQueryTemplateExpansion(t *testing.T) {
	d, mock := newMockDB(t)
	mock.ExpectQuery("SELECT * FROM users WHERE id IN(?, ?)").
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

	rows, err := d.Select(context.Background(), "SELECT * FROM users WHERE id IN(?a)", []any{1, 2})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryMacroSkip(t *testing.T) {
	d, mock := newMockDB(t)
	mock.ExpectQuery("SELECT * FROM users WHERE 1=1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := d.Select(context.Background(),
		"SELECT * FROM users WHERE 1=1{ AND role = ?}", template.Skip)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectRow(t *testing.T) {
	d, mock := newMockDB(t)
	mock.ExpectQuery("SELECT id, name FROM users WHERE id = ?").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "Ann"))

	row, err := d.SelectRow(context.Background(), "SELECT id, name FROM users WHERE id = ?", 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": int64(1), "name": "Ann"}, row)
}

func TestSelectRowNoRows(t *testing.T) {
	d, mock := newMockDB(t)
	mock.ExpectQuery("SELECT id FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := d.SelectRow(context.Background(), "SELECT id FROM users")
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestSelectCellAndCol(t *testing.T) {
	d, mock := newMockDB(t)
	mock.ExpectQuery("SELECT COUNT(*) FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery("SELECT name FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("a").AddRow("b"))

	cell, err := d.SelectCell(context.Background(), "SELECT COUNT(*) FROM users")
	require.NoError(t, err)
	assert.Equal(t, int64(3), cell)

	col, err := d.SelectCol(context.Background(), "SELECT name FROM users")
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, col)
}

func TestSelectPage(t *testing.T) {
	d, mock := newMockDB(t)
	mock.ExpectQuery("SELECT COUNT(*) FROM (SELECT * FROM users) AS page_count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(42)))
	mock.ExpectQuery("SELECT * FROM users LIMIT ? OFFSET ?").
		WithArgs(10, 20).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(21)))

	rows, total, err := d.SelectPage(context.Background(), 10, 20, "SELECT * FROM users")
	require.NoError(t, err)
	assert.Equal(t, int64(42), total)
	assert.Len(t, rows, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert(t *testing.T) {
	d, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO `users` (`age`, `name`) VALUES (?, ?)").
		WithArgs(9, "x").
		WillReturnResult(sqlmock.NewResult(1, 1))

	res, err := d.Insert(context.Background(), "users", map[string]any{"name": "x", "age": 9})
	require.NoError(t, err)
	id, _ := res.LastInsertId()
	assert.Equal(t, int64(1), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertEmptyData(t *testing.T) {
	d, _ := newMockDB(t)
	_, err := d.Insert(context.Background(), "users", nil)
	assert.ErrorIs(t, err, ErrEmptyData)
}

func TestInsertStruct(t *testing.T) {
	type User struct {
		ID   int64  `db:"id"`
		Name string `db:"name"`
	}

	d, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO `users` (`id`, `name`) VALUES (?, ?)").
		WithArgs(int64(7), "Ann").
		WillReturnResult(sqlmock.NewResult(7, 1))

	_, err := d.InsertStruct(context.Background(), User{ID: 7, Name: "Ann"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	d, mock := newMockDB(t)
	mock.ExpectExec("UPDATE `users` SET `name` = ? WHERE `id` = ?").
		WithArgs("x", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := d.Update(context.Background(), "users",
		map[string]any{"name": "x"}, map[string]any{"id": 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

func TestUpdateEmptyWhere(t *testing.T) {
	d, _ := newMockDB(t)
	_, err := d.Update(context.Background(), "users", map[string]any{"name": "x"}, nil)
	assert.ErrorIs(t, err, ErrEmptyData)
}

func TestDelete(t *testing.T) {
	d, mock := newMockDB(t)
	mock.ExpectExec("DELETE FROM `users` WHERE `id` = ? AND `tenant` = ?").
		WithArgs(1, "acme").
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := d.Delete(context.Background(), "users",
		map[string]any{"tenant": "acme", "id": 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	_, err = d.Delete(context.Background(), "users", nil)
	assert.ErrorIs(t, err, ErrEmptyData)
}

func TestTransactionCommit(t *testing.T) {
	d, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `users` WHERE `id` = ?").
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := d.Transaction(context.Background(), func(tx *Tx) error {
		_, err := tx.Delete(context.Background(), "users", map[string]any{"id": 1})
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRollbackOnError(t *testing.T) {
	d, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := d.Transaction(context.Background(), func(tx *Tx) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRollbackOnPanic(t *testing.T) {
	d, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		d.Transaction(context.Background(), func(tx *Tx) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestErrorHandlerInvoked(t *testing.T) {
	var handled error
	d, _ := newMockDB(t, WithErrorHandler(func(err error, query string, params []any) {
		handled = err
	}))

	// Template failure: token with no parameter.
	_, err := d.Select(context.Background(), "SELECT * FROM users WHERE id = ?")
	require.Error(t, err)
	assert.ErrorIs(t, err, template.ErrMissingParameter)
	assert.ErrorIs(t, handled, template.ErrMissingParameter)

	var qe *Error
	assert.ErrorAs(t, err, &qe)
}

func TestErrorHandlerPanicIsSwallowed(t *testing.T) {
	d, _ := newMockDB(t, WithErrorHandler(func(err error, query string, params []any) {
		panic("handler bug")
	}))

	_, err := d.Select(context.Background(), "SELECT ?")
	assert.ErrorIs(t, err, template.ErrMissingParameter)
}

func TestStatementCachePath(t *testing.T) {
	d, mock := newMockDB(t, WithStatementCache(8))
	defer d.Close()

	mock.ExpectPrepare("SELECT id FROM users WHERE id = ?").
		ExpectQuery().
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	row, err := d.SelectRow(context.Background(), "SELECT id FROM users WHERE id = ?", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), row["id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatementCacheKeyNamespace(t *testing.T) {
	a, _ := newMockDB(t, WithStatementCache(8))
	b, _ := newMockDB(t, WithStatementCache(8), WithPrefix("app_"))
	assert.NotEqual(t, a.fp, b.fp)

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	c := New(db, dialect.NewPostgresDialect(), WithStatementCache(8))
	assert.NotEqual(t, a.fp, c.fp)
}

func TestWithPrefix(t *testing.T) {
	d, mock := newMockDB(t, WithPrefix("app_"))
	mock.ExpectQuery("SELECT * FROM `app_users`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := d.Select(context.Background(), "SELECT * FROM ?_users")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoggerDoesNotAffectResults(t *testing.T) {
	d, mock := newMockDB(t, WithLogger(zap.NewNop()))
	mock.ExpectQuery("SELECT 1").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(int64(1)))

	cell, err := d.SelectCell(context.Background(), "SELECT 1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), cell)
}
