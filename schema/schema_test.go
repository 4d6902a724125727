package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type User struct {
	ID        uint64 `db:"id"`
	FirstName string `db:"first_name"`
	Email     string
	password  string
	Internal  string `db:"-"`
}

type BlogPost struct {
	User
	Title string `db:"title"`
}

type named struct{}

func (named) TableName() string { return "custom_table" }

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ID", "id"},
		{"UserID", "user_id"},
		{"FirstName", "first_name"},
		{"HTTPServer", "http_server"},
		{"BlogPost", "blog_post"},
		{"already_snake", "already_snake"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ToSnakeCase(tt.input), tt.input)
	}
}

func TestTableName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"User", "users"},
		{"BlogPost", "blog_posts"},
		{"Person", "people"},
		{"Category", "categories"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, TableName(tt.input), tt.input)
	}
}

func TestColumns(t *testing.T) {
	u := User{ID: 1, FirstName: "Ann", Email: "a@b.c", password: "x", Internal: "skip"}

	cols, err := Columns(u)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"id":         uint64(1),
		"first_name": "Ann",
		"email":      "a@b.c",
	}, cols)

	fromPtr, err := Columns(&u)
	require.NoError(t, err)
	assert.Equal(t, cols, fromPtr)
}

func TestColumnsEmbedded(t *testing.T) {
	p := BlogPost{User: User{ID: 2, FirstName: "Bo", Email: "b@c.d"}, Title: "hi"}
	cols, err := Columns(p)
	require.NoError(t, err)
	assert.Equal(t, "hi", cols["title"])
	assert.Equal(t, uint64(2), cols["id"])
}

func TestColumnsErrors(t *testing.T) {
	_, err := Columns(42)
	assert.Error(t, err)

	var u *User
	_, err = Columns(u)
	assert.Error(t, err)
}

func TestTableFor(t *testing.T) {
	name, err := TableFor(User{})
	require.NoError(t, err)
	assert.Equal(t, "users", name)

	name, err = TableFor(&BlogPost{})
	require.NoError(t, err)
	assert.Equal(t, "blog_posts", name)

	name, err = TableFor(named{})
	require.NoError(t, err)
	assert.Equal(t, "custom_table", name)

	_, err = TableFor(7)
	assert.Error(t, err)
}
