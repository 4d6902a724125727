// Package sqlval provides typed-value wrappers for query parameters. Each
// wrapper implements template.NativeValuer, so the engine binds the
// extracted native value instead of the wrapper itself.
package sqlval

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// UUID binds as the canonical 36-character string form.
type UUID struct {
	ID uuid.UUID
}

func NewUUID() UUID {
	return UUID{ID: uuid.New()}
}

func ParseUUID(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("sqlval: invalid uuid: %w", err)
	}
	return UUID{ID: id}, nil
}

func (u UUID) NativeValue() any {
	return u.ID.String()
}

func (u UUID) String() string {
	return u.ID.String()
}

// ULID binds as the 26-character Crockford base32 string form.
type ULID struct {
	ID ulid.ULID
}

func NewULID() ULID {
	return ULID{ID: ulid.Make()}
}

func ParseULID(s string) (ULID, error) {
	id, err := ulid.Parse(s)
	if err != nil {
		return ULID{}, fmt.Errorf("sqlval: invalid ulid: %w", err)
	}
	return ULID{ID: id}, nil
}

func (u ULID) NativeValue() any {
	return u.ID.String()
}

func (u ULID) String() string {
	return u.ID.String()
}

// JSON binds an arbitrary value as its JSON encoding. Marshaling happens at
// construction so binding cannot fail mid-query.
type JSON struct {
	raw []byte
}

func NewJSON(v any) (JSON, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return JSON{}, fmt.Errorf("sqlval: marshal json: %w", err)
	}
	return JSON{raw: raw}, nil
}

func (j JSON) NativeValue() any {
	return string(j.raw)
}

// Time binds a timestamp formatted with a fixed layout, defaulting to the
// DATETIME-friendly "2006-01-02 15:04:05".
type Time struct {
	T      time.Time
	Layout string
}

const defaultTimeLayout = "2006-01-02 15:04:05"

func NewTime(t time.Time) Time {
	return Time{T: t}
}

func (t Time) NativeValue() any {
	layout := t.Layout
	if layout == "" {
		layout = defaultTimeLayout
	}
	return t.T.Format(layout)
}

// Null binds as SQL NULL.
type Null struct{}

func (Null) NativeValue() any {
	return nil
}
