// Package repository contains the data access layer, separated from
// the HTTP handlers. Each catalog owns exactly one table; references
// into other tables are weak and resolved with LEFT JOINs at
// projection time, so a dangling id degrades to an empty summary
// instead of failing the query.
package repository

import (
	"database/sql"

	"github.com/toy-soldier/starzz/internal/model"
)

// insertID turns a caller-supplied id into an INSERT parameter.
// Zero maps to NULL so the auto-increment column assigns the key.
func insertID(id uint64) any {
	if id == 0 {
		return nil
	}
	return id
}

// userSummary builds a user summary from LEFT JOIN columns. An invalid
// id means the reference was NULL or dangling; the zero summary
// marshals as {}.
func userSummary(id sql.NullInt64, first, last sql.NullString) model.UserSummary {
	if !id.Valid {
		return model.UserSummary{}
	}
	return model.UserSummary{
		UserID:   uint64(id.Int64),
		FullName: first.String + " " + last.String,
	}
}

// refID converts a nullable foreign key column into the model's
// pointer form.
func refID(n sql.NullInt64) *uint64 {
	if !n.Valid {
		return nil
	}
	v := uint64(n.Int64)
	return &v
}
