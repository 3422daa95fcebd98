package db

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// UniqueConstraint returns the name of the violated unique constraint, or ""
// when err is not a unique violation. Repositories use it to turn store-level
// uniqueness rejections into field-scoped validation errors.
func UniqueConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName
	}
	return ""
}

// ForeignKeyConstraint returns the name of the violated foreign key
// constraint, or "" when err is not a foreign key violation. Repositories
// use it to report a referenced row that vanished between validation and
// write the same way the validation itself would have.
func ForeignKeyConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return pgErr.ConstraintName
	}
	return ""
}

// IsNoRows reports whether err is pgx.ErrNoRows.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
