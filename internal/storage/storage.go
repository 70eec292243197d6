// Package storage implements the terminal's durable key-value slots. Session
// and cart state is mirrored here so it survives a restart.
package storage

import (
	"context"
	"database/sql"
)

// Well-known slot keys. Logout must clear all three together.
const (
	KeyToken = "token"
	KeyUser  = "user"
	KeyCart  = "cart"
)

// DBTX is the subset of database/sql used by the repository.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository is a durable key-value slot store.
type Repository interface {
	// Get returns the value stored under key, or common.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put inserts or replaces the value under key.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the given keys in a single statement. Missing keys
	// are not an error.
	Delete(ctx context.Context, keys ...string) error
}
