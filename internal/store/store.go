// Package store keeps small string values, such as save records and
// settings, under string keys.
package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound    = errors.New("value not found")
	ErrBadName     = errors.New("bad name for store")
	ErrNotMigrated = errors.New("store table does not exist, run the migrator first")
)

type Store interface {
	// Get returns [ErrNotFound] if key is not present.
	Get(ctx context.Context, key string) (string, error)
	// Set inserts a new key-value pair or updates an existing one.
	Set(ctx context.Context, key, value string) error
	// Delete removes key without checking if it existed.
	Delete(ctx context.Context, key string) error
}

func isLetter(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !isLetter(c) {
			return false
		}
	}
	return true
}
