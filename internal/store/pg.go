package store

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgStore keeps values in the kv table created by the migrator.
type PgStore struct {
	db *pgxpool.Pool
}

func NewPgStore(db *pgxpool.Pool) *PgStore {
	return &PgStore{db: db}
}

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable {
		return ErrNotMigrated
	}
	return err
}

func (s *PgStore) Get(ctx context.Context, key string) (string, error) {
	var v string
	err := s.db.QueryRow(ctx, "SELECT value FROM kv WHERE key = $1", key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	return v, mapPgError(err)
}

func (s *PgStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.Exec(ctx, `
INSERT INTO kv (key, value)
VALUES ($1, $2)
ON CONFLICT (key)
DO UPDATE SET value = excluded.value, updated_at = now()`,
		key, value,
	)
	return mapPgError(err)
}

func (s *PgStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.Exec(ctx, "DELETE FROM kv WHERE key = $1", key)
	return mapPgError(err)
}

func (s *PgStore) Close() error {
	s.db.Close()
	return nil
}
