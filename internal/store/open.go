package store

import (
	"context"
	"fmt"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/database"
)

// Closer is a [Store] holding resources that must be released.
type Closer interface {
	Store
	Close() error
}

// Open connects to the store selected by cfg.
func Open(ctx context.Context, cfg *config.Store) (Closer, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return NewMemoryStore(), nil
	case config.DriverSQLite:
		return OpenSQLite(ctx, cfg.SQLitePath, "kv")
	case config.DriverPostgres:
		pool, err := database.Connect(ctx)
		if err != nil {
			return nil, err
		}
		return NewPgStore(pool), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
