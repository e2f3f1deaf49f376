package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/store"
)

const (
	SaveGameKey       = "minesweeper-savegame"
	DifficultyKey     = "minesweeper-difficulty"
	CustomSettingsKey = "minesweeper-custom-settings"
)

// Persister keeps a player's game and settings in a store. Keys are
// namespaced by Prefix when it is set.
type Persister struct {
	Store  store.Store
	Prefix string
	Logger *slog.Logger
}

func (p *Persister) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}

func (p *Persister) key(k string) string {
	if p.Prefix == "" {
		return k
	}
	return p.Prefix + ":" + k
}

// get reads key, treating a missing key as an empty value.
func (p *Persister) get(ctx context.Context, k string) (string, error) {
	v, err := p.Store.Get(ctx, p.key(k))
	if errors.Is(err, store.ErrNotFound) {
		return "", nil
	}
	return v, err
}

func (p *Persister) LoadDifficulties(ctx context.Context) (Difficulties, error) {
	custom, err := p.get(ctx, CustomSettingsKey)
	if err != nil {
		return Difficulties{}, fmt.Errorf("unable to load custom settings: %w", err)
	}
	return Difficulties{Custom: ParseCustom(custom)}, nil
}

func (p *Persister) SaveCustom(ctx context.Context, d Difficulty) error {
	return p.Store.Set(ctx, p.key(CustomSettingsKey), FormatCustom(d))
}

// Save writes the selected difficulty and the save record. Only a running
// game is resumable; any other status clears the record.
func (p *Persister) Save(ctx context.Context, g *Game) error {
	d := g.Difficulty()
	if d.Name == Custom {
		if err := p.SaveCustom(ctx, d); err != nil {
			return err
		}
	}
	if err := p.Store.Set(ctx, p.key(DifficultyKey), d.Name); err != nil {
		return err
	}

	var record string
	if g.Status() == StatusRunning {
		envelope, err := mines.ToSaveState(g.grids)
		if err != nil {
			return fmt.Errorf("unable to encode game: %w", err)
		}
		record = FormatSaveRecord(g.ElapsedSeconds(), envelope)
	}
	return p.Store.Set(ctx, p.key(SaveGameKey), record)
}

// Load restores the player's game. A missing or unreadable save record
// yields an idle game; only store failures are returned as errors.
func (p *Persister) Load(ctx context.Context, opts ...Option) (*Game, error) {
	ds, err := p.LoadDifficulties(ctx)
	if err != nil {
		return nil, err
	}
	name, err := p.get(ctx, DifficultyKey)
	if err != nil {
		return nil, fmt.Errorf("unable to load difficulty: %w", err)
	}
	d := ds.Resolve(name)

	record, err := p.get(ctx, SaveGameKey)
	if err != nil {
		return nil, fmt.Errorf("unable to load save record: %w", err)
	}

	g, err := p.resume(ctx, d, record, opts...)
	if err != nil {
		p.logger().Warn("could not load save state",
			slog.String("key", p.key(SaveGameKey)),
			slog.Any("error", err),
		)
		return New(d, opts...), nil
	}
	if g == nil {
		return New(d, opts...), nil
	}
	return g, nil
}

func (p *Persister) resume(ctx context.Context, d Difficulty, record string, opts ...Option) (*Game, error) {
	secs, envelope, err := ParseSaveRecord(record)
	if err != nil {
		return nil, err
	}
	grids, err := mines.FromSaveState(envelope)
	if err != nil || grids == nil {
		return nil, err
	}
	return Resume(ctx, d, grids, time.Duration(secs)*time.Second, opts...)
}
