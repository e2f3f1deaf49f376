package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vancomm/minesweeper-engine/internal/game"
	"github.com/vancomm/minesweeper-engine/internal/middleware"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var errUnknownDifficulty = errors.New("unknown difficulty")

// withGame runs fn on the calling player's game and replies with the
// resulting state.
func (app *application) withGame(
	w http.ResponseWriter, r *http.Request, fn func(*game.Game, *game.Persister) error,
) {
	playerID, ok := middleware.PlayerID(r.Context())
	if !ok {
		app.internalError(w, "request reached game handler without player id")
		return
	}

	var dto gameDTO
	err := app.sessions.With(r.Context(), playerID, func(g *game.Game, p *game.Persister) error {
		err := fn(g, p)
		dto = newGameDTO(g)
		return err
	})
	if err != nil {
		app.replyWithError(w, err)
		return
	}
	app.replyWithJSON(w, dto)
}

func (app *application) replyWithError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, mines.ErrPointOutOfBounds),
		errors.Is(err, game.ErrUnknownCommand),
		errors.Is(err, game.ErrInvalidArguments),
		errors.Is(err, errUnknownDifficulty):
		app.badRequest(w, err)
	case errors.Is(err, game.ErrGameOver):
		app.conflict(w, err)
	default:
		app.internalError(w, "unable to process game request", slog.Any("error", err))
	}
}

func (app *application) handleFetchGame(w http.ResponseWriter, r *http.Request) {
	app.withGame(w, r, func(*game.Game, *game.Persister) error {
		return nil
	})
}

func (app *application) handleClick(w http.ResponseWriter, r *http.Request) {
	params, err := decodeClick(r.URL.Query())
	if err != nil {
		app.badRequest(w, err)
		return
	}
	app.withGame(w, r, func(g *game.Game, _ *game.Persister) error {
		return g.Click(r.Context(), params.Coordinates(), params.Right)
	})
}

func (app *application) handleRestart(w http.ResponseWriter, r *http.Request) {
	app.withGame(w, r, func(g *game.Game, _ *game.Persister) error {
		return g.Restart(r.Context())
	})
}

func (app *application) handleSetDifficulty(w http.ResponseWriter, r *http.Request) {
	params, err := decodeDifficulty(r.URL.Query())
	if err != nil {
		app.badRequest(w, err)
		return
	}
	app.withGame(w, r, func(g *game.Game, p *game.Persister) error {
		ds, err := p.LoadDifficulties(r.Context())
		if err != nil {
			return err
		}

		if params.Name != game.Custom {
			d, ok := ds.Lookup(params.Name)
			if !ok {
				return errUnknownDifficulty
			}
			return g.SetDifficulty(r.Context(), d)
		}

		custom := ds.Custom
		if params.Width != nil {
			custom.Width = *params.Width
		}
		if params.Height != nil {
			custom.Height = *params.Height
		}
		if params.MineCount != nil {
			custom.MineCount = *params.MineCount
		}
		return g.SetDifficulty(r.Context(), game.NewCustom(custom.Width, custom.Height, custom.MineCount))
	})
}

func (app *application) handleDifficulties(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.PlayerID(r.Context())
	if !ok {
		app.internalError(w, "request reached game handler without player id")
		return
	}

	var dto difficultiesDTO
	err := app.sessions.With(r.Context(), playerID, func(g *game.Game, p *game.Persister) error {
		ds, err := p.LoadDifficulties(r.Context())
		if err != nil {
			return err
		}
		dto = difficultiesDTO{Selected: g.Difficulty().Name, Difficulties: ds.All()}
		return nil
	})
	if err != nil {
		app.replyWithError(w, err)
		return
	}
	app.replyWithJSON(w, dto)
}
