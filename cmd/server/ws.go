package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minesweeper-engine/internal/game"
	"github.com/vancomm/minesweeper-engine/internal/middleware"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

// isCommandError reports errors caused by a bad message rather than by the
// server, which are answered without closing the connection.
func isCommandError(err error) bool {
	return errors.Is(err, game.ErrUnknownCommand) ||
		errors.Is(err, game.ErrInvalidArguments) ||
		errors.Is(err, mines.ErrPointOutOfBounds) ||
		errors.Is(err, game.ErrGameOver)
}

// wsConnect serves the line protocol: every text message holds one or more
// newline separated commands and is answered with the resulting game state.
func (app *application) wsConnect(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.PlayerID(r.Context())
	if !ok {
		app.internalError(w, "request reached game handler without player id")
		return
	}

	c, err := app.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer c.Close()

	logger := app.logger.With(slog.String("player_id", playerID))
	c.SetReadLimit(app.ws.ReadLimit)

	for {
		c.SetReadDeadline(time.Now().Add(app.ws.IdleTime))
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("abnormal ws break", slog.Any("error", err))
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}
		text := strings.TrimSpace(string(message))
		logger.Debug(fmt.Sprintf("\t> %s", text))

		var reply any
		err = app.sessions.With(r.Context(), playerID, func(g *game.Game, _ *game.Persister) error {
			err := g.ExecuteAll(r.Context(), text)
			reply = newGameDTO(g)
			return err
		})
		switch {
		case isCommandError(err):
			reply = errorDTO{Error: err.Error()}
		case err != nil:
			logger.Error("unable to process command", slog.Any("error", err))
			return
		}

		if err := c.WriteJSON(reply); err != nil {
			logger.Error("unable to write json", slog.Any("error", err))
			break
		}
		logger.Debug("\t< <game state>")
	}
}
