package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/vancomm/minesweeper-engine/internal/config"
)

type CtxKey int

const (
	CtxPlayerID CtxKey = iota
)

// PlayerID returns the player identified by the Player middleware.
func PlayerID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CtxPlayerID).(string)
	return id, ok && id != ""
}

// Player identifies the caller by the signed player cookies. Callers without
// valid cookies are given a new player id, and the cookies are refreshed on
// every request so active players never expire.
func Player(log *slog.Logger, cookies *config.Cookies) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var playerID string
			claims, err := cookies.ParsePlayerClaims(r)
			if err != nil {
				playerID = uuid.NewString()
				log.Debug("issuing new player id",
					slog.String("player_id", playerID),
					slog.Any("reason", err),
				)
			} else {
				playerID = claims.PlayerID
			}

			if err := cookies.Refresh(w, config.NewPlayerClaims(playerID, cookies.TokenLifetime())); err != nil {
				log.Error("unable to refresh player cookies", slog.Any("error", err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), CtxPlayerID, playerID)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
